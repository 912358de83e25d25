package crud

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLooseEqual(t *testing.T) {
	assert.True(t, LooseEqual(2, 2))
	assert.True(t, LooseEqual(2, "2"))
	assert.True(t, LooseEqual(int64(2), 2.0))
	assert.True(t, LooseEqual("abc", ActionType("abc")))
	assert.True(t, LooseEqual(nil, nil))

	assert.False(t, LooseEqual(2, 3))
	assert.False(t, LooseEqual(nil, 0))
	assert.False(t, LooseEqual("", nil))
	assert.False(t, LooseEqual(true, "true"))
	assert.False(t, LooseEqual(Record{"id": 1}, Record{"id": 1}))
}

func TestMerge(t *testing.T) {
	base := Record{"id": 1, "meta": Record{"a": 1, "b": 1}}

	t.Run("shallow", func(t *testing.T) {
		merged := Merge(base, Record{"meta": Record{"b": 2}, "name": "x"})

		assert.Equal(t, Record{"id": 1, "meta": Record{"b": 2}, "name": "x"}, merged)
		assert.Equal(t, Record{"id": 1, "meta": Record{"a": 1, "b": 1}}, base)
	})

	t.Run("deep", func(t *testing.T) {
		merged := Merge(base, Record{"meta": map[string]any{"b": 2}}, Deep())

		assert.Equal(t, Record{"id": 1, "meta": Record{"a": 1, "b": 2}}, merged)
		assert.Equal(t, Record{"a": 1, "b": 1}, base["meta"])
	})

	t.Run("all", func(t *testing.T) {
		merged := MergeAll(Record{"a": 1}, []Record{{"b": 2}, {"a": 3}})

		assert.Equal(t, Record{"a": 3, "b": 2}, merged)
	})

	t.Run("nil inputs", func(t *testing.T) {
		assert.Equal(t, Record{}, Merge(nil, nil))
	})
}

func TestRecordID(t *testing.T) {
	id, ok := Record{"id": "a"}.ID()
	assert.True(t, ok)
	assert.Equal(t, "a", id)

	_, ok = Record{"id": nil}.ID()
	assert.False(t, ok)

	_, ok = Record{}.ID()
	assert.False(t, ok)
}

type person struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func TestNormalize(t *testing.T) {
	normalized := normalize([]person{{ID: 1, Name: "a"}})

	assert.Equal(t, []any{Record{"id": float64(1), "name": "a"}}, normalized)
	assert.Equal(t, "x", normalize("x"))
	assert.Nil(t, normalize((*person)(nil)))
	assert.Equal(t, Record{"n": []any{1}}, normalize(map[string][]int{"n": {1}}))
}
