package crud

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rejectsMissingTypes(t *testing.T) {
	_, err := CreateTypes("")
	assert.ErrorIs(t, err, ErrMissingTypes)

	_, err = CreateTypes(" \t\n ")
	assert.ErrorIs(t, err, ErrMissingTypes)
}

func createsSingleType(t *testing.T) {
	types, err := CreateTypes("one")
	require.NoError(t, err)

	assert.Equal(t, Types{"one": "ONE"}, types)
}

func appliesPrefix(t *testing.T) {
	types, err := CreateTypes("one", WithPrefix("SUPER_"))
	require.NoError(t, err)

	assert.Equal(t, Types{"one": "SUPER_ONE"}, types)
}

func splitsOnWhitespace(t *testing.T) {
	for _, names := range []string{"one two three", "one two     three", "one two\t\t\t\tthree", "\n one\ntwo three  "} {
		types, err := CreateTypes(names)
		require.NoError(t, err)

		assert.Len(t, types, 3)
		assert.Equal(t, ActionType("THREE"), types["three"])
		assert.Equal(t, []string{"one", "three", "two"}, types.Names())
	}
}

func TestCreateTypes(t *testing.T) {
	t.Run("rejects missing types", rejectsMissingTypes)
	t.Run("creates a single type", createsSingleType)
	t.Run("applies the prefix", appliesPrefix)
	t.Run("splits on whitespace", splitsOnWhitespace)
}
