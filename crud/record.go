package crud

import (
	"strconv"

	"github.com/weegigs/wee-crud-go/internal/decode"
)

// Record is an opaque item or nested object. Items are matched on their "id"
// key.
type Record map[string]any

// ID returns the record's "id" value.
func (r Record) ID() (any, bool) {
	id, ok := r["id"]
	return id, ok && id != nil
}

type mergeOptions struct {
	deep bool
}

type MergeOption func(options *mergeOptions)

// Deep merges nested records recursively instead of replacing them.
func Deep() MergeOption {
	return func(options *mergeOptions) {
		options.deep = true
	}
}

// Merge returns a new record holding base overlaid with patch. Neither input
// is modified.
func Merge(base Record, patch Record, options ...MergeOption) Record {
	opts := mergeOptions{}
	for _, option := range options {
		option(&opts)
	}

	return merge(base, patch, opts.deep)
}

// MergeAll applies patches to base in order.
func MergeAll(base Record, patches []Record, options ...MergeOption) Record {
	merged := Merge(base, nil, options...)
	for _, patch := range patches {
		merged = Merge(merged, patch, options...)
	}

	return merged
}

func merge(base Record, patch Record, deep bool) Record {
	merged := make(Record, len(base)+len(patch))
	for key, value := range base {
		merged[key] = value
	}

	for key, value := range patch {
		if deep {
			current, currentIsRecord := asRecord(merged[key])
			next, nextIsRecord := asRecord(value)
			if currentIsRecord && nextIsRecord {
				merged[key] = merge(current, next, true)
				continue
			}
		}
		merged[key] = value
	}

	return merged
}

func asRecord(value any) (Record, bool) {
	switch v := value.(type) {
	case Record:
		return v, v != nil
	case map[string]any:
		return Record(v), v != nil
	default:
		return nil, false
	}
}

// idOf returns the id of an item when the item is a record.
func idOf(item any) (any, bool) {
	record, ok := asRecord(item)
	if !ok {
		return nil, false
	}

	return record.ID()
}

func hasID(item any, id any) bool {
	itemID, ok := idOf(item)
	return ok && LooseEqual(itemID, id)
}

func indexOfID(items []any, id any) int {
	for i, item := range items {
		if hasID(item, id) {
			return i
		}
	}

	return -1
}

// LooseEqual compares identifiers the way the action payloads expect: numbers
// and strings match when their text matches, so 2, 2.0, int64(2) and "2" are
// the same id. Other values must be equal comparable values.
func LooseEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	textA, scalarA := scalarText(a)
	textB, scalarB := scalarText(b)
	if scalarA && scalarB {
		return textA == textB
	}
	if scalarA || scalarB {
		return false
	}

	return comparableEqual(a, b)
}

func comparableEqual(a, b any) (equal bool) {
	defer func() {
		if recover() != nil {
			equal = false
		}
	}()

	return a == b
}

func scalarText(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case ActionType:
		return string(v), true
	case int:
		return strconv.FormatInt(int64(v), 10), true
	case int8:
		return strconv.FormatInt(int64(v), 10), true
	case int16:
		return strconv.FormatInt(int64(v), 10), true
	case int32:
		return strconv.FormatInt(int64(v), 10), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint:
		return strconv.FormatUint(uint64(v), 10), true
	case uint8:
		return strconv.FormatUint(uint64(v), 10), true
	case uint16:
		return strconv.FormatUint(uint64(v), 10), true
	case uint32:
		return strconv.FormatUint(uint64(v), 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case interface{ String() string }:
		return v.String(), true
	default:
		return "", false
	}
}

// normalize converts maps and structs into Records and slices into []any,
// recursively, so state never aliases caller owned containers.
func normalize(value any) any {
	switch value.(type) {
	case nil, string, bool, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return value
	}

	if decode.IsNil(value) {
		return nil
	}

	if m, ok := decode.Mapping(value); ok {
		record := make(Record, len(m))
		for key, v := range m {
			record[key] = normalize(v)
		}
		return record
	}

	if items, ok := decode.Sequence(value); ok {
		normalized := make([]any, len(items))
		for i, item := range items {
			normalized[i] = normalize(item)
		}
		return normalized
	}

	return value
}

func sequenceOf(value any) []any {
	items, ok := decode.Sequence(normalize(value))
	if !ok {
		return []any{}
	}

	return items
}

func appendItem(items []any, item any) []any {
	next := make([]any, len(items), len(items)+1)
	copy(next, items)

	return append(next, item)
}

func withoutID(items []any, id any) []any {
	kept := make([]any, 0, len(items))
	for _, item := range items {
		if hasID(item, id) {
			continue
		}
		kept = append(kept, item)
	}

	return kept
}

// copyRecord copies every map and slice reachable from r.
func copyRecord(r Record) Record {
	copied, _ := asRecord(normalize(r))
	return copied
}

// mergeItem shallow merges patch into item. Non record items are replaced.
func mergeItem(item any, patch Record) Record {
	record, ok := asRecord(item)
	if !ok {
		return Merge(nil, patch)
	}

	return Merge(record, patch)
}

func truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case int:
		return v != 0
	case int64:
		return v != 0
	case float64:
		return v != 0
	default:
		return true
	}
}
