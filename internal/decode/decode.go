package decode

import (
	"reflect"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/tiendc/go-deepcopy"
)

func extractValue(v any) (reflect.Value, error) {
	if v == nil {
		return reflect.Value{}, errors.New("argument must be non-nil")
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return reflect.Value{}, errors.New("argument must be a non-nil pointer")
		}
		rv = rv.Elem()
	}

	return rv, nil
}

// IsNil reports whether value is nil or a nil pointer.
func IsNil(value any) bool {
	if value == nil {
		return true
	}

	rv := reflect.ValueOf(value)
	return rv.Kind() == reflect.Ptr && rv.IsNil()
}

// Sequence returns the elements of any slice or array value as []any.
// Byte slices are not sequences.
func Sequence(value any) ([]any, bool) {
	if items, ok := value.([]any); ok {
		return items, true
	}

	rv, err := extractValue(value)
	if err != nil {
		return nil, false
	}

	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return nil, false
		}
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return nil, false
		}
	default:
		return nil, false
	}

	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}

	return items, true
}

// Mapping returns a string keyed view of maps and structs. Structs are
// converted through their JSON encoding, so json tags decide the keys.
func Mapping(value any) (map[string]any, bool) {
	if m, ok := value.(map[string]any); ok {
		return m, true
	}

	rv, err := extractValue(value)
	if err != nil {
		return nil, false
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String || rv.IsNil() {
			return nil, false
		}

		m := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			m[iter.Key().String()] = iter.Value().Interface()
		}
		return m, true
	case reflect.Struct:
		m, err := structToMap(rv.Interface())
		if err != nil {
			return nil, false
		}
		return m, true
	default:
		return nil, false
	}
}

func structToMap(value any) (map[string]any, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode %T", value)
	}

	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrapf(err, "failed to decode %T", value)
	}

	return m, nil
}

// Clone returns a deep copy of value. Values that cannot be copied are
// returned unchanged.
func Clone[T any](value T) T {
	var clone T
	if err := deepcopy.Copy(&clone, value); err != nil {
		return value
	}

	return clone
}
