package takeoff

import (
	"reflect"
	"strings"
)

// GetProp reads one numeric property from a template's untyped Properties
// value.
//
// Older snapshots store properties as a plain record (struct), newer ones as
// a key/value map; JSON decoding also yields map[string]any with float64
// values. The map shapes are checked first, then struct field access by
// case-insensitive name. Everything downstream of the geometry engine only
// ever sees plain numeric parameters.
func GetProp(properties any, key string, def float64) float64 {
	v, ok := LookupProp(properties, key)
	if !ok {
		return def
	}
	return v
}

// LookupProp is GetProp with an explicit found flag.
func LookupProp(properties any, key string) (float64, bool) {
	switch props := properties.(type) {
	case nil:
		return 0, false
	case map[string]float64:
		v, ok := props[key]
		return v, ok
	case map[string]any:
		return asNumber(props[key])
	default:
		return lookupField(properties, key)
	}
}

// LookupPropString reads a string-valued property (e.g. a column "shape").
// Only the map shapes can carry strings; the legacy record shape stored
// shape as a field, handled the same way through reflection.
func LookupPropString(properties any, key string) (string, bool) {
	switch props := properties.(type) {
	case map[string]any:
		s, ok := props[key].(string)
		return s, ok
	case map[string]string:
		s, ok := props[key]
		return s, ok
	default:
		rv := reflect.ValueOf(properties)
		for rv.Kind() == reflect.Pointer {
			if rv.IsNil() {
				return "", false
			}
			rv = rv.Elem()
		}
		if rv.Kind() != reflect.Struct {
			return "", false
		}
		field := rv.FieldByNameFunc(func(name string) bool {
			return strings.EqualFold(name, key)
		})
		if field.IsValid() && field.Kind() == reflect.String {
			return field.String(), true
		}
		return "", false
	}
}

func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// lookupField is the legacy record fallback: a struct (or pointer to one)
// with numeric fields named after the property keys.
func lookupField(properties any, key string) (float64, bool) {
	rv := reflect.ValueOf(properties)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return 0, false
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return 0, false
	}
	field := rv.FieldByNameFunc(func(name string) bool {
		return strings.EqualFold(name, key)
	})
	if !field.IsValid() {
		return 0, false
	}
	switch field.Kind() {
	case reflect.Float32, reflect.Float64:
		return field.Float(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(field.Int()), true
	default:
		return 0, false
	}
}
