// Package shape classifies loosely-typed decoded JSON values into a small
// tagged variant so that normalizers can dispatch on structure explicitly
// instead of probing with ad-hoc type assertions.
package shape

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Kind is the structural class of a decoded JSON value.
type Kind int

const (
	// Missing is a nil value or an absent key.
	Missing Kind = iota
	// Object is a JSON object (map[string]any).
	Object
	// Array is a JSON array ([]any).
	Array
	// Scalar is a string, number or boolean.
	Scalar
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case Object:
		return "object"
	case Array:
		return "array"
	case Scalar:
		return "scalar"
	default:
		return "missing"
	}
}

// Classify returns the Kind of v.
func Classify(v any) Kind {
	switch v.(type) {
	case nil:
		return Missing
	case map[string]any:
		return Object
	case []any:
		return Array
	default:
		return Scalar
	}
}

// Of returns the kind of obj[key]; Missing when obj is nil or the key is absent.
func Of(obj map[string]any, key string) Kind {
	if obj == nil {
		return Missing
	}
	return Classify(obj[key])
}

// AsObject returns v as an object, or nil.
func AsObject(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

// AsArray returns v as an array, or nil.
func AsArray(v any) []any {
	a, _ := v.([]any)
	return a
}

// TypeName describes the JSON type of v for fix messages.
func TypeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, json.Number, int, int64:
		return "number"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	default:
		return "value"
	}
}

// Stringify renders a scalar as a string: numbers without a trailing ".0",
// booleans as "true"/"false". Arrays yield their first stringifiable element
// and objects yield the empty string. The boolean reports whether anything
// usable was found.
func Stringify(v any) (string, bool) {
	switch x := v.(type) {
	case nil:
		return "", false
	case string:
		return x, true
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true
	case json.Number:
		return x.String(), true
	case int:
		return strconv.Itoa(x), true
	case int64:
		return strconv.FormatInt(x, 10), true
	case bool:
		return strconv.FormatBool(x), true
	case []any:
		for _, item := range x {
			if s, ok := Stringify(item); ok && strings.TrimSpace(s) != "" {
				return s, true
			}
		}
		return "", false
	default:
		return "", false
	}
}
