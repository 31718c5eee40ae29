package parse

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// ErrEmptyInput is returned when there is nothing to repair.
var ErrEmptyInput = errors.New("empty input")

// Repair is a decoded value together with the fixes needed to obtain it.
type Repair struct {
	Value any
	Fixes []string
}

// Repairer turns JSON-like text into a decoded value. Implementations must
// either return a non-nil Repair or an error describing why the text could
// not be recovered.
type Repairer interface {
	Repair(raw string) (*Repair, error)
}

// JSONRepairer is the default [Repairer], backed by jsonrepair.
type JSONRepairer struct{}

// Default is the repairer used when none is configured.
var Default Repairer = JSONRepairer{}

// Repair decodes raw, repairing its syntax when strict decoding fails.
func (JSONRepairer) Repair(raw string) (*Repair, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrEmptyInput
	}

	out := &Repair{}
	var value any
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		repaired, repairErr := repairSyntax(raw)
		if repairErr != nil {
			return nil, fmt.Errorf("JSON repair failed: %w (decode error: %v)", repairErr, err)
		}
		if err := json.Unmarshal([]byte(repaired), &value); err != nil {
			return nil, fmt.Errorf("repaired JSON still invalid: %w", err)
		}
		out.Fixes = describeFixes(raw)
	}

	var unwrapped int
	value = unwrapSchemaValues(value, &unwrapped)
	if unwrapped > 0 {
		out.Fixes = append(out.Fixes, fmt.Sprintf("Unwrapped %d schema-style {type, value} wrapper(s)", unwrapped))
	}
	out.Value = value
	return out, nil
}

// repairSyntax calls jsonrepair, converting a panic inside it into an
// error. Some malformed strings make the library index past its buffer.
func repairSyntax(raw string) (repaired string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("jsonrepair panicked: %v", r)
		}
	}()
	return jsonrepair.JSONRepair(raw)
}

// schemaTypes are the JSON Schema type names recognised in {type, value}
// wrappers. Objects with any other "type" are left untouched.
var schemaTypes = map[string]bool{
	"string": true, "number": true, "integer": true, "boolean": true,
	"object": true, "array": true, "null": true,
}

// unwrapSchemaValues replaces {"type": <schema type>, "value": v} objects with
// v, recursively, counting replacements in n.
//
// Example input:
//
//	{"background": {"type": "string", "value": "park"}}
//
// Example output:
//
//	{"background": "park"}
func unwrapSchemaValues(data any, n *int) any {
	switch v := data.(type) {
	case map[string]any:
		if len(v) == 2 {
			typ, hasType := v["type"].(string)
			value, hasValue := v["value"]
			if hasType && hasValue && schemaTypes[typ] {
				*n++
				return unwrapSchemaValues(value, n)
			}
		}
		for key, val := range v {
			v[key] = unwrapSchemaValues(val, n)
		}
		return v
	case []any:
		for i, val := range v {
			v[i] = unwrapSchemaValues(val, n)
		}
		return v
	default:
		return data
	}
}
