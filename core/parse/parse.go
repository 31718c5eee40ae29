package parse

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// ParseStringAs converts content into T. Strings, booleans and numbers are
// converted directly after trimming; everything else is decoded as JSON
// through [Default], so malformed input is repaired first.
//
// Example usage:
//
//	strict, err := ParseStringAs[bool]("true")
//	limit, err := ParseStringAs[int](" 8 ")
//	names, err := ParseStringAs[[]string](`['Alice', 'Bob',]`)
func ParseStringAs[T any](content string) (T, error) {
	var result T
	target := reflect.ValueOf(&result).Elem()
	trimmed := strings.TrimSpace(content)

	switch target.Kind() {
	case reflect.String:
		target.SetString(content)
		return result, nil

	case reflect.Bool:
		val, err := strconv.ParseBool(trimmed)
		if err != nil {
			return result, fmt.Errorf("failed to parse %q as bool: %w", content, err)
		}
		target.SetBool(val)
		return result, nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		val, err := strconv.ParseInt(trimmed, 10, target.Type().Bits())
		if err != nil {
			return result, fmt.Errorf("failed to parse %q as int: %w", content, err)
		}
		target.SetInt(val)
		return result, nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		val, err := strconv.ParseUint(trimmed, 10, target.Type().Bits())
		if err != nil {
			return result, fmt.Errorf("failed to parse %q as uint: %w", content, err)
		}
		target.SetUint(val)
		return result, nil

	case reflect.Float32, reflect.Float64:
		val, err := strconv.ParseFloat(trimmed, target.Type().Bits())
		if err != nil {
			return result, fmt.Errorf("failed to parse %q as float: %w", content, err)
		}
		target.SetFloat(val)
		return result, nil

	default:
		repaired, err := Default.Repair(content)
		if err != nil {
			return result, fmt.Errorf("failed to decode content as %T: %w", result, err)
		}
		data, err := json.Marshal(repaired.Value)
		if err != nil {
			return result, fmt.Errorf("failed to re-encode repaired value: %w", err)
		}
		if err := json.Unmarshal(data, &result); err != nil {
			return result, fmt.Errorf("failed to unmarshal repaired JSON as %T: %w", result, err)
		}
		return result, nil
	}
}
