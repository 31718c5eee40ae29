package slogobs

import "strings"

// Format selects how the handler renders records.
type Format string

const (
	// FormatCompact renders one line per record with attributes as a JSON object:
	//   2026-01-02 15:04:05  INFO scene linted {"lint.confidence":95}
	FormatCompact Format = "compact"

	// FormatPretty renders the message line followed by one indented line
	// per attribute.
	FormatPretty Format = "pretty"

	// FormatJSON renders one JSON object per record.
	FormatJSON Format = "json"
)

// ParseFormat is case-insensitive and returns FormatCompact for unknown input.
func ParseFormat(s string) Format {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatPretty:
		return FormatPretty
	case FormatJSON:
		return FormatJSON
	default:
		return FormatCompact
	}
}

func (f Format) String() string {
	return string(f)
}
