package utils

import (
	"strings"
	"testing"
)

func TestJSONToString(t *testing.T) {
	compact := JSONToString(map[string]int{"a": 1})
	if strings.Contains(compact, "\n") {
		t.Errorf("JSONToString() compact mode should not contain newlines, got: %q", compact)
	}

	indented := JSONToString(map[string]int{"x": 42}, true)
	if !strings.Contains(indented, "\n  ") {
		t.Errorf("JSONToString(indent=true) should be indented, got: %q", indented)
	}

	// Channels cannot be marshaled to JSON.
	if got := JSONToString(make(chan int)); !strings.HasPrefix(got, `{"error":`) {
		t.Errorf("JSONToString() on unmarshalable value should return error JSON, got: %q", got)
	}
}

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		max    int
		suffix string
		want   string
	}{
		{name: "short string unchanged", input: "hello", max: 10, suffix: "...", want: "hello"},
		{name: "exact length unchanged", input: "hello", max: 5, suffix: "...", want: "hello"},
		{name: "cut with suffix", input: "hello world", max: 8, suffix: "...", want: "hello..."},
		{name: "multibyte runes counted once", input: "ééééé", max: 4, suffix: "…", want: "ééé…"},
		{name: "trailing space trimmed before suffix", input: "ab cdef", max: 5, suffix: "..", want: "ab.."},
		{name: "zero budget means no limit", input: "hello", max: 0, suffix: "...", want: "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateRunes(tt.input, tt.max, tt.suffix); got != tt.want {
				t.Errorf("TruncateRunes() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPreview(t *testing.T) {
	if got := Preview("a\n\n  b"); got != "a b" {
		t.Errorf("Preview() = %q, want %q", got, "a b")
	}
	long := strings.Repeat("x", DefaultPreviewLength+20)
	got := Preview(long)
	if !strings.HasSuffix(got, "(100 chars)") {
		t.Errorf("Preview() should report the original length, got %q", got)
	}
}

func TestFoldAndCompact(t *testing.T) {
	tests := []struct {
		input       string
		wantFold    string
		wantCompact string
	}{
		{input: "Café", wantFold: "cafe", wantCompact: "cafe"},
		{input: "Living-Room", wantFold: "living-room", wantCompact: "livingroom"},
		{input: "living_room", wantFold: "living_room", wantCompact: "livingroom"},
		{input: "Zoë Ångström", wantFold: "zoe angstrom", wantCompact: "zoeangstrom"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Fold(tt.input); got != tt.wantFold {
				t.Errorf("Fold(%q) = %q, want %q", tt.input, got, tt.wantFold)
			}
			if got := Compact(tt.input); got != tt.wantCompact {
				t.Errorf("Compact(%q) = %q, want %q", tt.input, got, tt.wantCompact)
			}
		})
	}
}

func TestSlug(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"park", "park"},
		{"City Street", "city_street"},
		{"  --school__hallway-- ", "school_hallway"},
		{"café at night", "café_at_night"},
		{"!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Slug(tt.input); got != tt.want {
				t.Errorf("Slug(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if again := Slug(Slug(tt.input)); again != tt.want {
				t.Errorf("Slug should be idempotent, got %q", again)
			}
		})
	}
}
