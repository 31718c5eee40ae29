package parse

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestJSONRepairer_Repair(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      any
		wantFixes bool
	}{
		{
			name:  "valid JSON needs no fixes",
			input: `{"scene": {"background": "park"}}`,
			want:  map[string]any{"scene": map[string]any{"background": "park"}},
		},
		{
			name:      "trailing commas",
			input:     `{"choices": ["Go", "Stay",],}`,
			want:      map[string]any{"choices": []any{"Go", "Stay"}},
			wantFixes: true,
		},
		{
			name:      "single quotes",
			input:     `{'name': 'Alice'}`,
			want:      map[string]any{"name": "Alice"},
			wantFixes: true,
		},
		{
			name:      "unquoted keys",
			input:     `{name: "Alice", mood: "sad"}`,
			want:      map[string]any{"name": "Alice", "mood": "sad"},
			wantFixes: true,
		},
		{
			name:      "line comment",
			input:     "{\"name\": \"Alice\" // the heroine\n}",
			want:      map[string]any{"name": "Alice"},
			wantFixes: true,
		},
		{
			name:      "truncated closing brackets",
			input:     `{"scene": {"background": "park"`,
			want:      map[string]any{"scene": map[string]any{"background": "park"}},
			wantFixes: true,
		},
		{
			name:      "schema wrapped value",
			input:     `{"background": {"type": "string", "value": "park"}}`,
			want:      map[string]any{"background": "park"},
			wantFixes: true,
		},
		{
			name:  "type and value with unknown type are kept",
			input: `{"type": "choice", "value": "Go"}`,
			want:  map[string]any{"type": "choice", "value": "Go"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := JSONRepairer{}.Repair(tt.input)
			if err != nil {
				t.Fatalf("Repair() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got.Value); diff != "" {
				t.Errorf("Repair() value mismatch (-want +got):\n%s", diff)
			}
			if (len(got.Fixes) > 0) != tt.wantFixes {
				t.Errorf("Repair() fixes = %v, wantFixes %v", got.Fixes, tt.wantFixes)
			}
		})
	}
}

func TestJSONRepairer_EmptyInput(t *testing.T) {
	for _, input := range []string{"", "   \n\t"} {
		_, err := JSONRepairer{}.Repair(input)
		if !errors.Is(err, ErrEmptyInput) {
			t.Errorf("Repair(%q) error = %v, want ErrEmptyInput", input, err)
		}
	}
}

// jsonrepair v0.2.4 indexes past its buffer on this input.
const crashingInput = "{'scene\":{\"background\":\"\\\"\\\"\"`:}"

func TestJSONRepairer_LibraryPanicBecomesError(t *testing.T) {
	got, err := JSONRepairer{}.Repair(crashingInput)
	if err == nil {
		t.Fatalf("Repair() = %+v, want error", got)
	}
	if !strings.Contains(err.Error(), "JSON repair failed") {
		t.Errorf("Repair() error = %q, want it to start the repair failure message", err)
	}
}

func TestJSONRepairer_NestedSchemaWrappers(t *testing.T) {
	input := `{"characters": {"type": "array", "value": [{"name": {"type": "string", "value": "Bob"}}]}}`

	got, err := Default.Repair(input)
	if err != nil {
		t.Fatalf("Repair() error = %v", err)
	}

	want := map[string]any{"characters": []any{map[string]any{"name": "Bob"}}}
	if diff := cmp.Diff(want, got.Value); diff != "" {
		t.Errorf("Repair() value mismatch (-want +got):\n%s", diff)
	}
	if !slices.Contains(got.Fixes, "Unwrapped 2 schema-style {type, value} wrapper(s)") {
		t.Errorf("Repair() fixes = %v, want unwrap count of 2", got.Fixes)
	}
}

func TestDescribeFixes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "trailing commas",
			input: `{"a": [1, 2,], }`,
			want:  []string{"Removed 2 trailing comma(s)"},
		},
		{
			name:  "single quotes",
			input: `{'a': 'b'}`,
			want:  []string{"Replaced single quotes with double quotes"},
		},
		{
			name:  "smart quotes",
			input: `{“a”: “b”}`,
			want:  []string{"Replaced smart quotes with straight quotes"},
		},
		{
			name:  "block comment",
			input: `{"a": /* note */ 1}`,
			want:  []string{"Removed comments from JSON"},
		},
		{
			name:  "unquoted keys",
			input: `{name: "Alice", expression: "happy"}`,
			want:  []string{"Quoted 2 unquoted key(s)"},
		},
		{
			name:  "bare words in arrays are not keys",
			input: `{"a": [true, false,]}`,
			want:  []string{"Removed 1 trailing comma(s)"},
		},
		{
			name:  "unbalanced brackets",
			input: `{"scene": {"background": "park"`,
			want:  []string{"Closed 2 unbalanced bracket(s)"},
		},
		{
			name:  "unterminated string",
			input: `{"name": "Ali`,
			want:  []string{"Closed unterminated string", "Closed 1 unbalanced bracket(s)"},
		},
		{
			name:  "braces and commas inside strings are ignored",
			input: `{"text": "a, } b",} `,
			want:  []string{"Removed 1 trailing comma(s)"},
		},
		{
			name:  "nothing recognised",
			input: `{"a": True}`,
			want:  []string{"Repaired malformed JSON syntax"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := describeFixes(tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("describeFixes() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseStringAs_Primitives(t *testing.T) {
	if got, err := ParseStringAs[bool](" true "); err != nil || !got {
		t.Errorf("ParseStringAs[bool]() = %v, %v, want true", got, err)
	}
	if got, err := ParseStringAs[int]("8\n"); err != nil || got != 8 {
		t.Errorf("ParseStringAs[int]() = %v, %v, want 8", got, err)
	}
	if got, err := ParseStringAs[float64]("0.5"); err != nil || got != 0.5 {
		t.Errorf("ParseStringAs[float64]() = %v, %v, want 0.5", got, err)
	}
	if got, err := ParseStringAs[string]("  as is "); err != nil || got != "  as is " {
		t.Errorf("ParseStringAs[string]() = %q, %v", got, err)
	}
	if _, err := ParseStringAs[int]("eight"); err == nil {
		t.Errorf("ParseStringAs[int](\"eight\") expected error")
	}
	if _, err := ParseStringAs[bool]("maybe"); err == nil {
		t.Errorf("ParseStringAs[bool](\"maybe\") expected error")
	}
}

func TestParseStringAs_Complex(t *testing.T) {
	type vocab struct {
		Expressions []string `json:"expressions"`
	}

	got, err := ParseStringAs[vocab](`{expressions: ['happy', 'sad',]}`)
	if err != nil {
		t.Fatalf("ParseStringAs() error = %v", err)
	}
	if diff := cmp.Diff(vocab{Expressions: []string{"happy", "sad"}}, got); diff != "" {
		t.Errorf("ParseStringAs() mismatch (-want +got):\n%s", diff)
	}

	names, err := ParseStringAs[[]string](`["Alice", "Bob"]`)
	if err != nil {
		t.Fatalf("ParseStringAs() error = %v", err)
	}
	if diff := cmp.Diff([]string{"Alice", "Bob"}, names); diff != "" {
		t.Errorf("ParseStringAs() mismatch (-want +got):\n%s", diff)
	}
}
