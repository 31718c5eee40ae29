package extract

import (
	"strings"
	"testing"
)

const canonicalJSON = `{"scene":{"background":"park"},"characters":[{"name":"Alice","expression":"happy"}],"choices":[{"label":"Go","prompt":"Go home"},{"label":"Stay","prompt":"Stay here"}]}`

func TestAll_Sources(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantSource string
	}{
		{name: "vn-scene fence", input: "```vn-scene\n" + canonicalJSON + "\n```", wantSource: "vn-scene-block"},
		{name: "scene xml tag", input: "<scene>" + canonicalJSON + "</scene>", wantSource: "scene-xml-tag"},
		{name: "scene bracket tag", input: "[scene]" + canonicalJSON + "[/scene]", wantSource: "scene-bracket-tag"},
		{name: "hinted json fence", input: "```json\n// scene data\n" + canonicalJSON + "\n```", wantSource: "json-fence-hinted"},
		{name: "json fence", input: "Text\n```json\n" + canonicalJSON + "\n```\nMore", wantSource: "json-fence"},
		{name: "plain fence", input: "```\n" + canonicalJSON + "\n```", wantSource: "plain-fence"},
		{name: "javascript fence", input: "```javascript\n" + canonicalJSON + "\n```", wantSource: "js-fence"},
		{name: "text fence", input: "```text\n" + canonicalJSON + "\n```", wantSource: "text-fence"},
		{name: "unclosed fence", input: "Sure!\n```json\n" + canonicalJSON, wantSource: "unclosed-fence"},
		{name: "tilde fence", input: "~~~json\n" + canonicalJSON + "\n~~~", wantSource: "tilde-fence"},
		{name: "bare object", input: "  " + canonicalJSON + "\n", wantSource: "bare-json"},
		{name: "json after prose", input: "Here is the scene:\n" + canonicalJSON, wantSource: "json-after-intro"},
		{name: "object inside prose", input: "Before " + canonicalJSON + " after.", wantSource: "balanced-object"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cands := All(tt.input)
			if len(cands) == 0 {
				t.Fatalf("All() found no candidates")
			}
			best := Best(tt.input)
			if !best.Found() {
				t.Fatalf("Best() found nothing")
			}
			if best.Source != tt.wantSource {
				t.Errorf("Best().Source = %q, want %q", best.Source, tt.wantSource)
			}
			if best.RawJSON != canonicalJSON {
				t.Errorf("Best().RawJSON = %q, want canonical JSON", best.RawJSON)
			}
		})
	}
}

func TestAll_UnclosedFenceCandidate(t *testing.T) {
	input := "```json\n{\"scene\":{\"background\":\"park\"}"
	var found *Candidate
	for _, c := range All(input) {
		if c.Source == "unclosed-fence" {
			found = c
		}
	}
	if found == nil {
		t.Fatalf("expected an unclosed-fence candidate")
	}
	if found.IsValid {
		t.Errorf("truncated JSON should not parse")
	}
	if found.ParseError == "" {
		t.Errorf("truncated JSON should carry a parse error")
	}
}

func TestAll_DeduplicatesByRawText(t *testing.T) {
	input := "```vn-scene\n" + canonicalJSON + "\n```"
	count := 0
	for _, c := range All(input) {
		if c.Raw == canonicalJSON {
			count++
			if c.Source != "vn-scene-block" {
				t.Errorf("duplicate should keep the first discovered source, got %q", c.Source)
			}
		}
	}
	if count != 1 {
		t.Errorf("canonical JSON appears %d times, want 1", count)
	}
}

func TestAll_TagWrappingFence(t *testing.T) {
	input := "<vn-scene>\n```json\n" + canonicalJSON + "\n```\n</vn-scene>"
	best := Best(input)
	if best.Source != "scene-xml-tag" {
		t.Errorf("Best().Source = %q, want scene-xml-tag", best.Source)
	}
	if best.RawJSON != canonicalJSON {
		t.Errorf("inner fence should be trimmed, got %q", best.RawJSON)
	}
}

func TestBest_ValidBeatsTruncatedRegardlessOfPosition(t *testing.T) {
	valid := `{"scene":{"background":"beach"},"characters":[{"name":"Bob"}],"choices":[]}`
	input := "```json\n{\"scene\":{\"background\":\"park\"},\"characters\":[{\"name\":\n```\nLet me try again: " + valid + " Enjoy!"

	best := Best(input)

	if best.RawJSON != valid {
		t.Errorf("Best().RawJSON = %q, want %q", best.RawJSON, valid)
	}
	if strings.HasSuffix(best.Source, "-invalid") {
		t.Errorf("a valid candidate existed, source should not be invalid: %q", best.Source)
	}
}

func TestBest_WrapperFix(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantFix bool
	}{
		{"tagged block", "```vn-scene\n" + canonicalJSON + "\n```", false},
		{"json fence", "```json\n" + canonicalJSON + "\n```", false},
		{"bare object", canonicalJSON, false},
		{"json after prose", "Here is the scene:\n" + canonicalJSON, false},
		{"javascript fence", "```javascript\n" + canonicalJSON + "\n```", true},
		{"tilde fence", "~~~json\n" + canonicalJSON + "\n~~~", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			best := Best(tt.input)
			if got := len(best.Fixes) > 0; got != tt.wantFix {
				t.Errorf("Best().Fixes = %v, want fix %v", best.Fixes, tt.wantFix)
			}
		})
	}
}

func TestBest_InvalidFallback(t *testing.T) {
	input := "```json\n{scene: {background: 'park'}, characters: [],}\n```"

	best := Best(input)

	if !best.Found() {
		t.Fatalf("Best() should return the top candidate even when invalid")
	}
	if best.Source != "json-fence-invalid" {
		t.Errorf("Best().Source = %q, want json-fence-invalid", best.Source)
	}
	if want := max(10, best.Candidate.Confidence-30); best.Confidence != want {
		t.Errorf("Best().Confidence = %d, want %d", best.Confidence, want)
	}
}

func TestBest_NoCandidates(t *testing.T) {
	best := Best("Just some prose without any braces.")
	if best.Found() {
		t.Errorf("Best() should not find anything, got %+v", best.Candidate)
	}
	if best.Attempts != 0 {
		t.Errorf("Attempts = %d, want 0", best.Attempts)
	}
	if best.Narrative != "Just some prose without any braces." {
		t.Errorf("Narrative = %q", best.Narrative)
	}
}

func TestBest_Narrative(t *testing.T) {
	input := "Alice waves.\n\n```vn-scene\n" + canonicalJSON + "\n```\n\n\n\nWhat do you do?"
	best := Best(input)
	want := "Alice waves.\n\nWhat do you do?"
	if best.Narrative != want {
		t.Errorf("Narrative = %q, want %q", best.Narrative, want)
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name string
		c    Candidate
		want int
	}{
		{
			name: "scene tag valid full",
			c:    Candidate{Priority: 10, IsValid: true, Raw: canonicalJSON},
			want: 100,
		},
		{
			name: "short invalid balanced",
			c:    Candidate{Priority: 3, Raw: `{"a":1}`},
			want: 10,
		},
		{
			name: "debug payload penalised",
			c:    Candidate{Priority: 5, IsValid: true, Raw: `{"error": "model overloaded", "code": 529}`},
			want: 40,
		},
		{
			name: "field bonuses",
			c:    Candidate{Priority: 3, IsValid: true, Raw: `{"characters": [{"expression": "sad"}]}`},
			want: 58,
		},
		{
			name: "never negative",
			c:    Candidate{Priority: 0, Raw: `{"debug":1}`},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := score(&tt.c); got != tt.want {
				t.Errorf("score() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLooksLikeScene(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{`{"scene":{"background":"park"}}`, true},
		{`{"background":"park"}`, true},
		{`{"chars":[]}`, true},
		{`{"options":["a","b"]}`, true},
		{`{"data":{"characters":[]}}`, true},
		{`{"speaker":{"name":"Bob"}}`, true},
		{`{"characters":"Alice"}`, false},
		{`{"error":"rate limited"}`, false},
		{`["a","b"]`, false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := LooksLikeScene(tt.raw); got != tt.want {
				t.Errorf("LooksLikeScene(%s) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestHasSceneData(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "vn-scene fence", input: "```vn-scene\n{}\n```", want: true},
		{name: "xml tag", input: "<scene>{}</scene>", want: true},
		{name: "quoted key", input: `blah "characters": []`, want: true},
		{name: "bare alias object", input: `{"chars":[{"who":"Bob"}]}`, want: true},
		{name: "prose", input: "Alice smiles and waves.", want: false},
		{name: "empty", input: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasSceneData(tt.input); got != tt.want {
				t.Errorf("HasSceneData() = %v, want %v", got, tt.want)
			}
		})
	}
}
