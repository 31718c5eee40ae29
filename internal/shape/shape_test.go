package shape

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  Kind
	}{
		{name: "nil", value: nil, want: Missing},
		{name: "object", value: map[string]any{"a": 1.0}, want: Object},
		{name: "array", value: []any{"x"}, want: Array},
		{name: "string", value: "x", want: Scalar},
		{name: "number", value: 3.0, want: Scalar},
		{name: "bool", value: true, want: Scalar},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.value); got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOf(t *testing.T) {
	obj := map[string]any{"chars": []any{}, "scene": map[string]any{}}
	if Of(obj, "chars") != Array {
		t.Errorf("Of(chars) should be array")
	}
	if Of(obj, "scene") != Object {
		t.Errorf("Of(scene) should be object")
	}
	if Of(obj, "nope") != Missing {
		t.Errorf("Of(nope) should be missing")
	}
	if Of(nil, "scene") != Missing {
		t.Errorf("Of(nil) should be missing")
	}
}

func TestStringify(t *testing.T) {
	tests := []struct {
		name   string
		value  any
		want   string
		wantOK bool
	}{
		{name: "string", value: "happy", want: "happy", wantOK: true},
		{name: "whole number", value: 3.0, want: "3", wantOK: true},
		{name: "fraction", value: 2.5, want: "2.5", wantOK: true},
		{name: "bool", value: false, want: "false", wantOK: true},
		{name: "array takes first usable", value: []any{"", "sad", "angry"}, want: "sad", wantOK: true},
		{name: "object", value: map[string]any{"x": "y"}, want: "", wantOK: false},
		{name: "nil", value: nil, want: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Stringify(tt.value)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Stringify() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
