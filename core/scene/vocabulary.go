package scene

// Vocabulary carries the caller's known values. An empty list means the
// corresponding field is unconstrained.
type Vocabulary struct {
	Expressions []string `json:"valid_expressions,omitempty" yaml:"expressions"`
	Backgrounds []string `json:"valid_backgrounds,omitempty" yaml:"backgrounds"`
	Characters  []string `json:"valid_characters,omitempty" yaml:"characters"`
}

// IsZero reports whether no list is populated.
func (v Vocabulary) IsZero() bool {
	return len(v.Expressions) == 0 && len(v.Backgrounds) == 0 && len(v.Characters) == 0
}
