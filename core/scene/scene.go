package scene

import "strings"

// Positions a character may occupy on stage.
const (
	PositionLeft        = "left"
	PositionCenter      = "center"
	PositionRight       = "right"
	PositionLeftCenter  = "left-center"
	PositionRightCenter = "right-center"
)

// Actions a character may perform in a scene.
const (
	ActionEnters = "enters"
	ActionExits  = "exits"
	ActionSpeaks = "speaks"
	ActionMoves  = "moves"
)

// Positions lists the closed position enumeration in display order.
var Positions = []string{PositionLeft, PositionCenter, PositionRight, PositionLeftCenter, PositionRightCenter}

// Actions lists the closed action enumeration.
var Actions = []string{ActionEnters, ActionExits, ActionSpeaks, ActionMoves}

// Scene holds the environment of a scene. All fields are optional.
type Scene struct {
	Background *string `json:"background" jsonschema:"description=Background identifier or slug"`
	Music      *string `json:"music" jsonschema:"description=Music track identifier"`
	SFX        *string `json:"sfx" jsonschema:"description=Sound effect identifier"`
}

// Character is a sprite on stage. Name is the only required field.
type Character struct {
	Name       string  `json:"name" jsonschema:"required,description=Character name"`
	Expression *string `json:"expression" jsonschema:"description=Facial expression label"`
	Outfit     *string `json:"outfit" jsonschema:"description=Outfit identifier"`
	Position   *string `json:"position" jsonschema:"enum=left,enum=center,enum=right,enum=left-center,enum=right-center"`
	Action     *string `json:"action" jsonschema:"enum=enters,enum=exits,enum=speaks,enum=moves"`
}

// Choice is a dialogue option offered to the user. Label is the short text
// shown on the button, Prompt is what gets sent when it is picked.
type Choice struct {
	Label  string `json:"label" jsonschema:"required"`
	Prompt string `json:"prompt" jsonschema:"required"`
}

// Result is the canonical {scene, characters, choices} shape.
// Characters and Choices are never nil so they encode as [] rather than null.
type Result struct {
	Scene      *Scene      `json:"scene"`
	Characters []Character `json:"characters"`
	Choices    []Choice    `json:"choices"`
}

// NewResult returns an empty result with non-nil slices.
func NewResult() *Result {
	return &Result{
		Characters: []Character{},
		Choices:    []Choice{},
	}
}

// IsEmpty reports whether the scene holds no fields and there are no
// characters or choices.
func (r *Result) IsEmpty() bool {
	if r == nil {
		return true
	}
	return r.Scene.IsEmpty() && len(r.Characters) == 0 && len(r.Choices) == 0
}

// IsEmpty reports whether no scene field is set.
func (s *Scene) IsEmpty() bool {
	return s == nil || (s.Background == nil && s.Music == nil && s.SFX == nil)
}

// Clone returns a deep copy of r.
func (r *Result) Clone() *Result {
	if r == nil {
		return nil
	}
	out := NewResult()
	if r.Scene != nil {
		out.Scene = &Scene{
			Background: cloneString(r.Scene.Background),
			Music:      cloneString(r.Scene.Music),
			SFX:        cloneString(r.Scene.SFX),
		}
	}
	for _, c := range r.Characters {
		out.Characters = append(out.Characters, Character{
			Name:       c.Name,
			Expression: cloneString(c.Expression),
			Outfit:     cloneString(c.Outfit),
			Position:   cloneString(c.Position),
			Action:     cloneString(c.Action),
		})
	}
	out.Choices = append(out.Choices, r.Choices...)
	return out
}

// DedupeCharacters removes characters whose names are case-insensitively
// equal to an earlier entry. It returns the names that were dropped.
func (r *Result) DedupeCharacters() []string {
	if r == nil || len(r.Characters) < 2 {
		return nil
	}
	seen := make(map[string]bool, len(r.Characters))
	kept := r.Characters[:0]
	var dropped []string
	for _, c := range r.Characters {
		key := strings.ToLower(strings.TrimSpace(c.Name))
		if seen[key] {
			dropped = append(dropped, c.Name)
			continue
		}
		seen[key] = true
		kept = append(kept, c)
	}
	r.Characters = kept
	return dropped
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

// IsPosition reports whether s belongs to the position enumeration.
func IsPosition(s string) bool {
	for _, p := range Positions {
		if p == s {
			return true
		}
	}
	return false
}

// IsAction reports whether s belongs to the action enumeration.
func IsAction(s string) bool {
	for _, a := range Actions {
		if a == s {
			return true
		}
	}
	return false
}
