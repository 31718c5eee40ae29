package schema

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Coneja-Chibi/Cotton-Tales-sub001/core/scene"
	"github.com/Coneja-Chibi/Cotton-Tales-sub001/internal/shape"
	"github.com/Coneja-Chibi/Cotton-Tales-sub001/internal/utils"
)

// ErrNotObject is returned when the value handed to [Normalize] is not a JSON
// object and therefore has no structure to fix.
var ErrNotObject = errors.New("schema structure unfixable")

// Output is the result of schema normalization. Result is never nil when the
// error is nil, though it may be empty.
type Output struct {
	Result   *scene.Result
	Fixes    []string
	Warnings []string
}

// state is the accumulator threaded through the steps.
type state struct {
	work  map[string]any
	scene map[string]any
	// characters and choices hold nil, an []any of elements or a bare
	// map[string]any until step 14 wraps it.
	characters any
	choices    any
	// consumed marks top-level keys absorbed as aliases.
	consumed map[string]bool

	fixes    []string
	warnings []string
}

func (s *state) fix(format string, args ...any) {
	s.fixes = append(s.fixes, fmt.Sprintf(format, args...))
}

func (s *state) warn(format string, args ...any) {
	s.warnings = append(s.warnings, fmt.Sprintf(format, args...))
}

// choiceDraft is a choice whose fields have been resolved but not yet
// coerced to strings. derived is set when prompt was copied from label.
type choiceDraft struct {
	label   any
	prompt  any
	derived bool
}

// Normalize runs every step over value and builds the canonical result.
func Normalize(value any) (*Output, error) {
	return run(value, steps)
}

func run(value any, chain []step) (*Output, error) {
	obj, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected object, got %s", ErrNotObject, shape.TypeName(value))
	}

	s := &state{
		work:     obj,
		scene:    map[string]any{},
		consumed: map[string]bool{},
	}
	for _, st := range chain {
		st.apply(s)
	}

	result := s.build()
	for _, name := range result.DedupeCharacters() {
		s.fix("Removed duplicate character '%s'", name)
	}
	return &Output{Result: result, Fixes: s.fixes, Warnings: s.warnings}, nil
}

// build converts the accumulator into the canonical result. Step 15 has
// already coerced every leaf to a string or nil.
func (s *state) build() *scene.Result {
	out := scene.NewResult()

	sc := &scene.Scene{
		Background: stringField(s.scene, "background"),
		Music:      stringField(s.scene, "music"),
		SFX:        stringField(s.scene, "sfx"),
	}
	if !sc.IsEmpty() {
		out.Scene = sc
	}

	for i, el := range shape.AsArray(s.characters) {
		obj := shape.AsObject(el)
		if obj == nil {
			continue
		}
		name := strings.TrimSpace(utils.Deref(stringField(obj, "name")))
		if name == "" {
			s.warn("Dropped characters[%d]: no usable name", i)
			continue
		}
		out.Characters = append(out.Characters, scene.Character{
			Name:       name,
			Expression: stringField(obj, "expression"),
			Outfit:     stringField(obj, "outfit"),
			Position:   stringField(obj, "position"),
			Action:     stringField(obj, "action"),
		})
	}

	for i, el := range shape.AsArray(s.choices) {
		d, ok := el.(*choiceDraft)
		if !ok {
			continue
		}
		label, _ := d.label.(string)
		prompt, _ := d.prompt.(string)
		label, prompt = strings.TrimSpace(label), strings.TrimSpace(prompt)
		if label == "" && prompt == "" {
			s.warn("Dropped choices[%d]: empty label and prompt", i)
			continue
		}
		out.Choices = append(out.Choices, scene.Choice{Label: label, Prompt: prompt})
	}

	return out
}

// stringField returns obj[key] as a trimmed non-empty string pointer.
func stringField(obj map[string]any, key string) *string {
	v, _ := obj[key].(string)
	return utils.NonEmpty(strings.TrimSpace(v))
}

// Steps returns the names of the normalization steps in execution order.
func Steps() []string {
	names := make([]string, len(steps))
	for i, st := range steps {
		names[i] = st.name
	}
	return names
}
