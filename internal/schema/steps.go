package schema

import (
	"fmt"
	"regexp"
	"slices"
	"sort"
	"strings"

	"github.com/Coneja-Chibi/Cotton-Tales-sub001/internal/lookup"
	"github.com/Coneja-Chibi/Cotton-Tales-sub001/internal/shape"
)

// step is one transform of the chain. Every step is a no-op when its
// precondition does not hold, so running the chain twice adds no fixes.
type step struct {
	name  string
	apply func(*state)
}

var steps = []step{
	{"unwrap-envelope", unwrapEnvelope},
	{"discover-scene", discoverScene},
	{"rename-scene-fields", renameSceneFields},
	{"absorb-flat-fields", absorbFlatFields},
	{"discover-characters", discoverCharacters},
	{"rename-character-fields", renameCharacterFields},
	{"split-combined-names", splitCombinedNames},
	{"promote-single-character", promoteSingleCharacter},
	{"discover-choices", discoverChoices},
	{"rename-choice-fields", renameChoiceFields},
	{"coerce-string-choices", coerceStringChoices},
	{"split-label-prompt", splitLabelPrompt},
	{"report-unknown-fields", reportUnknownFields},
	{"wrap-bare-objects", wrapBareObjects},
	{"coerce-strings", coerceStrings},
}

// maxEnvelopeDepth bounds how many nested envelopes are peeled.
const maxEnvelopeDepth = 3

func unwrapEnvelope(s *state) {
	for range maxEnvelopeDepth {
		if hasCanonicalKey(s.work) {
			return
		}
		key, ok := firstOfKind(s.work, lookup.EnvelopeKeys, shape.Object)
		if !ok {
			return
		}
		s.reportSiblings(key)
		s.work = shape.AsObject(s.work[key])
		s.fix("Unwrapped '%s' envelope", key)
	}
}

// reportSiblings warns about keys next to the envelope key, which are lost
// once the envelope replaces the working object.
func (s *state) reportSiblings(envelope string) {
	keys := make([]string, 0, len(s.work))
	for k := range s.work {
		if k != envelope && !slices.Contains(lookup.KnownTopLevelKeys, k) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		s.warn("Ignored unknown top-level field '%s'", k)
	}
}

func hasCanonicalKey(obj map[string]any) bool {
	for _, k := range []string{"scene", "characters", "choices"} {
		if _, ok := obj[k]; ok {
			return true
		}
	}
	return false
}

// firstOfKind returns the first key from keys whose value in obj has kind k.
func firstOfKind(obj map[string]any, keys []string, k shape.Kind) (string, bool) {
	for _, key := range keys {
		if shape.Of(obj, key) == k {
			return key, true
		}
	}
	return "", false
}

func discoverScene(s *state) {
	key, ok := firstOfKind(s.work, lookup.SceneKeys, shape.Object)
	if !ok {
		return
	}
	s.scene = shape.AsObject(s.work[key])
	s.consumed[key] = true
	if key != "scene" {
		s.fix("Renamed '%s' to 'scene'", key)
	}
}

func renameSceneFields(s *state) {
	for _, field := range lookup.SceneFields {
		if from, ok := renameField(s.scene, field); ok {
			s.fix("Renamed scene.%s to scene.%s", from, field.Canonical)
		}
	}
}

// renameField moves the first alias present in obj to the canonical key
// unless the canonical key is already set. It returns the alias moved.
func renameField(obj map[string]any, field lookup.FieldAliases) (string, bool) {
	if _, ok := obj[field.Canonical]; ok {
		return "", false
	}
	for _, alias := range field.Aliases {
		if alias == field.Canonical {
			continue
		}
		if v, ok := obj[alias]; ok {
			obj[field.Canonical] = v
			delete(obj, alias)
			return alias, true
		}
	}
	return "", false
}

func absorbFlatFields(s *state) {
	// A string-valued top-level "scene" names the background.
	if shape.Of(s.work, "scene") == shape.Scalar {
		if _, set := s.scene["background"]; !set {
			s.scene["background"] = s.work["scene"]
			s.consumed["scene"] = true
			s.fix("Moved top-level 'scene' value into scene.background")
		}
	}
	for _, field := range lookup.SceneFields {
		if _, set := s.scene[field.Canonical]; set {
			continue
		}
		for _, alias := range field.Aliases {
			if s.consumed[alias] || shape.Of(s.work, alias) != shape.Scalar {
				continue
			}
			s.scene[field.Canonical] = s.work[alias]
			s.consumed[alias] = true
			s.fix("Moved top-level '%s' into scene.%s", alias, field.Canonical)
			break
		}
	}
}

// discoverList adopts the first array under keys, looking at the top level
// first and then inside the scene object. A bare object under the canonical
// key is kept for wrapBareObjects.
func discoverList(s *state, canonical string, keys []string) any {
	if key, ok := firstOfKind(s.work, keys, shape.Array); ok {
		s.consumed[key] = true
		if key != canonical {
			s.fix("Renamed '%s' to '%s'", key, canonical)
		}
		return s.work[key]
	}
	if key, ok := firstOfKind(s.scene, keys, shape.Array); ok {
		v := s.scene[key]
		delete(s.scene, key)
		s.fix("Moved '%s' out of the scene object into '%s'", key, canonical)
		return v
	}
	if shape.Of(s.work, canonical) == shape.Object {
		s.consumed[canonical] = true
		return s.work[canonical]
	}
	return nil
}

func discoverCharacters(s *state) {
	s.characters = discoverList(s, "characters", lookup.CharacterKeys)
}

func renameCharacterFields(s *state) {
	items := shape.AsArray(s.characters)
	for i, el := range items {
		items[i] = s.characterElement(i, el)
	}
}

// characterElement renames the fields of one character, turning scalars
// into {name: value}. Unusable elements become nil and are skipped by build.
func (s *state) characterElement(i int, el any) any {
	switch shape.Classify(el) {
	case shape.Object:
		obj := shape.AsObject(el)
		for _, field := range lookup.CharacterFields {
			if from, ok := renameField(obj, field); ok {
				s.fix("Renamed characters[%d].%s to %s", i, from, field.Canonical)
			}
		}
		return obj
	case shape.Scalar:
		name, _ := shape.Stringify(el)
		s.fix("Converted characters[%d] from %s to {name}", i, shape.TypeName(el))
		return map[string]any{"name": name}
	default:
		s.warn("Dropped characters[%d]: %s is not a character", i, shape.TypeName(el))
		return nil
	}
}

var combinedName = regexp.MustCompile(`^\s*([^(\[]+?)\s*[(\[]\s*([^)\]]+?)\s*[)\]]\s*$`)

func splitCombinedNames(s *state) {
	for i, el := range shape.AsArray(s.characters) {
		s.splitName(i, shape.AsObject(el))
	}
}

// splitName turns {"name": "Alice (happy)"} into name and expression. An
// explicit expression is kept.
func (s *state) splitName(i int, obj map[string]any) {
	name, ok := obj["name"].(string)
	if !ok {
		return
	}
	m := combinedName.FindStringSubmatch(name)
	if m == nil {
		return
	}
	obj["name"] = m[1]
	if expr, _ := obj["expression"].(string); strings.TrimSpace(expr) == "" {
		obj["expression"] = m[2]
		s.fix("Split characters[%d] '%s' into name and expression", i, name)
		return
	}
	s.fix("Removed annotation from characters[%d] name '%s'", i, name)
}

func promoteSingleCharacter(s *state) {
	if s.characters != nil {
		return
	}
	key, ok := firstOfKind(s.work, lookup.SingleCharacterKeys, shape.Object)
	if !ok {
		return
	}
	s.consumed[key] = true
	obj := s.characterElement(0, s.work[key])
	s.splitName(0, shape.AsObject(obj))
	s.characters = []any{obj}
	s.fix("Wrapped single '%s' object into characters array", key)
}

func discoverChoices(s *state) {
	s.choices = discoverList(s, "choices", lookup.ChoiceKeys)
}

func renameChoiceFields(s *state) {
	items := shape.AsArray(s.choices)
	for i, el := range items {
		if obj := shape.AsObject(el); obj != nil {
			items[i] = s.choiceElement(i, obj)
		}
	}
}

// choiceElement resolves label and prompt of one choice object. When only
// one of them is present it is copied into the other.
func (s *state) choiceElement(i int, obj map[string]any) *choiceDraft {
	d := &choiceDraft{}
	for _, field := range lookup.ChoiceFields {
		if from, ok := renameField(obj, field); ok {
			s.fix("Renamed choices[%d].%s to %s", i, from, field.Canonical)
		}
	}
	d.label, d.prompt = obj["label"], obj["prompt"]

	switch {
	case d.label != nil && d.prompt == nil:
		d.prompt = d.label
		d.derived = true
		s.fix("Copied choices[%d].label into prompt", i)
	case d.label == nil && d.prompt != nil:
		d.label = d.prompt
		s.fix("Copied choices[%d].prompt into label", i)
	}
	return d
}

func coerceStringChoices(s *state) {
	items := shape.AsArray(s.choices)
	for i, el := range items {
		if str, ok := el.(string); ok {
			items[i] = &choiceDraft{label: str, prompt: str, derived: true}
			s.fix("Converted choices[%d] from string to {label, prompt}", i)
		}
	}
}

func splitLabelPrompt(s *state) {
	for i, el := range shape.AsArray(s.choices) {
		d, ok := el.(*choiceDraft)
		if !ok || !d.derived {
			continue
		}
		label, ok := d.label.(string)
		if !ok {
			continue
		}
		before, after, found := strings.Cut(label, ":")
		before, after = strings.TrimSpace(before), strings.TrimSpace(after)
		if !found || before == "" || after == "" {
			continue
		}
		d.label, d.prompt, d.derived = before, after, false
		s.fix("Split choices[%d] label '%s' into label and prompt", i, label)
	}
}

func reportUnknownFields(s *state) {
	keys := make([]string, 0, len(s.work))
	for k := range s.work {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if s.consumed[k] || slices.Contains(lookup.KnownTopLevelKeys, k) {
			continue
		}
		s.warn("Ignored unknown top-level field '%s'", k)
	}
}

func wrapBareObjects(s *state) {
	if obj := shape.AsObject(s.characters); obj != nil {
		el := s.characterElement(0, obj)
		s.splitName(0, shape.AsObject(el))
		s.characters = []any{el}
		s.fix("Wrapped characters object into an array")
	}
	if obj := shape.AsObject(s.choices); obj != nil {
		s.choices = []any{s.choiceElement(0, obj)}
		s.fix("Wrapped choices object into an array")
	}
}

func coerceStrings(s *state) {
	for _, field := range lookup.SceneFields {
		s.coerceLeaf(s.scene, field.Canonical, "scene."+field.Canonical)
	}

	for i, el := range shape.AsArray(s.characters) {
		obj := shape.AsObject(el)
		if obj == nil {
			continue
		}
		for _, field := range lookup.CharacterFields {
			s.coerceLeaf(obj, field.Canonical, fmt.Sprintf("characters[%d].%s", i, field.Canonical))
		}
	}

	items := shape.AsArray(s.choices)
	for i, el := range items {
		switch v := el.(type) {
		case *choiceDraft:
			v.label = s.coerceValue(v.label, fmt.Sprintf("choices[%d].label", i))
			v.prompt = s.coerceValue(v.prompt, fmt.Sprintf("choices[%d].prompt", i))
		case float64, bool:
			str, _ := shape.Stringify(v)
			items[i] = &choiceDraft{label: str, prompt: str}
			s.fix("Coerced choices[%d] from %s to {label, prompt}", i, shape.TypeName(v))
		case nil:
		default:
			s.warn("Dropped choices[%d]: %s is not a choice", i, shape.TypeName(v))
			items[i] = nil
		}
	}
}

// coerceLeaf forces obj[key] to a string, or removes it when nothing usable
// can be derived.
func (s *state) coerceLeaf(obj map[string]any, key, path string) {
	v, ok := obj[key]
	if !ok {
		return
	}
	coerced := s.coerceValue(v, path)
	if coerced == nil {
		delete(obj, key)
		return
	}
	obj[key] = coerced
}

func (s *state) coerceValue(v any, path string) any {
	switch v.(type) {
	case nil, string:
		return v
	}
	str, ok := shape.Stringify(v)
	if !ok {
		s.warn("Dropped %s: cannot use %s as text", path, shape.TypeName(v))
		return nil
	}
	s.fix("Coerced %s from %s to string", path, shape.TypeName(v))
	return str
}
