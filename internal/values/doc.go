// Package values canonicalizes the leaf values of a scene result: background
// and audio identifiers, character names, expressions, stage positions,
// actions and choice text. Matching against a caller-supplied
// [scene.Vocabulary] is accent- and case-insensitive.
//
// Normalization works on a deep copy and is idempotent: running it over its
// own output reports no further fixes.
package values
