// Package scene defines the canonical visual-novel scene shape that every
// stage of the recovery pipeline converges on: an optional [Scene] (background
// and audio), an ordered list of [Character] entries, and an ordered list of
// [Choice] entries, grouped in a [Result].
//
// Optional string fields are modelled as *string so that JSON output carries an
// explicit null for absent values, matching what the rendering layer expects.
// [Vocabulary] carries the caller-supplied lists of valid expressions,
// backgrounds and character names used to canonicalize values.
package scene
