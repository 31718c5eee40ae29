// Package narrative mines scene data directly from prose when a response
// carries no recoverable JSON. It looks for a location, for characters
// (vocabulary mentions, "Name: dialogue" lines, *Name does something* spans
// and sentences opening with a name and an expressive verb) and for a list of
// choices, and scores its own confidence from what it found.
package narrative
