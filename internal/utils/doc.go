// Package utils provides small shared helpers for the scene linter: pointer
// helpers for the optional string fields of the canonical scene, rune-aware
// truncation and JSON rendering for diagnostics, Unicode folding for
// accent- and separator-insensitive matching, and an elapsed-time [Timer]
// used for batch statistics.
package utils
