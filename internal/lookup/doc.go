// Package lookup holds the curated vocabulary tables used by the scene
// normalizers and the narrative fallback: expression synonyms, emotion
// keywords, stage position and action variants, location phrases and the
// field-name aliases observed in LLM output.
//
// Every table is declared as literal data and turned into reverse indexes
// once, during package initialization. Nothing in this package is written to
// after init, so all lookups are safe for concurrent use without locking.
package lookup
