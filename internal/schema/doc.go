// Package schema maps an arbitrary decoded JSON object onto the canonical
// scene shape. It runs a fixed, ordered chain of small transform steps over a
// shared accumulator; each step either finds nothing to do or records what it
// changed as a fix. Unknown content is reported as a warning and never stops
// the chain.
package schema
