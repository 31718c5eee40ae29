// Package slogobs implements observability.Provider on top of log/slog.
//
// Spans and metric updates are logged at DEBUG, so a default INFO observer
// only prints the lint summary lines and warnings. Counter totals are kept in
// memory and can be read back with [Observer.Totals]. Output format and level
// come from SCENELINT_LOG_FORMAT and SCENELINT_LOG_LEVEL (falling back to
// LOG_FORMAT and LOG_LEVEL) unless overridden with [WithFormat] and [WithLevel].
package slogobs
