package slogobs

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Environment variables read by New when no explicit option is given.
const (
	EnvLogLevel  = "SCENELINT_LOG_LEVEL"
	EnvLogFormat = "SCENELINT_LOG_FORMAT"
)

// LevelTrace sits below slog.LevelDebug.
const LevelTrace = slog.LevelDebug - 4

// lookupEnv returns the first non-empty value among keys.
func lookupEnv(keys ...string) string {
	for _, key := range keys {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			return v
		}
	}
	return ""
}

// GetLogLevelFromEnv reads SCENELINT_LOG_LEVEL, then LOG_LEVEL.
// Unset or unknown values yield INFO.
func GetLogLevelFromEnv() slog.Level {
	return ParseLogLevel(lookupEnv(EnvLogLevel, "LOG_LEVEL"))
}

// GetFormatFromEnv reads SCENELINT_LOG_FORMAT, then LOG_FORMAT.
func GetFormatFromEnv() Format {
	return ParseFormat(lookupEnv(EnvLogFormat, "LOG_FORMAT"))
}

// ParseLogLevel maps TRACE, DEBUG, INFO, WARN/WARNING and ERROR
// (case-insensitive) to a slog.Level. Anything else is INFO.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "TRACE":
		return LevelTrace
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LogLevelString is the inverse of ParseLogLevel for the named levels.
func LogLevelString(level slog.Level) string {
	switch level {
	case LevelTrace:
		return "TRACE"
	case slog.LevelDebug:
		return "DEBUG"
	case slog.LevelInfo:
		return "INFO"
	case slog.LevelWarn:
		return "WARN"
	case slog.LevelError:
		return "ERROR"
	default:
		return fmt.Sprintf("LEVEL(%d)", level)
	}
}

// levelLabel buckets arbitrary levels into the five names.
func levelLabel(level slog.Level) string {
	switch {
	case level < slog.LevelDebug:
		return "TRACE"
	case level < slog.LevelInfo:
		return "DEBUG"
	case level < slog.LevelWarn:
		return "INFO"
	case level < slog.LevelError:
		return "WARN"
	default:
		return "ERROR"
	}
}
