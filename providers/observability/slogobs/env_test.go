package slogobs

import (
	"log/slog"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"TRACE", LevelTrace},
		{"debug", slog.LevelDebug},
		{"  DeBuG ", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLogLevel(tt.input); got != tt.want {
				t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLogLevelString_RoundTrip(t *testing.T) {
	for _, name := range []string{"TRACE", "DEBUG", "INFO", "WARN", "ERROR"} {
		if got := LogLevelString(ParseLogLevel(name)); got != name {
			t.Errorf("LogLevelString(ParseLogLevel(%q)) = %q", name, got)
		}
	}
	if got := LogLevelString(slog.Level(3)); got != "LEVEL(3)" {
		t.Errorf("LogLevelString(3) = %q, want LEVEL(3)", got)
	}
}

func TestGetLogLevelFromEnv(t *testing.T) {
	tests := []struct {
		name    string
		primary string
		generic string
		want    slog.Level
	}{
		{"primary wins", "DEBUG", "ERROR", slog.LevelDebug},
		{"generic fallback", "", "WARN", slog.LevelWarn},
		{"neither set", "", "", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvLogLevel, tt.primary)
			t.Setenv("LOG_LEVEL", tt.generic)
			if got := GetLogLevelFromEnv(); got != tt.want {
				t.Errorf("GetLogLevelFromEnv() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetFormatFromEnv(t *testing.T) {
	tests := []struct {
		name    string
		primary string
		generic string
		want    Format
	}{
		{"primary wins", "json", "pretty", FormatJSON},
		{"generic fallback", "", "PRETTY", FormatPretty},
		{"unknown", "xml", "", FormatCompact},
		{"neither set", "", "", FormatCompact},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvLogFormat, tt.primary)
			t.Setenv("LOG_FORMAT", tt.generic)
			if got := GetFormatFromEnv(); got != tt.want {
				t.Errorf("GetFormatFromEnv() = %v, want %v", got, tt.want)
			}
		})
	}
}
