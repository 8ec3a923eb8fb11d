package xslog

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/garrettladley/tally/internal/env"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"Warn", LevelWarn, false},
		{"error", LevelError, false},
		{"verbose", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvKey, "debug")
	if got := FromEnv(); got != LevelDebug {
		t.Errorf("FromEnv() = %q, want %q", got, LevelDebug)
	}

	t.Setenv(EnvKey, "nonsense")
	if got := FromEnv(); got != Default {
		t.Errorf("FromEnv() with invalid level = %q, want %q", got, Default)
	}
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		environment env.Environment
		wantPrefix  string
	}{
		{"production logs json", env.Production, "{"},
		{"development logs text", env.Development, "time="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := NewLogger(&buf, LevelInfo, tt.environment)
			logger.Debug("hidden")
			logger.Info("shown", Count(2))

			out := buf.String()
			if strings.Contains(out, "hidden") {
				t.Errorf("debug record written at info level: %q", out)
			}
			if !strings.HasPrefix(out, tt.wantPrefix) {
				t.Errorf("output %q does not start with %q", out, tt.wantPrefix)
			}
			if !strings.Contains(out, "count") {
				t.Errorf("output %q missing count attribute", out)
			}
		})
	}
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	if got := FromContext(t.Context()); got != slog.Default() {
		t.Errorf("FromContext(empty) = %p, want slog.Default()", got)
	}

	logger := Discard()
	ctx := WithLogger(t.Context(), logger)
	if got := FromContext(ctx); got != logger {
		t.Errorf("FromContext() = %p, want attached logger %p", got, logger)
	}
}
