package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	appenv "github.com/garrettladley/tally/internal/env"
)

// t.Setenv forbids t.Parallel, so these tests run sequentially.

func TestReadDefaults(t *testing.T) {
	for _, key := range []string{
		"TALLY_URL", "TALLY_REQUEST_TIMEOUT", "TALLY_REFRESH_INTERVAL",
		"TALLY_COUNTERS_TITLE", "TALLY_CAUSES_TITLE", "ENV", "LOG_FILE",
	} {
		// Setenv registers the restore; Unsetenv then clears the key for Read.
		t.Setenv(key, "")
		_ = os.Unsetenv(key)
	}

	got, err := Read()
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	want := Config{
		ServerURL:       "https://ruvimserver.ddns.net",
		RequestTimeout:  5 * time.Second,
		RefreshInterval: 30 * time.Second,
		CountersTitle:   "Death Counter",
		CausesTitle:     "Causes of Death",
		Env:             appenv.Production,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Read() mismatch (-want +got):\n%s", diff)
	}
}

func TestReadOverrides(t *testing.T) {
	t.Setenv("TALLY_URL", "http://localhost:8080")
	t.Setenv("TALLY_REQUEST_TIMEOUT", "250ms")
	t.Setenv("TALLY_REFRESH_INTERVAL", "0")
	t.Setenv("TALLY_COUNTERS_TITLE", "Tally")
	t.Setenv("TALLY_CAUSES_TITLE", "Reasons")
	t.Setenv("ENV", "development")
	t.Setenv("LOG_FILE", "/tmp/tally.log")

	got, err := Read()
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	want := Config{
		ServerURL:       "http://localhost:8080",
		RequestTimeout:  250 * time.Millisecond,
		RefreshInterval: 0,
		CountersTitle:   "Tally",
		CausesTitle:     "Reasons",
		Env:             appenv.Development,
		LogFile:         "/tmp/tally.log",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Read() mismatch (-want +got):\n%s", diff)
	}
}

func TestReadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"ENV", "staging"},
		{"TALLY_REQUEST_TIMEOUT", "soon"},
		{"TALLY_REQUEST_TIMEOUT", "0s"},
		{"TALLY_REQUEST_TIMEOUT", "-1s"},
		{"TALLY_REFRESH_INTERVAL", "-5s"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := Read(); err == nil {
				t.Errorf("Read() with %s=%q error = nil, want error", tt.key, tt.value)
			}
		})
	}
}
