package config

import (
	"testing"
	"time"
)

func TestGetenv(t *testing.T) {
	t.Setenv("TEST_STR", "value")

	if got := getenv("TEST_STR", "def"); got != "value" {
		t.Errorf("getenv() = %v, want value", got)
	}
	if got := getenv("TEST_STR_MISSING", "def"); got != "def" {
		t.Errorf("getenv() = %v, want default", got)
	}
}

func TestGetenvInt(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		def      int
		expected int
	}{
		{name: "valid int", value: "42", def: 1, expected: 42},
		{name: "invalid int falls back", value: "not-a-number", def: 7, expected: 7},
		{name: "unset falls back", value: "", def: 3, expected: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Setenv("TEST_INT", tt.value)
			}
			if got := getenvInt("TEST_INT", tt.def); got != tt.expected {
				t.Errorf("getenvInt() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestMustBool(t *testing.T) {
	t.Setenv("TEST_BOOL", "false")
	if got := mustBool("TEST_BOOL", true); got != false {
		t.Errorf("mustBool() = %v, want false", got)
	}

	t.Setenv("TEST_BOOL", "nope")
	if got := mustBool("TEST_BOOL", true); got != true {
		t.Errorf("mustBool() with invalid value = %v, want default", got)
	}
}

func TestMustDuration(t *testing.T) {
	t.Setenv("TEST_DUR", "30s")
	if got := mustDuration("TEST_DUR", time.Minute); got != 30*time.Second {
		t.Errorf("mustDuration() = %v, want 30s", got)
	}

	t.Setenv("TEST_DUR", "garbage")
	if got := mustDuration("TEST_DUR", time.Minute); got != time.Minute {
		t.Errorf("mustDuration() with invalid value = %v, want default", got)
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.ListenPort != ":8080" {
		t.Errorf("ListenPort = %v, want :8080", cfg.ListenPort)
	}
	if cfg.AutosaveQuiet != 10*time.Second {
		t.Errorf("AutosaveQuiet = %v, want 10s", cfg.AutosaveQuiet)
	}
	if cfg.SnapshotBackend != BackendFile {
		t.Errorf("SnapshotBackend = %v, want file", cfg.SnapshotBackend)
	}
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	t.Setenv("IDEAHUB_SNAPSHOT_BACKEND", "postgres")

	defer func() {
		if r := recover(); r == nil {
			t.Error("Load() should panic on unknown snapshot backend")
		}
	}()
	Load()
}
