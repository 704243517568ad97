package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.DebounceMS != 3000 {
		t.Errorf("DebounceMS = %d, want 3000", cfg.DebounceMS)
	}
	if cfg.Debounce() != 3*time.Second {
		t.Errorf("Debounce() = %v, want 3s", cfg.Debounce())
	}
}

func TestDebounceFallsBackWhenNonPositive(t *testing.T) {
	cfg := &Config{DebounceMS: -100}
	if cfg.Debounce() != 3*time.Second {
		t.Errorf("Debounce() = %v, want 3s fallback", cfg.Debounce())
	}
}

func TestLoadMissingFileKeepsDefaults(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "absent.yaml"))
	if err := m.Load(); err != nil {
		t.Fatalf("Load() on missing file: %v", err)
	}
	if m.Get().DebounceMS != 3000 {
		t.Errorf("DebounceMS = %d, want default 3000", m.Get().DebounceMS)
	}
}

func TestLoadParsesYAMLAndExpandsEnv(t *testing.T) {
	t.Setenv("QUIET_TEST_LABEL", "Search")

	path := filepath.Join(t.TempDir(), "quiet.yaml")
	content := "debounce_ms: 500\nvalue: hello\nlabel: ${QUIET_TEST_LABEL}\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	m := NewManager(path)
	if err := m.Load(); err != nil {
		t.Fatalf("Load(): %v", err)
	}

	cfg := m.Get()
	if cfg.Debounce() != 500*time.Millisecond {
		t.Errorf("Debounce() = %v, want 500ms", cfg.Debounce())
	}
	if cfg.Value != "hello" {
		t.Errorf("Value = %q, want %q", cfg.Value, "hello")
	}
	if cfg.Label != "Search" {
		t.Errorf("Label = %q, want env-expanded %q", cfg.Label, "Search")
	}
	// Unset fields keep their defaults.
	if cfg.Placeholder == "" {
		t.Error("Placeholder lost its default")
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quiet.yaml")
	if err := os.WriteFile(path, []byte(":\n\t- nope"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := NewManager(path).Load(); err == nil {
		t.Error("Load() accepted malformed YAML")
	}
}

func TestSaveRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quiet.yaml")

	m := NewManager(path)
	m.Get().DebounceMS = 1234
	m.Get().Value = "persisted"
	if err := m.Save(); err != nil {
		t.Fatalf("Save(): %v", err)
	}

	again := NewManager(path)
	if err := again.Load(); err != nil {
		t.Fatalf("Load(): %v", err)
	}
	if again.Get().DebounceMS != 1234 || again.Get().Value != "persisted" {
		t.Errorf("round trip = %+v", again.Get())
	}
}
