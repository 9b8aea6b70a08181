package config

import (
	"path/filepath"
	"testing"
)

func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
}

func TestLoad_DefaultsWhenMissing(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.ColorEnabled() {
		t.Error("color should default to enabled")
	}
	if !cfg.Search.HeteronymEnabled() {
		t.Error("heteronym should default to enabled")
	}
	if cfg.Picker.Height != 10 || cfg.Picker.Prompt != "> " {
		t.Errorf("unexpected picker defaults: %+v", cfg.Picker)
	}
	if Initialized() {
		t.Error("Initialized should be false before first Save")
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	isolate(t)

	cfg := defaultConfig()
	cfg.Color = BoolPtr(false)
	cfg.Search.Heteronym = BoolPtr(false)
	cfg.Picker.Height = 20
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Initialized() {
		t.Error("Initialized should be true after Save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.ColorEnabled() {
		t.Error("color=false not persisted")
	}
	if got.Search.HeteronymEnabled() {
		t.Error("heteronym=false not persisted")
	}
	if got.Picker.Height != 20 {
		t.Errorf("picker height = %d, want 20", got.Picker.Height)
	}
	if got.Picker.Prompt != "> " {
		t.Errorf("prompt default lost on reload: %q", got.Picker.Prompt)
	}
}

func TestGetPaths(t *testing.T) {
	isolate(t)

	p := GetPaths()
	if filepath.Base(p.ConfigDir) != "sift" || filepath.Base(p.DataDir) != "sift" {
		t.Errorf("paths not namespaced: %+v", p)
	}
	if filepath.Base(p.ConfigFile) != "config.toml" || filepath.Base(p.DBFile) != "sift.db" {
		t.Errorf("unexpected file names: %+v", p)
	}
}
