package config

import (
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadMissingReturnsDefaults(t *testing.T) {
	d := t.TempDir()
	p := filepath.Join(d, "missing.toml")

	cfg, used, err := Load(p)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if used != p {
		t.Fatalf("used=%q, want %q", used, p)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Fatalf("cfg=%#v, want defaults", cfg)
	}
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	d := t.TempDir()
	p := filepath.Join(d, "sub", "config.toml")

	cfg := DefaultConfig()
	cfg.ScriptsFolder = "/home/me/scripts"
	cfg.ViewMode = ViewGrid
	cfg.Extensions = []string{".py", ".lua"}
	cfg.Interpreters = map[string]string{".lua": "lua"}

	if err := Save(p, cfg); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	got, used, err := Load(p)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if used != p {
		t.Fatalf("used=%q, want %q", used, p)
	}
	if !reflect.DeepEqual(got, cfg) {
		t.Fatalf("got=%#v\nwant=%#v", got, cfg)
	}
}

func TestLoadNormalizesViewMode(t *testing.T) {
	d := t.TempDir()
	p := filepath.Join(d, "config.toml")

	cfg := DefaultConfig()
	cfg.ViewMode = "buttons"
	if err := Save(p, cfg); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	got, _, err := Load(p)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if got.ViewMode != ViewList {
		t.Fatalf("ViewMode = %q, want %q", got.ViewMode, ViewList)
	}
}
