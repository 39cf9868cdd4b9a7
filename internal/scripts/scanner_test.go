package scripts

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("print('hi')\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestScanRootAndSubfolders(t *testing.T) {
	d := t.TempDir()
	writeFile(t, filepath.Join(d, "b.py"))
	writeFile(t, filepath.Join(d, "a.py"))
	writeFile(t, filepath.Join(d, "notes.txt"))
	writeFile(t, filepath.Join(d, "effects", "blur.py"))
	writeFile(t, filepath.Join(d, ".hidden", "secret.py"))

	got, err := Scan(d, nil)
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}

	wantKeys := []string{"a.py", "b.py", "effects/blur.py"}
	if len(got) != len(wantKeys) {
		t.Fatalf("got %d scripts, want %d: %+v", len(got), len(wantKeys), got)
	}
	for i, key := range wantKeys {
		if got[i].Key != key {
			t.Errorf("scripts[%d].Key = %q, want %q", i, got[i].Key, key)
		}
	}

	if got[2].Category != "effects" {
		t.Errorf("Category = %q, want %q", got[2].Category, "effects")
	}
	if got[2].Name != "blur.py" {
		t.Errorf("Name = %q, want %q", got[2].Name, "blur.py")
	}
	if got[2].Path != filepath.Join(d, "effects", "blur.py") {
		t.Errorf("Path = %q", got[2].Path)
	}
}

func TestScanRespectsExtensions(t *testing.T) {
	d := t.TempDir()
	writeFile(t, filepath.Join(d, "a.py"))
	writeFile(t, filepath.Join(d, "b.sh"))
	writeFile(t, filepath.Join(d, "c.lua"))

	got, err := Scan(d, []string{".lua"})
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}
	if len(got) != 1 || got[0].Key != "c.lua" {
		t.Fatalf("got %+v, want only c.lua", got)
	}
}

func TestScanMissingFolder(t *testing.T) {
	if _, err := Scan(filepath.Join(t.TempDir(), "nope"), nil); err == nil {
		t.Fatal("expected error for missing folder")
	}
	if _, err := Scan("", nil); err == nil {
		t.Fatal("expected error for empty folder")
	}
}

func TestFind(t *testing.T) {
	catalog := []Script{
		{Key: "a.py"},
		{Key: "sub/b.py"},
	}

	if _, ok := Find(catalog, "sub/b.py"); !ok {
		t.Fatal("sub/b.py should be found")
	}
	if _, ok := Find(catalog, "c.py"); ok {
		t.Fatal("c.py should not be found")
	}
}
