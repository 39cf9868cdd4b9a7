package shortcuts

import (
	"errors"
	"testing"
)

func TestRegisterAndResolve(t *testing.T) {
	tbl := NewTable()

	if err := tbl.Register("a.py", "ctrl+1"); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	name, ok := tbl.Resolve("ctrl+1")
	if !ok || name != "a.py" {
		t.Fatalf("Resolve = %q, %v", name, ok)
	}
}

func TestRegisterTakenCombo(t *testing.T) {
	tbl := NewTable()

	if err := tbl.Register("a.py", "ctrl+1"); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	err := tbl.Register("b.py", "ctrl+1")
	if !errors.Is(err, ErrComboTaken) {
		t.Fatalf("expected ErrComboTaken, got %v", err)
	}
}

func TestReRegisterFreesOldCombo(t *testing.T) {
	tbl := NewTable()

	if err := tbl.Register("a.py", "ctrl+1"); err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if err := tbl.Register("a.py", "ctrl+2"); err != nil {
		t.Fatalf("re-register error: %v", err)
	}

	if _, ok := tbl.Resolve("ctrl+1"); ok {
		t.Fatal("old combo should be free")
	}
	if name, _ := tbl.Resolve("ctrl+2"); name != "a.py" {
		t.Fatalf("new combo resolves to %q", name)
	}

	// The freed combo can be taken by someone else.
	if err := tbl.Register("b.py", "ctrl+1"); err != nil {
		t.Fatalf("Register of freed combo: %v", err)
	}
}

func TestDeregister(t *testing.T) {
	tbl := NewTable()

	if err := tbl.Register("a.py", "ctrl+1"); err != nil {
		t.Fatalf("Register error: %v", err)
	}
	tbl.Deregister("a.py")

	if _, ok := tbl.Resolve("ctrl+1"); ok {
		t.Fatal("combo should be gone after deregister")
	}

	// Deregistering an unknown name is a no-op.
	tbl.Deregister("missing.py")
}
