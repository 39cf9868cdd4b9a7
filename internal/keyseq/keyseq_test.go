package keyseq

import "testing"

func TestNormalizeOrdersModifiers(t *testing.T) {
	got, err := Normalize("Ctrl+Alt+1")
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}
	if got != "alt+ctrl+1" {
		t.Fatalf("got %q, want %q", got, "alt+ctrl+1")
	}
}

func TestNormalizeTrimsAndLowercases(t *testing.T) {
	got, err := Normalize(" Shift + Ctrl + X ")
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}
	if got != "ctrl+shift+x" {
		t.Fatalf("got %q, want %q", got, "ctrl+shift+x")
	}
}

func TestNormalizeAcceptsControlAlias(t *testing.T) {
	got, err := Normalize("Control+R")
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}
	if got != "ctrl+r" {
		t.Fatalf("got %q, want %q", got, "ctrl+r")
	}
}

func TestNormalizeRejectsBadInput(t *testing.T) {
	for _, combo := range []string{"", "ctrl+alt", "ctrl", "a+b", "  +  "} {
		if _, err := Normalize(combo); err == nil {
			t.Errorf("Normalize(%q) should fail", combo)
		}
	}
}

func TestBindable(t *testing.T) {
	bindable := []string{"f1", "f12", "ctrl+a", "alt+x", "alt+ctrl+1", "ctrl+shift+p"}
	for _, combo := range bindable {
		if !Bindable(combo) {
			t.Errorf("Bindable(%q) = false, want true", combo)
		}
	}

	unbindable := []string{"a", "1", "enter", "shift+tab", "f13", "up"}
	for _, combo := range unbindable {
		if Bindable(combo) {
			t.Errorf("Bindable(%q) = true, want false", combo)
		}
	}
}

func TestDisplay(t *testing.T) {
	if got := Display("alt+ctrl+1"); got != "Alt+Ctrl+1" {
		t.Fatalf("got %q, want %q", got, "Alt+Ctrl+1")
	}
	if got := Display("f5"); got != "F5" {
		t.Fatalf("got %q, want %q", got, "F5")
	}
	if got := Display("ctrl+shift+x"); got != "Ctrl+Shift+X" {
		t.Fatalf("got %q, want %q", got, "Ctrl+Shift+X")
	}
}
