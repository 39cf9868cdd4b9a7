// Package keyseq normalizes key-combination strings so bindings can be
// compared against the key names the terminal reports.
package keyseq

import (
	"fmt"
	"regexp"
	"strings"
)

// Modifier order matches how the terminal reports combined presses
// ("alt+ctrl+a", never "ctrl+alt+a").
var modifierOrder = []string{"alt", "ctrl", "shift"}

var fnKeyRegex = regexp.MustCompile(`^f([1-9]|1[0-2])$`)

// Normalize converts a combo like "Ctrl+Alt+1" to its canonical lower-case
// form "alt+ctrl+1". It fails on empty input, modifier-only combos and combos
// with more than one non-modifier key.
func Normalize(combo string) (string, error) {
	raw := strings.Split(combo, "+")

	mods := map[string]bool{}
	key := ""
	for _, part := range raw {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		switch part {
		case "alt", "ctrl", "shift":
			mods[part] = true
		case "control":
			mods["ctrl"] = true
		default:
			if key != "" {
				return "", fmt.Errorf("combo %q has more than one key", combo)
			}
			key = part
		}
	}

	if key == "" {
		if len(mods) > 0 {
			return "", fmt.Errorf("combo %q has no key, only modifiers", combo)
		}
		return "", fmt.Errorf("empty key combination")
	}

	parts := []string{}
	for _, m := range modifierOrder {
		if mods[m] {
			parts = append(parts, m)
		}
	}
	parts = append(parts, key)
	return strings.Join(parts, "+"), nil
}

// Bindable reports whether a normalized combo is safe to use as a shortcut.
// Plain keys would shadow typing and list navigation, so a combo must carry
// alt or ctrl, or be a bare function key.
func Bindable(combo string) bool {
	if fnKeyRegex.MatchString(combo) {
		return true
	}
	return strings.HasPrefix(combo, "alt+") || strings.HasPrefix(combo, "ctrl+")
}

// Display renders a normalized combo for humans: "alt+ctrl+1" -> "Alt+Ctrl+1",
// "f5" -> "F5".
func Display(combo string) string {
	parts := strings.Split(combo, "+")
	for i, part := range parts {
		if part == "" {
			continue
		}
		if fnKeyRegex.MatchString(part) {
			parts[i] = strings.ToUpper(part)
			continue
		}
		parts[i] = strings.ToUpper(part[:1]) + part[1:]
	}
	return strings.Join(parts, "+")
}
