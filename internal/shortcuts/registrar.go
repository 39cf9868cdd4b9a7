// Package shortcuts is the boundary between the binding store and whatever
// dispatches key presses. The TUI consults a Table on every key event; tests
// can substitute their own Registrar.
package shortcuts

import (
	"errors"
	"fmt"
)

// ErrComboTaken is returned when registering a combo that another action
// already holds.
var ErrComboTaken = errors.New("key combination already registered")

// Registrar registers named shortcuts so a key press can be routed back to
// the action that owns it.
type Registrar interface {
	// Register associates a combo with a named action. Registering the same
	// name again re-binds it.
	Register(name, combo string) error
	// Deregister removes the named action and frees its combo.
	Deregister(name string)
	// Resolve returns the action registered for a combo.
	Resolve(combo string) (string, bool)
}

// Table is the in-memory Registrar the TUI's key loop consults.
type Table struct {
	byName  map[string]string
	byCombo map[string]string
}

// NewTable creates an empty shortcut table.
func NewTable() *Table {
	return &Table{
		byName:  map[string]string{},
		byCombo: map[string]string{},
	}
}

// Register implements Registrar.
func (t *Table) Register(name, combo string) error {
	if name == "" || combo == "" {
		return fmt.Errorf("empty shortcut name or combo")
	}

	if owner, ok := t.byCombo[combo]; ok && owner != name {
		return fmt.Errorf("%w: %s held by %s", ErrComboTaken, combo, owner)
	}

	// Re-binding a name frees its previous combo.
	if old, ok := t.byName[name]; ok {
		delete(t.byCombo, old)
	}

	t.byName[name] = combo
	t.byCombo[combo] = name
	return nil
}

// Deregister implements Registrar.
func (t *Table) Deregister(name string) {
	combo, ok := t.byName[name]
	if !ok {
		return
	}
	delete(t.byName, name)
	delete(t.byCombo, combo)
}

// Resolve implements Registrar.
func (t *Table) Resolve(combo string) (string, bool) {
	name, ok := t.byCombo[combo]
	return name, ok
}

// Clear drops every registration.
func (t *Table) Clear() {
	t.byName = map[string]string{}
	t.byCombo = map[string]string{}
}
