package bindings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/script-dock/internal/keyseq"
	"github.com/script-dock/internal/storage"
)

// Store manages persistence of script hotkey bindings. Every mutation is
// saved synchronously; a failed save keeps the in-memory state so the session
// stays usable.
type Store struct {
	filePath string
	byScript map[string]string // script key -> normalized combo
}

// Open loads the bindings file at path. A missing file yields an empty store.
// A malformed file is backed up and treated as empty rather than blocking
// startup.
func Open(path string) (*Store, error) {
	store := &Store{
		filePath: path,
		byScript: map[string]string{},
	}

	if err := store.Load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	}

	return store, nil
}

// Path returns the file the store persists to.
func (s *Store) Path() string {
	return s.filePath
}

// Load reads bindings from disk. Entries with an unusable script key or combo
// are treated as absent.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return err
	}

	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		// Corrupt file: keep a copy for inspection and start empty.
		_ = storage.Backup(s.filePath)
		s.byScript = map[string]string{}
		return nil
	}

	s.byScript = map[string]string{}
	for script, combo := range raw {
		script = cleanScriptKey(script)
		if script == "" {
			continue
		}
		normalized, err := keyseq.Normalize(combo)
		if err != nil {
			continue
		}
		s.byScript[script] = normalized
	}

	return nil
}

// Save writes bindings to disk atomically.
func (s *Store) Save() error {
	if err := os.MkdirAll(filepath.Dir(s.filePath), 0755); err != nil {
		return fmt.Errorf("failed to create bindings directory: %w", err)
	}

	// Best-effort backup of the previous file.
	_ = storage.Backup(s.filePath)

	data, err := json.MarshalIndent(s.byScript, "", "  ")
	if err != nil {
		return err
	}

	return storage.WriteAtomic(s.filePath, data)
}

// Assign binds a combo to a script and saves. If the combo is held by a
// different script it returns *ConflictError and changes nothing.
func (s *Store) Assign(script, combo string) error {
	script = cleanScriptKey(script)
	if script == "" {
		return fmt.Errorf("empty script key")
	}

	normalized, err := keyseq.Normalize(combo)
	if err != nil {
		return err
	}

	if owner, ok := s.ByCombo(normalized); ok && owner != script {
		return &ConflictError{Combo: normalized, Script: owner}
	}

	s.byScript[script] = normalized
	return s.Save()
}

// AssignForce binds a combo to a script, stealing it from any current owner,
// and saves. This is the overwrite path after the user confirms a conflict.
func (s *Store) AssignForce(script, combo string) error {
	script = cleanScriptKey(script)
	if script == "" {
		return fmt.Errorf("empty script key")
	}

	normalized, err := keyseq.Normalize(combo)
	if err != nil {
		return err
	}

	if owner, ok := s.ByCombo(normalized); ok && owner != script {
		delete(s.byScript, owner)
	}

	s.byScript[script] = normalized
	return s.Save()
}

// Remove deletes the binding for a script if present and saves. Removing an
// unbound script is a no-op.
func (s *Store) Remove(script string) error {
	script = cleanScriptKey(script)
	if _, ok := s.byScript[script]; !ok {
		return nil
	}
	delete(s.byScript, script)
	return s.Save()
}

// Resolve returns the combo bound to a script.
func (s *Store) Resolve(script string) (string, bool) {
	combo, ok := s.byScript[cleanScriptKey(script)]
	return combo, ok
}

// ByCombo returns the script holding a normalized combo.
func (s *Store) ByCombo(combo string) (string, bool) {
	for script, c := range s.byScript {
		if c == combo {
			return script, true
		}
	}
	return "", false
}

// List returns all bindings sorted by script key.
func (s *Store) List() []Binding {
	out := make([]Binding, 0, len(s.byScript))
	for script, combo := range s.byScript {
		out = append(out, Binding{Script: script, Combo: combo})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Script < out[j].Script
	})
	return out
}

// Reconcile drops bindings whose script no longer exists among current keys,
// so stale shortcuts don't survive folder refreshes. It returns the dropped
// bindings and saves only when something changed.
func (s *Store) Reconcile(currentKeys []string) ([]Binding, error) {
	present := make(map[string]bool, len(currentKeys))
	for _, key := range currentKeys {
		present[cleanScriptKey(key)] = true
	}

	var dropped []Binding
	for script, combo := range s.byScript {
		if !present[script] {
			dropped = append(dropped, Binding{Script: script, Combo: combo})
			delete(s.byScript, script)
		}
	}

	if len(dropped) == 0 {
		return nil, nil
	}

	sort.Slice(dropped, func(i, j int) bool {
		return dropped[i].Script < dropped[j].Script
	})
	return dropped, s.Save()
}

func cleanScriptKey(key string) string {
	return strings.TrimSpace(filepath.ToSlash(key))
}
