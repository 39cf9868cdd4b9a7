// Package scripts builds the catalog of runnable scripts for a folder.
// Entries are ephemeral and rebuilt on every rescan.
package scripts

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Script identifies one runnable file in the scripts folder.
type Script struct {
	// Key is the folder-relative path with forward slashes. It stays stable
	// across rescans and is what bindings are keyed on.
	Key      string
	Name     string // file name, used for display
	Path     string // absolute path, used for execution
	Category string // subfolder name, "" for scripts in the folder root
}

// DefaultExtensions are the file extensions scanned when the config does not
// override them.
var DefaultExtensions = []string{".py", ".sh", ".js"}

// Scan lists scripts in folder: files in the root plus files one subfolder
// deep, both sorted by name. Hidden directories are skipped. A missing or
// unreadable folder is an error the caller surfaces as a notice.
func Scan(folder string, extensions []string) ([]Script, error) {
	if strings.TrimSpace(folder) == "" {
		return nil, fmt.Errorf("no scripts folder configured")
	}

	info, err := os.Stat(folder)
	if err != nil {
		return nil, fmt.Errorf("scripts folder unavailable: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scripts folder is not a directory: %s", folder)
	}

	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}

	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, fmt.Errorf("failed to read scripts folder: %w", err)
	}

	var scripts []Script
	var subdirs []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() {
			if !strings.HasPrefix(name, ".") {
				subdirs = append(subdirs, name)
			}
			continue
		}
		if !hasExtension(name, extensions) {
			continue
		}
		scripts = append(scripts, Script{
			Key:  name,
			Name: name,
			Path: filepath.Join(folder, name),
		})
	}

	sort.Strings(subdirs)
	for _, dir := range subdirs {
		subEntries, err := os.ReadDir(filepath.Join(folder, dir))
		if err != nil {
			continue
		}
		for _, entry := range subEntries {
			name := entry.Name()
			if entry.IsDir() || !hasExtension(name, extensions) {
				continue
			}
			scripts = append(scripts, Script{
				Key:      dir + "/" + name,
				Name:     name,
				Path:     filepath.Join(folder, dir, name),
				Category: dir,
			})
		}
	}

	sort.Slice(scripts, func(i, j int) bool {
		if scripts[i].Category != scripts[j].Category {
			return scripts[i].Category < scripts[j].Category
		}
		return scripts[i].Name < scripts[j].Name
	})

	return scripts, nil
}

// Keys returns the script keys for a catalog, in order.
func Keys(scripts []Script) []string {
	keys := make([]string, len(scripts))
	for i, s := range scripts {
		keys[i] = s.Key
	}
	return keys
}

// Find returns the script with the given key.
func Find(scripts []Script, key string) (Script, bool) {
	for _, s := range scripts {
		if s.Key == key {
			return s, true
		}
	}
	return Script{}, false
}

func hasExtension(name string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range extensions {
		if ext == strings.ToLower(e) {
			return true
		}
	}
	return false
}
