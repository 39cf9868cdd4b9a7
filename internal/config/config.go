package config

// ViewMode selects how the script panel renders.
const (
	ViewList = "list"
	ViewGrid = "grid"
)

// Config is the persisted application configuration.
type Config struct {
	Version int `toml:"version"`

	// ScriptsFolder is the folder scanned for runnable scripts.
	ScriptsFolder string `toml:"scripts_folder"`

	// ViewMode is "list" or "grid".
	ViewMode string `toml:"view_mode"`

	// Extensions limits which files count as scripts. Empty means the
	// scanner defaults.
	Extensions []string `toml:"extensions"`

	// Interpreters overrides the extension -> program table, e.g.
	// ".py" = "python3.12".
	Interpreters map[string]string `toml:"interpreters"`
}

// DefaultConfig returns the configuration used when no file exists yet.
func DefaultConfig() Config {
	return Config{
		Version:  1,
		ViewMode: ViewList,
	}
}
