package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/script-dock/internal/app"
	"github.com/script-dock/internal/bindings"
	"github.com/script-dock/internal/config"
	"github.com/script-dock/internal/history"
	"github.com/script-dock/internal/keyseq"
	"github.com/script-dock/internal/logger"
	"github.com/script-dock/internal/runner"
	"github.com/script-dock/internal/scripts"
	"github.com/script-dock/internal/shortcuts"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

func getDetailedVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return version
	}

	if version != "0.1.0" && version != "" {
		return version
	}

	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}

	return version
}

var (
	flagFolder string
	flagConfig string
)

var rootCmd = &cobra.Command{
	Use:   "script-dock",
	Short: "script-dock - a dock for your automation scripts",
	Long: `script-dock shows the scripts in a folder, runs them on demand and
binds them to keyboard shortcuts that persist across sessions.

Run without arguments to start the TUI.

Examples:
  script-dock                        # Start the interactive dock
  script-dock --folder ~/scripts     # Use a folder without saving it
  script-dock list                   # Print scripts and their hotkeys
  script-dock run sketch_clean.py    # Run one script headless`,
	Version: getDetailedVersion(),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the script catalog with hotkey bindings",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, store, err := loadEnvironment()
		if err != nil {
			return err
		}

		catalog, err := scripts.Scan(cfg.ScriptsFolder, cfg.Extensions)
		if err != nil {
			return err
		}

		for _, s := range catalog {
			combo := ""
			if c, ok := store.Resolve(s.Key); ok {
				combo = keyseq.Display(c)
			}
			fmt.Printf("%-50s %s\n", s.Key, combo)
		}
		return nil
	},
}

var runCmd = &cobra.Command{
	Use:   "run <script-key-or-path>",
	Short: "Run one script without starting the TUI",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, _, err := loadEnvironment()
		if err != nil {
			return err
		}

		script, err := resolveScript(cfg, args[0])
		if err != nil {
			return err
		}

		r := runner.NewExecRunner(cfg.Interpreters)
		start := time.Now()
		result, err := r.Run(script.Path)

		recordRun(script, result, err, start)

		if err != nil {
			return err
		}
		fmt.Print(result.Output)
		if result.Error != "" {
			return fmt.Errorf("script failed: %s", result.Error)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagFolder, "folder", "", "scripts folder (overrides the config file)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config.toml (default: XDG config)")
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runCmd)
}

// resolveScript accepts either a catalog key ("effects/blur.py") or a plain
// file path and returns the script to run.
func resolveScript(cfg config.Config, arg string) (scripts.Script, error) {
	if catalog, err := scripts.Scan(cfg.ScriptsFolder, cfg.Extensions); err == nil {
		if script, ok := scripts.Find(catalog, arg); ok {
			return script, nil
		}
	}

	if st, err := os.Stat(arg); err == nil && !st.IsDir() {
		abs, err := filepath.Abs(arg)
		if err != nil {
			return scripts.Script{}, err
		}
		return scripts.Script{
			Key:  filepath.Base(abs),
			Name: filepath.Base(abs),
			Path: abs,
		}, nil
	}

	return scripts.Script{}, fmt.Errorf("script %q not found in %s and is not a file", arg, cfg.ScriptsFolder)
}

// loadEnvironment resolves the config and opens the binding store.
func loadEnvironment() (config.Config, string, *bindings.Store, error) {
	cfg, cfgPath, err := config.Load(flagConfig)
	if err != nil {
		return cfg, cfgPath, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if flagFolder != "" {
		cfg.ScriptsFolder = flagFolder
	}

	bindingsPath, err := config.BindingsPath()
	if err != nil {
		return cfg, cfgPath, nil, err
	}
	store, err := bindings.Open(bindingsPath)
	if err != nil {
		return cfg, cfgPath, nil, fmt.Errorf("failed to open bindings: %w", err)
	}

	return cfg, cfgPath, store, nil
}

func openHistory() *history.Manager {
	path, err := config.HistoryPath()
	if err != nil {
		logger.Error("run history disabled: %v", err)
		return nil
	}
	hist, err := history.NewManager(path)
	if err != nil {
		// History is advisory, never a reason to refuse to start.
		logger.Error("run history disabled: %v", err)
		return nil
	}
	return hist
}

func recordRun(script scripts.Script, result runner.Result, runErr error, startedAt time.Time) {
	hist := openHistory()
	if hist == nil {
		return
	}
	defer hist.Close()

	entry := history.Entry{
		Script:    script.Key,
		Path:      script.Path,
		StartedAt: startedAt,
		Duration:  result.Duration,
		OK:        runErr == nil && result.Error == "",
	}
	if runErr != nil {
		entry.Error = runErr.Error()
	} else {
		entry.Error = result.Error
	}
	if err := hist.Record(entry); err != nil {
		logger.Error("failed to record run: %v", err)
	}
}

func runTUI() error {
	if _, err := logger.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logger: %v\n", err)
	} else {
		defer logger.Close()
	}

	cfg, cfgPath, store, err := loadEnvironment()
	if err != nil {
		return err
	}

	hist := openHistory()
	if hist != nil {
		defer hist.Close()
	}

	model := app.NewModel(app.Options{
		Config:     cfg,
		ConfigPath: cfgPath,
		Bindings:   store,
		Registrar:  shortcuts.NewTable(),
		Runner:     runner.NewExecRunner(cfg.Interpreters),
		History:    hist,
	})

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running application: %w", err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
