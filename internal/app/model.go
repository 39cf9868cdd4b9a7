package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/script-dock/internal/bindings"
	"github.com/script-dock/internal/config"
	"github.com/script-dock/internal/history"
	"github.com/script-dock/internal/keyseq"
	"github.com/script-dock/internal/logger"
	"github.com/script-dock/internal/runner"
	"github.com/script-dock/internal/scripts"
	"github.com/script-dock/internal/shortcuts"
	"github.com/script-dock/internal/ui"
)

// Options carries the explicitly constructed dependencies of the dock. The
// binding store, registrar and runner are passed in rather than created here
// so tests can substitute fakes.
type Options struct {
	Config     config.Config
	ConfigPath string
	Bindings   *bindings.Store
	Registrar  shortcuts.Registrar
	Runner     runner.Runner
	History    *history.Manager // optional, nil disables run history
}

// Model represents the application state
type Model struct {
	// Core dependencies
	cfg       config.Config
	cfgPath   string
	store     *bindings.Store
	registrar shortcuts.Registrar
	runner    runner.Runner
	hist      *history.Manager

	// Current screen and navigation state
	currentScreen  Screen
	previousScreen Screen

	// Script catalog, rebuilt on every rescan
	catalog   []scripts.Script
	gridIndex int

	// Hotkey binding flow
	pendingScript string // script being bound on the capture screen
	pendingCombo  string // combo awaiting conflict confirmation
	conflictOwner string // script currently holding pendingCombo

	lastRunScript string

	// Persistence write failures are surfaced once per session
	saveWarned bool

	// UI components
	list      list.Model
	viewport  viewport.Model
	textInput textinput.Model
	theme     ThemeColors

	// Terminal dimensions
	width  int
	height int

	// Error / notice state
	err error
}

// NewModel creates and initializes a new application model
func NewModel(opts Options) Model {
	ti := textinput.New()
	ti.Placeholder = "Enter scripts folder path"
	ti.CharLimit = 250

	startScreen := BrowseScreen
	if opts.Config.ViewMode == config.ViewGrid {
		startScreen = GridScreen
	}

	m := Model{
		cfg:           opts.Config,
		cfgPath:       opts.ConfigPath,
		store:         opts.Bindings,
		registrar:     opts.Registrar,
		runner:        opts.Runner,
		hist:          opts.History,
		currentScreen: startScreen,
		textInput:     ti,
		viewport:      ui.NewViewport(0, 0),
		theme:         DefaultTheme(),
	}
	m.list = ui.NewFilterableList([]list.Item{}, m.browseTitle(), 0, 0)
	return m
}

// Init kicks off the first folder scan (required by Bubble Tea)
func (m Model) Init() tea.Cmd {
	return m.rescan()
}

// Update handles messages and updates the model (required by Bubble Tea)
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-4)
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - 4
		return m, nil

	case scriptsScannedMsg:
		return m.handleScriptsScanned(msg)

	case scriptRanMsg:
		return m.handleScriptRan(msg)

	case historyLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m.navigateToCatalog(), nil
		}
		return m.navigateToHistory(msg.entries), nil
	}

	return m, nil
}

func (m Model) handleScriptsScanned(msg scriptsScannedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil && msg.scripts == nil {
		// Folder missing or unreadable: non-fatal, the catalog goes empty.
		m.err = msg.err
		m.catalog = nil
	} else {
		m.catalog = msg.scripts
		if msg.err != nil {
			// Scan worked but pruning stale bindings could not be saved.
			m.noteSaveFailure(msg.err)
		}
	}

	// Keep the shortcut table in lock-step with the store.
	for _, b := range msg.dropped {
		m.registrar.Deregister(b.Script)
	}
	m.registerBindings()

	if m.gridIndex >= len(m.catalog) {
		m.gridIndex = 0
	}

	if len(msg.dropped) > 0 && m.err == nil {
		m.err = fmt.Errorf("✓ Removed %d binding(s) for missing scripts", len(msg.dropped))
	}

	switch m.currentScreen {
	case BrowseScreen, GridScreen:
		return m.navigateToCatalog(), nil
	}
	return m, nil
}

func (m Model) handleScriptRan(msg scriptRanMsg) (tea.Model, tea.Cmd) {
	var output string
	switch {
	case msg.err != nil:
		output = "Error:\n" + msg.err.Error()
	case msg.result.Error != "":
		output = "Error:\n" + msg.result.Error
		if msg.result.Output != "" {
			output += "\n\nOutput:\n" + msg.result.Output
		}
	default:
		output = "Output:\n" + msg.result.Output
	}

	m.lastRunScript = msg.script
	m.viewport.SetContent(output)
	m.viewport.GotoTop()
	m.previousScreen = m.currentScreen
	m.currentScreen = OutputScreen
	return m, nil
}

// View renders the UI (required by Bubble Tea)
func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	var s strings.Builder

	// Show error or notice if present
	if m.err != nil {
		s.WriteString(fmt.Sprintf("⚠️  %v\n\n", m.err))
	}

	switch m.currentScreen {
	case GridScreen:
		s.WriteString(m.renderGrid())

	case FolderInputScreen:
		s.WriteString("Scripts Folder\n")
		s.WriteString(strings.Repeat("─", m.width) + "\n")
		s.WriteString("Enter the folder to scan for scripts:\n\n")
		s.WriteString(m.textInput.View())
		s.WriteString("\n\nPress Enter to save, Esc to cancel")

	case HotkeyCaptureScreen:
		s.WriteString("Assign Hotkey\n")
		s.WriteString(strings.Repeat("─", m.width) + "\n")
		s.WriteString(fmt.Sprintf("Script: %s\n\n", m.pendingScript))
		s.WriteString("Press the desired key combination\n")
		s.WriteString(m.GetHelpStyle().Render("Combos need Alt or Ctrl; bare F1-F12 also work"))
		s.WriteString("\n\nPress Esc to cancel")

	case ConflictConfirmScreen:
		s.WriteString("Hotkey Conflict\n")
		s.WriteString(strings.Repeat("─", m.width) + "\n")
		s.WriteString(fmt.Sprintf("%s is already bound to %s\n\n",
			m.GetComboStyle().Render(keyseq.Display(m.pendingCombo)), m.conflictOwner))
		s.WriteString(fmt.Sprintf("Rebind it to %s instead?\n\n", m.pendingScript))
		s.WriteString("Press 'y' to overwrite, any other key to cancel")

	case OutputScreen:
		s.WriteString(fmt.Sprintf("Run Output: %s\n", m.lastRunScript))
		s.WriteString(strings.Repeat("─", m.width) + "\n")
		s.WriteString(m.viewport.View())
		s.WriteString("\n\nPress 'Esc' to go back | ↑↓ to scroll")

	default:
		s.WriteString(m.list.View())
	}

	switch m.currentScreen {
	case BrowseScreen:
		s.WriteString("\n\n" + m.GetHelpStyle().Render(
			"Enter=run | b=bind | x=unbind | f=folder | r=refresh | tab=grid | c=copy path | h=hotkeys | H=history | q=quit"))
	case GridScreen:
		s.WriteString("\n\n" + m.GetHelpStyle().Render(
			"←→↑↓=move | Enter=run | b=bind | x=unbind | tab=list | q=quit"))
	case HotkeysListScreen, HistoryScreen:
		s.WriteString("\n\n" + m.GetHelpStyle().Render("Press 'Esc' to go back"))
	}

	return s.String()
}

// Commands

func (m Model) rescan() tea.Cmd {
	return func() tea.Msg {
		found, err := scripts.Scan(m.cfg.ScriptsFolder, m.cfg.Extensions)
		if err != nil {
			return scriptsScannedMsg{err: err}
		}

		// Prune bindings for scripts that vanished from the folder.
		dropped, saveErr := m.store.Reconcile(scripts.Keys(found))
		return scriptsScannedMsg{scripts: found, dropped: dropped, err: saveErr}
	}
}

func (m Model) runScript(s scripts.Script) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		result, err := m.runner.Run(s.Path)

		if m.hist != nil {
			entry := history.Entry{
				Script:    s.Key,
				Path:      s.Path,
				StartedAt: start,
				Duration:  result.Duration,
				OK:        err == nil && result.Error == "",
			}
			if err != nil {
				entry.Error = err.Error()
			} else {
				entry.Error = result.Error
			}
			if recErr := m.hist.Record(entry); recErr != nil {
				logger.Error("failed to record run of %s: %v", s.Key, recErr)
			}
		}

		return scriptRanMsg{script: s.Key, result: result, err: err}
	}
}

func (m Model) loadHistory() tea.Cmd {
	return func() tea.Msg {
		if m.hist == nil {
			return historyLoadedMsg{err: fmt.Errorf("run history unavailable")}
		}
		entries, err := m.hist.Recent(50)
		return historyLoadedMsg{entries: entries, err: err}
	}
}

// registerBindings loads every stored binding into the shortcut table.
func (m *Model) registerBindings() {
	for _, b := range m.store.List() {
		if err := m.registrar.Register(b.Script, b.Combo); err != nil {
			logger.Error("failed to register %s for %s: %v", b.Combo, b.Script, err)
		}
	}
}

// noteSaveFailure surfaces a persistence failure once per session. The
// in-memory state stays usable either way.
func (m *Model) noteSaveFailure(err error) {
	if err == nil {
		return
	}
	logger.Error("bindings save failed: %v", err)
	if m.saveWarned {
		return
	}
	m.saveWarned = true
	m.err = fmt.Errorf("bindings kept in memory only, save failed: %w", err)
}

func (m Model) browseTitle() string {
	folder := strings.TrimSpace(m.cfg.ScriptsFolder)
	if folder == "" {
		return "Scripts (no folder configured, press 'f')"
	}
	return "Scripts — " + folder
}
