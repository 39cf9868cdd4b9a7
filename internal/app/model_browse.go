package app

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/script-dock/internal/config"
	"github.com/script-dock/internal/keyseq"
	"github.com/script-dock/internal/scripts"
	"github.com/script-dock/internal/ui"
)

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	key := msg.String()

	// ctrl+c always quits and is never bindable.
	if key == "ctrl+c" {
		return m, tea.Quit
	}

	// Screens that consume raw key presses come first.
	switch m.currentScreen {
	case HotkeyCaptureScreen:
		return m.handleCaptureKey(msg)
	case ConflictConfirmScreen:
		return m.handleConflictKey(msg)
	case FolderInputScreen:
		return m.handleFolderInputKey(msg)
	}

	// While the list filter is active, keys belong to the filter input.
	if m.currentScreen == BrowseScreen && m.list.FilterState() == list.Filtering {
		m.list, cmd = ui.UpdateList(m.list, msg)
		return m, cmd
	}

	// Global shortcut dispatch: a registered combo runs its script.
	if script, ok := m.registrar.Resolve(key); ok {
		if s, found := scripts.Find(m.catalog, script); found {
			return m, m.runScript(s)
		}
		m.err = fmt.Errorf("script %s is missing from the folder", script)
		return m, nil
	}

	switch key {
	case "q":
		if m.currentScreen == BrowseScreen || m.currentScreen == GridScreen {
			return m, tea.Quit
		}
		return m.navigateToCatalog(), nil

	case "esc":
		return m.navigateBack()

	case "enter":
		return m.handleEnterKey()

	case "tab":
		if m.currentScreen == BrowseScreen || m.currentScreen == GridScreen {
			return m.toggleViewMode()
		}

	case "left", "right", "up", "down":
		if m.currentScreen == GridScreen {
			return m.moveGridCursor(key), nil
		}

	case "b":
		if s, ok := m.selectedScript(); ok {
			return m.navigateToCapture(s.Key), nil
		}

	case "x":
		if m.currentScreen == HotkeysListScreen {
			return m.unbindFromHotkeysList()
		}
		if s, ok := m.selectedScript(); ok {
			return m.unbindScript(s.Key)
		}

	case "f":
		if m.currentScreen == BrowseScreen || m.currentScreen == GridScreen {
			return m.navigateToFolderInput(), nil
		}

	case "r":
		if m.currentScreen == BrowseScreen || m.currentScreen == GridScreen {
			m.err = nil
			return m, m.rescan()
		}

	case "c":
		if s, ok := m.selectedScript(); ok {
			if err := clipboard.WriteAll(s.Path); err != nil {
				m.err = fmt.Errorf("failed to copy path: %w", err)
			} else {
				m.err = fmt.Errorf("✓ Copied %s", s.Path)
			}
			return m, nil
		}

	case "h":
		if m.currentScreen == BrowseScreen || m.currentScreen == GridScreen {
			return m.navigateToHotkeysList(), nil
		}

	case "H":
		if m.currentScreen == BrowseScreen || m.currentScreen == GridScreen {
			return m, m.loadHistory()
		}
	}

	// Pass other keys to the active component
	switch m.currentScreen {
	case BrowseScreen, HotkeysListScreen, HistoryScreen:
		m.list, cmd = ui.UpdateList(m.list, msg)
	case OutputScreen:
		m.viewport, cmd = ui.UpdateViewport(m.viewport, msg)
	}

	return m, cmd
}

// handleEnterKey runs the current selection
func (m Model) handleEnterKey() (tea.Model, tea.Cmd) {
	switch m.currentScreen {
	case BrowseScreen, GridScreen:
		if s, ok := m.selectedScript(); ok {
			return m, m.runScript(s)
		}

	case HistoryScreen:
		// Re-run a past script if it still exists in the folder.
		sel := m.list.SelectedItem()
		if sel == nil {
			return m, nil
		}
		item, ok := sel.(ui.SimpleItem)
		if !ok || item.Key() == "" {
			return m, nil
		}
		if s, found := scripts.Find(m.catalog, item.Key()); found {
			return m, m.runScript(s)
		}
		m.err = fmt.Errorf("script %s is missing from the folder", item.Key())
	}

	return m, nil
}

// selectedScript resolves the script under the cursor in either catalog mode.
// Lookup goes through the item's key, not the list index, because filtering
// reorders the visible items.
func (m Model) selectedScript() (scripts.Script, bool) {
	switch m.currentScreen {
	case GridScreen:
		if m.gridIndex >= 0 && m.gridIndex < len(m.catalog) {
			return m.catalog[m.gridIndex], true
		}

	case BrowseScreen:
		sel := m.list.SelectedItem()
		if sel == nil {
			return scripts.Script{}, false
		}
		item, ok := sel.(ui.SimpleItem)
		if !ok || item.Key() == "" {
			return scripts.Script{}, false
		}
		return scripts.Find(m.catalog, item.Key())
	}

	return scripts.Script{}, false
}

// Navigation

func (m Model) navigateToCatalog() Model {
	m.previousScreen = m.currentScreen
	if m.cfg.ViewMode == config.ViewGrid {
		m.currentScreen = GridScreen
		return m
	}

	items := m.catalogItems()
	if len(items) == 0 {
		items = []list.Item{ui.NewSimpleItem("No scripts found", "choose a folder with 'f' or add scripts to it")}
	}
	m.list = ui.NewFilterableList(items, m.browseTitle(), m.width, m.height-4)
	m.currentScreen = BrowseScreen
	return m
}

func (m Model) catalogItems() []list.Item {
	items := make([]list.Item, 0, len(m.catalog))
	for _, s := range m.catalog {
		title := s.Name
		if combo, ok := m.store.Resolve(s.Key); ok {
			title = fmt.Sprintf("%s [%s]", s.Name, keyseq.Display(combo))
		}
		items = append(items, ui.NewKeyedItem(s.Key, title, s.Category))
	}
	return items
}

func (m Model) navigateBack() (tea.Model, tea.Cmd) {
	if m.currentScreen == OutputScreen && m.previousScreen == HistoryScreen {
		return m, m.loadHistory()
	}
	return m.navigateToCatalog(), nil
}

func (m Model) toggleViewMode() (tea.Model, tea.Cmd) {
	if m.cfg.ViewMode == config.ViewGrid {
		m.cfg.ViewMode = config.ViewList
	} else {
		m.cfg.ViewMode = config.ViewGrid
	}

	if err := config.Save(m.cfgPath, m.cfg); err != nil {
		m.err = fmt.Errorf("failed to save config: %w", err)
	}
	return m.navigateToCatalog(), nil
}

// Folder input

func (m Model) navigateToFolderInput() Model {
	m.textInput.SetValue(m.cfg.ScriptsFolder)
	m.textInput.Placeholder = "Enter scripts folder path"
	m.textInput.Focus()
	m.previousScreen = m.currentScreen
	m.currentScreen = FolderInputScreen
	return m
}

func (m Model) handleFolderInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		folder := strings.TrimSpace(m.textInput.Value())
		if folder == "" {
			return m, nil
		}

		m.cfg.ScriptsFolder = folder
		if err := config.Save(m.cfgPath, m.cfg); err != nil {
			m.err = fmt.Errorf("failed to save config: %w", err)
		} else {
			m.err = nil
		}
		m.textInput.Blur()
		updated := m.navigateToCatalog()
		return updated, updated.rescan()

	case "esc":
		m.textInput.Blur()
		return m.navigateToCatalog(), nil
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

// Grid (button) mode

func (m Model) gridColumns() int {
	cols := m.width / 26
	if cols < 1 {
		cols = 1
	}
	return cols
}

func (m Model) moveGridCursor(key string) Model {
	if len(m.catalog) == 0 {
		return m
	}

	cols := m.gridColumns()
	idx := m.gridIndex
	switch key {
	case "left":
		idx--
	case "right":
		idx++
	case "up":
		idx -= cols
	case "down":
		idx += cols
	}

	if idx < 0 {
		idx = 0
	}
	if idx >= len(m.catalog) {
		idx = len(m.catalog) - 1
	}
	m.gridIndex = idx
	return m
}

func (m Model) renderGrid() string {
	var s strings.Builder
	s.WriteString(m.GetHeaderStyle().Render(m.browseTitle()))
	s.WriteString("\n\n")

	if len(m.catalog) == 0 {
		s.WriteString("No scripts found. Choose a folder with 'f' or add scripts to it.")
		return s.String()
	}

	const cellWidth = 22
	cols := m.gridColumns()

	var rows []string
	for start := 0; start < len(m.catalog); start += cols {
		end := start + cols
		if end > len(m.catalog) {
			end = len(m.catalog)
		}

		var cells []string
		for i := start; i < end; i++ {
			script := m.catalog[i]
			label := script.Key
			if len(label) > cellWidth {
				label = label[:cellWidth-1] + "…"
			}
			if combo, ok := m.store.Resolve(script.Key); ok {
				label += "\n" + m.GetComboStyle().Render(keyseq.Display(combo))
			}

			style := m.GetCellStyle()
			if i == m.gridIndex {
				style = m.GetFocusedCellStyle()
			}
			cells = append(cells, style.Width(cellWidth).Render(label))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	s.WriteString(lipgloss.JoinVertical(lipgloss.Left, rows...))
	return s.String()
}
