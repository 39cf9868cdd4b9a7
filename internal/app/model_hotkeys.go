package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/script-dock/internal/bindings"
	"github.com/script-dock/internal/history"
	"github.com/script-dock/internal/keyseq"
	"github.com/script-dock/internal/logger"
	"github.com/script-dock/internal/ui"
)

// Hotkey binding flow

func (m Model) navigateToCapture(scriptKey string) Model {
	m.pendingScript = scriptKey
	m.previousScreen = m.currentScreen
	m.currentScreen = HotkeyCaptureScreen
	return m
}

// handleCaptureKey turns the next bindable key press into the combo for the
// pending script.
func (m Model) handleCaptureKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "esc" {
		m.pendingScript = ""
		return m.navigateToCatalog(), nil
	}

	combo, err := keyseq.Normalize(key)
	if err != nil || !keyseq.Bindable(combo) {
		m.err = fmt.Errorf("%q cannot be used as a hotkey, add Alt or Ctrl", key)
		return m, nil
	}

	return m.assignCombo(combo)
}

func (m Model) assignCombo(combo string) (tea.Model, tea.Cmd) {
	err := m.store.Assign(m.pendingScript, combo)

	var conflict *bindings.ConflictError
	if errors.As(err, &conflict) {
		// Never overwrite silently: hand the decision to the user.
		m.pendingCombo = conflict.Combo
		m.conflictOwner = conflict.Script
		m.currentScreen = ConflictConfirmScreen
		return m, nil
	}

	if regErr := m.registrar.Register(m.pendingScript, combo); regErr != nil {
		logger.Error("failed to register %s for %s: %v", combo, m.pendingScript, regErr)
	}

	m.err = fmt.Errorf("✓ Bound %s to %s", keyseq.Display(combo), m.pendingScript)
	if err != nil {
		m.noteSaveFailure(err)
	}
	m.pendingScript = ""
	return m.navigateToCatalog(), nil
}

// handleConflictKey resolves the overwrite-or-cancel prompt.
func (m Model) handleConflictKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	script, combo, owner := m.pendingScript, m.pendingCombo, m.conflictOwner
	m.pendingScript = ""
	m.pendingCombo = ""
	m.conflictOwner = ""

	if msg.String() != "y" && msg.String() != "Y" {
		m.err = fmt.Errorf("✓ Kept %s on %s", keyseq.Display(combo), owner)
		return m.navigateToCatalog(), nil
	}

	err := m.store.AssignForce(script, combo)

	m.registrar.Deregister(owner)
	if regErr := m.registrar.Register(script, combo); regErr != nil {
		logger.Error("failed to register %s for %s: %v", combo, script, regErr)
	}

	m.err = fmt.Errorf("✓ Rebound %s from %s to %s", keyseq.Display(combo), owner, script)
	if err != nil {
		m.noteSaveFailure(err)
	}
	return m.navigateToCatalog(), nil
}

// Unbinding

func (m Model) unbindScript(scriptKey string) (tea.Model, tea.Cmd) {
	combo, ok := m.store.Resolve(scriptKey)
	if !ok {
		m.err = fmt.Errorf("%s has no hotkey", scriptKey)
		return m, nil
	}

	err := m.store.Remove(scriptKey)
	m.registrar.Deregister(scriptKey)

	m.err = fmt.Errorf("✓ Removed %s from %s", keyseq.Display(combo), scriptKey)
	if err != nil {
		m.noteSaveFailure(err)
	}
	return m.navigateToCatalog(), nil
}

func (m Model) unbindFromHotkeysList() (tea.Model, tea.Cmd) {
	sel := m.list.SelectedItem()
	if sel == nil {
		return m, nil
	}
	item, ok := sel.(ui.SimpleItem)
	if !ok || item.Key() == "" {
		return m, nil
	}

	combo, bound := m.store.Resolve(item.Key())
	if !bound {
		return m, nil
	}

	err := m.store.Remove(item.Key())
	m.registrar.Deregister(item.Key())

	m.err = fmt.Errorf("✓ Removed %s from %s", keyseq.Display(combo), item.Key())
	if err != nil {
		m.noteSaveFailure(err)
	}

	updated := m.navigateToHotkeysList()
	return updated, nil
}

// Hotkeys list screen

func (m Model) navigateToHotkeysList() Model {
	all := m.store.List()
	items := make([]list.Item, 0, len(all))
	for _, b := range all {
		items = append(items, ui.NewKeyedItem(b.Script, keyseq.Display(b.Combo), b.Script))
	}
	if len(items) == 0 {
		items = []list.Item{ui.NewSimpleItem("No hotkeys bound", "bind one with 'b' in the script list")}
	}

	m.list = ui.NewList(items, "Hotkeys ('x'=unbind, Esc=back)", m.width, m.height-4)
	m.previousScreen = m.currentScreen
	m.currentScreen = HotkeysListScreen
	return m
}

// History screen

func (m Model) navigateToHistory(entries []history.Entry) Model {
	items := make([]list.Item, 0, len(entries))
	for _, e := range entries {
		status := "✓"
		if !e.OK {
			status = "✗"
		}
		title := fmt.Sprintf("%s %s", status, e.Script)
		desc := fmt.Sprintf("%s · %dms", e.StartedAt.Local().Format(time.DateTime), e.Duration.Milliseconds())
		if e.Error != "" {
			desc += " · " + e.Error
		}
		items = append(items, ui.NewKeyedItem(e.Script, title, desc))
	}
	if len(items) == 0 {
		items = []list.Item{ui.NewSimpleItem("No runs recorded", "")}
	}

	m.list = ui.NewList(items, "Run History (Enter=run again, Esc=back)", m.width, m.height-4)
	m.previousScreen = m.currentScreen
	m.currentScreen = HistoryScreen
	return m
}
