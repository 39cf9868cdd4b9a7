package ui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// SimpleItem implements list.Item for simple string lists. The optional key
// carries a stable identifier (the script key) that survives list filtering,
// where index-based lookups would not.
type SimpleItem struct {
	title string
	desc  string
	key   string
}

func (i SimpleItem) Title() string       { return i.title }
func (i SimpleItem) Description() string { return i.desc }
func (i SimpleItem) FilterValue() string { return i.title }

// Key returns the stable identifier attached to the item.
func (i SimpleItem) Key() string { return i.key }

// NewSimpleItem creates a new simple list item.
func NewSimpleItem(title, desc string) SimpleItem {
	return SimpleItem{title: title, desc: desc}
}

// NewKeyedItem creates a list item carrying a stable identifier.
func NewKeyedItem(key, title, desc string) SimpleItem {
	return SimpleItem{title: title, desc: desc, key: key}
}

// NewList creates a new list with the given items and title.
func NewList(items []list.Item, title string, width, height int) list.Model {
	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	return l
}

// NewFilterableList creates a list with fuzzy filtering enabled, used for the
// script catalog.
func NewFilterableList(items []list.Item, title string, width, height int) list.Model {
	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	return l
}

// UpdateList is a helper to update a list model.
func UpdateList(l list.Model, msg tea.Msg) (list.Model, tea.Cmd) {
	newList, cmd := l.Update(msg)
	return newList, cmd
}
