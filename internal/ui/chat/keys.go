// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
//
// This file defines keyboard bindings and shortcuts for the chat interface.
// The input field stays focused while chatting, so every global action uses
// a control chord or a key the input ignores.
package chat

import (
	"github.com/charmbracelet/bubbles/key"
)

// =============================================================================
// KEY MAP DEFINITION
// =============================================================================

// KeyMap defines all keyboard bindings for the chat interface.
type KeyMap struct {
	Submit         key.Binding
	NextSuggestion key.Binding
	PrevSuggestion key.Binding
	ClosePanel     key.Binding
	Filters        key.Binding
	MinimizePanel  key.Binding
	ExpandPanel    key.Binding
	ShowAllOffers  key.Binding
	PageUp         key.Binding
	PageDown       key.Binding
	Quit           key.Binding
}

// DefaultKeyMap returns the default key bindings for the chat interface.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "send"),
		),
		NextSuggestion: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "next suggestion"),
		),
		PrevSuggestion: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-Tab", "previous suggestion"),
		),
		ClosePanel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "close panel"),
		),
		Filters: key.NewBinding(
			key.WithKeys("ctrl+f"),
			key.WithHelp("C-f", "filters"),
		),
		MinimizePanel: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("C-n", "minimize panel"),
		),
		ExpandPanel: key.NewBinding(
			key.WithKeys("ctrl+e"),
			key.WithHelp("C-e", "expand panel"),
		),
		ShowAllOffers: key.NewBinding(
			key.WithKeys("ctrl+a"),
			key.WithHelp("C-a", "show all offers"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("PgUp", "scroll up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("PgDn", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+q"),
			key.WithHelp("C-c", "quit"),
		),
	}
}

// ShortHelp returns the key bindings shown in the status bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.NextSuggestion, k.Filters, k.ClosePanel, k.Quit}
}

// FullHelp returns all key bindings grouped for a help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.NextSuggestion, k.PrevSuggestion},
		{k.Filters, k.ClosePanel, k.MinimizePanel, k.ExpandPanel, k.ShowAllOffers},
		{k.PageUp, k.PageDown, k.Quit},
	}
}
