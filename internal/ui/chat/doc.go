// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
//
// The chat view is the main interface for the trvlora client. It wires the
// conversation controller into a Bubble Tea model: a scrollable transcript,
// a prompt input with suggestion chips, and a bottom sheet that shows
// flight results or the filter form.
//
// # Architecture
//
// All conversation state (transcript, offers, filters, panel visibility)
// lives in conversation.Controller and mutates only on the event loop.
// Chat requests run off-loop through tea commands and return as
// ChatResultMsg.
//
// # Key Components
//
//   - Model: main Bubble Tea model
//   - KeyMap: keyboard shortcuts (keys.go)
//   - filterForm: modal filter editing (filters.go)
//
// # Usage
//
//	m := chat.New(controller, cfg, styles.NewTheme())
//	p := tea.NewProgram(m, tea.WithAltScreen())
package chat
