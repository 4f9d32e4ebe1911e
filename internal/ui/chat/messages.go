// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
package chat

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/trvlora-tui/internal/config"
	"github.com/jeranaias/trvlora-tui/internal/conversation"
)

// =============================================================================
// MESSAGE TYPES
// =============================================================================

// ChatResultMsg carries a finished chat request back onto the event loop.
type ChatResultMsg struct {
	Result conversation.Result
}

// ConfigReloadedMsg arrives when the config file changed on disk.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// =============================================================================
// COMMAND CREATORS
// =============================================================================

// runDispatch wraps a dispatched chat command so its result comes back as a
// tea.Msg. The command body runs off the event loop.
func runDispatch(cmd conversation.Command) tea.Cmd {
	return func() tea.Msg {
		return ChatResultMsg{Result: cmd()}
	}
}
