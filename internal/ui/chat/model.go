// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
package chat

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/jeranaias/trvlora-tui/internal/config"
	"github.com/jeranaias/trvlora-tui/internal/conversation"
	"github.com/jeranaias/trvlora-tui/internal/panel"
	"github.com/jeranaias/trvlora-tui/internal/suggest"
	"github.com/jeranaias/trvlora-tui/internal/ui/components"
	"github.com/jeranaias/trvlora-tui/internal/ui/styles"
)

// =============================================================================
// CHAT MODEL
// =============================================================================

// Model is the Bubble Tea model for the chat view. All conversation state
// lives in the controller; the model holds presentation state only.
type Model struct {
	// Styling
	theme  *styles.Theme
	keyMap KeyMap

	// Configuration
	cfg *config.Config

	// Conversation
	controller *conversation.Controller

	// Dimensions
	width  int
	height int
	ready  bool

	// UI Components
	viewport viewport.Model
	input    textinput.Model
	spinner  components.Spinner
	chips    components.SuggestionChips
	card     components.OfferCard

	// Markdown rendering for assistant replies
	renderer *glamour.TermRenderer

	// Filter form, non-nil while the panel shows filters
	filters *filterForm

	// Offer list truncation override
	showAllOffers bool

	// Prompt dispatched on startup, e.g. from --ask
	initialPrompt string
}

// New creates a new chat model.
func New(controller *conversation.Controller, cfg *config.Config, theme *styles.Theme) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Where do you want to go?"
	ti.CharLimit = 2048
	ti.Focus()

	vp := viewport.New(80, 20)

	chips := components.NewSuggestionChips(theme, 80)
	chips.SetItems(controller.Suggestions())

	return Model{
		theme:      theme,
		keyMap:     DefaultKeyMap(),
		cfg:        cfg,
		controller: controller,
		viewport:   vp,
		input:      ti,
		spinner:    components.NewThinkingSpinner(),
		chips:      chips,
		card:       components.NewOfferCard(theme, 80, cfg.UI.CompactMode),
	}
}

// WithInitialPrompt schedules text to be dispatched as soon as the program
// starts. The text is not echoed as a user message.
func (m Model) WithInitialPrompt(text string) Model {
	m.initialPrompt = text
	return m
}

// initialPromptMsg triggers the --ask dispatch once the program is running.
type initialPromptMsg struct{ text string }

// Init initializes the chat model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.initialPrompt != "" {
		text := m.initialPrompt
		cmds = append(cmds, func() tea.Msg { return initialPromptMsg{text: text} })
	}
	return tea.Batch(cmds...)
}

// =============================================================================
// UPDATE
// =============================================================================

// Update handles messages for the chat model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case initialPromptMsg:
		if cmd := m.controller.Dispatch(msg.text, false); cmd != nil {
			m.refreshViewport(true)
			return m, tea.Batch(m.spinner.Start(), runDispatch(cmd))
		}
		return m, nil

	case ChatResultMsg:
		return m.handleResult(msg)

	case ConfigReloadedMsg:
		return m.handleConfigReload(msg)

	default:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.controller.IsAwaitingReply() {
			// The thinking bubble animates inside the transcript.
			m.refreshViewport(false)
		}
		return m, cmd
	}
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.theme.SetSize(msg.Width, msg.Height)

	m.viewport.Width = msg.Width
	m.viewport.Height = m.transcriptHeight()
	m.chips.SetWidth(msg.Width)
	m.card.SetWidth(msg.Width - 4)

	// Word wrap tracks the terminal, so the renderer rebuilds on resize.
	if renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(msg.Width-10),
	); err == nil {
		m.renderer = renderer
	}

	m.ready = true
	m.refreshViewport(false)
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMap.Quit) {
		return m, tea.Quit
	}

	// The filter form is modal.
	if m.filters != nil {
		switch msg.String() {
		case "enter":
			m.controller.ApplyFilters(m.filters.Criteria())
			m.filters = nil
			return m, nil
		case "esc":
			m.filters = nil
			m.controller.Panel().FiltersApplied()
			return m, nil
		default:
			return m, m.filters.Update(msg)
		}
	}

	switch {
	case key.Matches(msg, m.keyMap.Submit):
		cmd := m.submit()
		return m, cmd

	case key.Matches(msg, m.keyMap.NextSuggestion):
		m.chips.Next()
		return m, nil

	case key.Matches(msg, m.keyMap.PrevSuggestion):
		m.chips.Prev()
		return m, nil

	case key.Matches(msg, m.keyMap.ClosePanel):
		if m.controller.Panel().IsVisible() {
			m.controller.ClosePanel()
		} else {
			m.chips.ClearSelection()
		}
		return m, nil

	case key.Matches(msg, m.keyMap.Filters):
		if len(m.controller.Offers()) > 0 {
			m.controller.RequestFilters()
			form := newFilterForm(m.theme, m.controller.AvailableFilters(),
				m.controller.Criteria(), m.controller.Offers(), m.panelWidth())
			m.filters = &form
		}
		return m, nil

	case key.Matches(msg, m.keyMap.MinimizePanel):
		m.controller.MinimizePanel()
		return m, nil

	case key.Matches(msg, m.keyMap.ExpandPanel):
		m.controller.ExpandPanel()
		return m, nil

	case key.Matches(msg, m.keyMap.ShowAllOffers):
		m.showAllOffers = !m.showAllOffers
		return m, nil

	case key.Matches(msg, m.keyMap.PageUp), key.Matches(msg, m.keyMap.PageDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	default:
		// Typing always goes to the input; a chip selection is stale the
		// moment the user edits text.
		m.chips.ClearSelection()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

// submit dispatches the selected suggestion, or the typed text.
func (m *Model) submit() tea.Cmd {
	text := m.chips.Selected()
	fromChip := text != ""
	if !fromChip {
		text = m.input.Value()
	}

	cmd := m.controller.Dispatch(text, true)
	if cmd == nil {
		return nil
	}

	if !fromChip {
		m.input.Reset()
	}
	m.chips.SetItems(nil)
	m.showAllOffers = false
	m.refreshViewport(true)

	return tea.Batch(m.spinner.Start(), runDispatch(cmd))
}

func (m Model) handleResult(msg ChatResultMsg) (tea.Model, tea.Cmd) {
	m.controller.Resolve(msg.Result)
	if !m.controller.IsAwaitingReply() {
		m.spinner.Stop()
	}
	m.chips.SetItems(m.controller.Suggestions())
	m.showAllOffers = false
	m.refreshViewport(true)
	return m, nil
}

func (m Model) handleConfigReload(msg ConfigReloadedMsg) (tea.Model, tea.Cmd) {
	m.cfg = msg.Config
	m.controller.SetEngine(suggest.NewEngineWith(
		msg.Config.Prompts.Keywords,
		msg.Config.Prompts.FollowUps,
		msg.Config.Prompts.Initial,
	))
	m.chips.SetItems(m.controller.Suggestions())
	return m, nil
}

// =============================================================================
// LAYOUT HELPERS
// =============================================================================

// transcriptHeight is the viewport height after the fixed chrome and the
// panel's current snap level take their share.
func (m Model) transcriptHeight() int {
	h := m.height - 6 // header, chips, input, status bar
	h -= m.panelHeight()
	if h < 3 {
		h = 3
	}
	return h
}

func (m Model) panelHeight() int {
	if m.filters != nil {
		return m.height / 2
	}
	if m.controller.Panel().State() != panel.Results {
		return 0
	}
	switch m.controller.Panel().Snap() {
	case panel.SnapCollapsed:
		return 3
	case panel.SnapHalf:
		return m.height * 2 / 5
	default:
		return m.height * 3 / 5
	}
}

func (m Model) panelWidth() int {
	if m.width < 30 {
		return 30
	}
	return m.width
}
