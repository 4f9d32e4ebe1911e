// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/trvlora-tui/internal/conversation"
	"github.com/jeranaias/trvlora-tui/internal/model"
	"github.com/jeranaias/trvlora-tui/internal/panel"
	"github.com/jeranaias/trvlora-tui/internal/ui/styles"
)

// =============================================================================
// VIEW
// =============================================================================

// View renders the chat interface.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	sections := []string{
		m.renderHeader(),
		m.viewport.View(),
	}

	if bottom := m.renderBottomSheet(); bottom != "" {
		sections = append(sections, bottom)
	}
	if chips := m.chips.View(); chips != "" {
		sections = append(sections, chips)
	}

	sections = append(sections,
		m.theme.InputContainer.Width(m.width).Render(m.input.View()),
		m.renderStatusBar(),
	)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderHeader() string {
	brand := m.theme.HeaderBrand.Render("Trvlora")
	title := m.theme.Header.Render(brand + " - travel search")
	return title
}

// =============================================================================
// TRANSCRIPT
// =============================================================================

// refreshViewport re-renders the transcript into the viewport.
func (m *Model) refreshViewport(goBottom bool) {
	m.viewport.Height = m.transcriptHeight()
	m.viewport.SetContent(m.renderTranscript())
	if goBottom {
		m.viewport.GotoBottom()
	}
}

// renderTranscript renders every message as a bubble.
func (m Model) renderTranscript() string {
	messages := m.controller.Transcript()
	if len(messages) == 0 {
		return m.theme.PanelEmpty.Render("Ask about flights, hotels, or a whole trip.")
	}

	bubbleWidth := m.width - 8
	if bubbleWidth < 20 {
		bubbleWidth = 20
	}

	parts := make([]string, 0, len(messages))
	for _, msg := range messages {
		parts = append(parts, m.renderMessage(msg, bubbleWidth))
	}
	return strings.Join(parts, "\n")
}

func (m Model) renderMessage(msg *model.Message, bubbleWidth int) string {
	label := m.theme.SenderLabel.Render(msg.Sender.DisplayName()) + " " +
		m.theme.Timestamp.Render(msg.Timestamp.Format("15:04"))

	if msg.Sender == model.SenderUser {
		bubble := m.theme.UserBubble.MaxWidth(bubbleWidth).Render(msg.Text)
		block := lipgloss.JoinVertical(lipgloss.Right, label, bubble)
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Right, block)
	}

	var body string
	switch {
	case msg.IsPending:
		if m.spinner.IsActive() {
			body = m.spinner.View()
		} else {
			body = m.theme.ThinkingText.Render("Thinking...")
		}
	case msg.Text == conversation.ErrorReply:
		body = styles.RenderError(msg.Text)
	default:
		body = m.renderMarkdown(msg.Text)
	}

	bubble := m.theme.AssistantBubble.MaxWidth(bubbleWidth).Render(body)
	block := lipgloss.JoinVertical(lipgloss.Left, label, bubble)

	if n := msg.OfferCount(); n > 0 {
		note := m.theme.OfferMeta.Render(fmt.Sprintf("%d flight offers - see results panel", n))
		block = lipgloss.JoinVertical(lipgloss.Left, block, note)
	}
	return block
}

// renderMarkdown renders assistant text through glamour when enabled.
func (m Model) renderMarkdown(text string) string {
	if !m.cfg.UI.Markdown || m.renderer == nil {
		return text
	}
	out, err := m.renderer.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimRight(out, "\n")
}

// =============================================================================
// RESULTS PANEL
// =============================================================================

// renderBottomSheet renders the filter form or the results panel.
func (m Model) renderBottomSheet() string {
	if m.filters != nil {
		return m.filters.View()
	}
	if m.controller.Panel().State() != panel.Results {
		return ""
	}

	offers := m.controller.FilteredOffers()
	total := len(m.controller.Offers())

	title := m.theme.PanelTitle.Render("Flights") + " " +
		m.theme.PanelCount.Render(fmt.Sprintf("(%d of %d)", len(offers), total))

	if m.controller.Panel().Snap() == panel.SnapCollapsed {
		hint := m.theme.PanelShortcut.Render("C-e expand - C-f filters - esc close")
		return m.theme.PanelBox.Width(m.panelWidth() - 2).Render(title + "  " + hint)
	}

	maxVisible := m.visibleOfferCount()
	body := m.card.RenderList(offers, maxVisible, m.showAllOffers)
	hint := m.theme.PanelShortcut.Render("C-f filters - C-n minimize - esc close")

	return m.theme.PanelBox.Width(m.panelWidth() - 2).Render(
		lipgloss.JoinVertical(lipgloss.Left, title, body, hint))
}

// visibleOfferCount scales the offer budget down at the half snap level.
func (m Model) visibleOfferCount() int {
	max := m.cfg.UI.MaxVisibleOffers
	if m.controller.Panel().Snap() == panel.SnapHalf && max > 1 {
		max = (max + 1) / 2
	}
	return max
}

// =============================================================================
// STATUS BAR
// =============================================================================

func (m Model) renderStatusBar() string {
	var parts []string
	for _, b := range m.keyMap.ShortHelp() {
		parts = append(parts,
			m.theme.ShortcutKey.Render(b.Help().Key)+" "+
				m.theme.ShortcutDesc.Render(b.Help().Desc))
	}
	return m.theme.StatusBar.Width(m.width).Render(strings.Join(parts, "  "))
}
