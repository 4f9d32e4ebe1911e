// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/trvlora-tui/internal/util"
)

// =============================================================================
// SUGGESTION CHIPS
// =============================================================================

// SuggestionChips renders the tappable prompt row above the input. One chip
// can be selected with tab and sent with enter.
type SuggestionChips struct {
	theme    *Theme
	items    []string
	selected int
	width    int
}

// NewSuggestionChips creates a suggestion chip row.
func NewSuggestionChips(theme *Theme, width int) SuggestionChips {
	return SuggestionChips{theme: theme, selected: -1, width: width}
}

// SetItems replaces the chips. Selection resets because the old index is
// meaningless against a new list.
func (s *SuggestionChips) SetItems(items []string) {
	s.items = items
	s.selected = -1
}

// SetWidth updates the render width.
func (s *SuggestionChips) SetWidth(width int) {
	s.width = width
}

// Items returns the current chips.
func (s *SuggestionChips) Items() []string {
	return s.items
}

// IsEmpty reports whether there is anything to show.
func (s *SuggestionChips) IsEmpty() bool {
	return len(s.items) == 0
}

// Next moves the selection forward, wrapping past the end to none.
func (s *SuggestionChips) Next() {
	if len(s.items) == 0 {
		return
	}
	s.selected++
	if s.selected >= len(s.items) {
		s.selected = -1
	}
}

// Prev moves the selection backward.
func (s *SuggestionChips) Prev() {
	if len(s.items) == 0 {
		return
	}
	s.selected--
	if s.selected < -1 {
		s.selected = len(s.items) - 1
	}
}

// Selected returns the selected prompt, or "" when nothing is selected.
func (s *SuggestionChips) Selected() string {
	if s.selected < 0 || s.selected >= len(s.items) {
		return ""
	}
	return s.items[s.selected]
}

// ClearSelection drops the selection without touching the items.
func (s *SuggestionChips) ClearSelection() {
	s.selected = -1
}

// View renders the chip row, wrapping to additional lines when chips
// overflow the width.
func (s SuggestionChips) View() string {
	if len(s.items) == 0 {
		return ""
	}

	maxChip := s.width - 6
	if maxChip < 8 {
		maxChip = 8
	}

	// Chips are bordered multi-line blocks, so rows join horizontally
	// before stacking.
	var rows []string
	var row []string
	rowWidth := 0

	for i, item := range s.items {
		label := util.TruncateWidth(item, maxChip)
		var chip string
		if i == s.selected {
			chip = s.theme.ChipSelected.Render(label)
		} else {
			chip = s.theme.Chip.Render(label)
		}

		w := lipgloss.Width(chip)
		if rowWidth > 0 && rowWidth+w > s.width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
			rowWidth = 0
		}
		row = append(row, chip)
		rowWidth += w
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
