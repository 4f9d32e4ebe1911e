// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	"github.com/jeranaias/trvlora-tui/internal/ui/styles"
)

func TestSuggestionChips_Selection(t *testing.T) {
	chips := NewSuggestionChips(styles.NewTheme(), 80)
	chips.SetItems([]string{"a", "b", "c"})

	if got := chips.Selected(); got != "" {
		t.Errorf("nothing should be selected initially, got %q", got)
	}

	chips.Next()
	if got := chips.Selected(); got != "a" {
		t.Errorf("Selected() = %q, want a", got)
	}

	chips.Next()
	chips.Next()
	if got := chips.Selected(); got != "c" {
		t.Errorf("Selected() = %q, want c", got)
	}

	// Wrapping past the end clears the selection.
	chips.Next()
	if got := chips.Selected(); got != "" {
		t.Errorf("Selected() after wrap = %q, want empty", got)
	}

	chips.Prev()
	if got := chips.Selected(); got != "c" {
		t.Errorf("Prev from none should land on last, got %q", got)
	}
}

func TestSuggestionChips_SetItemsResetsSelection(t *testing.T) {
	chips := NewSuggestionChips(styles.NewTheme(), 80)
	chips.SetItems([]string{"a", "b"})
	chips.Next()

	chips.SetItems([]string{"x"})
	if got := chips.Selected(); got != "" {
		t.Errorf("new items should reset selection, got %q", got)
	}
}

func TestSuggestionChips_View(t *testing.T) {
	chips := NewSuggestionChips(styles.NewTheme(), 80)

	if out := chips.View(); out != "" {
		t.Errorf("empty chips should render nothing, got %q", out)
	}

	chips.SetItems([]string{"Find the cheapest flight", "Hotels in Kyoto"})
	out := chips.View()
	if !strings.Contains(out, "cheapest flight") {
		t.Errorf("view missing chip label:\n%s", out)
	}
	if !strings.Contains(out, "Kyoto") {
		t.Errorf("view missing second chip:\n%s", out)
	}
}

func TestSpinner_InactiveRendersNothing(t *testing.T) {
	s := NewThinkingSpinner()
	if out := s.View(); out != "" {
		t.Errorf("inactive spinner should render nothing, got %q", out)
	}

	s.Start()
	if !s.IsActive() {
		t.Error("spinner should be active after Start")
	}
	if out := s.View(); !strings.Contains(out, "Thinking") {
		t.Errorf("active spinner should show its message, got %q", out)
	}

	s.Stop()
	if s.IsActive() {
		t.Error("spinner should stop")
	}
}
