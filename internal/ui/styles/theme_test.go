// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"
	"testing"
)

func TestNewTheme(t *testing.T) {
	theme := NewTheme()
	if theme == nil {
		t.Fatal("NewTheme() returned nil")
	}

	// A few spot checks that styles were actually initialized.
	if !theme.PanelTitle.GetBold() {
		t.Error("PanelTitle should be bold")
	}
	if !theme.OfferPrice.GetBold() {
		t.Error("OfferPrice should be bold")
	}
}

func TestGetLayoutMode(t *testing.T) {
	tests := []struct {
		width int
		want  LayoutMode
	}{
		{40, LayoutNarrow},
		{59, LayoutNarrow},
		{60, LayoutMedium},
		{99, LayoutMedium},
		{100, LayoutWide},
		{200, LayoutWide},
	}

	theme := NewTheme()
	for _, tt := range tests {
		theme.SetSize(tt.width, 24)
		if got := theme.GetLayoutMode(); got != tt.want {
			t.Errorf("GetLayoutMode() at width %d = %v, want %v", tt.width, got, tt.want)
		}
	}
}

func TestRenderError_IncludesShapeIndicator(t *testing.T) {
	out := RenderError("request failed")
	if !strings.Contains(out, "[X]") {
		t.Errorf("RenderError output missing shape indicator: %q", out)
	}
	if !strings.Contains(out, "request failed") {
		t.Errorf("RenderError output missing message: %q", out)
	}
}
