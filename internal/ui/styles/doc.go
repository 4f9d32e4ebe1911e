// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the trvlora TUI.

This package defines the color palette and styled components used
throughout the application. All colors use Lip Gloss AdaptiveColor for
automatic light/dark terminal detection.

# Color System (colors.go)

  - Teal - Brand color for the assistant and panel chrome
  - Sky - Flight accents, links, and focused controls
  - Emerald - Prices and nonstop badges
  - Amber - Layover counts and warnings
  - Rose - Errors and failed requests

Message bubbles use semantic color tokens:

	UserBubbleBg      - Background for user messages
	AssistantBubbleBg - Background for assistant messages

# Theme (theme.go)

Theme bundles every lipgloss style the views need, from chat bubbles to
the offer cards and the filter form. Create one at startup:

	theme := styles.NewTheme()
	theme.SetSize(width, height)

Accessibility: status markers pair a shape indicator ([OK], [X], [!])
with color so states remain distinguishable for colorblind users.
*/
package styles
