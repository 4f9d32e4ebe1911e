// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/trvlora-tui/internal/model"
	"github.com/jeranaias/trvlora-tui/internal/ui/styles"
	"github.com/jeranaias/trvlora-tui/internal/util"
)

// =============================================================================
// OFFER CARD
// =============================================================================

// OfferCard renders flight offers as bordered cards.
type OfferCard struct {
	theme   *Theme
	width   int
	compact bool
}

// Theme aliases the styles theme so callers only import one package.
type Theme = styles.Theme

// NewOfferCard creates an offer card renderer.
func NewOfferCard(theme *Theme, width int, compact bool) OfferCard {
	if width < 24 {
		width = 24
	}
	return OfferCard{theme: theme, width: width, compact: compact}
}

// SetWidth updates the render width.
func (c *OfferCard) SetWidth(width int) {
	if width < 24 {
		width = 24
	}
	c.width = width
}

// Render renders one offer as a card.
func (c OfferCard) Render(offer model.FlightOffer) string {
	inner := c.width - 4 // border and padding

	airline := c.theme.OfferAirline.Render(util.TruncateWidth(offer.Airline, inner/2))
	price := c.theme.OfferPrice.Render(util.FormatPrice(offer.PriceAmount))
	top := spreadLine(airline, price, inner)

	route := offer.Origin + " -> " + offer.Destination
	if offer.IsRoundTrip() {
		route = offer.Origin + " <-> " + offer.Destination
	}
	routeView := c.theme.OfferRoute.Render(util.TruncateWidth(route, inner))

	var stopsView string
	if offer.IsNonStop() {
		stopsView = c.theme.OfferNonstop.Render(util.FormatStops(offer.StopCount))
	} else {
		stopsView = c.theme.OfferStops.Render(util.FormatStops(offer.StopCount))
	}
	meta := c.theme.OfferMeta.Render(util.FormatDurationMinutes(offer.DurationMinutes)) + "  " + stopsView

	lines := []string{top, routeView + "  " + meta}
	if !c.compact && offer.DepartureTime != "" {
		when := util.FormatDateTime(offer.DepartureTime)
		if offer.ReturnTime != "" {
			when += "  /  " + util.FormatDateTime(offer.ReturnTime)
		}
		lines = append(lines, c.theme.OfferMeta.Render(util.TruncateWidth(when, inner)))
	}

	return c.theme.OfferCard.Width(c.width - 2).Render(strings.Join(lines, "\n"))
}

// RenderList renders offers stacked vertically. When showAll is false, at
// most maxVisible offers render, followed by a "+N more" line.
func (c OfferCard) RenderList(offers []model.FlightOffer, maxVisible int, showAll bool) string {
	if len(offers) == 0 {
		return c.theme.PanelEmpty.Render("No flights match the current filters.")
	}

	visible := offers
	hidden := 0
	if !showAll && maxVisible > 0 && len(offers) > maxVisible {
		visible = offers[:maxVisible]
		hidden = len(offers) - maxVisible
	}

	parts := make([]string, 0, len(visible)+1)
	for _, offer := range visible {
		parts = append(parts, c.Render(offer))
	}
	if hidden > 0 {
		parts = append(parts, c.theme.OfferMoreLine.Render(
			fmt.Sprintf("+%d more - ctrl+a to show all", hidden)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// spreadLine left-aligns a and right-aligns b within width columns.
func spreadLine(a, b string, width int) string {
	gap := width - lipgloss.Width(a) - lipgloss.Width(b)
	if gap < 1 {
		gap = 1
	}
	return a + strings.Repeat(" ", gap) + b
}
