// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/trvlora-tui/internal/model"
	"github.com/jeranaias/trvlora-tui/internal/ui/styles"
	"github.com/jeranaias/trvlora-tui/internal/util"
)

// =============================================================================
// FILTER FORM
// =============================================================================

// rowKind identifies what a form row toggles.
type rowKind int

const (
	rowAirline rowKind = iota
	rowStops
	rowPriceMin
	rowPriceMax
)

func (k rowKind) isPrice() bool {
	return k == rowPriceMin || k == rowPriceMax
}

// filterRow is one selectable line in the filter form.
type filterRow struct {
	kind    rowKind
	label   string
	airline string
	stops   int
	checked bool
}

// filterForm is the modal form shown in the panel's filter state. It edits a
// copy of the criteria; nothing applies until the user confirms.
type filterForm struct {
	theme    *styles.Theme
	rows     []filterRow
	focus    int
	priceMin textinput.Model
	priceMax textinput.Model
	width    int
}

// newFilterForm builds a form from the advertised facets, falling back to
// facets derived from the offers when the service sent none.
func newFilterForm(theme *styles.Theme, facets model.AvailableFilterOptions, criteria model.FilterCriteria, offers []model.FlightOffer, width int) filterForm {
	airlines := facets.Airlines
	stops := facets.Stops
	if len(airlines) == 0 {
		airlines = airlinesFromOffers(offers)
	}
	if len(stops) == 0 {
		stops = stopsFromOffers(offers)
	}

	var rows []filterRow
	for _, airline := range airlines {
		rows = append(rows, filterRow{
			kind:    rowAirline,
			label:   airline,
			airline: airline,
			checked: criteria.HasAirline(airline),
		})
	}
	for _, s := range stops {
		rows = append(rows, filterRow{
			kind:    rowStops,
			label:   util.FormatStops(s),
			stops:   s,
			checked: criteria.HasStopCount(s),
		})
	}
	rows = append(rows,
		filterRow{kind: rowPriceMin, label: "Min price"},
		filterRow{kind: rowPriceMax, label: "Max price"},
	)

	return filterForm{
		theme:    theme,
		rows:     rows,
		priceMin: newPriceInput(criteria.PriceMin),
		priceMax: newPriceInput(criteria.PriceMax),
		width:    width,
	}
}

func newPriceInput(value *float64) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "any"
	ti.CharLimit = 10
	if value != nil {
		ti.SetValue(strconv.FormatFloat(*value, 'f', -1, 64))
	}
	return ti
}

func airlinesFromOffers(offers []model.FlightOffer) []string {
	seen := make(map[string]bool)
	var out []string
	for _, o := range offers {
		if o.Airline != "" && !seen[o.Airline] {
			seen[o.Airline] = true
			out = append(out, o.Airline)
		}
	}
	sort.Strings(out)
	return out
}

func stopsFromOffers(offers []model.FlightOffer) []int {
	seen := make(map[int]bool)
	var out []int
	for _, o := range offers {
		if !seen[o.StopCount] {
			seen[o.StopCount] = true
			out = append(out, o.StopCount)
		}
	}
	sort.Ints(out)
	return out
}

// =============================================================================
// FORM INTERACTION
// =============================================================================

// Update handles a key press while the form is open. Enter and esc are the
// caller's concern; everything else is navigation or editing.
func (f *filterForm) Update(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up":
		if f.focus > 0 {
			f.focus--
		}
	case "down":
		if f.focus < len(f.rows)-1 {
			f.focus++
		}
	case " ":
		row := &f.rows[f.focus]
		if !row.kind.isPrice() {
			row.checked = !row.checked
			return nil
		}
	}

	// A focused price row owns all other keys.
	switch f.rows[f.focus].kind {
	case rowPriceMin:
		f.priceMax.Blur()
		f.priceMin.Focus()
		var cmd tea.Cmd
		f.priceMin, cmd = f.priceMin.Update(msg)
		return cmd
	case rowPriceMax:
		f.priceMin.Blur()
		f.priceMax.Focus()
		var cmd tea.Cmd
		f.priceMax, cmd = f.priceMax.Update(msg)
		return cmd
	}
	f.priceMin.Blur()
	f.priceMax.Blur()
	return nil
}

// Criteria assembles the criteria the form currently describes.
func (f *filterForm) Criteria() model.FilterCriteria {
	var criteria model.FilterCriteria
	for _, row := range f.rows {
		if !row.checked {
			continue
		}
		switch row.kind {
		case rowAirline:
			criteria.Airlines = append(criteria.Airlines, row.airline)
		case rowStops:
			criteria.StopCounts = append(criteria.StopCounts, row.stops)
		}
	}
	criteria.PriceMin = parsePrice(f.priceMin.Value())
	criteria.PriceMax = parsePrice(f.priceMax.Value())
	return criteria
}

func parsePrice(s string) *float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 {
		return nil
	}
	return &v
}

// View renders the form.
func (f filterForm) View() string {
	var b strings.Builder
	b.WriteString(f.theme.FilterTitle.Render("Filter flights"))
	b.WriteString("\n")

	lastLabel := ""
	for i, row := range f.rows {
		if label := sectionLabel(row.kind); label != lastLabel {
			lastLabel = label
			b.WriteString(f.theme.OfferMeta.Render(label))
			b.WriteString("\n")
		}

		var line string
		switch row.kind {
		case rowPriceMin:
			line = fmt.Sprintf("%s $%s", row.label, f.priceMin.View())
		case rowPriceMax:
			line = fmt.Sprintf("%s $%s", row.label, f.priceMax.View())
		default:
			mark := "[ ]"
			if row.checked {
				mark = f.theme.FilterChecked.Render("[x]")
			}
			line = mark + " " + row.label
		}

		if i == f.focus {
			b.WriteString(f.theme.FilterOptionFocused.Render(line))
		} else {
			b.WriteString(f.theme.FilterOption.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString(f.theme.PanelShortcut.Render("space toggle - enter apply - esc cancel"))
	return f.theme.FilterBox.Width(f.width - 2).Render(b.String())
}

func sectionLabel(kind rowKind) string {
	switch kind {
	case rowAirline:
		return "Airlines"
	case rowStops:
		return "Stops"
	default:
		return "Price"
	}
}
