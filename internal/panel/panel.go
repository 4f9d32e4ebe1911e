// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package panel implements the results-panel visibility state machine.
package panel

// =============================================================================
// STATES
// =============================================================================

// State is the panel's visibility state.
type State int

const (
	// Hidden means the panel is not shown at all.
	Hidden State = iota
	// Results shows the offer list at the current snap level.
	Results
	// Filters shows the filter form, forced visible.
	Filters
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Results:
		return "results"
	case Filters:
		return "filters"
	default:
		return "unknown"
	}
}

// SnapLevel is how much vertical space the results panel takes, after the
// three snap points of the original bottom sheet.
type SnapLevel int

const (
	SnapCollapsed SnapLevel = iota
	SnapHalf
	SnapExpanded
)

// String returns the string representation of the snap level.
func (l SnapLevel) String() string {
	switch l {
	case SnapCollapsed:
		return "collapsed"
	case SnapHalf:
		return "half"
	case SnapExpanded:
		return "expanded"
	default:
		return "unknown"
	}
}

// =============================================================================
// CONTROLLER
// =============================================================================

// Controller reconciles "new offers arrived" against "user dismissed the
// panel". It replaces the original app's ref-boxed boolean with an explicit
// transition table.
//
// The userDismissed latch survives until a fresh dispatch delivers a
// non-empty offer set; filtering the visible set down to zero neither hides
// the panel nor touches the latch.
//
// Controller is a pure transition machine owned by the orchestrator's event
// loop; it is not safe for concurrent use.
type Controller struct {
	state         State
	snap          SnapLevel
	userDismissed bool
}

// NewController creates a controller in the initial Hidden state.
func NewController() *Controller {
	return &Controller{state: Hidden}
}

// State returns the current visibility state.
func (c *Controller) State() State {
	return c.state
}

// Snap returns the current snap level. Meaningful only in Results.
func (c *Controller) Snap() SnapLevel {
	return c.snap
}

// UserDismissed reports whether the dismissal latch is set.
func (c *Controller) UserDismissed() bool {
	return c.userDismissed
}

// IsVisible reports whether any panel content is shown.
func (c *Controller) IsVisible() bool {
	return c.state != Hidden
}

// =============================================================================
// TRANSITIONS
// =============================================================================

// FreshOffers records that a fresh dispatch delivered newCount offers. A
// non-empty arrival is the only thing that clears the dismissal latch.
func (c *Controller) FreshOffers(newCount int) {
	if newCount > 0 {
		c.userDismissed = false
	}
}

// OffersChanged reacts to a recompute of the aggregated (unfiltered) offer
// set. An empty aggregate hides the panel regardless of the latch; a
// non-empty one expands it unless the user has dismissed it.
func (c *Controller) OffersChanged(total int) {
	if total == 0 {
		c.state = Hidden
		return
	}
	if !c.userDismissed {
		c.state = Results
		c.snap = SnapExpanded
	}
}

// UserClosed handles an explicit dismissal: hide and latch.
func (c *Controller) UserClosed() {
	c.userDismissed = true
	c.state = Hidden
}

// RequestFilters forces the filter form visible from any state.
func (c *Controller) RequestFilters() {
	c.state = Filters
}

// FiltersApplied returns to the expanded results view. The filter form does
// not retain itself after apply; criteria storage is the orchestrator's job.
func (c *Controller) FiltersApplied() {
	c.state = Results
	c.snap = SnapExpanded
}

// Minimize collapses the results view. It is a no-op outside Results.
func (c *Controller) Minimize() {
	if c.state == Results {
		c.snap = SnapCollapsed
	}
}

// Expand restores the expanded results view. It is a no-op outside Results.
func (c *Controller) Expand() {
	if c.state == Results {
		c.snap = SnapExpanded
	}
}
