// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package conversation orchestrates the travel-chat state.
package conversation

import (
	"context"
	"time"

	"github.com/jeranaias/trvlora-tui/internal/cards"
	"github.com/jeranaias/trvlora-tui/internal/model"
	"github.com/jeranaias/trvlora-tui/internal/panel"
	"github.com/jeranaias/trvlora-tui/internal/suggest"
	"github.com/jeranaias/trvlora-tui/internal/trvlora"
)

// Service is the outbound chat collaborator. The concrete transport lives
// in the trvlora package; tests substitute stubs.
type Service interface {
	Chat(ctx context.Context, message string) (*trvlora.ChatResponse, error)
}

// =============================================================================
// CONTROLLER
// =============================================================================

// Controller is the orchestrator the UI consumes. It owns the transcript,
// the filter criteria, the filter facets, the suggestion state, and the
// panel state machine.
//
// Controller is single-loop state: Dispatch and Resolve (and every other
// mutating method) must be called from the same event loop. The only work
// that leaves the loop is the Command returned by Dispatch.
type Controller struct {
	transcript  *model.Transcript
	criteria    model.FilterCriteria
	facets      model.AvailableFilterOptions
	suggestions []string

	panel   *panel.Controller
	engine  *suggest.Engine
	service Service
	timeout time.Duration
}

// DefaultRequestTimeout bounds one outbound chat request.
const DefaultRequestTimeout = 30 * time.Second

// NewController creates an orchestrator around the given chat service and
// suggestion engine. A nil engine gets the defaults.
func NewController(service Service, engine *suggest.Engine) *Controller {
	if engine == nil {
		engine = suggest.NewEngine()
	}
	return &Controller{
		transcript: model.NewTranscript(),
		panel:      panel.NewController(),
		engine:     engine,
		service:    service,
		timeout:    DefaultRequestTimeout,
	}
}

// SetRequestTimeout overrides the per-request timeout. Zero keeps the
// current value.
func (c *Controller) SetRequestTimeout(d time.Duration) {
	if d > 0 {
		c.timeout = d
	}
}

// SetEngine swaps the suggestion engine, e.g. after a config reload changed
// the prompt catalog. A nil engine restores the built-in catalog.
func (c *Controller) SetEngine(engine *suggest.Engine) {
	if engine == nil {
		engine = suggest.NewEngine()
	}
	c.engine = engine
}

// =============================================================================
// READ ACCESSORS
// =============================================================================

// Transcript returns the conversation in insertion order, read-only.
func (c *Controller) Transcript() []*model.Message {
	return c.transcript.Messages()
}

// Offers returns the aggregated offer projection of the whole transcript.
func (c *Controller) Offers() []model.FlightOffer {
	return cards.Aggregate(c.transcript.Messages())
}

// FilteredOffers returns the aggregated offers narrowed by the active
// criteria. Zero results is a valid, displayable state.
func (c *Controller) FilteredOffers() []model.FlightOffer {
	return cards.Apply(c.Offers(), c.criteria)
}

// Criteria returns the active filter criteria.
func (c *Controller) Criteria() model.FilterCriteria {
	return c.criteria
}

// AvailableFilters returns the server-declared facets for the filter form.
func (c *Controller) AvailableFilters() model.AvailableFilterOptions {
	return c.facets
}

// Panel returns the panel state machine, for reading its state.
func (c *Controller) Panel() *panel.Controller {
	return c.panel
}

// IsAwaitingReply reports whether a dispatched request is outstanding.
func (c *Controller) IsAwaitingReply() bool {
	return c.transcript.PendingCount() > 0
}

// Suggestions returns the prompt chips to offer the user: the travel-
// relevant subset of the last server-supplied prompts when there was one,
// otherwise the canned follow-ups for the last assistant topic, otherwise
// the initial seed prompts.
func (c *Controller) Suggestions() []string {
	if len(c.suggestions) > 0 {
		return c.suggestions
	}
	if last := c.transcript.LastAssistant(); last != nil {
		if followUps := c.engine.FollowUpsFor(last.Text); followUps != nil {
			return followUps
		}
	}
	return c.engine.InitialPrompts()
}

// =============================================================================
// PANEL AND FILTER OPERATIONS
// =============================================================================

// ApplyFilters stores the criteria and returns the panel to the results
// view. Filtering never hides the panel, even when nothing matches.
func (c *Controller) ApplyFilters(criteria model.FilterCriteria) {
	c.criteria = criteria
	c.panel.FiltersApplied()
}

// RequestFilters forces the filter form visible.
func (c *Controller) RequestFilters() {
	c.panel.RequestFilters()
}

// ClosePanel records an explicit dismissal.
func (c *Controller) ClosePanel() {
	c.panel.UserClosed()
}

// MinimizePanel collapses the results view.
func (c *Controller) MinimizePanel() {
	c.panel.Minimize()
}

// ExpandPanel restores the expanded results view.
func (c *Controller) ExpandPanel() {
	c.panel.Expand()
}
