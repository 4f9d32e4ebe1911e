// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package conversation orchestrates the travel-chat state.
package conversation

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/jeranaias/trvlora-tui/internal/logx"
	"github.com/jeranaias/trvlora-tui/internal/model"
	"github.com/jeranaias/trvlora-tui/internal/trvlora"
)

// ErrorReply is the fixed user-visible text shown when a dispatch fails.
// Network failures and malformed payloads read identically to the user;
// only the log entry tells them apart.
const ErrorReply = "There was an error talking to AI. Please try again later."

// =============================================================================
// DISPATCH
// =============================================================================

// Result carries the outcome of one dispatched request back to the loop.
type Result struct {
	RequestID uuid.UUID
	Response  *trvlora.ChatResponse
	Err       error
}

// Command is deferred request work. Run it off the event loop and feed the
// Result to Resolve.
type Command func() Result

// Dispatch starts the request lifecycle for one user message and returns
// the Command performing the remote call, or nil when the text is blank
// (a suppressed validation error: no transcript change at all).
//
// Synchronous side effects, in order: append the user message when
// showAsUserMessage is set, clear the current suggestions and filter
// criteria, append one pending placeholder tagged with a fresh request ID.
func (c *Controller) Dispatch(text string, showAsUserMessage bool) Command {
	if strings.TrimSpace(text) == "" {
		logx.Debug().Msg("dispatch suppressed: blank message")
		return nil
	}

	if showAsUserMessage {
		c.transcript.Append(model.NewUserMessage(text))
	}

	c.suggestions = nil
	c.criteria = model.FilterCriteria{}

	requestID := uuid.New()
	c.transcript.Append(model.NewPendingMessage(requestID))

	logx.Info().
		Str("request_id", requestID.String()).
		Bool("shown", showAsUserMessage).
		Msg("dispatching chat request")

	service, timeout := c.service, c.timeout
	return func() Result {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		resp, err := service.Chat(ctx, text)
		return Result{RequestID: requestID, Response: resp, Err: err}
	}
}

// =============================================================================
// RESOLVE
// =============================================================================

// Resolve applies a request outcome to the orchestrator state. Exactly the
// placeholder minted by the matching Dispatch is finalized; a Result whose
// placeholder no longer exists is dropped.
func (c *Controller) Resolve(res Result) {
	if res.Err != nil {
		c.failPending(res.RequestID, res.Err)
		return
	}

	reply, err := trvlora.Normalize(res.Response)
	if err != nil {
		c.failPending(res.RequestID, err)
		return
	}

	final := model.NewAssistantMessage(reply.Text, reply.Offers)
	if !c.transcript.ResolvePending(res.RequestID, final) {
		logx.Warn().
			Str("request_id", res.RequestID.String()).
			Msg("reply arrived for a placeholder that no longer exists")
		return
	}

	// Facets mirror the latest reply unconditionally; they are only ever
	// informational.
	c.facets = reply.Filters

	if len(reply.Prompts) > 0 {
		c.suggestions = c.engine.Relevant(reply.Prompts)
	}

	c.panel.FreshOffers(len(reply.Offers))
	c.panel.OffersChanged(len(c.Offers()))

	logx.Info().
		Str("request_id", res.RequestID.String()).
		Int("offers", len(reply.Offers)).
		Int("prompts", len(reply.Prompts)).
		Msg("chat reply applied")
}

// failPending replaces the placeholder with the fixed error message. The
// two failure kinds are logged distinctly for telemetry.
func (c *Controller) failPending(requestID uuid.UUID, err error) {
	kind := "unknown"
	switch {
	case trvlora.IsNetworkFailure(err):
		kind = "network_failure"
	case trvlora.IsMalformedResponse(err):
		kind = "malformed_response"
	}
	logx.Error().
		Err(err).
		Str("request_id", requestID.String()).
		Str("kind", kind).
		Msg("chat request failed")

	final := model.NewAssistantMessage(ErrorReply, nil)
	if !c.transcript.ResolvePending(requestID, final) {
		logx.Warn().
			Str("request_id", requestID.String()).
			Msg("failure arrived for a placeholder that no longer exists")
		return
	}

	// The aggregate is unchanged, but the recompute still runs: the panel
	// reconciles against the same total.
	c.panel.OffersChanged(len(c.Offers()))
}
