// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for the travel chat transcript.
//
// This package defines the core domain types used throughout the application
// for representing the conversation with the assistant and the flight offers
// it returns.
//
// # Key Types
//
//   - Transcript: Append-only container for the conversation messages
//   - Message: Single message with sender, text, and optional flight offers
//   - FlightOffer: A priced, schedulable itinerary with one or more segments
//   - FilterCriteria: User-selected constraints over the aggregated offers
//
// # Usage
//
// Build a transcript:
//
//	tr := model.NewTranscript()
//	tr.Append(model.NewUserMessage("flights nyc to paris"))
//	pending := model.NewPendingMessage(reqID)
//	tr.Append(pending)
//	// ... later, when the reply arrives:
//	tr.ResolvePending(reqID, model.NewAssistantMessage("ok", offers))
//
// Messages are never mutated after being finalized; a pending message is
// replaced in place at the same transcript index when its result arrives.
package model
