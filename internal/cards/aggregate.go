// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cards derives the flight-offer collection from the transcript.
package cards

import "github.com/jeranaias/trvlora-tui/internal/model"

// Aggregate flattens the offers of every finalized assistant message into a
// single sequence in transcript order. Transcript order is semantically
// meaningful: it reflects the recency of each search.
//
// Offers are not de-duplicated across assistant turns; if the same
// offer-like data appears in two replies it appears twice. Pending
// placeholders, user messages, and messages without offers contribute
// nothing. Aggregate never fails.
func Aggregate(transcript []*model.Message) []model.FlightOffer {
	var offers []model.FlightOffer
	for _, msg := range transcript {
		if msg == nil || !msg.IsFinalizedAssistant() {
			continue
		}
		offers = append(offers, msg.Offers...)
	}
	if offers == nil {
		offers = []model.FlightOffer{}
	}
	return offers
}
