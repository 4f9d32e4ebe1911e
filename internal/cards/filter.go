// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cards derives the flight-offer collection from the transcript.
package cards

import "github.com/jeranaias/trvlora-tui/internal/model"

// Apply narrows offers to those satisfying every non-absent criterion. The
// predicates are a conjunction over independent dimensions: airline
// membership, stop-count membership, price lower bound, price upper bound.
//
// An absent or empty dimension is vacuously true; in particular an empty
// airline or stop set filters nothing, it does not filter everything. The
// result preserves the relative order of the input, so Apply is idempotent
// and the empty criteria are an identity.
//
// Zero matches is a valid result, not an error: the caller keeps the panel
// open and shows "no matches".
func Apply(offers []model.FlightOffer, criteria model.FilterCriteria) []model.FlightOffer {
	if criteria.IsEmpty() {
		return offers
	}

	filtered := make([]model.FlightOffer, 0, len(offers))
	for _, offer := range offers {
		if matches(offer, criteria) {
			filtered = append(filtered, offer)
		}
	}
	return filtered
}

// matches evaluates the conjunction for a single offer.
func matches(offer model.FlightOffer, criteria model.FilterCriteria) bool {
	if len(criteria.Airlines) > 0 && !criteria.HasAirline(offer.Airline) {
		return false
	}
	if len(criteria.StopCounts) > 0 && !criteria.HasStopCount(offer.StopCount) {
		return false
	}
	if criteria.PriceMin != nil && offer.PriceAmount < *criteria.PriceMin {
		return false
	}
	if criteria.PriceMax != nil && offer.PriceAmount > *criteria.PriceMax {
		return false
	}
	return true
}
