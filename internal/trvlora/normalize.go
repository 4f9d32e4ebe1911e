// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package trvlora provides the HTTP client for the trvlora chat API.
package trvlora

import (
	"strconv"
	"strings"

	"github.com/jeranaias/trvlora-tui/internal/model"
)

// FallbackReply is shown when a response carries no reply text.
const FallbackReply = "Sorry, something went wrong."

// =============================================================================
// NORMALIZATION
// =============================================================================

// Reply holds a fully normalized chat response.
type Reply struct {
	Text    string
	Prompts []string
	Offers  []model.FlightOffer
	Filters model.AvailableFilterOptions
}

// Normalize converts a wire response into domain types.
//
// Contract:
//   - an absent reply yields FallbackReply, never an error
//   - absent prompts/cards yield empty collections, never an error
//   - stopCount = segments - 1 (floored at zero for degenerate payloads)
//   - missing segment arrays default to empty, not nil
//   - an unparseable price rejects the whole payload as ErrTypeMalformed
func Normalize(resp *ChatResponse) (*Reply, error) {
	if resp == nil {
		return nil, &ClientError{Type: ErrTypeMalformed, Message: "empty response"}
	}

	out := &Reply{
		Text:    strings.TrimSpace(resp.Reply),
		Prompts: resp.Prompts,
	}
	if out.Text == "" {
		out.Text = FallbackReply
	}
	if out.Prompts == nil {
		out.Prompts = []string{}
	}

	if resp.Cards == nil {
		out.Offers = []model.FlightOffer{}
		return out, nil
	}

	offers := make([]model.FlightOffer, 0, len(resp.Cards.Flights))
	for _, raw := range resp.Cards.Flights {
		offer, err := normalizeOffer(raw)
		if err != nil {
			return nil, err
		}
		offers = append(offers, offer)
	}
	out.Offers = offers

	if f := resp.Cards.Filters; f != nil {
		out.Filters = model.AvailableFilterOptions{
			Airlines: f.Airlines,
			Stops:    f.Stops,
			Cabins:   f.Cabins,
		}
	}

	return out, nil
}

// normalizeOffer maps one upstream offer onto the domain shape.
func normalizeOffer(raw RawOffer) (model.FlightOffer, error) {
	price, err := raw.Price.Amount()
	if err != nil {
		return model.FlightOffer{}, &ClientError{
			Type:    ErrTypeMalformed,
			Message: "offer has unparseable price " + strconv.Quote(raw.Price.String()),
			Cause:   err,
		}
	}

	stops := raw.Segments - 1
	if stops < 0 {
		stops = 0
	}

	return model.FlightOffer{
		Airline:          raw.Airline,
		Origin:           raw.Departure,
		Destination:      raw.Arrival,
		DepartureTime:    raw.DepartureDateTime,
		ReturnTime:       raw.ReturnDateTime,
		PriceAmount:      price,
		StopCount:        stops,
		DurationMinutes:  raw.DurationMinutes,
		OutboundSegments: normalizeSegments(raw.OutboundSegments),
		ReturnSegments:   normalizeSegments(raw.ReturnSegments),
	}, nil
}

// normalizeSegments maps upstream legs, defaulting a missing array to empty.
func normalizeSegments(raw []RawSegment) []model.Segment {
	segments := make([]model.Segment, 0, len(raw))
	for _, s := range raw {
		seg := model.Segment{
			Airline:         s.Airline,
			FlightNumber:    s.FlightNumber,
			Origin:          s.Departure,
			Destination:     s.Arrival,
			DepartureTime:   s.DepartureDateTime,
			ArrivalTime:     s.ArrivalDateTime,
			DurationMinutes: s.DurationMinutes,
			Aircraft:        s.Aircraft,
			Amenities:       s.Amenities,
		}
		if s.Emissions != nil {
			seg.Emissions = &model.Emissions{
				Value:       s.Emissions.Value,
				Unit:        s.Emissions.Unit,
				Description: s.Emissions.Description,
			}
		}
		segments = append(segments, seg)
	}
	return segments
}
