// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package trvlora provides the HTTP client for the trvlora chat API.
package trvlora

import (
	"encoding/json"
	"strconv"
	"strings"
)

// =============================================================================
// REQUEST TYPES
// =============================================================================

// ChatRequest is the request body for the /chat endpoint.
type ChatRequest struct {
	Message string `json:"message"`
}

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// ChatResponse is the response body from the /chat endpoint.
//
// Only reply is expected on every response; prompts and cards are optional
// and their absence is never an error.
type ChatResponse struct {
	Reply   string   `json:"reply"`
	Prompts []string `json:"prompts,omitempty"`
	Cards   *Cards   `json:"cards,omitempty"`
}

// Cards groups the structured payloads attached to a reply.
type Cards struct {
	Flights []RawOffer  `json:"flights,omitempty"`
	Filters *RawFilters `json:"filters,omitempty"`
}

// RawOffer is a flight offer in upstream field names, before normalization.
// Note that segments is a segment count, not a stop count, and price may be
// either a JSON string or a number.
type RawOffer struct {
	Airline           string       `json:"airline"`
	Price             PriceValue   `json:"price"`
	Departure         string       `json:"departure"`
	Arrival           string       `json:"arrival"`
	DepartureDateTime string       `json:"departureDateTime"`
	ReturnDateTime    string       `json:"returnDateTime,omitempty"`
	Segments          int          `json:"segments"`
	DurationMinutes   int          `json:"durationMinutes"`
	OutboundSegments  []RawSegment `json:"outboundSegments,omitempty"`
	ReturnSegments    []RawSegment `json:"returnSegments,omitempty"`
}

// RawSegment is a single flown leg in upstream field names.
type RawSegment struct {
	Airline           string        `json:"airline"`
	FlightNumber      string        `json:"flightNumber"`
	Departure         string        `json:"departure"`
	Arrival           string        `json:"arrival"`
	DepartureDateTime string        `json:"departureDateTime"`
	ArrivalDateTime   string        `json:"arrivalDateTime"`
	DurationMinutes   int           `json:"durationMinutes"`
	Aircraft          string        `json:"aircraft,omitempty"`
	Amenities         []string      `json:"amenities,omitempty"`
	Emissions         *RawEmissions `json:"emissions,omitempty"`
}

// RawEmissions is the per-segment emissions estimate.
type RawEmissions struct {
	Value       float64 `json:"value"`
	Unit        string  `json:"unit"`
	Description string  `json:"description,omitempty"`
}

// RawFilters lists the server-declared filter facets.
type RawFilters struct {
	Airlines []string `json:"airlines,omitempty"`
	Stops    []int    `json:"stops,omitempty"`
	Cabins   []string `json:"cabins,omitempty"`
}

// =============================================================================
// PRICE VALUE
// =============================================================================

// PriceValue accepts the upstream price field, which is sent either as a
// JSON string ("450.5") or as a number (450.5). The raw text is preserved so
// normalization can reject unparseable values instead of silently producing
// NaN.
type PriceValue struct {
	raw string
}

// UnmarshalJSON implements json.Unmarshaler for both encodings.
func (p *PriceValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		p.raw = s
		return nil
	}

	// Not a string; keep the literal token (number, bool, null...) and let
	// Amount decide whether it parses.
	p.raw = strings.TrimSpace(string(data))
	if p.raw == "null" {
		p.raw = ""
	}
	return nil
}

// MarshalJSON round-trips the raw value as a string.
func (p PriceValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.raw)
}

// String returns the raw upstream text.
func (p PriceValue) String() string {
	return p.raw
}

// Amount parses the price into a finite non-negative float64.
func (p PriceValue) Amount() (float64, error) {
	s := strings.TrimSpace(p.raw)
	if s == "" {
		return 0, strconv.ErrSyntax
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	// ParseFloat accepts "NaN" and "Inf"; neither is a price.
	if v != v || v > maxFinitePrice || v < 0 {
		return 0, strconv.ErrRange
	}
	return v, nil
}

// maxFinitePrice guards against +Inf parsed from "Inf" or overflow notation.
const maxFinitePrice = 1e12
