// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for the travel chat transcript.
package model

// =============================================================================
// FLIGHT OFFER TYPES
// =============================================================================

// FlightOffer is a priced, schedulable travel itinerary with one or more
// flown segments. Offers are derived from assistant replies and exist only
// as a read-only projection of the transcript.
type FlightOffer struct {
	Airline     string `json:"airline"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`

	DepartureTime string `json:"departure_time"`
	// ReturnTime is empty for one-way itineraries.
	ReturnTime string `json:"return_time,omitempty"`

	// PriceAmount is always a finite non-negative number, in USD.
	// Offers with unparseable upstream prices are rejected during
	// normalization, never coerced to NaN.
	PriceAmount float64 `json:"price_amount"`

	// StopCount is the number of intermediate stops (segments minus one).
	StopCount int `json:"stop_count"`

	DurationMinutes int `json:"duration_minutes"`

	OutboundSegments []Segment `json:"outbound_segments"`
	ReturnSegments   []Segment `json:"return_segments,omitempty"`
}

// IsRoundTrip reports whether the offer includes a return leg.
func (o FlightOffer) IsRoundTrip() bool {
	return o.ReturnTime != ""
}

// IsNonStop reports whether the outbound itinerary has no intermediate stops.
func (o FlightOffer) IsNonStop() bool {
	return o.StopCount == 0
}

// Segment is a single flown leg within an offer.
type Segment struct {
	Airline       string `json:"airline"`
	FlightNumber  string `json:"flight_number"`
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureTime string `json:"departure_time"`
	ArrivalTime   string `json:"arrival_time"`

	DurationMinutes int `json:"duration_minutes"`

	Aircraft  string     `json:"aircraft,omitempty"`
	Amenities []string   `json:"amenities,omitempty"`
	Emissions *Emissions `json:"emissions,omitempty"`
}

// Emissions describes the estimated carbon footprint of a segment.
type Emissions struct {
	Value       float64 `json:"value"`
	Unit        string  `json:"unit"`
	Description string  `json:"description,omitempty"`
}

// =============================================================================
// FILTER TYPES
// =============================================================================

// FilterCriteria holds the user-selected constraints over the aggregated
// offer set. A nil or empty slice means "no constraint on this dimension";
// the two are treated identically everywhere. A nil price bound means the
// bound is absent.
type FilterCriteria struct {
	Airlines   []string `json:"airlines,omitempty"`
	StopCounts []int    `json:"stop_counts,omitempty"`
	PriceMin   *float64 `json:"price_min,omitempty"`
	PriceMax   *float64 `json:"price_max,omitempty"`
}

// IsEmpty reports whether no dimension is constrained.
func (c FilterCriteria) IsEmpty() bool {
	return len(c.Airlines) == 0 &&
		len(c.StopCounts) == 0 &&
		c.PriceMin == nil &&
		c.PriceMax == nil
}

// HasAirline reports whether the airline is in the criteria set.
func (c FilterCriteria) HasAirline(airline string) bool {
	for _, a := range c.Airlines {
		if a == airline {
			return true
		}
	}
	return false
}

// HasStopCount reports whether the stop count is in the criteria set.
func (c FilterCriteria) HasStopCount(stops int) bool {
	for _, s := range c.StopCounts {
		if s == stops {
			return true
		}
	}
	return false
}

// AvailableFilterOptions lists the server-declared filter facets. They are
// informational only: the client uses them to populate the filter form and
// never enforces them against the offers.
type AvailableFilterOptions struct {
	Airlines []string `json:"airlines,omitempty"`
	Stops    []int    `json:"stops,omitempty"`
	Cabins   []string `json:"cabins,omitempty"`
}

// IsEmpty reports whether the server declared no facets.
func (f AvailableFilterOptions) IsEmpty() bool {
	return len(f.Airlines) == 0 && len(f.Stops) == 0 && len(f.Cabins) == 0
}
