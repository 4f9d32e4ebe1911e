// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package trvlora provides the HTTP client for the trvlora chat API.
package trvlora

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// priceOf builds a PriceValue from a JSON literal for test fixtures.
func priceOf(t *testing.T, literal string) PriceValue {
	t.Helper()
	var p PriceValue
	require.NoError(t, json.Unmarshal([]byte(literal), &p))
	return p
}

// =============================================================================
// NORMALIZE TESTS
// =============================================================================

func TestNormalize_SingleOffer(t *testing.T) {
	resp := &ChatResponse{
		Reply: "ok",
		Cards: &Cards{
			Flights: []RawOffer{{
				Airline:           "Delta",
				Price:             priceOf(t, `"450.5"`),
				Departure:         "JFK",
				Arrival:           "CDG",
				DepartureDateTime: "2025-06-01T10:00:00Z",
				Segments:          1,
				DurationMinutes:   420,
			}},
		},
	}

	reply, err := Normalize(resp)
	require.NoError(t, err)
	require.Len(t, reply.Offers, 1)

	offer := reply.Offers[0]
	assert.Equal(t, "ok", reply.Text)
	assert.Equal(t, 450.5, offer.PriceAmount)
	assert.Equal(t, 0, offer.StopCount, "1 segment means non-stop")
	assert.Equal(t, "JFK", offer.Origin)
	assert.Equal(t, "CDG", offer.Destination)
	assert.NotNil(t, offer.OutboundSegments, "missing segment list defaults to empty, not nil")
	assert.Empty(t, offer.OutboundSegments)
}

func TestNormalize_MissingReplyUsesFallback(t *testing.T) {
	reply, err := Normalize(&ChatResponse{})
	require.NoError(t, err)
	assert.Equal(t, FallbackReply, reply.Text)
	assert.Empty(t, reply.Offers)
	assert.Empty(t, reply.Prompts)
	assert.True(t, reply.Filters.IsEmpty())
}

func TestNormalize_WhitespaceReplyUsesFallback(t *testing.T) {
	reply, err := Normalize(&ChatResponse{Reply: "   \n"})
	require.NoError(t, err)
	assert.Equal(t, FallbackReply, reply.Text)
}

func TestNormalize_TrimsReply(t *testing.T) {
	reply, err := Normalize(&ChatResponse{Reply: "  here you go  "})
	require.NoError(t, err)
	assert.Equal(t, "here you go", reply.Text)
}

func TestNormalize_StopCount(t *testing.T) {
	tests := []struct {
		name     string
		segments int
		want     int
	}{
		{"non-stop", 1, 0},
		{"one stop", 2, 1},
		{"two stops", 3, 2},
		{"degenerate zero segments", 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			reply, err := Normalize(&ChatResponse{
				Reply: "ok",
				Cards: &Cards{Flights: []RawOffer{{
					Airline:  "United",
					Price:    priceOf(t, `100`),
					Segments: tc.segments,
				}}},
			})
			require.NoError(t, err)
			assert.Equal(t, tc.want, reply.Offers[0].StopCount)
		})
	}
}

func TestNormalize_BadPriceRejectsPayload(t *testing.T) {
	resp := &ChatResponse{
		Reply: "ok",
		Cards: &Cards{Flights: []RawOffer{
			{Airline: "Delta", Price: priceOf(t, `100`), Segments: 1},
			{Airline: "United", Price: priceOf(t, `"cheap!"`), Segments: 1},
		}},
	}

	_, err := Normalize(resp)
	require.Error(t, err)
	assert.True(t, IsMalformedResponse(err))
}

func TestNormalize_Segments(t *testing.T) {
	resp := &ChatResponse{
		Reply: "ok",
		Cards: &Cards{Flights: []RawOffer{{
			Airline:        "ANA",
			Price:          priceOf(t, `1200`),
			Segments:       2,
			ReturnDateTime: "2025-07-02T09:00:00Z",
			OutboundSegments: []RawSegment{{
				Airline:           "ANA",
				FlightNumber:      "NH9",
				Departure:         "JFK",
				Arrival:           "HND",
				DepartureDateTime: "2025-07-01T11:00:00Z",
				ArrivalDateTime:   "2025-07-02T14:00:00Z",
				DurationMinutes:   840,
				Aircraft:          "777-300ER",
				Amenities:         []string{"wifi"},
				Emissions:         &RawEmissions{Value: 812, Unit: "kg"},
			}},
		}}},
	}

	reply, err := Normalize(resp)
	require.NoError(t, err)

	offer := reply.Offers[0]
	assert.True(t, offer.IsRoundTrip())
	require.Len(t, offer.OutboundSegments, 1)

	seg := offer.OutboundSegments[0]
	assert.Equal(t, "NH9", seg.FlightNumber)
	assert.Equal(t, "JFK", seg.Origin)
	assert.Equal(t, "HND", seg.Destination)
	require.NotNil(t, seg.Emissions)
	assert.Equal(t, 812.0, seg.Emissions.Value)

	assert.NotNil(t, offer.ReturnSegments)
	assert.Empty(t, offer.ReturnSegments)
}

func TestNormalize_NilResponse(t *testing.T) {
	_, err := Normalize(nil)
	require.Error(t, err)
	assert.True(t, IsMalformedResponse(err))
}
