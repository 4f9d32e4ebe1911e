// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package trvlora provides the HTTP client for the trvlora chat API.
package trvlora

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient points a client at a stub server with the limiter disabled.
func newTestClient(url string) *Client {
	return NewClientWithConfig(&ClientConfig{
		BaseURL:           url,
		RequestsPerMinute: 0,
	})
}

// =============================================================================
// CHAT TESTS
// =============================================================================

func TestClient_ChatSendsMessage(t *testing.T) {
	var got ChatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/chat", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(ChatResponse{Reply: "ok"})
	}))
	defer srv.Close()

	resp, err := newTestClient(srv.URL).Chat(context.Background(), "flights nyc to paris")
	require.NoError(t, err)
	assert.Equal(t, "flights nyc to paris", got.Message)
	assert.Equal(t, "ok", resp.Reply)
}

func TestClient_ChatDecodesCards(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"reply": "found one",
			"prompts": ["Cheapest flight to Tokyo?"],
			"cards": {
				"flights": [{
					"airline": "Delta",
					"price": "450.5",
					"departure": "JFK",
					"arrival": "CDG",
					"departureDateTime": "2025-06-01T10:00:00Z",
					"segments": 1,
					"durationMinutes": 420
				}],
				"filters": {"airlines": ["Delta"], "stops": [0, 1]}
			}
		}`))
	}))
	defer srv.Close()

	resp, err := newTestClient(srv.URL).Chat(context.Background(), "hi")
	require.NoError(t, err)
	require.NotNil(t, resp.Cards)
	require.Len(t, resp.Cards.Flights, 1)

	price, err := resp.Cards.Flights[0].Price.Amount()
	require.NoError(t, err)
	assert.Equal(t, 450.5, price)
	assert.Equal(t, []string{"Delta"}, resp.Cards.Filters.Airlines)
}

func TestClient_ChatServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Chat(context.Background(), "hi")
	require.Error(t, err)
	assert.True(t, IsNetworkFailure(err), "5xx should surface as a network failure")
	assert.False(t, IsMalformedResponse(err))
}

func TestClient_ChatUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	_, err := newTestClient(srv.URL).Chat(context.Background(), "hi")
	require.Error(t, err)
	assert.True(t, IsNetworkFailure(err))
}

func TestClient_ChatBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"reply": `))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Chat(context.Background(), "hi")
	require.Error(t, err)
	assert.True(t, IsMalformedResponse(err), "truncated JSON should surface as malformed")
	assert.False(t, IsNetworkFailure(err))
}

func TestClient_ChatContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestClient(srv.URL).Chat(ctx, "hi")
	require.Error(t, err)
	assert.True(t, IsNetworkFailure(err))
}

// =============================================================================
// PRICE VALUE TESTS
// =============================================================================

func TestPriceValue_Amount(t *testing.T) {
	tests := []struct {
		name    string
		json    string
		want    float64
		wantErr bool
	}{
		{"string price", `"450.5"`, 450.5, false},
		{"numeric price", `450.5`, 450.5, false},
		{"integer price", `99`, 99, false},
		{"zero", `0`, 0, false},
		{"padded string", `" 120.00 "`, 120, false},
		{"empty string", `""`, 0, true},
		{"null", `null`, 0, true},
		{"garbage", `"four hundred"`, 0, true},
		{"nan literal", `"NaN"`, 0, true},
		{"infinity literal", `"Inf"`, 0, true},
		{"negative", `-10`, 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var p PriceValue
			require.NoError(t, json.Unmarshal([]byte(tc.json), &p))

			got, err := p.Amount()
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// =============================================================================
// CONFIG TESTS
// =============================================================================

func TestNewClientWithConfig_Defaults(t *testing.T) {
	c := NewClientWithConfig(&ClientConfig{})
	assert.Equal(t, "https://local.trvlora.com", c.BaseURL())

	c = NewClientWithConfig(nil)
	assert.Equal(t, "https://local.trvlora.com", c.BaseURL())
}
