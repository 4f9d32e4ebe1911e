// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package trvlora provides the HTTP client for the trvlora chat API.
//
// The API is a single request/response call: the client POSTs the user's
// free-text message to /chat and receives a reply that may carry follow-up
// prompt suggestions and structured flight-offer cards.
//
// # Key Types
//
//   - Client: rate-limited HTTP client for the /chat endpoint
//   - ChatResponse: decoded wire response (reply, prompts, cards)
//   - Reply: normalized response in domain types
//   - ClientError: typed error distinguishing network failures from
//     malformed payloads
//
// # Usage
//
// Send a message and normalize the result:
//
//	client := trvlora.NewClient()
//	resp, err := client.Chat(ctx, "flights nyc to paris")
//	if err != nil {
//	    // trvlora.IsNetworkFailure / trvlora.IsMalformedResponse
//	}
//	reply, err := trvlora.Normalize(resp)
//
// Both failure categories surface to the user identically; the typed error
// exists so logs can tell them apart.
package trvlora
