// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for the travel chat transcript.
package model

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// SENDER TYPE
// =============================================================================

// Sender identifies who produced a message.
type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// String returns the string representation of the sender.
func (s Sender) String() string {
	return string(s)
}

// DisplayName returns a human-readable name for the sender.
func (s Sender) DisplayName() string {
	switch s {
	case SenderUser:
		return "You"
	case SenderAssistant:
		return "Trvlora"
	default:
		return string(s)
	}
}

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// Message represents a single entry in the conversation transcript.
//
// A message is immutable once finalized. The only exception is the pending
// placeholder appended while a request is in flight, which is replaced in
// place (not mutated) when its result arrives.
type Message struct {
	// Identity
	ID        string    `json:"id"`
	Sender    Sender    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`

	// RequestID correlates a pending placeholder with the in-flight request
	// that will resolve it. Zero for user messages and for finalized
	// assistant messages whose request has completed.
	RequestID uuid.UUID `json:"request_id,omitempty"`

	// Content
	Text string `json:"text"`

	// Offers carried by a finalized assistant message. Nil when the reply
	// contained no flight results.
	Offers []FlightOffer `json:"offers,omitempty"`

	// IsPending marks the transient placeholder shown while awaiting a
	// remote reply.
	IsPending bool `json:"-"`
}

// NewUserMessage creates a finalized user message.
func NewUserMessage(text string) *Message {
	return &Message{
		ID:        generateMessageID(),
		Sender:    SenderUser,
		Text:      text,
		Timestamp: time.Now(),
	}
}

// NewPendingMessage creates the transient assistant placeholder for the
// request identified by requestID.
func NewPendingMessage(requestID uuid.UUID) *Message {
	return &Message{
		ID:        generateMessageID(),
		Sender:    SenderAssistant,
		RequestID: requestID,
		Timestamp: time.Now(),
		IsPending: true,
	}
}

// NewAssistantMessage creates a finalized assistant message.
func NewAssistantMessage(text string, offers []FlightOffer) *Message {
	return &Message{
		ID:        generateMessageID(),
		Sender:    SenderAssistant,
		Text:      text,
		Offers:    offers,
		Timestamp: time.Now(),
	}
}

// OfferCount returns the number of offers carried by the message.
func (m *Message) OfferCount() int {
	return len(m.Offers)
}

// IsFinalizedAssistant reports whether the message is an assistant reply
// that has completed (not a pending placeholder).
func (m *Message) IsFinalizedAssistant() bool {
	return m.Sender == SenderAssistant && !m.IsPending
}

// Preview returns a truncated preview of the message text.
// Uses rune-based truncation to handle Unicode correctly.
func (m *Message) Preview(maxLen int) string {
	runes := []rune(m.Text)
	if len(runes) <= maxLen {
		return m.Text
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// generateMessageID creates a unique message ID.
func generateMessageID() string {
	bytes := make([]byte, 8)
	rand.Read(bytes)
	return "msg_" + hex.EncodeToString(bytes)
}
