// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for the travel chat transcript.
package model

import (
	"testing"

	"github.com/google/uuid"
)

// =============================================================================
// TRANSCRIPT TESTS
// =============================================================================

func TestTranscript_AppendOrdering(t *testing.T) {
	tr := NewTranscript()
	tr.Append(NewUserMessage("first"))
	tr.Append(NewUserMessage("second"))
	tr.Append(NewUserMessage("third"))

	msgs := tr.Messages()
	if len(msgs) != 3 {
		t.Fatalf("Len() = %d, want 3", len(msgs))
	}
	for i, want := range []string{"first", "second", "third"} {
		if msgs[i].Text != want {
			t.Errorf("messages[%d].Text = %q, want %q", i, msgs[i].Text, want)
		}
	}
}

func TestTranscript_ResolvePendingReplacesInPlace(t *testing.T) {
	tr := NewTranscript()
	tr.Append(NewUserMessage("flights nyc to paris"))

	reqID := uuid.New()
	tr.Append(NewPendingMessage(reqID))
	tr.Append(NewUserMessage("and hotels too"))

	if tr.PendingCount() != 1 {
		t.Fatalf("PendingCount() = %d, want 1", tr.PendingCount())
	}

	final := NewAssistantMessage("ok", nil)
	if !tr.ResolvePending(reqID, final) {
		t.Fatal("ResolvePending() = false, want true")
	}

	msgs := tr.Messages()
	if msgs[1] != final {
		t.Error("finalized message should occupy the pending message's index")
	}
	if tr.PendingCount() != 0 {
		t.Errorf("PendingCount() = %d after resolve, want 0", tr.PendingCount())
	}
}

func TestTranscript_ResolvePendingMatchesByRequestID(t *testing.T) {
	tr := NewTranscript()

	first := uuid.New()
	second := uuid.New()
	tr.Append(NewPendingMessage(first))
	tr.Append(NewPendingMessage(second))

	// Resolving the second request must not touch the first placeholder,
	// even though the first one comes earlier in the transcript.
	if !tr.ResolvePending(second, NewAssistantMessage("second reply", nil)) {
		t.Fatal("ResolvePending(second) = false, want true")
	}

	msgs := tr.Messages()
	if !msgs[0].IsPending || msgs[0].RequestID != first {
		t.Error("first placeholder should remain pending")
	}
	if msgs[1].IsPending {
		t.Error("second placeholder should be finalized")
	}
	if msgs[1].Text != "second reply" {
		t.Errorf("messages[1].Text = %q, want %q", msgs[1].Text, "second reply")
	}
}

func TestTranscript_ResolvePendingUnknownID(t *testing.T) {
	tr := NewTranscript()
	tr.Append(NewPendingMessage(uuid.New()))

	if tr.ResolvePending(uuid.New(), NewAssistantMessage("stray", nil)) {
		t.Error("ResolvePending() with unknown ID should return false")
	}
	if tr.PendingCount() != 1 {
		t.Errorf("PendingCount() = %d, want 1", tr.PendingCount())
	}
}

func TestTranscript_RemovePending(t *testing.T) {
	tr := NewTranscript()
	reqID := uuid.New()
	tr.Append(NewUserMessage("hello"))
	tr.Append(NewPendingMessage(reqID))

	if !tr.RemovePending(reqID) {
		t.Fatal("RemovePending() = false, want true")
	}
	if tr.Len() != 1 {
		t.Errorf("Len() = %d after remove, want 1", tr.Len())
	}
	if tr.RemovePending(reqID) {
		t.Error("second RemovePending() should return false")
	}
}

func TestTranscript_PruneKeepsPending(t *testing.T) {
	tr := NewTranscript()
	reqID := uuid.New()
	tr.Append(NewPendingMessage(reqID))

	for i := 0; i <= MaxMessages; i++ {
		tr.Append(NewUserMessage("filler"))
	}

	if tr.PendingCount() != 1 {
		t.Fatalf("PendingCount() = %d after pruning, want 1", tr.PendingCount())
	}
	if !tr.ResolvePending(reqID, NewAssistantMessage("late reply", nil)) {
		t.Error("pending placeholder should survive pruning and resolve")
	}
}

func TestTranscript_PrunePreservesOrder(t *testing.T) {
	tr := NewTranscript()
	for i := 0; i < MaxMessages; i++ {
		tr.Append(NewUserMessage("old filler"))
	}

	reqID := uuid.New()
	tr.Append(NewPendingMessage(reqID))
	tr.Append(NewUserMessage("after pending"))

	msgs := tr.Messages()
	if msgs[len(msgs)-1].Text != "after pending" {
		t.Fatalf("last message = %q, want the message appended after the placeholder", msgs[len(msgs)-1].Text)
	}
	if !msgs[len(msgs)-2].IsPending {
		t.Fatal("placeholder should stay in its appended position after pruning")
	}

	tr.ResolvePending(reqID, NewAssistantMessage("reply", nil))
	msgs = tr.Messages()
	if msgs[len(msgs)-2].Text != "reply" {
		t.Errorf("resolved reply moved to %q position, want second-to-last", msgs[len(msgs)-2].Text)
	}
}

// =============================================================================
// MESSAGE TESTS
// =============================================================================

func TestMessage_Constructors(t *testing.T) {
	user := NewUserMessage("hi")
	if user.Sender != SenderUser || user.IsPending {
		t.Error("NewUserMessage should be a finalized user message")
	}

	reqID := uuid.New()
	pending := NewPendingMessage(reqID)
	if pending.Sender != SenderAssistant || !pending.IsPending {
		t.Error("NewPendingMessage should be a pending assistant message")
	}
	if pending.RequestID != reqID {
		t.Error("NewPendingMessage should carry the request ID")
	}
	if pending.IsFinalizedAssistant() {
		t.Error("pending message must not count as finalized assistant")
	}

	assistant := NewAssistantMessage("reply", []FlightOffer{{Airline: "Delta"}})
	if !assistant.IsFinalizedAssistant() {
		t.Error("NewAssistantMessage should be a finalized assistant message")
	}
	if assistant.OfferCount() != 1 {
		t.Errorf("OfferCount() = %d, want 1", assistant.OfferCount())
	}

	if user.ID == assistant.ID {
		t.Error("message IDs should be unique")
	}
}

func TestMessage_Preview(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		maxLen int
		want   string
	}{
		{"short text unchanged", "hello", 10, "hello"},
		{"long text truncated", "find me the cheapest flight", 10, "find me..."},
		{"tiny budget no ellipsis", "hello", 2, "he"},
		{"unicode safe", "日本行きの航空券", 5, "日本..."},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			msg := NewUserMessage(tc.text)
			if got := msg.Preview(tc.maxLen); got != tc.want {
				t.Errorf("Preview(%d) = %q, want %q", tc.maxLen, got, tc.want)
			}
		})
	}
}

// =============================================================================
// FILTER CRITERIA TESTS
// =============================================================================

func TestFilterCriteria_IsEmpty(t *testing.T) {
	min := 100.0

	tests := []struct {
		name     string
		criteria FilterCriteria
		want     bool
	}{
		{"zero value", FilterCriteria{}, true},
		{"empty slices", FilterCriteria{Airlines: []string{}, StopCounts: []int{}}, true},
		{"airlines set", FilterCriteria{Airlines: []string{"Delta"}}, false},
		{"stops set", FilterCriteria{StopCounts: []int{0}}, false},
		{"price bound set", FilterCriteria{PriceMin: &min}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.criteria.IsEmpty(); got != tc.want {
				t.Errorf("IsEmpty() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestFlightOffer_Flags(t *testing.T) {
	oneWay := FlightOffer{StopCount: 0}
	if !oneWay.IsNonStop() || oneWay.IsRoundTrip() {
		t.Error("offer without return time should be non-stop one-way")
	}

	round := FlightOffer{ReturnTime: "2025-06-10T18:00:00Z", StopCount: 2}
	if !round.IsRoundTrip() || round.IsNonStop() {
		t.Error("offer with return time and stops should be round-trip with stops")
	}
}
