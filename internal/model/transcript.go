// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for the travel chat transcript.
package model

import (
	"time"

	"github.com/google/uuid"
)

// MaxMessages is the maximum number of messages to keep in the transcript.
// When exceeded, old messages are pruned to prevent unbounded memory growth.
const MaxMessages = 1000

// =============================================================================
// TRANSCRIPT TYPE
// =============================================================================

// Transcript is the append-only conversation history. It is the single
// source of truth for everything derived from the conversation: the
// aggregated offer set, the suggestion state, and the panel visibility all
// recompute from it.
//
// Transcript is not safe for concurrent use; it is owned by the single
// event loop that processes dispatch results.
type Transcript struct {
	messages  []*Message
	updatedAt time.Time
}

// NewTranscript creates an empty transcript.
func NewTranscript() *Transcript {
	return &Transcript{
		messages: make([]*Message, 0),
	}
}

// =============================================================================
// MESSAGE MANAGEMENT
// =============================================================================

// Append adds a message to the end of the transcript.
func (t *Transcript) Append(msg *Message) {
	t.messages = append(t.messages, msg)
	t.updatedAt = time.Now()
	t.pruneOldMessages()
}

// ResolvePending replaces the pending placeholder tagged with requestID by
// the finalized message, at the same transcript index. It returns false when
// no matching placeholder exists (e.g. the transcript was cleared while the
// request was in flight).
func (t *Transcript) ResolvePending(requestID uuid.UUID, final *Message) bool {
	for i, msg := range t.messages {
		if msg.IsPending && msg.RequestID == requestID {
			t.messages[i] = final
			t.updatedAt = time.Now()
			return true
		}
	}
	return false
}

// RemovePending deletes the pending placeholder tagged with requestID.
func (t *Transcript) RemovePending(requestID uuid.UUID) bool {
	for i, msg := range t.messages {
		if msg.IsPending && msg.RequestID == requestID {
			t.messages = append(t.messages[:i], t.messages[i+1:]...)
			t.updatedAt = time.Now()
			return true
		}
	}
	return false
}

// Messages returns the transcript in insertion order. The returned slice is
// shared; callers must treat it as read-only.
func (t *Transcript) Messages() []*Message {
	return t.messages
}

// Last returns the most recent message, or nil if the transcript is empty.
func (t *Transcript) Last() *Message {
	if len(t.messages) == 0 {
		return nil
	}
	return t.messages[len(t.messages)-1]
}

// LastAssistant returns the most recent finalized assistant message.
func (t *Transcript) LastAssistant() *Message {
	for i := len(t.messages) - 1; i >= 0; i-- {
		if t.messages[i].IsFinalizedAssistant() {
			return t.messages[i]
		}
	}
	return nil
}

// PendingCount returns the number of pending placeholders currently in the
// transcript. With non-overlapping dispatches this is always 0 or 1.
func (t *Transcript) PendingCount() int {
	n := 0
	for _, msg := range t.messages {
		if msg.IsPending {
			n++
		}
	}
	return n
}

// Len returns the number of messages.
func (t *Transcript) Len() int {
	return len(t.messages)
}

// IsEmpty returns true if there are no messages.
func (t *Transcript) IsEmpty() bool {
	return len(t.messages) == 0
}

// UpdatedAt returns the time of the last transcript change.
func (t *Transcript) UpdatedAt() time.Time {
	return t.updatedAt
}

// Clear removes all messages.
func (t *Transcript) Clear() {
	t.messages = make([]*Message, 0)
	t.updatedAt = time.Now()
}

// =============================================================================
// PRUNING
// =============================================================================

// pruneOldMessages drops the oldest messages once the transcript exceeds
// MaxMessages. Pending placeholders are never pruned: their resolution must
// always find them.
func (t *Transcript) pruneOldMessages() {
	if len(t.messages) <= MaxMessages {
		return
	}

	// Drop the oldest finalized messages in place so the survivors keep
	// their relative order; partitioning would move pending placeholders
	// behind messages appended after them.
	excess := len(t.messages) - MaxMessages
	kept := make([]*Message, 0, MaxMessages)
	for _, msg := range t.messages {
		if excess > 0 && !msg.IsPending {
			excess--
			continue
		}
		kept = append(kept, msg)
	}
	t.messages = kept
}
