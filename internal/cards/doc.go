// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cards derives the flight-offer collection from the transcript.
//
// Both operations here are pure functions over snapshots of orchestrator
// state: Aggregate flattens the offers of every finalized assistant message
// in transcript order, and Apply narrows that set by the user's filter
// criteria. Neither function ever fails; malformed input degrades to an
// empty result.
package cards
