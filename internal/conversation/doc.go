// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package conversation orchestrates the travel-chat state.
//
// The Controller owns all shared mutable state: the transcript, the active
// filter criteria, the server-declared filter facets, the current
// suggestions, and the panel state machine. Everything else in the core is
// a pure function over snapshots of that state.
//
// # Request lifecycle
//
// Dispatch applies the synchronous transcript side effects and returns a
// Command: deferred work that performs the remote call. The caller runs the
// Command off the event loop (as a bubbletea command in the TUI) and feeds
// the Result back into Resolve on the loop. Each dispatch mints a request ID
// shared by its pending placeholder and its Command, so a fast reply to an
// overlapping dispatch can never resolve the wrong placeholder.
//
//	cmd := ctrl.Dispatch("flights nyc to paris", true)
//	if cmd != nil {
//	    go func() { results <- cmd() }()
//	}
//	// ... on the loop:
//	ctrl.Resolve(<-results)
package conversation
