// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides UI components for the trvlora TUI.
//
// # Key Types
//
//   - Spinner: loading animation shown in pending assistant bubbles
//   - OfferCard: bordered flight offer cards and stacked lists
//   - SuggestionChips: the tappable prompt row above the input
//
// Components are pure renderers over the conversation state; they hold
// presentation state only (selection, width, elapsed time) and never talk
// to the network.
package components
