// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package suggest maps assistant output to follow-up prompt suggestions.
//
// Two independent mechanisms are provided:
//
//   - Relevant filters a server-supplied suggestion list down to the
//     travel-relevant entries by case-insensitive keyword match.
//   - FollowUpsFor maps an assistant topic onto a canned follow-up set from
//     a configurable catalog.
//
// The keyword list, catalog, and initial prompt chips are all data-driven;
// the config file may replace any of them.
package suggest
