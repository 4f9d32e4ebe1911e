// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package panel implements the results-panel visibility state machine.
//
// The panel is a finite-state machine over Hidden, Results(snap), and
// Filters, plus a dismissal latch that suppresses automatic re-opening
// until a fresh dispatch delivers new offers. All transitions are explicit
// methods; there is no hidden timing-dependent flag handling.
package panel
