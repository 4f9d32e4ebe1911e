// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the trvlora client.
//
// This package contains common helper functions used throughout the
// application for string handling and display formatting.
//
// # Key Functions
//
// String Utilities:
//   - TruncateRunes: UTF-8 safe string truncation with ellipsis
//   - TruncateWidth: terminal-column aware truncation (CJK safe)
//
// Display Formatting:
//   - FormatPrice: offer price with thousands separators
//   - FormatDurationMinutes: "7h 5m" style durations
//   - FormatStops: "Nonstop" / "1 stop" / "2 stops"
//
// # Usage
//
//	// Truncate long strings safely for display
//	display := util.TruncateRunes(longText, 50)
//
//	// Render an offer price
//	price := util.FormatPrice(offer.PriceAmount)
package util
