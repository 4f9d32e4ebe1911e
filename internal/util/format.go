// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// pricePrinter inserts locale-aware thousands separators.
var pricePrinter = message.NewPrinter(language.English)

// FormatPrice renders an offer price for display, e.g. "$1,234.50".
func FormatPrice(amount float64) string {
	return pricePrinter.Sprintf("$%.2f", amount)
}

// FormatDurationMinutes renders a flight duration, e.g. "7h 5m".
// Whole hours drop the minute part; durations under an hour drop the hour.
func FormatDurationMinutes(minutes int) string {
	if minutes <= 0 {
		return "0m"
	}
	h := minutes / 60
	m := minutes % 60
	switch {
	case h == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh %dm", h, m)
	}
}

// FormatStops renders a stop count, e.g. "Nonstop", "1 stop", "2 stops".
func FormatStops(stops int) string {
	switch {
	case stops <= 0:
		return "Nonstop"
	case stops == 1:
		return "1 stop"
	default:
		return fmt.Sprintf("%d stops", stops)
	}
}

// FormatDateTime renders an RFC 3339 timestamp as a short display string,
// e.g. "Mon, Jun 1 10:00". Unparseable input passes through unchanged so a
// service that sends preformatted times still displays something.
func FormatDateTime(raw string) string {
	if raw == "" {
		return ""
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return raw
	}
	return t.Format("Mon, Jan 2 15:04")
}
