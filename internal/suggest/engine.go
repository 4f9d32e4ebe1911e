// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package suggest maps assistant output to follow-up prompt suggestions.
package suggest

import (
	"sort"
	"strings"
)

// =============================================================================
// DEFAULTS
// =============================================================================

// DefaultKeywords is the travel-relevance keyword set. A server-supplied
// suggestion is kept only if it contains one of these, case-insensitively.
// The list is data, not control flow: configs may replace it wholesale.
var DefaultKeywords = []string{
	"flight",
	"hotel",
	"visa",
	"travel",
	"trip",
	"itinerary",
	"places",
}

// DefaultInitialPrompts seeds the prompt chips before the assistant has said
// anything.
var DefaultInitialPrompts = []string{
	"Find the cheapest flight",
	"Hotel deals & recommendations",
	"Top places to visit",
	"Visa or entry requirements",
	"Create a full-day itinerary",
}

// DefaultCatalog maps a topic to its canned follow-up prompts.
var DefaultCatalog = map[string][]string{
	"Find the cheapest flight": {
		"From NYC to Tokyo",
		"Flexible dates",
		"Direct flights only",
	},
	"Hotel deals & recommendations": {
		"In New York",
		"In Tokyo",
		"Near the Eiffel Tower",
	},
	"Top places to visit": {
		"In Paris",
		"In Bali",
		"In Tokyo",
	},
	"Visa or entry requirements": {
		"For US citizens to Japan",
		"For India to Schengen area",
	},
	"Create a full-day itinerary": {
		"In Rome",
		"In Kyoto",
		"In NYC with kids",
	},
}

// =============================================================================
// ENGINE
// =============================================================================

// Engine filters server-supplied suggestions to travel-relevant ones and
// maps assistant topics to canned follow-up sets. The two mechanisms are
// independent; the orchestrator picks one depending on whether the server
// supplied suggestions directly.
type Engine struct {
	keywords []string
	catalog  map[string][]string
	initial  []string
}

// NewEngine creates an engine with the default keyword set and catalog.
func NewEngine() *Engine {
	return NewEngineWith(DefaultKeywords, DefaultCatalog, DefaultInitialPrompts)
}

// NewEngineWith creates an engine with custom data. Nil arguments fall back
// to the defaults.
func NewEngineWith(keywords []string, catalog map[string][]string, initial []string) *Engine {
	if keywords == nil {
		keywords = DefaultKeywords
	}
	if catalog == nil {
		catalog = DefaultCatalog
	}
	if initial == nil {
		initial = DefaultInitialPrompts
	}
	return &Engine{keywords: keywords, catalog: catalog, initial: initial}
}

// InitialPrompts returns the seed prompt set.
func (e *Engine) InitialPrompts() []string {
	return e.initial
}

// Relevant keeps the suggestions containing at least one travel keyword,
// case-insensitively. Order is preserved and duplicates pass through
// unchanged.
func (e *Engine) Relevant(suggestions []string) []string {
	kept := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		if e.isRelevant(s) {
			kept = append(kept, s)
		}
	}
	return kept
}

// FollowUpsFor returns the follow-up set of the first catalog key contained
// in topic, case-insensitively, or nil when no key matches. The key is the
// needle and the topic the haystack, so a verbose assistant reply mentioning
// a known topic still matches. Keys are probed in sorted order so a topic
// matching several keys resolves deterministically.
func (e *Engine) FollowUpsFor(topic string) []string {
	lowered := strings.ToLower(topic)
	keys := make([]string, 0, len(e.catalog))
	for key := range e.catalog {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if strings.Contains(lowered, strings.ToLower(key)) {
			return e.catalog[key]
		}
	}
	return nil
}

// isRelevant checks the keyword predicate for one suggestion.
func (e *Engine) isRelevant(s string) bool {
	lowered := strings.ToLower(s)
	for _, kw := range e.keywords {
		if strings.Contains(lowered, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
