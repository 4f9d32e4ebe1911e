// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package suggest maps assistant output to follow-up prompt suggestions.
package suggest

import (
	"reflect"
	"testing"
)

// =============================================================================
// RELEVANCE TESTS
// =============================================================================

func TestEngine_Relevant(t *testing.T) {
	engine := NewEngine()

	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			"keeps travel prompts",
			[]string{"Find a cheaper flight?", "Tell me a joke", "Best hotel in Paris?"},
			[]string{"Find a cheaper flight?", "Best hotel in Paris?"},
		},
		{
			"case insensitive",
			[]string{"PLAN MY TRIP", "VISA rules for Japan"},
			[]string{"PLAN MY TRIP", "VISA rules for Japan"},
		},
		{
			"preserves order and duplicates",
			[]string{"trip to Bali", "nothing relevant", "trip to Bali"},
			[]string{"trip to Bali", "trip to Bali"},
		},
		{
			"nothing relevant",
			[]string{"What's 2+2?", "Sing me a song"},
			[]string{},
		},
		{
			"empty input",
			nil,
			[]string{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := engine.Relevant(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Relevant(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestEngine_RelevantCustomKeywords(t *testing.T) {
	engine := NewEngineWith([]string{"cruise"}, nil, nil)

	got := engine.Relevant([]string{"Book a cruise", "Find a flight"})
	want := []string{"Book a cruise"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Relevant() = %v, want %v", got, want)
	}
}

// =============================================================================
// FOLLOW-UP CATALOG TESTS
// =============================================================================

func TestEngine_FollowUpsFor(t *testing.T) {
	engine := NewEngine()

	tests := []struct {
		name  string
		topic string
		want  []string
	}{
		{
			"exact key",
			"Find the cheapest flight",
			DefaultCatalog["Find the cheapest flight"],
		},
		{
			"key embedded in a longer reply",
			"Sure! Want me to find the cheapest flight for those dates?",
			DefaultCatalog["Find the cheapest flight"],
		},
		{
			"case insensitive",
			"TOP PLACES TO VISIT in autumn",
			DefaultCatalog["Top places to visit"],
		},
		{
			"no match returns nil",
			"Here is a recipe for ramen",
			nil,
		},
		{
			"empty topic returns nil",
			"",
			nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := engine.FollowUpsFor(tc.topic)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("FollowUpsFor(%q) = %v, want %v", tc.topic, got, tc.want)
			}
		})
	}
}

func TestEngine_FollowUpsForDeterministic(t *testing.T) {
	catalog := map[string][]string{
		"beach": {"beach follow-up"},
		"alps":  {"alps follow-up"},
	}
	engine := NewEngineWith(nil, catalog, nil)

	// Topic contains both keys; sorted probing makes "alps" win every time.
	for i := 0; i < 10; i++ {
		got := engine.FollowUpsFor("alps or beach?")
		if !reflect.DeepEqual(got, catalog["alps"]) {
			t.Fatalf("FollowUpsFor() = %v, want the sorted-first key's prompts", got)
		}
	}
}

func TestEngine_InitialPrompts(t *testing.T) {
	if !reflect.DeepEqual(NewEngine().InitialPrompts(), DefaultInitialPrompts) {
		t.Error("InitialPrompts() should return the default seed set")
	}

	custom := []string{"Plan a honeymoon"}
	if !reflect.DeepEqual(NewEngineWith(nil, nil, custom).InitialPrompts(), custom) {
		t.Error("InitialPrompts() should return the configured seed set")
	}
}
