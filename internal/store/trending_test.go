// Copyright (C) 2026 WaitingWall
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/melakufr/waiting-wall/internal/model"
)

func testTopics() []model.TrendingTopic {
	return []model.TrendingTopic{
		{ID: "1", Name: "#visa", Count: 12400, Category: model.CategoryHashtag, Growth: 14.2},
		{ID: "2", Name: "exam results", Count: 8100, Category: model.CategoryTopic, Growth: -2.5},
		{ID: "3", Name: "world cup final", Count: 98000, Category: model.CategoryEvent, Growth: 31.0},
		{ID: "4", Name: "#commute", Count: 430, Category: model.CategoryHashtag, Growth: 3.1},
	}
}

// =============================================================================
// Setters and Queries
// =============================================================================

func TestSetTrendingTopics_ReplacesAndCopies(t *testing.T) {
	s := newTestStore(t)
	topics := testTopics()
	s.SetTrendingTopics(topics)

	topics[0].Name = "mutated"

	got := s.TrendingTopics()
	require.Len(t, got, 4)
	assert.Equal(t, "#visa", got[0].Name)
}

func TestSetTrendingUsers(t *testing.T) {
	s := newTestStore(t)
	s.SetTrendingUsers([]model.TrendingUser{
		{ID: "u1", Name: "Asha", Username: "asha"},
	})

	users := s.TrendingUsers()
	require.Len(t, users, 1)
	assert.Equal(t, "asha", users[0].Username)
}

func TestSearchTrending_CaseInsensitiveContains(t *testing.T) {
	s := newTestStore(t)
	s.SetTrendingTopics(testTopics())

	tests := []struct {
		query string
		want  []string
	}{
		{"VISA", []string{"#visa"}},
		{"exam", []string{"exam results"}},
		{"c", []string{"world cup final", "#commute"}},
		{"nothing", nil},
		{"", []string{"#visa", "exam results", "world cup final", "#commute"}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			var names []string
			for _, topic := range s.SearchTrending(tt.query) {
				names = append(names, topic.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestGetTrendingByCategory_ExactMatch(t *testing.T) {
	s := newTestStore(t)
	s.SetTrendingTopics(testTopics())

	hashtags := s.GetTrendingByCategory(model.CategoryHashtag)
	require.Len(t, hashtags, 2)
	assert.Equal(t, "#visa", hashtags[0].Name)
	assert.Equal(t, "#commute", hashtags[1].Name)

	assert.Len(t, s.GetTrendingByCategory(model.CategoryEvent), 1)
	assert.Empty(t, s.GetTrendingByCategory(model.TrendingCategory("bogus")))
}

// =============================================================================
// View Selection State
// =============================================================================

func TestSetSelectedTrendingTopic_EmptyClears(t *testing.T) {
	s := newTestStore(t)

	s.SetSelectedTrendingTopic("#visa")
	assert.Equal(t, "#visa", s.SelectedTrendingTopic())

	s.SetSelectedTrendingTopic("")
	assert.Empty(t, s.SelectedTrendingTopic())
}

func TestSetActiveTab(t *testing.T) {
	s := newTestStore(t)
	assert.Equal(t, "global", s.ActiveTab())

	s.SetActiveTab("my-circle")
	assert.Equal(t, "my-circle", s.ActiveTab())
}
