// Copyright (C) 2026 WaitingWall
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package store

import (
	"strings"

	"github.com/melakufr/waiting-wall/internal/model"
)

// =============================================================================
// Trending Operations
// =============================================================================
//
// Trending data is editorial: seeded externally, never derived from the
// post collection, and never mutated as a side effect of feed activity.
// The store is only its holder.

// SetTrendingTopics replaces the trending topic list.
func (s *Store) SetTrendingTopics(topics []model.TrendingTopic) {
	s.mu.Lock()
	next := s.state
	next.TrendingTopics = model.CloneTopics(topics)
	s.finishLocked("set_trending_topics", next, nil)
}

// SetTrendingUsers replaces the trending user list.
func (s *Store) SetTrendingUsers(users []model.TrendingUser) {
	s.mu.Lock()
	next := s.state
	next.TrendingUsers = model.CloneTrendingUsers(users)
	s.finishLocked("set_trending_users", next, nil)
}

// TrendingTopics returns a copy of the trending topic list.
func (s *Store) TrendingTopics() []model.TrendingTopic {
	s.mu.Lock()
	defer s.mu.Unlock()
	return model.CloneTopics(s.state.TrendingTopics)
}

// TrendingUsers returns a copy of the trending user list.
func (s *Store) TrendingUsers() []model.TrendingUser {
	s.mu.Lock()
	defer s.mu.Unlock()
	return model.CloneTrendingUsers(s.state.TrendingUsers)
}

// SearchTrending returns the topics whose name contains the query,
// case-insensitively.
func (s *Store) SearchTrending(query string) []model.TrendingTopic {
	q := strings.ToLower(query)
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.TrendingTopic
	for _, t := range s.state.TrendingTopics {
		if strings.Contains(strings.ToLower(t.Name), q) {
			out = append(out, t)
		}
	}
	return out
}

// GetTrendingByCategory returns the topics exactly matching the category.
func (s *Store) GetTrendingByCategory(category model.TrendingCategory) []model.TrendingTopic {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.TrendingTopic
	for _, t := range s.state.TrendingTopics {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out
}

// SetSelectedTrendingTopic sets the active topic filter. Empty clears it.
func (s *Store) SetSelectedTrendingTopic(topic string) {
	s.mu.Lock()
	next := s.state
	next.SelectedTrendingTopic = topic
	s.finishLocked("set_selected_trending_topic", next, nil)
}

// SelectedTrendingTopic returns the active topic filter, empty when none.
func (s *Store) SelectedTrendingTopic() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.SelectedTrendingTopic
}

// SetActiveTab sets the feed tab the view has selected.
func (s *Store) SetActiveTab(tab string) {
	s.mu.Lock()
	next := s.state
	next.ActiveTab = tab
	s.finishLocked("set_active_tab", next, nil)
}

// ActiveTab returns the selected feed tab.
func (s *Store) ActiveTab() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.ActiveTab
}
