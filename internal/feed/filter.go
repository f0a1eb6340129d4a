// Copyright (C) 2026 WaitingWall
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package feed holds the presentation policy layered on top of the
// store's flat post collection: which posts a tab shows, how many are
// revealed at a time, and how the composer assembles a post. None of
// this is store responsibility; the store hands out the full collection
// and this package derives the visible subset.
package feed

import (
	"strings"

	"github.com/melakufr/waiting-wall/internal/model"
)

// Feed tabs.
const (
	// TabGlobal shows every post.
	TabGlobal = "global"

	// TabLocal shows non-anonymous posts.
	TabLocal = "local"

	// TabCircle shows posts authored by the principal or by someone the
	// principal follows.
	TabCircle = "my-circle"

	// TabCorners shows anonymous posts only.
	TabCorners = "corners"
)

// View is the input to the filter: the active tab, the principal (nil
// when logged out), the followed-ID list, and the selected trending
// topic (empty for none).
type View struct {
	Tab           string
	Principal     *model.User
	FollowingList []string
	SelectedTopic string
}

// Filter derives the visible subset of posts for the view, preserving
// input order. Unknown tabs behave like the global tab.
func Filter(posts []model.Post, view View) []model.Post {
	var out []model.Post
	for _, p := range posts {
		if !matchesTopic(p, view.SelectedTopic) {
			continue
		}
		if matchesTab(p, view) {
			out = append(out, p)
		}
	}
	return out
}

// matchesTopic checks the trending-topic content filter: the post content
// must contain the topic name, case-insensitively, with any leading "#"
// stripped from the topic.
func matchesTopic(p model.Post, topic string) bool {
	if topic == "" {
		return true
	}
	needle := strings.TrimPrefix(strings.ToLower(topic), "#")
	return strings.Contains(strings.ToLower(p.Content), needle)
}

func matchesTab(p model.Post, view View) bool {
	switch view.Tab {
	case TabLocal:
		return !p.Author.IsAnonymous
	case TabCircle:
		if view.Principal != nil && p.Author.ID == view.Principal.ID {
			return true
		}
		for _, id := range view.FollowingList {
			if p.Author.ID == id {
				return true
			}
		}
		return false
	case TabCorners:
		return p.Author.IsAnonymous
	default:
		return true
	}
}
