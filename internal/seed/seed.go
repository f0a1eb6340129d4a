// Copyright (C) 2026 WaitingWall
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package seed carries the in-code demo dataset used to populate the
// store at startup: a handful of posts, the demo principal, and the
// editorial trending lists.
package seed

import (
	"time"

	"github.com/melakufr/waiting-wall/internal/model"
)

// User is the seeded principal for demo runs that skip the login flow.
func User() model.User {
	return model.User{
		ID:         "1",
		Name:       "Demo User",
		Username:   "demouser",
		Avatar:     "/diverse-user-avatars.png",
		Bio:        "Demo user for WaitingWall",
		Followers:  1234,
		Following:  567,
		Posts:      89,
		JoinedAt:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		IsVerified: true,
		Location:   "San Francisco, CA",
		Website:    "https://waitingwall.com",
	}
}

// Posts returns the seeded feed, newest first.
func Posts() []model.Post {
	return []model.Post{
		{
			ID: "1700000000300",
			Author: model.AuthorRef{
				ID: "u7", Name: "Maya Chen", Username: "mayachen",
				Avatar: "/avatars/maya.png",
			},
			Content:   "Waiting for my visa interview next week. Third attempt. #visa",
			TimeLeft:  "18 h left",
			Likes:     42, Comments: 7, Shares: 3,
			CreatedAt: time.Date(2023, 11, 14, 22, 13, 20, 0, time.UTC),
			Hashtags:  []string{"visa"},
		},
		{
			ID: "1700000000200",
			Author: model.AuthorRef{
				ID: "u3", Name: "Anonymous", Username: "anonymous",
				Avatar: "/anonymous-avatar.png", IsAnonymous: true,
			},
			Content:   "Waiting to hear back about the biopsy results. Scared but hopeful.",
			TimeLeft:  "12 h left",
			Likes:     128, Comments: 31, Shares: 9,
			CreatedAt: time.Date(2023, 11, 14, 22, 13, 19, 0, time.UTC),
		},
		{
			ID: "1700000000100",
			Author: model.AuthorRef{
				ID: "u5", Name: "Jonas Weber", Username: "jweber",
				Avatar: "/avatars/jonas.png",
			},
			Content:   "Waiting for the 7:40 train that is never on time. Day 214. #commute",
			TimeLeft:  "23 h left",
			Likes:     15, Comments: 2, Shares: 1,
			CreatedAt: time.Date(2023, 11, 14, 22, 13, 18, 0, time.UTC),
			Hashtags:  []string{"commute"},
		},
	}
}

// TrendingTopics returns the seeded editorial topics.
func TrendingTopics() []model.TrendingTopic {
	return []model.TrendingTopic{
		{ID: "t1", Name: "#visa", Count: 12500, Category: model.CategoryHashtag, Growth: 12.5, IsRising: true},
		{ID: "t2", Name: "exam results", Count: 8400, Category: model.CategoryTopic, Growth: 4.2},
		{ID: "t3", Name: "#commute", Count: 3100, Category: model.CategoryHashtag, Growth: -1.8},
		{ID: "t4", Name: "world cup final", Count: 45800, Category: model.CategoryEvent, Growth: 31.0, IsRising: true},
	}
}

// TrendingUsers returns the seeded editorial users.
func TrendingUsers() []model.TrendingUser {
	return []model.TrendingUser{
		{ID: "u7", Name: "Maya Chen", Username: "mayachen", Avatar: "/avatars/maya.png", Followers: 18200, Growth: 8.3, IsVerified: true},
		{ID: "u9", Name: "Sam Okafor", Username: "samokafor", Avatar: "/avatars/sam.png", Followers: 9400, Growth: 15.1},
	}
}
