// Copyright (C) 2026 WaitingWall
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package model defines the WaitingWall domain entities.
//
// All entities live in memory for the lifetime of a session. The only
// entity that ever touches durable storage is the session record (see
// the session package), which embeds a User. JSON tags therefore follow
// the persisted wire names.
//
// Author identity inside posts, comments, and notifications is a
// denormalized snapshot (AuthorRef) copied at creation time. Anonymous
// posts substitute placeholder identity fields but keep the real author
// ID so ownership checks still work.
package model

import (
	"strconv"
	"time"
)

// =============================================================================
// Identity
// =============================================================================

// AuthorRef is a snapshot of a user's public identity embedded in another
// entity at creation time. It is never updated after creation, even if the
// source user later edits their profile.
type AuthorRef struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Username    string `json:"username"`
	Avatar      string `json:"avatar"`
	IsAnonymous bool   `json:"isAnonymous,omitempty"`
}

// User is a full user record. Exactly one User (the principal) is held by
// the store; every other user appears only as an AuthorRef snapshot.
type User struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Username   string    `json:"username"`
	Avatar     string    `json:"avatar"`
	Bio        string    `json:"bio"`
	Followers  int       `json:"followers"`
	Following  int       `json:"following"`
	Posts      int       `json:"posts"`
	Email      string    `json:"email,omitempty"`
	JoinedAt   time.Time `json:"joinedAt"`
	IsVerified bool      `json:"isVerified,omitempty"`
	Location   string    `json:"location,omitempty"`
	Website    string    `json:"website,omitempty"`
}

// Ref returns the identity snapshot for embedding in other entities.
func (u User) Ref() AuthorRef {
	return AuthorRef{
		ID:       u.ID,
		Name:     u.Name,
		Username: u.Username,
		Avatar:   u.Avatar,
	}
}

// =============================================================================
// Feed Entities
// =============================================================================

// Post is a single feed entry. Counters are non-negative and track the
// corresponding boolean flags: IsLiked toggles move Likes by one in the
// same direction, IsShared only ever moves Shares upward.
type Post struct {
	ID           string    `json:"id"`
	Author       AuthorRef `json:"author"`
	Content      string    `json:"content"`
	TimeLeft     string    `json:"timeLeft"`
	Likes        int       `json:"likes"`
	Comments     int       `json:"comments"`
	Shares       int       `json:"shares"`
	IsLiked      bool      `json:"isLiked"`
	IsBookmarked bool      `json:"isBookmarked,omitempty"`
	IsShared     bool      `json:"isShared,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	Mentions     []string  `json:"mentions,omitempty"`
	Hashtags     []string  `json:"hashtags,omitempty"`
}

// Clone returns a deep copy of the post.
func (p Post) Clone() Post {
	out := p
	out.Mentions = cloneStrings(p.Mentions)
	out.Hashtags = cloneStrings(p.Hashtags)
	return out
}

// Comment belongs to exactly one post via PostID. Deleting a post does not
// cascade to its comments; orphaned comments stay addressable by the dead
// post ID.
type Comment struct {
	ID        string    `json:"id"`
	PostID    string    `json:"postId"`
	Author    AuthorRef `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	Likes     int       `json:"likes"`
	IsLiked   bool      `json:"isLiked"`
	Mentions  []string  `json:"mentions,omitempty"`
}

// Clone returns a deep copy of the comment.
func (c Comment) Clone() Comment {
	out := c
	out.Mentions = cloneStrings(c.Mentions)
	return out
}

// =============================================================================
// Notifications
// =============================================================================

// NotificationKind classifies a notification.
type NotificationKind string

const (
	NotificationLike    NotificationKind = "like"
	NotificationComment NotificationKind = "comment"
	NotificationFollow  NotificationKind = "follow"
	NotificationMention NotificationKind = "mention"
	NotificationShare   NotificationKind = "share"
)

// Notification is a single inbox entry. The store keeps one global inbox,
// newest first; there is no per-recipient partitioning in this single-user
// demo.
type Notification struct {
	ID        string           `json:"id"`
	Kind      NotificationKind `json:"type"`
	FromUser  AuthorRef        `json:"fromUser"`
	PostID    string           `json:"postId,omitempty"`
	Message   string           `json:"message"`
	CreatedAt time.Time        `json:"createdAt"`
	IsRead    bool             `json:"isRead"`
}

// =============================================================================
// Trending
// =============================================================================

// TrendingCategory tags a trending topic.
type TrendingCategory string

const (
	CategoryHashtag TrendingCategory = "hashtag"
	CategoryTopic   TrendingCategory = "topic"
	CategoryEvent   TrendingCategory = "event"
)

// TrendingTopic is editorial reference data. It is seeded externally and
// never derived from the post collection.
type TrendingTopic struct {
	ID       string           `json:"id" yaml:"id"`
	Name     string           `json:"name" yaml:"name"`
	Count    int              `json:"count" yaml:"count"`
	Category TrendingCategory `json:"category" yaml:"category"`
	Growth   float64          `json:"growth" yaml:"growth"`
	IsRising bool             `json:"isRising,omitempty" yaml:"rising,omitempty"`
}

// TrendingUser is editorial reference data for the "who to follow" rail.
type TrendingUser struct {
	ID         string  `json:"id" yaml:"id"`
	Name       string  `json:"name" yaml:"name"`
	Username   string  `json:"username" yaml:"username"`
	Avatar     string  `json:"avatar" yaml:"avatar"`
	Followers  int     `json:"followers" yaml:"followers"`
	Growth     float64 `json:"growth" yaml:"growth"`
	IsVerified bool    `json:"isVerified,omitempty" yaml:"verified,omitempty"`
}

// =============================================================================
// Moderation
// =============================================================================

// Report records a post report. There is no moderation backend; reports
// accumulate in memory so the demo can show them.
type Report struct {
	ID        string    `json:"id"`
	PostID    string    `json:"postId"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"createdAt"`
}

// =============================================================================
// Helpers
// =============================================================================

// IDFromTime derives an entity ID from a wall-clock instant. IDs are the
// decimal Unix-millisecond string, so insertion order tracks ID order for
// anything created through the store.
func IDFromTime(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 10)
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

// CloneStrings returns a copy of a string slice, preserving nil.
func CloneStrings(in []string) []string { return cloneStrings(in) }

// ClonePosts returns a deep copy of a post slice.
func ClonePosts(in []Post) []Post {
	if in == nil {
		return nil
	}
	out := make([]Post, len(in))
	for i := range in {
		out[i] = in[i].Clone()
	}
	return out
}

// CloneComments returns a deep copy of a comment slice.
func CloneComments(in []Comment) []Comment {
	if in == nil {
		return nil
	}
	out := make([]Comment, len(in))
	for i := range in {
		out[i] = in[i].Clone()
	}
	return out
}

// CloneNotifications returns a copy of a notification slice.
func CloneNotifications(in []Notification) []Notification {
	if in == nil {
		return nil
	}
	out := make([]Notification, len(in))
	copy(out, in)
	return out
}

// CloneTopics returns a copy of a trending topic slice.
func CloneTopics(in []TrendingTopic) []TrendingTopic {
	if in == nil {
		return nil
	}
	out := make([]TrendingTopic, len(in))
	copy(out, in)
	return out
}

// CloneTrendingUsers returns a copy of a trending user slice.
func CloneTrendingUsers(in []TrendingUser) []TrendingUser {
	if in == nil {
		return nil
	}
	out := make([]TrendingUser, len(in))
	copy(out, in)
	return out
}

// CloneReports returns a copy of a report slice.
func CloneReports(in []Report) []Report {
	if in == nil {
		return nil
	}
	out := make([]Report, len(in))
	copy(out, in)
	return out
}
