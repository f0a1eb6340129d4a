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

func testComment(id, postID string) model.Comment {
	return model.Comment{
		ID:     id,
		PostID: postID,
		Author: model.AuthorRef{
			ID:       "commenter-" + id,
			Name:     "Commenter " + id,
			Username: "commenter" + id,
		},
		Content:   "comment " + id,
		CreatedAt: testEpoch,
	}
}

// =============================================================================
// AddComment
// =============================================================================

func TestAddComment_ExistingPost(t *testing.T) {
	s := newTestStore(t)
	s.SetPosts([]model.Post{testPost("p1")})

	s.AddComment(testComment("c1", "p1"))

	assert.Equal(t, 1, s.Posts()[0].Comments)
	require.Len(t, s.Comments(), 1)
	assert.Equal(t, "c1", s.Comments()[0].ID)
}

func TestAddComment_MissingPostKeepsCommentOrphaned(t *testing.T) {
	s := newTestStore(t)
	s.SetPosts([]model.Post{testPost("p1")})

	s.AddComment(testComment("c1", "nowhere"))

	// The comment lands, the counter of the (absent) parent never moves,
	// and nothing is notified.
	assert.Equal(t, 0, s.Posts()[0].Comments)
	assert.Len(t, s.Comments(), 1)
	assert.Len(t, s.GetPostComments("nowhere"), 1)
	assert.Empty(t, s.Notifications())
}

func TestAddComment_NotifiesPostAuthor(t *testing.T) {
	s := newTestStore(t)
	loginDemo(t, s)
	s.SetPosts([]model.Post{testPost("p1")})

	c := testComment("c1", "p1")
	s.AddComment(c)

	notifications := s.Notifications()
	require.Len(t, notifications, 1)
	assert.Equal(t, model.NotificationComment, notifications[0].Kind)
	// The notification carries the comment's author, not the principal.
	assert.Equal(t, c.Author, notifications[0].FromUser)
	assert.Equal(t, "Commenter c1 commented on your post", notifications[0].Message)
	assert.Equal(t, "p1", notifications[0].PostID)
	assert.Equal(t, 1, s.UnreadNotificationsCount())
}

func TestAddComment_NoNotificationWithoutPrincipal(t *testing.T) {
	s := newTestStore(t)
	s.SetPosts([]model.Post{testPost("p1")})

	s.AddComment(testComment("c1", "p1"))

	assert.Equal(t, 1, s.Posts()[0].Comments)
	assert.Empty(t, s.Notifications())
}

func TestAddComment_NoNotificationOnOwnPost(t *testing.T) {
	s := newTestStore(t)
	me := loginDemo(t, s)

	own := testPost("mine")
	own.Author = me.Ref()
	s.SetPosts([]model.Post{own})

	s.AddComment(testComment("c1", "mine"))

	assert.Equal(t, 1, s.Posts()[0].Comments)
	assert.Empty(t, s.Notifications())
}

// =============================================================================
// GetPostComments
// =============================================================================

func TestGetPostComments_CreationOrderPerPost(t *testing.T) {
	s := newTestStore(t)
	s.SetPosts([]model.Post{testPost("p1"), testPost("p2")})

	// Interleave comments across two posts.
	s.AddComment(testComment("c1", "p1"))
	s.AddComment(testComment("c2", "p2"))
	s.AddComment(testComment("c3", "p1"))
	s.AddComment(testComment("c4", "p2"))
	s.AddComment(testComment("c5", "p1"))

	got := s.GetPostComments("p1")
	require.Len(t, got, 3)
	assert.Equal(t, "c1", got[0].ID)
	assert.Equal(t, "c3", got[1].ID)
	assert.Equal(t, "c5", got[2].ID)

	assert.Len(t, s.GetPostComments("p2"), 2)
	assert.Empty(t, s.GetPostComments("p3"))
}

func TestGetPostComments_ReturnsCopies(t *testing.T) {
	s := newTestStore(t)
	s.SetPosts([]model.Post{testPost("p1")})
	s.AddComment(testComment("c1", "p1"))

	got := s.GetPostComments("p1")
	got[0].Content = "mutated"

	assert.Equal(t, "comment c1", s.GetPostComments("p1")[0].Content)
}

// =============================================================================
// LikeComment
// =============================================================================

func TestLikeComment_ToggleParity(t *testing.T) {
	s := newTestStore(t)
	s.SetPosts([]model.Post{testPost("p1")})
	s.AddComment(testComment("c1", "p1"))

	s.LikeComment("c1")
	c := s.Comments()[0]
	assert.True(t, c.IsLiked)
	assert.Equal(t, 1, c.Likes)

	s.LikeComment("c1")
	c = s.Comments()[0]
	assert.False(t, c.IsLiked)
	assert.Equal(t, 0, c.Likes)
}

func TestLikeComment_NeverNotifies(t *testing.T) {
	s := newTestStore(t)
	loginDemo(t, s)
	s.SetPosts([]model.Post{testPost("p1")})
	s.AddComment(testComment("c1", "p1"))
	before := s.UnreadNotificationsCount()

	s.LikeComment("c1")

	assert.Equal(t, before, s.UnreadNotificationsCount())
}

func TestLikeComment_UnknownIDIsNoOp(t *testing.T) {
	s := newTestStore(t)
	s.AddComment(testComment("c1", "p1"))

	s.LikeComment("missing")

	c := s.Comments()[0]
	assert.False(t, c.IsLiked)
	assert.Zero(t, c.Likes)
}
