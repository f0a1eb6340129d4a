// Copyright (C) 2026 WaitingWall
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package store

import (
	"fmt"
	"time"

	"github.com/melakufr/waiting-wall/internal/model"
)

// =============================================================================
// Comment Operations
// =============================================================================

// AddComment appends the comment to the flat comment collection and bumps
// the parent post's comment counter. When the commenter is not the post's
// author, a comment notification is emitted. If the referenced post does
// not exist the comment is still appended, but the counter update finds
// nothing to change and no notification fires.
func (s *Store) AddComment(comment model.Comment) {
	s.mu.Lock()
	next, emitted := applyAddComment(s.state, comment, s.clock())
	s.finishLocked("add_comment", next, emitted)
}

// LikeComment toggles the like flag on the matching comment with the same
// counter semantics as LikePost. Comment likes never emit notifications.
func (s *Store) LikeComment(commentID string) {
	s.mu.Lock()
	next := applyLikeComment(s.state, commentID)
	s.finishLocked("like_comment", next, nil)
}

// GetPostComments returns the comments whose PostID matches, in append
// (creation) order. The result is recomputed on every call; comments
// mutate independently of their post, so nothing is cached.
func (s *Store) GetPostComments(postID string) []model.Comment {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Comment
	for _, c := range s.state.Comments {
		if c.PostID == postID {
			out = append(out, c.Clone())
		}
	}
	return out
}

// Comments returns a copy of the full comment collection.
func (s *Store) Comments() []model.Comment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return model.CloneComments(s.state.Comments)
}

// =============================================================================
// Transitions
// =============================================================================

func applyAddComment(s State, comment model.Comment, now time.Time) (State, *model.Notification) {
	next := s
	next.Comments = append(model.CloneComments(s.Comments), comment.Clone())

	var parent *model.Post
	posts := make([]model.Post, len(s.Posts))
	for i, p := range s.Posts {
		if p.ID != comment.PostID {
			posts[i] = p
			continue
		}
		before := p
		parent = &before
		updated := p.Clone()
		updated.Comments++
		posts[i] = updated
	}
	next.Posts = posts

	// No parent means no counter change and no notification; the comment
	// itself stays, orphaned but addressable.
	if parent == nil || s.CurrentUser == nil || parent.Author.ID == s.CurrentUser.ID {
		return next, nil
	}
	n := model.Notification{
		ID:        model.IDFromTime(now),
		Kind:      model.NotificationComment,
		FromUser:  comment.Author,
		PostID:    comment.PostID,
		Message:   fmt.Sprintf("%s commented on your post", comment.Author.Name),
		CreatedAt: now,
	}
	next.Notifications = prependNotification(s.Notifications, n)
	next.UnreadNotifications = s.UnreadNotifications + 1
	return next, &n
}

func applyLikeComment(s State, commentID string) State {
	next := s
	comments := make([]model.Comment, len(s.Comments))
	for i, c := range s.Comments {
		if c.ID != commentID {
			comments[i] = c
			continue
		}
		updated := c.Clone()
		if updated.IsLiked {
			updated.Likes--
		} else {
			updated.Likes++
		}
		updated.IsLiked = !updated.IsLiked
		comments[i] = updated
	}
	next.Comments = comments
	return next
}
