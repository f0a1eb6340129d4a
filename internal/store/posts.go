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

	"github.com/google/uuid"

	"github.com/melakufr/waiting-wall/internal/model"
)

// newReportID mints an ID for a report. Reports are not feed entities, so
// they do not use the millisecond-derived ID scheme.
func newReportID() string {
	return uuid.NewString()
}

// =============================================================================
// Post Operations
// =============================================================================

// SetPosts replaces the entire post collection. Used for initial seeding
// only; it does not touch counters, notifications, or any other state.
func (s *Store) SetPosts(posts []model.Post) {
	s.mu.Lock()
	next := s.state
	next.Posts = model.ClonePosts(posts)
	s.finishLocked("set_posts", next, nil)
}

// AddPost prepends a fully-formed post to the feed. ID generation, author
// snapshot substitution for anonymity, and content trimming are the
// composer's responsibility, not the store's (see the feed package).
func (s *Store) AddPost(post model.Post) {
	s.mu.Lock()
	next := applyAddPost(s.state, post)
	s.finishLocked("add_post", next, nil)
}

// LikePost toggles the like flag on the matching post and moves the like
// counter in the same direction. On the false→true transition only, and
// only when a principal is set who is not the post's author, a like
// notification is emitted. An unknown ID is a silent no-op.
func (s *Store) LikePost(postID string) {
	s.mu.Lock()
	next, emitted := applyLikePost(s.state, postID, s.clock())
	s.finishLocked("like_post", next, emitted)
}

// DeletePost removes the matching post unconditionally. There is no
// ownership check at this layer; the view only exposes delete to the
// author. Comments referencing the post are left in place (no cascade).
func (s *Store) DeletePost(postID string) {
	s.mu.Lock()
	next := applyDeletePost(s.state, postID)
	s.finishLocked("delete_post", next, nil)
}

// UpdatePost shallow-merges the patch into the matching post.
func (s *Store) UpdatePost(postID string, patch model.PostPatch) {
	s.mu.Lock()
	next := applyUpdatePost(s.state, postID, patch)
	s.finishLocked("update_post", next, nil)
}

// BookmarkPost toggles the bookmark flag on the matching post and keeps
// the bookmarked-ID list in step: a post that was bookmarked before the
// call leaves the list, any other ID joins it.
func (s *Store) BookmarkPost(postID string) {
	s.mu.Lock()
	next := applyBookmarkPost(s.state, postID)
	s.finishLocked("bookmark_post", next, nil)
}

// SharePost increments the share counter and sets the shared flag on the
// matching post. Sharing is one-directional: there is no unshare.
func (s *Store) SharePost(postID string) {
	s.mu.Lock()
	next := applySharePost(s.state, postID)
	s.finishLocked("share_post", next, nil)
}

// ReportPost records a report against a post. There is no moderation
// backend; the report is kept in memory and logged.
func (s *Store) ReportPost(postID, reason string) {
	now := s.clock()
	report := model.Report{
		ID:        newReportID(),
		PostID:    postID,
		Reason:    reason,
		CreatedAt: now,
	}
	s.logger.Info("post reported", "post_id", postID, "reason", reason)

	s.mu.Lock()
	next := s.state
	next.Reports = append(model.CloneReports(s.state.Reports), report)
	s.finishLocked("report_post", next, nil)
}

// Posts returns a copy of the post collection, newest first.
func (s *Store) Posts() []model.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	return model.ClonePosts(s.state.Posts)
}

// BookmarkedPosts returns a copy of the bookmarked post ID list.
func (s *Store) BookmarkedPosts() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return model.CloneStrings(s.state.BookmarkedPosts)
}

// Reports returns a copy of the accumulated post reports.
func (s *Store) Reports() []model.Report {
	s.mu.Lock()
	defer s.mu.Unlock()
	return model.CloneReports(s.state.Reports)
}

// =============================================================================
// Transitions
// =============================================================================

func applyAddPost(s State, post model.Post) State {
	next := s
	posts := make([]model.Post, 0, len(s.Posts)+1)
	posts = append(posts, post.Clone())
	posts = append(posts, model.ClonePosts(s.Posts)...)
	next.Posts = posts
	return next
}

func applyLikePost(s State, postID string, now time.Time) (State, *model.Notification) {
	next := s
	var target *model.Post
	posts := make([]model.Post, len(s.Posts))
	for i, p := range s.Posts {
		if p.ID != postID {
			posts[i] = p
			continue
		}
		before := p
		target = &before
		updated := p.Clone()
		if updated.IsLiked {
			updated.Likes--
		} else {
			updated.Likes++
		}
		updated.IsLiked = !updated.IsLiked
		posts[i] = updated
	}
	next.Posts = posts

	// Notify only on the false→true transition, never for self-likes.
	if target == nil || target.IsLiked || s.CurrentUser == nil || target.Author.ID == s.CurrentUser.ID {
		return next, nil
	}
	n := model.Notification{
		ID:        model.IDFromTime(now),
		Kind:      model.NotificationLike,
		FromUser:  s.CurrentUser.Ref(),
		PostID:    postID,
		Message:   fmt.Sprintf("%s liked your post", s.CurrentUser.Name),
		CreatedAt: now,
	}
	next.Notifications = prependNotification(s.Notifications, n)
	next.UnreadNotifications = s.UnreadNotifications + 1
	return next, &n
}

func applyDeletePost(s State, postID string) State {
	next := s
	posts := make([]model.Post, 0, len(s.Posts))
	for _, p := range s.Posts {
		if p.ID != postID {
			posts = append(posts, p)
		}
	}
	next.Posts = posts
	return next
}

func applyUpdatePost(s State, postID string, patch model.PostPatch) State {
	next := s
	posts := make([]model.Post, len(s.Posts))
	for i, p := range s.Posts {
		if p.ID == postID {
			posts[i] = patch.Apply(p)
		} else {
			posts[i] = p
		}
	}
	next.Posts = posts
	return next
}

func applyBookmarkPost(s State, postID string) State {
	next := s
	wasBookmarked := false
	for _, p := range s.Posts {
		if p.ID == postID {
			wasBookmarked = p.IsBookmarked
			break
		}
	}
	posts := make([]model.Post, len(s.Posts))
	for i, p := range s.Posts {
		if p.ID == postID {
			updated := p.Clone()
			updated.IsBookmarked = !updated.IsBookmarked
			posts[i] = updated
		} else {
			posts[i] = p
		}
	}
	next.Posts = posts

	// The list is decided from the pre-toggle flag. An unknown ID reads as
	// "not bookmarked" and is appended anyway, mirroring the original.
	if wasBookmarked {
		list := make([]string, 0, len(s.BookmarkedPosts))
		for _, id := range s.BookmarkedPosts {
			if id != postID {
				list = append(list, id)
			}
		}
		next.BookmarkedPosts = list
	} else {
		next.BookmarkedPosts = append(model.CloneStrings(s.BookmarkedPosts), postID)
	}
	return next
}

func applySharePost(s State, postID string) State {
	next := s
	posts := make([]model.Post, len(s.Posts))
	for i, p := range s.Posts {
		if p.ID == postID {
			updated := p.Clone()
			updated.Shares++
			updated.IsShared = true
			posts[i] = updated
		} else {
			posts[i] = p
		}
	}
	next.Posts = posts
	return next
}
