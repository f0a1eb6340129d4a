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
// Social Graph Operations
// =============================================================================
//
// The follow relationship is a flat list of followed IDs plus the
// principal's `following` counter; every follow/unfollow mutates both.
// Two long-standing quirks are preserved on purpose, because callers and
// tests observe them (see DESIGN.md):
//
//   - FollowUser has no idempotence guard. Following the same ID twice
//     duplicates the list entry and double-increments the counter.
//   - BlockUser removes the ID from the following list without
//     decrementing the counter.

// FollowUser appends the ID to the following list, increments the
// principal's following counter, and emits a follow notification when a
// principal is set.
func (s *Store) FollowUser(userID string) {
	s.mu.Lock()
	next, emitted := applyFollowUser(s.state, userID, s.clock())
	s.finishLocked("follow_user", next, emitted)
}

// UnfollowUser removes every occurrence of the ID from the following list
// and decrements the principal's following counter by one. The decrement
// is unconditional when a principal is set, even if the ID was absent.
func (s *Store) UnfollowUser(userID string) {
	s.mu.Lock()
	next := applyUnfollowUser(s.state, userID)
	s.finishLocked("unfollow_user", next, nil)
}

// IsFollowing reports whether the ID appears in the following list.
func (s *Store) IsFollowing(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range s.state.FollowingList {
		if id == userID {
			return true
		}
	}
	return false
}

// SetFollowingList replaces the following list wholesale. Used for
// seeding; it does not adjust the principal's counter.
func (s *Store) SetFollowingList(ids []string) {
	s.mu.Lock()
	next := s.state
	next.FollowingList = model.CloneStrings(ids)
	s.finishLocked("set_following_list", next, nil)
}

// FollowingList returns a copy of the followed-ID list.
func (s *Store) FollowingList() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return model.CloneStrings(s.state.FollowingList)
}

// BlockUser appends the ID to the block list and removes it from the
// following list. The following counter is left alone.
func (s *Store) BlockUser(userID string) {
	s.mu.Lock()
	next := applyBlockUser(s.state, userID)
	s.finishLocked("block_user", next, nil)
}

// MuteUser appends the ID to the mute list. Muting has no other store
// effect; any hiding of muted users' content is a view concern.
func (s *Store) MuteUser(userID string) {
	s.mu.Lock()
	next := s.state
	next.MutedUsers = append(model.CloneStrings(s.state.MutedUsers), userID)
	s.finishLocked("mute_user", next, nil)
}

// BlockedUsers returns a copy of the block list.
func (s *Store) BlockedUsers() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return model.CloneStrings(s.state.BlockedUsers)
}

// MutedUsers returns a copy of the mute list.
func (s *Store) MutedUsers() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return model.CloneStrings(s.state.MutedUsers)
}

// =============================================================================
// Transitions
// =============================================================================

func applyFollowUser(s State, userID string, now time.Time) (State, *model.Notification) {
	next := s
	next.FollowingList = append(model.CloneStrings(s.FollowingList), userID)

	if s.CurrentUser == nil {
		return next, nil
	}
	updated := *s.CurrentUser
	updated.Following++
	next.CurrentUser = &updated

	n := model.Notification{
		ID:        model.IDFromTime(now),
		Kind:      model.NotificationFollow,
		FromUser:  s.CurrentUser.Ref(),
		Message:   fmt.Sprintf("%s started following you", s.CurrentUser.Name),
		CreatedAt: now,
	}
	next.Notifications = prependNotification(s.Notifications, n)
	next.UnreadNotifications = s.UnreadNotifications + 1
	return next, &n
}

func applyUnfollowUser(s State, userID string) State {
	next := s
	list := make([]string, 0, len(s.FollowingList))
	for _, id := range s.FollowingList {
		if id != userID {
			list = append(list, id)
		}
	}
	next.FollowingList = list

	if s.CurrentUser != nil {
		updated := *s.CurrentUser
		updated.Following--
		next.CurrentUser = &updated
	}
	return next
}

func applyBlockUser(s State, userID string) State {
	next := s
	next.BlockedUsers = append(model.CloneStrings(s.BlockedUsers), userID)

	list := make([]string, 0, len(s.FollowingList))
	for _, id := range s.FollowingList {
		if id != userID {
			list = append(list, id)
		}
	}
	next.FollowingList = list
	return next
}
