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

func testNotification(id string) model.Notification {
	return model.Notification{
		ID:      id,
		Kind:    model.NotificationMention,
		Message: "notification " + id,
		FromUser: model.AuthorRef{
			ID:       "sender",
			Name:     "Sender",
			Username: "sender",
		},
		CreatedAt: testEpoch,
	}
}

// countUnread recomputes the unread count from the inbox itself.
func countUnread(list []model.Notification) int {
	n := 0
	for _, item := range list {
		if !item.IsRead {
			n++
		}
	}
	return n
}

// =============================================================================
// AddNotification
// =============================================================================

func TestAddNotification_PrependsAndBumpsUnread(t *testing.T) {
	s := newTestStore(t)

	s.AddNotification(testNotification("n1"))
	s.AddNotification(testNotification("n2"))

	notifications := s.Notifications()
	require.Len(t, notifications, 2)
	assert.Equal(t, "n2", notifications[0].ID)
	assert.Equal(t, "n1", notifications[1].ID)
	assert.Equal(t, 2, s.UnreadNotificationsCount())
}

// =============================================================================
// MarkNotificationAsRead
// =============================================================================

func TestMarkNotificationAsRead_FlipsAndDecrements(t *testing.T) {
	s := newTestStore(t)
	s.AddNotification(testNotification("n1"))
	s.AddNotification(testNotification("n2"))

	s.MarkNotificationAsRead("n1")

	notifications := s.Notifications()
	assert.False(t, notifications[0].IsRead) // n2
	assert.True(t, notifications[1].IsRead)  // n1
	assert.Equal(t, 1, s.UnreadNotificationsCount())
}

func TestMarkNotificationAsRead_UnknownIDStillDecrements(t *testing.T) {
	// The decrement is unconditional, so an unknown ID desyncs the counter
	// from the inbox until the next mark-all. Callers rely on the floor,
	// not on accuracy here.
	s := newTestStore(t)
	s.AddNotification(testNotification("n1"))
	s.AddNotification(testNotification("n2"))

	s.MarkNotificationAsRead("missing")

	assert.Equal(t, 1, s.UnreadNotificationsCount())
	assert.Equal(t, 2, countUnread(s.Notifications()))
}

func TestMarkNotificationAsRead_FlooredAtZero(t *testing.T) {
	s := newTestStore(t)

	s.MarkNotificationAsRead("missing")
	s.MarkNotificationAsRead("missing")

	assert.Zero(t, s.UnreadNotificationsCount())
}

func TestMarkNotificationAsRead_TwiceOnSameID(t *testing.T) {
	s := newTestStore(t)
	s.AddNotification(testNotification("n1"))
	s.AddNotification(testNotification("n2"))

	s.MarkNotificationAsRead("n1")
	s.MarkNotificationAsRead("n1")

	// Second call flips nothing but decrements anyway.
	assert.Zero(t, s.UnreadNotificationsCount())
	assert.Equal(t, 1, countUnread(s.Notifications()))
}

// =============================================================================
// MarkAllNotificationsAsRead
// =============================================================================

func TestMarkAllNotificationsAsRead(t *testing.T) {
	s := newTestStore(t)
	s.AddNotification(testNotification("n1"))
	s.AddNotification(testNotification("n2"))
	s.AddNotification(testNotification("n3"))

	s.MarkAllNotificationsAsRead()

	assert.Zero(t, s.UnreadNotificationsCount())
	assert.Zero(t, countUnread(s.Notifications()))
}

func TestMarkAllNotificationsAsRead_EmptyInbox(t *testing.T) {
	s := newTestStore(t)
	s.MarkAllNotificationsAsRead()
	assert.Zero(t, s.UnreadNotificationsCount())
}

// =============================================================================
// Counter Invariant
// =============================================================================

func TestUnreadCounter_StaysInStepThroughProducers(t *testing.T) {
	// Producers and single-mark consumers keep the counter equal to the
	// number of unread inbox entries as long as every marked ID exists.
	s := newTestStore(t)
	loginDemo(t, s)
	s.SetPosts([]model.Post{testPost("p1")})

	s.LikePost("p1")                      // +1 (like)
	s.AddComment(testComment("c1", "p1")) // +1 (comment)
	s.FollowUser("u9")                    // +1 (follow)
	s.AddNotification(testNotification("n1"))

	require.Equal(t, 4, s.UnreadNotificationsCount())
	require.Equal(t, 4, countUnread(s.Notifications()))

	for _, n := range s.Notifications() {
		s.MarkNotificationAsRead(n.ID)
	}

	assert.Zero(t, s.UnreadNotificationsCount())
	assert.Zero(t, countUnread(s.Notifications()))
}
