// Copyright (C) 2026 WaitingWall
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package store

import "github.com/melakufr/waiting-wall/internal/model"

// =============================================================================
// Notification Operations
// =============================================================================
//
// The inbox is a single unbounded, newest-first list with a separately
// tracked unread counter. Every producer keeps the counter in lockstep:
// producing increments by exactly one, marking one read decrements floored
// at zero, marking all read zeroes it. The invariant
//
//	UnreadNotifications == count of notifications with IsRead == false
//
// must hold after every operation; it is maintained by hand, not computed
// on read.

// AddNotification prepends a notification to the inbox and bumps the
// unread counter. This is the public producer; like/comment/follow
// operations produce through their own transitions.
func (s *Store) AddNotification(n model.Notification) {
	s.mu.Lock()
	next := s.state
	next.Notifications = prependNotification(s.state.Notifications, n)
	next.UnreadNotifications = s.state.UnreadNotifications + 1
	s.finishLocked("add_notification", next, &n)
}

// MarkNotificationAsRead flips the matching notification to read and
// decrements the unread counter, floored at zero. Unknown IDs no-op the
// flag flip but still decrement, mirroring the original bookkeeping.
func (s *Store) MarkNotificationAsRead(notificationID string) {
	s.mu.Lock()
	next := s.state
	notifications := make([]model.Notification, len(s.state.Notifications))
	for i, n := range s.state.Notifications {
		if n.ID == notificationID {
			n.IsRead = true
		}
		notifications[i] = n
	}
	next.Notifications = notifications
	next.UnreadNotifications = s.state.UnreadNotifications - 1
	if next.UnreadNotifications < 0 {
		next.UnreadNotifications = 0
	}
	s.finishLocked("mark_notification_read", next, nil)
}

// MarkAllNotificationsAsRead flips every notification to read and zeroes
// the unread counter.
func (s *Store) MarkAllNotificationsAsRead() {
	s.mu.Lock()
	next := s.state
	notifications := make([]model.Notification, len(s.state.Notifications))
	for i, n := range s.state.Notifications {
		n.IsRead = true
		notifications[i] = n
	}
	next.Notifications = notifications
	next.UnreadNotifications = 0
	s.finishLocked("mark_all_notifications_read", next, nil)
}

// Notifications returns a copy of the inbox, newest first.
func (s *Store) Notifications() []model.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return model.CloneNotifications(s.state.Notifications)
}

// UnreadNotificationsCount returns the tracked unread counter.
func (s *Store) UnreadNotificationsCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.UnreadNotifications
}

// prependNotification returns a new slice with n at the head.
func prependNotification(list []model.Notification, n model.Notification) []model.Notification {
	out := make([]model.Notification, 0, len(list)+1)
	out = append(out, n)
	out = append(out, list...)
	return out
}
