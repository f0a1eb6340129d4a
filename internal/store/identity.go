// Copyright (C) 2026 WaitingWall
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package store

import (
	"context"
	"time"

	"github.com/melakufr/waiting-wall/internal/model"
)

// =============================================================================
// Identity & Session Operations
// =============================================================================

// SetCurrentUser sets the principal and derives the authenticated flag as
// its nullness complement. This is the sole source of truth for auth
// status; there is no independent flag to desynchronize. The session gate
// calls this during startup hydration.
func (s *Store) SetCurrentUser(user *model.User) {
	s.mu.Lock()
	next := s.state
	if user != nil {
		u := *user
		next.CurrentUser = &u
		next.IsAuthenticated = true
	} else {
		next.CurrentUser = nil
		next.IsAuthenticated = false
	}
	s.finishLocked("set_current_user", next, nil)
}

// Login simulates a network login: it raises the loading flag, suspends
// for the configured latency, then succeeds only for the fixed demo
// credential pair.
//
// # Description
//
// On success the fixed demo user becomes the principal, a session record
// with a 7-day expiry is written to durable storage, and true is
// returned. On credential mismatch the loading flag is cleared and false
// is returned without touching identity. The delay never fails
// transiently; the outcome is deterministic on the credential match.
//
// # Inputs
//
//   - ctx: Cancels the simulated delay. Cancellation abandons the attempt
//     with the loading flag cleared and no identity change.
//   - email, password: Credentials to check against the demo pair.
//
// # Outputs
//
//   - bool: True if the credentials matched and the session committed.
//   - error: Context cancellation or a session persistence failure. A
//     plain credential mismatch is a normal outcome, not an error.
func (s *Store) Login(ctx context.Context, email, password string) (bool, error) {
	s.setLoading(true)

	if err := s.sleep(ctx, s.authLatency); err != nil {
		s.setLoading(false)
		return false, err
	}

	if email != s.credentials.Email || password != s.credentials.Password {
		s.logger.Info("login rejected", "email", email)
		s.setLoading(false)
		return false, nil
	}

	user := demoUser(email)
	if err := s.persistSession(user); err != nil {
		s.setLoading(false)
		return false, &OpError{Op: "login", Err: err}
	}

	s.mu.Lock()
	next := s.state
	next.CurrentUser = &user
	next.IsAuthenticated = true
	next.IsLoading = false
	s.finishLocked("login", next, nil)

	s.logger.Info("login succeeded", "user_id", user.ID, "username", user.Username)
	return true, nil
}

// Signup simulates account creation. It always succeeds: uniqueness and
// field validation are the form layer's job (see the forms package), not
// the store's.
//
// # Description
//
// A fresh user is synthesized with zeroed social counters and a join
// timestamp of now, persisted as a 7-day session, and made the principal.
//
// # Outputs
//
//   - bool: True unless the context was cancelled or persistence failed.
//   - error: Context cancellation or a session persistence failure.
func (s *Store) Signup(ctx context.Context, name, email, password, username string) (bool, error) {
	_ = password // accepted, never stored; there is no backend to send it to

	s.setLoading(true)

	if err := s.sleep(ctx, s.authLatency); err != nil {
		s.setLoading(false)
		return false, err
	}

	now := s.clock()
	user := model.User{
		ID:       model.IDFromTime(now),
		Name:     name,
		Username: username,
		Email:    email,
		Avatar:   defaultAvatar,
		Bio:      "New to WaitingWall!",
		JoinedAt: now,
	}
	if err := s.persistSession(user); err != nil {
		s.setLoading(false)
		return false, &OpError{Op: "signup", Err: err}
	}

	s.mu.Lock()
	next := s.state
	next.CurrentUser = &user
	next.IsAuthenticated = true
	next.IsLoading = false
	s.finishLocked("signup", next, nil)

	s.logger.Info("signup succeeded", "user_id", user.ID, "username", username)
	return true, nil
}

// Logout clears the durable session record and resets identity, the
// follow list, and the inbox. Wiping notifications discards any history;
// acceptable only because there is no multi-account scenario.
func (s *Store) Logout() {
	if s.sessions != nil {
		if err := s.sessions.Clear(); err != nil {
			s.logger.Warn("session clear failed", "error", err)
		}
	}

	s.mu.Lock()
	next := s.state
	next.CurrentUser = nil
	next.IsAuthenticated = false
	next.FollowingList = nil
	next.Notifications = nil
	next.UnreadNotifications = 0
	s.finishLocked("logout", next, nil)

	s.logger.Info("logged out")
}

// UpdateUserProfile shallow-merges the patch into the principal. A no-op
// when unauthenticated: the merge target is nil.
func (s *Store) UpdateUserProfile(patch model.UserPatch) {
	s.mu.Lock()
	next := s.state
	if s.state.CurrentUser != nil {
		updated := patch.Apply(*s.state.CurrentUser)
		next.CurrentUser = &updated
	}
	s.finishLocked("update_user_profile", next, nil)
}

// CurrentUser returns a copy of the principal, or nil when logged out.
func (s *Store) CurrentUser() *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.CurrentUser == nil {
		return nil
	}
	u := *s.state.CurrentUser
	return &u
}

// IsAuthenticated reports whether a principal is set.
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.IsAuthenticated
}

// IsLoading reports whether a simulated auth call is in flight.
func (s *Store) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.IsLoading
}

// =============================================================================
// Internals
// =============================================================================

const defaultAvatar = "/diverse-user-avatars.png"

// demoUser is the fixed user produced by a successful demo login.
func demoUser(email string) model.User {
	return model.User{
		ID:         "1",
		Name:       "Demo User",
		Username:   "demouser",
		Email:      email,
		Avatar:     defaultAvatar,
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

// setLoading commits a loading-flag change as its own transition so
// subscribers can render spinners.
func (s *Store) setLoading(v bool) {
	s.mu.Lock()
	next := s.state
	next.IsLoading = v
	s.finishLocked("set_loading", next, nil)
}

// persistSession writes the durable session record, if a writer is wired.
func (s *Store) persistSession(user model.User) error {
	if s.sessions == nil {
		s.logger.Debug("no session writer wired, skipping persistence")
		return nil
	}
	expiresAt := s.clock().Add(s.sessionTTL)
	return s.sessions.Save(user, expiresAt)
}
