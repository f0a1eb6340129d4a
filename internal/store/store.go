// Copyright (C) 2026 WaitingWall
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package store implements the WaitingWall state container.
//
// The store owns every domain entity (posts, comments, the principal,
// notifications, trending reference data, social-graph edges) and is the
// only component with write access to them. Every mutation is a pure
// transition function (State, inputs, now) → State; the Store applies
// transitions under a mutex, records metrics, logs the change, and then
// notifies subscribers synchronously with a snapshot. The view layer is
// expected to re-render from that snapshot and call back into the Store
// for the next user action.
//
// # Error Policy
//
// Lookup-by-ID misses degrade to silent no-ops: the transition maps over
// the collection, finds nothing to change, and the committed state equals
// the previous one. Errors surface only at real I/O boundaries (the
// session writer) and on context cancellation of the simulated auth calls.
//
// # Thread Safety
//
// The original system is single-threaded by construction; the Store still
// guards its state with a mutex so it is safe for concurrent use, which
// costs nothing in the expected sequential case.
package store

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/melakufr/waiting-wall/internal/model"
)

// Default timings for the simulated auth boundary.
const (
	// DefaultAuthLatency mirrors the original's artificial 1s network delay.
	DefaultAuthLatency = time.Second

	// DefaultSessionTTL is the 7-day lifetime of a persisted session.
	DefaultSessionTTL = 7 * 24 * time.Hour
)

// DefaultTab is the feed tab selected at startup.
const DefaultTab = "global"

// =============================================================================
// State
// =============================================================================

// State is the full application state. It is a value type: transitions
// take a State and return a new one, so a held State is never mutated
// behind the holder's back. Collections inside an un-cloned State may
// share backing arrays with the store; use Clone before retaining one.
type State struct {
	Posts    []model.Post
	Comments []model.Comment

	CurrentUser     *model.User
	IsAuthenticated bool
	IsLoading       bool

	FollowingList   []string
	BookmarkedPosts []string
	BlockedUsers    []string
	MutedUsers      []string

	Notifications       []model.Notification
	UnreadNotifications int

	TrendingTopics []model.TrendingTopic
	TrendingUsers  []model.TrendingUser

	// ActiveTab is the feed tab the view has selected; SelectedTrendingTopic
	// is the topic filter, empty when none is selected.
	ActiveTab             string
	SelectedTrendingTopic string

	Reports []model.Report
}

// NewState returns the startup state: empty collections, no principal,
// the global tab active.
func NewState() State {
	return State{ActiveTab: DefaultTab}
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	out := s
	out.Posts = model.ClonePosts(s.Posts)
	out.Comments = model.CloneComments(s.Comments)
	if s.CurrentUser != nil {
		u := *s.CurrentUser
		out.CurrentUser = &u
	}
	out.FollowingList = model.CloneStrings(s.FollowingList)
	out.BookmarkedPosts = model.CloneStrings(s.BookmarkedPosts)
	out.BlockedUsers = model.CloneStrings(s.BlockedUsers)
	out.MutedUsers = model.CloneStrings(s.MutedUsers)
	out.Notifications = model.CloneNotifications(s.Notifications)
	out.TrendingTopics = model.CloneTopics(s.TrendingTopics)
	out.TrendingUsers = model.CloneTrendingUsers(s.TrendingUsers)
	out.Reports = model.CloneReports(s.Reports)
	return out
}

// =============================================================================
// Injected Seams
// =============================================================================

// Clock supplies the current wall-clock time. Injected so tests control
// entity IDs and timestamps.
type Clock func() time.Time

// Sleep suspends for the given duration or until the context is done.
// Injected so tests skip the simulated auth latency.
type Sleep func(ctx context.Context, d time.Duration) error

// SessionWriter persists the durable session record. The session package
// provides the badger-backed implementation; the store only knows this
// narrow surface so the dependency points outward.
type SessionWriter interface {
	// Save writes the session record for the given user with the given
	// absolute expiry.
	Save(user model.User, expiresAt time.Time) error

	// Clear removes the session record. Clearing an absent record is not
	// an error.
	Clear() error
}

// Metrics receives operation counts. A nil Metrics disables recording.
type Metrics interface {
	// RecordOperation counts one committed store operation by name.
	RecordOperation(op string)

	// RecordNotification counts one emitted notification by kind.
	RecordNotification(kind string)
}

// Credentials is the single accepted demo credential pair.
type Credentials struct {
	Email    string
	Password string
}

// DefaultCredentials returns the fixed demo login.
func DefaultCredentials() Credentials {
	return Credentials{Email: "demo@waitingwall.com", Password: "demo123"}
}

// =============================================================================
// Store
// =============================================================================

// Config assembles a Store. Zero-value fields fall back to production
// defaults; tests typically set Clock and Sleep.
type Config struct {
	// Clock supplies wall-clock time. Default: time.Now.
	Clock Clock

	// Sleep implements the simulated auth latency. Default: a timer that
	// respects context cancellation.
	Sleep Sleep

	// Sessions persists the durable session record on login/signup and
	// clears it on logout. Nil disables persistence (the auth flows still
	// commit their in-memory transitions).
	Sessions SessionWriter

	// Metrics receives operation counters. Nil disables recording.
	Metrics Metrics

	// Logger receives structured transition logs. Nil discards them.
	Logger *slog.Logger

	// AuthLatency is the simulated network delay for login/signup.
	// Default: DefaultAuthLatency.
	AuthLatency time.Duration

	// SessionTTL is the persisted session lifetime. Default: DefaultSessionTTL.
	SessionTTL time.Duration

	// Credentials is the accepted demo login. Default: DefaultCredentials.
	Credentials Credentials
}

// Store is the state container. All methods are safe for concurrent use.
type Store struct {
	mu    sync.Mutex
	state State

	clock       Clock
	sleep       Sleep
	sessions    SessionWriter
	metrics     Metrics
	logger      *slog.Logger
	authLatency time.Duration
	sessionTTL  time.Duration
	credentials Credentials

	subscribers map[int]func(State)
	nextSubID   int
}

// New creates a Store with the startup state.
//
// # Inputs
//
//   - cfg: Assembly configuration. The zero value is usable.
//
// # Outputs
//
//   - *Store: Ready for use.
func New(cfg Config) *Store {
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if cfg.Sleep == nil {
		cfg.Sleep = defaultSleep
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	if cfg.AuthLatency == 0 {
		cfg.AuthLatency = DefaultAuthLatency
	}
	if cfg.SessionTTL == 0 {
		cfg.SessionTTL = DefaultSessionTTL
	}
	if cfg.Credentials == (Credentials{}) {
		cfg.Credentials = DefaultCredentials()
	}
	return &Store{
		state:       NewState(),
		clock:       cfg.Clock,
		sleep:       cfg.Sleep,
		sessions:    cfg.Sessions,
		metrics:     cfg.Metrics,
		logger:      cfg.Logger,
		authLatency: cfg.AuthLatency,
		sessionTTL:  cfg.SessionTTL,
		credentials: cfg.Credentials,
		subscribers: make(map[int]func(State)),
	}
}

// Subscribe registers a callback invoked synchronously with a state
// snapshot after every committed mutation. The returned function removes
// the subscription.
//
// Callbacks run on the mutating goroutine while no store lock is held, in
// unspecified order. A callback may call back into the Store.
func (s *Store) Subscribe(fn func(State)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// finishLocked commits next while holding the lock taken by the caller.
// It releases the lock, then records metrics and runs subscriber
// callbacks with a snapshot. The emitted notification, if any, is counted
// and logged separately.
func (s *Store) finishLocked(op string, next State, emitted *model.Notification) {
	s.state = next
	snapshot := next.Clone()
	subs := make([]func(State), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	if s.metrics != nil {
		s.metrics.RecordOperation(op)
		if emitted != nil {
			s.metrics.RecordNotification(string(emitted.Kind))
		}
	}
	if emitted != nil {
		s.logger.Debug("notification emitted",
			"op", op,
			"kind", emitted.Kind,
			"from", emitted.FromUser.Username,
		)
	}
	for _, fn := range subs {
		fn(snapshot)
	}
}

// defaultSleep waits for d or until ctx is done.
func defaultSleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
