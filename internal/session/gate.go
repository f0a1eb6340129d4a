// Copyright (C) 2026 WaitingWall
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package session

import (
	"errors"
	"log/slog"
	"time"

	"github.com/melakufr/waiting-wall/internal/model"
)

// PrincipalSetter receives the hydrated user. The store satisfies this.
type PrincipalSetter interface {
	SetCurrentUser(user *model.User)
}

// RecordLoader is the read side of the record store, abstracted so the
// gate can be tested against a fake.
type RecordLoader interface {
	Load() (Record, error)
	Clear() error
}

// Gate runs once at process start and feeds the store's principal from
// the durable session record.
//
// Read-path policy, in order:
//
//  1. No record stored: nothing happens, the user stays logged out.
//  2. Record stored but unparseable: the key is deleted and the state
//     reads as session absence.
//  3. Record expired: the key is deleted, user stays logged out.
//  4. Record valid: the embedded user becomes the principal.
type Gate struct {
	records RecordLoader
	clock   func() time.Time
	logger  *slog.Logger
}

// NewGate creates a session gate.
//
// # Inputs
//
//   - records: The record store to read from. Must not be nil.
//   - clock: Time source for expiry checks. Nil means time.Now.
//   - logger: Structured logger. Nil discards.
func NewGate(records RecordLoader, clock func() time.Time, logger *slog.Logger) *Gate {
	if clock == nil {
		clock = time.Now
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Gate{records: records, clock: clock, logger: logger}
}

// Hydrate applies the read-path policy and, when a valid record exists,
// hands its user to the setter.
//
// # Outputs
//
//   - bool: True if a principal was set.
func (g *Gate) Hydrate(setter PrincipalSetter) bool {
	rec, err := g.records.Load()
	switch {
	case errors.Is(err, ErrNoSession):
		g.logger.Debug("no stored session")
		return false
	case err != nil:
		// Corrupt or unreadable records read as absence; delete so the
		// next start doesn't trip over the same blob.
		g.logger.Warn("stored session unreadable, discarding", "error", err)
		if clearErr := g.records.Clear(); clearErr != nil {
			g.logger.Warn("session discard failed", "error", clearErr)
		}
		return false
	}

	if rec.Expired(g.clock()) {
		g.logger.Info("stored session expired, discarding",
			"record_id", rec.ID,
			"expired_at_ms", rec.ExpiresAt,
		)
		if clearErr := g.records.Clear(); clearErr != nil {
			g.logger.Warn("session discard failed", "error", clearErr)
		}
		return false
	}

	user := rec.User
	setter.SetCurrentUser(&user)
	g.logger.Info("session hydrated", "user_id", user.ID, "username", user.Username)
	return true
}
