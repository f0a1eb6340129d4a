// Copyright (C) 2026 WaitingWall
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package session implements the session gate: the one durable record the
// system keeps, and the startup path that hydrates the store from it.
//
// The record is a single JSON blob under a fixed key in an embedded
// BadgerDB. Everything else in the system is in-memory and vanishes on
// restart.
package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/melakufr/waiting-wall/internal/model"
)

// Key is the fixed durable key holding the session record.
const Key = "waitingwall_session"

// Record is the persisted session: the principal plus an absolute expiry
// in epoch milliseconds. The ID exists only to distinguish records in
// logs; validity is decided by ExpiresAt alone.
type Record struct {
	ID        string     `json:"id"`
	User      model.User `json:"user"`
	ExpiresAt int64      `json:"expiresAt"`
}

// NewRecord builds a record for the given user expiring at the given
// absolute instant.
func NewRecord(user model.User, expiresAt time.Time) Record {
	return Record{
		ID:        uuid.NewString(),
		User:      user,
		ExpiresAt: expiresAt.UnixMilli(),
	}
}

// Expired reports whether the record is expired at the given instant.
func (r Record) Expired(now time.Time) bool {
	return now.UnixMilli() >= r.ExpiresAt
}
