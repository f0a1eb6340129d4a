// Copyright (C) 2026 WaitingWall
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/melakufr/waiting-wall/internal/model"
)

// Sentinel errors for the record store.
var (
	// ErrNoSession means no record is stored. Callers treat this as a
	// normal logged-out state, not a failure.
	ErrNoSession = errors.New("no session record stored")

	// ErrCorruptRecord means a record was stored but could not be parsed.
	// The gate deletes the record when it sees this.
	ErrCorruptRecord = errors.New("session record is corrupted")
)

// =============================================================================
// Badger Factory
// =============================================================================

// StorageConfig holds configuration for the session database.
type StorageConfig struct {
	// Path is the directory for the database files. Required unless
	// InMemory is true.
	Path string

	// InMemory enables in-memory mode (no disk persistence). Useful for
	// testing.
	InMemory bool

	// SyncWrites enables synchronous writes for durability. The session
	// record is tiny and written rarely, so this defaults on in
	// DefaultStorageConfig.
	SyncWrites bool

	// Logger receives database-level logging. If nil, BadgerDB's internal
	// logging is disabled.
	Logger *slog.Logger
}

// DefaultStorageConfig returns production defaults: durable synchronous
// writes at the given path.
func DefaultStorageConfig(path string) StorageConfig {
	return StorageConfig{Path: path, SyncWrites: true}
}

// InMemoryStorageConfig returns a configuration for tests: in-memory, no
// disk I/O.
func InMemoryStorageConfig() StorageConfig {
	return StorageConfig{InMemory: true}
}

// badgerLogger adapts slog.Logger to BadgerDB's Logger interface.
type badgerLogger struct {
	logger *slog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

// =============================================================================
// RecordStore
// =============================================================================

// RecordStore persists the session record in an embedded BadgerDB under
// the fixed Key. It implements the store package's SessionWriter.
//
// # Thread Safety
//
// Safe for concurrent use; BadgerDB transactions provide isolation. By
// construction there is a single process writing it.
type RecordStore struct {
	db     *badger.DB
	logger *slog.Logger
}

// OpenRecordStore opens the session database with the given configuration.
//
// # Description
//
// Opens a BadgerDB at the configured path, or in memory if InMemory is
// true. Creates the directory if it doesn't exist. The caller must call
// Close when done.
//
// # Inputs
//
//   - cfg: Storage configuration. Path is required unless InMemory is true.
//
// # Outputs
//
//   - *RecordStore: The opened store.
//   - error: Non-nil if the path is invalid or the database cannot open.
func OpenRecordStore(cfg StorageConfig) (*RecordStore, error) {
	if !cfg.InMemory && cfg.Path == "" {
		return nil, errors.New("path is required for persistent session storage")
	}

	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Path, 0750); err != nil {
			return nil, fmt.Errorf("create session directory %s: %w", cfg.Path, err)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts = opts.WithSyncWrites(cfg.SyncWrites)

	logger := cfg.Logger
	if logger != nil {
		opts = opts.WithLogger(&badgerLogger{logger: logger})
	} else {
		opts = opts.WithLogger(nil)
		logger = slog.New(slog.DiscardHandler)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open session database: %w", err)
	}
	return &RecordStore{db: db, logger: logger}, nil
}

// Close closes the underlying database.
func (r *RecordStore) Close() error {
	return r.db.Close()
}

// SaveRecord writes the record as a JSON blob under the fixed key,
// replacing any previous record.
func (r *RecordStore) SaveRecord(rec Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode session record: %w", err)
	}
	err = r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(Key), data)
	})
	if err != nil {
		return fmt.Errorf("write session record: %w", err)
	}
	r.logger.Debug("session record saved",
		"record_id", rec.ID,
		"user_id", rec.User.ID,
		"expires_at_ms", rec.ExpiresAt,
	)
	return nil
}

// Save implements the store package's SessionWriter by wrapping the user
// and expiry in a fresh record.
func (r *RecordStore) Save(user model.User, expiresAt time.Time) error {
	return r.SaveRecord(NewRecord(user, expiresAt))
}

// Load reads the stored record.
//
// # Outputs
//
//   - Record: The stored record, zero on error.
//   - error: ErrNoSession when nothing is stored, ErrCorruptRecord
//     (wrapped) when the blob does not parse, or a database error.
func (r *RecordStore) Load() (Record, error) {
	var data []byte
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(Key))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return Record{}, ErrNoSession
	}
	if err != nil {
		return Record{}, fmt.Errorf("read session record: %w", err)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return Record{}, fmt.Errorf("%w: %v", ErrCorruptRecord, err)
	}
	return rec, nil
}

// Clear removes the stored record. Clearing an absent record succeeds.
func (r *RecordStore) Clear() error {
	err := r.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(Key))
	})
	if err != nil {
		return fmt.Errorf("delete session record: %w", err)
	}
	return nil
}
