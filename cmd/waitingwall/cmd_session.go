// Copyright (C) 2026 WaitingWall
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/melakufr/waiting-wall/internal/session"
)

func openRecords() (*session.RecordStore, error) {
	records, err := session.OpenRecordStore(session.StorageConfig{
		Path:   cfg.SessionDir(),
		Logger: logger.Slog(),
	})
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}
	return records, nil
}

func runSessionShow(cmd *cobra.Command, args []string) error {
	records, err := openRecords()
	if err != nil {
		return err
	}
	defer records.Close()

	rec, err := records.Load()
	if errors.Is(err, session.ErrNoSession) {
		fmt.Fprintln(cmd.OutOrStdout(), "no stored session")
		return nil
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	expires := time.UnixMilli(rec.ExpiresAt)
	fmt.Fprintf(out, "session %s\n", rec.ID)
	fmt.Fprintf(out, "  user:    @%s (%s)\n", rec.User.Username, rec.User.Name)
	fmt.Fprintf(out, "  expires: %s", expires.Format(time.RFC3339))
	if rec.Expired(time.Now()) {
		fmt.Fprint(out, " (expired)")
	}
	fmt.Fprintln(out)
	return nil
}

func runSessionClear(cmd *cobra.Command, args []string) error {
	records, err := openRecords()
	if err != nil {
		return err
	}
	defer records.Close()

	if err := records.Clear(); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "session cleared")
	return nil
}
