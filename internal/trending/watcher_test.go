// Copyright (C) 2026 WaitingWall
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package trending

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// waitForReload drains the channel with a deadline so a missed fsnotify
// event fails fast instead of hanging the suite.
func waitForReload(t *testing.T, ch <-chan Dataset) Dataset {
	t.Helper()
	select {
	case ds := <-ch:
		return ds
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for trending reload")
		return Dataset{}
	}
}

func TestWatch_ReloadsOnWrite(t *testing.T) {
	path := writeSample(t, sampleYAML)
	reloads := make(chan Dataset, 4)

	w, err := Watch(path, func(ds Dataset) { reloads <- ds }, nil)
	require.NoError(t, err)
	defer w.Close()

	updated := sampleYAML + `  - id: "u2"
    name: "Jo"
    username: "jo"
`
	require.NoError(t, os.WriteFile(path, []byte(updated), 0644))

	ds := waitForReload(t, reloads)
	assert.Len(t, ds.Users, 2)
}

func TestWatch_ReloadsOnRenameOver(t *testing.T) {
	// Editors typically write a temp file and rename it over the target.
	path := writeSample(t, sampleYAML)
	reloads := make(chan Dataset, 4)

	w, err := Watch(path, func(ds Dataset) { reloads <- ds }, nil)
	require.NoError(t, err)
	defer w.Close()

	tmp := filepath.Join(filepath.Dir(path), "trending.tmp")
	require.NoError(t, os.WriteFile(tmp, []byte("topics:\n  - id: \"9\"\n    name: \"replaced\"\n"), 0644))
	require.NoError(t, os.Rename(tmp, path))

	ds := waitForReload(t, reloads)
	require.Len(t, ds.Topics, 1)
	assert.Equal(t, "replaced", ds.Topics[0].Name)
}

func TestWatch_ParseFailureKeepsPreviousData(t *testing.T) {
	path := writeSample(t, sampleYAML)
	reloads := make(chan Dataset, 4)

	w, err := Watch(path, func(ds Dataset) { reloads <- ds }, nil)
	require.NoError(t, err)
	defer w.Close()

	// Garbage write: the callback must not fire.
	require.NoError(t, os.WriteFile(path, []byte("topics: [broken"), 0644))

	select {
	case ds := <-reloads:
		t.Fatalf("unexpected reload with %d topics", len(ds.Topics))
	case <-time.After(500 * time.Millisecond):
	}

	// A good write afterwards resumes delivery.
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0644))
	ds := waitForReload(t, reloads)
	assert.Len(t, ds.Topics, 2)
}

func TestWatch_IgnoresSiblingFiles(t *testing.T) {
	path := writeSample(t, sampleYAML)
	reloads := make(chan Dataset, 4)

	w, err := Watch(path, func(ds Dataset) { reloads <- ds }, nil)
	require.NoError(t, err)
	defer w.Close()

	sibling := filepath.Join(filepath.Dir(path), "other.yaml")
	require.NoError(t, os.WriteFile(sibling, []byte("topics: []"), 0644))

	select {
	case <-reloads:
		t.Fatal("reload fired for a sibling file")
	case <-time.After(500 * time.Millisecond):
	}
}

func TestWatch_CloseStopsGoroutine(t *testing.T) {
	path := writeSample(t, sampleYAML)
	w, err := Watch(path, func(Dataset) {}, nil)
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		_ = w.Close()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Close did not return")
	}
}
