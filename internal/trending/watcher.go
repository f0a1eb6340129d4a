// Copyright (C) 2026 WaitingWall
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package trending

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads the editorial file whenever it changes on disk and
// hands the fresh dataset to a callback (typically the store's trending
// setters). A parse failure keeps the previous dataset; editors get a
// warning in the log instead of a wiped sidebar.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	logger  *slog.Logger
	done    chan struct{}
}

// Watch starts watching the editorial file.
//
// # Description
//
// The watch is registered on the file's directory, not the file itself,
// so editors that replace the file (rename-over-write) keep triggering
// reloads. The callback runs on the watcher goroutine for every
// successful reload. Call Close to stop.
//
// # Inputs
//
//   - path: Editorial YAML file to watch.
//   - onReload: Receives each successfully parsed dataset.
//   - logger: Structured logger. Nil discards.
//
// # Outputs
//
//   - *Watcher: The running watcher.
//   - error: Non-nil if the underlying watch cannot be established.
func Watch(path string, onReload func(Dataset), logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create trending watcher: %w", err)
	}
	dir := filepath.Dir(path)
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch trending directory %s: %w", dir, err)
	}

	w := &Watcher{
		path:    path,
		watcher: fsw,
		logger:  logger,
		done:    make(chan struct{}),
	}
	go w.run(onReload)
	return w, nil
}

// Close stops the watcher and waits for its goroutine to finish.
func (w *Watcher) Close() error {
	err := w.watcher.Close()
	<-w.done
	return err
}

func (w *Watcher) run(onReload func(Dataset)) {
	defer close(w.done)

	target := filepath.Clean(w.path)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			ds, err := LoadFile(w.path)
			if err != nil {
				w.logger.Warn("trending reload failed, keeping previous data",
					"path", w.path,
					"error", err,
				)
				continue
			}
			w.logger.Info("trending data reloaded",
				"topics", len(ds.Topics),
				"users", len(ds.Users),
			)
			onReload(ds)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("trending watcher error", "error", err)
		}
	}
}
