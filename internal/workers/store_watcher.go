// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/MKhiriev/go-session-keeper/internal/events"
	"github.com/MKhiriev/go-session-keeper/internal/logger"
)

// DefaultStoreDebounce collapses the burst of file events produced by one
// SQLite transaction into a single signal.
const DefaultStoreDebounce = 150 * time.Millisecond

// sqliteSidecars are the suffixes of files SQLite writes next to the
// database during a transaction.
var sqliteSidecars = []string{"", "-journal", "-wal"}

// StoreWatcher emits [events.StoreChanged] on bus whenever the database file,
// or one of its journal files, is written. Listeners typically re-run the
// session bootstrap so a login or logout in another client process shows up
// here too.
type StoreWatcher struct {
	path     string
	bus      *events.Bus
	debounce time.Duration
	logger   *logger.Logger
}

func NewStoreWatcher(dbPath string, bus *events.Bus, debounce time.Duration, logger *logger.Logger) *StoreWatcher {
	if debounce <= 0 {
		debounce = DefaultStoreDebounce
	}
	return &StoreWatcher{
		path:     filepath.Clean(dbPath),
		bus:      bus,
		debounce: debounce,
		logger:   logger,
	}
}

// Run watches the directory holding the database. Watching the directory
// rather than the file keeps working when SQLite recreates its journal.
func (w *StoreWatcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create fs watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(w.path)
	if err = watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	w.logger.Debug().Str("func", "StoreWatcher.Run").Str("dir", dir).Msg("watching local store")

	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev) {
				continue
			}
			fire = time.After(w.debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn().Err(err).Str("func", "StoreWatcher.Run").Msg("fs watcher error")

		case <-fire:
			fire = nil
			w.bus.Emit(ctx, events.Event{Kind: events.StoreChanged, Target: w.path})
		}
	}
}

func (w *StoreWatcher) relevant(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Remove) {
		return false
	}

	name := filepath.Clean(ev.Name)
	for _, suffix := range sqliteSidecars {
		if name == w.path+suffix {
			return true
		}
	}
	return false
}
