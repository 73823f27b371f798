// SPDX-FileCopyrightText: 2024 gesturebind Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package bindings

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/linuxdeepin/go-lib/log"
	"golang.org/x/xerrors"
)

var logger = log.NewLogger("daemon/bindings")

// Watcher reloads the preset catalog when its file changes on disk.
// The containing directory is watched because editors replace the file
// instead of writing it in place.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	done      chan struct{}
}

func WatchPresetsFile(filename string, onChange func()) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, xerrors.Errorf("create watcher: %w", err)
	}
	err = fsWatcher.Add(filepath.Dir(filename))
	if err != nil {
		_ = fsWatcher.Close()
		return nil, xerrors.Errorf("watch %q: %w", filepath.Dir(filename), err)
	}

	w := &Watcher{
		fsWatcher: fsWatcher,
		done:      make(chan struct{}),
	}
	go w.loop(filename, onChange)
	return w, nil
}

func (w *Watcher) loop(filename string, onChange func()) {
	var debounce *time.Timer
	for {
		select {
		case <-w.done:
			if debounce != nil {
				debounce.Stop()
			}
			return
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			logger.Warning("preset file watcher error:", err)
		case ev, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if ev.Name != filename {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			logger.Debug("preset file changed:", ev)
			// editors fire bursts of events for one save
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(100*time.Millisecond, onChange)
		}
	}
}

func (w *Watcher) Stop() {
	close(w.done)
	err := w.fsWatcher.Close()
	if err != nil {
		logger.Warning(err)
	}
}
