// SPDX-FileCopyrightText: 2024 gesturebind Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package bindings

import (
	"fmt"
	"sync"

	"golang.org/x/exp/slices"
)

// Key identifies one bindable gesture: finger count plus swipe direction.
type Key struct {
	Fingers   int32
	Direction string
}

func (k Key) String() string {
	return fmt.Sprintf("%dF %s", k.Fingers, k.Direction)
}

// Table maps gesture keys to command strings. The editor mutates it from
// DBus method goroutines while the event loop reads it, so access is
// guarded here.
type Table struct {
	mu sync.RWMutex
	m  map[Key]string
}

func NewTable() *Table {
	return &Table{
		m: make(map[Key]string),
	}
}

// Bind overwrites any existing binding for key.
func (t *Table) Bind(key Key, command string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.m[key] = command
}

// Unbind is a no-op if key is not bound.
func (t *Table) Unbind(key Key) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.m, key)
}

func (t *Table) Lookup(key Key) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	command, ok := t.m[key]
	return command, ok
}

// Prune removes every binding whose command is not in validCommands and
// returns how many were removed. Called after each catalog shrink, before
// the next lookup; pruning twice in a row removes nothing the second time.
func (t *Table) Prune(validCommands []string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	var removed int
	for key, command := range t.m {
		if !slices.Contains(validCommands, command) {
			delete(t.m, key)
			removed++
		}
	}
	return removed
}

func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.m)
}

// All returns a copy of the current bindings.
func (t *Table) All() map[Key]string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	all := make(map[Key]string, len(t.m))
	for key, command := range t.m {
		all[key] = command
	}
	return all
}
