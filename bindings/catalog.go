// SPDX-FileCopyrightText: 2024 gesturebind Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package bindings

import (
	"sync"

	"golang.org/x/exp/slices"
)

// SentinelCommand is the first preset; selecting it for a key means the
// key is unbound.
const SentinelCommand = "None"

var defaultPresets = []string{
	SentinelCommand,
	"notify-send 'Gesture Triggered'",
	"gnome-terminal",
	"google-chrome",
	"playerctl play-pause",
	"playerctl next",
	"playerctl previous",
}

// DefaultPresets returns the compiled-in preset list.
func DefaultPresets() []string {
	return slices.Clone(defaultPresets)
}

// Catalog is the ordered set of commands offered for binding: presets
// first (sentinel leading), then user-added custom commands in insertion
// order. Entries are unique by exact string value.
type Catalog struct {
	mu      sync.RWMutex
	presets []string
	custom  []string
}

func NewCatalog(presets []string) *Catalog {
	return &Catalog{
		presets: normalizePresets(presets),
	}
}

// normalizePresets drops empty entries and duplicates and guarantees the
// sentinel stays the first entry.
func normalizePresets(presets []string) []string {
	out := []string{SentinelCommand}
	for _, command := range presets {
		if command == "" || slices.Contains(out, command) {
			continue
		}
		out = append(out, command)
	}
	return out
}

// AddCustom appends command if it is non-empty and not yet anywhere in
// the combined catalog. Reports whether the catalog changed.
func (c *Catalog) AddCustom(command string) bool {
	if command == "" {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if slices.Contains(c.presets, command) || slices.Contains(c.custom, command) {
		return false
	}
	c.custom = append(c.custom, command)
	return true
}

// RemoveCustom removes a user-added command. Presets cannot be removed.
// Reports whether the catalog changed; the caller is responsible for
// pruning the binding table afterwards.
func (c *Catalog) RemoveCustom(command string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	idx := slices.Index(c.custom, command)
	if idx < 0 {
		return false
	}
	c.custom = slices.Delete(c.custom, idx, idx+1)
	return true
}

// SetPresets replaces the preset list. Custom commands that became
// shadowed by a new preset are dropped to keep entries unique.
func (c *Catalog) SetPresets(presets []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.presets = normalizePresets(presets)
	custom := c.custom[:0]
	for _, command := range c.custom {
		if !slices.Contains(c.presets, command) {
			custom = append(custom, command)
		}
	}
	c.custom = custom
}

// All returns presets followed by custom commands, stable order.
func (c *Catalog) All() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	all := make([]string, 0, len(c.presets)+len(c.custom))
	all = append(all, c.presets...)
	all = append(all, c.custom...)
	return all
}

func (c *Catalog) Contains(command string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Contains(c.presets, command) || slices.Contains(c.custom, command)
}
