// SPDX-FileCopyrightText: 2024 gesturebind Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package gesture

import (
	"encoding/json"
	"sort"

	"github.com/godbus/dbus/v5"
	"github.com/linuxdeepin/go-lib/dbusutil"
	"golang.org/x/xerrors"

	"github.com/gesturebind/gesturebind/bindings"
)

// Only 3 and 4 finger swipes are bindable.
var bindableDirections = map[Direction]bool{
	DirLeft:  true,
	DirRight: true,
	DirUp:    true,
	DirDown:  true,
}

func swipeBindingKey(fingers int32, direction string) (bindings.Key, error) {
	if fingers != 3 && fingers != 4 {
		return bindings.Key{}, xerrors.Errorf("unsupported finger count %d", fingers)
	}
	if !bindableDirections[Direction(direction)] {
		return bindings.Key{}, xerrors.Errorf("invalid swipe direction %q", direction)
	}
	return bindings.Key{Fingers: fingers, Direction: direction}, nil
}

// SetBinding binds a swipe gesture to a command from the catalog.
// Binding to the sentinel entry is equivalent to RemoveBinding.
func (m *Manager) SetBinding(fingers int32, direction, command string) *dbus.Error {
	key, err := swipeBindingKey(fingers, direction)
	if err != nil {
		return dbusutil.ToError(err)
	}

	if command == bindings.SentinelCommand {
		m.table.Unbind(key)
		logger.Infof("unbound %s", key)
		return nil
	}
	if !m.catalog.Contains(command) {
		return dbusutil.ToError(xerrors.Errorf("command %q is not in the catalog", command))
	}

	m.table.Bind(key, command)
	logger.Infof("bound %s -> %q", key, command)
	return nil
}

func (m *Manager) RemoveBinding(fingers int32, direction string) *dbus.Error {
	key, err := swipeBindingKey(fingers, direction)
	if err != nil {
		return dbusutil.ToError(err)
	}
	m.table.Unbind(key)
	logger.Infof("unbound %s", key)
	return nil
}

// GetBinding returns the bound command, or the sentinel when unbound.
func (m *Manager) GetBinding(fingers int32, direction string) (command string, busErr *dbus.Error) {
	key, err := swipeBindingKey(fingers, direction)
	if err != nil {
		return "", dbusutil.ToError(err)
	}
	command, ok := m.table.Lookup(key)
	if !ok {
		return bindings.SentinelCommand, nil
	}
	return command, nil
}

type bindingInfo struct {
	Fingers   int32
	Direction string
	Command   string
}

// ListBindings returns the current bindings as JSON, sorted by finger
// count then direction, for the editor to pre-populate its state.
func (m *Manager) ListBindings() (bindingsJSON string, busErr *dbus.Error) {
	all := m.table.All()
	infos := make([]bindingInfo, 0, len(all))
	for key, command := range all {
		infos = append(infos, bindingInfo{
			Fingers:   key.Fingers,
			Direction: key.Direction,
			Command:   command,
		})
	}
	sort.Slice(infos, func(i, j int) bool {
		if infos[i].Fingers != infos[j].Fingers {
			return infos[i].Fingers < infos[j].Fingers
		}
		return infos[i].Direction < infos[j].Direction
	})

	data, err := json.Marshal(infos)
	if err != nil {
		return "", dbusutil.ToError(err)
	}
	return string(data), nil
}

// AddCustomCommand appends a user command to the catalog. Empty or
// duplicate input is a no-op, not an error.
func (m *Manager) AddCustomCommand(command string) *dbus.Error {
	if m.catalog.AddCustom(command) {
		logger.Infof("added custom command %q", command)
	} else {
		logger.Debugf("custom command %q rejected (empty or duplicate)", command)
	}
	return nil
}

// RemoveCustomCommand drops a user command and prunes bindings that
// pointed at it.
func (m *Manager) RemoveCustomCommand(command string) *dbus.Error {
	if !m.catalog.RemoveCustom(command) {
		return nil
	}
	removed := m.table.Prune(m.catalog.All())
	logger.Infof("removed custom command %q, pruned %d bindings", command, removed)
	return nil
}

// ListCommands returns the full catalog: presets first, sentinel leading.
func (m *Manager) ListCommands() (commands []string, busErr *dbus.Error) {
	return m.catalog.All(), nil
}
