// SPDX-FileCopyrightText: 2024 gesturebind Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package gesture

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/godbus/dbus/v5"
	"github.com/linuxdeepin/go-lib/dbusutil"
	"github.com/linuxdeepin/go-lib/log"

	"github.com/gesturebind/gesturebind/bindings"
	"github.com/gesturebind/gesturebind/eventsource"
)

//go:generate dbusutil-gen em -type Manager

type Manager struct {
	service *dbusutil.Service
	source  eventsource.Source
	tracker *Tracker

	table      *bindings.Table
	catalog    *bindings.Catalog
	dispatcher *Dispatcher
	watcher    *bindings.Watcher

	// nolint
	signals *struct {
		GestureOccurred struct {
			kind      string
			direction string
			fingers   int32
		}
	}
}

func newManager(service *dbusutil.Service) (*Manager, error) {
	presets := bindings.LoadPresets()
	if logger.GetLogLevel() == log.LevelDebug {
		logger.Debug("preset catalog:", spew.Sdump(presets))
	}

	m := &Manager{
		service: service,
		tracker: NewTracker(),
		table:   bindings.NewTable(),
		catalog: bindings.NewCatalog(presets),
	}
	m.dispatcher = NewDispatcher(m.table, nil)

	sysBus, err := dbus.SystemBus()
	if err != nil {
		return nil, err
	}
	m.source = eventsource.NewDBusSource(sysBus)

	return m, nil
}

func (m *Manager) init() error {
	if filename := bindings.PresetsFile(); filename != "" {
		watcher, err := bindings.WatchPresetsFile(filename, m.reloadPresets)
		if err != nil {
			logger.Warning("failed to watch preset file:", err)
		} else {
			m.watcher = watcher
		}
	}

	return m.source.Start(m.handleEvent)
}

func (m *Manager) destroy() {
	if m.watcher != nil {
		m.watcher.Stop()
		m.watcher = nil
	}
	err := m.source.Stop()
	if err != nil {
		logger.Warning(err)
	}
}

// handleEvent runs on the source's delivery goroutine; the tracker is
// owned by that goroutine and touched nowhere else.
func (m *Manager) handleEvent(ev eventsource.Event) {
	if ev.Kind == eventsource.KindNone {
		return
	}
	occ := m.tracker.OnEvent(ev)
	if occ == nil {
		return
	}

	logger.Debugf("occurrence: %s", occ)
	m.emitOccurrence(occ)
	m.dispatcher.Dispatch(occ)
}

func (m *Manager) emitOccurrence(occ *Occurrence) {
	err := m.service.Emit(m, "GestureOccurred", occ.Kind, string(occ.Direction), occ.Fingers)
	if err != nil {
		logger.Warning("emit GestureOccurred failed:", err)
	}
}

// reloadPresets re-reads the preset catalog and prunes bindings whose
// command fell out of it, before the next lookup can see them.
func (m *Manager) reloadPresets() {
	m.catalog.SetPresets(bindings.LoadPresets())
	removed := m.table.Prune(m.catalog.All())
	if removed > 0 {
		logger.Infof("pruned %d stale bindings after catalog reload", removed)
	}
}

func (*Manager) GetInterfaceName() string {
	return dbusServiceIFC
}
