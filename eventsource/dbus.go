// SPDX-FileCopyrightText: 2024 gesturebind Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package eventsource

import (
	"github.com/godbus/dbus/v5"
	"golang.org/x/xerrors"
)

const (
	bridgeServiceName = "org.gesturebind.Touchpad1"
	bridgePath        = "/org/gesturebind/Touchpad1"
	bridgeInterface   = bridgeServiceName
	bridgeSignal      = "SubEvent"

	bridgeSignalFull = bridgeInterface + "." + bridgeSignal
)

// DBusSource subscribes to the system-bus touchpad bridge, which wraps
// libinput and re-emits raw gesture sub-events as SubEvent(name string,
// fingers int32, dx float64, dy float64, scale float64, time uint64).
type DBusSource struct {
	conn  *dbus.Conn
	sigCh chan *dbus.Signal
	done  chan struct{}
}

func NewDBusSource(conn *dbus.Conn) *DBusSource {
	return &DBusSource{
		conn: conn,
	}
}

func (s *DBusSource) matchOptions() []dbus.MatchOption {
	return []dbus.MatchOption{
		dbus.WithMatchObjectPath(bridgePath),
		dbus.WithMatchInterface(bridgeInterface),
		dbus.WithMatchMember(bridgeSignal),
	}
}

// Start begins delivery. The handler is called from a single goroutine,
// one event at a time, in the order the bridge emitted them.
func (s *DBusSource) Start(handler func(Event)) error {
	err := s.conn.AddMatchSignal(s.matchOptions()...)
	if err != nil {
		return xerrors.Errorf("add touchpad bridge match rule: %w", err)
	}

	s.sigCh = make(chan *dbus.Signal, 10)
	s.done = make(chan struct{})
	s.conn.Signal(s.sigCh)

	go func() {
		for {
			select {
			case <-s.done:
				return
			case sig, ok := <-s.sigCh:
				if !ok {
					return
				}
				if sig.Name != bridgeSignalFull {
					continue
				}
				ev, err := eventFromSignalBody(sig.Body)
				if err != nil {
					logger.Warning("malformed bridge signal:", err)
					continue
				}
				handler(ev)
			}
		}
	}()
	return nil
}

func (s *DBusSource) Stop() error {
	if s.done == nil {
		return nil
	}
	close(s.done)
	s.done = nil
	s.conn.RemoveSignal(s.sigCh)
	err := s.conn.RemoveMatchSignal(s.matchOptions()...)
	if err != nil {
		return xerrors.Errorf("remove touchpad bridge match rule: %w", err)
	}
	return nil
}

func eventFromSignalBody(body []interface{}) (Event, error) {
	if len(body) < 6 {
		return Event{}, xerrors.Errorf("body has %d fields, want 6", len(body))
	}

	name, ok := body[0].(string)
	if !ok {
		return Event{}, xerrors.Errorf("field 0 is %T, want string", body[0])
	}
	fingers, ok := body[1].(int32)
	if !ok {
		return Event{}, xerrors.Errorf("field 1 is %T, want int32", body[1])
	}
	dx, ok := body[2].(float64)
	if !ok {
		return Event{}, xerrors.Errorf("field 2 is %T, want float64", body[2])
	}
	dy, ok := body[3].(float64)
	if !ok {
		return Event{}, xerrors.Errorf("field 3 is %T, want float64", body[3])
	}
	scale, ok := body[4].(float64)
	if !ok {
		return Event{}, xerrors.Errorf("field 4 is %T, want float64", body[4])
	}
	time, ok := body[5].(uint64)
	if !ok {
		return Event{}, xerrors.Errorf("field 5 is %T, want uint64", body[5])
	}

	return Event{
		Kind:    KindFromName(name),
		Fingers: fingers,
		Dx:      dx,
		Dy:      dy,
		Scale:   scale,
		Time:    time,
	}, nil
}
