// SPDX-FileCopyrightText: 2024 gesturebind Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package eventsource

import (
	"fmt"

	"github.com/linuxdeepin/go-lib/log"
)

var logger = log.NewLogger("daemon/eventsource")

type Kind int32

const (
	KindNone Kind = iota
	KindSwipeBegin
	KindSwipeUpdate
	KindSwipeEnd
	KindPinchBegin
	KindPinchUpdate
	KindPinchEnd
	KindHoldBegin
	KindHoldEnd
)

var kindNames = map[Kind]string{
	KindNone:        "none",
	KindSwipeBegin:  "swipe begin",
	KindSwipeUpdate: "swipe update",
	KindSwipeEnd:    "swipe end",
	KindPinchBegin:  "pinch begin",
	KindPinchUpdate: "pinch update",
	KindPinchEnd:    "pinch end",
	KindHoldBegin:   "hold begin",
	KindHoldEnd:     "hold end",
}

func (k Kind) String() string {
	name, ok := kindNames[k]
	if !ok {
		return fmt.Sprintf("unknown(%d)", int32(k))
	}
	return name
}

// KindFromName maps the bridge's event names back to kinds. Names the
// bridge may emit for device plumbing we do not track ("pointer motion",
// "device added", ...) map to KindNone and are passed over untouched.
func KindFromName(name string) Kind {
	for kind, kindName := range kindNames {
		if kindName == name && kind != KindNone {
			return kind
		}
	}
	return KindNone
}

// Event is one touchpad sub-event. Fingers is only meaningful on begin
// and hold events, Dx/Dy are incremental deltas on swipe/pinch updates,
// Scale is the incremental scale step on pinch updates.
type Event struct {
	Kind    Kind
	Fingers int32
	Dx      float64
	Dy      float64
	Scale   float64
	Time    uint64 // bridge clock, microseconds
}

func (ev Event) String() string {
	return fmt.Sprintf("Kind=%s, Fingers=%d, Dx=%.2f, Dy=%.2f, Scale=%.3f",
		ev.Kind, ev.Fingers, ev.Dx, ev.Dy, ev.Scale)
}

// Source delivers sub-events to a single handler. Implementations must
// call the handler from one goroutine only, in arrival order; gesture
// state downstream is not designed for concurrent access.
type Source interface {
	Start(handler func(Event)) error
	Stop() error
}
