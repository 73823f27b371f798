// SPDX-FileCopyrightText: 2024 gesturebind Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package gesture

import (
	"fmt"
	"math"

	"github.com/gesturebind/gesturebind/eventsource"
)

const (
	GestureSwipe = "swipe"
	GesturePinch = "pinch"
	GestureHold  = "hold"
)

type Direction string

const (
	DirNone  Direction = "none"
	DirUp    Direction = "up"
	DirDown  Direction = "down"
	DirLeft  Direction = "left"
	DirRight Direction = "right"
	DirIn    Direction = "in"
	DirOut   Direction = "out"
)

// swipeThreshold is the distance the winning axis must exceed for a
// swipe to classify, in the same unit as the reported deltas. Shorter
// swipes are finger noise, not gestures.
const swipeThreshold = 50.0

// Pinch scales inside (pinchZoomOutScale, pinchZoomInScale) are a dead
// zone so minor finger jitter does not trigger a zoom.
const (
	pinchZoomInScale  = 1.1
	pinchZoomOutScale = 0.9
)

// Occurrence is one classified, completed gesture, ready for dispatch.
type Occurrence struct {
	Kind      string
	Direction Direction
	Fingers   int32
}

func (occ *Occurrence) String() string {
	return fmt.Sprintf("Kind=%s, Direction=%s, Fingers=%d", occ.Kind, occ.Direction, occ.Fingers)
}

type swipeState struct {
	dx      float64
	dy      float64
	active  bool
	fingers int32
}

type pinchState struct {
	scale   float64
	dx      float64
	dy      float64
	active  bool
	fingers int32
}

// Tracker accumulates raw sub-events into classified occurrences. The
// per-kind state machines are independent: a new begin always resets the
// prior accumulation for that kind. Not safe for concurrent use; feed it
// from the event delivery goroutine only.
type Tracker struct {
	swipe swipeState
	pinch pinchState
}

func NewTracker() *Tracker {
	return &Tracker{}
}

// OnEvent consumes one sub-event and returns the completed occurrence,
// or nil. Invalid transitions (update/end without a begin) degrade to a
// logged no-op; no error ever escapes the tracker.
func (t *Tracker) OnEvent(ev eventsource.Event) *Occurrence {
	switch ev.Kind {
	case eventsource.KindSwipeBegin:
		t.swipe = swipeState{active: true, fingers: ev.Fingers}

	case eventsource.KindSwipeUpdate:
		if !t.swipe.active {
			logger.Debug("swipe update without begin, ignored")
			return nil
		}
		t.swipe.dx += ev.Dx
		t.swipe.dy += ev.Dy

	case eventsource.KindSwipeEnd:
		if !t.swipe.active {
			logger.Debug("swipe end without begin, ignored")
			return nil
		}
		t.swipe.active = false
		direction := classifySwipe(t.swipe.dx, t.swipe.dy)
		if direction == DirNone {
			logger.Debugf("swipe below threshold, dx=%.2f dy=%.2f", t.swipe.dx, t.swipe.dy)
			return nil
		}
		return &Occurrence{Kind: GestureSwipe, Direction: direction, Fingers: t.swipe.fingers}

	case eventsource.KindPinchBegin:
		t.pinch = pinchState{scale: 1.0, active: true, fingers: ev.Fingers}

	case eventsource.KindPinchUpdate:
		if !t.pinch.active {
			logger.Debug("pinch update without begin, ignored")
			return nil
		}
		t.pinch.scale *= ev.Scale
		t.pinch.dx += ev.Dx
		t.pinch.dy += ev.Dy

	case eventsource.KindPinchEnd:
		if !t.pinch.active {
			logger.Debug("pinch end without begin, ignored")
			return nil
		}
		t.pinch.active = false
		direction := classifyPinch(t.pinch.scale)
		if direction == DirNone {
			logger.Debugf("minor pinch, scale=%.3f", t.pinch.scale)
			return nil
		}
		return &Occurrence{Kind: GesturePinch, Direction: direction, Fingers: t.pinch.fingers}

	case eventsource.KindHoldBegin:
		logger.Debugf("hold begin with %d fingers", ev.Fingers)

	case eventsource.KindHoldEnd:
		return &Occurrence{Kind: GestureHold, Direction: DirNone, Fingers: ev.Fingers}
	}
	return nil
}

// classifySwipe picks the axis with the larger accumulated magnitude;
// on |dx| == |dy| the vertical branch wins. The threshold applies to the
// winning axis only.
func classifySwipe(dx, dy float64) Direction {
	if math.Abs(dx) > math.Abs(dy) {
		if dx > swipeThreshold {
			return DirRight
		}
		if dx < -swipeThreshold {
			return DirLeft
		}
	} else {
		if dy > swipeThreshold {
			return DirDown
		}
		if dy < -swipeThreshold {
			return DirUp
		}
	}
	return DirNone
}

func classifyPinch(scale float64) Direction {
	if scale > pinchZoomInScale {
		return DirIn
	}
	if scale < pinchZoomOutScale {
		return DirOut
	}
	return DirNone
}
