// SPDX-FileCopyrightText: 2024 gesturebind Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package gesture

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gesturebind/gesturebind/bindings"
)

// recordingRunner records launched commands instead of spawning processes.
type recordingRunner struct {
	commands []string
	err      error
}

func (r *recordingRunner) Run(command string) error {
	r.commands = append(r.commands, command)
	return r.err
}

func Test_DispatchBoundSwipe(t *testing.T) {
	table := bindings.NewTable()
	table.Bind(bindings.Key{Fingers: 3, Direction: "up"}, "cmdA")
	runner := &recordingRunner{}
	dispatcher := NewDispatcher(table, runner)

	dispatcher.Dispatch(&Occurrence{Kind: GestureSwipe, Direction: DirUp, Fingers: 3})
	assert.Equal(t, []string{"cmdA"}, runner.commands)
}

func Test_DispatchUnboundSwipe(t *testing.T) {
	table := bindings.NewTable()
	table.Bind(bindings.Key{Fingers: 3, Direction: "up"}, "cmdA")
	runner := &recordingRunner{}
	dispatcher := NewDispatcher(table, runner)

	// lookup miss is reported, not an error, and runs nothing
	dispatcher.Dispatch(&Occurrence{Kind: GestureSwipe, Direction: DirDown, Fingers: 3})
	dispatcher.Dispatch(&Occurrence{Kind: GestureSwipe, Direction: DirUp, Fingers: 4})
	assert.Empty(t, runner.commands)
}

func Test_DispatchNonBindableKinds(t *testing.T) {
	table := bindings.NewTable()
	table.Bind(bindings.Key{Fingers: 3, Direction: "none"}, "cmdA")
	runner := &recordingRunner{}
	dispatcher := NewDispatcher(table, runner)

	dispatcher.Dispatch(&Occurrence{Kind: GesturePinch, Direction: DirIn, Fingers: 2})
	dispatcher.Dispatch(&Occurrence{Kind: GestureHold, Direction: DirNone, Fingers: 3})
	assert.Empty(t, runner.commands)
}

func Test_DispatchLaunchFailure(t *testing.T) {
	table := bindings.NewTable()
	table.Bind(bindings.Key{Fingers: 4, Direction: "left"}, "cmdA")
	runner := &recordingRunner{err: errors.New("fork failed")}
	dispatcher := NewDispatcher(table, runner)

	// launch failure must not panic or propagate
	dispatcher.Dispatch(&Occurrence{Kind: GestureSwipe, Direction: DirLeft, Fingers: 4})
	assert.Equal(t, []string{"cmdA"}, runner.commands)
}
