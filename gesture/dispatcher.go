// SPDX-FileCopyrightText: 2024 gesturebind Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package gesture

import (
	"os/exec"

	"github.com/gesturebind/gesturebind/bindings"
)

// CommandRunner launches a bound command. Implementations must return
// quickly; a hung child must never stall the event loop.
type CommandRunner interface {
	Run(command string) error
}

// shellRunner hands the command string to the shell verbatim. The string
// comes from the binding editor, a trusted local user; no escaping is
// attempted.
type shellRunner struct{}

func (shellRunner) Run(command string) error {
	// #nosec G204
	cmd := exec.Command("/bin/sh", "-c", command)
	err := cmd.Start()
	if err != nil {
		return err
	}
	go func() {
		err := cmd.Wait()
		if err != nil {
			logger.Warningf("command %q: %v", command, err)
		}
	}()
	return nil
}

// Dispatcher resolves occurrences against the binding table and launches
// the bound command, fire and forget.
type Dispatcher struct {
	table  *bindings.Table
	runner CommandRunner
}

func NewDispatcher(table *bindings.Table, runner CommandRunner) *Dispatcher {
	if runner == nil {
		runner = shellRunner{}
	}
	return &Dispatcher{
		table:  table,
		runner: runner,
	}
}

func (d *Dispatcher) Dispatch(occ *Occurrence) {
	switch occ.Kind {
	case GestureSwipe:
		key := bindings.Key{Fingers: occ.Fingers, Direction: string(occ.Direction)}
		command, ok := d.table.Lookup(key)
		if !ok {
			logger.Infof("no binding for %s", key)
			return
		}
		logger.Infof("running %q for %s", command, key)
		err := d.runner.Run(command)
		if err != nil {
			logger.Warningf("failed to launch %q: %v", command, err)
		}
	default:
		// pinch and hold are recognized but not bindable yet
		logger.Infof("recognized %s", occ)
	}
}
