// SPDX-FileCopyrightText: 2024 gesturebind Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package loader

import (
	"errors"
	"strings"
	"testing"

	"github.com/linuxdeepin/go-lib/log"
	"github.com/stretchr/testify/assert"
)

type Test_Module struct {
	*ModuleBase
	dependencies string
	startErr     error
}

type testItem struct {
	input  Modules
	output error
}

func NewTestModule(name, dependencies string) *Test_Module {
	daemon := new(Test_Module)
	logger := log.NewLogger(name)
	daemon.ModuleBase = NewModuleBase(name, daemon, logger)
	daemon.dependencies = dependencies
	return daemon
}

func (d *Test_Module) GetDependencies() []string {
	if d.dependencies == "" {
		return nil
	}
	return strings.Split(d.dependencies, " ")
}

func (d *Test_Module) Start() error {
	return d.startErr
}

func (d *Test_Module) Stop() error {
	return nil
}

func Test_Loader(t *testing.T) {
	testItems := []testItem{
		{
			Modules{
				"1": NewTestModule("1", ""),
				"2": NewTestModule("2", ""),
				"3": NewTestModule("3", ""),
			},
			nil,
		},
		{
			Modules{
				"1": NewTestModule("1", "2"),
				"2": NewTestModule("2", "3"),
				"3": NewTestModule("3", ""),
			},
			nil,
		},
		{
			Modules{
				"1": NewTestModule("1", "2"),
				"2": NewTestModule("2", "3"),
				"3": NewTestModule("3", "1"),
			},
			&EnableError{Code: ErrorCircleDependencies},
		},
	}
	for _, data := range testItems {
		_loader = &Loader{
			modules: Modules{},
			log:     log.NewLogger("daemon/loader"),
		}
		allModules := []string{}
		for name, module := range data.input {
			Register(module)
			allModules = append(allModules, name)
		}
		err := EnableModules(allModules, nil, EnableFlagNone)
		assert.Equal(t, data.output, err)
	}
}

func Test_LoaderMissingModule(t *testing.T) {
	_loader = &Loader{
		modules: Modules{},
		log:     log.NewLogger("daemon/loader"),
	}
	Register(NewTestModule("1", ""))

	err := EnableModules([]string{"1", "phantom"}, nil, EnableFlagNone)
	var enableErr *EnableError
	assert.True(t, errors.As(err, &enableErr))
	assert.Equal(t, ErrorMissingModule, enableErr.Code)

	_loader = &Loader{
		modules: Modules{},
		log:     log.NewLogger("daemon/loader"),
	}
	Register(NewTestModule("1", ""))
	err = EnableModules([]string{"1", "phantom"}, nil, EnableFlagIgnoreMissingModule)
	assert.NoError(t, err)
}

func Test_LoaderStartFailure(t *testing.T) {
	_loader = &Loader{
		modules: Modules{},
		log:     log.NewLogger("daemon/loader"),
	}
	broken := NewTestModule("broken", "")
	broken.startErr = errors.New("device not found")
	Register(broken)

	err := EnableModules([]string{"broken"}, nil, EnableFlagNone)
	var enableErr *EnableError
	assert.True(t, errors.As(err, &enableErr))
	assert.Equal(t, ErrorInternalError, enableErr.Code)
}
