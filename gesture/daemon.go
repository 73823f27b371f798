// SPDX-FileCopyrightText: 2024 gesturebind Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package gesture

import (
	"github.com/linuxdeepin/go-lib/log"

	"github.com/gesturebind/gesturebind/loader"
)

type Daemon struct {
	*loader.ModuleBase
	manager *Manager
}

const (
	dbusServiceName = "org.gesturebind.Daemon1"
	dbusServicePath = "/org/gesturebind/Daemon1"
	dbusServiceIFC  = dbusServiceName
)

var (
	logger = log.NewLogger("daemon/gesture")
)

func NewDaemon() *Daemon {
	daemon := new(Daemon)
	daemon.ModuleBase = loader.NewModuleBase("gesture", daemon, logger)
	return daemon
}

func init() {
	loader.Register(NewDaemon())
}

func (*Daemon) GetDependencies() []string {
	return []string{}
}

func (d *Daemon) Start() error {
	if d.manager != nil {
		return nil
	}
	service := loader.GetService()
	var err error
	d.manager, err = newManager(service)
	if err != nil {
		logger.Error("failed to initialize gesture manager:", err)
		return err
	}

	err = service.Export(dbusServicePath, d.manager)
	if err != nil {
		logger.Error("failed to export gesture manager:", err)
		return err
	}

	err = service.RequestName(dbusServiceName)
	if err != nil {
		logger.Error("failed to request name:", err)
		d.manager.destroy()
		err1 := service.StopExport(d.manager)
		if err1 != nil {
			logger.Error("failed to StopExport:", err1)
		}
		return err
	}

	// event source acquisition failure is fatal for this module
	err = d.manager.init()
	if err != nil {
		logger.Error("failed to start event source:", err)
		return err
	}

	return nil
}

func (d *Daemon) Stop() error {
	if d.manager == nil {
		return nil
	}

	service := loader.GetService()
	err := service.StopExport(d.manager)
	if err != nil {
		logger.Warning(err)
	}

	err = service.ReleaseName(dbusServiceName)
	if err != nil {
		logger.Warning(err)
	}

	d.manager.destroy()
	d.manager = nil
	return nil
}
