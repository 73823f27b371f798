// SPDX-FileCopyrightText: 2024 gesturebind Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/linuxdeepin/go-lib/dbusutil"
	"github.com/linuxdeepin/go-lib/log"

	"github.com/gesturebind/gesturebind/loader"

	// modules:
	_ "github.com/gesturebind/gesturebind/gesture"
)

var logger = log.NewLogger("daemon/gesturebind")

var _options struct {
	verbose  bool
	logLevel string
	enable   string
	disable  string
	ignore   bool
	force    bool

	enablingModules []string
	disableModules  []string
}

func toLogLevel(name string) (log.Priority, error) {
	name = strings.ToLower(name)
	logLevel := log.LevelInfo
	var err error
	switch name {
	case "":
		logLevel = log.LevelInfo
	case "error":
		logLevel = log.LevelError
	case "warn":
		logLevel = log.LevelWarning
	case "info":
		logLevel = log.LevelInfo
	case "debug":
		logLevel = log.LevelDebug
	case "no":
		logLevel = log.LevelDisable
	default:
		err = fmt.Errorf("%s is not support", name)
	}

	return logLevel, err
}

func init() {
	// -v | -verbose
	const verboseUsage = "Show much more message, shorthand for --loglevel debug."
	flag.BoolVar(&_options.verbose, "v", false, verboseUsage)
	flag.BoolVar(&_options.verbose, "verbose", false, verboseUsage)

	// -l | -loglevel
	const logLevelUsage = "Set log level, possible value is error/warn/info/debug/no, info is default"
	flag.StringVar(&_options.logLevel, "l", "", logLevelUsage)
	flag.StringVar(&_options.logLevel, "loglevel", "", logLevelUsage)

	// -f | -force
	const forceUsage = "Force start disabled module."
	flag.BoolVar(&_options.force, "f", false, forceUsage)
	flag.BoolVar(&_options.force, "force", false, forceUsage)

	// -i | -ignore
	const ignoreUsage = "Ignore missing modules."
	flag.BoolVar(&_options.ignore, "i", true, ignoreUsage)
	flag.BoolVar(&_options.ignore, "ignore", true, ignoreUsage)

	// -enable
	flag.StringVar(&_options.enable, "enable", "",
		"Enable modules and their dependencies, ignore settings.")

	// -disable
	flag.StringVar(&_options.disable, "disable", "", "Disable modules, ignore settings.")
}

func main() {
	flag.Parse()

	if _options.verbose {
		_options.logLevel = "debug"
	}

	logLevel, err := toLogLevel(_options.logLevel)
	if err != nil {
		logger.Warning("failed to parse loglevel:", err)
		os.Exit(1)
	}

	if _options.enable != "" {
		_options.enablingModules = strings.Split(_options.enable, ",")
	}
	if _options.disable != "" {
		_options.disableModules = strings.Split(_options.disable, ",")
	}

	service, err := dbusutil.NewSessionService()
	if err != nil {
		logger.Fatal("failed to connect session bus:", err)
	}

	loader.SetService(service)
	loader.SetLogLevel(logLevel)

	var flags loader.EnableFlag
	if _options.ignore {
		flags |= loader.EnableFlagIgnoreMissingModule
	}
	if _options.force {
		flags |= loader.EnableFlagForceStart
	}

	enablingModules := _options.enablingModules
	if len(enablingModules) == 0 {
		for _, module := range loader.List() {
			enablingModules = append(enablingModules, module.Name())
		}
	}

	err = loader.EnableModules(enablingModules, _options.disableModules, flags)
	if err != nil {
		// a dead event source means a dead daemon, bail out
		logger.Error("failed to enable modules:", err)
		os.Exit(1)
	}

	service.Wait()
}
