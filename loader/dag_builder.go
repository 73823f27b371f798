// SPDX-FileCopyrightText: 2024 gesturebind Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package loader

import (
	"github.com/linuxdeepin/go-lib/log"
)

// DAGBuilder resolves the requested modules plus their transitive
// dependencies into a start order.
type DAGBuilder struct {
	modules         Modules
	enablingModules []string
	disableModules  map[string]struct{}
	flag            EnableFlag

	log *log.Logger
}

func NewDAGBuilder(loader *Loader, enablingModules []string, disableModules []string, flag EnableFlag) *DAGBuilder {
	disableModulesMap := map[string]struct{}{}
	for _, name := range disableModules {
		if _, ok := loader.modules[name]; !ok {
			loader.log.Warningf("disabled module(%s) does not exist", name)
			continue
		}
		disableModulesMap[name] = struct{}{}
	}

	return &DAGBuilder{
		modules:         loader.modules,
		enablingModules: enablingModules,
		disableModules:  disableModulesMap,
		flag:            flag,
		log:             loader.log,
	}
}

// collect walks the dependency closure of the enabling set.
func (builder *DAGBuilder) collect() (map[string][]string, error) {
	deps := make(map[string][]string)
	queue := append([]string{}, builder.enablingModules...)
	for len(queue) != 0 {
		name := queue[0]
		queue = queue[1:]
		if _, seen := deps[name]; seen {
			continue
		}

		module, ok := builder.modules[name]
		if !ok {
			if builder.flag.HasFlag(EnableFlagIgnoreMissingModule) {
				builder.log.Info("no such a module named", name)
				continue
			}
			return nil, &EnableError{ModuleName: name, Code: ErrorMissingModule}
		}
		if _, ok := builder.disableModules[name]; ok {
			if !builder.flag.HasFlag(EnableFlagForceStart) {
				return nil, &EnableError{ModuleName: name, Code: ErrorConflict}
			}
		}

		dependencies := module.GetDependencies()
		deps[name] = dependencies
		queue = append(queue, dependencies...)
	}
	return deps, nil
}

// Execute returns the module names in dependency order, dependencies first.
func (builder *DAGBuilder) Execute() ([]string, error) {
	deps, err := builder.collect()
	if err != nil {
		return nil, err
	}

	indegree := make(map[string]int, len(deps))
	dependents := make(map[string][]string, len(deps))
	for name, dependencies := range deps {
		if _, ok := indegree[name]; !ok {
			indegree[name] = 0
		}
		for _, dep := range dependencies {
			if _, ok := deps[dep]; !ok {
				// missing and ignored, do not block on it
				continue
			}
			indegree[name]++
			dependents[dep] = append(dependents[dep], name)
		}
	}

	var order []string
	var ready []string
	for name, n := range indegree {
		if n == 0 {
			ready = append(ready, name)
		}
	}
	for len(ready) != 0 {
		name := ready[0]
		ready = ready[1:]
		order = append(order, name)
		for _, dependent := range dependents[name] {
			indegree[dependent]--
			if indegree[dependent] == 0 {
				ready = append(ready, dependent)
			}
		}
	}

	if len(order) != len(indegree) {
		return nil, &EnableError{Code: ErrorCircleDependencies}
	}
	return order, nil
}
