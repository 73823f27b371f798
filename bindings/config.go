// SPDX-FileCopyrightText: 2024 gesturebind Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package bindings

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/linuxdeepin/go-lib/utils"
	"github.com/linuxdeepin/go-lib/xdg/basedir"
	"golang.org/x/xerrors"
)

const presetsFileSuffix = "gesturebind/commands.json"

var (
	presetsUserPath      = filepath.Join(basedir.GetUserConfigDir(), presetsFileSuffix)
	presetsSystemPath, _ = xdg.SearchDataFile(presetsFileSuffix)
)

// PresetsFile returns the preset catalog file in effect: the user config
// takes precedence over the system one. Empty when neither exists.
func PresetsFile() string {
	if utils.IsFileExist(presetsUserPath) {
		return presetsUserPath
	}
	return presetsSystemPath
}

// loadPresetsFile reads a JSON array of command strings.
func loadPresetsFile(filename string) ([]string, error) {
	content, err := os.ReadFile(filepath.Clean(filename))
	if err != nil {
		return nil, err
	}
	if len(content) == 0 {
		return nil, xerrors.Errorf("file %q is empty", filename)
	}

	var presets []string
	err = json.Unmarshal(content, &presets)
	if err != nil {
		return nil, xerrors.Errorf("unmarshal %q: %w", filename, err)
	}
	return presets, nil
}

// LoadPresets reads the preset catalog, falling back to the compiled-in
// list when no file exists or the file is unusable.
func LoadPresets() []string {
	filename := PresetsFile()
	if filename == "" {
		return DefaultPresets()
	}
	presets, err := loadPresetsFile(filename)
	if err != nil {
		logger.Warningf("failed to load %q: %v, using defaults", filename, err)
		return DefaultPresets()
	}
	return presets
}
