// SPDX-FileCopyrightText: 2024 gesturebind Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package bindings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_CatalogOrder(t *testing.T) {
	catalog := NewCatalog(DefaultPresets())
	all := catalog.All()
	assert.Equal(t, SentinelCommand, all[0])
	assert.Equal(t, DefaultPresets(), all)

	assert.True(t, catalog.AddCustom("firefox"))
	assert.True(t, catalog.AddCustom("mpv ~/video.mkv"))
	all = catalog.All()
	assert.Equal(t, "firefox", all[len(all)-2])
	assert.Equal(t, "mpv ~/video.mkv", all[len(all)-1])
}

func Test_AddCustomDedup(t *testing.T) {
	catalog := NewCatalog(DefaultPresets())
	before := len(catalog.All())

	assert.True(t, catalog.AddCustom("firefox"))
	// identical input again changes nothing
	assert.False(t, catalog.AddCustom("firefox"))
	assert.Equal(t, before+1, len(catalog.All()))

	// empty input is a no-op
	assert.False(t, catalog.AddCustom(""))
	// a command already present as a preset is a duplicate too
	assert.False(t, catalog.AddCustom("gnome-terminal"))
	assert.Equal(t, before+1, len(catalog.All()))
}

func Test_RemoveCustom(t *testing.T) {
	catalog := NewCatalog(DefaultPresets())
	catalog.AddCustom("firefox")

	assert.True(t, catalog.RemoveCustom("firefox"))
	assert.False(t, catalog.Contains("firefox"))
	assert.False(t, catalog.RemoveCustom("firefox"))

	// presets cannot be removed
	assert.False(t, catalog.RemoveCustom("gnome-terminal"))
	assert.True(t, catalog.Contains("gnome-terminal"))
}

func Test_SetPresets(t *testing.T) {
	catalog := NewCatalog(DefaultPresets())
	catalog.AddCustom("firefox")
	catalog.AddCustom("mpv")

	catalog.SetPresets([]string{SentinelCommand, "firefox", "xterm"})
	all := catalog.All()
	// the custom entry shadowed by the new preset is dropped, mpv stays
	assert.Equal(t, []string{SentinelCommand, "firefox", "xterm", "mpv"}, all)
}

func Test_NormalizePresets(t *testing.T) {
	// sentinel is forced to the front, empties and duplicates dropped
	assert.Equal(t, []string{SentinelCommand, "a", "b"},
		normalizePresets([]string{"a", "", "b", "a", SentinelCommand}))
	assert.Equal(t, []string{SentinelCommand}, normalizePresets(nil))
}
