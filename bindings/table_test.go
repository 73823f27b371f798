// SPDX-FileCopyrightText: 2024 gesturebind Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package bindings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_BindLookupUnbind(t *testing.T) {
	table := NewTable()
	key := Key{Fingers: 3, Direction: "up"}

	_, ok := table.Lookup(key)
	assert.False(t, ok)

	table.Bind(key, "cmdA")
	command, ok := table.Lookup(key)
	assert.True(t, ok)
	assert.Equal(t, "cmdA", command)

	// bind overwrites
	table.Bind(key, "cmdB")
	command, _ = table.Lookup(key)
	assert.Equal(t, "cmdB", command)

	table.Unbind(key)
	_, ok = table.Lookup(key)
	assert.False(t, ok)

	// unbinding an absent key is a no-op, not an error
	table.Unbind(key)
	assert.Equal(t, 0, table.Len())
}

func Test_Prune(t *testing.T) {
	table := NewTable()
	table.Bind(Key{3, "up"}, "cmdA")
	table.Bind(Key{3, "down"}, "cmdB")
	table.Bind(Key{4, "left"}, "cmdA")
	table.Bind(Key{4, "right"}, "cmdC")

	removed := table.Prune([]string{"cmdA", "cmdC"})
	assert.Equal(t, 1, removed)
	assert.Equal(t, 3, table.Len())

	_, ok := table.Lookup(Key{3, "down"})
	assert.False(t, ok)
	command, _ := table.Lookup(Key{3, "up"})
	assert.Equal(t, "cmdA", command)
	command, _ = table.Lookup(Key{4, "left"})
	assert.Equal(t, "cmdA", command)
	command, _ = table.Lookup(Key{4, "right"})
	assert.Equal(t, "cmdC", command)

	// idempotent
	removed = table.Prune([]string{"cmdA", "cmdC"})
	assert.Equal(t, 0, removed)
	assert.Equal(t, 3, table.Len())
}

func Test_TableAll(t *testing.T) {
	table := NewTable()
	table.Bind(Key{3, "up"}, "cmdA")

	all := table.All()
	assert.Equal(t, map[Key]string{{3, "up"}: "cmdA"}, all)

	// All returns a copy, not the live map
	all[Key{4, "down"}] = "cmdB"
	assert.Equal(t, 1, table.Len())
}
