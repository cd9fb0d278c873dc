// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The pkl-swift Authors

package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalarTable(t *testing.T) {
	entries := ScalarTable()
	require.NotEmpty(t, entries)

	bySource := make(map[string]string, len(entries))
	for i, entry := range entries {
		bySource[entry.Source] = entry.Target
		if i > 0 {
			assert.Less(t, entries[i-1].Source, entry.Source, "entries must be sorted")
		}
	}

	assert.Equal(t, "Int", bySource["Int"])
	assert.Equal(t, "Never?", bySource["Null"])
	assert.Equal(t, "PklSwift.Duration", bySource["Duration"])
	assert.Equal(t, "PklSwift.Object", bySource["Dynamic"])
}

func TestGenericTable(t *testing.T) {
	entries := GenericTable()
	require.Len(t, entries, len(genericTargets))

	bySource := make(map[string]string, len(entries))
	for _, entry := range entries {
		bySource[entry.Source] = entry.Target
	}
	// Both spellings of each container map identically.
	assert.Equal(t, bySource["List<Element>"], bySource["Listing<Element>"])
	assert.Equal(t, bySource["Map<Key, Element>"], bySource["Mapping<Key, Element>"])
}
