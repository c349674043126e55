package pkg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePatternFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "patterns.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadPatterns_ShapesKey(t *testing.T) {
	path := writePatternFile(t, `{
		"shapes": {
			"dot": {"size": {"w": 1, "h": 1}, "cells": [{"x": 0, "y": 0}]}
		}
	}`)

	store, err := LoadPatterns(path)
	require.NoError(t, err)

	shape, ok := store.Lookup("dot")
	require.True(t, ok)
	assert.Equal(t, "dot", shape.Name)
	assert.Equal(t, Size{W: 1, H: 1}, shape.Size)
	assert.Equal(t, []Cell{{X: 0, Y: 0}}, shape.Cells)
}

func TestLoadPatterns_PatternsKey(t *testing.T) {
	path := writePatternFile(t, `{
		"patterns": {
			"pair": {"size": {"w": 2, "h": 1}, "cells": [{"x": 0, "y": 0}, {"x": 1, "y": 0}]}
		}
	}`)

	store, err := LoadPatterns(path)
	require.NoError(t, err)
	assert.Equal(t, 1, store.Len())

	shape, ok := store.Lookup("pair")
	require.True(t, ok)
	assert.Len(t, shape.Cells, 2)
}

func TestLoadPatterns_MissingTopLevelKey(t *testing.T) {
	path := writePatternFile(t, `{"figures": {}}`)

	_, err := LoadPatterns(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing 'shapes' or 'patterns' key")
}

func TestLoadPatterns_ParseFailure(t *testing.T) {
	path := writePatternFile(t, `{"shapes": `)

	_, err := LoadPatterns(path)
	require.Error(t, err)
}

func TestLoadPatterns_MissingFile(t *testing.T) {
	_, err := LoadPatterns(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestPatternStore_NamesAreSortedAndLookupIsTotal(t *testing.T) {
	path := writePatternFile(t, `{
		"shapes": {
			"zebra": {"size": {"w": 1, "h": 1}, "cells": [{"x": 0, "y": 0}]},
			"ant": {"size": {"w": 1, "h": 1}, "cells": [{"x": 1, "y": 1}]},
			"moth": {"size": {"w": 1, "h": 1}, "cells": [{"x": 2, "y": 2}]}
		}
	}`)

	store, err := LoadPatterns(path)
	require.NoError(t, err)

	names := store.Names()
	assert.Equal(t, []string{"ant", "moth", "zebra"}, names)

	for _, name := range names {
		shape, ok := store.Lookup(name)
		require.True(t, ok, "name %q from Names() must resolve", name)
		assert.Equal(t, name, shape.Name)
	}
}

func TestPatternStore_UnknownName(t *testing.T) {
	path := writePatternFile(t, `{
		"shapes": {
			"dot": {"size": {"w": 1, "h": 1}, "cells": [{"x": 0, "y": 0}]}
		}
	}`)

	store, err := LoadPatterns(path)
	require.NoError(t, err)

	_, ok := store.Lookup("spaceship")
	assert.False(t, ok)
}
