package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/ruminaider/autotag/internal/autocomplete"
	"github.com/ruminaider/autotag/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatSelection(t *testing.T) {
	selected := []string{"Painter", "best_painter"}

	tests := []struct {
		format   string
		selected []string
		expected string
	}{
		{"lines", selected, "Painter\nbest_painter\n"},
		{"lines", nil, ""},
		{"yaml", selected, "selected:\n    - Painter\n    - best_painter\n"},
		{"yaml", nil, "selected: []\n"},
		{"json", selected, `{"selected":["Painter","best_painter"]}` + "\n"},
		{"json", nil, `{"selected":[]}` + "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			out, err := formatSelection(tt.format, tt.selected)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(out))
		})
	}

	_, err := formatSelection("xml", selected)
	assert.Error(t, err)
}

func TestWriteFiltered(t *testing.T) {
	var buf bytes.Buffer
	writeFiltered(&buf, autocomplete.Filter(catalog.Sample(), "painter"))

	assert.Equal(t, `usernames (1)
  best_painter
categories (2)
  Painter
  Car Painter
`, buf.String())
}

func TestWriteCategories(t *testing.T) {
	var buf bytes.Buffer
	writeCategories(&buf, "sample", catalog.Sample())

	out := buf.String()
	assert.Contains(t, out, "Catalog: sample")
	assert.Contains(t, out, "usernames")
	assert.Contains(t, out, "2 categories · 6 options")
}

func TestResolveCatalog(t *testing.T) {
	t.Run("explicit file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "trades.yaml")
		require.NoError(t, os.WriteFile(path, []byte("trades: [Plumber]\n"), 0644))

		set, name, err := resolveCatalog(path, t.TempDir(), false)
		require.NoError(t, err)
		assert.Equal(t, "trades", name)
		assert.Equal(t, []string{"trades"}, set.Keys())
	})

	t.Run("explicit missing file", func(t *testing.T) {
		_, _, err := resolveCatalog(filepath.Join(t.TempDir(), "nope.yaml"), "", false)
		assert.Error(t, err)
	})

	t.Run("empty dir falls back to sample", func(t *testing.T) {
		set, name, err := resolveCatalog("", t.TempDir(), false)
		require.NoError(t, err)
		assert.Equal(t, "sample", name)
		assert.Equal(t, catalog.Sample().Keys(), set.Keys())
	})

	t.Run("single file in dir", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "tools.yml"), []byte("tools: [hammer]\n"), 0644))

		set, name, err := resolveCatalog("", dir, true)
		require.NoError(t, err)
		assert.Equal(t, "tools", name)
		assert.Equal(t, []string{"hammer"}, set.Options("tools"))
	})

	t.Run("several files without a terminal take the first", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "b.yaml"), []byte("b: [x]\n"), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "a.yaml"), []byte("a: [y]\n"), 0644))

		_, name, err := resolveCatalog("", dir, false)
		require.NoError(t, err)
		assert.Equal(t, "a", name)
	})
}

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	versionCmd.SetOut(&buf)
	versionCmd.Run(versionCmd, nil)
	assert.Equal(t, "autotag "+version+"\n", buf.String())
}
