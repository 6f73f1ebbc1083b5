package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ruminaider/autotag/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load(config.New(), "", false)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.yaml")

	_, err := config.Load(config.New(), missing, false)
	assert.NoError(t, err)

	_, err = config.Load(config.New(), missing, true)
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `catalog: /srv/trades.yaml
ui:
  placeholder: "Pick trades..."
  panel_gap: 2
  theme: latte
output:
  format: yaml
  copy: true
log:
  level: debug
  file: /tmp/autotag.log
`)
	cfg, err := config.Load(config.New(), path, true)
	require.NoError(t, err)

	assert.Equal(t, "/srv/trades.yaml", cfg.Catalog)
	assert.Equal(t, "Pick trades...", cfg.UI.Placeholder)
	assert.Equal(t, 2, cfg.UI.PanelGap)
	assert.Equal(t, "latte", cfg.UI.Theme)
	assert.Equal(t, "yaml", cfg.Output.Format)
	assert.True(t, cfg.Output.Copy)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/autotag.log", cfg.Log.File)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "output:\n  format: yaml\n")
	t.Setenv("AUTOTAG_OUTPUT_FORMAT", "json")

	cfg, err := config.Load(config.New(), path, true)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output.Format)
}

func TestLoadSetOverridesAll(t *testing.T) {
	v := config.New()
	v.Set("ui.theme", "frappe")

	cfg, err := config.Load(v, writeConfig(t, "ui:\n  theme: latte\n"), true)
	require.NoError(t, err)
	assert.Equal(t, "frappe", cfg.UI.Theme)
}

func TestLoadInvalid(t *testing.T) {
	path := writeConfig(t, `ui:
  theme: neon
  panel_gap: -1
output:
  format: xml
log:
  level: trace
`)
	_, err := config.Load(config.New(), path, true)
	require.Error(t, err)

	var verrs config.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Len(t, verrs, 4)
	assert.Contains(t, err.Error(), "4 validation errors")
	assert.Contains(t, err.Error(), "ui.theme")
}

func TestValidationErrorsSingle(t *testing.T) {
	cfg := config.Default()
	cfg.UI.Width = -3

	errs := cfg.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, "ui.width: must not be negative (got: -3)", errs.Error())
}
