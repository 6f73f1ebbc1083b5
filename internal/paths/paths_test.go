package paths_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ruminaider/autotag/internal/paths"
	"github.com/stretchr/testify/assert"
)

func TestConfigDir(t *testing.T) {
	t.Run("xdg", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
		assert.Equal(t, filepath.Join("/tmp/xdg", "autotag"), paths.ConfigDir())
	})

	t.Run("home fallback", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		home, _ := os.UserHomeDir()
		assert.True(t, strings.HasPrefix(paths.ConfigDir(), home))
		assert.True(t, strings.HasSuffix(paths.ConfigDir(), filepath.Join(".config", "autotag")))
	})
}

func TestConfigFile(t *testing.T) {
	assert.True(t, strings.HasSuffix(paths.ConfigFile(), "config.yaml"))
}

func TestCatalogsDir(t *testing.T) {
	assert.True(t, strings.HasSuffix(paths.CatalogsDir(), "catalogs"))
}
