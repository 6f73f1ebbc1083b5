package paths

import (
	"os"
	"path/filepath"
)

func home() string {
	h, _ := os.UserHomeDir()
	return h
}

// ConfigDir returns $XDG_CONFIG_HOME/autotag, or ~/.config/autotag.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "autotag")
	}
	return filepath.Join(home(), ".config", "autotag")
}

// ConfigFile returns the settings file inside ConfigDir.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// CatalogsDir returns the directory searched for catalog files.
func CatalogsDir() string {
	return filepath.Join(ConfigDir(), "catalogs")
}
