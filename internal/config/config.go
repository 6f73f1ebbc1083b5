// Package config loads autotag settings from defaults, an optional YAML
// file, AUTOTAG_* environment variables and command-line flags, in that order
// of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config is the full set of user settings.
type Config struct {
	Catalog string       `mapstructure:"catalog"`
	UI      UIConfig     `mapstructure:"ui"`
	Log     LogConfig    `mapstructure:"log"`
	Output  OutputConfig `mapstructure:"output"`
}

// UIConfig controls the interactive widget.
type UIConfig struct {
	Placeholder string `mapstructure:"placeholder"`
	PanelGap    int    `mapstructure:"panel_gap"` // rows between input and panel
	Theme       string `mapstructure:"theme"`     // catppuccin flavor
	Width       int    `mapstructure:"width"`     // 0 = terminal width
}

// LogConfig controls the debug log.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// OutputConfig controls how a confirmed selection is emitted.
type OutputConfig struct {
	Format string `mapstructure:"format"`
	Copy   bool   `mapstructure:"copy"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		UI: UIConfig{
			Placeholder: "Select options...",
			PanelGap:    1,
			Theme:       "mocha",
		},
		Log: LogConfig{
			Level: "INFO",
		},
		Output: OutputConfig{
			Format: "lines",
		},
	}
}

// New returns a viper instance with defaults and environment lookup set up.
func New() *viper.Viper {
	v := viper.New()
	d := Default()

	v.SetDefault("catalog", d.Catalog)
	v.SetDefault("ui.placeholder", d.UI.Placeholder)
	v.SetDefault("ui.panel_gap", d.UI.PanelGap)
	v.SetDefault("ui.theme", d.UI.Theme)
	v.SetDefault("ui.width", d.UI.Width)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("output.copy", d.Output.Copy)

	v.SetEnvPrefix("AUTOTAG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads file into v (if it exists), then unmarshals and validates. When
// required is true a missing file is an error.
func Load(v *viper.Viper, file string, required bool) (*Config, error) {
	if file != "" {
		_, err := os.Stat(file)
		switch {
		case err == nil:
			v.SetConfigFile(file)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		case errors.Is(err, os.ErrNotExist) && !required:
		default:
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, errs
	}
	return &cfg, nil
}
