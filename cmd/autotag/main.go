package main

import (
	"fmt"
	"os"

	"github.com/ruminaider/autotag/internal/config"
	"github.com/ruminaider/autotag/internal/paths"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

var (
	v          = config.New()
	settings   = config.Default()
	configFile string
)

var rootCmd = &cobra.Command{
	Use:   "autotag",
	Short: "Pick multiple options from categorized lists",
	Long: "autotag shows a multi-select autocomplete input over a catalog of categories. " +
		"Type to filter, click options to add them as tags, and press Enter to print the selection.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		file, required := configFile, true
		if file == "" {
			file, required = paths.ConfigFile(), false
		}
		cfg, err := config.Load(v, file, required)
		if err != nil {
			return err
		}
		settings = cfg
		return nil
	},
	RunE: runPicker,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "autotag %s\n", version)
	},
}

func bindFlag(key, flag string) {
	f := rootCmd.PersistentFlags().Lookup(flag)
	if f == nil {
		f = rootCmd.Flags().Lookup(flag)
	}
	if err := v.BindPFlag(key, f); err != nil {
		panic(err)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "settings file (default "+paths.ConfigFile()+")")
	pf.String("catalog", "", "catalog file mapping category names to option lists")
	pf.String("log-file", "", "write JSON debug logs to this file")
	pf.String("log-level", "INFO", "log level: DEBUG, INFO, WARN, ERROR")

	f := rootCmd.Flags()
	f.String("theme", "mocha", "color theme: latte, frappe, macchiato, mocha")
	f.StringP("output", "o", "lines", "selection output format: lines, yaml, json")
	f.Bool("copy", false, "also copy the confirmed selection to the clipboard")
	f.Int("width", 0, "widget width in cells (0 follows the terminal)")

	bindFlag("catalog", "catalog")
	bindFlag("log.file", "log-file")
	bindFlag("log.level", "log-level")
	bindFlag("ui.theme", "theme")
	bindFlag("output.format", "output")
	bindFlag("output.copy", "copy")
	bindFlag("ui.width", "width")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(filterCmd)
	rootCmd.AddCommand(categoriesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
