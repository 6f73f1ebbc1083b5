package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
	"github.com/ruminaider/autotag/cmd/autotag/tui"
	"github.com/ruminaider/autotag/internal/logging"
	"github.com/spf13/cobra"
)

func runPicker(cmd *cobra.Command, args []string) error {
	// TTY guard: without a terminal there is nothing to interact with, so
	// describe the catalog instead.
	if !term.IsTerminal(os.Stdin.Fd()) {
		return categoriesCmd.RunE(cmd, args)
	}

	logger, err := logging.NewLogger(settings.Log.File, settings.Log.Level)
	if err != nil {
		return err
	}
	defer logger.Close()

	set, name, err := loadCatalog()
	if err != nil {
		return err
	}
	logger.Info("catalog loaded", "catalog", name, "categories", set.Len(), "options", set.OptionCount())

	model := tui.NewModel(set, tui.Options{
		Placeholder: settings.UI.Placeholder,
		PanelGap:    settings.UI.PanelGap,
		Theme:       settings.UI.Theme,
		Width:       settings.UI.Width,
		Logger:      logger.With("catalog", name),
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("running picker: %w", err)
	}

	result := finalModel.(tui.Model)
	if !result.Confirmed() {
		logger.Info("picker cancelled")
		return nil
	}

	selected := result.Selected()
	out, err := formatSelection(settings.Output.Format, selected)
	if err != nil {
		return err
	}
	if _, err := cmd.OutOrStdout().Write(out); err != nil {
		return err
	}

	if settings.Output.Copy && len(selected) > 0 {
		if err := copySelection(selected); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			logger.Warn("clipboard copy failed", "error", err)
		}
	}
	return nil
}
