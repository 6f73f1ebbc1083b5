package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/dustin/go-humanize"
	"github.com/ruminaider/autotag/internal/autocomplete"
	"go.yaml.in/yaml/v3"
)

// formatSelection renders the selected options in the given output format.
func formatSelection(format string, selected []string) ([]byte, error) {
	if selected == nil {
		selected = []string{}
	}
	switch format {
	case "lines", "":
		if len(selected) == 0 {
			return nil, nil
		}
		return []byte(strings.Join(selected, "\n") + "\n"), nil
	case "yaml":
		return yaml.Marshal(map[string][]string{"selected": selected})
	case "json":
		data, err := json.Marshal(map[string][]string{"selected": selected})
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// copySelection puts the selection on the system clipboard, one per line.
func copySelection(selected []string) error {
	if err := clipboard.WriteAll(strings.Join(selected, "\n")); err != nil {
		return fmt.Errorf("copying to clipboard: %w", err)
	}
	return nil
}

// writeFiltered prints every category with the options matching query.
func writeFiltered(w io.Writer, view autocomplete.FilteredView) {
	for _, cat := range view {
		fmt.Fprintf(w, "%s (%d)\n", cat.Name, len(cat.Options))
		for _, opt := range cat.Options {
			fmt.Fprintf(w, "  %s\n", opt)
		}
	}
}

// writeCategories prints category names with their option counts.
func writeCategories(w io.Writer, name string, set autocomplete.CategorySet) {
	fmt.Fprintf(w, "Catalog: %s\n", name)
	for _, c := range set.Categories() {
		fmt.Fprintf(w, "  %-20s %s option(s)\n", c.Name, humanize.Comma(int64(len(c.Options))))
	}
	fmt.Fprintf(w, "%s categories · %s options\n",
		humanize.Comma(int64(set.Len())), humanize.Comma(int64(set.OptionCount())))
}
