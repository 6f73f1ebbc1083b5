package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/x/term"
	"github.com/ruminaider/autotag/internal/autocomplete"
	"github.com/ruminaider/autotag/internal/catalog"
	"github.com/ruminaider/autotag/internal/paths"
)

// resolveCatalog picks the catalog to use: the configured file, else the only
// file in the catalogs dir, else a prompt when several exist, else the
// built-in sample. It returns the set and a display name.
func resolveCatalog(path, dir string, interactive bool) (autocomplete.CategorySet, string, error) {
	if path != "" {
		set, err := catalog.Load(path)
		if err != nil {
			return autocomplete.CategorySet{}, "", err
		}
		return set, catalog.Name(path), nil
	}

	files, err := catalog.Discover(dir)
	if err != nil {
		return autocomplete.CategorySet{}, "", err
	}

	switch {
	case len(files) == 0:
		return catalog.Sample(), "sample", nil
	case len(files) == 1 || !interactive:
		path = files[0]
	default:
		path, err = promptCatalog(files)
		if err != nil {
			return autocomplete.CategorySet{}, "", err
		}
	}

	set, err := catalog.Load(path)
	if err != nil {
		return autocomplete.CategorySet{}, "", err
	}
	return set, catalog.Name(path), nil
}

// promptCatalog asks which of several catalog files to open.
func promptCatalog(files []string) (string, error) {
	var choice string
	var options []huh.Option[string]
	for _, f := range files {
		options = append(options, huh.NewOption(catalog.Name(f), f))
	}

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which catalog?").
				Description(fmt.Sprintf("Found %d catalogs in %s", len(files), paths.CatalogsDir())).
				Options(options...).
				Value(&choice),
		),
	).Run()
	if err != nil {
		return "", err
	}
	return choice, nil
}

// loadCatalog resolves the catalog from settings for a command.
func loadCatalog() (autocomplete.CategorySet, string, error) {
	return resolveCatalog(settings.Catalog, paths.CatalogsDir(), term.IsTerminal(os.Stdin.Fd()))
}
