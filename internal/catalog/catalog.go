// Package catalog reads category sets from YAML or JSON documents.
//
// A catalog is a single top-level mapping from category name to a list of
// option strings:
//
//	usernames:
//	  - best_painter
//	  - electrician
//	categories: [Painter, Carpenter]
//
// Category order follows the document.
package catalog

import (
	"errors"
	"fmt"
	"os"

	"github.com/ruminaider/autotag/internal/autocomplete"
	"go.yaml.in/yaml/v3"
)

var (
	// ErrNotMapping is returned when the document root is not a mapping.
	ErrNotMapping = errors.New("catalog root must be a mapping of category to options")
	// ErrEmptyCategoryName is returned for a blank category key.
	ErrEmptyCategoryName = errors.New("category name is empty")
	// ErrDuplicateCategory is returned when a category name appears twice.
	ErrDuplicateCategory = errors.New("duplicate category")
)

// Parse parses catalog bytes into a CategorySet.
func Parse(data []byte) (autocomplete.CategorySet, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return autocomplete.CategorySet{}, fmt.Errorf("parsing catalog: %w", err)
	}
	if doc.Kind == 0 {
		// Empty document.
		return autocomplete.NewCategorySet(), nil
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) == 1 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return autocomplete.CategorySet{}, ErrNotMapping
	}

	seen := make(map[string]bool, len(root.Content)/2)
	categories := make([]autocomplete.Category, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valNode := root.Content[i], root.Content[i+1]

		name := keyNode.Value
		if name == "" {
			return autocomplete.CategorySet{}, fmt.Errorf("line %d: %w", keyNode.Line, ErrEmptyCategoryName)
		}
		if seen[name] {
			return autocomplete.CategorySet{}, fmt.Errorf("line %d: %w %q", keyNode.Line, ErrDuplicateCategory, name)
		}
		seen[name] = true

		var options []string
		if err := valNode.Decode(&options); err != nil {
			return autocomplete.CategorySet{}, fmt.Errorf("category %q: %w", name, err)
		}
		categories = append(categories, autocomplete.Category{Name: name, Options: options})
	}

	return autocomplete.NewCategorySet(categories...), nil
}

// Load reads and parses the catalog file at path.
func Load(path string) (autocomplete.CategorySet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return autocomplete.CategorySet{}, fmt.Errorf("reading catalog: %w", err)
	}
	set, err := Parse(data)
	if err != nil {
		return autocomplete.CategorySet{}, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}

// Marshal serializes a CategorySet back to YAML, keeping category order.
func Marshal(set autocomplete.CategorySet) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, c := range set.Categories() {
		var val yaml.Node
		if err := val.Encode(c.Options); err != nil {
			return nil, fmt.Errorf("encoding category %q: %w", c.Name, err)
		}
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: c.Name},
			&val,
		)
	}
	return yaml.Marshal(root)
}

// Sample returns the built-in demo catalog.
func Sample() autocomplete.CategorySet {
	return autocomplete.NewCategorySet(
		autocomplete.Category{Name: "usernames", Options: []string{"best_painter", "no_1_car_mechanic", "electrician"}},
		autocomplete.Category{Name: "categories", Options: []string{"Painter", "Carpenter", "Car Painter"}},
	)
}
