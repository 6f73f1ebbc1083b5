package main

import (
	"github.com/ruminaider/autotag/internal/autocomplete"
	"github.com/spf13/cobra"
)

var filterCmd = &cobra.Command{
	Use:   "filter [query]",
	Short: "Print the options matching a query, per category",
	Long:  "Matches are case-insensitive substrings. An empty query prints every option.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		set, _, err := loadCatalog()
		if err != nil {
			return err
		}
		query := ""
		if len(args) == 1 {
			query = args[0]
		}
		writeFiltered(cmd.OutOrStdout(), autocomplete.Filter(set, query))
		return nil
	},
}
