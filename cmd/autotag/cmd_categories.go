package main

import "github.com/spf13/cobra"

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the catalog's categories and option counts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		set, name, err := loadCatalog()
		if err != nil {
			return err
		}
		writeCategories(cmd.OutOrStdout(), name, set)
		return nil
	},
}
