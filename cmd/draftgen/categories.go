package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/draftgen/pkg/catalog"
)

func newCategoriesCmd() *cobra.Command {
	var templatesDir string

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List the categories and variants of the active catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			fsys := catalog.DefaultFS()
			if templatesDir != "" {
				fsys = os.DirFS(templatesDir)
			}

			cat, err := catalog.Load(fsys)
			if err != nil {
				return err
			}

			for _, key := range cat.Keys() {
				category, err := cat.Category(key)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", key, category.Name)
				for _, v := range category.Variants {
					fmt.Fprintf(cmd.OutOrStdout(), "  %s\t%s\n", v.Key, v.Label)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&templatesDir, "templates", "", "template directory overriding the embedded catalog")
	return cmd
}
