package main

import (
	"fmt"

	"github.com/sandevgo/factbot/internal/catalog"
	"github.com/sandevgo/factbot/internal/config"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Validate and print the fact catalog",
	Long:  `Loads the configured catalog (or the embedded default), runs the startup validation and prints every category with its fact count.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		appCfg := config.NewAppConfig(ctx)

		cat, err := catalog.Load(appCfg.GetCatalogPath())
		if err != nil {
			return err
		}

		for _, c := range cat.Content {
			fmt.Printf("%s (%s): %d facts\n", c.Label, c.ID, len(c.Facts))
		}
		fmt.Printf("%s (%s): %d facts\n", cat.Cats.Label, catalog.CatsID, len(cat.Cats.Facts))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}
