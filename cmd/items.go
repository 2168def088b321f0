package cmd

import (
	"github.com/spf13/cobra"
)

var itemsCmd = &cobra.Command{
	Use:   "items",
	Short: "List the products in the catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		p, products, err := setup(cmd)
		if err != nil {
			return err
		}
		p.Items(products)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(itemsCmd)
}
