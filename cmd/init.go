package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/prism/internal/catalog"
)

// defaultCatalogPath is where init writes when no path is given.
const defaultCatalogPath = "products.toml"

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the sample products as a starter catalog",
	Long: `Writes the built-in sample products to a TOML catalog file (default
products.toml) that can be edited and passed back with --catalog. An existing
file is left untouched unless --force is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	initCmd.Flags().Bool("force", false, "overwrite an existing catalog")

	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	path := defaultCatalogPath
	if len(args) == 1 {
		path = args[0]
	}
	force, _ := cmd.Flags().GetBool("force")

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("catalog %s already exists (use --force to overwrite)", path)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("checking %s: %w", path, err)
	}

	if err := catalog.Save(path, catalog.Sample()); err != nil {
		return err
	}

	// Print the catalog path to stdout (structured output).
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
