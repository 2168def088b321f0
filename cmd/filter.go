package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/prism/internal/filter"
	"github.com/papapumpkin/prism/internal/predicate"
	"github.com/papapumpkin/prism/internal/product"
	"github.com/papapumpkin/prism/internal/ui"
)

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Print the products matching the given criteria",
	Long: `Builds a predicate from the --color and --size flags and prints every
matching product as "<name> is <description>". Criteria are combined with
AND unless --any is given. With no criteria every product matches.`,
	Args: cobra.NoArgs,
	RunE: runFilter,
}

func init() {
	filterCmd.Flags().StringSlice("color", nil, "match products of this color: red, green, blue (repeatable)")
	filterCmd.Flags().StringSlice("size", nil, "match products of this size: small, medium, large (repeatable)")
	filterCmd.Flags().Bool("any", false, "match products satisfying any criterion instead of all")
	filterCmd.Flags().Bool("explain", false, "report which criterion rejected each product")
	filterCmd.MarkFlagsMutuallyExclusive("any", "explain")

	rootCmd.AddCommand(filterCmd)
}

// query is the parsed form of the filter command's flags.
type query struct {
	Colors  []string
	Sizes   []string
	AnyOf   bool
	Explain bool
}

func runFilter(cmd *cobra.Command, _ []string) error {
	colors, _ := cmd.Flags().GetStringSlice("color")
	sizes, _ := cmd.Flags().GetStringSlice("size")
	anyOf, _ := cmd.Flags().GetBool("any")
	explain, _ := cmd.Flags().GetBool("explain")

	p, products, err := setup(cmd)
	if err != nil {
		return err
	}
	return runQuery(p, products, query{Colors: colors, Sizes: sizes, AnyOf: anyOf, Explain: explain})
}

func runQuery(p *ui.Printer, products []product.Product, q query) error {
	checks, err := buildChecks(q.Colors, q.Sizes)
	if err != nil {
		return err
	}

	chain := &filter.Chain[product.Product]{Checks: checks}
	var pred predicate.Predicate[product.Product] = chain
	if q.AnyOf && len(checks) > 0 {
		preds := make([]predicate.Predicate[product.Product], len(checks))
		for i, c := range checks {
			preds[i] = c.Predicate
		}
		pred = predicate.Any(preds...)
	}

	matched := filter.Apply(products, pred)
	desc := predicate.Describe(pred)
	p.Pass(desc, len(matched), len(products))

	if q.Explain {
		for _, item := range products {
			p.Explain(item, chain.Run(item))
		}
	}
	p.Matches(matched, desc)
	return nil
}

// buildChecks parses color and size names into named checks, colors first.
func buildChecks(colors, sizes []string) ([]filter.Check[product.Product], error) {
	checks := make([]filter.Check[product.Product], 0, len(colors)+len(sizes))
	for _, name := range colors {
		c, err := product.ParseColor(name)
		if err != nil {
			return nil, fmt.Errorf("--color: %w", err)
		}
		checks = append(checks, filter.NewCheck[product.Product](product.ColorIs{Color: c}))
	}
	for _, name := range sizes {
		s, err := product.ParseSize(name)
		if err != nil {
			return nil, fmt.Errorf("--size: %w", err)
		}
		checks = append(checks, filter.NewCheck[product.Product](product.SizeIs{Size: s}))
	}
	return checks, nil
}
