package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/papapumpkin/prism/internal/catalog"
	"github.com/papapumpkin/prism/internal/config"
	"github.com/papapumpkin/prism/internal/filter"
	"github.com/papapumpkin/prism/internal/predicate"
	"github.com/papapumpkin/prism/internal/product"
	"github.com/papapumpkin/prism/internal/ui"
)

var rootCmd = &cobra.Command{
	Use:   "prism",
	Short: "Filter products with composable predicates",
	Long: `Prism selects products by composing small predicates. Run without a
subcommand to see the demonstration passes: green things, large things, and
things that are both.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRootDefault,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

// reportError prints err as a styled error line on w.
func reportError(w io.Writer, err error) {
	ui.New(io.Discard, w, false).Error(err.Error())
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .prism.yaml)")
	rootCmd.PersistentFlags().String("catalog", "", "TOML product catalog (default: built-in sample)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")

	bindFlags()
}

// bindFlags connects the root's persistent flags to their viper keys.
func bindFlags() {
	_ = viper.BindPFlag("catalog", rootCmd.PersistentFlags().Lookup("catalog"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".prism")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("PRISM")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

// setup loads configuration and the configured catalog, and returns a
// printer bound to the command's writers.
func setup(cmd *cobra.Command) (*ui.Printer, []product.Product, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	p := ui.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg.Verbose)

	products, err := catalog.Load(cfg.Catalog)
	if err != nil {
		return nil, nil, err
	}
	if cfg.Catalog != "" {
		p.Info(fmt.Sprintf("loaded %d product(s) from %s", len(products), cfg.Catalog))
	}
	return p, products, nil
}

func runRootDefault(cmd *cobra.Command, _ []string) error {
	p, products, err := setup(cmd)
	if err != nil {
		return err
	}
	runDemo(p, products)
	return nil
}

// runDemo filters products by color, by size, and by both, printing each
// pass with the predicate's own description.
func runDemo(p *ui.Printer, products []product.Product) {
	var f filter.Filter[product.Product] = filter.Linear[product.Product]{}

	green := product.ColorIs{Color: product.Green}
	large := product.SizeIs{Size: product.Large}

	passes := []predicate.Predicate[product.Product]{
		green,
		large,
		predicate.And[product.Product](green, large),
	}
	for _, pred := range passes {
		matched := f.Filter(products, pred)
		desc := predicate.Describe(pred)
		p.Pass(desc, len(matched), len(products))
		p.Matches(matched, desc)
	}
}
