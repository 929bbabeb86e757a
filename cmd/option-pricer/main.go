package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lsmc/option-pricer/internal/config"
	"github.com/lsmc/option-pricer/internal/domain"
	"github.com/lsmc/option-pricer/internal/output"
	"github.com/lsmc/option-pricer/internal/pricing"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

type scenarioFlags struct {
	configFile       string
	spot             float64
	strike           float64
	rate             float64
	volatility       float64
	maturity         float64
	timesteps        int
	paths            int
	seed             int64
	order            int
	inTheMoneyOnly   bool
	independentPaths bool
	minipaths        int
}

func (f *scenarioFlags) register(cmd *cobra.Command) {
	d := domain.Default()
	cmd.Flags().StringVarP(&f.configFile, "config", "c", "", "YAML scenario file (flags override it)")
	cmd.Flags().Float64Var(&f.spot, "spot", d.Spot, "spot price")
	cmd.Flags().Float64Var(&f.strike, "strike", d.Strike, "strike price")
	cmd.Flags().Float64Var(&f.rate, "rate", d.Rate, "risk-free rate")
	cmd.Flags().Float64Var(&f.volatility, "vol", d.Volatility, "volatility")
	cmd.Flags().Float64Var(&f.maturity, "maturity", d.Maturity, "maturity in years")
	cmd.Flags().IntVar(&f.timesteps, "timesteps", d.Timesteps, "number of grid points including today and expiry")
	cmd.Flags().IntVar(&f.paths, "paths", d.Paths, "number of simulated paths")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "random seed (0 means non-reproducible)")
	cmd.Flags().IntVar(&f.order, "order", d.Order, "polynomial coefficient count for the continuation regression")
	cmd.Flags().BoolVar(&f.inTheMoneyOnly, "in-the-money", false, "regress only on in-the-money paths")
	cmd.Flags().BoolVar(&f.independentPaths, "independent-paths", false, "reprice on an independent path set with frozen coefficients")
	cmd.Flags().IntVar(&f.minipaths, "minipaths", d.Minipaths, "nested sub-simulations per path and step for the dual bound")
}

// scenario resolves the flag set into a validated scenario. A config file,
// when given, is loaded first; explicitly set flags win over it.
func (f *scenarioFlags) scenario(cmd *cobra.Command) (domain.Scenario, error) {
	sc := domain.Default()
	if f.configFile != "" {
		loaded, err := config.NewInputParser().LoadFromFile(f.configFile)
		if err != nil {
			return domain.Scenario{}, err
		}
		sc = loaded
	}

	set := func(name string) bool { return cmd.Flags().Changed(name) }
	if set("spot") {
		sc.Spot = f.spot
	}
	if set("strike") {
		sc.Strike = f.strike
	}
	if set("rate") {
		sc.Rate = f.rate
	}
	if set("vol") {
		sc.Volatility = f.volatility
	}
	if set("maturity") {
		sc.Maturity = f.maturity
	}
	if set("timesteps") {
		sc.Timesteps = f.timesteps
	}
	if set("paths") {
		sc.Paths = f.paths
	}
	if set("seed") {
		sc.Seed = f.seed
	}
	if set("order") {
		sc.Order = f.order
	}
	if set("in-the-money") {
		sc.InTheMoneyOnly = f.inTheMoneyOnly
	}
	if set("independent-paths") {
		sc.IndependentPaths = f.independentPaths
	}
	if set("minipaths") {
		sc.Minipaths = f.minipaths
	}
	return sc, sc.Validate()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "option-pricer",
		Short:         "American put pricing by least-squares Monte Carlo",
		Long:          "Prices a vanilla American put with the Longstaff-Schwartz regression method\nand bounds the price from above with a Rogers-style dual estimator.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newPriceCmd(), newBoundCmd())
	return root
}

func newPriceCmd() *cobra.Command {
	var flags scenarioFlags
	cmd := &cobra.Command{
		Use:   "price",
		Short: "Run the Longstaff-Schwartz estimator",
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := flags.scenario(cmd)
			if err != nil {
				return err
			}
			pricer, err := pricing.NewPricer(sc)
			if err != nil {
				return err
			}
			res, err := pricer.Price()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), output.FormatPricing(sc, res))
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newBoundCmd() *cobra.Command {
	var flags scenarioFlags
	cmd := &cobra.Command{
		Use:   "bound",
		Short: "Run the estimator and the dual upper bound",
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := flags.scenario(cmd)
			if err != nil {
				return err
			}
			pricer, err := pricing.NewPricer(sc)
			if err != nil {
				return err
			}
			res, err := pricer.Price()
			if err != nil {
				return err
			}
			bound, err := pricer.UpperBound(res)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), output.FormatPricing(sc, res))
			fmt.Fprint(cmd.OutOrStdout(), output.FormatBound(res, bound))
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}
