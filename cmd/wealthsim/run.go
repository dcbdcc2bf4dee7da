package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wealthsim/wealth-simulator/internal/calculation"
	"github.com/wealthsim/wealth-simulator/internal/config"
	"github.com/wealthsim/wealth-simulator/internal/domain"
	"github.com/wealthsim/wealth-simulator/internal/output"
)

func newRunCmd() *cobra.Command {
	var (
		configFile string
		people     int
		seed       uint64
		bins       int
		format     string
		outFile    string
		baseMPC    float64
		refIncome  float64
		elasticity float64
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a full simulation and report rank statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := domain.DefaultModelConfig()
			if configFile != "" {
				loaded, err := config.NewInputParser().LoadFromFile(configFile)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			// MPC flags override the config file when set.
			if cmd.Flags().Changed("base-mpc") {
				cfg.MPC.BaseMPC = baseMPC
			}
			if cmd.Flags().Changed("reference-income") {
				cfg.MPC.ReferenceIncome = refIncome
			}
			if cmd.Flags().Changed("elasticity") {
				cfg.MPC.Elasticity = elasticity
			}

			sim := calculation.NewSimulator(cfg, people, seed)
			result, err := sim.RunSimulation()
			if err != nil {
				return err
			}

			stats, err := calculation.CalculateRankStatistics(result.BequestRanks, result.WealthRanks, bins)
			if err != nil {
				return err
			}

			report := &domain.SimulationReport{
				NumPeople: result.NumPeople,
				Years:     result.Years,
				Seed:      result.Seed,
				Stats:     stats,
				Summary:   calculation.SummarizeWealth(result),
			}

			f := output.GetFormatterByName(format)
			if f == nil {
				return fmt.Errorf("unknown output format %q (console, csv, json)", format)
			}
			data, err := f.Format(report)
			if err != nil {
				return err
			}
			if outFile != "" {
				return os.WriteFile(outFile, data, 0644)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "", "Model configuration YAML file")
	cmd.Flags().IntVarP(&people, "people", "n", 10000, "Population size")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Random seed (0 = derive from clock)")
	cmd.Flags().IntVar(&bins, "bins", 100, "Number of bequest-rank bins")
	cmd.Flags().StringVarP(&format, "format", "f", "console", "Output format: console, csv, json")
	cmd.Flags().StringVarP(&outFile, "output", "o", "", "Write output to file instead of stdout")
	cmd.Flags().Float64Var(&baseMPC, "base-mpc", 0.6, "Base marginal propensity to consume")
	cmd.Flags().Float64Var(&refIncome, "reference-income", 35000, "MPC reference income")
	cmd.Flags().Float64Var(&elasticity, "elasticity", -0.7, "MPC elasticity (must not be -1)")

	return cmd
}
