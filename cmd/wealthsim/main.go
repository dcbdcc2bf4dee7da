package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "wealthsim",
		Short: "Intergenerational wealth mobility simulator",
		Long: `wealthsim simulates a population of individuals over a 60-year life
horizon: stochastic labor and capital income, a possible one-time bequest,
and an income-dependent propensity to consume. It reports rank-based
statistics of intergenerational wealth mobility.`,
	}

	rootCmd.AddCommand(
		newRunCmd(),
		newMPCCmd(),
		newVersionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("wealthsim version %s\n", version)
		},
	}
}
