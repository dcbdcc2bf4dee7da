package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wealthsim/wealth-simulator/internal/calculation"
	"github.com/wealthsim/wealth-simulator/internal/domain"
)

func newMPCCmd() *cobra.Command {
	var (
		income     float64
		baseMPC    float64
		refIncome  float64
		elasticity float64
	)

	cmd := &cobra.Command{
		Use:   "mpc",
		Short: "Evaluate the consumption model at a single income level",
		RunE: func(cmd *cobra.Command, args []string) error {
			params := domain.MPCParams{
				BaseMPC:         baseMPC,
				ReferenceIncome: refIncome,
				Elasticity:      elasticity,
			}
			if err := calculation.ValidateMPCParams(params); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "income: %.2f\n", income)
			fmt.Fprintf(cmd.OutOrStdout(), "mpc: %.6f\n", calculation.MPC(income, params))
			fmt.Fprintf(cmd.OutOrStdout(), "consumption: %.2f\n", calculation.Consumption(income, params))
			return nil
		},
	}

	cmd.Flags().Float64VarP(&income, "income", "i", 35000, "Income level to evaluate at")
	cmd.Flags().Float64Var(&baseMPC, "base-mpc", 0.6, "Base marginal propensity to consume")
	cmd.Flags().Float64Var(&refIncome, "reference-income", 35000, "MPC reference income")
	cmd.Flags().Float64Var(&elasticity, "elasticity", -0.7, "MPC elasticity (must not be -1)")

	return cmd
}
