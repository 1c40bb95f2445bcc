package cmd

import (
	"github.com/spf13/cobra"

	"bootswap.dev/pkg/bootswap/internal/controller"
)

// swapCmd represents the swap command.
var swapCmd = newSwapCmd()

func newSwapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "swap",
		Short: "Back up the original file and swap in the replacement",
		Long:  swapLongDescription,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := activeGuard()
			if err != nil {
				return err
			}

			outcome, err := g.SwapIn(cmd.Context())
			if err != nil {
				return err
			}

			// A missing original is reported, not fatal: the build will
			// fail downstream on its own.
			controller.NewSimpleUI(cmd).DisplaySwapOutcome(cmd.Context(), g.Substitution(), outcome)

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(swapCmd)
}
