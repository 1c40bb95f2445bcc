package cmd

import (
	"github.com/spf13/cobra"

	"bootswap.dev/pkg/bootswap/internal/controller"
)

// restoreCmd represents the restore command.
var restoreCmd = newRestoreCmd()

func newRestoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore",
		Short: "Restore the original file from its backup",
		Long:  restoreLongDescription,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := activeGuard()
			if err != nil {
				return err
			}

			outcome, err := g.Restore(cmd.Context())
			if err != nil {
				return err
			}

			controller.NewSimpleUI(cmd).DisplayRestoreOutcome(cmd.Context(), g.Substitution(), outcome)

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(restoreCmd)
}
