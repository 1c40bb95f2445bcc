package cmd

import (
	"github.com/spf13/cobra"

	"bootswap.dev/pkg/bootswap/internal/controller"
)

// statusCmd represents the status command.
var statusCmd = newStatusCmd()

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current swap state and file presence",
		Long: `Display whether a swap is currently active, which of the original,
backup, and replacement files exist on disk, and the most recent journal
event, if any.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := activeGuard()
			if err != nil {
				return err
			}

			status, err := g.Status(cmd.Context())
			if err != nil {
				return err
			}

			return controller.NewSimpleUI(cmd).DisplayStatus(cmd.Context(), status)
		},
	}
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
