package cmd

import (
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"

	"bootswap.dev/pkg/bootswap/internal/controller"
)

const diffContextLines = 3

// diffCmd represents the diff command.
var diffCmd = newDiffCmd()

func newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff",
		Short: "Show what a swap would change",
		Long: `Print a unified diff between the original framework source and the
project's replacement, so the substitution can be reviewed before a build.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := activeGuard()
			if err != nil {
				return err
			}

			sub := g.Substitution()

			original, err := fsAdapter.ReadFile(sub.Original)
			if err != nil {
				return fmt.Errorf("failed to read original: %w", err)
			}

			replacement, err := fsAdapter.ReadFile(sub.Replacement)
			if err != nil {
				return fmt.Errorf("failed to read replacement: %w", err)
			}

			diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
				A:        difflib.SplitLines(string(original)),
				B:        difflib.SplitLines(string(replacement)),
				FromFile: string(sub.Original),
				ToFile:   string(sub.Replacement),
				Context:  diffContextLines,
			})
			if err != nil {
				return fmt.Errorf("failed to compute diff: %w", err)
			}

			controller.NewSimpleUI(cmd).DisplayDiff(cmd.Context(), diff)

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(diffCmd)
}
