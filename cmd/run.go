package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bootswap.dev/pkg/bootswap/internal/domain"
)

var runActionFlag string

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [flags] -- <build command> [args...]",
		Short: "Swap, run a build command, and restore afterward",
		Long: `Run one full swap cycle around a build invocation: swap in the
replacement, execute the given build command, and restore the original
whether the build succeeded, failed, or was interrupted.

With --action clean the restore runs before the wrapped command instead,
healing any backup left behind by a crashed prior build.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			action, err := parseAction(viper.GetString(runActionKey))
			if err != nil {
				return err
			}

			wf, err := activeWorkflow(cmd)
			if err != nil {
				return err
			}

			return wf.Run(cmd.Context(), domain.RunArgs{
				Action:  action,
				WorkDir: viper.GetString(projectDirKey),
				Argv:    args,
			})
		},
	}

	configureRunFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func configureRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&runActionFlag, actionFlagName, "a", viper.GetString(runActionKey), "build action to wrap (build, upload, or clean)")
	bindFlagToConfig(cmd.Flags().Lookup(actionFlagName), runActionKey)
}

func parseAction(action string) (string, error) {
	switch action {
	case "", domain.ActionBuild:
		return domain.ActionBuild, nil
	case domain.ActionUpload, domain.ActionClean:
		return action, nil
	}

	return "", fmt.Errorf("unknown action %q (expected build, upload, or clean)", action)
}
