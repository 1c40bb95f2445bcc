// Package cmd provides the root command and CLI setup for bootswap.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"bootswap.dev/pkg/bootswap/internal/adapter"
	"bootswap.dev/pkg/bootswap/internal/controller"
	"bootswap.dev/pkg/bootswap/internal/domain"
	m "bootswap.dev/pkg/bootswap/internal/model"
	"bootswap.dev/pkg/bootswap/pkg"
)

var fsAdapter adapter.SwapFSAdapter
var buildRunner adapter.BuildRunnerAdapter

// guard and workflow are constructed from configuration at command time;
// tests preset them with mocks.
var guard domain.Guard
var workflow domain.Workflow

// Root-level flags shared by all commands.
var frameworkDirFlag string
var projectDirFlag string
var verifyFlag bool
var verboseFlag bool

func init() {
	// Initialize shared dependencies.
	fsAdapter = adapter.NewLocalSwapFSAdapter()
	buildRunner = adapter.NewLocalBuildRunnerAdapter()
}

const rootLongDescription = `Bootswap temporarily swaps a custom bootloader source into a vendored
framework tree for the duration of a build or flash, then restores the
pristine file afterward regardless of the build outcome.

The backup file (original path plus the configured suffix) is the only
durable marker of an in-progress swap, so a build interrupted mid-cycle
heals itself on the next swap, restore, or clean.`

const swapLongDescription = `Back up the original framework source (unless a backup already exists)
and copy the replacement over it. Running swap twice is safe: the backup
taken by the first run is never overwritten.`

const restoreLongDescription = `Copy the backup over the original and remove the backup. When no backup
exists this is a no-op, so redundant invocations (after a build and again
before a clean) are safe.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bootswap",
		Short: "Build-time bootloader source substitution guard",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&frameworkDirFlag, frameworkDirFlagName, "F",
			viper.GetString(frameworkDirKey),
			"framework checkout root containing the original source",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(frameworkDirFlagName), frameworkDirKey)

	cmd.PersistentFlags().
		StringVarP(
			&projectDirFlag, projectDirFlagName, "P",
			viper.GetString(projectDirKey),
			"project root containing the replacement source",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(projectDirFlagName), projectDirKey)

	cmd.PersistentFlags().BoolVar(&verifyFlag, verifyFlagName, viper.GetBool(backupVerifyKey), "check the backup against its recorded hash before restoring")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verifyFlagName), backupVerifyKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "enable debug logging")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// An interrupted build must still reach the restore hooks, so the
	// signal only cancels the context instead of killing the process.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		os.Exit(1)
	}
}

// substitutionFromConfig resolves the three swap paths from configuration.
func substitutionFromConfig() (m.Substitution, error) {
	frameworkDir := strings.TrimSpace(viper.GetString(frameworkDirKey))
	if frameworkDir == "" {
		return m.Substitution{}, fmt.Errorf(
			"framework directory not set (use --%s, %s_FRAMEWORK_DIR, or %s in %s)",
			frameworkDirFlagName, envPrefix, frameworkDirKey, configFileName,
		)
	}

	projectDir := viper.GetString(projectDirKey)
	if projectDir == "" {
		projectDir = defaultProjectDir
	}

	return m.Substitution{
		Original:     m.Path(filepath.Join(frameworkDir, viper.GetString(originalPathKey))),
		Replacement:  m.Path(filepath.Join(projectDir, viper.GetString(replacementPathKey))),
		BackupSuffix: viper.GetString(backupSuffixKey),
	}, nil
}

// activeGuard returns the preset guard (tests) or builds one from config.
func activeGuard() (domain.Guard, error) {
	if guard != nil {
		return guard, nil
	}

	sub, err := substitutionFromConfig()
	if err != nil {
		return nil, err
	}

	options := []domain.GuardOption{
		domain.WithManifestVerification(viper.GetBool(backupVerifyKey)),
	}

	if journalPath := viper.GetString(journalFilenameKey); journalPath != "" {
		journal, err := pkg.NewJournal[m.Event](journalPath)
		if err != nil {
			slog.Warn("failed to open swap journal, continuing without it", "path", journalPath, "error", err)
		} else {
			options = append(options, domain.WithJournal(journal))
		}
	}

	return domain.NewGuard(fsAdapter, sub, options...), nil
}

// activeWorkflow returns the preset workflow (tests) or builds one wired to
// the given command's output streams.
func activeWorkflow(cmd *cobra.Command) (domain.Workflow, error) {
	if workflow != nil {
		return workflow, nil
	}

	g, err := activeGuard()
	if err != nil {
		return nil, err
	}

	return domain.NewWorkflow(g, buildRunner, controller.NewSimpleUI(cmd)), nil
}
