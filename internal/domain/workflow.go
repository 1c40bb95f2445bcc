package domain

import (
	"context"
	"fmt"
	"log/slog"

	"bootswap.dev/pkg/bootswap/internal/adapter"
	"bootswap.dev/pkg/bootswap/internal/controller"
)

// Build actions the workflow knows about. Restore is bound after build and
// upload and before clean, mirroring the orchestrator's action names.
const (
	ActionBuild  = "build"
	ActionUpload = "upload"
	ActionClean  = "clean"
)

// RunArgs describes one wrapped build invocation.
type RunArgs struct {
	// Action is the named build action, defaulting to build.
	Action string

	// WorkDir is where the wrapped command runs; empty means the current
	// directory.
	WorkDir string

	// Argv is the wrapped build command line.
	Argv []string
}

// Workflow runs one full swap cycle around a build invocation: swap in the
// replacement, run the build, and restore the original regardless of the
// build's outcome.
type Workflow interface {
	Run(ctx context.Context, args RunArgs) error
}

type workflow struct {
	guard  Guard
	runner adapter.BuildRunnerAdapter
	hooks  *Hooks
	ui     controller.UI
}

// NewWorkflow constructs a Workflow and binds the restore callback to the
// standard actions.
func NewWorkflow(guard Guard, runner adapter.BuildRunnerAdapter, ui controller.UI) Workflow {
	w := &workflow{
		guard:  guard,
		runner: runner,
		hooks:  NewHooks(),
		ui:     ui,
	}

	w.hooks.AddPostAction(ActionBuild, w.restoreHook)
	w.hooks.AddPostAction(ActionUpload, w.restoreHook)
	w.hooks.AddPreAction(ActionClean, w.restoreHook)

	return w
}

func (w *workflow) Run(ctx context.Context, args RunArgs) error {
	action := args.Action
	if action == "" {
		action = ActionBuild
	}

	if action == ActionClean {
		return w.runClean(ctx, args)
	}

	if len(args.Argv) == 0 {
		return fmt.Errorf("no build command given")
	}

	outcome, err := w.guard.SwapIn(ctx)
	if err != nil {
		return fmt.Errorf("failed to swap in replacement: %w", err)
	}

	w.ui.DisplaySwapOutcome(ctx, w.guard.Substitution(), outcome)

	buildErr := w.runner.Run(ctx, args.WorkDir, args.Argv, w.ui.BuildOutput(), w.ui.BuildErrOutput())
	if buildErr != nil {
		slog.Error("build command failed", "action", action, "error", buildErr)
	}

	// Restore must run even when the build failed or the context was
	// canceled mid-build.
	if hookErr := w.hooks.RunPost(context.WithoutCancel(ctx), action); hookErr != nil {
		return fmt.Errorf("failed to run post-%s hooks: %w", action, hookErr)
	}

	return buildErr
}

// runClean fires the pre-clean hooks (restoring any leftover backup from a
// crashed prior cycle) before running the wrapped clean command, if any.
func (w *workflow) runClean(ctx context.Context, args RunArgs) error {
	if err := w.hooks.RunPre(ctx, ActionClean); err != nil {
		return fmt.Errorf("failed to run pre-clean hooks: %w", err)
	}

	if len(args.Argv) == 0 {
		return nil
	}

	return w.runner.Run(ctx, args.WorkDir, args.Argv, w.ui.BuildOutput(), w.ui.BuildErrOutput())
}

func (w *workflow) restoreHook(ctx context.Context) error {
	outcome, err := w.guard.Restore(ctx)
	if err != nil {
		return fmt.Errorf("failed to restore original: %w", err)
	}

	w.ui.DisplayRestoreOutcome(ctx, w.guard.Substitution(), outcome)

	return nil
}
