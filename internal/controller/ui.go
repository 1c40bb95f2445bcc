// Package controller provides output adapters for displaying swap progress.
package controller

import (
	"context"
	"io"

	m "bootswap.dev/pkg/bootswap/internal/model"
)

// UI defines the interface for reporting swap-cycle progress to the operator.
// Output stays line oriented: the tool runs inside a build orchestrator and
// its stdout is interleaved with the build's own log.
type UI interface {
	DisplaySwapOutcome(ctx context.Context, sub m.Substitution, outcome m.SwapOutcome)
	DisplayRestoreOutcome(ctx context.Context, sub m.Substitution, outcome m.RestoreOutcome)
	DisplayStatus(ctx context.Context, status m.Status) error
	DisplayDiff(ctx context.Context, diff string)

	// BuildOutput and BuildErrOutput are where the wrapped build command's
	// own output is streamed.
	BuildOutput() io.Writer
	BuildErrOutput() io.Writer
}
