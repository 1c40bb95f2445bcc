package controller

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "bootswap.dev/pkg/bootswap/internal/model"
)

// SimpleUI implements UI using a cobra Command's output streams.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplaySwapOutcome prints what a swap-in attempt did.
func (s *SimpleUI) DisplaySwapOutcome(ctx context.Context, sub m.Substitution, outcome m.SwapOutcome) {
	if err := ctx.Err(); err != nil {
		return
	}

	switch outcome {
	case m.SwapPerformed:
		s.printf("Backed up original file to: %s\n", sub.Backup())
		s.printf("Replaced original with: %s\n", sub.Replacement)
	case m.SwapBackupReused:
		s.printf("Backup file already exists. Skipping backup.\n")
		s.printf("Replaced original with: %s\n", sub.Replacement)
	case m.SwapMissingSource:
		s.printf("ERROR: original source not found at: %s\n", sub.Original)
	}
}

// DisplayRestoreOutcome prints what a restore attempt did.
func (s *SimpleUI) DisplayRestoreOutcome(ctx context.Context, sub m.Substitution, outcome m.RestoreOutcome) {
	if err := ctx.Err(); err != nil {
		return
	}

	switch outcome {
	case m.RestorePerformed:
		s.printf("Restored original file from: %s\n", sub.Backup())
	case m.RestoreNoBackup:
		s.printf("No backup file found to restore.\n")
	}
}

// DisplayStatus renders the current swap state as a table.
func (s *SimpleUI) DisplayStatus(ctx context.Context, status m.Status) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("State: %s\n\n", status.State)
	s.printf("%s", renderStatusTable(status))

	if status.LastEvent != nil {
		s.printf("Last event: %s -> %s at %s\n",
			status.LastEvent.Action,
			status.LastEvent.Outcome,
			status.LastEvent.At.Format("2006-01-02 15:04:05"),
		)
	}

	return nil
}

func renderStatusTable(status m.Status) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Role", "Path", "Present"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})
	table.SetColWidth(120)

	rows := []struct {
		role string
		file m.FileStatus
	}{
		{"original", status.Original},
		{"backup", status.Backup},
		{"replacement", status.Replacement},
	}

	for _, row := range rows {
		table.Append([]string{row.role, string(row.file.Path), presenceLabel(row.file.Exists)})
	}

	table.Render()

	return tableBuffer.String()
}

func presenceLabel(exists bool) string {
	if exists {
		return "yes"
	}

	return "no"
}

// DisplayDiff prints a unified diff between original and replacement.
func (s *SimpleUI) DisplayDiff(ctx context.Context, diff string) {
	if err := ctx.Err(); err != nil {
		return
	}

	if diff == "" {
		s.printf("Original and replacement are identical.\n")
		return
	}

	s.printf("%s", diff)
}

// BuildOutput returns the stream for the wrapped build command's stdout.
func (s *SimpleUI) BuildOutput() io.Writer {
	return s.cmd.OutOrStdout()
}

// BuildErrOutput returns the stream for the wrapped build command's stderr.
func (s *SimpleUI) BuildErrOutput() io.Writer {
	return s.cmd.ErrOrStderr()
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
