package adapter

import (
	"context"
	"fmt"
	"io"
	"os/exec"
)

// BuildRunnerAdapter abstracts execution of the wrapped build command.
type BuildRunnerAdapter interface {
	// Run executes argv in workDir, streaming output to the provided
	// writers. The returned error is the command's own failure, if any.
	Run(ctx context.Context, workDir string, argv []string, stdout, stderr io.Writer) error
}

// LocalBuildRunnerAdapter provides a concrete implementation using os/exec.
type LocalBuildRunnerAdapter struct{}

// NewLocalBuildRunnerAdapter constructs a LocalBuildRunnerAdapter.
func NewLocalBuildRunnerAdapter() *LocalBuildRunnerAdapter {
	return &LocalBuildRunnerAdapter{}
}

// Run executes the build command and waits for it to finish.
func (a *LocalBuildRunnerAdapter) Run(ctx context.Context, workDir string, argv []string, stdout, stderr io.Writer) error {
	if len(argv) == 0 {
		return fmt.Errorf("no build command given")
	}

	// #nosec G204 - argv is the operator's own build command line
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = workDir
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	return cmd.Run()
}
