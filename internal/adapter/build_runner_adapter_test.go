package adapter

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestLocalBuildRunnerAdapter_Run(t *testing.T) {
	adapter := NewLocalBuildRunnerAdapter()

	var stdout, stderr bytes.Buffer

	err := adapter.Run(context.Background(), t.TempDir(), []string{"sh", "-c", "echo building"}, &stdout, &stderr)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if !strings.Contains(stdout.String(), "building") {
		t.Fatalf("Run() stdout = %q, want it to contain %q", stdout.String(), "building")
	}
}

func TestLocalBuildRunnerAdapter_Run_CommandFailure(t *testing.T) {
	adapter := NewLocalBuildRunnerAdapter()

	var stdout, stderr bytes.Buffer

	err := adapter.Run(context.Background(), t.TempDir(), []string{"sh", "-c", "exit 2"}, &stdout, &stderr)
	if err == nil {
		t.Fatalf("Run() expected error for failing command")
	}
}

func TestLocalBuildRunnerAdapter_Run_EmptyArgv(t *testing.T) {
	adapter := NewLocalBuildRunnerAdapter()

	var stdout, stderr bytes.Buffer

	err := adapter.Run(context.Background(), "", nil, &stdout, &stderr)
	if err == nil {
		t.Fatalf("Run() expected error for empty argv")
	}
}

func TestLocalBuildRunnerAdapter_Run_CanceledContext(t *testing.T) {
	adapter := NewLocalBuildRunnerAdapter()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stdout, stderr bytes.Buffer

	err := adapter.Run(ctx, "", []string{"sh", "-c", "sleep 10"}, &stdout, &stderr)
	if err == nil {
		t.Fatalf("Run() expected error for canceled context")
	}
}
