package cmd

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bootswap.dev/pkg/bootswap/internal/domain/mocks"
	m "bootswap.dev/pkg/bootswap/internal/model"
)

func TestRestoreCmd_PerformsRestore(t *testing.T) {
	mockGuard := mocks.NewMockGuard(t)
	mockGuard.On("Restore", mock.Anything).Return(m.RestorePerformed, nil)
	mockGuard.On("Substitution").Return(testCmdSubstitution())

	originalGuard := guard
	guard = mockGuard
	defer func() { guard = originalGuard }()

	out := &bytes.Buffer{}
	cmd := newRootCmd()
	cmd.AddCommand(newRestoreCmd())
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"restore"})

	err := cmd.Execute()
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Restored original file")
}

func TestRestoreCmd_NoBackupIsNotFatal(t *testing.T) {
	mockGuard := mocks.NewMockGuard(t)
	mockGuard.On("Restore", mock.Anything).Return(m.RestoreNoBackup, nil)
	mockGuard.On("Substitution").Return(testCmdSubstitution())

	originalGuard := guard
	guard = mockGuard
	defer func() { guard = originalGuard }()

	out := &bytes.Buffer{}
	cmd := newRootCmd()
	cmd.AddCommand(newRestoreCmd())
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"restore"})

	err := cmd.Execute()
	require.NoError(t, err, "a missing backup is the tolerated redundant-invocation case")

	assert.Contains(t, out.String(), "No backup file found")
}

func TestRestoreCmd_CopyFailurePropagates(t *testing.T) {
	mockGuard := mocks.NewMockGuard(t)
	mockGuard.On("Restore", mock.Anything).Return(m.RestoreOutcome(""), fmt.Errorf("permission denied"))

	originalGuard := guard
	guard = mockGuard
	defer func() { guard = originalGuard }()

	cmd := newRootCmd()
	cmd.AddCommand(newRestoreCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"restore"})

	err := cmd.Execute()
	require.Error(t, err)
}
