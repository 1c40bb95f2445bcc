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

func testCmdSubstitution() m.Substitution {
	return m.Substitution{
		Original:     "/fw/components/bootloader/subproject/main/bootloader_start.c",
		Replacement:  "/project/bootloader/bootloader_start.c",
		BackupSuffix: ".bak",
	}
}

func TestSwapCmd_PerformsSwap(t *testing.T) {
	mockGuard := mocks.NewMockGuard(t)
	mockGuard.On("SwapIn", mock.Anything).Return(m.SwapPerformed, nil)
	mockGuard.On("Substitution").Return(testCmdSubstitution())

	originalGuard := guard
	guard = mockGuard
	defer func() { guard = originalGuard }()

	out := &bytes.Buffer{}
	cmd := newRootCmd()
	cmd.AddCommand(newSwapCmd())
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"swap"})

	err := cmd.Execute()
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Backed up original file")
	mockGuard.AssertExpectations(t)
}

func TestSwapCmd_MissingSourceIsNotFatal(t *testing.T) {
	mockGuard := mocks.NewMockGuard(t)
	mockGuard.On("SwapIn", mock.Anything).Return(m.SwapMissingSource, nil)
	mockGuard.On("Substitution").Return(testCmdSubstitution())

	originalGuard := guard
	guard = mockGuard
	defer func() { guard = originalGuard }()

	out := &bytes.Buffer{}
	cmd := newRootCmd()
	cmd.AddCommand(newSwapCmd())
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"swap"})

	err := cmd.Execute()
	require.NoError(t, err, "a missing original is reported, not fatal")

	assert.Contains(t, out.String(), "original source not found")
}

func TestSwapCmd_CopyFailurePropagates(t *testing.T) {
	mockGuard := mocks.NewMockGuard(t)
	mockGuard.On("SwapIn", mock.Anything).Return(m.SwapOutcome(""), fmt.Errorf("disk full"))

	originalGuard := guard
	guard = mockGuard
	defer func() { guard = originalGuard }()

	cmd := newRootCmd()
	cmd.AddCommand(newSwapCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"swap"})

	err := cmd.Execute()
	require.Error(t, err)
}
