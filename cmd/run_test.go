package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bootswap.dev/pkg/bootswap/internal/domain"
	domainmocks "bootswap.dev/pkg/bootswap/internal/domain/mocks"
)

func TestRunCmd_WrapsBuildCommand(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newRunCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("Run", mock.Anything, mock.MatchedBy(func(args domain.RunArgs) bool {
		return args.Action == domain.ActionBuild &&
			len(args.Argv) == 2 &&
			args.Argv[0] == "pio" &&
			args.Argv[1] == "run"
	})).Return(nil)

	cmd.SetArgs([]string{"run", "--", "pio", "run"})
	err := cmd.Execute()
	require.NoError(t, err)

	mockWorkflow.AssertExpectations(t)
}

func TestRunCmd_UploadAction(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newRunCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("Run", mock.Anything, mock.MatchedBy(func(args domain.RunArgs) bool {
		return args.Action == domain.ActionUpload
	})).Return(nil)

	cmd.SetArgs([]string{"run", "--action", "upload", "--", "pio", "run", "-t", "upload"})
	err := cmd.Execute()
	require.NoError(t, err)

	mockWorkflow.AssertExpectations(t)
}

func TestRunCmd_UnknownAction(t *testing.T) {
	cmd := newRootCmd()
	cmd.AddCommand(newRunCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{"run", "--action", "deploy", "--", "make"})
	err := cmd.Execute()
	require.Error(t, err)
}

func TestParseAction(t *testing.T) {
	tests := []struct {
		name    string
		action  string
		want    string
		wantErr bool
	}{
		{"empty defaults to build", "", "build", false},
		{"build", "build", "build", false},
		{"upload", "upload", "upload", false},
		{"clean", "clean", "clean", false},
		{"unknown", "deploy", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseAction(tt.action)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewRunCmd(t *testing.T) {
	cmd := newRunCmd()

	assert.Contains(t, cmd.Use, "run")
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	actionFlag := cmd.Flags().Lookup("action")
	assert.NotNil(t, actionFlag)
}
