package shell_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sassy/internal/adapters/shell"
	"go.trai.ch/sassy/internal/core/domain"
	"go.trai.ch/sassy/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func TestRunner_Run_CapturesCombinedOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug("line1")
	mockLogger.EXPECT().Debug("line2")

	runner := shell.NewRunner(mockLogger)

	out, err := runner.Run(t.Context(), domain.Command{
		Path: "sh",
		Args: []string{"-c", "echo line1; echo line2 >&2"},
		Dir:  t.TempDir(),
	})
	require.NoError(t, err)

	assert.Contains(t, string(out), "line1")
	assert.Contains(t, string(out), "line2")
}

func TestRunner_Run_UsesWorkingDirectory(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()

	dir := t.TempDir()
	out, err := shell.NewRunner(mockLogger).Run(t.Context(), domain.Command{
		Path: "pwd",
		Dir:  dir,
	})
	require.NoError(t, err)
	assert.Contains(t, string(out), dir)
}

func TestRunner_Run_NonZeroExit(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug("Syntax error: invalid CSS").Times(1)

	_, err := shell.NewRunner(mockLogger).Run(t.Context(), domain.Command{
		Path: "sh",
		Args: []string{"-c", "echo 'Syntax error: invalid CSS'; exit 65"},
	})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrProcessFailed.Error())

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, 65, zErr.Metadata()["exit_code"])
	assert.Equal(t, "Syntax error: invalid CSS", zErr.Metadata()["output"])
	assert.Equal(t, "sh", zErr.Metadata()["command"])
}

func TestRunner_Run_MissingExecutable(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	_, err := shell.NewRunner(mockLogger).Run(t.Context(), domain.Command{
		Path: "definitely-not-a-sass-compiler",
	})
	require.Error(t, err)

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, -1, zErr.Metadata()["exit_code"])
}

func TestRunner_Run_EmptyCommand(t *testing.T) {
	ctrl := gomock.NewController(t)

	_, err := shell.NewRunner(mocks.NewMockLogger(ctrl)).Run(t.Context(), domain.Command{})
	assert.ErrorContains(t, err, "empty command")
}

func TestRunner_Run_ContextCancelKillsProcess(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	ctx, cancel := context.WithTimeout(t.Context(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := shell.NewRunner(mockLogger).Run(ctx, domain.Command{
		Path: "sleep",
		Args: []string{"10"},
	})
	require.Error(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)
}
