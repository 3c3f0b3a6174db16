package shell_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pmk/internal/adapters/shell"
	"go.trai.ch/pmk/internal/core/domain"
	"go.trai.ch/pmk/internal/core/ports"
	"go.trai.ch/pmk/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestExecutor_Run_MultiLineOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	gomock.InOrder(
		mockLogger.EXPECT().Info("line1"),
		mockLogger.EXPECT().Info("line2"),
	)

	executor := shell.NewExecutor(mockLogger)

	cmd := domain.NewCommand("sh", "-c", "echo line1; echo line2")
	out, err := executor.Run(context.Background(), cmd, ports.RunOptions{})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestExecutor_Run_FragmentedOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	mockLogger.EXPECT().Info("part1part2").Times(1)

	executor := shell.NewExecutor(mockLogger)

	cmd := domain.NewCommand("sh", "-c", "printf part1; sleep 0.1; echo part2")
	_, err := executor.Run(context.Background(), cmd, ports.RunOptions{})
	require.NoError(t, err)
}

func TestExecutor_Run_UnterminatedLineIsFlushed(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	mockLogger.EXPECT().Warn("no newline").Times(1)

	executor := shell.NewExecutor(mockLogger)

	cmd := domain.NewCommand("sh", "-c", "printf 'no newline' >&2")
	_, err := executor.Run(context.Background(), cmd, ports.RunOptions{})
	require.NoError(t, err)
}

func TestExecutor_Run_Capture(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	executor := shell.NewExecutor(mockLogger)

	cmd := domain.NewCommand("sh", "-c", "echo '-I/usr/include/gtk-3.0 -lgtk-3'")
	out, err := executor.Run(context.Background(), cmd, ports.RunOptions{Capture: true})
	require.NoError(t, err)
	assert.Equal(t, "-I/usr/include/gtk-3.0 -lgtk-3", out)
}

func TestExecutor_Run_Echo(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	gomock.InOrder(
		mockLogger.EXPECT().Info("sh -c 'echo hi'"),
		mockLogger.EXPECT().Info("hi"),
	)

	executor := shell.NewExecutor(mockLogger)

	cmd := domain.NewCommand("sh", "-c", "echo hi")
	_, err := executor.Run(context.Background(), cmd, ports.RunOptions{Echo: true})
	require.NoError(t, err)
}

func TestExecutor_Run_DryRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	mockLogger.EXPECT().Info("touch marker").Times(1)

	executor := shell.NewExecutor(mockLogger)

	dir := t.TempDir()
	cmd := domain.NewCommand("touch", "marker")
	cmd.Dir = dir
	_, err := executor.Run(context.Background(), cmd, ports.RunOptions{DryRun: true})
	require.NoError(t, err)

	_, statErr := os.Stat(filepath.Join(dir, "marker"))
	assert.True(t, os.IsNotExist(statErr), "dry run must not start the program")
}

func TestExecutor_Run_Writers(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	executor := shell.NewExecutor(mockLogger)

	var stdout, stderr bytes.Buffer
	cmd := domain.NewCommand("sh", "-c", "echo out; echo err >&2")
	_, err := executor.Run(context.Background(), cmd, ports.RunOptions{Stdout: &stdout, Stderr: &stderr})
	require.NoError(t, err)

	assert.Equal(t, "out\n", stdout.String())
	assert.Equal(t, "err\n", stderr.String())
}

func TestExecutor_Run_WorkingDir(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	executor := shell.NewExecutor(mockLogger)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "marker"), []byte("x"), domain.FilePerm))

	cmd := domain.NewCommand("ls")
	cmd.Dir = dir
	out, err := executor.Run(context.Background(), cmd, ports.RunOptions{Capture: true})
	require.NoError(t, err)
	assert.Equal(t, "marker", out)
}

func TestExecutor_Run_CommandFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()

	executor := shell.NewExecutor(mockLogger)

	cmd := domain.NewCommand("sh", "-c", "echo broken >&2; exit 42")
	_, err := executor.Run(context.Background(), cmd, ports.RunOptions{})
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrToolchainInvocation)

	code, ok := domain.ExitCode(err)
	require.True(t, ok)
	assert.Equal(t, 42, code)
}

func TestExecutor_Run_MissingProgram(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	executor := shell.NewExecutor(mockLogger)

	cmd := domain.NewCommand("nonexistent-command-xyz123")
	_, err := executor.Run(context.Background(), cmd, ports.RunOptions{})
	require.ErrorIs(t, err, domain.ErrToolMissing)

	_, ok := domain.ExitCode(err)
	assert.False(t, ok)
}

func TestExecutor_Run_EmptyCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	executor := shell.NewExecutor(mockLogger)

	_, err := executor.Run(context.Background(), domain.Command{}, ports.RunOptions{Echo: true})
	require.ErrorIs(t, err, domain.ErrEmptyCommand)
}

func TestExecutor_Run_Cancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	executor := shell.NewExecutor(mockLogger)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cmd := domain.NewCommand("sh", "-c", "sleep 5")
	_, err := executor.Run(ctx, cmd, ports.RunOptions{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		cmd  domain.Command
		want string
	}{
		{
			name: "plain",
			cmd:  domain.NewCommand("gcc", "-O0", "-g", "-o", "bin/layouter", "layouter.c", "-lm"),
			want: "gcc -O0 -g -o bin/layouter layouter.c -lm",
		},
		{
			name: "spaces",
			cmd:  domain.NewCommand("gcc", "my file.c"),
			want: "gcc 'my file.c'",
		},
		{
			name: "assignment",
			cmd:  domain.NewCommand("gcc", "-DNAME=value"),
			want: "gcc '-DNAME=value'",
		},
		{
			name: "empty argument",
			cmd:  domain.NewCommand("gcc", ""),
			want: "gcc ''",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shell.Format(tt.cmd))
		})
	}
}
