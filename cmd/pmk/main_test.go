package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pmk/internal/core/domain"
	"go.trai.ch/zerr"
)

const testConfig = `version: "1"
profiles:
  profile_debug: ["-c", "exit 3"]
  release: ["-c", "exit 2"]
targets:
  hello:
    description: Always succeeds
    compiler: "true"
    sources: [hello.c]
  broken:
    description: Always fails
    compiler: "false"
    sources: [broken.c]
  exits:
    description: Exits with the code from the profile
    compiler: sh
    sources: [exits.c]
`

// newProject creates a project directory with pmk.yaml and changes into it.
func newProject(t *testing.T) string {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.ConfigFileName), []byte(testConfig), 0o600))
	t.Chdir(dir)
	return dir
}

func runPmk(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	if args == nil {
		// cobra falls back to os.Args for nil args.
		args = []string{}
	}
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr, graft.DisableCache())
	return code, stdout.String(), stderr.String()
}

func TestRun_BuildsAndRemembersTarget(t *testing.T) {
	dir := newProject(t)

	code, _, stderr := runPmk(t, "hello")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stderr, "true -O0 -g -Wall -o bin/hello hello.c")
	assert.DirExists(t, filepath.Join(dir, "bin"))

	code, _, stderr = runPmk(t)
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stderr, "-o bin/hello hello.c")
}

func TestRun_ExitCodes(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{name: "success", args: []string{"hello"}, want: 0},
		{name: "unknown target", args: []string{"frobnicate"}, want: 64},
		{name: "unknown mode", args: []string{"hello", "-M", "turbo"}, want: 64},
		{name: "compiler failure", args: []string{"broken"}, want: 1},
		{name: "compiler exit code", args: []string{"exits", "--mode", "profile_debug"}, want: 3},
		{name: "compiler exit code 2 is not a usage error", args: []string{"exits", "-M", "release"}, want: 2},
		{name: "too many arguments", args: []string{"hello", "broken"}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			newProject(t)

			code, _, stderr := runPmk(t, tt.args...)
			assert.Equal(t, tt.want, code, stderr)
		})
	}
}

func TestRun_UnknownTargetIsNotRemembered(t *testing.T) {
	newProject(t)

	code, _, _ := runPmk(t, "hello")
	require.Equal(t, 0, code)

	code, _, stderr := runPmk(t, "frobnicate")
	assert.Equal(t, 64, code)
	assert.Contains(t, stderr, `target "frobnicate" is not defined`)

	code, _, stderr = runPmk(t)
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stderr, "-o bin/hello hello.c")
}

func TestRun_EmptyStateWithoutConfig(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	t.Chdir(t.TempDir())

	code, _, stderr := runPmk(t)
	assert.Equal(t, 64, code)
	assert.Contains(t, stderr, domain.DefaultTargetName)
}

func TestRun_ReservedTargetName(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	dir := t.TempDir()
	config := "targets:\n  status:\n    compiler: \"true\"\n    sources: [status.c]\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.ConfigFileName), []byte(config), 0o600))
	t.Chdir(dir)

	for _, args := range [][]string{{}, {"targets"}} {
		code, stdout, stderr := runPmk(t, args...)
		assert.Equal(t, 1, code, args)
		assert.Empty(t, stdout, args)
		assert.Contains(t, stderr, `target name "status" is reserved for a subcommand`, args)
	}
	assert.NoDirExists(t, filepath.Join(dir, "bin"))
}

func TestRun_DryRun(t *testing.T) {
	dir := newProject(t)

	code, _, stderr := runPmk(t, "broken", "-n")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stderr, "false -O0 -g -Wall -o bin/broken broken.c")
	assert.NoDirExists(t, filepath.Join(dir, "bin"))

	code, stdout, _ := runPmk(t, "status", "--json")
	require.Equal(t, 0, code)

	var records []domain.BuildRecord
	require.NoError(t, json.Unmarshal([]byte(stdout), &records))
	require.Len(t, records, 1)
	assert.Equal(t, domain.BuildStatusSkipped, records[0].Status())
}

func TestRun_Chdir(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.ConfigFileName), []byte(testConfig), 0o600))
	t.Chdir(t.TempDir())

	code, _, stderr := runPmk(t, "-C", dir, "hello")
	require.Equal(t, 0, code, stderr)
	assert.FileExists(t, filepath.Join(dir, domain.DefaultStatePath()))
}

func TestRun_Targets(t *testing.T) {
	newProject(t)

	code, _, _ := runPmk(t, "hello", "-M", "release")
	require.Equal(t, 0, code)

	code, stdout, _ := runPmk(t, "targets", "--json")
	require.Equal(t, 0, code)

	var listing struct {
		Mode    string `json:"mode"`
		Target  string `json:"target"`
		Targets []struct {
			Name    string `json:"name"`
			Current bool   `json:"current"`
		} `json:"targets"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &listing))
	assert.Equal(t, "release", listing.Mode)
	assert.Equal(t, "hello", listing.Target)

	var names []string
	for _, tgt := range listing.Targets {
		names = append(names, tgt.Name)
	}
	assert.Contains(t, names, "layouter")
	assert.Contains(t, names, "hello")
}

func TestRun_Show(t *testing.T) {
	newProject(t)

	code, stdout, _ := runPmk(t, "show", "layouter", "-M", "release")
	if code != 0 {
		t.Skip("pkg-config or gtk+-3.0 is not available")
	}
	assert.Contains(t, stdout, "gcc -O2 -g -DNDEBUG -Wall -o bin/layouter layouter.c")
	assert.Contains(t, stdout, "-lm")
}

func TestRun_Version(t *testing.T) {
	newProject(t)

	code, stdout, _ := runPmk(t, "version")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "pmk version dev")
}

func TestRun_Complete(t *testing.T) {
	newProject(t)

	code, stdout, _ := runPmk(t, "__complete", "")
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "hello\n")
	assert.Contains(t, stdout, "linear_solver_tests\n")

	code, stdout, _ = runPmk(t, "__complete", "--mode", "")
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "profile_debug\n")
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "unknown target",
			err:  zerr.Wrap(domain.ErrUnknownTarget, "target is not defined"),
			want: 64,
		},
		{
			name: "unknown mode",
			err:  zerr.Wrap(domain.ErrUnknownMode, "mode is not known"),
			want: 64,
		},
		{
			name: "compiler exit code",
			err: zerr.Wrap(
				zerr.With(zerr.Wrap(domain.ErrToolchainInvocation, "command failed"), domain.ExitCodeKey, 4),
				"build failed",
			),
			want: 4,
		},
		{
			name: "compiler exits 2",
			err:  zerr.With(zerr.Wrap(domain.ErrToolchainInvocation, "command failed"), domain.ExitCodeKey, 2),
			want: 2,
		},
		{
			name: "compiler killed",
			err:  zerr.With(zerr.Wrap(domain.ErrToolchainInvocation, "command failed"), domain.ExitCodeKey, -1),
			want: 1,
		},
		{
			name: "other",
			err:  zerr.Wrap(domain.ErrStoreWriteFailed, "disk full"),
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}
