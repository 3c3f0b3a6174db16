package pkgconfig_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pmk/internal/adapters/pkgconfig"
	"go.trai.ch/pmk/internal/core/domain"
	"go.trai.ch/pmk/internal/core/ports"
	"go.trai.ch/pmk/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func TestToolchain_Flags(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)

	want := domain.NewCommand("pkg-config", "--cflags", "--libs", "gtk+-3.0")
	executor.EXPECT().
		Run(gomock.Any(), want, ports.RunOptions{Capture: true}).
		Return("-pthread -I/usr/include/gtk-3.0 -lgtk-3 -lgdk-3", nil).
		Times(1)

	tc := pkgconfig.NewToolchain(executor)

	flags, err := tc.Flags(context.Background(), []string{"gtk+-3.0"})
	require.NoError(t, err)
	assert.Equal(t, []string{"-pthread", "-I/usr/include/gtk-3.0", "-lgtk-3", "-lgdk-3"}, flags)

	// Second call is served from the cache.
	flags[0] = "mutated"
	again, err := tc.Flags(context.Background(), []string{"gtk+-3.0"})
	require.NoError(t, err)
	assert.Equal(t, "-pthread", again[0])
}

func TestToolchain_Flags_NoPackages(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)

	tc := pkgconfig.NewToolchain(executor)

	flags, err := tc.Flags(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, flags)
}

func TestToolchain_Flags_CustomProgram(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)

	want := domain.NewCommand("pkgconf", "--cflags", "--libs", "zlib", "libpng")
	executor.EXPECT().
		Run(gomock.Any(), want, gomock.Any()).
		Return("", nil)

	tc := pkgconfig.NewToolchain(executor, pkgconfig.WithProgram("pkgconf"))

	flags, err := tc.Flags(context.Background(), []string{"zlib", "libpng"})
	require.NoError(t, err)
	assert.Empty(t, flags)
}

func TestToolchain_Flags_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)

	failure := zerr.With(zerr.Wrap(domain.ErrToolchainInvocation, "exit status 1"), domain.ExitCodeKey, 1)
	executor.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any()).Return("", failure).Times(2)

	tc := pkgconfig.NewToolchain(executor)

	_, err := tc.Flags(context.Background(), []string{"missing"})
	require.ErrorIs(t, err, domain.ErrToolchainInvocation)

	// Failures are not cached.
	_, err = tc.Flags(context.Background(), []string{"missing"})
	require.Error(t, err)
}

func TestToolchain_CheckPackage(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)

	executor.EXPECT().
		Run(gomock.Any(), domain.NewCommand("pkg-config", "--exists", "--print-errors", "gtk+-3.0"), gomock.Any()).
		Return("", nil)
	executor.EXPECT().
		Run(gomock.Any(), domain.NewCommand("pkg-config", "--exists", "--print-errors", "nope"), gomock.Any()).
		Return("", domain.ErrToolchainInvocation)

	tc := pkgconfig.NewToolchain(executor)

	require.NoError(t, tc.CheckPackage(context.Background(), "gtk+-3.0"))

	err := tc.CheckPackage(context.Background(), "nope")
	require.ErrorIs(t, err, domain.ErrToolchainInvocation)

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, "nope", zErr.Metadata()["package"])
}

func TestToolchain_LookPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)

	tc := pkgconfig.NewToolchain(executor, pkgconfig.WithLookPath(func(program string) (string, error) {
		if program == "gcc" {
			return "/usr/bin/gcc", nil
		}
		return "", errors.New("executable file not found in $PATH")
	}))

	path, err := tc.LookPath("gcc")
	require.NoError(t, err)
	assert.Equal(t, "/usr/bin/gcc", path)

	_, err = tc.LookPath("clang")
	require.ErrorIs(t, err, domain.ErrToolMissing)
}

func TestSplitFlags(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{name: "empty", input: "", want: nil},
		{name: "whitespace", input: "  \n", want: nil},
		{name: "simple", input: "-I/usr/include -lm", want: []string{"-I/usr/include", "-lm"}},
		{name: "extra spaces", input: "-pthread   -lgtk-3 ", want: []string{"-pthread", "-lgtk-3"}},
		{name: "quoted", input: `-I"/opt/my libs/include" -lfoo`, want: []string{"-I/opt/my libs/include", "-lfoo"}},
		{name: "escaped space", input: `-I/opt/my\ libs -lfoo`, want: []string{"-I/opt/my libs", "-lfoo"}},
		{name: "variable kept", input: "-Wl,-rpath,$ORIGIN/lib -lfoo", want: []string{"-Wl,-rpath,$ORIGIN/lib", "-lfoo"}},
		{name: "unterminated quote", input: `-I"/opt`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pkgconfig.SplitFlags(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrToolchainFlagsParseFailed)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
