package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pmk/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestProfileTable_Flags(t *testing.T) {
	profiles := domain.DefaultProfiles()

	tests := []struct {
		mode     string
		expected string
	}{
		{"debug", "-O0 -g -Wall"},
		{"profile_debug", "-O2 -g -pg -Wall"},
		{"release", "-O2 -g -DNDEBUG -Wall"},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			flags, err := profiles.Flags(tt.mode)
			require.NoError(t, err)
			assert.NotEmpty(t, flags)

			s, err := profiles.FlagString(tt.mode)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, s)
		})
	}
}

func TestProfileTable_UnknownMode(t *testing.T) {
	profiles := domain.DefaultProfiles()

	for _, label := range []string{"", "Debug", "fast", "release "} {
		t.Run(label, func(t *testing.T) {
			_, err := profiles.Flags(label)
			require.ErrorIs(t, err, domain.ErrUnknownMode)

			zErr, ok := err.(*zerr.Error)
			require.True(t, ok, "expected *zerr.Error, got %T", err)
			assert.Equal(t, label, zErr.Metadata()["mode"])
		})
	}
}

func TestProfileTable_FlagsReturnsCopy(t *testing.T) {
	profiles := domain.DefaultProfiles()

	flags, err := profiles.Flags("debug")
	require.NoError(t, err)
	flags[0] = "-O3"

	again, err := profiles.Flags("debug")
	require.NoError(t, err)
	assert.Equal(t, "-O0", again[0])
}

func TestProfileTable_WithFlags(t *testing.T) {
	base := domain.DefaultProfiles()

	t.Run("overrides known mode", func(t *testing.T) {
		next, err := base.WithFlags("release", []string{"-O3", "-DNDEBUG"})
		require.NoError(t, err)

		s, err := next.FlagString("release")
		require.NoError(t, err)
		assert.Equal(t, "-O3 -DNDEBUG", s)

		// The receiver is untouched.
		s, err = base.FlagString("release")
		require.NoError(t, err)
		assert.Equal(t, "-O2 -g -DNDEBUG -Wall", s)
	})

	t.Run("rejects unknown mode", func(t *testing.T) {
		_, err := base.WithFlags("turbo", []string{"-O3"})
		require.ErrorIs(t, err, domain.ErrUnknownMode)
	})

	t.Run("rejects empty flags", func(t *testing.T) {
		_, err := base.WithFlags("debug", nil)
		require.ErrorIs(t, err, domain.ErrEmptyProfile)
	})
}

func TestProfileTable_Modes(t *testing.T) {
	assert.Equal(t, []string{"debug", "profile_debug", "release"}, domain.DefaultProfiles().Modes())
}

func TestParseMode(t *testing.T) {
	m, err := domain.ParseMode("profile_debug")
	require.NoError(t, err)
	assert.Equal(t, domain.ModeProfileDebug, m)

	_, err = domain.ParseMode("frobnicate")
	require.ErrorIs(t, err, domain.ErrUnknownMode)
	assert.Contains(t, err.Error(), `mode "frobnicate" is not one of debug, profile_debug, release`)
}
