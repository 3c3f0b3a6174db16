package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/pmk/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestExitCode(t *testing.T) {
	inner := zerr.With(zerr.Wrap(domain.ErrToolchainInvocation, "gcc exited"), domain.ExitCodeKey, 3)

	tests := []struct {
		name   string
		err    error
		want   int
		wantOK bool
	}{
		{name: "nil", err: nil},
		{name: "plain", err: errors.New("boom")},
		{name: "direct", err: inner, want: 3, wantOK: true},
		{name: "wrapped", err: zerr.Wrap(inner, "build failed"), want: 3, wantOK: true},
		{name: "std wrapped", err: errors.Join(errors.New("outer"), inner), want: 0, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := domain.ExitCode(tt.err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
