package dispatcher_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pmk/internal/core/domain"
	"go.trai.ch/pmk/internal/core/ports/mocks"
	"go.trai.ch/pmk/internal/engine/dispatcher"
	"go.uber.org/mock/gomock"
)

func TestSelector_Resolve(t *testing.T) {
	errInvalid := errors.New("invalid")

	tests := []struct {
		name     string
		explicit string
		stored   string
		validate func(string) error
		want     string
		wantErr  error
		wantSet  bool
	}{
		{
			name:     "explicit wins",
			explicit: "release",
			stored:   "debug",
			want:     "release",
			wantSet:  true,
		},
		{
			name:    "stored value",
			stored:  "profile_debug",
			want:    "profile_debug",
			wantSet: true,
		},
		{
			name:    "default",
			stored:  "debug",
			want:    "debug",
			wantSet: true,
		},
		{
			name:     "invalid value is not persisted",
			explicit: "turbo",
			stored:   "debug",
			validate: func(string) error { return errInvalid },
			wantErr:  errInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := mocks.NewMockSelectionStore(ctrl)

			if tt.explicit == "" {
				store.EXPECT().Get(domain.ModeKey, "debug").Return(tt.stored, nil)
			}
			if tt.wantSet {
				store.EXPECT().Set(domain.ModeKey, tt.want).Return(nil)
			}

			got, err := dispatcher.NewSelector(store, domain.ModeKey, "debug").Resolve(tt.explicit, tt.validate)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSelector_Resolve_StoreErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockSelectionStore(ctrl)
	sel := dispatcher.NewSelector(store, domain.LastTargetKey, domain.DefaultTargetName)

	store.EXPECT().Get(domain.LastTargetKey, domain.DefaultTargetName).Return("", domain.ErrStoreReadFailed)
	_, err := sel.Resolve("", nil)
	assert.ErrorIs(t, err, domain.ErrStoreReadFailed)

	store.EXPECT().Set(domain.LastTargetKey, "layouter").Return(domain.ErrStoreWriteFailed)
	_, err = sel.Resolve("layouter", nil)
	assert.ErrorIs(t, err, domain.ErrStoreWriteFailed)
}

func TestSelector_Current(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockSelectionStore(ctrl)

	store.EXPECT().Get(domain.LastTargetKey, domain.DefaultTargetName).Return("layouter", nil)

	got, err := dispatcher.NewSelector(store, domain.LastTargetKey, domain.DefaultTargetName).Current()
	require.NoError(t, err)
	assert.Equal(t, "layouter", got)
}
