package game

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"war/meta"
)

func TestRegistrySize(t *testing.T) {
	t.Run("rejects size out of range", func(t *testing.T) {
		for _, size := range []int{0, -1, meta.MAX_TERRITORIES + 1, math.MaxInt} {
			r, err := newRegistry(size)
			require.ErrorIs(t, err, ErrInvalidSize)
			require.Nil(t, r, "No partial registry should be returned")
		}
	})

	t.Run("creates fixed-length registry", func(t *testing.T) {
		r, err := newRegistry(3)
		require.NoError(t, err)
		require.Equal(t, 3, r.Len())
		require.True(t, r.Valid(2))
		require.False(t, r.Valid(3))
		require.False(t, r.Valid(-1))
	})
}

func TestSetup(t *testing.T) {
	t.Run("normalizes factions on the way in", func(t *testing.T) {
		r, err := Setup(2,
			Territory{Name: "Brasil", Faction: "azul", Troops: 3},
			Territory{Name: "Chile", Faction: " Verde", Troops: 0},
		)
		require.NoError(t, err)
		require.Equal(t, []Territory{
			{Name: "Brasil", Faction: "AZUL", Troops: 3},
			{Name: "Chile", Faction: "VERDE", Troops: 0},
		}, r.Snapshot())
	})


	tests := []struct {
		name    string
		size    int
		entries []Territory
		wantErr error
	}{
		{name: "zero size", size: 0, wantErr: ErrInvalidSize},
		{name: "huge size", size: math.MaxInt, wantErr: ErrInvalidSize},
		{
			name:    "too many entries",
			size:    1,
			entries: []Territory{{Name: "A", Faction: "X", Troops: 1}, {Name: "B", Faction: "Y", Troops: 1}},
			wantErr: ErrEntryCount,
		},
		{
			name:    "fewer entries than territories",
			size:    3,
			entries: []Territory{{Name: "Peru", Faction: "azul", Troops: 1}},
			wantErr: ErrEntryCount,
		},
		{name: "no entries", size: 2, wantErr: ErrEntryCount},
		{
			name:    "empty name",
			size:    1,
			entries: []Territory{{Name: "", Faction: "X", Troops: 1}},
			wantErr: ErrInvalidName,
		},
		{
			name:    "name too long",
			size:    1,
			entries: []Territory{{Name: strings.Repeat("a", 51), Faction: "X", Troops: 1}},
			wantErr: ErrInvalidName,
		},
		{
			name:    "blank faction",
			size:    1,
			entries: []Territory{{Name: "A", Faction: "   ", Troops: 1}},
			wantErr: ErrInvalidFaction,
		},
		{
			name:    "faction too long",
			size:    1,
			entries: []Territory{{Name: "A", Faction: "AMARELOESCURO", Troops: 1}},
			wantErr: ErrInvalidFaction,
		},
		{
			name:    "negative troops",
			size:    1,
			entries: []Territory{{Name: "A", Faction: "X", Troops: -2}},
			wantErr: ErrInvalidTroops,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Setup(tt.size, tt.entries...)
			require.True(t, errors.Is(err, tt.wantErr), "got %v, want %v", err, tt.wantErr)
			require.Nil(t, r)
		})
	}

	t.Run("accepts limits", func(t *testing.T) {
		_, err := Setup(1, Territory{Name: strings.Repeat("a", 50), Faction: "AMARELOSSS", Troops: 0})
		require.NoError(t, err)
	})
}

func TestRegistrySnapshotIsACopy(t *testing.T) {
	r := mustSetup(t, Territory{Name: "A", Faction: "AZUL", Troops: 2})

	snapshot := r.Snapshot()
	snapshot[0].Troops = 99

	require.Equal(t, 2, r.Snapshot()[0].Troops, "Snapshot must not alias the registry")
}

func TestRegistrySetOutOfRange(t *testing.T) {
	r := mustSetup(t, Territory{Name: "A", Faction: "AZUL", Troops: 2})
	err := r.set(1, Territory{Name: "B", Faction: "AZUL", Troops: 2})
	require.ErrorIs(t, err, ErrOutOfRange)
}
