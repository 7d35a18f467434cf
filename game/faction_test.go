package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeFaction(t *testing.T) {
	tests := []struct {
		name    string
		faction string
		want    string
	}{
		{name: "lower case", faction: "verde", want: "VERDE"},
		{name: "mixed case", faction: "Azul", want: "AZUL"},
		{name: "surrounding spaces", faction: "  vermelho ", want: "VERMELHO"},
		{name: "already canonical", faction: "AZUL", want: "AZUL"},
		{name: "accented", faction: "marrón", want: "MARRÓN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, NormalizeFaction(tt.faction))
		})
	}

	t.Run("idempotent", func(t *testing.T) {
		once := NormalizeFaction(" Preto")
		require.Equal(t, once, NormalizeFaction(once))
	})
}
