package respiration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetPhotosynthesis(t *testing.T) {
	assert.InDelta(t, 58.0, NetPhotosynthesis(80, 40, 2), 1e-12)
	assert.InDelta(t, -2.0, NetPhotosynthesis(0, 0, 2), 1e-12)
}

func TestNetPhotosynthesisSuperposition(t *testing.T) {
	// A_n(V_c, V_o, R_d) = A_n(V_c, 0, 0) - 0.5·V_o - R_d
	cases := []struct{ v_c, v_o, r_d float64 }{
		{100, 40, 2},
		{80, 0, 2},
		{0, 0, 0},
		{55.5, 23.1, 1.7},
	}
	for _, tc := range cases {
		full := NetPhotosynthesis(tc.v_c, tc.v_o, tc.r_d)
		super := NetPhotosynthesis(tc.v_c, 0, 0) - 0.5*tc.v_o - tc.r_d
		assert.InDelta(t, super, full, 1e-12)
	}
}

func TestDecomposeNetPhotosynthesis(t *testing.T) {
	terms := DecomposeNetPhotosynthesis(80, 40, 2)
	assert.Equal(t, 80.0, terms.Carboxylation)
	assert.Equal(t, -20.0, terms.Photorespiration)
	assert.Equal(t, -2.0, terms.DarkRespiration)
	assert.InDelta(t, NetPhotosynthesis(80, 40, 2), terms.Net(), 1e-12)
}

func TestOxygenationSensitivity(t *testing.T) {
	v_o := Linspace(0, 80, 300)
	a_n := OxygenationSensitivity(v_o, 80, DefaultRd)
	require.Len(t, a_n, len(v_o))

	// Monotonically decreasing with slope -0.5.
	assert.InDelta(t, 78.0, a_n[0], 1e-12)
	assert.InDelta(t, 38.0, a_n[len(a_n)-1], 1e-12)
	for i := 1; i < len(a_n); i++ {
		assert.Less(t, a_n[i], a_n[i-1])
	}
}
