package respiration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinspace(t *testing.T) {
	g := Linspace(0, 40, 5)
	require.Len(t, g, 5)
	assert.Equal(t, 0.0, g[0])
	assert.Equal(t, 40.0, g[4])
	assert.InDelta(t, 10.0, g[1], 1e-12)
}

func TestEvalSurface(t *testing.T) {
	xs := []float64{1, 2, 3}
	ys := []float64{10, 20}
	z := EvalSurface(xs, ys, func(x, y float64) float64 { return x + y })

	rows, cols := z.Dims()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 3, cols)
	assert.Equal(t, 11.0, z.At(0, 0))
	assert.Equal(t, 23.0, z.At(1, 2))
}
