package recorder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordAndSave(t *testing.T) {
	r := New()
	require.NoError(t, r.Record("typical", []float64{0, 1, 2}, []float64{0, 0.45, 0.9}))
	require.NoError(t, r.Record("upper", []float64{0, 1}, []float64{0, 0.6}))
	assert.Equal(t, 5, r.Len())

	dir := t.TempDir()
	path, err := r.Save(dir, "rp_vs_pg")
	require.NoError(t, err)
	assert.FileExists(t, path)

	points, err := Load(path)
	require.NoError(t, err)
	require.Len(t, points, 5)
	assert.Equal(t, "typical", points[0].Series)
	assert.Equal(t, 0.45, points[1].Y)
	assert.Equal(t, "upper", points[3].Series)
}

func TestRecordLengthMismatch(t *testing.T) {
	r := New()
	err := r.Record("bad", []float64{1, 2}, []float64{1})
	assert.Error(t, err)
}

func TestRecordValues(t *testing.T) {
	r := New()
	r.RecordValues("coefficients", []float64{0.17, 2.01, 1.72})
	assert.Equal(t, 3, r.Len())

	dir := t.TempDir()
	path, err := r.Save(dir, "growth_respiration_coefficients")
	require.NoError(t, err)

	points, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1.0, points[1].X)
	assert.Equal(t, 2.01, points[1].Y)
}
