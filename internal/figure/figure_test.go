package figure

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertWritten(t *testing.T, files []string, err error, want int) {
	t.Helper()
	require.NoError(t, err)
	require.Len(t, files, want)
	for _, f := range files {
		assert.FileExists(t, f)
	}
}

func TestRenderRpPg(t *testing.T) {
	dir := t.TempDir()
	files, err := RenderRpPg(dir, RpPgOptions{
		Alpha: 0.45, AlphaMin: 0.30, AlphaMax: 0.60, PgMax: 40, WriteCSV: true,
	})
	assertWritten(t, files, err, 3)
	assert.Equal(t, filepath.Join(dir, "rp_vs_pg.png"), files[0])
	assert.Equal(t, filepath.Join(dir, "rp_vs_pg.pdf"), files[1])
	assert.Equal(t, filepath.Join(dir, "rp_vs_pg.csv"), files[2])
}

func TestRenderRubisco(t *testing.T) {
	dir := t.TempDir()
	opt := RubiscoOptions{RpMax: 20, Ks: 2.5, Kc: 40, Ko: 25, WriteCSV: true}

	files, err := RenderRubiscoResponse(dir, opt)
	assertWritten(t, files, err, 3)

	files, err = RenderRubiscoSurface(dir, opt)
	assertWritten(t, files, err, 2)
}

func TestRenderRubiscoBadConstants(t *testing.T) {
	_, err := RenderRubiscoResponse(t.TempDir(), RubiscoOptions{RpMax: 20, Ks: 0, Kc: 40, Ko: 25})
	assert.Error(t, err)
}

func TestRenderNetPhotosynthesis(t *testing.T) {
	dir := t.TempDir()
	opt := NetPhotoOptions{VcMax: 100, Rd: 2, WriteCSV: true}

	files, err := RenderNetPhotosynthesis(dir, opt)
	assertWritten(t, files, err, 3)

	files, err = RenderNetPhotosynthesisStacked(dir, opt)
	assertWritten(t, files, err, 3)

	files, err = RenderOxygenationSensitivity(dir, opt)
	assertWritten(t, files, err, 3)
}

func TestRenderMaintenance(t *testing.T) {
	dir := t.TempDir()
	opt := MaintenanceOptions{WriteCSV: true}

	files, err := RenderMaintenanceOrgans(dir, opt)
	assertWritten(t, files, err, 3)

	files, err = RenderMaintenanceSensitivity(dir, opt)
	assertWritten(t, files, err, 3)

	files, err = RenderMaintenanceCoefficients(dir, opt)
	assertWritten(t, files, err, 3)
}

func TestRenderTemperature(t *testing.T) {
	dir := t.TempDir()
	opt := TemperatureOptions{Rm0: 5, T0: 25, WriteCSV: true}

	files, err := RenderTemperatureResponse(dir, opt)
	assertWritten(t, files, err, 3)

	files, err = RenderQ10Sensitivity(dir, opt)
	assertWritten(t, files, err, 3)

	files, err = RenderRelativeTemperatureResponse(dir, opt)
	assertWritten(t, files, err, 3)
}

func TestRenderNitrogen(t *testing.T) {
	dir := t.TempDir()
	opt := NitrogenOptions{WriteCSV: true}

	files, err := RenderNitrogenResponse(dir, opt)
	assertWritten(t, files, err, 3)

	files, err = RenderNitrogenOrgans(dir, opt)
	assertWritten(t, files, err, 3)

	files, err = RenderNitrogenRelativeChange(dir, opt)
	assertWritten(t, files, err, 3)
}

func TestRenderGrowth(t *testing.T) {
	dir := t.TempDir()
	opt := GrowthOptions{Coefficient: 0.25, WriteCSV: true}

	files, err := RenderGrowthResponse(dir, opt)
	assertWritten(t, files, err, 3)

	files, err = RenderGrowthCoefficients(dir, opt)
	assertWritten(t, files, err, 3)

	files, err = RenderGrowthSeasonal(dir, opt)
	assertWritten(t, files, err, 3)

	files, err = RenderGrowthComposite(dir, opt)
	assertWritten(t, files, err, 3)
}

func TestRenderGrowthSeasonalCustomSeries(t *testing.T) {
	dir := t.TempDir()
	files, err := RenderGrowthSeasonal(dir, GrowthOptions{
		Coefficient: 0.25,
		Days:        []float64{0, 1, 2, 3},
		GTW:         []float64{5, 10, 15, 10},
	})
	assertWritten(t, files, err, 2)
}

func TestRenderGrowthSeasonalMismatchedSeries(t *testing.T) {
	_, err := RenderGrowthSeasonal(t.TempDir(), GrowthOptions{
		Coefficient: 0.25,
		Days:        []float64{0, 1},
		GTW:         []float64{5},
	})
	assert.Error(t, err)
}

func TestSampleMarkersStayInterior(t *testing.T) {
	xs := make([]float64, 100)
	ys := make([]float64, 100)
	for i := range xs {
		xs[i] = float64(i)
		ys[i] = float64(2 * i)
	}
	pts := sampleMarkers(xs, ys, 5)
	require.Len(t, pts, 5)
	assert.GreaterOrEqual(t, pts[0].X, 10.0)
	assert.LessOrEqual(t, pts[4].X, 89.0)
}
