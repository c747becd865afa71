package respiration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemperatureModifiedRespirationFixedPoints(t *testing.T) {
	// R_m(T0) = R_m0 exactly.
	r_m, err := TemperatureModifiedRespiration(DefaultT0, 5.0, DefaultQ10, DefaultT0)
	require.NoError(t, err)
	assert.Equal(t, 5.0, r_m)

	// R_m(T0 + 10) = R_m0 · Q10 exactly.
	r_m, err = TemperatureModifiedRespiration(DefaultT0+10, 5.0, DefaultQ10, DefaultT0)
	require.NoError(t, err)
	assert.Equal(t, 10.0, r_m)

	// One 10-degree step down halves the rate at Q10 = 2.
	r_m, err = TemperatureModifiedRespiration(DefaultT0-10, 5.0, 2.0, DefaultT0)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, r_m, 1e-12)
}

func TestTemperatureModifiedRespirationEndToEnd(t *testing.T) {
	// R_m0 = 5 g CH2O m-2 d-1, Q10 = 2, T0 = 25, T = 35 => 10.
	r_m, err := TemperatureModifiedRespiration(35, 5, 2, 25)
	require.NoError(t, err)
	assert.Equal(t, 10.0, r_m)
}

func TestTemperatureResponseMonotonic(t *testing.T) {
	temps := Linspace(0, 40, 300)
	r_m, err := TemperatureResponse(temps, 5.0, DefaultQ10, DefaultT0)
	require.NoError(t, err)
	require.Len(t, r_m, len(temps))
	for i := 1; i < len(r_m); i++ {
		assert.Greater(t, r_m[i], r_m[i-1])
	}
}

func TestQ10Sensitivity(t *testing.T) {
	q10 := Linspace(1.2, 3.5, 100)

	// Above T0 a larger Q10 means more respiration...
	above, err := Q10Sensitivity(q10, 35, 5.0, DefaultT0)
	require.NoError(t, err)
	for i := 1; i < len(above); i++ {
		assert.Greater(t, above[i], above[i-1])
	}

	// ...at T0 the rate is independent of Q10.
	at, err := Q10Sensitivity(q10, DefaultT0, 5.0, DefaultT0)
	require.NoError(t, err)
	for _, v := range at {
		assert.InDelta(t, 5.0, v, 1e-12)
	}
}

func TestRelativeTemperatureResponse(t *testing.T) {
	temps := []float64{15, 25, 35}
	rel, err := RelativeTemperatureResponse(temps, 2.0, 25)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, rel[0], 1e-12)
	assert.InDelta(t, 1.0, rel[1], 1e-12)
	assert.InDelta(t, 2.0, rel[2], 1e-12)
}

func TestTemperatureDomainError(t *testing.T) {
	var domainErr *DomainError

	_, err := TemperatureModifiedRespiration(30, 5, 0, 25)
	require.ErrorAs(t, err, &domainErr)

	_, err = TemperatureResponse([]float64{20}, 5, -1, 25)
	require.ErrorAs(t, err, &domainErr)

	_, err = Q10Sensitivity([]float64{2, 0}, 30, 5, 25)
	require.ErrorAs(t, err, &domainErr)
}

func TestAdviseQ10(t *testing.T) {
	assert.Nil(t, AdviseQ10(2.0))
	assert.NotNil(t, AdviseQ10(1.2))
	assert.NotNil(t, AdviseQ10(3.5))
}
