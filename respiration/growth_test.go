package respiration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompositeGrowthCoefficientWorkedExample(t *testing.T) {
	// {carbohydrate 0.6, protein 0.2, lipid 0.1, lignin 0.1}
	// => 0.6·0.17 + 0.2·2.01 + 0.1·1.72 + 0.1·0.66 = 0.742
	components := ChemicalComponents()
	fractions := []MassFraction{
		{Component: components[0], Fraction: 0.6},
		{Component: components[1], Fraction: 0.2},
		{Component: components[2], Fraction: 0.1},
		{Component: components[3], Fraction: 0.1},
	}

	m, sum, err := CompositeGrowthCoefficient(fractions)
	require.NoError(t, err)
	assert.InDelta(t, 0.742, m, 1e-12)
	assert.InDelta(t, 1.0, sum, 1e-12)

	// R_g at GTW = 10 g DM m-2 d-1 is 7.42 g CO2 m-2 d-1.
	r_g, err := GrowthRespiration(10, m)
	require.NoError(t, err)
	assert.InDelta(t, 7.42, r_g, 1e-12)
}

func TestCompositeGrowthCoefficientReportsFractionSum(t *testing.T) {
	components := ChemicalComponents()
	_, sum, err := CompositeGrowthCoefficient([]MassFraction{
		{Component: components[0], Fraction: 0.5},
		{Component: components[1], Fraction: 0.3},
	})
	require.NoError(t, err)
	assert.InDelta(t, 0.8, sum, 1e-12)
}

func TestCompositeGrowthCoefficientNegativeFraction(t *testing.T) {
	components := ChemicalComponents()
	_, _, err := CompositeGrowthCoefficient([]MassFraction{
		{Component: components[0], Fraction: -0.1},
	})
	var domainErr *DomainError
	require.ErrorAs(t, err, &domainErr)
}

func TestGrowthRespiration(t *testing.T) {
	r_g, err := GrowthRespiration(0, 0.25)
	require.NoError(t, err)
	assert.Equal(t, 0.0, r_g)

	r_g, err = GrowthRespiration(20, 0.25)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, r_g, 1e-12)

	_, err = GrowthRespiration(-1, 0.25)
	var domainErr *DomainError
	require.ErrorAs(t, err, &domainErr)
}

func TestGrowthRespirationSeries(t *testing.T) {
	gtw := Linspace(0, 30, 300)
	r_g, err := GrowthRespirationSeries(gtw, 0.25)
	require.NoError(t, err)
	require.Len(t, r_g, len(gtw))
	for i := range gtw {
		assert.InDelta(t, 0.25*gtw[i], r_g[i], 1e-12)
	}

	_, err = GrowthRespirationSeries([]float64{1, -2}, 0.25)
	var domainErr *DomainError
	require.ErrorAs(t, err, &domainErr)
}

func TestChemicalComponentsTable(t *testing.T) {
	components := ChemicalComponents()
	require.Len(t, components, 5)
	assert.Equal(t, "protein", components[1].Name)
	assert.Equal(t, 2.01, components[1].GrowthCoefficient)
	// Organic acid is the only component with a negative coefficient.
	assert.Negative(t, components[4].GrowthCoefficient)
}

func TestTypicalOrganCompositionsSumToOne(t *testing.T) {
	for _, organ := range TypicalOrganCompositions() {
		_, sum, err := CompositeGrowthCoefficient(organ.Fractions)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, sum, 1e-12, organ.Name)
	}
}

func TestTypicalOrganCompositionsGrainRichInProtein(t *testing.T) {
	// The grain composite coefficient exceeds the stem one: grain
	// carries far more protein.
	organs := TypicalOrganCompositions()
	var m_stem, m_grain float64
	for _, organ := range organs {
		m, _, err := CompositeGrowthCoefficient(organ.Fractions)
		require.NoError(t, err)
		switch organ.Name {
		case "stem":
			m_stem = m
		case "grain":
			m_grain = m
		}
	}
	assert.Greater(t, m_grain, m_stem)
}
