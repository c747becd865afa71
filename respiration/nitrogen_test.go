package respiration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNitrogenAdjustedCoefficientIdentity(t *testing.T) {
	// r'_m,i = r_ref exactly when N_i = N_ref.
	for _, ref := range OrganNitrogenReferences() {
		r, err := NitrogenAdjustedCoefficient(ref.NRef, ref.RRef, ref.NRef)
		require.NoError(t, err)
		assert.Equal(t, ref.RRef, r, ref.Name)
	}
}

func TestNitrogenAdjustedCoefficientProportional(t *testing.T) {
	r, err := NitrogenAdjustedCoefficient(6.0, 0.015, 3.0)
	require.NoError(t, err)
	assert.InDelta(t, 0.030, r, 1e-12)

	r, err = NitrogenAdjustedCoefficient(1.5, 0.015, 3.0)
	require.NoError(t, err)
	assert.InDelta(t, 0.0075, r, 1e-12)
}

func TestNitrogenAdjustedCoefficientZeroReference(t *testing.T) {
	_, err := NitrogenAdjustedCoefficient(3.0, 0.015, 0)
	var domainErr *DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "N_ref", domainErr.Param)

	_, err = NitrogenAdjustedCurve([]float64{1, 2}, 0.015, 0)
	require.ErrorAs(t, err, &domainErr)
}

func TestNitrogenAdjustedCoefficientNegativeContent(t *testing.T) {
	_, err := NitrogenAdjustedCoefficient(-0.5, 0.015, 3.0)
	var domainErr *DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "N_i", domainErr.Param)
}

func TestNitrogenAdjustedCurve(t *testing.T) {
	n_i := Linspace(0.5, 6.0, 300)
	curve, err := NitrogenAdjustedCurve(n_i, 0.015, 3.0)
	require.NoError(t, err)
	require.Len(t, curve, len(n_i))
	for i := range n_i {
		assert.InDelta(t, 0.015*n_i[i]/3.0, curve[i], 1e-12)
	}
}

func TestNitrogenRelativeChange(t *testing.T) {
	rel, err := NitrogenRelativeChange([]float64{1.5, 3.0, 4.5}, 3.0)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, rel[0], 1e-12)
	assert.InDelta(t, 1.0, rel[1], 1e-12)
	assert.InDelta(t, 1.5, rel[2], 1e-12)
}

func TestOrganNitrogenReferencesTable(t *testing.T) {
	refs := OrganNitrogenReferences()
	require.Len(t, refs, 3)
	assert.Equal(t, OrganNitrogenReference{Name: "leaf", NRef: 3.0, RRef: 0.015}, refs[0])
	assert.Equal(t, OrganNitrogenReference{Name: "stem", NRef: 1.5, RRef: 0.010}, refs[1])
	assert.Equal(t, OrganNitrogenReference{Name: "root", NRef: 2.0, RRef: 0.012}, refs[2])
}
