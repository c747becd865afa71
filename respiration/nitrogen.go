package respiration

/*
Nitrogen modifier on the maintenance respiration coefficient.

	r'_m,i = r_ref · (N_i / N_ref)

Maintenance cost tracks protein turnover, which scales with tissue
nitrogen content relative to the reference content the coefficient was
measured at.
*/

// OrganNitrogenReference holds the documented reference nitrogen
// content and the maintenance coefficient measured at that content.
type OrganNitrogenReference struct {
	Name string

	// Reference nitrogen content, % of dry weight
	NRef float64

	// Maintenance coefficient at NRef, g CH2O g-1 d-1
	RRef float64
}

// OrganNitrogenReferences returns the documented per-organ reference
// nitrogen contents and coefficients.
func OrganNitrogenReferences() []OrganNitrogenReference {
	return []OrganNitrogenReference{
		{Name: "leaf", NRef: 3.0, RRef: 0.015},
		{Name: "stem", NRef: 1.5, RRef: 0.010},
		{Name: "root", NRef: 2.0, RRef: 0.012},
	}
}

/*
Compute the nitrogen-adjusted maintenance respiration coefficient.

	Args:
	    n_i: current nitrogen content, % of dry weight
	    r_ref: reference maintenance coefficient, g CH2O g-1 d-1
	    n_ref: reference nitrogen content, % of dry weight

	Returns:
	    adjusted maintenance coefficient, g CH2O g-1 d-1

	Notes:
	    r'_m,i = r_ref · (N_i / N_ref)
	    Linear and proportional; r'_m,i = r_ref exactly at N_i = N_ref.
*/
func NitrogenAdjustedCoefficient(n_i, r_ref, n_ref float64) (float64, error) {
	if err := checkNitrogenInputs(n_i, n_ref); err != nil {
		return 0, err
	}
	return r_ref * (n_i / n_ref), nil
}

/*
Compute the nitrogen-adjusted coefficient over a nitrogen content grid.

	Args:
	    n_i: nitrogen content grid, % of dry weight, [n]
	    r_ref: reference maintenance coefficient, g CH2O g-1 d-1
	    n_ref: reference nitrogen content, % of dry weight

	Returns:
	    adjusted maintenance coefficient, g CH2O g-1 d-1, [n]
*/
func NitrogenAdjustedCurve(n_i []float64, r_ref, n_ref float64) ([]float64, error) {
	for _, n := range n_i {
		if err := checkNitrogenInputs(n, n_ref); err != nil {
			return nil, err
		}
	}
	return evalCurve(n_i, func(n float64) float64 {
		return r_ref * (n / n_ref)
	}), nil
}

/*
Compute the relative change of the maintenance coefficient with
nitrogen content.

	Args:
	    n_i: nitrogen content grid, % of dry weight, [n]
	    n_ref: reference nitrogen content, % of dry weight

	Returns:
	    r'_m,i / r_ref = N_i / N_ref, -, [n]
*/
func NitrogenRelativeChange(n_i []float64, n_ref float64) ([]float64, error) {
	return NitrogenAdjustedCurve(n_i, 1.0, n_ref)
}

func checkNitrogenInputs(n_i, n_ref float64) error {
	if n_ref == 0 {
		return &DomainError{Param: "N_ref", Value: n_ref, Reason: "reference nitrogen content must be non-zero"}
	}
	if n_i < 0 {
		return &DomainError{Param: "N_i", Value: n_i, Reason: "nitrogen content must be non-negative"}
	}
	return nil
}
