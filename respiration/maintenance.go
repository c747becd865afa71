package respiration

/*
Maintenance respiration as a weighted sum over plant organs.

	R_m = Σ_i r_m,i · W_i

The organ set is supplied by the caller; no fixed cardinality is
assumed. Splitting one organ entry into several with the same
coefficient leaves the sum unchanged.
*/

// OrganProfile is one organ's contribution to maintenance respiration.
type OrganProfile struct {
	Name string

	// Dry weight (g DM m-2) or protein mass, matching the basis of
	// the coefficient.
	Weight float64

	// Maintenance respiration coefficient, g CH2O g-1 d-1
	Coefficient float64
}

// OrganCoefficient is the documented maintenance coefficient of an
// organ: typical value plus the literature range.
type OrganCoefficient struct {
	Name    string
	Typical float64
	Min     float64
	Max     float64
}

// OrganCoefficients returns the documented per-organ maintenance
// respiration coefficients, g CH2O g-1 d-1.
func OrganCoefficients() []OrganCoefficient {
	return []OrganCoefficient{
		{Name: "leaf", Typical: 0.015, Min: 0.012, Max: 0.018},
		{Name: "stem", Typical: 0.010, Min: 0.008, Max: 0.012},
		{Name: "root", Typical: 0.012, Min: 0.010, Max: 0.014},
		{Name: "grain", Typical: 0.008, Min: 0.006, Max: 0.010},
		{Name: "flower", Typical: 0.020, Min: 0.016, Max: 0.024},
	}
}

/*
Compute the maintenance respiration rate of a set of organs.

	Args:
	    organs: organ profiles, [i]

	Returns:
	    maintenance respiration rate, g CH2O m-2 d-1
*/
func MaintenanceRespiration(organs []OrganProfile) (float64, error) {
	contributions, err := MaintenanceContributions(organs)
	if err != nil {
		return 0, err
	}
	sum := 0.0
	for _, c := range contributions {
		sum += c
	}
	return sum, nil
}

/*
Compute the per-organ contributions to maintenance respiration.

	Args:
	    organs: organ profiles, [i]

	Returns:
	    contribution of each organ, g CH2O m-2 d-1, [i]
*/
func MaintenanceContributions(organs []OrganProfile) ([]float64, error) {
	contributions := make([]float64, len(organs))
	for i, organ := range organs {
		if organ.Weight < 0 {
			return nil, &DomainError{Param: "W_" + organ.Name, Value: organ.Weight, Reason: "organ mass must be non-negative"}
		}
		contributions[i] = organ.Coefficient * organ.Weight
	}
	return contributions, nil
}

/*
Compute the response of maintenance respiration to one organ's weight
while the remaining organs are held fixed.

	Args:
	    weights: weight grid of the varied organ, g DM m-2, [n]
	    varied: profile of the varied organ (its Weight field is ignored)
	    fixed: profiles of the organs held constant, [i]

	Returns:
	    contribution of the varied organ, g CH2O m-2 d-1, [n]
	    total maintenance respiration, g CH2O m-2 d-1, [n]
*/
func WeightSensitivity(weights []float64, varied OrganProfile, fixed []OrganProfile) ([]float64, []float64, error) {
	base, err := MaintenanceRespiration(fixed)
	if err != nil {
		return nil, nil, err
	}

	contribution := make([]float64, len(weights))
	total := make([]float64, len(weights))
	for i, w := range weights {
		if w < 0 {
			return nil, nil, &DomainError{Param: "W_" + varied.Name, Value: w, Reason: "organ mass must be non-negative"}
		}
		contribution[i] = varied.Coefficient * w
		total[i] = base + contribution[i]
	}
	return contribution, total, nil
}
