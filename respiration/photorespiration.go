package respiration

import "gonum.org/v1/gonum/mat"

/*
Compute the photorespiration rate from the gross photosynthesis rate.

	Args:
	    p_g: gross photosynthesis rate, μmol CO2 m-2 s-1
	    alpha: ratio of photorespiration to gross photosynthesis, -

	Returns:
	    photorespiration rate, μmol CO2 m-2 s-1

	Notes:
	    R_p = α · P_g
	    Linear and monotonic for P_g >= 0. The documented range of α
	    (0.30–0.60) is advisory, see AdviseAlpha.
*/
func LinearPhotorespiration(p_g, alpha float64) float64 {
	return alpha * p_g
}

/*
Compute the photorespiration rate over a grid of gross photosynthesis rates.

	Args:
	    p_g: gross photosynthesis rate grid, μmol CO2 m-2 s-1, [n]
	    alpha: ratio of photorespiration to gross photosynthesis, -

	Returns:
	    photorespiration rate, μmol CO2 m-2 s-1, [n]
*/
func LinearPhotorespirationCurve(p_g []float64, alpha float64) []float64 {
	return evalCurve(p_g, func(x float64) float64 {
		return LinearPhotorespiration(x, alpha)
	})
}

/*
Compute the envelope of photorespiration rates spanned by a range of α.

	Args:
	    p_g: gross photosynthesis rate grid, μmol CO2 m-2 s-1, [n]
	    alpha_min: lower bound of α, -
	    alpha_max: upper bound of α, -

	Returns:
	    lower envelope, μmol CO2 m-2 s-1, [n]
	    upper envelope, μmol CO2 m-2 s-1, [n]
*/
func LinearPhotorespirationBand(p_g []float64, alpha_min, alpha_max float64) ([]float64, []float64) {
	return LinearPhotorespirationCurve(p_g, alpha_min), LinearPhotorespirationCurve(p_g, alpha_max)
}

/*
Compute the photorespiration rate from Rubisco oxygenation kinetics.

	Args:
	    co2: CO2 concentration, μmol mol-1
	    o2: O2 concentration, mmol mol-1
	    rp_max: maximum photorespiration rate, μmol CO2 m-2 s-1
	    k_s: Michaelis constant of O2, mmol mol-1
	    k_c: Michaelis constant of CO2, μmol mol-1
	    k_o: inhibition constant of O2, mmol mol-1

	Returns:
	    photorespiration rate, μmol CO2 m-2 s-1

	Notes:
	    R_p = R_p,max · (O2/K_s) / ((CO2/K_c) + 1 + O2/K_o)
	    The constant term keeps the denominator >= 1 for all
	    non-negative concentrations, so R_p(0, 0) = 0 without a
	    division by zero.
*/
func RubiscoPhotorespiration(co2, o2, rp_max, k_s, k_c, k_o float64) (float64, error) {
	if err := checkRubiscoInputs(co2, o2, k_s, k_c, k_o); err != nil {
		return 0, err
	}
	return rp_max * (o2 / k_s) / ((co2 / k_c) + 1.0 + o2/k_o), nil
}

/*
Compute the Rubisco photorespiration response over a CO2 grid at fixed O2.

	Args:
	    co2: CO2 concentration grid, μmol mol-1, [n]
	    o2: O2 concentration, mmol mol-1
	    rp_max: maximum photorespiration rate, μmol CO2 m-2 s-1
	    k_s: Michaelis constant of O2, mmol mol-1
	    k_c: Michaelis constant of CO2, μmol mol-1
	    k_o: inhibition constant of O2, mmol mol-1

	Returns:
	    photorespiration rate, μmol CO2 m-2 s-1, [n]
*/
func RubiscoCurve(co2 []float64, o2, rp_max, k_s, k_c, k_o float64) ([]float64, error) {
	for _, c := range co2 {
		if err := checkRubiscoInputs(c, o2, k_s, k_c, k_o); err != nil {
			return nil, err
		}
	}
	return evalCurve(co2, func(c float64) float64 {
		return rp_max * (o2 / k_s) / ((c / k_c) + 1.0 + o2/k_o)
	}), nil
}

/*
Compute the Rubisco photorespiration surface over a CO2 × O2 grid.

	Args:
	    co2: CO2 concentration grid, μmol mol-1, [nc]
	    o2: O2 concentration grid, mmol mol-1, [no]
	    rp_max: maximum photorespiration rate, μmol CO2 m-2 s-1
	    k_s: Michaelis constant of O2, mmol mol-1
	    k_c: Michaelis constant of CO2, μmol mol-1
	    k_o: inhibition constant of O2, mmol mol-1

	Returns:
	    photorespiration surface, μmol CO2 m-2 s-1, [no, nc]
*/
func RubiscoSurface(co2, o2 []float64, rp_max, k_s, k_c, k_o float64) (*mat.Dense, error) {
	for _, c := range co2 {
		for _, o := range o2 {
			if err := checkRubiscoInputs(c, o, k_s, k_c, k_o); err != nil {
				return nil, err
			}
		}
	}
	return EvalSurface(co2, o2, func(c, o float64) float64 {
		return rp_max * (o / k_s) / ((c / k_c) + 1.0 + o/k_o)
	}), nil
}

func checkRubiscoInputs(co2, o2, k_s, k_c, k_o float64) error {
	switch {
	case k_s == 0:
		return &DomainError{Param: "K_s", Value: k_s, Reason: "Michaelis constant must be non-zero"}
	case k_c == 0:
		return &DomainError{Param: "K_c", Value: k_c, Reason: "Michaelis constant must be non-zero"}
	case k_o == 0:
		return &DomainError{Param: "K_o", Value: k_o, Reason: "inhibition constant must be non-zero"}
	case co2 < 0:
		return &DomainError{Param: "CO2", Value: co2, Reason: "concentration must be non-negative"}
	case o2 < 0:
		return &DomainError{Param: "O2", Value: o2, Reason: "concentration must be non-negative"}
	}
	return nil
}
