package respiration

import "math"

/*
Compute the maintenance respiration rate at a given temperature.

	Args:
	    t: temperature, degree C
	    r_m0: maintenance respiration rate at the reference temperature, g CH2O m-2 d-1
	    q10: temperature coefficient, -
	    t0: reference temperature, degree C

	Returns:
	    maintenance respiration rate at t, g CH2O m-2 d-1

	Notes:
	    R_m(T) = R_m0 · Q10^((T - T0) / 10)
	    R_m(T0) = R_m0 and R_m(T0 + 10) = R_m0 · Q10 hold exactly.
*/
func TemperatureModifiedRespiration(t, r_m0, q10, t0 float64) (float64, error) {
	if q10 <= 0 {
		return 0, &DomainError{Param: "Q10", Value: q10, Reason: "temperature coefficient must be positive"}
	}
	return r_m0 * math.Pow(q10, (t-t0)/10.0), nil
}

/*
Compute the maintenance respiration response over a temperature grid.

	Args:
	    t: temperature grid, degree C, [n]
	    r_m0: maintenance respiration rate at the reference temperature, g CH2O m-2 d-1
	    q10: temperature coefficient, -
	    t0: reference temperature, degree C

	Returns:
	    maintenance respiration rate, g CH2O m-2 d-1, [n]
*/
func TemperatureResponse(t []float64, r_m0, q10, t0 float64) ([]float64, error) {
	if q10 <= 0 {
		return nil, &DomainError{Param: "Q10", Value: q10, Reason: "temperature coefficient must be positive"}
	}
	return evalCurve(t, func(x float64) float64 {
		return r_m0 * math.Pow(q10, (x-t0)/10.0)
	}), nil
}

/*
Compute the sensitivity of maintenance respiration to Q10 at a fixed
temperature.

	Args:
	    q10: temperature coefficient grid, -, [n]
	    t: temperature, degree C
	    r_m0: maintenance respiration rate at the reference temperature, g CH2O m-2 d-1
	    t0: reference temperature, degree C

	Returns:
	    maintenance respiration rate, g CH2O m-2 d-1, [n]
*/
func Q10Sensitivity(q10 []float64, t, r_m0, t0 float64) ([]float64, error) {
	for _, q := range q10 {
		if q <= 0 {
			return nil, &DomainError{Param: "Q10", Value: q, Reason: "temperature coefficient must be positive"}
		}
	}
	return evalCurve(q10, func(q float64) float64 {
		return r_m0 * math.Pow(q, (t-t0)/10.0)
	}), nil
}

/*
Compute the relative change of maintenance respiration with temperature.

	Args:
	    t: temperature grid, degree C, [n]
	    q10: temperature coefficient, -
	    t0: reference temperature, degree C

	Returns:
	    R_m(T) / R_m0 = Q10^((T - T0) / 10), -, [n]
*/
func RelativeTemperatureResponse(t []float64, q10, t0 float64) ([]float64, error) {
	return TemperatureResponse(t, 1.0, q10, t0)
}
