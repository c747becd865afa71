package respiration

/*
Compute the net photosynthesis rate.

	Args:
	    v_c: carboxylation rate, μmol CO2 m-2 s-1
	    v_o: oxygenation rate, μmol O2 m-2 s-1
	    r_d: dark respiration rate, μmol CO2 m-2 s-1

	Returns:
	    net photosynthesis rate, μmol CO2 m-2 s-1

	Notes:
	    A_n = V_c - 0.5 · V_o - R_d
	    Each oxygenation releases half a CO2 through the
	    photorespiratory pathway.
*/
func NetPhotosynthesis(v_c, v_o, r_d float64) float64 {
	return v_c - 0.5*v_o - r_d
}

/*
Compute the net photosynthesis response over a carboxylation rate grid.

	Args:
	    v_c: carboxylation rate grid, μmol CO2 m-2 s-1, [n]
	    v_o: oxygenation rate, μmol O2 m-2 s-1
	    r_d: dark respiration rate, μmol CO2 m-2 s-1

	Returns:
	    net photosynthesis rate, μmol CO2 m-2 s-1, [n]
*/
func NetPhotosynthesisCurve(v_c []float64, v_o, r_d float64) []float64 {
	return evalCurve(v_c, func(x float64) float64 {
		return NetPhotosynthesis(x, v_o, r_d)
	})
}

// PhotosynthesisTerms is the additive decomposition of net
// photosynthesis used by the stacked figure: the gross carboxylation
// gain and the two respiratory losses (already signed).
type PhotosynthesisTerms struct {
	Carboxylation    float64 // V_c
	Photorespiration float64 // -0.5 · V_o
	DarkRespiration  float64 // -R_d
}

// Net returns the sum of the three terms.
func (t PhotosynthesisTerms) Net() float64 {
	return t.Carboxylation + t.Photorespiration + t.DarkRespiration
}

/*
Decompose the net photosynthesis rate into its additive terms.

	Args:
	    v_c: carboxylation rate, μmol CO2 m-2 s-1
	    v_o: oxygenation rate, μmol O2 m-2 s-1
	    r_d: dark respiration rate, μmol CO2 m-2 s-1

	Returns:
	    signed terms whose sum equals A_n
*/
func DecomposeNetPhotosynthesis(v_c, v_o, r_d float64) PhotosynthesisTerms {
	return PhotosynthesisTerms{
		Carboxylation:    v_c,
		Photorespiration: -0.5 * v_o,
		DarkRespiration:  -r_d,
	}
}

/*
Compute the sensitivity of net photosynthesis to the oxygenation rate.

	Args:
	    v_o: oxygenation rate grid, μmol O2 m-2 s-1, [n]
	    v_c: carboxylation rate, μmol CO2 m-2 s-1
	    r_d: dark respiration rate, μmol CO2 m-2 s-1

	Returns:
	    net photosynthesis rate, μmol CO2 m-2 s-1, [n]
*/
func OxygenationSensitivity(v_o []float64, v_c, r_d float64) []float64 {
	return evalCurve(v_o, func(x float64) float64 {
		return NetPhotosynthesis(v_c, x, r_d)
	})
}
