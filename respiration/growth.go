package respiration

/*
Growth respiration: the carbon cost of synthesizing new tissue.

	R_g = m · GTW

The organ-level coefficient m is a mass-fraction-weighted sum over the
chemical components of the new tissue,

	m_i = Σ_j f_j · m_j

with fixed per-component coefficients m_j. The fractions of an organ's
declared components should sum to 1; this is a documented invariant of
the inputs, not an enforced one, so the fraction sum is reported back
to the caller.
*/

// ChemicalComponent is one chemical constituent of new tissue with its
// documented synthesis costs.
type ChemicalComponent struct {
	Name string

	// Growth respiration coefficient, g CO2 g-1
	GrowthCoefficient float64

	// Carbon content, g C g-1 DM
	CarbonContent float64

	// Glucose requirement of synthesis, g glucose g-1 DM
	GlucoseRequirement float64
}

// ChemicalComponents returns the documented component table. Organic
// acid synthesis slightly releases CO2-fixing energy, hence the
// negative coefficient.
func ChemicalComponents() []ChemicalComponent {
	return []ChemicalComponent{
		{Name: "carbohydrate", GrowthCoefficient: 0.17, CarbonContent: 0.450, GlucoseRequirement: 1.242},
		{Name: "protein", GrowthCoefficient: 2.01, CarbonContent: 0.532, GlucoseRequirement: 2.70},
		{Name: "lipid", GrowthCoefficient: 1.72, CarbonContent: 0.773, GlucoseRequirement: 3.11},
		{Name: "lignin", GrowthCoefficient: 0.66, CarbonContent: 0.690, GlucoseRequirement: 2.17},
		{Name: "organic acid", GrowthCoefficient: -0.01, CarbonContent: 0.375, GlucoseRequirement: 0.93},
	}
}

// MassFraction assigns a mass fraction of an organ's new tissue to a
// chemical component.
type MassFraction struct {
	Component ChemicalComponent
	Fraction  float64
}

// OrganComposition is a named set of component mass fractions.
type OrganComposition struct {
	Name      string
	Fractions []MassFraction
}

// TypicalOrganCompositions returns illustrative component fractions
// for the four organs of the composite-coefficient figure. Fractions
// are aligned with ChemicalComponents and sum to 1 per organ.
func TypicalOrganCompositions() []OrganComposition {
	components := ChemicalComponents()
	build := func(name string, fractions []float64) OrganComposition {
		oc := OrganComposition{Name: name}
		for j, f := range fractions {
			oc.Fractions = append(oc.Fractions, MassFraction{Component: components[j], Fraction: f})
		}
		return oc
	}
	return []OrganComposition{
		build("leaf", []float64{0.30, 0.20, 0.10, 0.15, 0.25}),
		build("stem", []float64{0.45, 0.08, 0.05, 0.35, 0.07}),
		build("root", []float64{0.40, 0.12, 0.08, 0.30, 0.10}),
		build("grain", []float64{0.60, 0.20, 0.15, 0.03, 0.02}),
	}
}

/*
Compute the composite growth respiration coefficient of an organ.

	Args:
	    fractions: component mass fractions of the new tissue, [j]

	Returns:
	    composite coefficient m_i, g CO2 g-1 DM
	    sum of the supplied fractions (should be 1), -
*/
func CompositeGrowthCoefficient(fractions []MassFraction) (float64, float64, error) {
	m := 0.0
	sum := 0.0
	for _, f := range fractions {
		if f.Fraction < 0 {
			return 0, 0, &DomainError{Param: "f_" + f.Component.Name, Value: f.Fraction, Reason: "mass fraction must be non-negative"}
		}
		m += f.Fraction * f.Component.GrowthCoefficient
		sum += f.Fraction
	}
	return m, sum, nil
}

/*
Compute the growth respiration rate.

	Args:
	    gtw: daily total assimilate production, g DM m-2 d-1
	    m: growth respiration coefficient, g CO2 g-1 DM

	Returns:
	    growth respiration rate, g CO2 m-2 d-1
*/
func GrowthRespiration(gtw, m float64) (float64, error) {
	if gtw < 0 {
		return 0, &DomainError{Param: "GTW", Value: gtw, Reason: "assimilate mass must be non-negative"}
	}
	return m * gtw, nil
}

/*
Compute the growth respiration rate over an assimilate series. The
series is whatever the caller supplies: a GTW sweep for the linear
response figure, or a day-by-day assimilate record for the seasonal
figure. No intrinsic seasonal model exists.

	Args:
	    gtw: daily total assimilate production, g DM m-2 d-1, [n]
	    m: growth respiration coefficient, g CO2 g-1 DM

	Returns:
	    growth respiration rate, g CO2 m-2 d-1, [n]
*/
func GrowthRespirationSeries(gtw []float64, m float64) ([]float64, error) {
	for _, g := range gtw {
		if g < 0 {
			return nil, &DomainError{Param: "GTW", Value: g, Reason: "assimilate mass must be non-negative"}
		}
	}
	return evalCurve(gtw, func(g float64) float64 {
		return m * g
	}), nil
}
