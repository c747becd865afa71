// Package respiration evaluates the closed-form crop respiration and
// photosynthesis formulas used throughout the figure set: the linear
// photorespiration relation, Rubisco-kinetics photorespiration, net
// photosynthesis partitioning, maintenance respiration with temperature
// and nitrogen modifiers, and growth respiration.
//
// All evaluators are stateless pure functions over float64 inputs.
package respiration

import "fmt"

// Default coefficients and documented typical ranges.
// Units follow the source formulas: photosynthetic rates in
// μmol CO2 m-2 s-1, maintenance respiration in g CH2O m-2 d-1,
// growth respiration in g CO2 m-2 d-1.
const (
	// Ratio of photorespiration to gross photosynthesis, -
	DefaultAlpha  = 0.45
	AlphaRangeMin = 0.30
	AlphaRangeMax = 0.60

	// Maximum photorespiration rate, μmol CO2 m-2 s-1
	DefaultRpMax = 20.0

	// Michaelis constant of O2, mmol mol-1
	DefaultKs = 2.5

	// Michaelis constant of CO2, μmol mol-1
	DefaultKc = 40.0

	// Inhibition constant of O2, mmol mol-1
	DefaultKo = 25.0

	// Dark respiration rate, μmol CO2 m-2 s-1
	DefaultRd = 2.0

	// Temperature coefficient of maintenance respiration, -
	DefaultQ10  = 2.0
	Q10RangeMin = 1.5
	Q10RangeMax = 3.0

	// Reference temperature for the Q10 relation, degree C
	DefaultT0 = 25.0
)

// DomainError reports an input outside the mathematical domain of a
// formula, such as a zero denominator constant or a negative
// concentration. Evaluation stops immediately; the result is not usable.
type DomainError struct {
	Param  string
	Value  float64
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("respiration: %s = %g: %s", e.Param, e.Value, e.Reason)
}

// RangeAdvisory reports a coefficient outside its documented typical
// range. The ranges are guidance from the literature, not hard
// constraints, so an advisory never blocks evaluation.
type RangeAdvisory struct {
	Param string
	Value float64
	Min   float64
	Max   float64
}

func (a RangeAdvisory) String() string {
	return fmt.Sprintf("%s = %g outside typical range %g–%g", a.Param, a.Value, a.Min, a.Max)
}

// advise returns an advisory when value lies outside [min, max],
// nil otherwise.
func advise(param string, value, min, max float64) *RangeAdvisory {
	if value < min || value > max {
		return &RangeAdvisory{Param: param, Value: value, Min: min, Max: max}
	}
	return nil
}

// AdviseAlpha checks α against its documented range 0.30–0.60.
func AdviseAlpha(alpha float64) *RangeAdvisory {
	return advise("alpha", alpha, AlphaRangeMin, AlphaRangeMax)
}

// AdviseQ10 checks Q10 against its documented range 1.5–3.0.
func AdviseQ10(q10 float64) *RangeAdvisory {
	return advise("Q10", q10, Q10RangeMin, Q10RangeMax)
}
