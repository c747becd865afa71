package figure

import (
	"fmt"
	"math"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/YuanyuanMa03/crop-model-figure/internal/recorder"
	"github.com/YuanyuanMa03/crop-model-figure/respiration"
)

// GrowthOptions configures the growth respiration figures.
type GrowthOptions struct {
	// Composite growth respiration coefficient of the seasonal
	// figure, g CO2 g-1 DM
	Coefficient float64

	GtwMax float64

	// Caller-supplied daily assimilate series for the seasonal
	// figure. Nil falls back to the illustrative Gaussian season.
	Days []float64
	GTW  []float64

	Samples  int
	WriteCSV bool
}

func (o *GrowthOptions) defaults() {
	if o.Samples == 0 {
		o.Samples = 300
	}
	if o.GtwMax == 0 {
		o.GtwMax = 30
	}
	if o.GTW == nil {
		// Illustrative 100-day season: assimilate production rising
		// to 25 g DM m-2 d-1 at day 50 and falling off again. There
		// is no intrinsic seasonal model; any series can be supplied.
		o.Days = respiration.Linspace(0, 99, 100)
		o.GTW = make([]float64, len(o.Days))
		for i, d := range o.Days {
			x := (d - 50) / 25
			o.GTW[i] = 25 * math.Exp(-x*x)
		}
	}
}

/*
Render the linear response R_g = m · GTW at several coefficients.

	Outputs:
	    growth_respiration.png, .pdf (and .csv with WriteCSV)
*/
func RenderGrowthResponse(dir string, opt GrowthOptions) ([]string, error) {
	opt.defaults()

	gtw := respiration.Linspace(0, opt.GtwMax, opt.Samples)

	p := newPlot(
		"Growth respiration vs daily assimilate production",
		"GTW (g DM m-2 d-1)",
		"R_g (g CO2 m-2 d-1)",
	)

	rec := recorder.New()
	for i, m := range []float64{0.20, 0.25, 0.30, 0.35} {
		curve, err := respiration.GrowthRespirationSeries(gtw, m)
		if err != nil {
			return nil, err
		}
		label := fmt.Sprintf("m = %.2f", m)
		if m == 0.25 {
			label += " (typical)"
		}
		if err := addCurve(p, label, gtw, curve, i, true); err != nil {
			return nil, err
		}
		if opt.WriteCSV {
			if err := rec.Record(label, gtw, curve); err != nil {
				return nil, err
			}
		}
	}

	files, err := save(p, 7*vg.Inch, 5*vg.Inch, dir, "growth_respiration")
	if err != nil {
		return nil, err
	}
	if opt.WriteCSV {
		path, err := rec.Save(dir, "growth_respiration")
		if err != nil {
			return nil, err
		}
		files = append(files, path)
	}
	return files, nil
}

/*
Render the fixed growth respiration coefficients of the chemical
components. Organic acid dips below zero.

	Outputs:
	    growth_respiration_coefficients.png, .pdf (and .csv with WriteCSV)
*/
func RenderGrowthCoefficients(dir string, opt GrowthOptions) ([]string, error) {
	components := respiration.ChemicalComponents()

	names := make([]string, len(components))
	values := make([]float64, len(components))
	for i, c := range components {
		names[i] = c.Name
		values[i] = c.GrowthCoefficient
	}

	p := newPlot(
		"Growth respiration coefficients of chemical components",
		"",
		"m_j (g CO2 g-1 DM)",
	)

	bars, err := plotter.NewBarChart(plotter.Values(values), vg.Points(30))
	if err != nil {
		return nil, err
	}
	bars.Color = gray(0.55)
	bars.LineStyle.Width = vg.Points(1)
	p.Add(bars)
	p.NominalX(names...)

	files, err := save(p, 7.5*vg.Inch, 5*vg.Inch, dir, "growth_respiration_coefficients")
	if err != nil {
		return nil, err
	}
	if opt.WriteCSV {
		rec := recorder.New()
		rec.RecordValues("m_j", values)
		path, err := rec.Save(dir, "growth_respiration_coefficients")
		if err != nil {
			return nil, err
		}
		files = append(files, path)
	}
	return files, nil
}

/*
Render the seasonal view: the supplied daily assimilate series and the
growth respiration it drives.

	Outputs:
	    growth_respiration_seasonal.png, .pdf (and .csv with WriteCSV)
*/
func RenderGrowthSeasonal(dir string, opt GrowthOptions) ([]string, error) {
	opt.defaults()
	if len(opt.Days) != len(opt.GTW) {
		return nil, fmt.Errorf("figure: seasonal series: %d days but %d GTW values", len(opt.Days), len(opt.GTW))
	}

	r_g, err := respiration.GrowthRespirationSeries(opt.GTW, opt.Coefficient)
	if err != nil {
		return nil, err
	}

	p := newPlot(
		fmt.Sprintf("Assimilate production and growth respiration over the season (m = %.2f)", opt.Coefficient),
		"day of season",
		"rate (g m-2 d-1)",
	)

	if err := addCurve(p, "GTW (g DM m-2 d-1)", opt.Days, opt.GTW, 0, true); err != nil {
		return nil, err
	}
	if err := addCurve(p, "R_g (g CO2 m-2 d-1)", opt.Days, r_g, 1, true); err != nil {
		return nil, err
	}

	files, err := save(p, 9*vg.Inch, 5.5*vg.Inch, dir, "growth_respiration_seasonal")
	if err != nil {
		return nil, err
	}
	if opt.WriteCSV {
		rec := recorder.New()
		if err := rec.Record("GTW", opt.Days, opt.GTW); err != nil {
			return nil, err
		}
		if err := rec.Record("R_g", opt.Days, r_g); err != nil {
			return nil, err
		}
		path, err := rec.Save(dir, "growth_respiration_seasonal")
		if err != nil {
			return nil, err
		}
		files = append(files, path)
	}
	return files, nil
}

/*
Render the composite coefficient example: for each typical organ
composition, the mass-fraction-weighted coefficient m_i = Σ f_j · m_j.

	Outputs:
	    growth_respiration_composite.png, .pdf (and .csv with WriteCSV)
*/
func RenderGrowthComposite(dir string, opt GrowthOptions) ([]string, error) {
	organs := respiration.TypicalOrganCompositions()

	names := make([]string, len(organs))
	values := make([]float64, len(organs))
	for i, organ := range organs {
		m, _, err := respiration.CompositeGrowthCoefficient(organ.Fractions)
		if err != nil {
			return nil, err
		}
		names[i] = organ.Name
		values[i] = m
	}

	p := newPlot(
		"Composite growth respiration coefficients by organ",
		"",
		"m_i (g CO2 g-1 DM)",
	)

	bars, err := plotter.NewBarChart(plotter.Values(values), vg.Points(30))
	if err != nil {
		return nil, err
	}
	bars.Color = gray(0.5)
	bars.LineStyle.Width = vg.Points(1)
	p.Add(bars)
	p.NominalX(names...)

	files, err := save(p, 7.5*vg.Inch, 5*vg.Inch, dir, "growth_respiration_composite")
	if err != nil {
		return nil, err
	}
	if opt.WriteCSV {
		rec := recorder.New()
		rec.RecordValues("m_i", values)
		for _, organ := range organs {
			fractions := make([]float64, len(organ.Fractions))
			for j, f := range organ.Fractions {
				fractions[j] = f.Fraction
			}
			rec.RecordValues("fraction_"+organ.Name, fractions)
		}
		path, err := rec.Save(dir, "growth_respiration_composite")
		if err != nil {
			return nil, err
		}
		files = append(files, path)
	}
	return files, nil
}
