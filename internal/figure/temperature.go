package figure

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/YuanyuanMa03/crop-model-figure/internal/recorder"
	"github.com/YuanyuanMa03/crop-model-figure/respiration"
)

// TemperatureOptions configures the Q10 temperature figures.
type TemperatureOptions struct {
	Rm0      float64
	T0       float64
	Q10      []float64
	Samples  int
	WriteCSV bool
}

func (o *TemperatureOptions) defaults() {
	if o.Q10 == nil {
		o.Q10 = []float64{1.5, 2.0, 2.5, 3.0}
	}
	if o.Samples == 0 {
		o.Samples = 300
	}
}

/*
Render the temperature response of maintenance respiration at several
Q10 values, with the reference point (T0, R_m0) marked.

	Outputs:
	    temperature_respiration.png, .pdf (and .csv with WriteCSV)
*/
func RenderTemperatureResponse(dir string, opt TemperatureOptions) ([]string, error) {
	opt.defaults()

	temps := respiration.Linspace(0, 40, opt.Samples)

	p := newPlot(
		"Temperature response of maintenance respiration",
		"T (degree C)",
		"R_m (g CH2O m-2 d-1)",
	)

	rec := recorder.New()
	for i, q10 := range opt.Q10 {
		curve, err := respiration.TemperatureResponse(temps, opt.Rm0, q10, opt.T0)
		if err != nil {
			return nil, err
		}
		label := fmt.Sprintf("Q10 = %.1f", q10)
		if q10 == respiration.DefaultQ10 {
			label += " (typical)"
		}
		if err := addCurve(p, label, temps, curve, i, true); err != nil {
			return nil, err
		}
		if opt.WriteCSV {
			if err := rec.Record(label, temps, curve); err != nil {
				return nil, err
			}
		}
	}

	if err := addReferencePoint(p, opt.T0, opt.Rm0, fmt.Sprintf("reference (T0 = %.0f)", opt.T0)); err != nil {
		return nil, err
	}

	files, err := save(p, 7.5*vg.Inch, 5*vg.Inch, dir, "temperature_respiration")
	if err != nil {
		return nil, err
	}
	if opt.WriteCSV {
		path, err := rec.Save(dir, "temperature_respiration")
		if err != nil {
			return nil, err
		}
		files = append(files, path)
	}
	return files, nil
}

/*
Render the sensitivity of maintenance respiration to Q10 at several
fixed temperatures. At T = T0 the curve is flat: Q10 has no effect at
the reference temperature.

	Outputs:
	    temperature_respiration_q10.png, .pdf (and .csv with WriteCSV)
*/
func RenderQ10Sensitivity(dir string, opt TemperatureOptions) ([]string, error) {
	opt.defaults()

	q10 := respiration.Linspace(1.2, 3.5, opt.Samples)

	p := newPlot(
		"Q10 sensitivity of maintenance respiration",
		"Q10 (-)",
		"R_m (g CH2O m-2 d-1)",
	)

	rec := recorder.New()
	for i, t := range []float64{15, 20, 25, 30, 35} {
		curve, err := respiration.Q10Sensitivity(q10, t, opt.Rm0, opt.T0)
		if err != nil {
			return nil, err
		}
		label := fmt.Sprintf("T = %.0f", t)
		if t == opt.T0 {
			label += " (reference)"
		}
		if err := addCurve(p, label, q10, curve, i, true); err != nil {
			return nil, err
		}
		if opt.WriteCSV {
			if err := rec.Record(label, q10, curve); err != nil {
				return nil, err
			}
		}
	}

	files, err := save(p, 7.5*vg.Inch, 5*vg.Inch, dir, "temperature_respiration_q10")
	if err != nil {
		return nil, err
	}
	if opt.WriteCSV {
		path, err := rec.Save(dir, "temperature_respiration_q10")
		if err != nil {
			return nil, err
		}
		files = append(files, path)
	}
	return files, nil
}

/*
Render the relative change R_m(T)/R_m0 at several Q10 values. All
curves cross 1 at T0.

	Outputs:
	    temperature_respiration_relative.png, .pdf (and .csv with WriteCSV)
*/
func RenderRelativeTemperatureResponse(dir string, opt TemperatureOptions) ([]string, error) {
	opt.defaults()

	temps := respiration.Linspace(0, 40, opt.Samples)

	p := newPlot(
		"Relative change of maintenance respiration with temperature",
		"T (degree C)",
		"R_m(T) / R_m0 (-)",
	)

	rec := recorder.New()
	for i, q10 := range opt.Q10 {
		curve, err := respiration.RelativeTemperatureResponse(temps, q10, opt.T0)
		if err != nil {
			return nil, err
		}
		label := fmt.Sprintf("Q10 = %.1f", q10)
		if err := addCurve(p, label, temps, curve, i, true); err != nil {
			return nil, err
		}
		if opt.WriteCSV {
			if err := rec.Record(label, temps, curve); err != nil {
				return nil, err
			}
		}
	}

	if err := addReferencePoint(p, opt.T0, 1.0, "no change"); err != nil {
		return nil, err
	}

	files, err := save(p, 7.5*vg.Inch, 5*vg.Inch, dir, "temperature_respiration_relative")
	if err != nil {
		return nil, err
	}
	if opt.WriteCSV {
		path, err := rec.Save(dir, "temperature_respiration_relative")
		if err != nil {
			return nil, err
		}
		files = append(files, path)
	}
	return files, nil
}

// addReferencePoint marks a single highlighted point.
func addReferencePoint(p *plot.Plot, x, y float64, label string) error {
	scatter, err := plotter.NewScatter(plotter.XYs{{X: x, Y: y}})
	if err != nil {
		return err
	}
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	scatter.GlyphStyle.Color = gray(0)
	scatter.GlyphStyle.Radius = vg.Points(4.5)
	p.Add(scatter)
	p.Legend.Add(label, scatter)
	return nil
}
