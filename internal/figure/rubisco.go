package figure

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/YuanyuanMa03/crop-model-figure/internal/recorder"
	"github.com/YuanyuanMa03/crop-model-figure/respiration"
)

// RubiscoOptions configures the Rubisco-kinetics figures.
type RubiscoOptions struct {
	RpMax float64
	Ks    float64
	Kc    float64
	Ko    float64

	// O2 levels of the response figure, % (converted to mmol mol-1
	// internally, 1 % ≈ 10 mmol mol-1).
	O2Percent []float64

	CO2Max   float64
	Samples  int
	WriteCSV bool
}

func (o *RubiscoOptions) defaults() {
	if o.O2Percent == nil {
		o.O2Percent = []float64{10, 21, 30, 40}
	}
	if o.CO2Max == 0 {
		o.CO2Max = 1000
	}
	if o.Samples == 0 {
		o.Samples = 300
	}
}

/*
Render the Rubisco photorespiration response to CO2 at several O2
levels.

	Outputs:
	    rubisco_rp.png, rubisco_rp.pdf (and rubisco_rp.csv with WriteCSV)
*/
func RenderRubiscoResponse(dir string, opt RubiscoOptions) ([]string, error) {
	opt.defaults()

	co2 := respiration.Linspace(1, opt.CO2Max, opt.Samples)

	p := newPlot(
		"Rubisco photorespiration response to CO2",
		"CO2 (μmol mol-1)",
		"R_p (μmol CO2 m-2 s-1)",
	)

	rec := recorder.New()
	for i, pct := range opt.O2Percent {
		o2 := pct * 10
		curve, err := respiration.RubiscoCurve(co2, o2, opt.RpMax, opt.Ks, opt.Kc, opt.Ko)
		if err != nil {
			return nil, err
		}
		label := fmt.Sprintf("O2 = %.0f%%", pct)
		if err := addCurve(p, label, co2, curve, i, true); err != nil {
			return nil, err
		}
		if opt.WriteCSV {
			if err := rec.Record(label, co2, curve); err != nil {
				return nil, err
			}
		}
	}

	files, err := save(p, 7*vg.Inch, 5*vg.Inch, dir, "rubisco_rp")
	if err != nil {
		return nil, err
	}
	if opt.WriteCSV {
		path, err := rec.Save(dir, "rubisco_rp")
		if err != nil {
			return nil, err
		}
		files = append(files, path)
	}
	return files, nil
}

/*
Render the full CO2 × O2 photorespiration surface as a heat map.

	Outputs:
	    rubisco_rp_3d.png, rubisco_rp_3d.pdf
*/
func RenderRubiscoSurface(dir string, opt RubiscoOptions) ([]string, error) {
	opt.defaults()

	co2 := respiration.Linspace(1, opt.CO2Max, 100)
	o2pct := respiration.Linspace(5, 50, 100)
	o2 := make([]float64, len(o2pct))
	for i, pct := range o2pct {
		o2[i] = pct * 10
	}

	z, err := respiration.RubiscoSurface(co2, o2, opt.RpMax, opt.Ks, opt.Kc, opt.Ko)
	if err != nil {
		return nil, err
	}

	p := newPlot(
		"Rubisco photorespiration over CO2 and O2",
		"CO2 (μmol mol-1)",
		"O2 (%)",
	)
	heat := plotter.NewHeatMap(surfaceGrid{xs: co2, ys: o2pct, z: z}, palette.Heat(16, 1))
	p.Add(heat)

	return save(p, 8*vg.Inch, 6*vg.Inch, dir, "rubisco_rp_3d")
}

// surfaceGrid adapts a response surface to plotter.GridXYZ.
type surfaceGrid struct {
	xs []float64
	ys []float64
	z  *mat.Dense
}

func (g surfaceGrid) Dims() (int, int)   { return len(g.xs), len(g.ys) }
func (g surfaceGrid) X(c int) float64    { return g.xs[c] }
func (g surfaceGrid) Y(r int) float64    { return g.ys[r] }
func (g surfaceGrid) Z(c, r int) float64 { return g.z.At(r, c) }
