package figure

import (
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/YuanyuanMa03/crop-model-figure/internal/recorder"
	"github.com/YuanyuanMa03/crop-model-figure/respiration"
)

// MaintenanceOptions configures the maintenance respiration figures.
type MaintenanceOptions struct {
	Samples  int
	WriteCSV bool
}

// growthStageWeights is the illustrative per-stage organ dry weight
// table of the organ-contribution figure, g DM m-2.
func growthStageWeights() (stages []string, organs []string, weights [][]float64) {
	stages = []string{"vegetative", "flowering", "grain fill", "maturity"}
	organs = []string{"leaf", "stem", "root", "grain"}
	weights = [][]float64{
		{150, 50, 80, 0},
		{250, 120, 150, 50},
		{200, 150, 120, 200},
		{150, 160, 100, 300},
	}
	return stages, organs, weights
}

/*
Render the per-organ contributions to maintenance respiration across
growth stages as stacked bars.

	Outputs:
	    maintenance_respiration_organs.png, .pdf (and .csv with WriteCSV)
*/
func RenderMaintenanceOrgans(dir string, opt MaintenanceOptions) ([]string, error) {
	stages, organNames, stageWeights := growthStageWeights()
	coefficients := respiration.OrganCoefficients()

	// contribution[organ][stage]
	contribution := make([][]float64, len(organNames))
	for j, name := range organNames {
		contribution[j] = make([]float64, len(stages))
		for s := range stages {
			organ := respiration.OrganProfile{
				Name:        name,
				Weight:      stageWeights[s][j],
				Coefficient: coefficients[j].Typical,
			}
			r_m, err := respiration.MaintenanceRespiration([]respiration.OrganProfile{organ})
			if err != nil {
				return nil, err
			}
			contribution[j][s] = r_m
		}
	}

	p := newPlot(
		"Organ contributions to maintenance respiration by growth stage",
		"",
		"R_m (g CH2O m-2 d-1)",
	)

	var below *plotter.BarChart
	for j, name := range organNames {
		bars, err := plotter.NewBarChart(plotter.Values(contribution[j]), vg.Points(30))
		if err != nil {
			return nil, err
		}
		bars.Color = gray(0.9 - 0.2*float64(j))
		bars.LineStyle.Width = vg.Points(1)
		if below != nil {
			bars.StackOn(below)
		}
		p.Add(bars)
		p.Legend.Add(name, bars)
		below = bars
	}
	p.NominalX(stages...)

	files, err := save(p, 8*vg.Inch, 5.5*vg.Inch, dir, "maintenance_respiration_organs")
	if err != nil {
		return nil, err
	}
	if opt.WriteCSV {
		rec := recorder.New()
		for j, name := range organNames {
			rec.RecordValues(name, contribution[j])
		}
		path, err := rec.Save(dir, "maintenance_respiration_organs")
		if err != nil {
			return nil, err
		}
		files = append(files, path)
	}
	return files, nil
}

/*
Render the response of maintenance respiration to leaf dry weight with
stem and root held at 100 g m-2.

	Outputs:
	    maintenance_respiration_sensitivity.png, .pdf (and .csv with WriteCSV)
*/
func RenderMaintenanceSensitivity(dir string, opt MaintenanceOptions) ([]string, error) {
	if opt.Samples == 0 {
		opt.Samples = 300
	}

	weights := respiration.Linspace(0, 400, opt.Samples)
	fixed := []respiration.OrganProfile{
		{Name: "stem", Weight: 100, Coefficient: 0.010},
		{Name: "root", Weight: 100, Coefficient: 0.012},
	}
	leaf, total, err := respiration.WeightSensitivity(
		weights,
		respiration.OrganProfile{Name: "leaf", Coefficient: 0.015},
		fixed,
	)
	if err != nil {
		return nil, err
	}

	stem := make([]float64, len(weights))
	root := make([]float64, len(weights))
	for i := range weights {
		stem[i] = 0.010 * 100
		root[i] = 0.012 * 100
	}

	p := newPlot(
		"Maintenance respiration response to leaf dry weight",
		"W_leaf (g m-2)",
		"R_m (g CH2O m-2 d-1)",
	)

	rec := recorder.New()
	for i, s := range []struct {
		name string
		ys   []float64
	}{
		{"leaf", leaf},
		{"stem", stem},
		{"root", root},
		{"total", total},
	} {
		if err := addCurve(p, s.name, weights, s.ys, i, true); err != nil {
			return nil, err
		}
		if opt.WriteCSV {
			if err := rec.Record(s.name, weights, s.ys); err != nil {
				return nil, err
			}
		}
	}

	files, err := save(p, 7.5*vg.Inch, 5*vg.Inch, dir, "maintenance_respiration_sensitivity")
	if err != nil {
		return nil, err
	}
	if opt.WriteCSV {
		path, err := rec.Save(dir, "maintenance_respiration_sensitivity")
		if err != nil {
			return nil, err
		}
		files = append(files, path)
	}
	return files, nil
}

/*
Render the documented maintenance coefficients per organ with their
literature ranges as whiskers, next to the respiration each organ
would produce at a fixed 100 g m-2 dry weight.

	Outputs:
	    maintenance_respiration_coefficients.png, .pdf (and .csv with WriteCSV)
*/
func RenderMaintenanceCoefficients(dir string, opt MaintenanceOptions) ([]string, error) {
	coefficients := respiration.OrganCoefficients()

	names := make([]string, len(coefficients))
	typical := make([]float64, len(coefficients))
	errData := errorBarData{
		xs:   make([]float64, len(coefficients)),
		ys:   make([]float64, len(coefficients)),
		down: make([]float64, len(coefficients)),
		up:   make([]float64, len(coefficients)),
	}
	for i, c := range coefficients {
		names[i] = c.Name
		typical[i] = c.Typical
		errData.xs[i] = float64(i)
		errData.ys[i] = c.Typical
		errData.down[i] = c.Typical - c.Min
		errData.up[i] = c.Max - c.Typical
	}

	p := newPlot(
		"Maintenance respiration coefficients by organ",
		"",
		"r_m,i (g CH2O g-1 d-1)",
	)

	bars, err := plotter.NewBarChart(plotter.Values(typical), vg.Points(30))
	if err != nil {
		return nil, err
	}
	bars.Color = gray(0.7)
	bars.LineStyle.Width = vg.Points(1)
	p.Add(bars)
	p.Legend.Add("typical value", bars)
	p.NominalX(names...)

	whiskers, err := plotter.NewYErrorBars(errData)
	if err != nil {
		return nil, err
	}
	whiskers.LineStyle.Width = vg.Points(1.2)
	p.Add(whiskers)

	files, err := save(p, 7.5*vg.Inch, 5.5*vg.Inch, dir, "maintenance_respiration_coefficients")
	if err != nil {
		return nil, err
	}
	if opt.WriteCSV {
		rec := recorder.New()
		rec.RecordValues("typical", typical)
		// Fixed-weight respiration view of the same coefficients.
		fixedW := make([]float64, len(coefficients))
		for i, c := range coefficients {
			fixedW[i] = c.Typical * 100
		}
		rec.RecordValues("rm_at_100g", fixedW)
		path, err := rec.Save(dir, "maintenance_respiration_coefficients")
		if err != nil {
			return nil, err
		}
		files = append(files, path)
	}
	return files, nil
}

// errorBarData feeds plotter.NewYErrorBars: points plus asymmetric
// down/up error magnitudes.
type errorBarData struct {
	xs, ys, down, up []float64
}

func (e errorBarData) Len() int                    { return len(e.xs) }
func (e errorBarData) XY(i int) (float64, float64) { return e.xs[i], e.ys[i] }
func (e errorBarData) YError(i int) (float64, float64) {
	return e.down[i], e.up[i]
}
