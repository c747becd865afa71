package figure

import (
	"fmt"

	"gonum.org/v1/plot/vg"

	"github.com/YuanyuanMa03/crop-model-figure/internal/recorder"
	"github.com/YuanyuanMa03/crop-model-figure/respiration"
)

// NetPhotoOptions configures the net photosynthesis figures.
type NetPhotoOptions struct {
	VcMax float64
	Rd    float64

	// Oxygenation rate of the stacked figure, μmol O2 m-2 s-1
	Vo float64

	Samples  int
	WriteCSV bool
}

func (o *NetPhotoOptions) defaults() {
	if o.Vo == 0 {
		o.Vo = 40
	}
	if o.Samples == 0 {
		o.Samples = 300
	}
}

/*
Render net photosynthesis against the carboxylation rate at several
oxygenation rates, with the gross V_c reference line.

	Outputs:
	    net_photosynthesis.png, .pdf (and .csv with WriteCSV)
*/
func RenderNetPhotosynthesis(dir string, opt NetPhotoOptions) ([]string, error) {
	opt.defaults()

	v_c := respiration.Linspace(0, opt.VcMax, opt.Samples)

	p := newPlot(
		"Net photosynthesis vs carboxylation rate",
		"V_c (μmol CO2 m-2 s-1)",
		"A_n (μmol CO2 m-2 s-1)",
	)

	rec := recorder.New()
	for i, v_o := range []float64{0, 20, 40, 60} {
		curve := respiration.NetPhotosynthesisCurve(v_c, v_o, opt.Rd)
		label := fmt.Sprintf("V_o = %.0f", v_o)
		if err := addCurve(p, label, v_c, curve, i, true); err != nil {
			return nil, err
		}
		if opt.WriteCSV {
			if err := rec.Record(label, v_c, curve); err != nil {
				return nil, err
			}
		}
	}
	// Gross rate reference: A_n = V_c without any losses.
	if err := addCurve(p, "V_c (gross)", v_c, v_c, 3, false); err != nil {
		return nil, err
	}

	files, err := save(p, 7*vg.Inch, 5*vg.Inch, dir, "net_photosynthesis")
	if err != nil {
		return nil, err
	}
	if opt.WriteCSV {
		path, err := rec.Save(dir, "net_photosynthesis")
		if err != nil {
			return nil, err
		}
		files = append(files, path)
	}
	return files, nil
}

/*
Render the stacked decomposition of net photosynthesis: the V_c gain
band with the photorespiratory and dark respiration losses peeled off.

	Outputs:
	    net_photosynthesis_stacked.png, .pdf (and .csv with WriteCSV)
*/
func RenderNetPhotosynthesisStacked(dir string, opt NetPhotoOptions) ([]string, error) {
	opt.defaults()

	v_c := respiration.Linspace(0, opt.VcMax, opt.Samples)
	zero := make([]float64, len(v_c))
	afterPhoto := make([]float64, len(v_c))
	afterDark := make([]float64, len(v_c))
	for i, x := range v_c {
		terms := respiration.DecomposeNetPhotosynthesis(x, opt.Vo, opt.Rd)
		afterPhoto[i] = terms.Carboxylation + terms.Photorespiration
		afterDark[i] = terms.Net()
	}

	p := newPlot(
		fmt.Sprintf("Partitioning of net photosynthesis (V_o = %.0f, R_d = %.0f)", opt.Vo, opt.Rd),
		"V_c (μmol CO2 m-2 s-1)",
		"rate (μmol CO2 m-2 s-1)",
	)

	if err := addBand(p, v_c, zero, v_c, gray(0.85)); err != nil {
		return nil, err
	}
	if err := addBand(p, v_c, afterPhoto, v_c, gray(0.6)); err != nil {
		return nil, err
	}
	if err := addBand(p, v_c, afterDark, afterPhoto, gray(0.4)); err != nil {
		return nil, err
	}
	if err := addCurve(p, "A_n = V_c - 0.5·V_o - R_d", v_c, afterDark, 0, true); err != nil {
		return nil, err
	}

	files, err := save(p, 7*vg.Inch, 5*vg.Inch, dir, "net_photosynthesis_stacked")
	if err != nil {
		return nil, err
	}
	if opt.WriteCSV {
		rec := recorder.New()
		for _, s := range []struct {
			name string
			ys   []float64
		}{
			{"V_c", v_c},
			{"after_photorespiration", afterPhoto},
			{"A_n", afterDark},
		} {
			if err := rec.Record(s.name, v_c, s.ys); err != nil {
				return nil, err
			}
		}
		path, err := rec.Save(dir, "net_photosynthesis_stacked")
		if err != nil {
			return nil, err
		}
		files = append(files, path)
	}
	return files, nil
}

/*
Render the sensitivity of net photosynthesis to the oxygenation rate
at several fixed carboxylation rates.

	Outputs:
	    net_photosynthesis_sensitivity.png, .pdf (and .csv with WriteCSV)
*/
func RenderOxygenationSensitivity(dir string, opt NetPhotoOptions) ([]string, error) {
	opt.defaults()

	v_o := respiration.Linspace(0, 80, opt.Samples)

	p := newPlot(
		"Net photosynthesis sensitivity to oxygenation",
		"V_o (μmol O2 m-2 s-1)",
		"A_n (μmol CO2 m-2 s-1)",
	)

	rec := recorder.New()
	for i, v_c := range []float64{60, 80, 100} {
		curve := respiration.OxygenationSensitivity(v_o, v_c, opt.Rd)
		label := fmt.Sprintf("V_c = %.0f", v_c)
		if err := addCurve(p, label, v_o, curve, i, true); err != nil {
			return nil, err
		}
		if opt.WriteCSV {
			if err := rec.Record(label, v_o, curve); err != nil {
				return nil, err
			}
		}
	}

	files, err := save(p, 7*vg.Inch, 5*vg.Inch, dir, "net_photosynthesis_sensitivity")
	if err != nil {
		return nil, err
	}
	if opt.WriteCSV {
		path, err := rec.Save(dir, "net_photosynthesis_sensitivity")
		if err != nil {
			return nil, err
		}
		files = append(files, path)
	}
	return files, nil
}
