package figure

import (
	"fmt"

	"gonum.org/v1/plot/vg"

	"github.com/YuanyuanMa03/crop-model-figure/internal/recorder"
	"github.com/YuanyuanMa03/crop-model-figure/respiration"
)

// NitrogenOptions configures the nitrogen modifier figures.
type NitrogenOptions struct {
	Samples  int
	WriteCSV bool
}

func (o *NitrogenOptions) defaults() {
	if o.Samples == 0 {
		o.Samples = 300
	}
}

/*
Render the nitrogen-adjusted maintenance coefficient against nitrogen
content for several reference coefficients at the leaf reference
content (N_ref = 3 %).

	Outputs:
	    nitrogen_respiration.png, .pdf (and .csv with WriteCSV)
*/
func RenderNitrogenResponse(dir string, opt NitrogenOptions) ([]string, error) {
	opt.defaults()

	n_i := respiration.Linspace(0.5, 6.0, opt.Samples)
	const n_ref = 3.0

	p := newPlot(
		"Nitrogen dependence of the maintenance coefficient",
		"N_i (% of dry weight)",
		"r'_m,i (g CH2O g-1 d-1)",
	)

	rec := recorder.New()
	for i, r_ref := range []float64{0.012, 0.015, 0.018} {
		curve, err := respiration.NitrogenAdjustedCurve(n_i, r_ref, n_ref)
		if err != nil {
			return nil, err
		}
		label := fmt.Sprintf("r_ref = %.3f", r_ref)
		if r_ref == 0.015 {
			label += " (typical)"
		}
		if err := addCurve(p, label, n_i, curve, i, true); err != nil {
			return nil, err
		}
		if opt.WriteCSV {
			if err := rec.Record(label, n_i, curve); err != nil {
				return nil, err
			}
		}
	}

	if err := addReferencePoint(p, n_ref, 0.015, fmt.Sprintf("reference (N_ref = %.1f%%)", n_ref)); err != nil {
		return nil, err
	}

	files, err := save(p, 7*vg.Inch, 5*vg.Inch, dir, "nitrogen_respiration")
	if err != nil {
		return nil, err
	}
	if opt.WriteCSV {
		path, err := rec.Save(dir, "nitrogen_respiration")
		if err != nil {
			return nil, err
		}
		files = append(files, path)
	}
	return files, nil
}

/*
Render the per-organ comparison: each organ's adjusted coefficient
over nitrogen content using its own documented N_ref and r_ref.

	Outputs:
	    nitrogen_respiration_organs.png, .pdf (and .csv with WriteCSV)
*/
func RenderNitrogenOrgans(dir string, opt NitrogenOptions) ([]string, error) {
	opt.defaults()

	n_i := respiration.Linspace(0.5, 6.0, opt.Samples)

	p := newPlot(
		"Nitrogen-adjusted maintenance coefficient by organ",
		"N_i (% of dry weight)",
		"r'_m,i (g CH2O g-1 d-1)",
	)

	rec := recorder.New()
	for i, ref := range respiration.OrganNitrogenReferences() {
		curve, err := respiration.NitrogenAdjustedCurve(n_i, ref.RRef, ref.NRef)
		if err != nil {
			return nil, err
		}
		label := fmt.Sprintf("%s (N_ref = %.1f%%)", ref.Name, ref.NRef)
		if err := addCurve(p, label, n_i, curve, i, true); err != nil {
			return nil, err
		}
		if opt.WriteCSV {
			if err := rec.Record(ref.Name, n_i, curve); err != nil {
				return nil, err
			}
		}
	}

	files, err := save(p, 7*vg.Inch, 5*vg.Inch, dir, "nitrogen_respiration_organs")
	if err != nil {
		return nil, err
	}
	if opt.WriteCSV {
		path, err := rec.Save(dir, "nitrogen_respiration_organs")
		if err != nil {
			return nil, err
		}
		files = append(files, path)
	}
	return files, nil
}

/*
Render the relative change r'_m,i / r_ref = N_i / N_ref at several
reference contents.

	Outputs:
	    nitrogen_respiration_relative.png, .pdf (and .csv with WriteCSV)
*/
func RenderNitrogenRelativeChange(dir string, opt NitrogenOptions) ([]string, error) {
	opt.defaults()

	n_i := respiration.Linspace(0.5, 6.0, opt.Samples)

	p := newPlot(
		"Relative change of the maintenance coefficient with nitrogen",
		"N_i (% of dry weight)",
		"r'_m,i / r_ref (-)",
	)

	rec := recorder.New()
	for i, n_ref := range []float64{2.0, 3.0, 4.0} {
		curve, err := respiration.NitrogenRelativeChange(n_i, n_ref)
		if err != nil {
			return nil, err
		}
		label := fmt.Sprintf("N_ref = %.1f%%", n_ref)
		if n_ref == 3.0 {
			label += " (typical)"
		}
		if err := addCurve(p, label, n_i, curve, i, true); err != nil {
			return nil, err
		}
		if opt.WriteCSV {
			if err := rec.Record(label, n_i, curve); err != nil {
				return nil, err
			}
		}
	}

	files, err := save(p, 7*vg.Inch, 5*vg.Inch, dir, "nitrogen_respiration_relative")
	if err != nil {
		return nil, err
	}
	if opt.WriteCSV {
		path, err := rec.Save(dir, "nitrogen_respiration_relative")
		if err != nil {
			return nil, err
		}
		files = append(files, path)
	}
	return files, nil
}
