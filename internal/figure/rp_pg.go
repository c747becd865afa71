package figure

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/YuanyuanMa03/crop-model-figure/internal/recorder"
	"github.com/YuanyuanMa03/crop-model-figure/respiration"
)

// RpPgOptions configures the linear photorespiration figure.
type RpPgOptions struct {
	Alpha    float64
	AlphaMin float64
	AlphaMax float64
	PgMax    float64
	Samples  int
	WriteCSV bool
}

/*
Render the linear relation R_p = α · P_g: the typical-α line, the
shaded α-range envelope and a few illustrative scattered observations.

	Outputs:
	    rp_vs_pg.png, rp_vs_pg.pdf (and rp_vs_pg.csv with WriteCSV)
*/
func RenderRpPg(dir string, opt RpPgOptions) ([]string, error) {
	if opt.Samples == 0 {
		opt.Samples = 200
	}

	p_g := respiration.Linspace(0, opt.PgMax, opt.Samples)
	typical := respiration.LinearPhotorespirationCurve(p_g, opt.Alpha)
	lower, upper := respiration.LinearPhotorespirationBand(p_g, opt.AlphaMin, opt.AlphaMax)

	p := newPlot(
		"Photorespiration vs gross photosynthesis",
		"P_g (μmol CO2 m-2 s-1)",
		"R_p (μmol CO2 m-2 s-1)",
	)

	if err := addBand(p, p_g, lower, upper, gray(0.85)); err != nil {
		return nil, err
	}
	bandLabel := fmt.Sprintf("α range %.2f–%.2f", opt.AlphaMin, opt.AlphaMax)
	if err := addCurve(p, bandLabel, p_g, upper, 3, false); err != nil {
		return nil, err
	}
	if err := addCurve(p, fmt.Sprintf("typical α = %.2f", opt.Alpha), p_g, typical, 0, false); err != nil {
		return nil, err
	}

	// Illustrative observations with small noise around the typical
	// line. Seeded so reruns reproduce the same figure.
	rng := rand.New(rand.NewSource(42))
	obs := make(plotter.XYs, 12)
	for i := range obs {
		x := (0.1 + 0.85*rng.Float64()) * opt.PgMax
		obs[i].X = x
		obs[i].Y = respiration.LinearPhotorespiration(x, opt.Alpha) + rng.NormFloat64()*0.03*opt.Alpha*opt.PgMax
	}
	scatter, err := plotter.NewScatter(obs)
	if err != nil {
		return nil, err
	}
	scatter.GlyphStyle.Shape = draw.RingGlyph{}
	scatter.GlyphStyle.Color = gray(0)
	scatter.GlyphStyle.Radius = vg.Points(3.5)
	p.Add(scatter)
	p.Legend.Add("sample points", scatter)

	files, err := save(p, 6.5*vg.Inch, 4.5*vg.Inch, dir, "rp_vs_pg")
	if err != nil {
		return nil, err
	}

	if opt.WriteCSV {
		rec := recorder.New()
		for _, s := range []struct {
			name string
			ys   []float64
		}{
			{"typical", typical},
			{"lower", lower},
			{"upper", upper},
		} {
			if err := rec.Record(s.name, p_g, s.ys); err != nil {
				return nil, err
			}
		}
		path, err := rec.Save(dir, "rp_vs_pg")
		if err != nil {
			return nil, err
		}
		files = append(files, path)
	}
	return files, nil
}
