// Package figure renders each respiration formula family as
// publication-style charts: grayscale line cycles, white-filled
// markers, dotted grid, saved as 300 dpi PNG plus vector PDF.
package figure

import (
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

const pngDPI = 300

// gray maps a matplotlib-style gray level (0 black, 1 white) to a color.
func gray(level float64) color.Color {
	return color.Gray{Y: uint8(level * 255)}
}

// seriesGray is the gray cycle of the original figure set.
func seriesGray(i int) color.Color {
	levels := []float64{0, 0.3, 0.5, 0.7}
	return gray(levels[i%len(levels)])
}

// seriesDashes is the solid/dashed/dot-dash/dotted line cycle.
func seriesDashes(i int) []vg.Length {
	dashes := [][]vg.Length{
		nil,
		{vg.Points(6), vg.Points(3)},
		{vg.Points(6), vg.Points(3), vg.Points(1), vg.Points(3)},
		{vg.Points(1), vg.Points(3)},
	}
	return dashes[i%len(dashes)]
}

// seriesGlyph is the hollow marker cycle.
func seriesGlyph(i int) draw.GlyphDrawer {
	glyphs := []draw.GlyphDrawer{
		draw.RingGlyph{},
		draw.SquareGlyph{},
		draw.TriangleGlyph{},
		draw.CrossGlyph{},
	}
	return glyphs[i%len(glyphs)]
}

// newPlot builds a plot with the shared title/axis/grid styling.
func newPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel

	grid := plotter.NewGrid()
	grid.Vertical.Color = gray(0.5)
	grid.Vertical.Dashes = []vg.Length{vg.Points(1), vg.Points(3)}
	grid.Horizontal.Color = gray(0.5)
	grid.Horizontal.Dashes = []vg.Length{vg.Points(1), vg.Points(3)}
	p.Add(grid)

	p.Legend.Top = true
	return p
}

// xyPoints pairs two equally long sample slices.
func xyPoints(xs, ys []float64) plotter.XYs {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	return pts
}

/*
Add one styled curve to a plot.

	Args:
	    p: target plot
	    label: legend label
	    xs, ys: curve samples
	    i: index into the gray/dash/marker cycles
	    markers: scatter a few white-filled markers along the curve
*/
func addCurve(p *plot.Plot, label string, xs, ys []float64, i int, markers bool) error {
	line, err := plotter.NewLine(xyPoints(xs, ys))
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(1.8)
	line.LineStyle.Color = seriesGray(i)
	line.LineStyle.Dashes = seriesDashes(i)
	p.Add(line)
	p.Legend.Add(label, line)

	if markers && len(xs) > 10 {
		scatter, err := plotter.NewScatter(sampleMarkers(xs, ys, 5))
		if err != nil {
			return err
		}
		scatter.GlyphStyle.Shape = seriesGlyph(i)
		scatter.GlyphStyle.Color = seriesGray(i)
		scatter.GlyphStyle.Radius = vg.Points(3)
		p.Add(scatter)
	}
	return nil
}

// sampleMarkers picks n evenly spaced interior points of a curve,
// keeping markers away from the axes like the original figures.
func sampleMarkers(xs, ys []float64, n int) plotter.XYs {
	lo := len(xs) / 10
	hi := len(xs) - 1 - lo
	pts := make(plotter.XYs, 0, n)
	for k := 0; k < n; k++ {
		i := lo + k*(hi-lo)/(n-1)
		pts = append(pts, plotter.XY{X: xs[i], Y: ys[i]})
	}
	return pts
}

// addBand fills the region between a lower and an upper curve.
func addBand(p *plot.Plot, xs, lower, upper []float64, fill color.Color) error {
	pts := make(plotter.XYs, 0, 2*len(xs))
	for i := range xs {
		pts = append(pts, plotter.XY{X: xs[i], Y: lower[i]})
	}
	for i := len(xs) - 1; i >= 0; i-- {
		pts = append(pts, plotter.XY{X: xs[i], Y: upper[i]})
	}

	poly, err := plotter.NewPolygon(pts)
	if err != nil {
		return err
	}
	poly.Color = fill
	poly.LineStyle.Color = color.Transparent
	p.Add(poly)
	return nil
}

/*
Save a plot as <name>.png (300 dpi) and <name>.pdf under dir.

	Returns:
	    paths of the written files
*/
func save(p *plot.Plot, w, h vg.Length, dir, name string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	pngPath := filepath.Join(dir, name+".png")
	if err := savePNG(p, w, h, pngPath); err != nil {
		return nil, err
	}

	pdfPath := filepath.Join(dir, name+".pdf")
	if err := p.Save(w, h, pdfPath); err != nil {
		return nil, err
	}
	return []string{pngPath, pdfPath}, nil
}

// savePNG rasterizes at print resolution; p.Save would use the
// default screen DPI.
func savePNG(p *plot.Plot, w, h vg.Length, path string) error {
	img := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(pngDPI))
	p.Draw(draw.New(img))

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	png := vgimg.PngCanvas{Canvas: img}
	_, err = png.WriteTo(f)
	return err
}
