// Package recorder writes the numeric series behind each figure to
// CSV, one file per figure, so the numbers behind a chart stay
// inspectable alongside the rendered image.
package recorder

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// Point is one sample of one named series, in long format: a row per
// sample with the series name repeated. Long format keeps figures with
// differently sized series in a single table.
type Point struct {
	Series string  `csv:"series"`
	X      float64 `csv:"x"`
	Y      float64 `csv:"y"`
}

// Recorder accumulates the series of a single figure.
type Recorder struct {
	points []*Point
}

func New() *Recorder {
	return &Recorder{}
}

// Record appends one series. xs and ys must be the same length.
func (r *Recorder) Record(series string, xs, ys []float64) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("recorder: series %q: %d x values but %d y values", series, len(xs), len(ys))
	}
	for i := range xs {
		r.points = append(r.points, &Point{Series: series, X: xs[i], Y: ys[i]})
	}
	return nil
}

// RecordValues appends a series of labeled scalar values at x = 0, 1,
// 2, ... — used for bar-chart figures where the x axis is categorical.
func (r *Recorder) RecordValues(series string, values []float64) {
	for i, v := range values {
		r.points = append(r.points, &Point{Series: series, X: float64(i), Y: v})
	}
}

// Len returns the number of recorded samples.
func (r *Recorder) Len() int {
	return len(r.points)
}

// Save writes the recorded series to <dir>/<name>.csv.
func (r *Recorder) Save(dir, name string) (string, error) {
	path := filepath.Join(dir, name+".csv")
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := gocsv.MarshalFile(&r.points, f); err != nil {
		return "", fmt.Errorf("recorder: write %s: %w", path, err)
	}
	return path, nil
}

// Load reads a long-format CSV back into points. Used to feed a
// caller-supplied assimilate series into the seasonal growth figure.
func Load(path string) ([]*Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var points []*Point
	if err := gocsv.UnmarshalFile(f, &points); err != nil {
		return nil, fmt.Errorf("recorder: read %s: %w", path, err)
	}
	return points, nil
}
