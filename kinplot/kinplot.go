package kinplot

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/ryanguo13/TwoSubEnzyme/ode"
)

var (
	// ErrEmptySeries indicates a plot request with no data series.
	ErrEmptySeries = errors.New("kinplot: no data series")

	// ErrLengthMismatch indicates a series whose length differs from the
	// x axis.
	ErrLengthMismatch = errors.New("kinplot: series length does not match axis")
)

// Config carries the axis labels and title shared by all plot constructors.
type Config struct {
	Title  string
	XLabel string
	YLabel string
}

func (c Config) apply(p *plot.Plot) {
	p.Title.Text = c.Title
	p.X.Label.Text = c.XLabel
	p.Y.Label.Text = c.YLabel
}

// heatPaletteColors is the color resolution of heat-map palettes.
const heatPaletteColors = 64

// HeatMap renders a dense surface (e.g. a steady-state rate over two
// concentration axes) as a heat map. Any plotter.GridXYZ works; sweep.Grid
// satisfies it directly.
func HeatMap(g plotter.GridXYZ, cfg Config) (*plot.Plot, error) {
	if g == nil {
		return nil, ErrEmptySeries
	}
	p := plot.New()
	cfg.apply(p)
	p.Add(plotter.NewHeatMap(g, palette.Heat(heatPaletteColors, 1)))
	return p, nil
}

// Lines renders one or more named series against a shared x axis, with a
// legend entry per series. Series are drawn in lexical name order so output
// is deterministic.
func Lines(x []float64, series map[string][]float64, cfg Config) (*plot.Plot, error) {
	if len(series) == 0 {
		return nil, ErrEmptySeries
	}
	names := make([]string, 0, len(series))
	for name, ys := range series {
		if len(ys) != len(x) {
			return nil, fmt.Errorf("%w: %q has %d points, axis has %d",
				ErrLengthMismatch, name, len(ys), len(x))
		}
		names = append(names, name)
	}
	sort.Strings(names)

	p := plot.New()
	cfg.apply(p)
	for i, name := range names {
		pts := make(plotter.XYs, len(x))
		for k := range x {
			pts[k].X = x[k]
			pts[k].Y = series[name][k]
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("kinplot: %w", err)
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(name, line)
	}
	return p, nil
}

// TimeCourse renders an integrated trajectory as one line per state
// component; names[i] labels component i in the legend.
func TimeCourse(traj ode.Trajectory, names []string, cfg Config) (*plot.Plot, error) {
	if len(names) != traj.Dim() {
		return nil, fmt.Errorf("%w: %d names for %d components",
			ErrLengthMismatch, len(names), traj.Dim())
	}
	series := make(map[string][]float64, len(names))
	for i, name := range names {
		series[name] = traj.Component(i)
	}
	return Lines(traj.T, series, cfg)
}

// Save writes the plot as a 6×4 inch figure; the format follows the file
// extension (png, svg, pdf, ...).
func Save(p *plot.Plot, path string) error {
	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
