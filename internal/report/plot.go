package report

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Plot renders a bar chart of average, minimum and maximum temperature per
// country and saves it to path. The image format follows the file extension.
// Countries without cities are left out.
func Plot(summaries []Summary, path string) error {
	var names []string
	var avg, lo, hi plotter.Values
	for _, s := range summaries {
		if s.Count == 0 {
			continue
		}
		names = append(names, s.Country)
		avg = append(avg, s.Average)
		lo = append(lo, s.Minimum)
		hi = append(hi, s.Maximum)
	}
	if len(names) == 0 {
		return fmt.Errorf("nothing to plot: no country has any cities")
	}

	p := plot.New()
	p.Title.Text = "Temperature by country"
	p.Y.Label.Text = "Temperature"

	width := vg.Points(16)
	series := []struct {
		label  string
		values plotter.Values
		offset vg.Length
	}{
		{"Minimum", lo, -width},
		{"Average", avg, 0},
		{"Maximum", hi, width},
	}

	for i, s := range series {
		bars, err := plotter.NewBarChart(s.values, width)
		if err != nil {
			return fmt.Errorf("failed to build %s bars: %w", s.label, err)
		}
		bars.LineStyle.Width = vg.Length(0)
		bars.Color = plotutil.Color(i)
		bars.Offset = s.offset
		p.Add(bars)
		p.Legend.Add(s.label, bars)
	}

	p.Legend.Top = true
	p.NominalX(names...)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save plot %s: %w", path, err)
	}
	return nil
}
