package charts

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"penguincli/internal/analysis"
	"penguincli/pkg/contracts/domain"
)

// scatterWithTrend draws body mass against one measurement, colored per
// species, with the fitted least squares line overlaid.
func (r *Renderer) scatterWithTrend(observations []domain.Observation, summary *analysis.Summary, xField domain.MeasurementField) (*plot.Plot, error) {
	p := plot.New()
	p.X.Label.Text = xField.Label()
	p.Y.Label.Text = domain.FieldBodyMass.Label()
	p.Add(plotter.NewGrid())

	xmin, xmax := math.Inf(1), math.Inf(-1)
	for _, sp := range domain.AllSpecies() {
		pts := speciesPoints(observations, sp, xField, domain.FieldBodyMass)
		if len(pts) == 0 {
			continue
		}
		for _, pt := range pts {
			xmin = math.Min(xmin, pt.X)
			xmax = math.Max(xmax, pt.X)
		}

		scatter, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, err
		}
		scatter.Color = speciesColor(sp)
		scatter.Radius = vg.Points(2)
		scatter.Shape = draw.CircleGlyph{}

		p.Add(scatter)
		p.Legend.Add(string(sp), scatter)
	}

	if trend, ok := summary.TrendFor(xField); ok && xmin < xmax {
		line, err := plotter.NewLine(plotter.XYs{
			{X: xmin, Y: trend.At(xmin)},
			{X: xmax, Y: trend.At(xmax)},
		})
		if err != nil {
			return nil, err
		}
		line.Color = trendGray
		line.Width = vg.Points(2)

		p.Add(line)
		p.Legend.Add(fmt.Sprintf("OLS fit (R²=%.2f)", trend.R2), line)
	}

	p.Legend.Top = true
	p.Legend.Left = true
	return p, nil
}

// billScatterChart plots bill length against bill depth per species.
func (r *Renderer) billScatterChart(observations []domain.Observation) (*plot.Plot, error) {
	p := plot.New()
	p.X.Label.Text = domain.FieldBillLength.Label()
	p.Y.Label.Text = domain.FieldBillDepth.Label()
	p.Add(plotter.NewGrid())

	for _, sp := range domain.AllSpecies() {
		pts := speciesPoints(observations, sp, domain.FieldBillLength, domain.FieldBillDepth)
		if len(pts) == 0 {
			continue
		}

		scatter, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, err
		}
		scatter.Color = speciesColor(sp)
		scatter.Radius = vg.Points(2)
		scatter.Shape = draw.CircleGlyph{}

		p.Add(scatter)
		p.Legend.Add(string(sp), scatter)
	}

	p.Legend.Top = true
	return p, nil
}
