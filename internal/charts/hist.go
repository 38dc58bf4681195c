package charts

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"

	"penguincli/pkg/contracts/domain"
)

const histogramBins = 16

// fieldHistogram draws the distribution of one measurement across every
// row where it was recorded.
func (r *Renderer) fieldHistogram(observations []domain.Observation, field domain.MeasurementField) (*plot.Plot, error) {
	p := plot.New()
	p.X.Label.Text = field.Label()
	p.Y.Label.Text = "Penguins"

	hist, err := plotter.NewHist(measurementValues(observations, field), histogramBins)
	if err != nil {
		return nil, err
	}
	hist.FillColor = barBlue

	p.Add(hist)
	return p, nil
}

// speciesHistogram overlays one semi-transparent histogram per species.
func (r *Renderer) speciesHistogram(observations []domain.Observation, field domain.MeasurementField) (*plot.Plot, error) {
	p := plot.New()
	p.X.Label.Text = field.Label()
	p.Y.Label.Text = "Penguins"

	for _, sp := range domain.AllSpecies() {
		values := speciesValues(observations, sp, field)
		if len(values) == 0 {
			continue
		}

		hist, err := plotter.NewHist(values, histogramBins)
		if err != nil {
			return nil, err
		}
		hist.FillColor = speciesFill(sp)
		hist.LineStyle.Color = speciesColor(sp)

		p.Add(hist)
		p.Legend.Add(string(sp), fillThumb{color: speciesFill(sp)})
	}

	p.Legend.Top = true
	return p, nil
}
