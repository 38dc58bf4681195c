package charts

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"penguincli/pkg/contracts/domain"
)

// speciesBoxChart draws one box per species for the given measurement.
func (r *Renderer) speciesBoxChart(observations []domain.Observation, field domain.MeasurementField) (*plot.Plot, error) {
	p := plot.New()
	p.Y.Label.Text = field.Label()

	species := domain.AllSpecies()
	names := make([]string, len(species))

	for i, sp := range species {
		names[i] = string(sp)

		values := speciesValues(observations, sp, field)
		if len(values) == 0 {
			continue
		}

		box, err := plotter.NewBoxPlot(vg.Points(30), float64(i), values)
		if err != nil {
			return nil, err
		}
		box.FillColor = speciesFill(sp)
		p.Add(box)
	}

	p.NominalX(names...)
	return p, nil
}
