package charts

import (
	"gonum.org/v1/plot/plotter"

	"penguincli/pkg/contracts/domain"
)

// measurementValues collects the recorded values of one measurement.
func measurementValues(observations []domain.Observation, field domain.MeasurementField) plotter.Values {
	values := make(plotter.Values, 0, len(observations))
	for _, obs := range observations {
		if v := field.Value(obs); v != nil {
			values = append(values, *v)
		}
	}
	return values
}

// speciesValues collects one species' recorded values of a measurement.
func speciesValues(observations []domain.Observation, species domain.Species, field domain.MeasurementField) plotter.Values {
	values := make(plotter.Values, 0, len(observations))
	for _, obs := range observations {
		if obs.Species != species {
			continue
		}
		if v := field.Value(obs); v != nil {
			values = append(values, *v)
		}
	}
	return values
}

// speciesPoints collects one species' rows where both measurements were
// recorded.
func speciesPoints(observations []domain.Observation, species domain.Species, xField, yField domain.MeasurementField) plotter.XYs {
	pts := make(plotter.XYs, 0, len(observations))
	for _, obs := range observations {
		if obs.Species != species {
			continue
		}
		x := xField.Value(obs)
		y := yField.Value(obs)
		if x == nil || y == nil {
			continue
		}
		pts = append(pts, plotter.XY{X: *x, Y: *y})
	}
	return pts
}
