package analysis

import (
	"penguincli/pkg/contracts/domain"
)

// fieldValues collects the recorded values of one measurement.
func fieldValues(observations []domain.Observation, field domain.MeasurementField) []float64 {
	values := make([]float64, 0, len(observations))
	for _, obs := range observations {
		if v := field.Value(obs); v != nil {
			values = append(values, *v)
		}
	}
	return values
}

// pairedValues collects the rows where both measurements were recorded.
func pairedValues(observations []domain.Observation, xField, yField domain.MeasurementField) (xs, ys []float64) {
	for _, obs := range observations {
		x := xField.Value(obs)
		y := yField.Value(obs)
		if x == nil || y == nil {
			continue
		}
		xs = append(xs, *x)
		ys = append(ys, *y)
	}
	return xs, ys
}
