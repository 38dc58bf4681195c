package analysis

import (
	"gonum.org/v1/gonum/stat"

	"penguincli/pkg/contracts/domain"
)

// MassCorrelations computes the Pearson correlation between body mass
// and each other measurement. Rows missing either value are skipped, so
// pair counts can differ between fields. Fields with fewer than two
// complete pairs are omitted.
func MassCorrelations(observations []domain.Observation) []Correlation {
	correlations := make([]Correlation, 0, len(domain.AllMeasurementFields())-1)
	for _, field := range domain.AllMeasurementFields() {
		if field == domain.FieldBodyMass {
			continue
		}
		xs, ys := pairedValues(observations, field, domain.FieldBodyMass)
		if len(xs) < 2 {
			continue
		}
		correlations = append(correlations, Correlation{
			Field:       field,
			Pairs:       len(xs),
			Coefficient: stat.Correlation(xs, ys, nil),
		})
	}
	return correlations
}
