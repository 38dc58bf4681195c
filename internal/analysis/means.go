package analysis

import (
	"gonum.org/v1/gonum/stat"

	"penguincli/pkg/contracts/domain"
)

// GroupMeansBySpecies averages the four measurements per species. The
// input should hold fully observed rows. Species appear in canonical
// order; species absent from the input are omitted.
func GroupMeansBySpecies(observations []domain.Observation) []SpeciesMeans {
	grouped := make(map[domain.Species][]domain.Observation)
	for _, obs := range observations {
		grouped[obs.Species] = append(grouped[obs.Species], obs)
	}

	means := make([]SpeciesMeans, 0, len(grouped))
	for _, species := range domain.AllSpecies() {
		group := grouped[species]
		if len(group) == 0 {
			continue
		}
		means = append(means, SpeciesMeans{
			Species:         species,
			Count:           len(group),
			BillLengthMM:    fieldMean(group, domain.FieldBillLength),
			BillDepthMM:     fieldMean(group, domain.FieldBillDepth),
			FlipperLengthMM: fieldMean(group, domain.FieldFlipperLength),
			BodyMassG:       fieldMean(group, domain.FieldBodyMass),
		})
	}
	return means
}

func fieldMean(observations []domain.Observation, field domain.MeasurementField) float64 {
	values := fieldValues(observations, field)
	if len(values) == 0 {
		return 0
	}
	return stat.Mean(values, nil)
}
