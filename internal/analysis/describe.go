package analysis

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"penguincli/pkg/contracts/domain"
)

// DescribeFields computes descriptive statistics for each measurement
// across every row where that measurement was recorded. Fields with no
// recorded values are omitted.
func DescribeFields(observations []domain.Observation) []FieldSummary {
	summaries := make([]FieldSummary, 0, len(domain.AllMeasurementFields()))
	for _, field := range domain.AllMeasurementFields() {
		values := fieldValues(observations, field)
		if len(values) == 0 {
			continue
		}

		// stat.Quantile wants its input sorted.
		sorted := make([]float64, len(values))
		copy(sorted, values)
		sort.Float64s(sorted)

		stddev := 0.0
		if len(values) > 1 {
			stddev = stat.StdDev(values, nil)
		}

		summaries = append(summaries, FieldSummary{
			Field:  field,
			Count:  len(values),
			Mean:   stat.Mean(values, nil),
			StdDev: stddev,
			Min:    floats.Min(sorted),
			Q1:     stat.Quantile(0.25, stat.Empirical, sorted, nil),
			Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
			Q3:     stat.Quantile(0.75, stat.Empirical, sorted, nil),
			Max:    floats.Max(sorted),
		})
	}
	return summaries
}
