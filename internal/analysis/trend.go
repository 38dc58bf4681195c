package analysis

import (
	"gonum.org/v1/gonum/stat"

	"penguincli/pkg/contracts/domain"
)

// trendPairs lists the regressions fitted for the scatter charts: body
// mass against its two most correlated companions.
var trendPairs = [][2]domain.MeasurementField{
	{domain.FieldFlipperLength, domain.FieldBodyMass},
	{domain.FieldBillLength, domain.FieldBodyMass},
}

// FitTrends fits an ordinary least squares line for each configured
// pair. Rows missing either value are skipped; pairs with fewer than two
// complete rows are omitted.
func FitTrends(observations []domain.Observation) []TrendLine {
	trends := make([]TrendLine, 0, len(trendPairs))
	for _, pair := range trendPairs {
		xField, yField := pair[0], pair[1]
		xs, ys := pairedValues(observations, xField, yField)
		if len(xs) < 2 {
			continue
		}
		alpha, beta := stat.LinearRegression(xs, ys, nil, false)
		trends = append(trends, TrendLine{
			X:         xField,
			Y:         yField,
			Pairs:     len(xs),
			Intercept: alpha,
			Slope:     beta,
			R2:        stat.RSquared(xs, ys, nil, alpha, beta),
		})
	}
	return trends
}
