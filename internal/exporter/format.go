package exporter

import (
	"fmt"
	"strconv"

	"penguincli/pkg/contracts/domain"
)

// formatFloat formats a computed statistic with exactly 2 decimal places
func formatFloat(f float64) string {
	return fmt.Sprintf("%.2f", f)
}

// formatCoefficient keeps four decimals so weak correlations stay visible
func formatCoefficient(f float64) string {
	return fmt.Sprintf("%.4f", f)
}

// formatMeasurement round-trips a recorded value without padding zeros
func formatMeasurement(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// formatOptionalFloat writes NA for missing values
func formatOptionalFloat(f *float64) string {
	if f == nil {
		return "NA"
	}
	return formatMeasurement(*f)
}

// formatSex writes NA for missing values
func formatSex(s *domain.Sex) string {
	if s == nil {
		return "NA"
	}
	return string(*s)
}

// formatInt formats an int64 value for CSV output
func formatInt(i int64) string {
	return fmt.Sprintf("%d", i)
}
