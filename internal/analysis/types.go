package analysis

import (
	"math"

	"penguincli/pkg/contracts/domain"
)

// SpeciesMeans holds the per-species averages of the four measurements,
// computed over fully observed rows.
type SpeciesMeans struct {
	Species         domain.Species `json:"species"`
	Count           int            `json:"count"`
	BillLengthMM    float64        `json:"bill_length_mm"`
	BillDepthMM     float64        `json:"bill_depth_mm"`
	FlipperLengthMM float64        `json:"flipper_length_mm"`
	BodyMassG       float64        `json:"body_mass_g"`
}

// Mean returns the average for the given measurement field.
func (m SpeciesMeans) Mean(field domain.MeasurementField) float64 {
	switch field {
	case domain.FieldBillLength:
		return m.BillLengthMM
	case domain.FieldBillDepth:
		return m.BillDepthMM
	case domain.FieldFlipperLength:
		return m.FlipperLengthMM
	case domain.FieldBodyMass:
		return m.BodyMassG
	}
	return 0
}

// Correlation is the Pearson correlation between body mass and another
// measurement, computed over rows where both values were recorded.
type Correlation struct {
	Field       domain.MeasurementField `json:"field"`
	Pairs       int                     `json:"pairs"`
	Coefficient float64                 `json:"coefficient"`
}

// Direction reports whether the relationship is positive or negative.
func (c Correlation) Direction() string {
	if c.Coefficient < 0 {
		return "negative"
	}
	return "positive"
}

// Strength buckets the absolute coefficient into a plain-language label.
func (c Correlation) Strength() string {
	r := math.Abs(c.Coefficient)
	switch {
	case r >= 0.7:
		return "strong"
	case r >= 0.4:
		return "moderate"
	case r >= 0.2:
		return "weak"
	default:
		return "negligible"
	}
}

// FieldSummary holds descriptive statistics for one measurement across
// every row where it was recorded. StdDev is the sample standard
// deviation and the quartiles follow the empirical quantile convention.
type FieldSummary struct {
	Field  domain.MeasurementField `json:"field"`
	Count  int                     `json:"count"`
	Mean   float64                 `json:"mean"`
	StdDev float64                 `json:"std_dev"`
	Min    float64                 `json:"min"`
	Q1     float64                 `json:"q1"`
	Median float64                 `json:"median"`
	Q3     float64                 `json:"q3"`
	Max    float64                 `json:"max"`
}

// TrendLine is an ordinary least squares fit of Y on X.
type TrendLine struct {
	X         domain.MeasurementField `json:"x"`
	Y         domain.MeasurementField `json:"y"`
	Pairs     int                     `json:"pairs"`
	Intercept float64                 `json:"intercept"`
	Slope     float64                 `json:"slope"`
	R2        float64                 `json:"r_squared"`
}

// At evaluates the fitted line at x.
func (l TrendLine) At(x float64) float64 {
	return l.Intercept + l.Slope*x
}

// Summary is the complete analysis result for one survey snapshot.
// Counts cover every loaded row; Means covers fully observed rows only.
type Summary struct {
	RawCount       int                    `json:"raw_count"`
	CleanCount     int                    `json:"clean_count"`
	SpeciesCounts  map[domain.Species]int `json:"species_counts"`
	IslandCounts   map[domain.Island]int  `json:"island_counts"`
	YearCounts     map[int]int            `json:"year_counts"`
	Means          []SpeciesMeans         `json:"species_means"`
	Correlations   []Correlation          `json:"correlations"`
	FieldSummaries []FieldSummary         `json:"field_summaries"`
	Trends         []TrendLine            `json:"trends"`
}

// StrongestCorrelation returns the correlation with the largest absolute
// coefficient, or false when none were computed.
func (s *Summary) StrongestCorrelation() (Correlation, bool) {
	if len(s.Correlations) == 0 {
		return Correlation{}, false
	}
	strongest := s.Correlations[0]
	for _, c := range s.Correlations[1:] {
		if math.Abs(c.Coefficient) > math.Abs(strongest.Coefficient) {
			strongest = c
		}
	}
	return strongest, true
}

// HeaviestSpecies returns the species with the highest mean body mass,
// or false when no group means were computed.
func (s *Summary) HeaviestSpecies() (SpeciesMeans, bool) {
	if len(s.Means) == 0 {
		return SpeciesMeans{}, false
	}
	heaviest := s.Means[0]
	for _, m := range s.Means[1:] {
		if m.BodyMassG > heaviest.BodyMassG {
			heaviest = m
		}
	}
	return heaviest, true
}

// MeansFor returns the group means for one species.
func (s *Summary) MeansFor(species domain.Species) (SpeciesMeans, bool) {
	for _, m := range s.Means {
		if m.Species == species {
			return m, true
		}
	}
	return SpeciesMeans{}, false
}

// TrendFor returns the fitted trend with the given X axis field.
func (s *Summary) TrendFor(x domain.MeasurementField) (TrendLine, bool) {
	for _, trend := range s.Trends {
		if trend.X == x {
			return trend, true
		}
	}
	return TrendLine{}, false
}
