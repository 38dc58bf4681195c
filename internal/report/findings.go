package report

import (
	"fmt"

	"penguincli/internal/analysis"
	"penguincli/internal/dataset"
	"penguincli/pkg/contracts/domain"
)

// deriveFindings turns the computed statistics into the narrative
// sentences that head the report. Every sentence is backed by a value
// in the summary; nothing is asserted that was not measured.
func deriveFindings(cleaning dataset.CleanReport, summary *analysis.Summary) []string {
	var findings []string

	if cleaning.Total > 0 {
		share := float64(cleaning.Kept) / float64(cleaning.Total) * 100
		findings = append(findings, fmt.Sprintf(
			"The survey recorded %d penguins; %d rows (%.1f%%) are fully observed and %d were dropped for missing values.",
			cleaning.Total, cleaning.Kept, share, cleaning.Dropped))
	}

	if species, count, ok := mostNumerousSpecies(summary); ok {
		findings = append(findings, fmt.Sprintf(
			"%s is the most numerous species, accounting for %d of the %d penguins recorded.",
			species, count, summary.RawCount))
	}

	heaviest, okHeaviest := summary.HeaviestSpecies()
	longest, okLongest := longestFlippers(summary)
	switch {
	case okHeaviest && okLongest && heaviest.Species == longest.Species:
		findings = append(findings, fmt.Sprintf(
			"%s penguins are the heaviest on average (%.0f g) and carry the longest flippers (%.1f mm).",
			heaviest.Species, heaviest.BodyMassG, heaviest.FlipperLengthMM))
	case okHeaviest:
		findings = append(findings, fmt.Sprintf(
			"%s penguins are the heaviest on average at %.0f g.",
			heaviest.Species, heaviest.BodyMassG))
	}

	if strongest, ok := summary.StrongestCorrelation(); ok {
		findings = append(findings, fmt.Sprintf(
			"Body mass correlates most strongly with %s: a %s %s relationship (r = %.2f over %d pairs).",
			strongest.Field.Label(), strongest.Strength(), strongest.Direction(),
			strongest.Coefficient, strongest.Pairs))
	}

	if trend, ok := summary.TrendFor(domain.FieldFlipperLength); ok {
		findings = append(findings, fmt.Sprintf(
			"Each extra millimeter of flipper length adds about %.1f g of body mass (R² = %.2f).",
			trend.Slope, trend.R2))
	}

	for _, c := range summary.Correlations {
		if c.Field == domain.FieldBillDepth && c.Coefficient < 0 {
			findings = append(findings, fmt.Sprintf(
				"Pooled across all species, bill depth moves inversely with body mass (r = %.2f).",
				c.Coefficient))
		}
	}

	return findings
}

func mostNumerousSpecies(summary *analysis.Summary) (domain.Species, int, bool) {
	var best domain.Species
	bestCount := 0
	for _, species := range domain.AllSpecies() {
		if count := summary.SpeciesCounts[species]; count > bestCount {
			best, bestCount = species, count
		}
	}
	return best, bestCount, bestCount > 0
}

func longestFlippers(summary *analysis.Summary) (analysis.SpeciesMeans, bool) {
	if len(summary.Means) == 0 {
		return analysis.SpeciesMeans{}, false
	}
	longest := summary.Means[0]
	for _, m := range summary.Means[1:] {
		if m.FlipperLengthMM > longest.FlipperLengthMM {
			longest = m
		}
	}
	return longest, true
}
