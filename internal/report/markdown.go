package report

import (
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"penguincli/pkg/contracts/domain"
)

// renderMarkdown lays the document out as GitHub-flavored markdown.
// Chart images are referenced relative to the report location so the
// output directory can be moved or published as a unit.
func renderMarkdown(doc *Document, baseDir string) []byte {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", doc.Title)
	fmt.Fprintf(&b, "Generated %s (report %s)\n\n", doc.GeneratedAt.Format("2006-01-02 15:04 MST"), doc.ID)

	b.WriteString("## Key Findings\n\n")
	for _, finding := range doc.Findings {
		fmt.Fprintf(&b, "- %s\n", finding)
	}
	b.WriteString("\n")

	writeDatasetSection(&b, doc)
	writeMeansSection(&b, doc)
	writeCorrelationsSection(&b, doc)
	writeFieldSummariesSection(&b, doc)
	writeTrendsSection(&b, doc)
	writeChartsSection(&b, doc, baseDir)

	return []byte(b.String())
}

func writeDatasetSection(b *strings.Builder, doc *Document) {
	b.WriteString("## Dataset\n\n")
	fmt.Fprintf(b, "%d rows loaded, %d fully observed, %d dropped for missing values.\n\n",
		doc.Cleaning.Total, doc.Cleaning.Kept, doc.Cleaning.Dropped)

	b.WriteString("| Species | Rows |\n|---|---|\n")
	for _, species := range domain.AllSpecies() {
		fmt.Fprintf(b, "| %s | %d |\n", species, doc.Summary.SpeciesCounts[species])
	}
	b.WriteString("\n| Island | Rows |\n|---|---|\n")
	for _, island := range domain.AllIslands() {
		fmt.Fprintf(b, "| %s | %d |\n", island, doc.Summary.IslandCounts[island])
	}
	b.WriteString("\n| Year | Rows |\n|---|---|\n")
	for _, year := range sortedYears(doc.Summary.YearCounts) {
		fmt.Fprintf(b, "| %d | %d |\n", year, doc.Summary.YearCounts[year])
	}
	b.WriteString("\n")
}

func writeMeansSection(b *strings.Builder, doc *Document) {
	b.WriteString("## Species Averages\n\n")
	b.WriteString("Means over fully observed rows.\n\n")
	b.WriteString("| Species | Rows | Bill Length (mm) | Bill Depth (mm) | Flipper Length (mm) | Body Mass (g) |\n")
	b.WriteString("|---|---|---|---|---|---|\n")
	for _, m := range doc.Summary.Means {
		fmt.Fprintf(b, "| %s | %d | %.2f | %.2f | %.2f | %.2f |\n",
			m.Species, m.Count, m.BillLengthMM, m.BillDepthMM, m.FlipperLengthMM, m.BodyMassG)
	}
	b.WriteString("\n")
}

func writeCorrelationsSection(b *strings.Builder, doc *Document) {
	b.WriteString("## Body Mass Correlations\n\n")
	b.WriteString("Pearson correlation of body mass against each measurement, over rows where both values are present.\n\n")
	b.WriteString("| Measurement | Pairs | r | Strength | Direction |\n")
	b.WriteString("|---|---|---|---|---|\n")
	for _, c := range doc.Summary.Correlations {
		fmt.Fprintf(b, "| %s | %d | %.4f | %s | %s |\n",
			c.Field.Label(), c.Pairs, c.Coefficient, c.Strength(), c.Direction())
	}
	b.WriteString("\n")
}

func writeFieldSummariesSection(b *strings.Builder, doc *Document) {
	b.WriteString("## Measurement Summaries\n\n")
	b.WriteString("| Measurement | Count | Mean | Std Dev | Min | Q1 | Median | Q3 | Max |\n")
	b.WriteString("|---|---|---|---|---|---|---|---|---|\n")
	for _, s := range doc.Summary.FieldSummaries {
		fmt.Fprintf(b, "| %s | %d | %.2f | %.2f | %s | %s | %s | %s | %s |\n",
			s.Field.Label(), s.Count, s.Mean, s.StdDev,
			trimFloat(s.Min), trimFloat(s.Q1), trimFloat(s.Median), trimFloat(s.Q3), trimFloat(s.Max))
	}
	b.WriteString("\n")
}

func writeTrendsSection(b *strings.Builder, doc *Document) {
	if len(doc.Summary.Trends) == 0 {
		return
	}
	b.WriteString("## Fitted Trends\n\n")
	b.WriteString("Ordinary least squares fits, drawn on the matching scatter charts.\n\n")
	b.WriteString("| X | Y | Slope | Intercept | R² |\n")
	b.WriteString("|---|---|---|---|---|\n")
	for _, t := range doc.Summary.Trends {
		fmt.Fprintf(b, "| %s | %s | %.3f | %.1f | %.3f |\n",
			t.X.Label(), t.Y.Label(), t.Slope, t.Intercept, t.R2)
	}
	b.WriteString("\n")
}

func writeChartsSection(b *strings.Builder, doc *Document, baseDir string) {
	if len(doc.Charts) == 0 {
		return
	}
	b.WriteString("## Charts\n\n")
	for _, chart := range doc.Charts {
		fmt.Fprintf(b, "### %s\n\n![%s](%s)\n\n", chart.Title, chart.Title, relativeChartPath(baseDir, chart.Path))
	}
}

// relativeChartPath rewrites a chart path relative to the report
// directory, falling back to the original path when the two do not
// share a root.
func relativeChartPath(baseDir, chartPath string) string {
	rel, err := filepath.Rel(baseDir, chartPath)
	if err != nil {
		return chartPath
	}
	return filepath.ToSlash(rel)
}

// trimFloat formats a measurement without trailing zeros.
func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func sortedYears(counts map[int]int) []int {
	years := make([]int, 0, len(counts))
	for year := range counts {
		years = append(years, year)
	}
	sort.Ints(years)
	return years
}
