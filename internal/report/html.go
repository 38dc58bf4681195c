package report

import (
	"html/template"
	"io"

	"penguincli/pkg/contracts/domain"
)

type htmlView struct {
	Doc     *Document
	Species []speciesCount
	Islands []islandCount
	Years   []yearCount
	Figures []htmlFigure
}

type speciesCount struct {
	Species domain.Species
	Count   int
}

type islandCount struct {
	Island domain.Island
	Count  int
}

type yearCount struct {
	Year  int
	Count int
}

type htmlFigure struct {
	Title string
	Src   string
}

// renderHTML writes the document as a single self-contained HTML page
// with the stylesheet inlined. Chart images are referenced relative to
// the report location.
func renderHTML(w io.Writer, doc *Document, baseDir string) error {
	view := htmlView{Doc: doc}
	for _, species := range domain.AllSpecies() {
		view.Species = append(view.Species, speciesCount{Species: species, Count: doc.Summary.SpeciesCounts[species]})
	}
	for _, island := range domain.AllIslands() {
		view.Islands = append(view.Islands, islandCount{Island: island, Count: doc.Summary.IslandCounts[island]})
	}
	for _, year := range sortedYears(doc.Summary.YearCounts) {
		view.Years = append(view.Years, yearCount{Year: year, Count: doc.Summary.YearCounts[year]})
	}
	for _, chart := range doc.Charts {
		view.Figures = append(view.Figures, htmlFigure{Title: chart.Title, Src: relativeChartPath(baseDir, chart.Path)})
	}
	return htmlTmpl.Execute(w, view)
}

var htmlTmpl = template.Must(template.New("report").Parse(htmlTemplate))

const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Doc.Title}}</title>
<style>
    body { font-family: Georgia, 'Times New Roman', serif; max-width: 920px; margin: 40px auto; padding: 0 20px; color: #1a2332; }
    h1 { border-bottom: 3px solid #008b8b; padding-bottom: 10px; }
    h2 { color: #008b8b; margin-top: 36px; }
    table { border-collapse: collapse; margin: 16px 0; }
    th, td { border: 1px solid #c8d0d8; padding: 6px 14px; text-align: right; }
    th:first-child, td:first-child { text-align: left; }
    th { background: #eef4f4; }
    img { max-width: 100%; border: 1px solid #c8d0d8; margin: 12px 0; }
    .meta { color: #6b7684; font-size: 0.9em; }
    ul.findings li { margin: 6px 0; }
</style>
</head>
<body>
<h1>{{.Doc.Title}}</h1>
<p class="meta">Generated {{.Doc.GeneratedAt.Format "2006-01-02 15:04 MST"}} &middot; report {{.Doc.ID}}</p>

<h2>Key Findings</h2>
<ul class="findings">
{{- range .Doc.Findings}}
    <li>{{.}}</li>
{{- end}}
</ul>

<h2>Dataset</h2>
<p>{{.Doc.Cleaning.Total}} rows loaded, {{.Doc.Cleaning.Kept}} fully observed, {{.Doc.Cleaning.Dropped}} dropped for missing values.</p>
<table>
    <tr><th>Species</th><th>Rows</th></tr>
{{- range .Species}}
    <tr><td>{{.Species}}</td><td>{{.Count}}</td></tr>
{{- end}}
</table>
<table>
    <tr><th>Island</th><th>Rows</th></tr>
{{- range .Islands}}
    <tr><td>{{.Island}}</td><td>{{.Count}}</td></tr>
{{- end}}
</table>
<table>
    <tr><th>Year</th><th>Rows</th></tr>
{{- range .Years}}
    <tr><td>{{.Year}}</td><td>{{.Count}}</td></tr>
{{- end}}
</table>

<h2>Species Averages</h2>
<table>
    <tr><th>Species</th><th>Rows</th><th>Bill Length (mm)</th><th>Bill Depth (mm)</th><th>Flipper Length (mm)</th><th>Body Mass (g)</th></tr>
{{- range .Doc.Summary.Means}}
    <tr><td>{{.Species}}</td><td>{{.Count}}</td><td>{{printf "%.2f" .BillLengthMM}}</td><td>{{printf "%.2f" .BillDepthMM}}</td><td>{{printf "%.2f" .FlipperLengthMM}}</td><td>{{printf "%.2f" .BodyMassG}}</td></tr>
{{- end}}
</table>

<h2>Body Mass Correlations</h2>
<table>
    <tr><th>Measurement</th><th>Pairs</th><th>r</th><th>Strength</th><th>Direction</th></tr>
{{- range .Doc.Summary.Correlations}}
    <tr><td>{{.Field.Label}}</td><td>{{.Pairs}}</td><td>{{printf "%.4f" .Coefficient}}</td><td>{{.Strength}}</td><td>{{.Direction}}</td></tr>
{{- end}}
</table>

<h2>Measurement Summaries</h2>
<table>
    <tr><th>Measurement</th><th>Count</th><th>Mean</th><th>Std Dev</th><th>Min</th><th>Q1</th><th>Median</th><th>Q3</th><th>Max</th></tr>
{{- range .Doc.Summary.FieldSummaries}}
    <tr><td>{{.Field.Label}}</td><td>{{.Count}}</td><td>{{printf "%.2f" .Mean}}</td><td>{{printf "%.2f" .StdDev}}</td><td>{{.Min}}</td><td>{{.Q1}}</td><td>{{.Median}}</td><td>{{.Q3}}</td><td>{{.Max}}</td></tr>
{{- end}}
</table>

{{- if .Doc.Summary.Trends}}

<h2>Fitted Trends</h2>
<table>
    <tr><th>X</th><th>Y</th><th>Slope</th><th>Intercept</th><th>R&sup2;</th></tr>
{{- range .Doc.Summary.Trends}}
    <tr><td>{{.X.Label}}</td><td>{{.Y.Label}}</td><td>{{printf "%.3f" .Slope}}</td><td>{{printf "%.1f" .Intercept}}</td><td>{{printf "%.3f" .R2}}</td></tr>
{{- end}}
</table>
{{- end}}

{{- if .Figures}}

<h2>Charts</h2>
{{- range .Figures}}
<h3>{{.Title}}</h3>
<img src="{{.Src}}" alt="{{.Title}}">
{{- end}}
{{- end}}
</body>
</html>
`
