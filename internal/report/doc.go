// Package report assembles the survey narrative and renders it as
// markdown, HTML or an Excel workbook. The document combines the
// cleaning report, the analysis summary, the rendered charts and a set
// of findings derived from the computed statistics.
package report
