package report

import (
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

const (
	sheetOverview     = "Overview"
	sheetMeans        = "Species Means"
	sheetCorrelations = "Correlations"
	sheetFields       = "Field Summaries"
	sheetTrends       = "Trends"
	sheetCharts       = "Charts"

	// Rows reserved per embedded chart, title row included.
	chartRowStride = 22
)

// writeExcel lays the document out as a workbook with one sheet per
// table and the rendered charts embedded on the last sheet.
func (b *Builder) writeExcel(doc *Document, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetOverview); err != nil {
		return err
	}
	if err := b.writeOverviewSheet(f, doc); err != nil {
		return err
	}
	if err := writeMeansSheet(f, doc); err != nil {
		return err
	}
	if err := writeCorrelationsSheet(f, doc); err != nil {
		return err
	}
	if err := writeFieldsSheet(f, doc); err != nil {
		return err
	}
	if err := writeTrendsSheet(f, doc); err != nil {
		return err
	}
	if err := b.writeChartsSheet(f, doc); err != nil {
		return err
	}

	return f.SaveAs(path)
}

func (b *Builder) writeOverviewSheet(f *excelize.File, doc *Document) error {
	rows := [][]interface{}{
		{doc.Title},
		{"Generated", doc.GeneratedAt.Format("2006-01-02 15:04 MST")},
		{"Report", doc.ID},
		{},
		{"Rows loaded", doc.Cleaning.Total},
		{"Fully observed", doc.Cleaning.Kept},
		{"Dropped", doc.Cleaning.Dropped},
		{},
		{"Key Findings"},
	}
	for _, finding := range doc.Findings {
		rows = append(rows, []interface{}{finding})
	}
	if err := writeRows(f, sheetOverview, rows); err != nil {
		return err
	}
	return f.SetColWidth(sheetOverview, "A", "A", 24)
}

func writeMeansSheet(f *excelize.File, doc *Document) error {
	if _, err := f.NewSheet(sheetMeans); err != nil {
		return err
	}
	rows := [][]interface{}{
		{"Species", "Rows", "Bill Length (mm)", "Bill Depth (mm)", "Flipper Length (mm)", "Body Mass (g)"},
	}
	for _, m := range doc.Summary.Means {
		rows = append(rows, []interface{}{string(m.Species), m.Count, m.BillLengthMM, m.BillDepthMM, m.FlipperLengthMM, m.BodyMassG})
	}
	return writeRows(f, sheetMeans, rows)
}

func writeCorrelationsSheet(f *excelize.File, doc *Document) error {
	if _, err := f.NewSheet(sheetCorrelations); err != nil {
		return err
	}
	rows := [][]interface{}{
		{"Measurement", "Pairs", "r", "Strength", "Direction"},
	}
	for _, c := range doc.Summary.Correlations {
		rows = append(rows, []interface{}{c.Field.Label(), c.Pairs, c.Coefficient, c.Strength(), c.Direction()})
	}
	return writeRows(f, sheetCorrelations, rows)
}

func writeFieldsSheet(f *excelize.File, doc *Document) error {
	if _, err := f.NewSheet(sheetFields); err != nil {
		return err
	}
	rows := [][]interface{}{
		{"Measurement", "Count", "Mean", "Std Dev", "Min", "Q1", "Median", "Q3", "Max"},
	}
	for _, s := range doc.Summary.FieldSummaries {
		rows = append(rows, []interface{}{s.Field.Label(), s.Count, s.Mean, s.StdDev, s.Min, s.Q1, s.Median, s.Q3, s.Max})
	}
	return writeRows(f, sheetFields, rows)
}

func writeTrendsSheet(f *excelize.File, doc *Document) error {
	if _, err := f.NewSheet(sheetTrends); err != nil {
		return err
	}
	rows := [][]interface{}{
		{"X", "Y", "Slope", "Intercept", "R2"},
	}
	for _, t := range doc.Summary.Trends {
		rows = append(rows, []interface{}{t.X.Label(), t.Y.Label(), t.Slope, t.Intercept, t.R2})
	}
	return writeRows(f, sheetTrends, rows)
}

// writeChartsSheet embeds the rendered charts one below another. Only
// PNG charts can be embedded; SVG charts are noted and skipped.
func (b *Builder) writeChartsSheet(f *excelize.File, doc *Document) error {
	if _, err := f.NewSheet(sheetCharts); err != nil {
		return err
	}

	row := 1
	for _, chart := range doc.Charts {
		if !strings.EqualFold(filepath.Ext(chart.Path), ".png") {
			b.logger.Warn("chart not embedded, workbook supports PNG only",
				"chart", chart.Name,
				"path", chart.Path,
			)
			continue
		}

		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetCharts, cell, chart.Title); err != nil {
			return err
		}

		anchor, err := excelize.CoordinatesToCellName(1, row+1)
		if err != nil {
			return err
		}
		if err := f.AddPicture(sheetCharts, anchor, chart.Path, nil); err != nil {
			return err
		}

		row += chartRowStride
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		for j, value := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
	}
	return nil
}
