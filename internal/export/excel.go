package export

import (
	"github.com/xuri/excelize/v2"

	"gomix/internal/errors"
	"gomix/internal/history"
	"gomix/internal/mix"
)

const (
	inputSheet   = "Input Parameters"
	resultsSheet = "Results"
	historySheet = "Mix Design History"
)

// Workbook writes the mix design as a two-sheet workbook: the input
// parameters and the result sections.
func Workbook(path string, in mix.Inputs, r *mix.Result) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", inputSheet); err != nil {
		return errors.Export("failed to prepare workbook", err)
	}
	writePairs(f, inputSheet, "Parameter", "Value", inputRows(in))

	if _, err := f.NewSheet(resultsSheet); err != nil {
		return errors.Export("failed to prepare workbook", err)
	}
	var lines []row
	for _, sec := range resultSections(r) {
		lines = append(lines, row{label: sec.title})
		for _, rw := range sec.rows {
			lines = append(lines, row{value: rw.label + " : " + rw.value})
		}
		lines = append(lines, row{})
	}
	writePairs(f, resultsSheet, "Section", "Details", lines)

	if err := f.SaveAs(path); err != nil {
		return errors.Export("failed to write workbook", err)
	}
	return nil
}

// HistoryWorkbook writes the complete mix history as a single sheet, one
// design per row.
func HistoryWorkbook(path string, entries []history.Entry) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", historySheet); err != nil {
		return errors.Export("failed to prepare workbook", err)
	}

	headers := []string{
		"Date", "Grade", "Strength (MPa)", "W/C Ratio", "Cement (kg)",
		"Fly Ash (kg)", "Water (L)", "Fine Aggregate (kg)",
		"Coarse Aggregate (kg)", "Chemical Admixture (kg)", "Cement Saved (kg)",
	}
	for col, h := range headers {
		f.SetCellValue(historySheet, cellName(col, 0), h)
	}

	for i, e := range entries {
		values := []interface{}{
			e.Date, e.Grade, e.Strength, e.WCRatio, e.Cement,
			blankIfZero(e.FlyAsh), e.Water, e.FineAgg,
			e.CoarseAgg, e.Admixture, blankIfZero(e.CementSaved),
		}
		for col, v := range values {
			f.SetCellValue(historySheet, cellName(col, i+1), v)
		}
	}

	f.SetColWidth(historySheet, "A", "A", 18)
	f.SetColWidth(historySheet, "B", "K", 14)

	if err := f.SaveAs(path); err != nil {
		return errors.Export("failed to write history workbook", err)
	}
	return nil
}

// writePairs fills a two-column sheet and sizes the columns to the longest
// content.
func writePairs(f *excelize.File, sheet, leftHeader, rightHeader string, rows []row) {
	f.SetCellValue(sheet, "A1", leftHeader)
	f.SetCellValue(sheet, "B1", rightHeader)

	widthA, widthB := len(leftHeader), len(rightHeader)
	for i, rw := range rows {
		if rw.label != "" {
			f.SetCellValue(sheet, cellName(0, i+1), rw.label)
		}
		if rw.value != "" {
			f.SetCellValue(sheet, cellName(1, i+1), rw.value)
		}
		widthA = max(widthA, len(rw.label))
		widthB = max(widthB, len(rw.value))
	}

	f.SetColWidth(sheet, "A", "A", colWidth(widthA))
	f.SetColWidth(sheet, "B", "B", colWidth(widthB))
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col+1, row+1)
	return name
}

func colWidth(chars int) float64 {
	w := float64(chars + 2)
	if w > 100 {
		return 100
	}
	return w
}

// blankIfZero keeps optional fly-ash columns empty for plain designs.
func blankIfZero(v float64) interface{} {
	if v == 0 {
		return ""
	}
	return v
}
