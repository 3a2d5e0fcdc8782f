package export

import (
	"time"

	"github.com/phpdave11/gofpdf"

	"gomix/internal/errors"
	"gomix/internal/mix"
)

// PDFReport writes the full mix design report: a parameter table followed
// by the result sections.
func PDFReport(path string, in mix.Inputs, r *mix.Result) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Concrete Mix Design Report")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, "Date: "+time.Now().Format("2006-01-02 15:04"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Input Parameters")
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 10)
	for _, row := range inputRows(in) {
		pdf.CellFormat(95, 6, row.label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(75, 6, row.value, "1", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	for _, sec := range resultSections(r) {
		// Keep a section heading with at least a few of its rows on one page.
		if pdf.GetY() > 240 {
			pdf.AddPage()
		}
		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(0, 8, sec.title)
		pdf.Ln(9)
		pdf.SetFont("Helvetica", "", 10)
		for _, row := range sec.rows {
			pdf.CellFormat(95, 6, row.label, "", 0, "L", false, 0, "")
			pdf.CellFormat(75, 6, row.value, "", 1, "L", false, 0, "")
		}
		pdf.Ln(4)
	}

	if len(r.Warnings) > 0 {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(0, 8, "Warnings")
		pdf.Ln(9)
		pdf.SetFont("Helvetica", "", 10)
		for _, w := range r.Warnings {
			pdf.MultiCell(0, 6, "- "+w.Message, "", "L", false)
		}
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return errors.Export("failed to generate PDF report", err)
	}
	return nil
}
