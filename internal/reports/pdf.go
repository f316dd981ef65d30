// Package reports renders the memória de cálculo of a computed benefit as
// a printable PDF.
package reports

import (
	"io"

	"github.com/jung-kurt/gofpdf"

	"folha/internal/domain/money"
)

// Item is one labeled monetary line of a report.
type Item struct {
	Label string
	Value float64
}

// TrailLine is one explanation line of the memória de cálculo.
type TrailLine struct {
	Key  string
	Text string
}

type Report struct {
	Title   string
	Items   []Item
	Trail   []TrailLine
	Message string
}

// Write renders the report as an A4 PDF.
func Write(w io.Writer, report Report) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(report.Title))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	for _, item := range report.Items {
		pdf.Cell(120, 8, tr(item.Label))
		pdf.CellFormat(0, 8, tr(money.FormatBRL(item.Value)), "", 0, "R", false, 0, "")
		pdf.Ln(8)
	}

	if len(report.Trail) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(0, 8, tr("Memória de cálculo"))
		pdf.Ln(10)
		pdf.SetFont("Helvetica", "", 10)
		for _, line := range report.Trail {
			pdf.MultiCell(0, 6, tr(line.Key+": "+line.Text), "", "L", false)
			pdf.Ln(1)
		}
	}

	if report.Message != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 6, tr(report.Message), "", "L", false)
	}

	return pdf.Output(w)
}
