package report

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
)

// WritePDF lays the text report out on a single A4 page
func WritePDF(w io.Writer, r *Report, opts Options) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 15)
	pdf.SetTitle(title(r), true)
	pdf.SetCreator("fundamentals", true)
	if r.RunID != "" {
		pdf.SetSubject("run "+r.RunID, true)
	}
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, title(r), "", 1, "L", false, 0, "")
	if r.MarketCap != "" {
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 6, "Market cap $"+r.MarketCap, "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	// Header
	pdf.SetFont("Helvetica", "B", 10)
	widths := columnWidths(opts)
	headers := []string{"Metric", "Value", "Coverage"}
	if opts.Explain {
		headers = append(headers, "Formula")
	}
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "B", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, m := range r.Metrics {
		cells := []string{m.Name, m.Display(), m.Coverage()}
		if opts.Explain {
			cells = append(cells, m.Formula)
		}
		for i, c := range cells {
			pdf.CellFormat(widths[i], 6, c, "", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to generate PDF output: %w", err)
	}
	return nil
}

func title(r *Report) string {
	if r.Company == "" {
		return "Fundamentals"
	}
	return r.Company + " fundamentals"
}

func columnWidths(opts Options) []float64 {
	if opts.Explain {
		return []float64{55, 45, 30, 50}
	}
	return []float64{65, 55, 40}
}
