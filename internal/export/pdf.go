package export

import (
	"io"

	"github.com/jung-kurt/gofpdf"
)

// WritePDF renders the report as a single-page summary table followed by
// the narrative insights.
func WritePDF(w io.Writer, report Report) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr("Indicateurs RH"))
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 8, tr("Généré le "+report.GeneratedAt.Format("02/01/2006")+" - période : "+string(report.Filters.Period)))
	pdf.Ln(12)

	colWidths := []float64{55, 25, 20, 25, 30}
	headers := []string{"Indicateur", "Valeur", "Unité", "Tendance", "Classification"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		pdf.CellFormat(colWidths[i], 7, tr(h), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, k := range report.KPIs {
		cells := []string{k.Name, k.Value, k.Unit, trendLabel(k), string(k.Category)}
		for i, c := range cells {
			pdf.CellFormat(colWidths[i], 7, tr(c), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 8, tr("Synthèse"))
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 9)
	pdf.MultiCell(0, 5, tr(report.GlobalInsight), "", "L", false)

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 8, tr("Analyses détaillées"))
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 9)
	for _, k := range report.KPIs {
		pdf.MultiCell(0, 5, tr(k.Name+" : "+k.Insight), "", "L", false)
		pdf.Ln(1)
	}

	return pdf.Output(w)
}
