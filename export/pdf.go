package export

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
)

// Page geometry in millimetres on A4.
const (
	pdfMargin    = 20.0
	pdfRight     = 190.0
	pdfImgWidth  = 15.0
	pdfImgHeight = 22.0
	pdfRowHeight = 28.0
	pdfFirstRowY = 45.0
	pdfMaxTitle  = 55
)

// PDF writes doc as an A4 PDF with one block per entry.
func PDF(w io.Writer, doc Document) error {
	pdf := renderPDF(doc)
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to generate PDF: %w", err)
	}
	return nil
}

func renderPDF(doc Document) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(doc.Title, true)
	pdf.SetAutoPageBreak(false, 0)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	_, pageHeight := pdf.GetPageSize()

	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 22)
	pdf.Text(pdfMargin, 20, tr(doc.Title))
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(100, 100, 100)
	pdf.Text(pdfMargin, 30, "Generated on: "+doc.GeneratedOn())
	pdf.SetTextColor(0, 0, 0)

	y := pdfFirstRowY
	textX := pdfMargin + pdfImgWidth + 5
	for _, e := range doc.Entries {
		if y+pdfRowHeight > pageHeight-pdfMargin {
			pdf.AddPage()
			y = 20
		}

		pdf.SetDrawColor(200, 200, 200)
		pdf.Rect(pdfMargin, y, pdfImgWidth, pdfImgHeight, "D")
		pdf.SetFont("Helvetica", "", 6)
		pdf.Text(pdfMargin+2, y+10, "No Img")

		pdf.SetFont("Helvetica", "B", 10)
		pdf.Text(textX, y+5, tr(truncateTitle(fmt.Sprintf("%d. %s", e.Index, e.Title))))

		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(80, 80, 80)
		eps := e.Episodes
		if eps != "-" {
			eps += " ep"
		}
		pdf.Text(textX, y+10, tr(fmt.Sprintf("%s • %s • %s", e.Year, e.Type, eps)))
		if tags := firstTags(e.Tags, 3); tags != "" {
			pdf.Text(textX, y+15, tr("Genres: "+tags))
		}
		pdf.Text(textX, y+20, tr("Status: "+e.Status))
		pdf.SetTextColor(0, 0, 0)

		y += pdfRowHeight
		pdf.SetDrawColor(230, 230, 230)
		pdf.Line(pdfMargin, y-4, pdfRight, y-4)
	}

	if y > pageHeight-40 {
		pdf.AddPage()
		y = 30
	}
	y += 5
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(pdfMargin, y, pdfRight, y)
	y += 10

	pdf.SetFont("Helvetica", "B", 12)
	rightText(pdf, y, fmt.Sprintf("Total Anime: %d", doc.Count()))
	rightText(pdf, y+6, fmt.Sprintf("Total Episodes: %d", doc.TotalEpisodes))
	return pdf
}

func rightText(pdf *fpdf.Fpdf, y float64, s string) {
	pdf.Text(pdfRight-pdf.GetStringWidth(s), y, s)
}

// truncateTitle cuts titles longer than pdfMaxTitle runes to fit one line.
func truncateTitle(s string) string {
	r := []rune(s)
	if len(r) <= pdfMaxTitle {
		return s
	}
	return string(r[:pdfMaxTitle-3]) + "..."
}
