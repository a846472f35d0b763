package reporting

import (
	"bytes"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

// Cores do relatório (verde da marca)
var (
	brandRGB = [3]int{40, 167, 69}
	mutedRGB = [3]int{100, 100, 100}
)

const (
	pageMargin = 14.0
	rowHeight  = 7.0
)

// Renderer converte o documento para bytes em um formato de arquivo
type Renderer interface {
	Render(doc Document) ([]byte, error)
}

type PDFRenderer struct{}

func (PDFRenderer) Render(doc Document) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, 20, pageMargin)
	pdf.SetAutoPageBreak(true, 15)
	pdf.SetTitle(doc.Title, true)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(brandRGB[0], brandRGB[1], brandRGB[2])
	pdf.CellFormat(0, 10, tr(doc.Title), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	pdf.SetTextColor(mutedRGB[0], mutedRGB[1], mutedRGB[2])
	pdf.CellFormat(0, 8, "Generated on: "+doc.GeneratedAt.Format(time.DateOnly), "", 1, "C", false, 0, "")

	pageWidth, _ := pdf.GetPageSize()
	usable := pageWidth - 2*pageMargin

	for _, table := range doc.Tables {
		pdf.Ln(6)

		pdf.SetFont("Helvetica", "B", 16)
		pdf.SetTextColor(brandRGB[0], brandRGB[1], brandRGB[2])
		pdf.CellFormat(0, 10, tr(table.Caption), "", 1, "L", false, 0, "")

		if len(table.Headers) == 0 {
			continue
		}
		colWidth := usable / float64(len(table.Headers))

		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(brandRGB[0], brandRGB[1], brandRGB[2])
		pdf.SetTextColor(255, 255, 255)
		for _, header := range table.Headers {
			pdf.CellFormat(colWidth, rowHeight, tr(header), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(0, 0, 0)
		for _, row := range table.Rows {
			for i := range table.Headers {
				text := ""
				if i < len(row) {
					text = formatCell(row[i])
				}
				pdf.CellFormat(colWidth, rowHeight, tr(text), "1", 0, "L", false, 0, "")
			}
			pdf.Ln(-1)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "reporting: erro ao gerar PDF")
	}

	return buf.Bytes(), nil
}
