package tabular

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

const (
	pdfFont       = "Helvetica"
	pdfTitleSize  = 14
	pdfHeaderSize = 10
	pdfBodySize   = 9
	pdfRowHeight  = 7
)

// WriteDocument renders t as a printable PDF: the title on top and a bordered
// table below it. Columns share the page width; wide tables switch to
// landscape.
func WriteDocument(t Table, dateLayout string) ([]byte, error) {
	orientation := "P"
	if len(t.Headers) > 6 {
		orientation = "L"
	}

	pdf := fpdf.New(orientation, "mm", "A4", "")
	pdf.SetTitle(t.Title, true)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont(pdfFont, "B", pdfTitleSize)
	pdf.CellFormat(0, 10, tr(t.Title), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	if len(t.Headers) > 0 {
		pageW, _ := pdf.GetPageSize()
		left, _, right, _ := pdf.GetMargins()
		colW := (pageW - left - right) / float64(len(t.Headers))

		header := func() {
			pdf.SetFont(pdfFont, "B", pdfHeaderSize)
			pdf.SetFillColor(230, 230, 230)
			for _, h := range t.Headers {
				pdf.CellFormat(colW, pdfRowHeight, fit(pdf, tr(h), colW), "1", 0, "L", true, 0, "")
			}
			pdf.Ln(-1)
			pdf.SetFont(pdfFont, "", pdfBodySize)
		}
		header()

		_, pageH := pdf.GetPageSize()
		_, _, _, bottom := pdf.GetMargins()
		for _, row := range t.Rows {
			if pdf.GetY()+pdfRowHeight > pageH-bottom {
				pdf.AddPage()
				header()
			}
			for i := range t.Headers {
				var v any
				if i < len(row) {
					v = row[i]
				}
				pdf.CellFormat(colW, pdfRowHeight, fit(pdf, tr(FormatValue(v, dateLayout)), colW), "1", 0, "L", false, 0, "")
			}
			pdf.Ln(-1)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// fit shortens s with an ellipsis so it fits into a cell of width w.
func fit(pdf *fpdf.Fpdf, s string, w float64) string {
	const pad = 2
	if pdf.GetStringWidth(s) <= w-pad {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && pdf.GetStringWidth(string(r)+"...") > w-pad {
		r = r[:len(r)-1]
	}
	return string(r) + "..."
}
