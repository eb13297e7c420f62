package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// Pinning the document dates keeps output bytes identical across runs
// for the same payload.
var fixedDate = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// Build renders the complete report PDF for a payload. The payload is
// normalized first, so malformed or partial data still yields a
// document. Output bytes are deterministic for a given payload.
func Build(p Payload) ([]byte, error) {
	return render(Compose(p.Normalize()))
}

func render(groups []PageGroup) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(marginLeft, marginTop, marginRight)
	pdf.SetAutoPageBreak(false, marginBottom)
	pdf.SetCreationDate(fixedDate)
	pdf.SetModificationDate(fixedDate)

	c := newCanvas(pdf)
	pdf.SetFooterFunc(func() {
		footerY := pageHeight - 9
		c.setStyle(style{8, "", colFooter, 3.4})
		pdf.SetXY(marginLeft, footerY)
		pdf.CellFormat(contentWidth/2, 3.4, c.tr("Performance Profil · Individuelle Auswertung"), "", 0, "L", false, 0, "")
		pdf.SetXY(marginLeft+contentWidth/2, footerY)
		pdf.CellFormat(contentWidth/2, 3.4, fmt.Sprintf("Seite %d", pdf.PageNo()), "", 0, "R", false, 0, "")
	})

	limit := pageHeight - marginBottom - 12 // keep clear of the footer
	for _, group := range groups {
		for _, blocks := range group.Pages {
			pdf.AddPage()
			y := marginTop
			for _, b := range blocks {
				h := b.Measure(c, contentWidth)
				if y+h > limit && y > marginTop {
					pdf.AddPage()
					y = marginTop
				}
				b.Draw(c, marginLeft, y, contentWidth)
				y += h
			}
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("report: render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
