// Package report composes the multi-page performance profile PDF.
//
// The engine is split the way the document is built: stateless layout
// primitives (cards, bars, badges, paragraphs) that measure themselves
// before drawing, page composers that arrange resolved narrative text
// into fixed logical pages, and an assembler that paginates the whole
// thing into a byte buffer. Rendering is deterministic for a given
// payload and performs no I/O.
package report

import (
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// Page geometry (A4, millimetres).
const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	marginLeft   = 16.0
	marginRight  = 16.0
	marginTop    = 14.0
	marginBottom = 14.0
	contentWidth = pageWidth - marginLeft - marginRight
)

type rgb struct{ r, g, b int }

var (
	colText     = rgb{17, 17, 17}    // #111111
	colMuted    = rgb{68, 68, 68}    // #444444
	colFooter   = rgb{102, 102, 102} // #666666
	colGreen    = rgb{34, 197, 94}   // #22c55e
	colGreenInk = rgb{11, 93, 42}    // #0b5d2a
	colGreenBG  = rgb{236, 253, 245} // #ecfdf5
	colBadgeBG  = rgb{233, 247, 239} // #e9f7ef
	colBorder   = rgb{215, 219, 224} // #d7dbe0
	colCardBG   = rgb{248, 250, 252} // #f8fafc
	colLine     = rgb{229, 231, 235} // #e5e7eb
)

// style bundles font parameters with the line height used for layout.
type style struct {
	size  float64 // points
	font  string  // "", "B", "I"
	color rgb
	lineH float64 // millimetres
}

var (
	styleBrand = style{11, "B", colText, 4.6}
	styleTag   = style{9.5, "", colMuted, 4.0}
	styleH0    = style{20, "B", colText, 7.8}
	styleMuted = style{10.5, "", colMuted, 4.4}
	styleP     = style{11, "", colText, 4.7}
	styleSmall = style{10, "", colText, 4.2}
	styleLabel = style{10, "B", colText, 4.2}
	styleQuote = style{12, "I", colText, 5.0}
	styleTitle = style{13, "B", colText, 5.4}
	styleSteer = style{10.5, "", colMuted, 4.4}
)

// Canvas wraps the underlying PDF with the codepage translator needed
// for the German copy. All primitives draw through it.
type Canvas struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
}

func newCanvas(pdf *gofpdf.Fpdf) *Canvas {
	return &Canvas{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
}

func (c *Canvas) setStyle(s style) {
	c.pdf.SetFont("Helvetica", s.font, s.size)
	c.pdf.SetTextColor(s.color.r, s.color.g, s.color.b)
}

// splitLines wraps text to the given width, honoring embedded newlines.
// An empty source line survives as an empty output line so paragraph
// gaps keep their height.
func (c *Canvas) splitLines(s style, text string, width float64) []string {
	c.setStyle(s)
	var out []string
	for _, raw := range strings.Split(text, "\n") {
		if strings.TrimSpace(raw) == "" {
			out = append(out, "")
			continue
		}
		for _, line := range c.pdf.SplitLines([]byte(c.tr(raw)), width) {
			out = append(out, string(line))
		}
	}
	return out
}

// textHeight returns the rendered height of wrapped text.
func (c *Canvas) textHeight(s style, text string, width float64) float64 {
	if text == "" {
		return 0
	}
	return float64(len(c.splitLines(s, text, width))) * s.lineH
}

// drawText renders wrapped text at (x, y) and returns the height used.
// align is "L", "C" or "R" within the given width.
func (c *Canvas) drawText(s style, text string, x, y, width float64, align string) float64 {
	lines := c.splitLines(s, text, width)
	c.setStyle(s)
	for i, line := range lines {
		if line == "" {
			continue
		}
		c.pdf.SetXY(x, y+float64(i)*s.lineH)
		c.pdf.CellFormat(width, s.lineH, line, "", 0, align, false, 0, "")
	}
	return float64(len(lines)) * s.lineH
}

func (c *Canvas) setDraw(col rgb, lineWidth float64) {
	c.pdf.SetDrawColor(col.r, col.g, col.b)
	c.pdf.SetLineWidth(lineWidth)
}

func (c *Canvas) setFill(col rgb) {
	c.pdf.SetFillColor(col.r, col.g, col.b)
}

// Block is a measurable, drawable layout unit. Measure must be called
// with the same width Draw will receive; composers use the reported
// height to decide where page breaks go before anything is drawn.
type Block interface {
	Measure(c *Canvas, width float64) float64
	Draw(c *Canvas, x, y, width float64)
}
