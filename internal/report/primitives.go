package report

// Text is a wrapped text block in one style.
type Text struct {
	Style style
	Body  string
	Align string // "L" (default), "C", "R"
}

func para(s style, body string) *Text { return &Text{Style: s, Body: body} }

func (t *Text) Measure(c *Canvas, width float64) float64 {
	return c.textHeight(t.Style, t.Body, width)
}

func (t *Text) Draw(c *Canvas, x, y, width float64) {
	align := t.Align
	if align == "" {
		align = "L"
	}
	c.drawText(t.Style, t.Body, x, y, width, align)
}

// Spacer is fixed vertical whitespace.
type Spacer struct{ H float64 }

func gap(h float64) *Spacer { return &Spacer{H: h} }

func (s *Spacer) Measure(*Canvas, float64) float64 { return s.H }
func (s *Spacer) Draw(*Canvas, float64, float64, float64) {
}

// Card is a rounded bordered container with an optional title row and a
// sequence of child blocks. Emphasis is expressed through stroke color,
// stroke width and fill, used on deep-dive pages to flag the band that
// matches the respondent.
type Card struct {
	Title       string
	Children    []Block
	Fill        rgb
	Stroke      rgb
	StrokeWidth float64
	Radius      float64
	Padding     float64
}

func box(title string, children ...Block) *Card {
	return &Card{
		Title:       title,
		Children:    children,
		Fill:        colCardBG,
		Stroke:      colBorder,
		StrokeWidth: 0.25,
		Radius:      2.2,
		Padding:     3.5,
	}
}

// emphasized restyles the card as the respondent's matching band.
func (cd *Card) emphasized() *Card {
	cd.Fill = colGreenBG
	cd.Stroke = colGreen
	cd.StrokeWidth = 0.7
	return cd
}

const cardTitleGap = 2.4 // rule below the title row

func (cd *Card) innerWidth(width float64) float64 { return width - 2*cd.Padding }

func (cd *Card) Measure(c *Canvas, width float64) float64 {
	inner := cd.innerWidth(width)
	h := 2 * cd.Padding
	if cd.Title != "" {
		h += c.textHeight(styleLabel, cd.Title, inner) + cardTitleGap
	}
	for _, child := range cd.Children {
		h += child.Measure(c, inner)
	}
	return h
}

func (cd *Card) Draw(c *Canvas, x, y, width float64) {
	h := cd.Measure(c, width)
	c.setDraw(cd.Stroke, cd.StrokeWidth)
	c.setFill(cd.Fill)
	c.pdf.RoundedRect(x, y, width, h, cd.Radius, "1234", "FD")

	inner := cd.innerWidth(width)
	cx := x + cd.Padding
	cy := y + cd.Padding
	if cd.Title != "" {
		cy += c.drawText(styleLabel, cd.Title, cx, cy, inner, "L")
		c.setDraw(colLine, 0.15)
		c.pdf.Line(cx, cy+cardTitleGap/2, cx+inner, cy+cardTitleGap/2)
		cy += cardTitleGap
	}
	for _, child := range cd.Children {
		child.Draw(c, cx, cy, inner)
		cy += child.Measure(c, inner)
	}
}

// ProgressBar is a horizontal bar with rounded track and fill. The fill
// radius is clamped to half the fill width so tiny percentages do not
// produce corner artifacts.
type ProgressBar struct {
	Percent int
	Height  float64
}

func bar(pct int) *ProgressBar { return &ProgressBar{Percent: pct, Height: 4} }

func (b *ProgressBar) Measure(*Canvas, float64) float64 { return b.Height }

func (b *ProgressBar) Draw(c *Canvas, x, y, width float64) {
	pct := b.Percent
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	r := b.Height / 2

	c.setDraw(rgb{209, 213, 219}, 0.2)
	c.setFill(colLine)
	c.pdf.RoundedRect(x, y, width, b.Height, r, "1234", "FD")

	fillW := float64(pct) / 100 * width
	if fillW > 0 {
		r2 := r
		if fillW/2 < r2 {
			r2 = fillW / 2
		}
		c.setFill(colGreen)
		c.pdf.RoundedRect(x, y, fillW, b.Height, r2, "1234", "F")
	}
}

// Badge is a small rounded square holding a short label, used for the
// profile type letter.
type Badge struct {
	Label string
	Size  float64
}

func badge(label string) *Badge { return &Badge{Label: label, Size: 12} }

func (bd *Badge) Measure(*Canvas, float64) float64 { return bd.Size }

func (bd *Badge) Draw(c *Canvas, x, y, _ float64) {
	c.setDraw(colGreen, 0.35)
	c.setFill(colBadgeBG)
	c.pdf.RoundedRect(x, y, bd.Size, bd.Size, 2.5, "1234", "FD")

	c.pdf.SetFont("Helvetica", "B", 16)
	c.pdf.SetTextColor(colGreenInk.r, colGreenInk.g, colGreenInk.b)
	c.pdf.SetXY(x, y+bd.Size/2-3)
	c.pdf.CellFormat(bd.Size, 6, c.tr(bd.Label), "", 0, "C", false, 0, "")
}

// Columns lays child blocks side by side; its height is the tallest
// column. Used for the snapshot page's two-card grid.
type Columns struct {
	Widths []float64 // absolute widths; a zero takes the remaining space
	Cells  []Block
	Gutter float64
}

func (cl *Columns) cellWidths(width float64) []float64 {
	widths := make([]float64, len(cl.Widths))
	used := cl.Gutter * float64(len(cl.Widths)-1)
	flex := -1
	for i, w := range cl.Widths {
		if w == 0 {
			flex = i
			continue
		}
		widths[i] = w
		used += w
	}
	if flex >= 0 {
		widths[flex] = width - used
	}
	return widths
}

func (cl *Columns) Measure(c *Canvas, width float64) float64 {
	max := 0.0
	for i, w := range cl.cellWidths(width) {
		if h := cl.Cells[i].Measure(c, w); h > max {
			max = h
		}
	}
	return max
}

func (cl *Columns) Draw(c *Canvas, x, y, width float64) {
	cx := x
	for i, w := range cl.cellWidths(width) {
		cl.Cells[i].Draw(c, cx, y, w)
		cx += w + cl.Gutter
	}
}

// ScoreRow is one "name … percent" line, optionally with a progress bar
// between name and value, separated from the next row by a hairline.
type ScoreRow struct {
	Name    string
	Percent int
	WithBar bool
}

// ScoreRows renders a list of categories with their percentages: the
// snapshot top/bottom lists (no bars) and the bar-chart overview (bars).
type ScoreRows struct {
	Rows    []ScoreRow
	RowH    float64
	NameW   float64 // fixed name column when bars are shown
	ValueW  float64
	Padding float64
}

func scoreRows(rows []ScoreRow, withBars bool) *ScoreRows {
	r := &ScoreRows{Rows: rows, RowH: 8, ValueW: 14, Padding: 1.6}
	if withBars {
		r.NameW = 62
	}
	return r
}

func (sr *ScoreRows) Measure(_ *Canvas, _ float64) float64 {
	return float64(len(sr.Rows)) * sr.RowH
}

func (sr *ScoreRows) Draw(c *Canvas, x, y, width float64) {
	for i, row := range sr.Rows {
		ry := y + float64(i)*sr.RowH
		mid := ry + (sr.RowH-styleSmall.lineH)/2

		if sr.NameW > 0 {
			c.drawText(styleSmall, row.Name, x, mid, sr.NameW, "L")
			barW := width - sr.NameW - sr.ValueW - 2*sr.Padding
			b := bar(row.Percent)
			b.Draw(c, x+sr.NameW+sr.Padding, ry+(sr.RowH-b.Height)/2, barW)
		} else {
			c.drawText(styleLabel, row.Name, x, mid, width-sr.ValueW, "L")
		}
		c.drawText(styleLabel, formatPercent(row.Percent), x+width-sr.ValueW, mid, sr.ValueW, "R")

		c.setDraw(colLine, 0.15)
		c.pdf.Line(x, ry+sr.RowH, x+width, ry+sr.RowH)
	}
}

// NumberedRows renders the practice rules as "1. … 2. … 3. …".
type NumberedRows struct {
	Items []string
}

const numberColW = 8.0

func (nr *NumberedRows) Measure(c *Canvas, width float64) float64 {
	h := 0.0
	for _, item := range nr.Items {
		h += c.textHeight(styleP, item, width-numberColW) + 1.6
	}
	return h
}

func (nr *NumberedRows) Draw(c *Canvas, x, y, width float64) {
	for i, item := range nr.Items {
		c.drawText(styleLabel, formatOrdinal(i+1), x, y, numberColW, "L")
		h := c.drawText(styleP, item, x+numberColW, y, width-numberColW, "L")
		y += h + 1.6
	}
}
