package report

import (
	"fmt"
	"strings"

	"github.com/dominikmueller-lingelbach/performance-profile-app/internal/content"
	"github.com/dominikmueller-lingelbach/performance-profile-app/internal/scoring"
)

// PageGroup is one logical unit of the document. The assembler renders
// groups in order, each starting on a fresh page; a group may span
// several pages (the deep dives contribute one page per category).
type PageGroup struct {
	Name  string
	Pages [][]Block
}

// Compose builds all page groups for a normalized payload, in the fixed
// document order: cover, snapshot, bar chart, meaning cards, the 11
// category deep dives, closing.
func Compose(p Payload) []PageGroup {
	deepDives := make([][]Block, 0, len(content.CategoryOrder))
	for _, fid := range content.CategoryOrder {
		deepDives = append(deepDives, categoryPage(fid, p.PercentFor(fid)))
	}

	return []PageGroup{
		{Name: "cover", Pages: [][]Block{coverPage(p)}},
		{Name: "snapshot", Pages: [][]Block{snapshotPage(p)}},
		{Name: "overview", Pages: [][]Block{overviewPage(p)}},
		{Name: "meaning", Pages: [][]Block{meaningPage(p)}},
		{Name: "categories", Pages: deepDives},
		{Name: "closing", Pages: [][]Block{closingPage(p)}},
	}
}

// topline is the brand row repeated on the first pages: brand left,
// "name · email" right.
func topline(p Payload) Block {
	who := p.Name
	if p.Email != "" {
		who = p.Name + " · " + p.Email
	}
	return &Columns{
		Widths: []float64{0, 70},
		Cells: []Block{
			para(styleBrand, "Performance Profil"),
			&Text{Style: styleTag, Body: who, Align: "R"},
		},
	}
}

func coverPage(p Payload) []Block {
	return []Block{
		topline(p),
		gap(4),
		para(styleH0, "Deine individuelle Leistungsarchitektur"),
		gap(4),
		box("Wichtig",
			para(styleP, "Das hier ist kein Persönlichkeitstest.\nWas du jetzt in den Händen hältst, ist eine Landkarte deiner Leistungsmechanik."),
			gap(2),
			para(styleP, "Sie zeigt dir nicht, wer du bist – sondern wie du Leistung erzeugst.\nUnd warum sie manchmal kommt – und manchmal nicht."),
		),
		gap(4),
		box("Worum es wirklich geht",
			para(styleP, "Die meisten Menschen arbeiten an Motivation, Zielen und Disziplin.\nTop-Performer arbeiten an etwas anderem: Zugriff."),
			gap(2),
			para(styleP, "Zugriff auf Klarheit.\nZugriff auf Entscheidungskraft.\nZugriff auf Leistung – genau dann, wenn es zählt."),
		),
		gap(4),
		box("Wie du diesen Report liest",
			para(styleP, "Nicht wie einen Text – sondern wie einen Spiegel."),
			gap(2),
			para(styleP, "In jeder Kategorie findest du drei Ausprägungen (hoch/mittel/niedrig).\nDer Bereich, der auf dich zutrifft, ist im Report markiert (grüner Rahmen).\nDie anderen beiden Bereiche dienen nur als Kontext – damit du verstehst, wie Leistung entsteht oder kippt."),
			gap(2),
			para(styleP, "Wenn du an mehreren Stellen denkst: „Verdammt – das bin genau ich“ – dann funktioniert er.\nWenn du Widerstand spürst – dann triffst du gerade auf deine Reibung."),
			gap(2),
			para(styleP, "Beides ist wertvoll. Beides ist steuerbar."),
		),
		gap(4),
		para(styleQuote, "„Leistung ist kein Zufall. Sie entsteht dort, wo Klarheit, Steuerung und Verantwortung zusammenkommen.“"),
	}
}

func snapshotPage(p Payload) []Block {
	t := content.ProfileTypeByTag(p.ProfileType)

	typeHead := &Columns{
		Widths: []float64{14, 0},
		Gutter: 2,
		Cells: []Block{
			badge(p.ProfileType),
			&typeHeadText{title: t.Title, hint: t.Hint},
		},
	}

	left := box("Dein Performance-Modus (Arbeitsmodus)",
		typeHead,
		gap(3),
		&Card{
			Title:       t.Label,
			Children:    []Block{explainBlock(t.Explain)},
			Fill:        colCardBG,
			Stroke:      colBorder,
			StrokeWidth: 0.25,
			Radius:      2.2,
			Padding:     3,
		},
	)

	right := box("Kurz-Auswertung",
		para(styleLabel, "Deine stärksten Hebel (Top 3)"),
		gap(1.5),
		scoreRows(entryRows(p.TopLevers()), false),
		gap(3),
		para(styleLabel, "Deine Reibungszonen (2 niedrigste)"),
		gap(1.5),
		scoreRows(entryRows(p.FrictionZones()), false),
		gap(3),
		para(styleMuted, "Hinweis: Es geht nicht darum, überall „hoch“ zu sein. Entscheidend ist, dass du weißt, wo du Leistung holst und wo Reibung entsteht – damit du gezielt steuerst."),
	)

	return []Block{
		topline(p),
		gap(4),
		para(styleH0, "Dein Ergebnis ist da."),
		para(styleMuted, "Du siehst nicht „wer du bist“, sondern wie du unter Druck funktionierst – und wie du das steuerst."),
		gap(4),
		&Columns{Widths: []float64{86, 0}, Gutter: 6, Cells: []Block{left, right}},
	}
}

// typeHeadText stacks the type title over its hint next to the badge.
type typeHeadText struct {
	title, hint string
}

func (t *typeHeadText) Measure(c *Canvas, width float64) float64 {
	return c.textHeight(style{15, "B", colText, 6.2}, t.title, width) +
		c.textHeight(styleTag, t.hint, width)
}

func (t *typeHeadText) Draw(c *Canvas, x, y, width float64) {
	y += c.drawText(style{15, "B", colText, 6.2}, t.title, x, y, width, "L")
	c.drawText(styleTag, t.hint, x, y, width, "L")
}

// explainBlock splits the type explanation at its "Führung:" steering
// part and sets that part off as its own bolded paragraph.
func explainBlock(text string) Block {
	const marker = "Führung:"
	if !strings.Contains(text, marker) {
		return para(styleP, text)
	}
	parts := strings.SplitN(text, marker, 2)
	return &Stack{Blocks: []Block{
		para(styleP, strings.TrimSpace(parts[0])),
		gap(2),
		para(style{11, "B", colText, 4.7}, marker+" "+strings.TrimSpace(parts[1])),
	}}
}

// Stack renders blocks vertically; used where one logical slot holds
// several primitives.
type Stack struct{ Blocks []Block }

func (st *Stack) Measure(c *Canvas, width float64) float64 {
	h := 0.0
	for _, b := range st.Blocks {
		h += b.Measure(c, width)
	}
	return h
}

func (st *Stack) Draw(c *Canvas, x, y, width float64) {
	for _, b := range st.Blocks {
		b.Draw(c, x, y, width)
		y += b.Measure(c, width)
	}
}

func entryRows(entries []scoring.Entry) []ScoreRow {
	rows := make([]ScoreRow, len(entries))
	for i, e := range entries {
		rows[i] = ScoreRow{Name: content.CategoryName(e.ID), Percent: e.Percent}
	}
	return rows
}

func overviewPage(p Payload) []Block {
	rows := make([]ScoreRow, len(p.Ranked))
	for i, e := range p.Ranked {
		rows[i] = ScoreRow{Name: content.CategoryName(e.ID), Percent: e.Percent, WithBar: true}
	}

	return []Block{
		para(styleH0, "Dein Profil (Bar Chart)"),
		para(styleMuted, "Alle 11 Funktionen im Überblick – als klare Ausgangslage."),
		gap(4),
		box("Dein Profil", scoreRows(rows, true)),
		gap(4),
		box("Einordnung der Prozentwerte",
			para(styleP, "0–25 %: niedrig ausgeprägt (hier entsteht typischerweise Reibung – je nach Kontext)"),
			para(styleP, "25–75 %: mittel ausgeprägt (flexibel – kann tragen oder kippen, abhängig von Rahmen & Druck)"),
			para(styleP, "75–100 %: hoch ausgeprägt (starker Hebel – wenn du ihn bewusst steuerst)"),
		),
	}
}

func meaningPage(p Payload) []Block {
	blocks := []Block{
		para(styleH0, "Was das konkret bedeutet"),
		para(styleMuted, "Hier siehst du glasklar, wie du unter Druck performst – wo du Leistung gewinnst und wo du sie unnötig verlierst."),
		gap(3),
		para(styleLabel, "Deine stärksten Hebel"),
		gap(2),
	}
	for i, e := range p.TopLevers() {
		blocks = append(blocks, meaningCard(e.ID, e.Percent, content.RoleTopLever))
		if i < len(p.TopLevers())-1 {
			blocks = append(blocks, gap(2))
		}
	}
	blocks = append(blocks,
		gap(4),
		para(styleLabel, "Deine Reibungszonen"),
		gap(2),
	)
	for i, e := range p.FrictionZones() {
		blocks = append(blocks, meaningCard(e.ID, e.Percent, content.RoleFrictionZone))
		if i < len(p.FrictionZones())-1 {
			blocks = append(blocks, gap(2))
		}
	}
	blocks = append(blocks,
		gap(4),
		para(styleMuted, "Merksatz: Top-Hebel sind deine stärksten Wirkungen. Reibungszonen sind die Stellen, wo du unnötig Leistung verlierst – beides ist steuerbar."),
	)
	return blocks
}

// meaningCard is the compact card for one top lever or friction zone:
// tag and percent in the head row, category name, resolved narrative
// (top text plus addendum, or the low variant), then the steering line.
func meaningCard(fid string, pct int, role content.Role) Block {
	tag := "Top-Hebel"
	if role == content.RoleFrictionZone {
		tag = "Reibungszone"
	}
	set := content.Resolve(fid, pct, role)

	body := set.Body
	if set.Addendum != "" {
		body += "\n\n" + set.Addendum
	}

	head := &Columns{
		Widths: []float64{0, 24},
		Cells: []Block{
			para(styleLabel, tag),
			&Text{Style: styleLabel, Body: formatPercent(pct), Align: "R"},
		},
	}

	return &Card{
		Children: []Block{
			head,
			&rule{},
			gap(1.6),
			para(styleTitle, content.CategoryName(fid)),
			gap(1),
			para(styleP, body),
			gap(1.6),
			&rule{},
			gap(1.2),
			para(styleSteer, "Steuerung: "+set.Steering),
		},
		Fill:        colCardBG,
		Stroke:      colBorder,
		StrokeWidth: 0.25,
		Radius:      2.2,
		Padding:     3,
	}
}

// rule is a full-width hairline.
type rule struct{}

func (rule) Measure(*Canvas, float64) float64 { return 0.6 }

func (rule) Draw(c *Canvas, x, y, width float64) {
	c.setDraw(colLine, 0.15)
	c.pdf.Line(x, y+0.3, x+width, y+0.3)
}

var bandTitles = map[content.Band]string{
	content.BandHigh: "Wenn der Wert hoch ist (75–100 %)",
	content.BandMid:  "Wenn der Wert im mittleren Bereich liegt (25–75 %)",
	content.BandLow:  "Wenn der Wert niedrig ist (0–25 %)",
}

// categoryPage is one deep dive: header with current value and band,
// the intro box, all three band boxes with the matching one emphasized,
// the three practice rules and the mnemonic.
func categoryPage(fid string, pct int) []Block {
	cat, ok := content.CategoryByID(fid)
	if !ok {
		cat = content.Category{Title: fid}
	}
	active := content.Classify(pct)

	blocks := []Block{
		para(styleH0, cat.Title),
		para(styleMuted, cat.What),
		gap(1),
		para(styleMuted, fmt.Sprintf("Aktueller Wert: %d %% · Einordnung: %s", pct, active.Label())),
		gap(4),
		bar(pct),
		gap(4),
		box("Worum es hier wirklich geht", para(styleP, FormatLines(cat.Intro, ""))),
		gap(4),
	}

	for _, band := range []content.Band{content.BandHigh, content.BandMid, content.BandLow} {
		title := bandTitles[band]
		card := box(title, para(styleP, FormatLines(content.BandBody(fid, band), band.BulletGlyph())))
		if band == active {
			card.Title = "DEIN BEREICH · " + title
			card.emphasized()
		}
		blocks = append(blocks, card, gap(4))
	}

	blocks = append(blocks,
		box("Praxisregeln – so steuerst du diesen Hebel", &NumberedRows{Items: cat.Practice}),
		gap(3),
		box("Merksatz", para(styleP, cat.Mnemonic)),
	)
	return blocks
}

func closingPage(p Payload) []Block {
	topNames := make([]string, 0, 3)
	for _, e := range p.TopLevers() {
		topNames = append(topNames, content.CategoryName(e.ID))
	}
	lowNames := make([]string, 0, 2)
	for _, e := range p.FrictionZones() {
		lowNames = append(lowNames, content.CategoryName(e.ID))
	}

	return []Block{
		para(styleH0, "Actionplan & nächste Schritte"),
		gap(4),
		para(style{11, "B", colText, 4.7}, "Leistung ist kein Zufall. Leistung ist steuerbar."),
		gap(4),
		box("Dein Fokus (14 Tage)",
			para(styleP, "Top-Hebel nutzen: "+strings.Join(topNames, ", ")),
			para(styleP, "Wähle eine Praxisregel aus deinem stärksten Hebel – und setze sie täglich um."),
			gap(1.5),
			para(styleP, "Reibung reduzieren: "+strings.Join(lowNames, ", ")),
			para(styleP, "Wähle eine Praxisregel aus deiner Reibungszone – und mache sie zur Pflicht."),
		),
		gap(4),
		box("Abschluss",
			para(styleP, "Dieses Profil ist kein Urteil.\nUnd es ist keine Motivation."),
			gap(1.5),
			para(styleP, "Es ist eine Landkarte."),
			gap(1.5),
			para(styleP, "Sie zeigt dir nicht, wer du bist, sondern wie du Leistung erzeugst – und warum sie unter Druck manchmal abrufbar ist und manchmal nicht."),
			gap(1.5),
			para(styleP, "Du hast jetzt gesehen, wo dein Zugriff stabil ist, wo er kippt und welche Muster darüber entscheiden, ob Leistung kommt – oder verloren geht."),
			gap(1.5),
			para(styleP, "Das allein ist wertvoll.\nDoch Klarheit allein ändert gar nichts."),
		),
		gap(4),
		box("Was jetzt entscheidet",
			para(styleP, "Der Unterschied entsteht nicht im Verstehen. Er entsteht dort, wo Entscheidungen getroffen werden – auch wenn sie unbequem sind."),
			gap(1.5),
			para(styleP, "Unter Druck. Unter Verantwortung. Unter Erwartung."),
			gap(1.5),
			para(styleP, "Und genau hier scheitern selbst sehr erfolgreiche Menschen. Nicht, weil sie zu wenig wissen. Nicht, weil ihnen Disziplin fehlt. Sondern weil ihrem System unter Druck der Zugriff fehlt."),
			gap(1.5),
			para(styleP, "Ich arbeite nicht an Motivation. Ich baue Systeme, damit Leistung unter Druck abrufbar wird."),
			gap(1.5),
			para(styleP, "Nicht theoretisch. Nicht im Idealzustand. Sondern genau dort, wo Führung, Verantwortung und Entscheidung wirklich stattfinden."),
		),
		gap(4),
		box("Deine Entscheidung",
			para(styleP, "Denn Leistung ist kein Zufall. Sie ist das Ergebnis von Struktur, Steuerung und der Fähigkeit, sich selbst im entscheidenden Moment zu führen."),
			gap(1.5),
			para(styleP, "Die Frage ist nicht, ob du mehr Potenzial hast. Die Frage ist, wie lange du es noch ungenutzt lassen willst."),
			gap(1.5),
			para(styleP, "Du kannst dieses Profil schließen und weitermachen wie bisher. Vieles wird weiterhin funktionieren. Doch Frust, Hilflosigkeit und Leistungsverlust werden sich immer wiederholen."),
			gap(1.5),
			para(styleP, "Oder du entscheidest dich, dein Leistungssystem nicht länger dem Zufall zu überlassen."),
			gap(1.5),
			para(styleP, "Für Menschen, die führen. Verantwortung tragen. Und mehr wollen als nur funktionieren."),
			gap(1.5),
			para(styleP, "Wenn du beim Lesen gespürt hast, dass hier etwas trifft, das tiefer geht als Motivation oder Mindset, dann ist das kein Zufall. Dann bist du genau an dem Punkt, an dem echte Performance-Arbeit beginnt."),
			gap(1.5),
			para(styleP, "Sag mir Bescheid, wenn du bereit bist."),
		),
	}
}
