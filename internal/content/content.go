// Package content holds the static narrative tables of the performance
// profile report and the selection logic that picks the right text
// fragments for a category, percentage and role. All tables are read-only
// after process start; lookups for unknown ids return zero values instead
// of failing so that document assembly never aborts over missing copy.
package content

// Category is one of the 11 scored dimensions with its full narrative set.
type Category struct {
	ID       string
	Name     string
	What     string
	Title    string
	Intro    []string
	High     []string
	Mid      []string
	Low      []string
	Practice []string
	Mnemonic string

	// One-line summaries used by the web result view.
	SummaryHigh string
	SummaryLow  string
	SteerLine   string
}

// MeaningCard carries the compact card texts for top levers and friction
// zones. LowA is the severe low variant (<25%), LowB the milder one.
type MeaningCard struct {
	Top       string
	LowA      string
	LowB      string
	SteerHigh string
	SteerMid  string
	SteerLow  string
	ShortTop  string
	ShortLowA string
	ShortLowB string
}

// ProfileType describes one of the five behavioral archetypes A..E.
type ProfileType struct {
	Tag     string
	Title   string
	Label   string
	Hint    string
	Explain string

	// Long-form profile shown on the web result page.
	Archetype   string
	Core        string
	Strengths   []string
	Risks       []string
	Development string
}

// CategoryByID returns the category definition, or false for ids outside
// the fixed set of 11.
func CategoryByID(id string) (Category, bool) {
	c, ok := categories[id]
	return c, ok
}

// CategoryName returns the display name, falling back to the raw id so
// callers can always render something.
func CategoryName(id string) string {
	if c, ok := categories[id]; ok {
		return c.Name
	}
	return id
}

// ProfileTypeByTag returns the profile type for tag A..E. Unknown tags
// yield a placeholder type so rendering degrades instead of crashing.
func ProfileTypeByTag(tag string) ProfileType {
	if t, ok := profileTypes[tag]; ok {
		return t
	}
	return ProfileType{Tag: tag, Title: "Typ " + tag, Label: "—", Hint: "—", Explain: "—"}
}
