package scoring

import "github.com/dominikmueller-lingelbach/performance-profile-app/internal/content"

// Profile type thresholds: a category counts as high at >= 67 and as
// low at <= 33.
const (
	typeHigh = 67
	typeLow  = 33
)

// fallbackTypeGroups maps a top-scoring category onto its profile type
// when no decision rule fires.
var fallbackTypeGroups = map[string]string{
	"STR": "A", "MOR": "A",
	"DST": "B", "AKT": "B",
	"IND": "C", "INF": "C",
	"COM": "D", "AUF": "D", "STA": "D",
}

// DecideProfileType evaluates the five decision rules in fixed order;
// the first match wins. With no match, the single highest-scoring
// category picks the type through its group (ties resolve to the first
// category in table order).
func DecideProfileType(p map[string]int) string {
	high := func(fid string) bool { return p[fid] >= typeHigh }
	low := func(fid string) bool { return p[fid] <= typeLow }

	switch {
	// A Stabilitätsmodus: structure and values high, pressure mode not collapsed.
	case high("STR") && high("MOR") && p["DST"] >= 40:
		return "A"
	// B Druckmodus: pressure and drive high, structure low.
	case high("DST") && high("AKT") && low("STR"):
		return "B"
	// C Gestaltungsmodus: autonomy and processing high, structure workable.
	case high("IND") && high("INF") && p["STR"] >= 40:
		return "C"
	// D Vergleichsmodus: comparison, visibility and status all high.
	case high("COM") && high("AUF") && high("STA"):
		return "D"
	// E Kontrollmodus: influence, structure and processing high.
	case high("MAC") && high("STR") && high("INF"):
		return "E"
	}

	top := ""
	best := -1
	for _, fid := range content.CategoryOrder {
		if p[fid] > best {
			best = p[fid]
			top = fid
		}
	}
	if t, ok := fallbackTypeGroups[top]; ok {
		return t
	}
	return "E"
}
