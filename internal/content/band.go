package content

// Band classifies a percentage into the three ranges the narrative
// tables are written for.
type Band int

const (
	BandLow  Band = iota // 0–24
	BandMid              // 25–74
	BandHigh             // 75–100
)

// TopThreshold is the percentage at which a top lever gets the stronger
// worded addendum.
const TopThreshold = 75

// Classify maps a percentage onto its band. The partition is total:
// every integer in [0,100] lands in exactly one band.
func Classify(pct int) Band {
	switch {
	case pct < 25:
		return BandLow
	case pct < 75:
		return BandMid
	default:
		return BandHigh
	}
}

func (b Band) String() string {
	switch b {
	case BandLow:
		return "niedrig"
	case BandMid:
		return "mittel"
	default:
		return "hoch"
	}
}

// Label returns the band name with its percentage range, as printed on
// the deep-dive pages.
func (b Band) Label() string {
	switch b {
	case BandLow:
		return "niedrig (0–25 %)"
	case BandMid:
		return "mittel (25–75 %)"
	default:
		return "hoch (75–100 %)"
	}
}

// BulletGlyph is the list marker used when formatting the band's body
// text: + for high, · for mid, - for low.
func (b Band) BulletGlyph() string {
	switch b {
	case BandHigh:
		return "+"
	case BandMid:
		return "·"
	default:
		return "-"
	}
}
