package content

import "strings"

// Role describes which slot of the report a text fragment is selected
// for. Top levers and friction zones appear on the meaning-card page,
// deep dives on the per-category pages.
type Role int

const (
	RoleDeepDive Role = iota
	RoleTopLever
	RoleFrictionZone
)

// TextSet is the resolved narrative for one category/percentage/role
// combination. Fields not applicable to the role stay empty.
type TextSet struct {
	Body     string // card body: top narrative or low variant
	Addendum string // top levers only: high/mid addendum
	Steering string // band-dependent steering advice
	Short    string // short variant for compact views
}

// Resolve picks the narrative fragments for a category. Unknown category
// ids and out-of-range role/percentage combinations return an empty set;
// the caller renders the gap rather than aborting the document.
func Resolve(categoryID string, pct int, role Role) TextSet {
	card, ok := meaningCards[categoryID]
	if !ok {
		return TextSet{}
	}

	band := Classify(pct)
	set := TextSet{Steering: steering(card, band)}

	switch role {
	case RoleTopLever:
		set.Body = card.Top
		set.Short = card.ShortTop
		if pct >= TopThreshold {
			set.Addendum = addendumHigh[categoryID]
		} else {
			set.Addendum = addendumMid[categoryID]
		}
	case RoleFrictionZone:
		// Friction zones are the two lowest-ranked categories; a high
		// band here cannot come out of the scoring pipeline. If a caller
		// passes one anyway the variant is undefined, so return no text.
		switch band {
		case BandLow:
			set.Body = card.LowA
			set.Short = card.ShortLowA
		case BandMid:
			set.Body = card.LowB
			set.Short = card.ShortLowB
		default:
			return TextSet{}
		}
	case RoleDeepDive:
		c := categories[categoryID]
		switch band {
		case BandHigh:
			set.Body = strings.Join(c.High, "\n")
			set.Short = card.ShortTop
		case BandMid:
			set.Body = strings.Join(c.Mid, "\n")
			set.Short = card.ShortLowB
		default:
			set.Body = strings.Join(c.Low, "\n")
			set.Short = card.ShortLowA
		}
	}
	return set
}

// BandBody returns the deep-dive body lines for one band of a category.
// The deep-dive page renders all three bands and emphasizes the matching
// one, so composers fetch each band separately.
func BandBody(categoryID string, band Band) []string {
	c, ok := categories[categoryID]
	if !ok {
		return nil
	}
	switch band {
	case BandHigh:
		return c.High
	case BandMid:
		return c.Mid
	default:
		return c.Low
	}
}

func steering(card MeaningCard, band Band) string {
	switch band {
	case BandHigh:
		return card.SteerHigh
	case BandMid:
		return card.SteerMid
	default:
		return card.SteerLow
	}
}
