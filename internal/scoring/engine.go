// Package scoring turns raw questionnaire answers into per-category
// percentages, a ranking and a profile type. The computation is pure:
// the same answers against the same catalog always yield the same
// result, and malformed answer values degrade to 0 instead of failing.
package scoring

import (
	"encoding/json"
	"math"
	"sort"
	"strconv"

	"github.com/dominikmueller-lingelbach/performance-profile-app/internal/content"
)

// Entry is one ranked category with its percentage.
type Entry struct {
	ID      string
	Percent int
}

// MarshalJSON keeps the wire shape of a ranked entry as a two-element
// array, matching the persisted payload format.
func (e Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{e.ID, e.Percent})
}

// UnmarshalJSON accepts the array form.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var pair [2]json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if err := json.Unmarshal(pair[0], &e.ID); err != nil {
		return err
	}
	var pct float64
	if err := json.Unmarshal(pair[1], &pct); err != nil {
		return err
	}
	e.Percent = int(math.Round(pct))
	return nil
}

// Result is the full scoring outcome for one submission. Immutable once
// computed; the report pipeline only reads it.
type Result struct {
	ProfileType   string             `json:"profile_type"`
	Ranked        []Entry            `json:"ranked"`
	Percents      map[string]int     `json:"percents"`
	Sums          map[string]float64 `json:"sums"`
	Avgs          map[string]float64 `json:"avgs"`
	TopCategories []string           `json:"top_categories"`
}

// Score aggregates answers into the per-category result. Answer values
// may be numbers or numeric strings; anything else counts as 0. Unknown
// question ids are skipped.
func (c *Catalog) Score(answers map[string]any) Result {
	sums := make(map[string]float64, len(content.CategoryOrder))
	counts := make(map[string]int, len(content.CategoryOrder))
	for _, fid := range content.CategoryOrder {
		sums[fid] = 0
		counts[fid] = 0
	}

	for qid, val := range answers {
		fid, ok := c.byID[qid]
		if !ok {
			continue
		}
		sums[fid] += coerceNumber(val)
		counts[fid]++
	}

	avgs := make(map[string]float64, len(sums))
	percents := make(map[string]int, len(sums))
	for _, fid := range content.CategoryOrder {
		n := counts[fid]
		if n == 0 {
			n = 1
		}
		avg := sums[fid] / float64(n)
		avgs[fid] = math.Round(avg*100) / 100
		percents[fid] = int(math.Round(avg / 10 * 100))
	}

	ranked := Rank(percents)

	top := make([]string, 0, 3)
	for _, e := range ranked[:3] {
		top = append(top, content.CategoryName(e.ID))
	}

	return Result{
		ProfileType:   DecideProfileType(percents),
		Ranked:        ranked,
		Percents:      percents,
		Sums:          sums,
		Avgs:          avgs,
		TopCategories: top,
	}
}

// Rank sorts all 11 categories descending by percentage. The sort is
// stable over the fixed category order, so ties keep table order.
func Rank(percents map[string]int) []Entry {
	ranked := make([]Entry, 0, len(content.CategoryOrder))
	for _, fid := range content.CategoryOrder {
		ranked = append(ranked, Entry{ID: fid, Percent: percents[fid]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Percent > ranked[j].Percent
	})
	return ranked
}

func coerceNumber(v any) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case float32:
		return float64(x)
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		f, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
