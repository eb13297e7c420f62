package report

import (
	"encoding/json"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/dominikmueller-lingelbach/performance-profile-app/internal/content"
	"github.com/dominikmueller-lingelbach/performance-profile-app/internal/scoring"
)

// Payload is the persisted report unit the document is generated from.
// Everything in it is treated as untrusted boundary data: percentages
// are coerced, gaps are defaulted, and generation never fails on
// malformed values.
type Payload struct {
	ReportID    string             `json:"report_id"`
	ResultURL   string             `json:"result_url"`
	Name        string             `json:"name"`
	Email       string             `json:"email"`
	ProfileType string             `json:"profile_type"`
	Ranked      RankedList         `json:"ranked"`
	Percents    map[string]int     `json:"percents,omitempty"`
	Sums        map[string]float64 `json:"sums,omitempty"`
	Avgs        map[string]float64 `json:"avgs,omitempty"`
}

// RankedList accepts both wire shapes of the ranking: an ordered list of
// [category, percent] pairs, or a mapping category→percent.
type RankedList []scoring.Entry

func (r *RankedList) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" || trimmed == "" {
		*r = nil
		return nil
	}

	var pairs [][2]json.RawMessage
	if err := json.Unmarshal(data, &pairs); err == nil {
		out := make(RankedList, 0, len(pairs))
		for _, p := range pairs {
			var id string
			if json.Unmarshal(p[0], &id) != nil {
				continue
			}
			out = append(out, scoring.Entry{ID: id, Percent: coercePercent(p[1])})
		}
		*r = out
		return nil
	}

	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err == nil {
		out := make(RankedList, 0, len(m))
		for _, fid := range content.CategoryOrder {
			if raw, ok := m[fid]; ok {
				out = append(out, scoring.Entry{ID: fid, Percent: coercePercent(raw)})
			}
		}
		*r = out
		return nil
	}

	// Unusable ranking data degrades to empty; Normalize substitutes
	// the all-zero default.
	*r = nil
	return nil
}

func (r RankedList) MarshalJSON() ([]byte, error) {
	pairs := make([][2]any, len(r))
	for i, e := range r {
		pairs[i] = [2]any{e.ID, e.Percent}
	}
	return json.Marshal(pairs)
}

func coercePercent(raw json.RawMessage) int {
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return int(math.Round(f))
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return int(math.Round(f))
		}
	}
	return 0
}

// Normalize fills the defaults the composers rely on: trimmed fields,
// placeholder name and type, the ranking sorted descending, and the
// all-categories-at-zero fallback when no ranking came in.
func (p Payload) Normalize() Payload {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		p.Name = "Kunde"
	}
	p.Email = strings.TrimSpace(p.Email)
	p.ProfileType = strings.TrimSpace(p.ProfileType)
	if p.ProfileType == "" {
		p.ProfileType = "–"
	}

	ranked := make(RankedList, len(p.Ranked))
	copy(ranked, p.Ranked)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Percent > ranked[j].Percent
	})
	if len(ranked) == 0 {
		ranked = make(RankedList, 0, len(content.CategoryOrder))
		for _, fid := range content.CategoryOrder {
			ranked = append(ranked, scoring.Entry{ID: fid, Percent: 0})
		}
	}
	p.Ranked = ranked
	return p
}

// TopLevers returns the three highest-ranked entries.
func (p Payload) TopLevers() []scoring.Entry {
	n := 3
	if len(p.Ranked) < n {
		n = len(p.Ranked)
	}
	return p.Ranked[:n]
}

// FrictionZones returns the two lowest-ranked entries, lowest first.
func (p Payload) FrictionZones() []scoring.Entry {
	if len(p.Ranked) == 0 {
		return nil
	}
	n := 2
	if len(p.Ranked) < n {
		n = len(p.Ranked)
	}
	tail := p.Ranked[len(p.Ranked)-n:]
	out := make([]scoring.Entry, n)
	for i := range tail {
		out[n-1-i] = tail[i]
	}
	return out
}

// PercentFor reads a category's percentage out of the ranking.
func (p Payload) PercentFor(fid string) int {
	for _, e := range p.Ranked {
		if e.ID == fid {
			return e.Percent
		}
	}
	return 0
}
