package scoring

import (
	"testing"

	"github.com/dominikmueller-lingelbach/performance-profile-app/internal/content"
)

func flatPercents(v int) map[string]int {
	p := make(map[string]int, len(content.CategoryOrder))
	for _, fid := range content.CategoryOrder {
		p[fid] = v
	}
	return p
}

func TestDecideProfileTypeRules(t *testing.T) {
	cases := []struct {
		name string
		set  map[string]int
		want string
	}{
		{"stability mode", map[string]int{"STR": 80, "MOR": 70, "DST": 45}, "A"},
		{"pressure mode", map[string]int{"DST": 90, "AKT": 70, "STR": 20}, "B"},
		{"shaping mode", map[string]int{"IND": 75, "INF": 70, "STR": 50}, "C"},
		{"comparison mode", map[string]int{"COM": 70, "AUF": 68, "STA": 90}, "D"},
		{"control mode", map[string]int{"MAC": 80, "STR": 70, "INF": 67}, "E"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := flatPercents(50)
			for fid, v := range tc.set {
				p[fid] = v
			}
			if got := DecideProfileType(p); got != tc.want {
				t.Errorf("got %s, want %s", got, tc.want)
			}
		})
	}
}

func TestDecideProfileTypeRuleOrder(t *testing.T) {
	// Satisfies both the A and E conditions; A is decided first.
	p := flatPercents(50)
	p["STR"] = 80
	p["MOR"] = 70
	p["DST"] = 45
	p["MAC"] = 80
	p["INF"] = 70
	if got := DecideProfileType(p); got != "A" {
		t.Fatalf("got %s, want A (first matching rule)", got)
	}
}

func TestDecideProfileTypeFallbackGroups(t *testing.T) {
	cases := []struct {
		top  string
		want string
	}{
		{"STR", "A"}, {"MOR", "A"},
		{"DST", "B"}, {"AKT", "B"},
		{"IND", "C"}, {"INF", "C"},
		{"COM", "D"}, {"AUF", "D"}, {"STA", "D"},
		{"MAC", "E"}, {"KON", "E"},
	}
	for _, tc := range cases {
		p := flatPercents(40)
		p[tc.top] = 60
		if got := DecideProfileType(p); got != tc.want {
			t.Errorf("top %s: got %s, want %s", tc.top, got, tc.want)
		}
	}
}

func TestDecideProfileTypeAllEqual(t *testing.T) {
	// With everything tied, the first category in table order (DST) wins
	// the fallback scan, so its group decides.
	if got := DecideProfileType(flatPercents(50)); got != "B" {
		t.Fatalf("got %s, want B", got)
	}
}

func TestDecideProfileTypeDeterministic(t *testing.T) {
	p := flatPercents(50)
	p["STR"] = 70
	first := DecideProfileType(p)
	for i := 0; i < 20; i++ {
		if got := DecideProfileType(p); got != first {
			t.Fatalf("run %d: got %s, want %s", i, got, first)
		}
	}
}
