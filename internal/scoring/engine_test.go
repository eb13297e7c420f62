package scoring

import (
	"errors"
	"testing"

	"github.com/dominikmueller-lingelbach/performance-profile-app/internal/content"
)

func mustCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := NewCatalog()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return c
}

// answersFor fills every question of a category with the same value.
func answersFor(c *Catalog, values map[string]float64) map[string]any {
	answers := make(map[string]any)
	for _, q := range c.Questions() {
		if v, ok := values[q.FunctionID]; ok {
			answers[q.ID] = v
		}
	}
	return answers
}

func TestScorePercentageRounding(t *testing.T) {
	c := mustCatalog(t)
	cases := []struct {
		avg  float64
		want int
	}{
		{8.0, 80},
		{6.7, 67},
		{7.5, 75},
		{7.45, 75}, // 74.5 rounds away from zero
		{0, 0},
		{10, 100},
	}
	for _, tc := range cases {
		res := c.Score(answersFor(c, map[string]float64{"DST": tc.avg}))
		if got := res.Percents["DST"]; got != tc.want {
			t.Errorf("avg %.2f: percent = %d, want %d", tc.avg, got, tc.want)
		}
	}
}

func TestScoreCoercesJunkToZero(t *testing.T) {
	c := mustCatalog(t)
	res := c.Score(map[string]any{
		"q01": "7",
		"q02": "not a number",
		"q03": nil,
	})
	// sum 7 over 3 answered questions -> avg 2.33 -> 23%
	if got := res.Percents["DST"]; got != 23 {
		t.Errorf("DST percent = %d, want 23", got)
	}
	if got := res.Sums["DST"]; got != 7 {
		t.Errorf("DST sum = %v, want 7", got)
	}
}

func TestScoreUnansweredCategoryIsZeroNotError(t *testing.T) {
	c := mustCatalog(t)
	res := c.Score(map[string]any{"q01": 8})
	if got := res.Percents["STR"]; got != 0 {
		t.Errorf("unanswered category percent = %d, want 0", got)
	}
	if got := res.Avgs["STR"]; got != 0 {
		t.Errorf("unanswered category avg = %v, want 0", got)
	}
}

func TestScoreSkipsUnknownQuestions(t *testing.T) {
	c := mustCatalog(t)
	res := c.Score(map[string]any{"q01": 8, "q999": 10})
	if got := res.Percents["DST"]; got != 80 {
		t.Errorf("DST percent = %d, want 80 (unknown question must not count)", got)
	}
}

func TestRankStableOnTies(t *testing.T) {
	percents := make(map[string]int, len(content.CategoryOrder))
	for _, fid := range content.CategoryOrder {
		percents[fid] = 50
	}
	ranked := Rank(percents)
	for i, fid := range content.CategoryOrder {
		if ranked[i].ID != fid {
			t.Fatalf("tied ranking position %d = %s, want table order %s", i, ranked[i].ID, fid)
		}
	}
}

func TestRankDescending(t *testing.T) {
	percents := map[string]int{}
	for i, fid := range content.CategoryOrder {
		percents[fid] = i * 5
	}
	ranked := Rank(percents)
	if ranked[0].ID != "STA" || ranked[0].Percent != 50 {
		t.Errorf("top entry = %+v, want STA at 50", ranked[0])
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i].Percent > ranked[i-1].Percent {
			t.Fatalf("ranking not descending at position %d", i)
		}
	}
}

func TestCatalogValidation(t *testing.T) {
	if _, err := newCatalog([]byte(`[{"id":"q1","text":"x"}]`)); !errors.Is(err, ErrMissingMapping) {
		t.Errorf("missing function_id: err = %v, want ErrMissingMapping", err)
	}
	if _, err := newCatalog([]byte(`[{"id":"q1","text":"x","function_id":"ZZZ"}]`)); !errors.Is(err, ErrMissingMapping) {
		t.Errorf("unknown category: err = %v, want ErrMissingMapping", err)
	}
	if _, err := newCatalog([]byte(`{`)); err == nil {
		t.Error("malformed JSON should fail")
	}
}

func TestEmbeddedCatalogCoversAllCategories(t *testing.T) {
	c := mustCatalog(t)
	seen := map[string]int{}
	for _, q := range c.Questions() {
		seen[q.FunctionID]++
	}
	for _, fid := range content.CategoryOrder {
		if seen[fid] == 0 {
			t.Errorf("category %s has no questions", fid)
		}
	}
}
