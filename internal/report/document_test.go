package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/dominikmueller-lingelbach/performance-profile-app/internal/content"
)

func samplePayload(t *testing.T) Payload {
	t.Helper()
	var p Payload
	raw := `{
		"report_id": "r-1",
		"name": "Alex Muster",
		"email": "alex@example.com",
		"profile_type": "B",
		"ranked": {"DST": 90, "STR": 80, "MAC": 76, "KON": 60, "MOR": 50,
			"IND": 40, "AKT": 35, "INF": 30, "COM": 25, "AUF": 24, "STA": 10}
	}`
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		t.Fatalf("unmarshal sample: %v", err)
	}
	return p
}

func TestComposeGroupOrder(t *testing.T) {
	groups := Compose(samplePayload(t).Normalize())

	wantNames := []string{"cover", "snapshot", "overview", "meaning", "categories", "closing"}
	if len(groups) != len(wantNames) {
		t.Fatalf("got %d groups, want %d", len(groups), len(wantNames))
	}
	for i, name := range wantNames {
		if groups[i].Name != name {
			t.Errorf("group %d: got %q, want %q", i, groups[i].Name, name)
		}
	}
	if got := len(groups[4].Pages); got != len(content.CategoryOrder) {
		t.Errorf("deep dive pages: got %d, want %d", got, len(content.CategoryOrder))
	}
	for i, name := range wantNames {
		if name == "categories" {
			continue
		}
		if got := len(groups[i].Pages); got != 1 {
			t.Errorf("group %q: got %d pages, want 1", wantNames[i], got)
		}
	}
}

func TestBuildProducesPDF(t *testing.T) {
	out, err := Build(samplePayload(t))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatalf("output does not start with %%PDF header")
	}
	if len(out) < 10_000 {
		t.Errorf("suspiciously small document: %d bytes", len(out))
	}
}

func TestBuildDeterministic(t *testing.T) {
	a, err := Build(samplePayload(t))
	if err != nil {
		t.Fatalf("first build: %v", err)
	}
	b, err := Build(samplePayload(t))
	if err != nil {
		t.Fatalf("second build: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Fatal("two builds of the same payload differ")
	}
}

func TestBuildEmptyPayload(t *testing.T) {
	out, err := Build(Payload{})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatal("empty payload did not yield a PDF")
	}
}

func TestMeaningCardUsesAddendumThreshold(t *testing.T) {
	// At 76 the top lever carries the high addendum, at 74 the mid one.
	high := content.Resolve("DST", 76, content.RoleTopLever)
	mid := content.Resolve("DST", 74, content.RoleTopLever)
	if high.Addendum == "" || mid.Addendum == "" {
		t.Fatal("expected addenda on both sides of the threshold")
	}
	if high.Addendum == mid.Addendum {
		t.Error("high and mid addenda should differ")
	}
}

func TestCategoryPageMarksActiveBand(t *testing.T) {
	blocks := categoryPage("DST", 80)

	var marked int
	for _, b := range blocks {
		card, ok := b.(*Card)
		if !ok {
			continue
		}
		if strings.HasPrefix(card.Title, "DEIN BEREICH · ") {
			marked++
			if !strings.Contains(card.Title, "hoch") {
				t.Errorf("marked band title %q should be the high band", card.Title)
			}
		}
	}
	if marked != 1 {
		t.Errorf("got %d marked band cards, want exactly 1", marked)
	}
}
