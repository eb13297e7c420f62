package report

import (
	"encoding/json"
	"testing"

	"github.com/dominikmueller-lingelbach/performance-profile-app/internal/content"
)

func TestRankedListAcceptsPairs(t *testing.T) {
	var p Payload
	raw := `{"ranked": [["DST", 80], ["STR", 67.4], ["MAC", "55"]]}`
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(p.Ranked) != 3 {
		t.Fatalf("got %d entries, want 3", len(p.Ranked))
	}
	want := []int{80, 67, 55}
	for i, w := range want {
		if p.Ranked[i].Percent != w {
			t.Errorf("entry %d: got %d, want %d", i, p.Ranked[i].Percent, w)
		}
	}
}

func TestRankedListAcceptsMap(t *testing.T) {
	var p Payload
	raw := `{"ranked": {"STR": 70, "DST": 80}}`
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(p.Ranked) != 2 {
		t.Fatalf("got %d entries, want 2", len(p.Ranked))
	}
	// Map input is read in catalog order before Normalize sorts it.
	if p.Ranked[0].ID != "DST" || p.Ranked[1].ID != "STR" {
		t.Errorf("got order %s,%s", p.Ranked[0].ID, p.Ranked[1].ID)
	}
}

func TestRankedListJunkDegradesToNil(t *testing.T) {
	var p Payload
	if err := json.Unmarshal([]byte(`{"ranked": "garbage"}`), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if p.Ranked != nil {
		t.Fatalf("got %v, want nil", p.Ranked)
	}
}

func TestNormalizeDefaults(t *testing.T) {
	p := Payload{Name: "  ", ProfileType: ""}.Normalize()
	if p.Name != "Kunde" {
		t.Errorf("name: got %q, want Kunde", p.Name)
	}
	if p.ProfileType != "–" {
		t.Errorf("profile type: got %q", p.ProfileType)
	}
	if len(p.Ranked) != len(content.CategoryOrder) {
		t.Fatalf("got %d ranked entries, want %d", len(p.Ranked), len(content.CategoryOrder))
	}
	for _, e := range p.Ranked {
		if e.Percent != 0 {
			t.Errorf("%s: got %d, want 0", e.ID, e.Percent)
		}
	}
}

func TestNormalizeSortsDescending(t *testing.T) {
	var p Payload
	raw := `{"ranked": [["STR", 40], ["DST", 90], ["MAC", 70]]}`
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	p = p.Normalize()
	if p.Ranked[0].ID != "DST" || p.Ranked[1].ID != "MAC" || p.Ranked[2].ID != "STR" {
		t.Errorf("got order %s,%s,%s", p.Ranked[0].ID, p.Ranked[1].ID, p.Ranked[2].ID)
	}
}

func TestTopLeversAndFrictionZones(t *testing.T) {
	var p Payload
	raw := `{"ranked": {"DST": 90, "STR": 80, "MAC": 70, "KON": 60, "MOR": 50,
		"IND": 40, "AKT": 35, "INF": 30, "COM": 25, "AUF": 20, "STA": 10}}`
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	p = p.Normalize()

	top := p.TopLevers()
	if len(top) != 3 || top[0].ID != "DST" || top[1].ID != "STR" || top[2].ID != "MAC" {
		t.Errorf("top levers: got %v", top)
	}
	low := p.FrictionZones()
	if len(low) != 2 || low[0].ID != "STA" || low[1].ID != "AUF" {
		t.Errorf("friction zones: got %v (want lowest first)", low)
	}
}

func TestPayloadRoundTrip(t *testing.T) {
	p := Payload{
		ReportID:    "abc",
		Name:        "Alex",
		ProfileType: "B",
	}
	var q Payload
	raw, err := json.Marshal(p.Normalize())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := json.Unmarshal(raw, &q); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if q.Name != "Alex" || q.ProfileType != "B" || len(q.Ranked) != len(content.CategoryOrder) {
		t.Errorf("round trip mismatch: %+v", q)
	}
}

func TestFormatLinesBullets(t *testing.T) {
	got := FormatLines([]string{"Intro.", "", "• erster Punkt", "– zweiter Punkt"}, "+")
	want := "Intro.\n\n    +  erster Punkt\n    +  zweiter Punkt"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
