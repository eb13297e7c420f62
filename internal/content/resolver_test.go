package content

import "testing"

func TestClassifyPartition(t *testing.T) {
	cases := []struct {
		pct  int
		want Band
	}{
		{0, BandLow},
		{24, BandLow},
		{25, BandMid},
		{50, BandMid},
		{74, BandMid},
		{75, BandHigh},
		{100, BandHigh},
	}
	for _, tc := range cases {
		if got := Classify(tc.pct); got != tc.want {
			t.Errorf("Classify(%d) = %v, want %v", tc.pct, got, tc.want)
		}
	}
}

func TestClassifyIsTotal(t *testing.T) {
	for p := 0; p <= 100; p++ {
		b := Classify(p)
		if b != BandLow && b != BandMid && b != BandHigh {
			t.Fatalf("Classify(%d) yielded no band", p)
		}
	}
}

func TestResolveTopLeverAddendum(t *testing.T) {
	high := Resolve("DST", 80, RoleTopLever)
	if high.Body != meaningCards["DST"].Top {
		t.Errorf("top lever body = %q, want top narrative", high.Body)
	}
	if high.Addendum != addendumHigh["DST"] {
		t.Errorf("pct 80 should select the high addendum")
	}

	mid := Resolve("DST", 74, RoleTopLever)
	if mid.Addendum != addendumMid["DST"] {
		t.Errorf("pct 74 should select the mid addendum")
	}

	// The threshold itself counts as high.
	edge := Resolve("DST", 75, RoleTopLever)
	if edge.Addendum != addendumHigh["DST"] {
		t.Errorf("pct 75 should select the high addendum")
	}
}

func TestResolveFrictionZoneVariants(t *testing.T) {
	severe := Resolve("STR", 24, RoleFrictionZone)
	if severe.Body != meaningCards["STR"].LowA {
		t.Errorf("pct 24 friction zone = %q, want lowA variant", severe.Body)
	}

	// Exactly 25 is the mid band, so the milder lowB variant applies.
	mild := Resolve("STR", 25, RoleFrictionZone)
	if mild.Body != meaningCards["STR"].LowB {
		t.Errorf("pct 25 friction zone = %q, want lowB variant", mild.Body)
	}
}

func TestResolveFrictionZoneHighBandReturnsEmpty(t *testing.T) {
	set := Resolve("STR", 80, RoleFrictionZone)
	if set != (TextSet{}) {
		t.Errorf("friction zone at 80%% should resolve to an empty set, got %+v", set)
	}
}

func TestResolveUnknownCategory(t *testing.T) {
	for _, role := range []Role{RoleDeepDive, RoleTopLever, RoleFrictionZone} {
		if set := Resolve("XXX", 50, role); set != (TextSet{}) {
			t.Errorf("unknown category should resolve empty for role %v, got %+v", role, set)
		}
	}
}

func TestResolveSteeringFollowsBand(t *testing.T) {
	card := meaningCards["AKT"]
	cases := []struct {
		pct  int
		want string
	}{
		{10, card.SteerLow},
		{50, card.SteerMid},
		{90, card.SteerHigh},
	}
	for _, tc := range cases {
		if got := Resolve("AKT", tc.pct, RoleDeepDive).Steering; got != tc.want {
			t.Errorf("steering at %d%% = %q, want %q", tc.pct, got, tc.want)
		}
	}
}

func TestTablesCoverAllCategories(t *testing.T) {
	if len(CategoryOrder) != 11 {
		t.Fatalf("expected 11 categories, got %d", len(CategoryOrder))
	}
	for _, id := range CategoryOrder {
		c, ok := CategoryByID(id)
		if !ok {
			t.Fatalf("category %s missing from table", id)
		}
		if len(c.Practice) != 3 {
			t.Errorf("category %s has %d practice rules, want 3", id, len(c.Practice))
		}
		if c.Mnemonic == "" || len(c.Intro) == 0 || len(c.High) == 0 || len(c.Mid) == 0 || len(c.Low) == 0 {
			t.Errorf("category %s has incomplete narrative content", id)
		}
		if _, ok := meaningCards[id]; !ok {
			t.Errorf("category %s missing meaning card", id)
		}
		if addendumHigh[id] == "" || addendumMid[id] == "" {
			t.Errorf("category %s missing addendum texts", id)
		}
	}
	for _, tag := range []string{"A", "B", "C", "D", "E"} {
		pt := ProfileTypeByTag(tag)
		if pt.Title == "" || pt.Core == "" {
			t.Errorf("profile type %s incomplete", tag)
		}
	}
}
