package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/dominikmueller-lingelbach/performance-profile-app/internal/report"
	"github.com/dominikmueller-lingelbach/performance-profile-app/internal/scoring"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "reports.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPutGetRoundTrip(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()

	p := report.Payload{
		ReportID:    "r-42",
		Name:        "Alex",
		Email:       "alex@example.com",
		ProfileType: "C",
		Ranked: report.RankedList{
			{ID: "DST", Percent: 80},
			{ID: "STR", Percent: 40},
		},
	}
	if err := s.Put(ctx, p); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := s.Get(ctx, "r-42")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Alex" || got.ProfileType != "C" {
		t.Errorf("got %+v", got)
	}
	if len(got.Ranked) != 2 || got.Ranked[0] != (scoring.Entry{ID: "DST", Percent: 80}) {
		t.Errorf("ranked: got %v", got.Ranked)
	}
}

func TestGetMissing(t *testing.T) {
	s := openTemp(t)
	if _, err := s.Get(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestPutReplacesExisting(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()

	if err := s.Put(ctx, report.Payload{ReportID: "r-1", Name: "First"}); err != nil {
		t.Fatalf("first put: %v", err)
	}
	if err := s.Put(ctx, report.Payload{ReportID: "r-1", Name: "Second"}); err != nil {
		t.Fatalf("second put: %v", err)
	}

	got, err := s.Get(ctx, "r-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Second" {
		t.Errorf("got %q, want Second", got.Name)
	}
}

func TestPutEmptyID(t *testing.T) {
	s := openTemp(t)
	if err := s.Put(context.Background(), report.Payload{}); err == nil {
		t.Fatal("expected error for empty report id")
	}
}
