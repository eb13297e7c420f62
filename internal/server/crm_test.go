package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewCRMClientDisabledWithoutKey(t *testing.T) {
	if c := NewCRMClient("", 5); c != nil {
		t.Fatal("expected nil client for empty api key")
	}
	if c := NewCRMClient("   ", 5); c != nil {
		t.Fatal("expected nil client for blank api key")
	}
}

func TestUpsertContactRequestShape(t *testing.T) {
	var got struct {
		Email         string            `json:"email"`
		UpdateEnabled bool              `json:"updateEnabled"`
		ListIDs       []int             `json:"listIds"`
		Attributes    map[string]string `json:"attributes"`
	}
	var apiKey string

	fake := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/contacts" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		apiKey = r.Header.Get("api-key")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(201)
	}))
	defer fake.Close()

	c := NewCRMClient("secret", 7)
	c.baseURL = fake.URL
	c.UpsertContact("alex@example.com", map[string]string{
		"RESULT_URL":   "http://test.local/r/abc",
		"PROFILE_TYPE": "B",
		"REPORT_ID":    "abc",
	})

	if apiKey != "secret" {
		t.Errorf("api key header: %q", apiKey)
	}
	if got.Email != "alex@example.com" || !got.UpdateEnabled {
		t.Errorf("body: %+v", got)
	}
	if len(got.ListIDs) != 1 || got.ListIDs[0] != 7 {
		t.Errorf("list ids: %v", got.ListIDs)
	}
	if got.Attributes["PROFILE_TYPE"] != "B" || got.Attributes["REPORT_ID"] != "abc" {
		t.Errorf("attributes: %v", got.Attributes)
	}
}

func TestUpsertContactSwallowsServerError(t *testing.T) {
	fake := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", 500)
	}))
	defer fake.Close()

	c := NewCRMClient("secret", 0)
	c.baseURL = fake.URL
	// Must not panic or propagate anything.
	c.UpsertContact("alex@example.com", nil)
}

func TestUpsertContactNilClient(t *testing.T) {
	var c *CRMClient
	c.UpsertContact("alex@example.com", nil)
}
