package server

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

const brevoBaseURL = "https://api.brevo.com/v3"

// CRMClient upserts quiz contacts into Brevo. All failures are logged
// and swallowed; the quiz flow never depends on the CRM being up.
type CRMClient struct {
	apiKey  string
	listID  int
	baseURL string
	httpc   *http.Client
}

// NewCRMClient returns nil when no API key is configured, which
// disables the sync entirely.
func NewCRMClient(apiKey string, listID int) *CRMClient {
	if strings.TrimSpace(apiKey) == "" {
		return nil
	}
	return &CRMClient{
		apiKey:  apiKey,
		listID:  listID,
		baseURL: brevoBaseURL,
		httpc:   &http.Client{Timeout: 10 * time.Second},
	}
}

// UpsertContact creates or updates the contact and attaches the result
// attributes. Safe to call on a nil client.
func (c *CRMClient) UpsertContact(email string, attributes map[string]string) {
	if c == nil {
		return
	}

	body := map[string]any{
		"email":         email,
		"updateEnabled": true,
		"attributes":    attributes,
	}
	if c.listID > 0 {
		body["listIds"] = []int{c.listID}
	}
	raw, err := json.Marshal(body)
	if err != nil {
		log.Printf("crm: marshal contact: %v", err)
		return
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+"/contacts", bytes.NewReader(raw))
	if err != nil {
		log.Printf("crm: build request: %v", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", c.apiKey)

	resp, err := c.httpc.Do(req)
	if err != nil {
		log.Printf("crm: upsert contact: %v", err)
		return
	}
	defer resp.Body.Close()

	// 201 created, 204 updated.
	if resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		log.Printf("crm: upsert contact: status %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}
}
