package content

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/NexaiGuy/nexai-website/internal/catalog"
)

func TestListServices(t *testing.T) {
	handler := NewHandler(catalog.Default())

	req := httptest.NewRequest(http.MethodGet, "/api/services", nil)
	w := httptest.NewRecorder()

	handler.ListServices(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body struct {
		Services  []catalog.Service `json:"services"`
		Budgets   []catalog.Option  `json:"budgets"`
		Timelines []catalog.Option  `json:"timelines"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Services) != 5 {
		t.Errorf("expected 5 services, got %d", len(body.Services))
	}
	if len(body.Budgets) != 4 || len(body.Timelines) != 4 {
		t.Errorf("expected 4 budgets and 4 timelines, got %d/%d", len(body.Budgets), len(body.Timelines))
	}
}

func TestListPortfolio_Filtered(t *testing.T) {
	handler := NewHandler(catalog.Default())

	req := httptest.NewRequest(http.MethodGet, "/api/portfolio?category=video", nil)
	w := httptest.NewRecorder()

	handler.ListPortfolio(w, req)

	var body struct {
		Items []catalog.PortfolioItem `json:"items"`
		Count int                     `json:"count"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Count != 1 {
		t.Fatalf("expected 1 video item, got %d", body.Count)
	}
	if body.Items[0].Category != "video" {
		t.Errorf("wrong category: %s", body.Items[0].Category)
	}
}
