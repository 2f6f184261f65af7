// Package content serves the marketing site's read-only data: the service
// catalog and the portfolio showcase.
package content

import (
	"encoding/json"
	"net/http"

	"github.com/NexaiGuy/nexai-website/internal/catalog"
)

// Handler serves catalog-backed content endpoints.
type Handler struct {
	catalog *catalog.Catalog
}

// NewHandler creates a content handler.
func NewHandler(cat *catalog.Catalog) *Handler {
	return &Handler{catalog: cat}
}

// ListServices handles GET /api/services.
func (h *Handler) ListServices(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"services":  h.catalog.Services(),
		"budgets":   h.catalog.BudgetRanges(),
		"timelines": h.catalog.TimelineOptions(),
	})
}

// ListPortfolio handles GET /api/portfolio?category=.
func (h *Handler) ListPortfolio(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	items := h.catalog.Portfolio(category)
	writeJSON(w, map[string]any{
		"items": items,
		"count": len(items),
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
