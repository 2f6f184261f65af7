package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/NexaiGuy/nexai-website/internal/catalog"
	"github.com/NexaiGuy/nexai-website/internal/content"
	"github.com/NexaiGuy/nexai-website/internal/dispatch"
	"github.com/NexaiGuy/nexai-website/internal/notify"
	"github.com/NexaiGuy/nexai-website/internal/wizard"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	cat := catalog.Default()
	svc := dispatch.NewService(notify.NewStubEmailSender(nil), "hello@nexai.com", nil, nil)
	store := wizard.NewStore(cat, 0)

	return New(&Config{
		DispatchHandler:    dispatch.NewHandler(svc, nil),
		ContentHandler:     content.NewHandler(cat),
		WizardHandler:      wizard.NewHandler(store, svc, cat, nil, nil),
		CORSAllowedOrigins: []string{"*"},
	})
}

func TestHealthEndpoint(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "healthy") {
		t.Fatalf("expected healthy status, got %s", rec.Body.String())
	}
}

func TestSendEmailsRoute(t *testing.T) {
	r := newTestRouter(t)

	body := strings.NewReader(`{
		"formData": {"name": "Jane Doe", "email": "jane@acme.com", "company": "Acme Inc"},
		"timeSlot": "Wed 2:00 PM"
	}`)
	req := httptest.NewRequest(http.MethodPost, "/api/send-emails", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"success":true`) {
		t.Fatalf("expected success response, got %s", rec.Body.String())
	}
}

func TestContentRoutes(t *testing.T) {
	r := newTestRouter(t)

	for _, path := range []string{"/api/services", "/api/portfolio"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, rec.Code)
		}
	}
}

func TestWizardMounted(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/wizard/sessions", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestUnknownRoute(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
