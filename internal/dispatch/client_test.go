package dispatch

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_Dispatch_Success(t *testing.T) {
	var received EmailDispatchRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Fatalf("decode: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(Result{Success: true, Message: "Emails sent successfully"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil, nil)
	result, err := client.Dispatch(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Success {
		t.Error("expected success result")
	}
	if received.TimeSlot != "Wed 2:00 PM" {
		t.Errorf("request not forwarded, got timeSlot %q", received.TimeSlot)
	}
	if received.FormData.ProjectType != "AI Application Development" {
		t.Errorf("expected resolved label forwarded, got %q", received.FormData.ProjectType)
	}
}

func TestClient_Dispatch_FailureStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(Result{
			Success: false,
			Error:   "Failed to send emails",
			Details: "provider unavailable",
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil, nil)
	if _, err := client.Dispatch(context.Background(), validRequest()); err == nil {
		t.Fatal("expected error for failing remote dispatcher")
	}
}

func TestClient_Dispatch_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // closed server: connection refused

	client := NewClient(srv.URL, nil, nil)
	if _, err := client.Dispatch(context.Background(), validRequest()); err == nil {
		t.Fatal("expected network error")
	}
}
