package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSuccess(t *testing.T) {
	w := httptest.NewRecorder()
	Success(w, http.StatusCreated, "created", map[string]string{"id": "a1"})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %q", ct)
	}

	var body Response
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if !body.Success || body.Message != "created" {
		t.Errorf("unexpected body: %+v", body)
	}
	data, ok := body.Data.(map[string]interface{})
	if !ok || data["id"] != "a1" {
		t.Errorf("expected data.id a1, got %v", body.Data)
	}
}

func TestErrorHelpersUseDefaultMessages(t *testing.T) {
	tests := []struct {
		name    string
		write   func(http.ResponseWriter)
		status  int
		message string
	}{
		{"unauthorized", func(w http.ResponseWriter) { Unauthorized(w, "") }, http.StatusUnauthorized, "Unauthorized"},
		{"forbidden", func(w http.ResponseWriter) { Forbidden(w, "") }, http.StatusForbidden, "Forbidden"},
		{"not found", func(w http.ResponseWriter) { NotFound(w, "") }, http.StatusNotFound, "Resource not found"},
		{"conflict", func(w http.ResponseWriter) { Conflict(w, "") }, http.StatusConflict, "Conflict"},
		{"bad request", func(w http.ResponseWriter) { BadRequest(w, "") }, http.StatusBadRequest, "Bad request"},
		{"internal", func(w http.ResponseWriter) { InternalServerError(w, "") }, http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			tt.write(w)

			if w.Code != tt.status {
				t.Errorf("expected %d, got %d", tt.status, w.Code)
			}
			var body Response
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}
			if body.Success {
				t.Error("expected success=false")
			}
			if body.Message != tt.message {
				t.Errorf("expected message %q, got %q", tt.message, body.Message)
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	w := httptest.NewRecorder()
	ValidationError(w, map[string]string{"date": "date is required"})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	var body Response
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	fields, ok := body.Error.(map[string]interface{})
	if !ok || fields["date"] != "date is required" {
		t.Errorf("expected field error for date, got %v", body.Error)
	}
}
