package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

func TestRequestIDGeneratesUUID(t *testing.T) {
	handler := RequestID()(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/songs", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	id := rec.Header().Get(chimiddleware.RequestIDHeader)
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("expected a UUID request ID, got %q: %v", id, err)
	}
}

func TestRequestIDReusesValidHeader(t *testing.T) {
	handler := RequestID()(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/songs", nil)
	req.Header.Set(chimiddleware.RequestIDHeader, "client-supplied-id")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get(chimiddleware.RequestIDHeader); got != "client-supplied-id" {
		t.Fatalf("expected client ID to be reused, got %q", got)
	}
}

func TestRequestIDRejectsControlCharacters(t *testing.T) {
	handler := RequestID()(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/songs", nil)
	req.Header.Set(chimiddleware.RequestIDHeader, "bad\x01id")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	got := rec.Header().Get(chimiddleware.RequestIDHeader)
	if got == "bad\x01id" {
		t.Fatal("expected invalid ID to be replaced")
	}
	if _, err := uuid.Parse(got); err != nil {
		t.Fatalf("expected a generated UUID, got %q", got)
	}
}

func TestRequestIDRejectsOversizedHeader(t *testing.T) {
	handler := RequestID()(okHandler())

	long := strings.Repeat("a", maxRequestIDLength+1)
	req := httptest.NewRequest(http.MethodGet, "/songs", nil)
	req.Header.Set(chimiddleware.RequestIDHeader, long)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Header().Get(chimiddleware.RequestIDHeader) == long {
		t.Fatal("expected oversized ID to be replaced")
	}
}

func TestIsValidRequestID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want bool
	}{
		{"empty", "", false},
		{"printable ascii", "req-123", true},
		{"uuid", "4c2f7a6e-1b9d-4d55-9a3e-5f0c2b7d8e11", true},
		{"control character", "a\nb", false},
		{"non-ascii", "idé", false},
		{"max length", strings.Repeat("x", maxRequestIDLength), true},
		{"too long", strings.Repeat("x", maxRequestIDLength+1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isValidRequestID(tt.id); got != tt.want {
				t.Fatalf("isValidRequestID(%q) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}
