package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRouter(t *testing.T) {
	r := NewRouter()

	tests := []struct {
		path     string
		wantCode int
		wantBody string
	}{
		{path: "/health", wantCode: http.StatusOK, wantBody: "ok"},
		{path: "/ready", wantCode: http.StatusOK, wantBody: "ready"},
		{path: "/nope", wantCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rec := httptest.NewRecorder()

			r.ServeHTTP(rec, req)

			if rec.Code != tt.wantCode {
				t.Errorf("GET %s status = %d, want %d", tt.path, rec.Code, tt.wantCode)
			}
			if tt.wantBody != "" && rec.Body.String() != tt.wantBody {
				t.Errorf("GET %s body = %q, want %q", tt.path, rec.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestRouterMetricsEndpoint(t *testing.T) {
	r := NewRouter()

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("GET /metrics status = %d", rec.Code)
	}
	if rec.Body.Len() == 0 {
		t.Error("GET /metrics returned an empty body")
	}
}
