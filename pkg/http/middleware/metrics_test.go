package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestMetricsPassesRequestThrough(t *testing.T) {
	wrapped := Metrics(nil, 0)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	}))

	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/gather", nil))

	if rec.Code != http.StatusTeapot {
		t.Fatalf("status lost through middleware: got %d", rec.Code)
	}
	if rec.Body.String() != "short and stout" {
		t.Fatalf("body lost through middleware: %q", rec.Body.String())
	}
}

func TestMetricsDefaultStatusIsOK(t *testing.T) {
	wrapped := Metrics(nil, 0)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("implicit 200"))
	}))

	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected implicit 200, got %d", rec.Code)
	}
}

func TestStatusClass(t *testing.T) {
	cases := []struct {
		code int
		want string
	}{
		{102, "1xx"},
		{200, "2xx"},
		{301, "3xx"},
		{404, "4xx"},
		{500, "5xx"},
		{503, "5xx"},
	}
	for _, c := range cases {
		if got := statusClass(c.code); got != c.want {
			t.Errorf("statusClass(%d) = %q, want %q", c.code, got, c.want)
		}
	}
}
