package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/velesmarket/payment-service/internal/middleware"
)

func newLoggedRouter(logger *slog.Logger) chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger(logger))
	return r
}

func TestLogger_RequestLine(t *testing.T) {
	var buf bytes.Buffer
	r := newLoggedRouter(slog.New(slog.NewTextHandler(&buf, nil)))
	r.Get("/orders/{order_id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("nope"))
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders/123", nil))

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "status=404")
	assert.Contains(t, out, "route=/orders/{order_id}")
	assert.Contains(t, out, "path=/orders/123")
	assert.Contains(t, out, "bytes=4")
	assert.Contains(t, out, "request_id=")
}

func TestLogger_ServerErrorsLoggedAsErrors(t *testing.T) {
	var buf bytes.Buffer
	r := newLoggedRouter(slog.New(slog.NewTextHandler(&buf, nil)))
	r.Get("/boom", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "status=500")
}
