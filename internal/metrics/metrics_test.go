package metrics

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, p *Provider) string {
	t.Helper()

	rec := httptest.NewRecorder()
	p.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return string(body)
}

func TestNewProvider(t *testing.T) {
	p := NewProvider("test_relay")
	assert.Equal(t, "test_relay", p.Namespace())
	assert.Contains(t, scrape(t, p), "go_goroutines")
}

func TestBusinessMetrics(t *testing.T) {
	p := NewProvider("test_relay")
	bm, err := NewBusinessMetrics(p.Registerer(), p.Namespace())
	require.NoError(t, err)

	ctx := context.Background()
	bm.RecordOperation(ctx, "relay", "update", StatusSuccess)
	bm.RecordOperation(ctx, "relay", "update", StatusSuccess)
	bm.RecordOperation(ctx, "codec", "decrypt", StatusError)
	bm.RecordDuration(ctx, "relay", "update", 15*time.Millisecond, StatusSuccess)

	out := scrape(t, p)
	assert.Contains(t, out, `test_relay_operations_total{domain="relay",operation="update",status="success"} 2`)
	assert.Contains(t, out, `test_relay_operations_total{domain="codec",operation="decrypt",status="error"} 1`)
	assert.Contains(t, out, "test_relay_operation_duration_seconds")
}

func TestNewBusinessMetrics_DuplicateRegistration(t *testing.T) {
	p := NewProvider("test_relay")
	_, err := NewBusinessMetrics(p.Registerer(), p.Namespace())
	require.NoError(t, err)

	_, err = NewBusinessMetrics(p.Registerer(), p.Namespace())
	require.Error(t, err)
}

func TestNoopBusinessMetrics(t *testing.T) {
	bm := NewNoopBusinessMetrics()
	bm.RecordOperation(context.Background(), "relay", "get", StatusSuccess)
	bm.RecordDuration(context.Background(), "relay", "get", time.Second, StatusError)
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, StatusSuccess, StatusOf(nil))
	assert.Equal(t, StatusError, StatusOf(errors.New("x")))
}

func TestHTTPMetricsMiddleware(t *testing.T) {
	p := NewProvider("test_relay")
	mw, err := HTTPMetricsMiddleware(p.Registerer(), p.Namespace())
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Use(mw)
	r.Get("/get/{uuid}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	for _, path := range []string{"/get/a", "/get/b", "/health"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	}

	out := scrape(t, p)
	assert.Contains(t, out, `test_relay_http_requests_total{method="GET",path="/get/{uuid}",status_code="404"} 2`)
	assert.Contains(t, out, `test_relay_http_requests_total{method="GET",path="/health",status_code="200"} 1`)
	assert.NotContains(t, out, `path="/get/a"`)
}
