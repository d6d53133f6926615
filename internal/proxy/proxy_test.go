package proxy

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForward_RelaysVerbatim(t *testing.T) {
	t.Parallel()

	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/orders/42", r.URL.Path)
		assert.Equal(t, "full", r.URL.Query().Get("view"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, `{"status":"done"}`, string(body))

		w.Header().Set("X-Backend", "order")
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte(`{"id":42}`))
	}))
	t.Cleanup(backend.Close)

	f := NewForwarder()
	req := httptest.NewRequest(http.MethodPut, "/orders/orders/42?view=full",
		strings.NewReader(`{"status":"done"}`))
	rec := httptest.NewRecorder()

	f.Forward(rec, req, "order", backend.URL, "/orders/42")

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "order", rec.Header().Get("X-Backend"))
	assert.Equal(t, `{"id":42}`, rec.Body.String())
}

func TestForward_StripsHopHeaders(t *testing.T) {
	t.Parallel()

	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Origin"))
		assert.Empty(t, r.Header.Get("Referer"))
		// Kept headers still arrive.
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, "session=abc", r.Header.Get("Cookie"))
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(backend.Close)

	f := NewForwarder()
	req := httptest.NewRequest(http.MethodGet, "/users/users", nil)
	req.Header.Set("Origin", "http://localhost:4200")
	req.Header.Set("Referer", "http://localhost:4200/app")
	req.Header.Set("Connection", "keep-alive")
	req.Header.Set("Authorization", "Bearer tok")
	req.Header.Set("Cookie", "session=abc")
	rec := httptest.NewRecorder()

	f.Forward(rec, req, "user", backend.URL, "/users")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestForward_StripIsIdempotent(t *testing.T) {
	t.Parallel()

	// A request that already lacks the stripped headers forwards the
	// same way as one that had them removed once.
	hdr := http.Header{}
	hdr.Set("Accept", "application/json")

	once := hdr.Clone()
	for _, h := range strippedHeaders {
		once.Del(h)
	}
	twice := once.Clone()
	for _, h := range strippedHeaders {
		twice.Del(h)
	}

	assert.Equal(t, once, twice)
}

func TestForward_RelaysSetCookieMultiplicity(t *testing.T) {
	t.Parallel()

	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Set-Cookie", "session=def; Path=/")
		w.Header().Add("Set-Cookie", "csrf=xyz; Path=/")
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(backend.Close)

	f := NewForwarder()
	req := httptest.NewRequest(http.MethodPost, "/auth/auth/login", nil)
	rec := httptest.NewRecorder()

	f.Forward(rec, req, "auth", backend.URL, "/auth/login")

	assert.Len(t, rec.Header().Values("Set-Cookie"), 2)
}

func TestForward_RelaysBackendErrorStatus(t *testing.T) {
	t.Parallel()

	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"detail":"invalid"}`))
	}))
	t.Cleanup(backend.Close)

	f := NewForwarder()
	req := httptest.NewRequest(http.MethodPost, "/orders/orders", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	f.Forward(rec, req, "order", backend.URL, "/orders")

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{"detail":"invalid"}`, rec.Body.String())
}

func TestForward_UnreachableBackendYields502(t *testing.T) {
	t.Parallel()

	f := NewForwarder()
	req := httptest.NewRequest(http.MethodGet, "/orders/orders/42", nil)
	rec := httptest.NewRecorder()

	f.Forward(rec, req, "order", "http://127.0.0.1:1", "/orders/42")

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "bad gateway")
}

func TestForward_SingleAttempt(t *testing.T) {
	t.Parallel()

	attempts := 0
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(backend.Close)

	f := NewForwarder()
	req := httptest.NewRequest(http.MethodGet, "/payments/payments", nil)
	rec := httptest.NewRecorder()

	f.Forward(rec, req, "payment", backend.URL, "/payments")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, 1, attempts)
}

func TestForward_DoesNotFollowRedirects(t *testing.T) {
	t.Parallel()

	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/elsewhere", http.StatusFound)
	}))
	t.Cleanup(backend.Close)

	f := NewForwarder()
	req := httptest.NewRequest(http.MethodGet, "/offers/offers", nil)
	rec := httptest.NewRecorder()

	f.Forward(rec, req, "offer", backend.URL, "/offers")

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/elsewhere", rec.Header().Get("Location"))
}

func TestForward_RecordsMetrics(t *testing.T) {
	t.Parallel()

	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(backend.Close)

	rec := &captureMetrics{}
	f := NewForwarder(WithMetrics(rec))

	req := httptest.NewRequest(http.MethodGet, "/reviews/reviews", nil)
	f.Forward(httptest.NewRecorder(), req, "review", backend.URL, "/reviews")
	assert.Equal(t, 1, rec.forwards)
	assert.Equal(t, 0, rec.errors)

	req = httptest.NewRequest(http.MethodGet, "/reviews/reviews", nil)
	f.Forward(httptest.NewRecorder(), req, "review", "http://127.0.0.1:1", "/reviews")
	assert.Equal(t, 1, rec.errors)
}

type captureMetrics struct {
	forwards int
	errors   int
}

func (c *captureMetrics) RecordForward(_, _ string, _ int, _ time.Duration) { c.forwards++ }
func (c *captureMetrics) RecordError(_ string)                              { c.errors++ }

func TestGetMetrics_Singleton(t *testing.T) {
	t.Parallel()

	assert.Same(t, GetMetrics(), GetMetrics())
}
