// Package proxy provides transparent HTTP forwarding to backend services.
package proxy

import (
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/vyrodovalexey/marketgw/internal/observability"
)

// strippedHeaders are inbound headers that must not reach a backend:
// they describe the client-to-gateway hop, not the forwarded request.
// Everything else, cookies and authorization included, passes through
// untouched.
var strippedHeaders = []string{
	"Host",
	"Content-Length",
	"Connection",
	"Origin",
	"Referer",
}

// Forwarder relays requests to a backend service verbatim: same method,
// same remaining path and query, same body, and the backend response is
// written back byte for byte. It performs exactly one attempt per
// request and applies no timeout of its own; long-running transfers are
// bounded only by the client and the backend.
type Forwarder struct {
	client  *http.Client
	logger  observability.Logger
	metrics MetricsRecorder
}

// Option is a functional option for configuring the forwarder.
type Option func(*Forwarder)

// WithTransport sets the HTTP transport used for backend connections.
func WithTransport(transport http.RoundTripper) Option {
	return func(f *Forwarder) {
		f.client.Transport = transport
	}
}

// WithLogger sets the logger for the forwarder.
func WithLogger(logger observability.Logger) Option {
	return func(f *Forwarder) {
		f.logger = logger
	}
}

// WithMetrics sets the metrics recorder for the forwarder.
func WithMetrics(metrics MetricsRecorder) Option {
	return func(f *Forwarder) {
		f.metrics = metrics
	}
}

// NewForwarder creates a forwarder.
func NewForwarder(opts ...Option) *Forwarder {
	f := &Forwarder{
		client: &http.Client{
			// Never follow redirects: the client gets the 3xx.
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		logger:  observability.NopLogger(),
		metrics: noopMetrics{},
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Forward relays r to baseURL+path and writes the backend response to w.
// path is the remainder after the service prefix, starting with "/".
// A transport failure yields 502; backend error statuses are relayed
// as-is, they are not errors here.
func (f *Forwarder) Forward(w http.ResponseWriter, r *http.Request, service, baseURL, path string) {
	target := strings.TrimSuffix(baseURL, "/") + path
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}

	req, err := http.NewRequestWithContext(r.Context(), r.Method, target, r.Body)
	if err != nil {
		f.writeBadGateway(w, r, service, err)
		return
	}

	req.Header = r.Header.Clone()
	for _, h := range strippedHeaders {
		req.Header.Del(h)
	}

	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		f.metrics.RecordError(service)
		f.writeBadGateway(w, r, service, err)
		return
	}
	defer func() { _ = resp.Body.Close() }()

	header := w.Header()
	for key, values := range resp.Header {
		for _, v := range values {
			header.Add(key, v)
		}
	}
	w.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(w, resp.Body); err != nil {
		// Status is already on the wire, nothing to do but log.
		f.logger.Warn("response relay interrupted",
			observability.String("service", service),
			observability.String("path", r.URL.Path),
			observability.Error(err),
		)
	}

	f.metrics.RecordForward(service, r.Method, resp.StatusCode, time.Since(start))
}

func (f *Forwarder) writeBadGateway(w http.ResponseWriter, r *http.Request, service string, err error) {
	f.logger.Error("backend unreachable",
		observability.String("service", service),
		observability.String("path", r.URL.Path),
		observability.String("method", r.Method),
		observability.Error(err),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadGateway)
	_, _ = io.WriteString(w, `{"error":"bad gateway","message":"failed to reach backend service"}`)
}
