// Package backend provides the shared typed HTTP client the aggregation
// layer uses to call backend domain services.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vyrodovalexey/marketgw/internal/observability"
)

// tracerName is the OpenTelemetry tracer name for backend calls.
const tracerName = "marketgw/backend"

const (
	// TenantHeader carries the tenant identifier on every backend call.
	TenantHeader = "X-Tenant-ID"

	// DefaultTenant is used when the inbound request carries no tenant.
	DefaultTenant = "public"
)

// defaultTimeout applies when no request timeout is configured.
const defaultTimeout = 10 * time.Second

// Client is the process-wide outbound HTTP client. It is shared by all
// requests; nothing mutates it after construction.
type Client struct {
	httpClient *http.Client
	logger     observability.Logger
	metrics    MetricsRecorder
}

// Option is a functional option for configuring the client.
type Option func(*Client)

// WithTimeout sets the per-call request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithTransport sets the HTTP transport.
func WithTransport(transport http.RoundTripper) Option {
	return func(c *Client) {
		c.httpClient.Transport = transport
	}
}

// WithLogger sets the logger.
func WithLogger(logger observability.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithMetrics sets the metrics recorder.
func WithMetrics(metrics MetricsRecorder) Option {
	return func(c *Client) {
		c.metrics = metrics
	}
}

// NewTransport builds the pooled transport shared across the process.
func NewTransport() *http.Transport {
	return &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
	}
}

// NewClient creates a new backend client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     observability.NopLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient.Transport == nil {
		c.httpClient.Transport = NewTransport()
	}

	return c
}

// Response is the raw result of a backend call.
type Response struct {
	Status int
	Body   []byte
	Header http.Header
}

// call holds everything needed for one outbound request.
type call struct {
	service string
	method  string
	url     string
	query   url.Values
	body    any
	header  http.Header
	tenant  string
}

// do issues one backend call. Transport failures come back as
// *TransportError; any HTTP response, whatever its status, comes back as
// a *Response for the caller to interpret per call kind.
func (c *Client) do(ctx context.Context, req call) (*Response, error) {
	tracer := otel.Tracer(tracerName)
	ctx, span := tracer.Start(ctx, "gateway.backend.call",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("backend.service", req.service),
			attribute.String("http.method", req.method),
		),
	)
	defer span.End()

	target := req.url
	if len(req.query) > 0 {
		target = target + "?" + req.query.Encode()
	}

	var bodyReader io.Reader
	if req.body != nil {
		encoded, err := json.Marshal(req.body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body for %s: %w", req.service, err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, target, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", req.service, err)
	}

	tenant := req.tenant
	if tenant == "" {
		tenant = DefaultTenant
	}
	httpReq.Header.Set(TenantHeader, tenant)
	httpReq.Header.Set("Accept", "application/json")
	if req.body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	for key, values := range req.header {
		for _, v := range values {
			httpReq.Header.Add(key, v)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport failure")
		if c.metrics != nil {
			c.metrics.RecordError(req.service, "transport")
		}
		c.logger.Warn("backend call failed",
			observability.String("service", req.service),
			observability.String("method", req.method),
			observability.String("url", req.url),
			observability.Error(err),
		)
		return nil, NewTransportError(req.service, err)
	}
	defer func() { _ = resp.Body.Close() }()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		span.RecordError(err)
		if c.metrics != nil {
			c.metrics.RecordError(req.service, "transport")
		}
		return nil, NewTransportError(req.service, err)
	}

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if c.metrics != nil {
		c.metrics.RecordCall(req.service, req.method, resp.StatusCode, time.Since(start))
	}

	return &Response{
		Status: resp.StatusCode,
		Body:   payload,
		Header: resp.Header,
	}, nil
}
