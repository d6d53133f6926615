// Package graph implements the typed aggregation layer: a GraphQL
// schema whose fields fan out to backend REST calls and return
// normalized domain records.
package graph

import (
	"context"
	"net/http"
	"sync"

	"github.com/vyrodovalexey/marketgw/internal/backend"
)

type requestContextKey struct{}

// RequestContext carries the per-request state resolvers need: the
// inbound header set, the tenant derived from it, and the gateway
// response header sink used to relay Set-Cookie headers from auth
// backends.
type RequestContext struct {
	header http.Header
	tenant string

	mu       sync.Mutex
	response http.Header
}

// NewRequestContext builds the per-request state from the inbound
// headers. response is the gateway response header set; it may be nil
// when no relay target exists (detached use in tests).
func NewRequestContext(inbound http.Header, response http.Header) *RequestContext {
	tenant := inbound.Get(backend.TenantHeader)
	if tenant == "" {
		tenant = backend.DefaultTenant
	}

	return &RequestContext{
		header:   inbound,
		tenant:   tenant,
		response: response,
	}
}

// Tenant returns the tenant for this request.
func (rc *RequestContext) Tenant() string {
	return rc.tenant
}

// CookieHeader returns a header set carrying only the inbound Cookie
// headers, for backend calls that act on the caller's session.
func (rc *RequestContext) CookieHeader() http.Header {
	out := http.Header{}
	for _, v := range rc.header.Values("Cookie") {
		out.Add("Cookie", v)
	}
	return out
}

// RelaySetCookie copies every Set-Cookie header from a backend response
// onto the gateway response, preserving multiplicity. Cookies must not
// be folded into one header, so values are added one by one.
func (rc *RequestContext) RelaySetCookie(from http.Header) {
	if rc.response == nil {
		return
	}

	rc.mu.Lock()
	defer rc.mu.Unlock()
	for _, v := range from.Values("Set-Cookie") {
		rc.response.Add("Set-Cookie", v)
	}
}

// WithRequestContext attaches the request context to ctx.
func WithRequestContext(ctx context.Context, rc *RequestContext) context.Context {
	return context.WithValue(ctx, requestContextKey{}, rc)
}

// RequestContextFrom extracts the request context from ctx. A detached
// default (public tenant, no relay target) is returned when none is
// attached, so resolvers never have to nil-check.
func RequestContextFrom(ctx context.Context) *RequestContext {
	if rc, ok := ctx.Value(requestContextKey{}).(*RequestContext); ok {
		return rc
	}
	return NewRequestContext(http.Header{}, nil)
}
