package graph

import (
	"encoding/json"
	"strconv"

	"github.com/graphql-go/graphql"

	"github.com/vyrodovalexey/marketgw/internal/backend"
	"github.com/vyrodovalexey/marketgw/internal/observability"
)

// Backends holds the per-service clients the resolvers call.
type Backends struct {
	Orders        *backend.Service
	Payments      *backend.Service
	Partners      *backend.Service
	Offers        *backend.Service
	Users         *backend.Service
	Notifications *backend.Service
	Reviews       *backend.Service
	Auth          *backend.Service
}

// Resolver implements every query and mutation field. One resolver
// failing surfaces as a field error; sibling fields in the same
// document still resolve.
type Resolver struct {
	backends Backends
	logger   observability.Logger
}

// ResolverOption is a functional option for configuring the resolver.
type ResolverOption func(*Resolver)

// WithLogger sets the logger for the resolver.
func WithLogger(logger observability.Logger) ResolverOption {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// NewResolver creates a resolver over the given backends.
func NewResolver(backends Backends, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		backends: backends,
		logger:   observability.NopLogger(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

func (r *Resolver) fieldError(field string, err error) error {
	r.logger.Warn("field resolution failed",
		observability.String("field", field),
		observability.Error(err),
	)
	return err
}

// Argument accessors. graphql-go has already validated and coerced the
// arguments against the schema, so the accessors only normalize the
// concrete Go type.

func stringArg(p graphql.ResolveParams, name string) string {
	s, _ := p.Args[name].(string)
	return s
}

func intArg(p graphql.ResolveParams, name string) int {
	switch v := p.Args[name].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case json.Number:
		n, _ := v.Int64()
		return int(n)
	default:
		return 0
	}
}

func floatArg(p graphql.ResolveParams, name string) float64 {
	switch v := p.Args[name].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case json.Number:
		f, _ := v.Float64()
		return f
	default:
		return 0
	}
}

func inputArg(p graphql.ResolveParams) map[string]any {
	m, _ := p.Args["input"].(map[string]any)
	if m == nil {
		m = map[string]any{}
	}
	return m
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
