package graph

import (
	"net/http"

	"github.com/graphql-go/graphql"

	"github.com/vyrodovalexey/marketgw/internal/backend"
	"github.com/vyrodovalexey/marketgw/internal/records"
)

// Auth resolvers use the raw call surface: session cookies from the
// inbound request are forwarded, and every Set-Cookie the auth service
// responds with is relayed onto the gateway response.

func (r *Resolver) me(p graphql.ResolveParams) (any, error) {
	rc := RequestContextFrom(p.Context)

	resp, err := r.backends.Auth.Do(p.Context, http.MethodGet, "/auth/me", nil, rc.CookieHeader(), rc.Tenant())
	if err != nil {
		return nil, r.fieldError("me", err)
	}

	switch resp.Status {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusNotFound:
		// Not signed in is an absent result, not an error.
		return nil, nil
	default:
		return nil, r.fieldError("me",
			backend.NewUpstreamError(r.backends.Auth.Name(), resp.Status, resp.Body))
	}

	user, err := records.MapUser(resp.Body)
	if err != nil {
		return nil, r.fieldError("me", backend.NewDecodeError(r.backends.Auth.Name(), err))
	}
	return user, nil
}

func (r *Resolver) signup(p graphql.ResolveParams) (any, error) {
	return r.authenticate(p, "signup", "/auth/signup", records.SignupBody(inputArg(p)))
}

func (r *Resolver) login(p graphql.ResolveParams) (any, error) {
	return r.authenticate(p, "login", "/auth/login", records.LoginBody(inputArg(p)))
}

func (r *Resolver) authenticate(p graphql.ResolveParams, field, path string, body map[string]any) (any, error) {
	rc := RequestContextFrom(p.Context)

	resp, err := r.backends.Auth.Do(p.Context, http.MethodPost, path, body, nil, rc.Tenant())
	if err != nil {
		return nil, r.fieldError(field, err)
	}
	if resp.Status != http.StatusOK && resp.Status != http.StatusCreated {
		return nil, r.fieldError(field,
			backend.NewUpstreamError(r.backends.Auth.Name(), resp.Status, resp.Body))
	}

	rc.RelaySetCookie(resp.Header)

	user, err := records.MapUser(resp.Body)
	if err != nil {
		return nil, r.fieldError(field, backend.NewDecodeError(r.backends.Auth.Name(), err))
	}
	return user, nil
}

func (r *Resolver) logout(p graphql.ResolveParams) (any, error) {
	rc := RequestContextFrom(p.Context)

	resp, err := r.backends.Auth.Do(p.Context, http.MethodPost, "/auth/logout", nil, rc.CookieHeader(), rc.Tenant())
	if err != nil {
		return nil, r.fieldError("logout", err)
	}
	if resp.Status != http.StatusOK && resp.Status != http.StatusNoContent {
		return nil, r.fieldError("logout",
			backend.NewUpstreamError(r.backends.Auth.Name(), resp.Status, resp.Body))
	}

	// Cookie clearing happens via Set-Cookie as well.
	rc.RelaySetCookie(resp.Header)

	return true, nil
}
