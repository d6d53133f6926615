package backend

import (
	"context"
	"net/http"
	"net/url"
	"strings"
)

// Service wraps the shared client for one backend domain service. Each
// call-kind helper encodes the uniform status contract for that kind:
// lists degrade to empty, single-entity lookups map 404 to "no value",
// mutations turn any non-success status into an *UpstreamError.
type Service struct {
	name    string
	baseURL string
	client  *Client
}

// Service returns a per-service wrapper around the shared client.
func (c *Client) Service(name, baseURL string) *Service {
	return &Service{
		name:    name,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  c,
	}
}

// Name returns the domain service name.
func (s *Service) Name() string {
	return s.name
}

// List issues a GET for a collection. Any non-200 status yields a nil
// body with no error: list callers tolerate "empty" and "absent" being
// indistinguishable. Transport failures still propagate.
func (s *Service) List(ctx context.Context, path string, query url.Values, tenant string) ([]byte, error) {
	resp, err := s.client.do(ctx, call{
		service: s.name,
		method:  http.MethodGet,
		url:     s.baseURL + path,
		query:   query,
		tenant:  tenant,
	})
	if err != nil {
		return nil, err
	}

	if resp.Status != http.StatusOK {
		return nil, nil
	}
	return resp.Body, nil
}

// Get issues a GET for a single entity. A 404 maps to (nil, false, nil);
// any other non-200 status is an *UpstreamError.
func (s *Service) Get(ctx context.Context, path, tenant string) ([]byte, bool, error) {
	resp, err := s.client.do(ctx, call{
		service: s.name,
		method:  http.MethodGet,
		url:     s.baseURL + path,
		tenant:  tenant,
	})
	if err != nil {
		return nil, false, err
	}

	switch resp.Status {
	case http.StatusOK:
		return resp.Body, true, nil
	case http.StatusNotFound:
		return nil, false, nil
	default:
		return nil, false, NewUpstreamError(s.name, resp.Status, resp.Body)
	}
}

// Post issues a POST mutation. 200 and 201 are the success set.
func (s *Service) Post(ctx context.Context, path string, body any, tenant string) ([]byte, error) {
	return s.mutate(ctx, http.MethodPost, path, body, tenant)
}

// Put issues a PUT mutation.
func (s *Service) Put(ctx context.Context, path string, body any, tenant string) ([]byte, error) {
	return s.mutate(ctx, http.MethodPut, path, body, tenant)
}

// Patch issues a PATCH mutation. The body is expected to be a sparse
// patch: only fields the caller explicitly set.
func (s *Service) Patch(ctx context.Context, path string, body any, tenant string) ([]byte, error) {
	return s.mutate(ctx, http.MethodPatch, path, body, tenant)
}

// Delete issues a DELETE. 200 and 204 are the success set.
func (s *Service) Delete(ctx context.Context, path, tenant string) error {
	resp, err := s.client.do(ctx, call{
		service: s.name,
		method:  http.MethodDelete,
		url:     s.baseURL + path,
		tenant:  tenant,
	})
	if err != nil {
		return err
	}

	if resp.Status != http.StatusOK && resp.Status != http.StatusNoContent {
		return NewUpstreamError(s.name, resp.Status, resp.Body)
	}
	return nil
}

// Do issues a call and returns the raw response regardless of status.
// The auth resolvers use it to inspect Set-Cookie headers and to forward
// inbound cookies.
func (s *Service) Do(
	ctx context.Context,
	method, path string,
	body any,
	header http.Header,
	tenant string,
) (*Response, error) {
	return s.client.do(ctx, call{
		service: s.name,
		method:  method,
		url:     s.baseURL + path,
		body:    body,
		header:  header,
		tenant:  tenant,
	})
}

func (s *Service) mutate(ctx context.Context, method, path string, body any, tenant string) ([]byte, error) {
	resp, err := s.client.do(ctx, call{
		service: s.name,
		method:  method,
		url:     s.baseURL + path,
		body:    body,
		tenant:  tenant,
	})
	if err != nil {
		return nil, err
	}

	if resp.Status != http.StatusOK && resp.Status != http.StatusCreated {
		return nil, NewUpstreamError(s.name, resp.Status, resp.Body)
	}
	return resp.Body, nil
}
