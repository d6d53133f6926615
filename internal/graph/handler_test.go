package graph

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/graphql-go/graphql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, schema graphql.Schema) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/graphql", Handler(schema))
	router.GET("/graphql", Handler(schema))
	return router
}

func TestHandler_CreateOrderThroughVariables(t *testing.T) {
	t.Parallel()

	schema := newTestSchema(t, map[string]http.HandlerFunc{
		"order": func(w http.ResponseWriter, r *http.Request) {
			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

			// The amount crosses the wire as a decimal string.
			assert.Equal(t, "99.9", body["amount"])
			assert.Equal(t, "u1", body["user_id"])

			items, ok := body["items"].([]any)
			require.True(t, ok)
			require.Len(t, items, 1)

			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{
				"id": 42, "user_id": "u1",
				"order_status": "created", "payment_status": "pending",
				"amount": 99.90, "created_at": "2024-01-01T00:00:00Z",
				"items": []
			}`))
		},
	})
	router := newTestRouter(t, schema)

	payload := `{
		"query": "mutation($input: CreateOrderInput!) { createOrder(input: $input) { id amount createdAt } }",
		"variables": {
			"input": {
				"userId": "u1",
				"items": [{"offerId": 7, "quantity": 2}],
				"amount": 99.90
			}
		}
	}`

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	out := rec.Body.String()
	assert.NotContains(t, out, `"errors"`)
	assert.Contains(t, out, `"id":42`)
	assert.Contains(t, out, `"amount":"99.9"`)
	assert.Contains(t, out, `"createdAt":"2024-01-01T00:00:00Z"`)
}

func TestHandler_IntVariableCoerces(t *testing.T) {
	t.Parallel()

	schema := newTestSchema(t, map[string]http.HandlerFunc{
		"payment": func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/payments/7/confirm", r.URL.Path)
			_, _ = w.Write([]byte(`{
				"id": 7, "order_id": 42, "user_id": "u1",
				"amount": "10.00", "currency": "EUR",
				"payment_method": "card", "payment_status": "confirmed",
				"provider": "stripe", "transaction_id": "tx1",
				"created_at": "2024-01-01T00:00:00Z",
				"updated_at": "2024-01-01T00:00:00Z"
			}`))
		},
	})
	router := newTestRouter(t, schema)

	payload := `{
		"query": "mutation($id: Int!) { confirmPayment(paymentId: $id) { id paymentStatus } }",
		"variables": {"id": 7}
	}`

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(payload))
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	out := rec.Body.String()
	assert.NotContains(t, out, `"errors"`)
	assert.Contains(t, out, `"id":7`)
	assert.Contains(t, out, `"paymentStatus":"confirmed"`)
}

func TestHandler_FloatVariablesCoerce(t *testing.T) {
	t.Parallel()

	schema := newTestSchema(t, map[string]http.HandlerFunc{
		"partner": func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/partners/nearby", r.URL.Path)
			assert.Equal(t, "52.52", r.URL.Query().Get("lat"))
			// An integral JSON number is still a valid Float variable.
			assert.Equal(t, "13", r.URL.Query().Get("lng"))
			assert.Equal(t, "2.5", r.URL.Query().Get("radius_km"))
			_, _ = w.Write([]byte(`[]`))
		},
	})
	router := newTestRouter(t, schema)

	payload := `{
		"query": "query($lat: Float!, $lng: Float!, $r: Float!) { nearbyPartners(lat: $lat, lng: $lng, radiusKm: $r) { id } }",
		"variables": {"lat": 52.52, "lng": 13, "r": 2.5}
	}`

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(payload))
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	out := rec.Body.String()
	assert.NotContains(t, out, `"errors"`)
	assert.Contains(t, out, `"nearbyPartners":[]`)
}

func TestHandler_LoginRelaysSetCookieMultiplicity(t *testing.T) {
	t.Parallel()

	schema := newTestSchema(t, map[string]http.HandlerFunc{
		"auth": func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("Set-Cookie", "session=def; Path=/; HttpOnly")
			w.Header().Add("Set-Cookie", "csrf=xyz; Path=/")
			_, _ = w.Write([]byte(`{
				"id": "u1", "email": "a@b.c", "full_name": "Ada",
				"is_active": true, "created_at": "2024-01-01T00:00:00Z"
			}`))
		},
	})
	router := newTestRouter(t, schema)

	payload := `{
		"query": "mutation { login(input: {email: \"a@b.c\", password: \"secret\"}) { id } }"
	}`

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(payload))
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Header().Values("Set-Cookie")
	require.Len(t, cookies, 2)
	assert.Contains(t, cookies[0], "session=def")
	assert.Contains(t, cookies[1], "csrf=xyz")
}

func TestHandler_GetWithQueryParameter(t *testing.T) {
	t.Parallel()

	schema := newTestSchema(t, map[string]http.HandlerFunc{
		"partner": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[]`))
		},
	})
	router := newTestRouter(t, schema)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/graphql?query="+strings.ReplaceAll("{ getPartners { id } }", " ", "%20"), nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"getPartners":[]`)
}

func TestHandler_GetWithVariablesParameter(t *testing.T) {
	t.Parallel()

	schema := newTestSchema(t, map[string]http.HandlerFunc{
		"payment": func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/payments/9/confirm", r.URL.Path)
			_, _ = w.Write([]byte(`{
				"id": 9, "order_id": 1, "user_id": "u1",
				"amount": "1.00", "currency": "EUR",
				"payment_method": "card", "payment_status": "confirmed",
				"provider": "stripe", "transaction_id": "tx9",
				"created_at": "2024-01-01T00:00:00Z",
				"updated_at": "2024-01-01T00:00:00Z"
			}`))
		},
	})
	router := newTestRouter(t, schema)

	params := url.Values{}
	params.Set("query", "mutation($id: Int!) { confirmPayment(paymentId: $id) { id } }")
	params.Set("variables", `{"id": 9}`)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/graphql?"+params.Encode(), nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	out := rec.Body.String()
	assert.NotContains(t, out, `"errors"`)
	assert.Contains(t, out, `"id":9`)
}

func TestHandler_GetWithInvalidVariablesParameter(t *testing.T) {
	t.Parallel()

	schema := newTestSchema(t, nil)
	router := newTestRouter(t, schema)

	params := url.Values{}
	params.Set("query", "{ getPartners { id } }")
	params.Set("variables", `{not json`)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/graphql?"+params.Encode(), nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_InvalidBody(t *testing.T) {
	t.Parallel()

	schema := newTestSchema(t, nil)
	router := newTestRouter(t, schema)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(`{not json`))
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_MissingQuery(t *testing.T) {
	t.Parallel()

	schema := newTestSchema(t, nil)
	router := newTestRouter(t, schema)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(`{}`))
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_TenantFlowsFromHeader(t *testing.T) {
	t.Parallel()

	schema := newTestSchema(t, map[string]http.HandlerFunc{
		"offer": func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "acme", r.Header.Get("X-Tenant-Id"))
			_, _ = w.Write([]byte(`[]`))
		},
	})
	router := newTestRouter(t, schema)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/graphql",
		strings.NewReader(`{"query": "{ getOffers { id } }"}`))
	req.Header.Set("X-Tenant-ID", "acme")
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"getOffers":[]`)
}
