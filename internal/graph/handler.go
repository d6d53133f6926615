package graph

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/graphql-go/graphql"
)

// Request is the standard GraphQL HTTP request shape.
type Request struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName"`
	Variables     map[string]any `json:"variables"`
}

// Handler serves the /graphql endpoint. POST bodies are decoded with
// UseNumber so numeric variables keep their textual form, then numbers
// are normalized to strings before execution: the scalar coercers (Int,
// Float, Decimal) all parse strings, so an exact amount like 99.90
// reaches the Decimal scalar without a float intermediate. Execution
// errors are per-field: the response is always 200 with an errors
// array, never a transport-level failure.
func Handler(schema graphql.Schema) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req Request

		if c.Request.Method == http.MethodGet {
			req.Query = c.Query("query")
			req.OperationName = c.Query("operationName")
			if raw := c.Query("variables"); raw != "" {
				vars, err := decodeVariables(raw)
				if err != nil {
					c.JSON(http.StatusBadRequest, gin.H{
						"errors": []gin.H{{"message": "invalid variables parameter"}},
					})
					return
				}
				req.Variables = vars
			}
		} else {
			dec := json.NewDecoder(c.Request.Body)
			dec.UseNumber()
			if err := dec.Decode(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{
					"errors": []gin.H{{"message": "invalid request body"}},
				})
				return
			}
		}
		normalizeValues(req.Variables)

		if req.Query == "" {
			c.JSON(http.StatusBadRequest, gin.H{
				"errors": []gin.H{{"message": "query is required"}},
			})
			return
		}

		rc := NewRequestContext(c.Request.Header, c.Writer.Header())
		ctx := WithRequestContext(c.Request.Context(), rc)

		result := graphql.Do(graphql.Params{
			Schema:         schema,
			RequestString:  req.Query,
			OperationName:  req.OperationName,
			VariableValues: req.Variables,
			Context:        ctx,
		})

		c.JSON(http.StatusOK, result)
	}
}

// decodeVariables parses the GET-form variables parameter, applying the
// same UseNumber treatment as the POST body.
func decodeVariables(raw string) (map[string]any, error) {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	var vars map[string]any
	if err := dec.Decode(&vars); err != nil {
		return nil, err
	}
	return vars, nil
}

// normalizeValues rewrites every json.Number in the variables tree to
// its textual form in place. Schema coercion accepts strings for Int
// and Float, and the Decimal scalar parses the same text exactly.
func normalizeValues(m map[string]any) {
	for k, v := range m {
		m[k] = normalizeValue(v)
	}
}

func normalizeValue(v any) any {
	switch v := v.(type) {
	case json.Number:
		return v.String()
	case map[string]any:
		normalizeValues(v)
		return v
	case []any:
		for i, e := range v {
			v[i] = normalizeValue(e)
		}
		return v
	default:
		return v
	}
}
