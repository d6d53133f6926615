package graph

import (
	"encoding/json"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"
	"github.com/shopspring/decimal"
)

// decimalType is an exact-precision monetary scalar. It serializes to
// the decimal's string form and parses from the textual form of the
// incoming value, so amounts never pass through a binary float.
var decimalType = graphql.NewScalar(graphql.ScalarConfig{
	Name:        "Decimal",
	Description: "An arbitrary-precision decimal, transported as a string.",
	Serialize: func(value any) any {
		switch v := value.(type) {
		case decimal.Decimal:
			return v.String()
		case *decimal.Decimal:
			if v == nil {
				return nil
			}
			return v.String()
		default:
			return nil
		}
	},
	ParseValue: func(value any) any {
		switch v := value.(type) {
		case decimal.Decimal:
			return v
		case string:
			return parseDecimal(v)
		case json.Number:
			return parseDecimal(v.String())
		default:
			return nil
		}
	},
	ParseLiteral: func(valueAST ast.Value) any {
		switch v := valueAST.(type) {
		case *ast.StringValue:
			return parseDecimal(v.Value)
		case *ast.IntValue:
			return parseDecimal(v.Value)
		case *ast.FloatValue:
			return parseDecimal(v.Value)
		default:
			return nil
		}
	},
})

func parseDecimal(s string) any {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	return d
}
