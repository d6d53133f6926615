package graph

import (
	"encoding/json"
	"testing"

	"github.com/graphql-go/graphql/language/ast"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalScalar_Serialize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "99.9", decimalType.Serialize(decimal.RequireFromString("99.90")))
	assert.Nil(t, decimalType.Serialize("not a decimal"))
}

func TestDecimalScalar_ParseValue(t *testing.T) {
	t.Parallel()

	fromNumber := decimalType.ParseValue(json.Number("99.90"))
	d, ok := fromNumber.(decimal.Decimal)
	require.True(t, ok)
	assert.True(t, d.Equal(decimal.RequireFromString("99.90")))

	fromString := decimalType.ParseValue("12.50")
	d, ok = fromString.(decimal.Decimal)
	require.True(t, ok)
	assert.Equal(t, "12.5", d.String())

	assert.Nil(t, decimalType.ParseValue("abc"))
	assert.Nil(t, decimalType.ParseValue(struct{}{}))
}

func TestDecimalScalar_ParseLiteral(t *testing.T) {
	t.Parallel()

	lit := decimalType.ParseLiteral(&ast.FloatValue{Value: "99.90"})
	d, ok := lit.(decimal.Decimal)
	require.True(t, ok)
	assert.True(t, d.Equal(decimal.RequireFromString("99.90")))

	lit = decimalType.ParseLiteral(&ast.IntValue{Value: "7"})
	d, ok = lit.(decimal.Decimal)
	require.True(t, ok)
	assert.Equal(t, "7", d.String())

	assert.Nil(t, decimalType.ParseLiteral(&ast.BooleanValue{Value: true}))
}
