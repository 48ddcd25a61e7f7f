package operators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thingpedia/tt-semcheck/types"
)

func TestResolveComparison(t *testing.T) {
	res, err := Resolve(Comparisons, "==", []types.Type{types.Number, types.Number})
	assert.NoError(t, err)
	assert.Equal(t, types.Boolean, res)
}

func TestResolveComparisonUnknownOperator(t *testing.T) {
	_, err := Resolve(Comparisons, "frobnicate", []types.Type{types.Number, types.Number})
	assert.Error(t, err)
}

func TestResolveEntityRejectsSubstring(t *testing.T) {
	_, err := Resolve(Comparisons, "=~", []types.Type{types.Entity("tt:username"), types.String})
	assert.Error(t, err, "=~ must reject Entity LHS even though Entity coerces to String")
}

func TestResolveEntityAllowsStartsWithViaCoercion(t *testing.T) {
	// starts_with has no NoEntityCoerce guard, so Entity->String coercion applies.
	res, err := Resolve(Comparisons, "starts_with", []types.Type{types.Entity("tt:username"), types.String})
	assert.NoError(t, err)
	assert.Equal(t, types.Boolean, res)
}

func TestResolveArithmeticDateMinusDate(t *testing.T) {
	res, err := Resolve(Arithmetic, "-", []types.Type{types.Date, types.Date})
	assert.NoError(t, err)
	assert.Equal(t, types.Measure("ms"), res)
}

func TestResolveArithmeticDatePlusMeasure(t *testing.T) {
	res, err := Resolve(Arithmetic, "+", []types.Type{types.Date, types.Measure("ms")})
	assert.NoError(t, err)
	assert.Equal(t, types.Date, res)
}

func TestResolveAggregationCount(t *testing.T) {
	res, err := Resolve(Aggregations, "count", []types.Type{types.Any})
	assert.NoError(t, err)
	assert.Equal(t, types.Number, res)
}

func TestResolveAggregationSumMeasure(t *testing.T) {
	res, err := Resolve(Aggregations, "sum", []types.Type{types.Measure("C")})
	assert.NoError(t, err)
	assert.Equal(t, types.Measure("C"), res)
}

func TestOrderable(t *testing.T) {
	assert.True(t, Orderable(types.Number))
	assert.True(t, Orderable(types.Measure("C")))
	assert.False(t, Orderable(types.Boolean))
	assert.False(t, Orderable(types.String))
}
