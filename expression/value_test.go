package expression

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thingpedia/tt-semcheck/ast"
	"github.com/thingpedia/tt-semcheck/scope"
	"github.com/thingpedia/tt-semcheck/types"
)

func TestTypeForValueContextVar(t *testing.T) {
	ty, err := TypeForValue(ast.VarRefValue{Name: "$context.location.current_location"}, scope.New())
	require.NoError(t, err)
	assert.Equal(t, types.Location, ty)
}

func TestTypeForValueUnknownContextVarFails(t *testing.T) {
	_, err := TypeForValue(ast.VarRefValue{Name: "$context.bogus"}, scope.New())
	assert.Error(t, err)
}

func TestTypeForValueVarRefResolvesScope(t *testing.T) {
	sc := scope.New()
	sc.AddLocal("x", types.String)

	ty, err := TypeForValue(ast.VarRefValue{Name: "x"}, sc)
	require.NoError(t, err)
	assert.Equal(t, types.String, ty)
}

func TestTypeForValueVarRefUnboundFails(t *testing.T) {
	_, err := TypeForValue(ast.VarRefValue{Name: "missing"}, scope.New())
	assert.Error(t, err)
}

// seed scenario 5: $event requires hasEvent except for program_id.
func TestTypeForValueEventRequiresHasEvent(t *testing.T) {
	sc := scope.New()
	_, err := TypeForValue(ast.EventValue{}, sc)
	assert.Error(t, err)

	sc.SetHasEvent(true)
	ty, err := TypeForValue(ast.EventValue{}, sc)
	require.NoError(t, err)
	assert.Equal(t, types.Any, ty)
}

func TestTypeForValueEventProgramIDAlwaysAllowed(t *testing.T) {
	name := "program_id"
	ty, err := TypeForValue(ast.EventValue{Name: &name}, scope.New())
	require.NoError(t, err)
	assert.Equal(t, types.String, ty)
}

func TestTypeForValueLiteral(t *testing.T) {
	ty, err := TypeForValue(ast.NumberValue{Value: 42}, scope.New())
	require.NoError(t, err)
	assert.Equal(t, types.Number, ty)
}
