package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thingpedia/tt-semcheck/ast"
	"github.com/thingpedia/tt-semcheck/resolver"
	"github.com/thingpedia/tt-semcheck/schema"
	"github.com/thingpedia/tt-semcheck/scope"
	"github.com/thingpedia/tt-semcheck/types"
)

func TestCheckMonitorSetsHasEvent(t *testing.T) {
	oracle := resolver.NewMemoryOracle()
	oracle.RegisterFunction("com.weather", "current", ast.KindQuery, weatherQuerySchema())

	mon := &ast.Monitor{Table: weatherInvocationTable()}
	sc := scope.New()

	err := CheckStream(baseEnv(oracle), mon, sc)
	require.NoError(t, err)
	assert.True(t, sc.HasEvent())
}

func TestCheckMonitorUnknownArgFails(t *testing.T) {
	oracle := resolver.NewMemoryOracle()
	oracle.RegisterFunction("com.weather", "current", ast.KindQuery, weatherQuerySchema())

	mon := &ast.Monitor{Table: weatherInvocationTable(), Args: []string{"bogus"}}
	sc := scope.New()

	err := CheckStream(baseEnv(oracle), mon, sc)
	assert.Error(t, err)
}

func TestCheckTimerRequiresTimeRange(t *testing.T) {
	timer := &ast.Timer{
		Base:     ast.ScalarPrimary{Value: ast.DateValue{Value: "2026-07-31T00:00:00Z"}},
		Interval: ast.ScalarPrimary{Value: ast.MeasureValue{Value: 1, Unit: "ms"}},
	}
	sc := scope.New()

	err := CheckStream(baseEnv(resolver.NewMemoryOracle()), timer, sc)
	require.NoError(t, err)
	assert.True(t, sc.HasEvent())
}

func TestCheckTimerRejectsNonTimeBase(t *testing.T) {
	timer := &ast.Timer{
		Base:     ast.ScalarPrimary{Value: ast.NumberValue{Value: 3}},
		Interval: ast.ScalarPrimary{Value: ast.MeasureValue{Value: 1, Unit: "ms"}},
	}
	sc := scope.New()

	err := CheckStream(baseEnv(resolver.NewMemoryOracle()), timer, sc)
	assert.Error(t, err)
}

func TestCheckStreamJoinQueriesRhsPerEvent(t *testing.T) {
	oracle := resolver.NewMemoryOracle()
	oracle.RegisterFunction("com.weather", "current", ast.KindQuery, weatherQuerySchema())
	petSchema, _ := schema.New([]string{"name"}, []types.Type{types.String}, []schema.ArgKind{schema.Output}, nil, "")
	oracle.RegisterFunction("com.pet", "new_post", ast.KindQuery, petSchema)

	join := &ast.StreamJoin{
		LHS: &ast.Monitor{Table: &ast.TableInvocation{Invocation: &ast.Invocation{Selector: ast.Selector{Kind: "com.pet"}, Channel: "new_post"}}},
		RHS: weatherInvocationTable(),
	}
	sc := scope.New()

	err := CheckStream(baseEnv(oracle), join, sc)
	require.NoError(t, err)
	assert.True(t, sc.HasEvent())

	_, err = sc.Get("temperature")
	require.NoError(t, err)
	_, err = sc.Get("name")
	require.NoError(t, err)
}

func TestCheckVarRefStreamResolvesFromMemoryOracle(t *testing.T) {
	oracle := resolver.NewMemoryOracle()
	tableSchema, _ := schema.New([]string{"x"}, []types.Type{types.Number}, []schema.ArgKind{schema.Output}, nil, "")
	oracle.RegisterMemoryTable("mystream", tableSchema)

	ref := &ast.VarRefStream{Name: "mystream"}
	sc := scope.New()

	err := CheckStream(baseEnv(oracle), ref, sc)
	require.NoError(t, err)
	assert.True(t, sc.HasEvent())

	ty, err := sc.Get("x")
	require.NoError(t, err)
	assert.Equal(t, types.Number, ty)
}
