package analyzer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thingpedia/tt-semcheck/ast"
	"github.com/thingpedia/tt-semcheck/resolver"
	"github.com/thingpedia/tt-semcheck/schema"
	"github.com/thingpedia/tt-semcheck/types"
)

func TestTypeCheckPermissionRuleValidPrincipal(t *testing.T) {
	oracle := resolver.NewMemoryOracle()
	querySchema, _ := schema.New([]string{"temperature"}, []types.Type{types.Measure("C")}, []schema.ArgKind{schema.Output}, nil, "")
	oracle.RegisterPermission("com.weather.current", resolver.PermissionQueries, querySchema)
	actionSchema, _ := schema.New([]string{"status"}, []types.Type{types.String}, []schema.ArgKind{schema.Required}, nil, "")
	oracle.RegisterPermission("com.twitter.post", resolver.PermissionActions, actionSchema)

	c := New(oracle, false, false, nil)

	policy := &ast.Policy{
		Principal: &ast.Atom{Name: "source", Op: "==", Value: ast.EntityValue{EntityType: "tt:contact", Value: "matrix-account:1234"}},
		Query: &ast.Invocation{
			Selector: ast.Selector{Kind: "com.weather"},
			Channel:  "current",
			Filter:   &ast.Atom{Name: "temperature", Op: ">=", Value: ast.MeasureValue{Value: 0, Unit: "C"}},
		},
		Action: &ast.Invocation{
			Selector: ast.Selector{Kind: "com.twitter"},
			Channel:  "post",
		},
	}

	err := c.TypeCheckPermissionRule(context.Background(), policy)
	require.NoError(t, err)
	require.NotNil(t, policy.Query.Schema)
	require.NotNil(t, policy.Action.Schema)
}

func TestTypeCheckPermissionRuleInvalidPrincipalFails(t *testing.T) {
	oracle := resolver.NewMemoryOracle()
	c := New(oracle, false, false, nil)

	policy := &ast.Policy{
		Principal: &ast.Atom{Name: "source", Op: "==", Value: ast.StringValue{Value: "not-a-principal"}},
	}

	err := c.TypeCheckPermissionRule(context.Background(), policy)
	assert.Error(t, err)
}

func TestTypeCheckPermissionRuleUnknownPermissionFails(t *testing.T) {
	oracle := resolver.NewMemoryOracle()
	c := New(oracle, false, false, nil)

	policy := &ast.Policy{
		Query: &ast.Invocation{Selector: ast.Selector{Kind: "com.weather"}, Channel: "current"},
	}

	err := c.TypeCheckPermissionRule(context.Background(), policy)
	assert.Error(t, err)
}
