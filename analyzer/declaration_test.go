package analyzer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thingpedia/tt-semcheck/ast"
	"github.com/thingpedia/tt-semcheck/resolver"
	"github.com/thingpedia/tt-semcheck/schema"
	"github.com/thingpedia/tt-semcheck/scope"
	"github.com/thingpedia/tt-semcheck/types"
)

func twitterPostSchema() *schema.Schema {
	s, _ := schema.New([]string{"status"}, []types.Type{types.String}, []schema.ArgKind{schema.Required}, nil, "")
	return s
}

// seed scenario 1: now => @com.twitter.post(status="hi")
func TestTypeCheckDeclarationActionSupplied(t *testing.T) {
	oracle := resolver.NewMemoryOracle()
	oracle.RegisterFunction("com.twitter", "post", ast.KindAction, twitterPostSchema())

	c := New(oracle, false, false, nil)
	env := c.env(newRunID(), nil)
	env.Ctx = context.Background()

	decl := &ast.Declaration{
		Name: "post_hi",
		Type: ast.DeclAction,
		ActionValue: &ast.Invocation{
			Selector: ast.Selector{Kind: "com.twitter"},
			Channel:  "post",
			InParams: []ast.InputParam{{Name: "status", Value: ast.StringValue{Value: "hi"}}},
		},
	}
	sc := scope.New()

	err := c.TypeCheckDeclaration(env, decl, sc)
	require.NoError(t, err)
	assert.Empty(t, sc.InReq(), "status was supplied at the call site, so nothing is left pending")

	sch, ok := sc.GetGlobal("post_hi")
	require.True(t, ok)
	assert.Same(t, decl.Schema, sch)
}

// When a declaration's own invocation leaves a required input
// unsupplied, checking still succeeds and the name stays a required
// input of the declaration's published schema rather than being
// rejected outright.
func TestTypeCheckDeclarationActionUnsuppliedIsPending(t *testing.T) {
	oracle := resolver.NewMemoryOracle()
	oracle.RegisterFunction("com.twitter", "post", ast.KindAction, twitterPostSchema())

	c := New(oracle, false, false, nil)
	env := c.env(newRunID(), nil)
	env.Ctx = context.Background()

	decl := &ast.Declaration{
		Name: "post_something",
		Type: ast.DeclAction,
		ActionValue: &ast.Invocation{
			Selector: ast.Selector{Kind: "com.twitter"},
			Channel:  "post",
		},
	}
	sc := scope.New()

	err := c.TypeCheckDeclaration(env, decl, sc)
	require.NoError(t, err)
	assert.Contains(t, decl.Schema.InReq, "status")
}
