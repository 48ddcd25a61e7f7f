package resolver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thingpedia/tt-semcheck/ast"
	"github.com/thingpedia/tt-semcheck/schema"
	"github.com/thingpedia/tt-semcheck/types"
)

func twitterPostSchema() *schema.Schema {
	s, _ := schema.New(
		[]string{"status"},
		[]types.Type{types.String},
		[]schema.ArgKind{schema.Required},
		nil, "",
	)
	return s
}

func TestEnsureSchemaBuiltinNotify(t *testing.T) {
	inv := &ast.Invocation{Selector: ast.Selector{IsBuiltin: true}, Channel: "notify"}
	err := EnsureSchema(context.Background(), NewMemoryOracle(), inv, ast.KindAction, false, nil)
	require.NoError(t, err)
	assert.Empty(t, inv.Schema.Args)
}

func TestEnsureSchemaBuiltinUnknownChannel(t *testing.T) {
	inv := &ast.Invocation{Selector: ast.Selector{IsBuiltin: true}, Channel: "frobnicate"}
	err := EnsureSchema(context.Background(), NewMemoryOracle(), inv, ast.KindAction, false, nil)
	assert.Error(t, err)
}

func TestEnsureSchemaBuiltinWrongPrimitiveKind(t *testing.T) {
	inv := &ast.Invocation{Selector: ast.Selector{IsBuiltin: true}, Channel: "notify"}
	err := EnsureSchema(context.Background(), NewMemoryOracle(), inv, ast.KindQuery, false, nil)
	assert.Error(t, err)
}

func TestEnsureSchemaAlreadyAttachedIsNoop(t *testing.T) {
	sch := twitterPostSchema()
	inv := &ast.Invocation{Schema: sch}
	err := EnsureSchema(context.Background(), NewMemoryOracle(), inv, ast.KindAction, false, nil)
	require.NoError(t, err)
	assert.Same(t, sch, inv.Schema)
}

func TestEnsureSchemaClassAlias(t *testing.T) {
	oracle := NewMemoryOracle()
	oracle.RegisterFunction("com.twitter", "post", ast.KindAction, twitterPostSchema())

	inv := &ast.Invocation{Selector: ast.Selector{Kind: "my.twitter.alias"}, Channel: "post"}
	classes := map[string]ast.ClassDef{"my.twitter.alias": {Name: "my.twitter.alias", Extends: "com.twitter"}}

	err := EnsureSchema(context.Background(), oracle, inv, ast.KindAction, false, classes)
	require.NoError(t, err)
	require.NotNil(t, inv.Schema)
	assert.Contains(t, inv.Schema.InReq, "status")
}

func TestEnsureVarRefSchemaUnknown(t *testing.T) {
	_, err := EnsureVarRefSchema(context.Background(), NewMemoryOracle(), "my_table", false)
	assert.Error(t, err)
}

func TestCachingOracleReturnsIndependentClones(t *testing.T) {
	oracle := NewMemoryOracle()
	oracle.RegisterFunction("com.twitter", "post", ast.KindAction, twitterPostSchema())
	caching, err := NewCachingOracle(oracle, 10)
	require.NoError(t, err)

	s1, err := caching.SchemaForSelector(context.Background(), "com.twitter", "post", ast.KindAction, false, nil)
	require.NoError(t, err)
	s2, err := caching.SchemaForSelector(context.Background(), "com.twitter", "post", ast.KindAction, false, nil)
	require.NoError(t, err)

	assert.NotSame(t, s1, s2)
	s1.InReq["status"] = types.Number
	assert.Equal(t, types.String, s2.InReq["status"])
}
