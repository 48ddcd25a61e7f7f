package checker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thingpedia/tt-semcheck/ast"
	"github.com/thingpedia/tt-semcheck/schema"
	"github.com/thingpedia/tt-semcheck/scope"
	"github.com/thingpedia/tt-semcheck/types"
)

func literalTyper(v ast.Value, sc *scope.Scope) (types.Type, error) {
	if ref, ok := v.(ast.VarRefValue); ok {
		return sc.Get(ref.Name)
	}
	t, _ := ast.LiteralType(v)
	return t, nil
}

func twitterPostSchema() *schema.Schema {
	s, _ := schema.New(
		[]string{"status"},
		[]types.Type{types.String},
		[]schema.ArgKind{schema.Required},
		nil, "",
	)
	return s
}

func TestCheckInputParamsSuccess(t *testing.T) {
	sch := twitterPostSchema()
	sc := scope.New()
	params := []ast.InputParam{{Name: "status", Value: ast.StringValue{Value: "hi"}}}

	err := CheckInputParams(params, sch, sc, literalTyper, false)
	require.NoError(t, err)
	assert.Empty(t, sc.InReq())
}

func TestCheckInputParamsUnknownName(t *testing.T) {
	sch := twitterPostSchema()
	sc := scope.New()
	params := []ast.InputParam{{Name: "bogus", Value: ast.StringValue{Value: "x"}}}

	err := CheckInputParams(params, sch, sc, literalTyper, false)
	assert.Error(t, err)
}

func TestCheckInputParamsDuplicate(t *testing.T) {
	sch := twitterPostSchema()
	sc := scope.New()
	params := []ast.InputParam{
		{Name: "status", Value: ast.StringValue{Value: "a"}},
		{Name: "status", Value: ast.StringValue{Value: "b"}},
	}

	err := CheckInputParams(params, sch, sc, literalTyper, false)
	assert.Error(t, err)
}

func TestCheckInputParamsTypeMismatch(t *testing.T) {
	sch := twitterPostSchema()
	sc := scope.New()
	params := []ast.InputParam{{Name: "status", Value: ast.BooleanValue{Value: true}}}

	err := CheckInputParams(params, sch, sc, literalTyper, false)
	assert.Error(t, err)
}

func TestCheckInputParamsPushesUnsuppliedRequired(t *testing.T) {
	sch := twitterPostSchema()
	sc := scope.New()

	err := CheckInputParams(nil, sch, sc, literalTyper, false)
	require.NoError(t, err)
	assert.Equal(t, types.String, sc.InReq()["status"])
}

func TestCheckInputParamsDeclarationLiftsPendingInReq(t *testing.T) {
	sch := twitterPostSchema()
	sc := scope.New()
	sc.PushInReq("retry_count", types.Number)

	err := CheckInputParams(nil, sch, sc, literalTyper, true)
	require.NoError(t, err)
	assert.Contains(t, sch.InReq, "retry_count")
}

func TestCheckInputParamsContactNameRetag(t *testing.T) {
	s, _ := schema.New(
		[]string{"to"},
		[]types.Type{types.Entity("tt:phone_number")},
		[]schema.ArgKind{schema.Required},
		nil, "",
	)
	sc := scope.New()
	params := []ast.InputParam{{Name: "to", Value: ast.EntityValue{EntityType: "tt:username", Value: "bob"}}}

	// tt:username does not directly assign to tt:phone_number, but the
	// contextual retag to tt:contact_name is not itself assignable to
	// tt:phone_number either (distinct Entity kinds never cross); this
	// documents that the retag changes the *value's* reported type
	// without inventing a spurious match.
	err := CheckInputParams(params, s, sc, literalTyper, false)
	assert.Error(t, err)
}

func TestCheckInputParamsLambdaRename(t *testing.T) {
	sch := twitterPostSchema()
	sc := scope.New()
	sc.InitLambdaArgs([]string{"p"}, []types.Type{types.String})

	params := []ast.InputParam{{Name: "status", Value: ast.VarRefValue{Name: "p"}}}
	err := CheckInputParams(params, sch, sc, literalTyper, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"status"}, sc.LambdaAliases("p"))
}
