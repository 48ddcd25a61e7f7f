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

func weatherCurrentSchema() *schema.Schema {
	s, _ := schema.New(
		[]string{"location", "temperature"},
		[]types.Type{types.Location, types.Measure("C")},
		[]schema.ArgKind{schema.Required, schema.Output},
		nil, "",
	)
	return s
}

// seed scenario 1 (rule form): now => @com.twitter.post(status="hi")
func TestTypeCheckRuleNotifyFreeActionSucceeds(t *testing.T) {
	oracle := resolver.NewMemoryOracle()
	oracle.RegisterFunction("com.twitter", "post", ast.KindAction, twitterPostSchema())

	c := New(oracle, false, false, nil)
	env := c.env(newRunID(), nil)
	env.Ctx = context.Background()

	rule := &ast.Rule{
		Actions: []*ast.Invocation{{
			Selector: ast.Selector{Kind: "com.twitter"},
			Channel:  "post",
			InParams: []ast.InputParam{{Name: "status", Value: ast.StringValue{Value: "hi"}}},
		}},
	}
	sc := scope.New()

	err := c.TypeCheckRule(env, rule, sc)
	require.NoError(t, err)
}

// seed scenario 2: monitor @org.thingpedia.weather.current(location=
// $context.location.current_location) => notify
func TestTypeCheckRuleMonitorWithContextVarAndNotify(t *testing.T) {
	oracle := resolver.NewMemoryOracle()
	oracle.RegisterFunction("org.thingpedia.weather", "current", ast.KindQuery, weatherCurrentSchema())

	c := New(oracle, false, false, nil)
	env := c.env(newRunID(), nil)
	env.Ctx = context.Background()

	table := &ast.TableInvocation{Invocation: &ast.Invocation{
		Selector: ast.Selector{Kind: "org.thingpedia.weather"},
		Channel:  "current",
		InParams: []ast.InputParam{{Name: "location", Value: ast.VarRefValue{Name: "$context.location.current_location"}}},
	}}
	rule := &ast.Rule{
		Stream: &ast.Monitor{Table: table},
		Actions: []*ast.Invocation{{
			Selector: ast.Selector{IsBuiltin: true},
			Channel:  "notify",
		}},
	}
	sc := scope.New()

	err := c.TypeCheckRule(env, rule, sc)
	require.NoError(t, err)
	assert.Equal(t, rule.Stream.GetSchema(), table.GetSchema())
}

// seed scenario 5: @com.twitter.post(status=$event) inside a rule with
// no stream/table fails VariableNotInScope.
func TestTypeCheckRuleEventWithoutStreamFails(t *testing.T) {
	oracle := resolver.NewMemoryOracle()
	oracle.RegisterFunction("com.twitter", "post", ast.KindAction, twitterPostSchema())

	c := New(oracle, false, false, nil)
	env := c.env(newRunID(), nil)
	env.Ctx = context.Background()

	rule := &ast.Rule{
		Actions: []*ast.Invocation{{
			Selector: ast.Selector{Kind: "com.twitter"},
			Channel:  "post",
			InParams: []ast.InputParam{{Name: "status", Value: ast.EventValue{}}},
		}},
	}
	sc := scope.New()

	err := c.TypeCheckRule(env, rule, sc)
	assert.Error(t, err)
}

// A rule with only a builtin notify action and no stream/table fails
// NoGetFunction (spec §8 boundary behavior).
func TestTypeCheckRuleNotifyOnlyFails(t *testing.T) {
	oracle := resolver.NewMemoryOracle()

	c := New(oracle, false, false, nil)
	env := c.env(newRunID(), nil)
	env.Ctx = context.Background()

	rule := &ast.Rule{
		Actions: []*ast.Invocation{{
			Selector: ast.Selector{IsBuiltin: true},
			Channel:  "notify",
		}},
	}
	sc := scope.New()

	err := c.TypeCheckRule(env, rule, sc)
	assert.Error(t, err)
}

// Every reached invocation gets Undefined(remote=true) slots appended
// for its still-unsupplied required inputs (spec §4.9).
func TestTypeCheckRuleAppendsUndefinedSlots(t *testing.T) {
	oracle := resolver.NewMemoryOracle()
	oracle.RegisterFunction("com.weather", "current", ast.KindQuery, weatherCurrentSchema())
	oracle.RegisterFunction("com.twitter", "post", ast.KindAction, twitterPostSchema())

	c := New(oracle, false, false, nil)
	env := c.env(newRunID(), nil)
	env.Ctx = context.Background()

	table := &ast.TableInvocation{Invocation: &ast.Invocation{
		Selector: ast.Selector{Kind: "com.weather"},
		Channel:  "current",
	}}
	rule := &ast.Rule{
		Table: table,
		Actions: []*ast.Invocation{{
			Selector: ast.Selector{Kind: "com.twitter"},
			Channel:  "post",
		}},
	}
	sc := scope.New()

	err := c.TypeCheckRule(env, rule, sc)
	require.NoError(t, err)

	foundTableSlot := false
	for _, p := range table.Invocation.InParams {
		if p.Name == "location" {
			if u, ok := p.Value.(ast.UndefinedValue); ok && u.Remote {
				foundTableSlot = true
			}
		}
	}
	assert.True(t, foundTableSlot, "unsupplied required input gets an Undefined(remote=true) slot")

	foundActionSlot := false
	for _, p := range rule.Actions[0].InParams {
		if p.Name == "status" {
			if u, ok := p.Value.(ast.UndefinedValue); ok && u.Remote {
				foundActionSlot = true
			}
		}
	}
	assert.True(t, foundActionSlot)
}
