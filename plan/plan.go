// Package plan implements the Composer (spec §4.8, C8): the recursive
// descent over table and stream constructors that drives the Schema
// Resolver, the Primitive Checker, and the Expression Checker over each
// node, mutating a freshly cloned schema per node the way the Thingpedia
// function it wraps would produce it.
package plan

import (
	"github.com/thingpedia/tt-semcheck/ast"
	"github.com/thingpedia/tt-semcheck/checker"
	"github.com/thingpedia/tt-semcheck/expression"
	"github.com/thingpedia/tt-semcheck/resolver"
	"github.com/thingpedia/tt-semcheck/schema"
	"github.com/thingpedia/tt-semcheck/scope"
	"github.com/thingpedia/tt-semcheck/ttkind"
	"github.com/thingpedia/tt-semcheck/types"
)

// resolveVarRefSchema looks up a VarRef table/stream's schema: first as a
// Declaration already bound into scope as a global, falling back to the
// memory-schema oracle for a runtime-declared memory table (spec §4.5,
// §4.8 VarRefTable/VarRefStream case).
func resolveVarRefSchema(env expression.Env, sc *scope.Scope, name string, useMeta bool) (*schema.Schema, error) {
	if sch, ok := sc.GetGlobal(name); ok {
		return sch.Clone(), nil
	}
	return resolver.EnsureVarRefSchema(env.Ctx, env.Oracle, name, useMeta)
}

// checkInParams runs the Primitive Checker over params against sch in sc,
// using the Expression Checker's value typer.
func checkInParams(params []ast.InputParam, sch *schema.Schema, sc *scope.Scope) error {
	return checker.CheckInputParams(params, sch, sc, expression.TypeForValue, false)
}

// requireNumber resolves expr and fails ErrInvalidRange unless it types
// as Number (spec §4.8 Window/Sequence: "counted window ... Number").
func requireNumber(env expression.Env, expr ast.ScalarExpression, sch *schema.Schema, sc *scope.Scope) error {
	t, err := expression.ResolveScalarExpression(env, expr, sch, sc)
	if err != nil {
		return err
	}
	if t.Kind() != types.KindNumber {
		return ttkind.ErrInvalidRange.New(t.String())
	}
	return nil
}

// requireDate resolves expr and fails ErrInvalidTimeRange unless it types
// as Date (spec §4.8 TimeSeries/History: "time-based window ... Date").
func requireDate(env expression.Env, expr ast.ScalarExpression, sch *schema.Schema, sc *scope.Scope) error {
	t, err := expression.ResolveScalarExpression(env, expr, sch, sc)
	if err != nil {
		return err
	}
	if t.Kind() != types.KindDate {
		return ttkind.ErrInvalidTimeRange.New(t.String())
	}
	return nil
}

// requireMeasureMs resolves expr and fails ErrInvalidTimeRange unless it
// types as a millisecond Measure (spec §4.8 TimeSeries/History delta).
func requireMeasureMs(env expression.Env, expr ast.ScalarExpression, sch *schema.Schema, sc *scope.Scope) error {
	t, err := expression.ResolveScalarExpression(env, expr, sch, sc)
	if err != nil {
		return err
	}
	if t.Kind() != types.KindMeasure || t.Unit() != "ms" {
		return ttkind.ErrInvalidTimeRange.New(t.String())
	}
	return nil
}

// requireTime resolves expr and fails ErrInvalidTimeRange unless it types
// as Time (spec §4.8 AtTimer).
func requireTime(env expression.Env, expr ast.ScalarExpression, sch *schema.Schema, sc *scope.Scope) error {
	t, err := expression.ResolveScalarExpression(env, expr, sch, sc)
	if err != nil {
		return err
	}
	if t.Kind() != types.KindTime {
		return ttkind.ErrInvalidTimeRange.New(t.String())
	}
	return nil
}
