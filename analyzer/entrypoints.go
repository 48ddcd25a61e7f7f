package analyzer

import (
	"github.com/thingpedia/tt-semcheck/ast"
	"github.com/thingpedia/tt-semcheck/checker"
	"github.com/thingpedia/tt-semcheck/expression"
	"github.com/thingpedia/tt-semcheck/plan"
	"github.com/thingpedia/tt-semcheck/schema"
	"github.com/thingpedia/tt-semcheck/scope"
)

// TypeCheckInput checks in_params against sch in a standalone context
// (spec §6 "typeCheckInput"), without the declaration-lifting behavior
// TypeCheckDeclaration layers on top.
func TypeCheckInput(params []ast.InputParam, sch *schema.Schema, sc *scope.Scope) error {
	return checker.CheckInputParams(params, sch, sc, expression.TypeForValue, false)
}

// TypeCheckOutput publishes every one of sch's outputs into sc (spec §6
// "typeCheckOutput") — the half of primitive checking TypeCheckInput
// does not cover.
func TypeCheckOutput(sch *schema.Schema, sc *scope.Scope) {
	for name, t := range sch.Out {
		sc.AddLocal(name, t)
	}
}

// TypeCheckTable runs the Composer over a single table constructor
// outside of a Declaration or Rule (spec §6 "typeCheckTable").
func TypeCheckTable(env expression.Env, table ast.Table, sc *scope.Scope) error {
	return plan.CheckTable(env, table, sc)
}

// TypeCheckStream runs the Composer over a single stream constructor
// (spec §6 "typeCheckStream").
func TypeCheckStream(env expression.Env, stream ast.Stream, sc *scope.Scope) error {
	return plan.CheckStream(env, stream, sc)
}

// TypeCheckFilter exposes the Expression Checker's boolean-expression
// entry point (spec §6 "typeCheckFilter") without requiring callers to
// import package expression directly.
func TypeCheckFilter(env expression.Env, expr ast.BooleanExpression, sch *schema.Schema, sc *scope.Scope) error {
	return expression.TypeCheckFilter(env, expr, sch, sc)
}
