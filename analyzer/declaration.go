package analyzer

import (
	"github.com/sirupsen/logrus"

	"github.com/thingpedia/tt-semcheck/ast"
	"github.com/thingpedia/tt-semcheck/checker"
	"github.com/thingpedia/tt-semcheck/expression"
	"github.com/thingpedia/tt-semcheck/plan"
	"github.com/thingpedia/tt-semcheck/resolver"
	"github.com/thingpedia/tt-semcheck/schema"
	"github.com/thingpedia/tt-semcheck/scope"
	"github.com/thingpedia/tt-semcheck/ttkind"
	"github.com/thingpedia/tt-semcheck/types"
)

// TypeCheckDeclaration routes decl's body through the matching
// stream/table/action checker with isDeclaration lifting active, then
// folds the result into a global binding (spec §4.9):
//
//   - InitLambdaArgs seeds decl.Args as locals (and, for a table/stream-
//     typed arg, as an empty-schema global — spec §4.4 Scope.assign).
//   - the body is composed with isDeclaration=true, so every required
//     input left unsupplied at composition time becomes a parameter of
//     the declaration itself rather than an error.
//   - lambda renames recorded during composition are folded back in as
//     additional optional aliases of the same slot.
//   - scope.clean(args) strips the declaration's own lambda parameters
//     from globals before the final schema is published under its name.
func (c *Checker) TypeCheckDeclaration(env expression.Env, decl *ast.Declaration, sc *scope.Scope) error {
	c.Logger.WithField("name", decl.Name).Debug("declaration: begin")

	sc.InitLambdaArgs(decl.Args, decl.ArgTypes)
	for i, name := range decl.Args {
		if i >= len(decl.ArgTypes) {
			continue
		}
		switch decl.ArgTypes[i].Kind() {
		case types.KindStreamDecl, types.KindTableDecl:
			if err := sc.AddGlobal(name, &schema.Schema{}); err != nil {
				return err
			}
		}
	}

	var finalSchema *schema.Schema
	var inParams []ast.InputParam

	switch decl.Type {
	case ast.DeclStream:
		if err := plan.CheckStream(env, decl.StreamValue, sc); err != nil {
			return err
		}
		finalSchema = decl.StreamValue.GetSchema()

	case ast.DeclTable:
		if err := plan.CheckTable(env, decl.TableValue, sc); err != nil {
			return err
		}
		finalSchema = decl.TableValue.GetSchema()

	case ast.DeclAction:
		if err := resolver.EnsureSchema(env.Ctx, env.Oracle, decl.ActionValue, ast.KindAction, env.UseMeta, env.Classes); err != nil {
			return err
		}
		finalSchema = decl.ActionValue.Schema.Clone()
		inParams = decl.ActionValue.InParams

	default:
		return ttkind.ErrNotImplemented.New("declaration type")
	}

	if err := checker.CheckInputParams(inParams, finalSchema, sc, expression.TypeForValue, true); err != nil {
		return err
	}

	applyLambdaRenames(finalSchema, sc, decl)
	decl.Schema = finalSchema

	sc.Clean(decl.Args...)
	if err := sc.AddGlobal(decl.Name, decl.Schema); err != nil {
		return err
	}

	c.Logger.WithField("name", decl.Name).Debug("declaration: done")
	return nil
}

// applyLambdaRenames exposes each lambda argument's declared type under
// every alias name it was actually bound through during composition
// (spec §4.9: "apply lambda renames"), as an additional optional input
// of the same slot — so a later caller of the declaration may supply the
// parameter under any name its body bound it to.
func applyLambdaRenames(sch *schema.Schema, sc *scope.Scope, decl *ast.Declaration) {
	for i, arg := range decl.Args {
		var argType types.Type
		if i < len(decl.ArgTypes) {
			argType = decl.ArgTypes[i]
		}
		for _, alias := range sc.LambdaAliases(arg) {
			if sch.HasArg(alias) {
				continue
			}
			sch.AddInput(alias, argType, false)
		}
	}
}
