package expression

import (
	"context"

	"github.com/thingpedia/tt-semcheck/ast"
	"github.com/thingpedia/tt-semcheck/checker"
	"github.com/thingpedia/tt-semcheck/resolver"
	"github.com/thingpedia/tt-semcheck/schema"
	"github.com/thingpedia/tt-semcheck/scope"
	"github.com/thingpedia/tt-semcheck/ttkind"
	"github.com/thingpedia/tt-semcheck/types"
	"github.com/thingpedia/tt-semcheck/types/operators"
)

// Env bundles the collaborators TypeCheckFilter needs to resolve an
// External sub-query's schema (spec §4.6: "External ... ensureSchema as
// a query").
type Env struct {
	Ctx     context.Context
	Oracle  resolver.Oracle
	UseMeta bool
	Classes map[string]ast.ClassDef

	// StrictConflicts enables marking a Join's shared field names as
	// ambiguous (spec §9 open question: addConflict is wired in, gated by
	// config so existing programs that rely on the permissive behavior
	// keep working until they opt in).
	StrictConflicts bool
}

// TypeCheckFilter type-checks expr against sch and sc, recording each
// Atom's resolved type on the AST node (spec §4.6). And/Or recurse into
// every operand regardless of short-circuiting, since an External
// operand has a type-checking side effect (its own schema resolution)
// that must happen even if an earlier operand already determined the
// boolean result.
func TypeCheckFilter(env Env, expr ast.BooleanExpression, sch *schema.Schema, sc *scope.Scope) error {
	switch e := expr.(type) {
	case ast.True, ast.False:
		return nil

	case ast.And:
		for _, op := range e.Operands {
			if err := TypeCheckFilter(env, op, sch, sc); err != nil {
				return err
			}
		}
		return nil

	case ast.Or:
		for _, op := range e.Operands {
			if err := TypeCheckFilter(env, op, sch, sc); err != nil {
				return err
			}
		}
		return nil

	case ast.Not:
		return TypeCheckFilter(env, e.Operand, sch, sc)

	case *ast.Atom:
		return typeCheckAtom(env, e, sch, sc)

	case *ast.External:
		return typeCheckExternal(env, e, sc)

	default:
		return ttkind.ErrNotImplemented.New("filter expression")
	}
}

// resolveAtomLHS finds name in the primitive's own signature first
// (inReq, inOpt, out, in that order of plausibility — all three are
// disjoint) and falls back to the lexical scope (spec §4.6: "resolve
// name in schema.inReq ∪ schema.inOpt ∪ schema.out, else in scope").
func resolveAtomLHS(name string, sch *schema.Schema, sc *scope.Scope) (types.Type, error) {
	if t, ok := sch.TypeOf(name); ok {
		return t, nil
	}
	return sc.Get(name)
}

func typeCheckAtom(env Env, a *ast.Atom, sch *schema.Schema, sc *scope.Scope) error {
	lhsType, err := resolveAtomLHS(a.Name, sch, sc)
	if err != nil {
		return err
	}

	value := a.Value
	rhsType, err := TypeForValue(value, sc)
	if err != nil {
		return err
	}

	resultType, err := operators.Resolve(operators.Comparisons, a.Op, []types.Type{lhsType, rhsType})
	if err != nil {
		return err
	}

	a.ResolvedType = &resultType
	a.ResolvedOperandType = &lhsType

	if ref, ok := value.(ast.VarRefValue); ok && sc.IsLambdaArg(ref.Name) {
		sc.UpdateLambdaArgs(ref.Name, a.Name)
	}

	return nil
}

func typeCheckExternal(env Env, e *ast.External, sc *scope.Scope) error {
	inv := &ast.Invocation{Selector: e.Selector, Channel: e.Channel, InParams: e.InParams, Schema: e.Schema}
	if err := resolver.EnsureSchema(env.Ctx, env.Oracle, inv, ast.KindQuery, env.UseMeta, env.Classes); err != nil {
		return err
	}
	e.Schema = inv.Schema

	if err := checker.CheckInputParams(e.InParams, e.Schema, sc, TypeForValue, false); err != nil {
		return err
	}

	if e.Filter == nil {
		return nil
	}
	return TypeCheckFilter(env, e.Filter, e.Schema, sc)
}
