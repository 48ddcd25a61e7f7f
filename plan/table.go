package plan

import (
	"github.com/thingpedia/tt-semcheck/ast"
	"github.com/thingpedia/tt-semcheck/expression"
	"github.com/thingpedia/tt-semcheck/resolver"
	"github.com/thingpedia/tt-semcheck/schema"
	"github.com/thingpedia/tt-semcheck/scope"
	"github.com/thingpedia/tt-semcheck/ttkind"
	"github.com/thingpedia/tt-semcheck/types"
	"github.com/thingpedia/tt-semcheck/types/operators"

	"golang.org/x/sync/errgroup"
)

// CheckTable type-checks table against sc, filling table's schema and
// every descendant's schema with a fresh clone on entry (spec §4.8, §8
// universal invariant). sc is mutated in place to publish the table's
// exposed outputs as locals.
func CheckTable(env expression.Env, table ast.Table, sc *scope.Scope) error {
	switch t := table.(type) {
	case *ast.TableInvocation:
		return checkTableInvocation(env, t, sc)
	case *ast.VarRefTable:
		return checkVarRefTable(env, t, sc)
	case *ast.TableFilter:
		return checkTableFilter(env, t, sc)
	case *ast.Projection:
		return checkProjection(env, t, sc)
	case *ast.TableAlias:
		return checkTableAlias(env, t, sc)
	case *ast.Aggregation:
		return checkAggregation(env, t, sc)
	case *ast.ArgMinMax:
		return checkArgMinMax(env, t, sc)
	case *ast.Join:
		return checkJoin(env, t, sc)
	case *ast.Window:
		return checkRestriction(env, t.Table, t, &t.Base, &t.Delta, sc, true)
	case *ast.Sequence:
		return checkRestriction(env, t.Table, t, &t.Base, &t.Delta, sc, true)
	case *ast.TimeSeries:
		return checkRestriction(env, t.Table, t, &t.Base, &t.Delta, sc, false)
	case *ast.History:
		return checkRestriction(env, t.Table, t, &t.Base, &t.Delta, sc, false)
	case *ast.Compute:
		return checkCompute(env, t, sc)
	case *ast.Sort:
		return checkSort(env, t, sc)
	case *ast.Index:
		return checkIndex(env, t, sc)
	case *ast.Slice:
		return checkSlice(env, t, sc)
	default:
		return ttkind.ErrNotImplemented.New("table constructor")
	}
}

func checkTableInvocation(env expression.Env, t *ast.TableInvocation, sc *scope.Scope) error {
	inv := t.Invocation
	if err := resolver.EnsureSchema(env.Ctx, env.Oracle, inv, ast.KindQuery, env.UseMeta, env.Classes); err != nil {
		return err
	}
	sch := inv.Schema.Clone()
	t.SetSchema(sch)

	if err := checkInParams(inv.InParams, sch, sc); err != nil {
		return err
	}
	publishOutputs(sch, sc)

	if inv.Filter != nil {
		if err := expression.TypeCheckFilter(env, inv.Filter, sch, sc); err != nil {
			return err
		}
	}
	return nil
}

func checkVarRefTable(env expression.Env, t *ast.VarRefTable, sc *scope.Scope) error {
	sch, err := resolveVarRefSchema(env, sc, t.Name, env.UseMeta)
	if err != nil {
		return err
	}
	t.SetSchema(sch)

	if err := checkInParams(t.InParams, sch, sc); err != nil {
		return err
	}
	publishOutputs(sch, sc)
	return nil
}

func checkTableFilter(env expression.Env, t *ast.TableFilter, sc *scope.Scope) error {
	if err := CheckTable(env, t.Table, sc); err != nil {
		return err
	}
	sch := t.Table.GetSchema()
	t.SetSchema(sch)
	return expression.TypeCheckFilter(env, t.Filter, sch, sc)
}

func checkProjection(env expression.Env, t *ast.Projection, sc *scope.Scope) error {
	if err := CheckTable(env, t.Table, sc); err != nil {
		return err
	}
	sch := t.Table.GetSchema()
	if err := sch.ResolveProjection(t.Args, sc); err != nil {
		return err
	}
	t.SetSchema(sch)
	return nil
}

func checkTableAlias(env expression.Env, t *ast.TableAlias, sc *scope.Scope) error {
	if err := CheckTable(env, t.Table, sc); err != nil {
		return err
	}
	sc.Prefix(t.Name)
	sch := t.Table.GetSchema().Alias(t.Name)
	t.SetSchema(sch)
	if err := sc.AddGlobal(t.Name, sch); err != nil {
		return err
	}
	return nil
}

func checkAggregation(env expression.Env, t *ast.Aggregation, sc *scope.Scope) error {
	if err := CheckTable(env, t.Table, sc); err != nil {
		return err
	}
	sch := t.Table.GetSchema()

	var fieldType types.Type
	if t.Field == "*" {
		if t.Op != "count" {
			return ttkind.ErrInvalidAggregationField.New(t.Field)
		}
		fieldType = types.Any
	} else {
		ft, ok := sch.Out[t.Field]
		if !ok {
			return ttkind.ErrInvalidAggregationField.New(t.Field)
		}
		fieldType = ft
	}

	resultType, err := operators.Resolve(operators.Aggregations, t.Op, []types.Type{fieldType})
	if err != nil {
		return ttkind.ErrInvalidAggregation.New(t.Op, fieldType.String())
	}

	sch.CleanOutput(sc)
	name := t.Op
	if t.Alias != nil {
		name = *t.Alias
	} else if t.Field != "*" {
		name = t.Field
	}
	sch.AddOutput(name, resultType, sc)
	t.SetSchema(sch)
	return nil
}

func checkArgMinMax(env expression.Env, t *ast.ArgMinMax, sc *scope.Scope) error {
	if err := CheckTable(env, t.Table, sc); err != nil {
		return err
	}
	sch := t.Table.GetSchema()

	fieldType, ok := sch.Out[t.Field]
	if !ok {
		return ttkind.ErrInvalidArgMinMaxField.New(t.Field)
	}
	if !operators.Orderable(fieldType) {
		return ttkind.ErrInvalidArgMinMaxField.New(t.Field)
	}
	if _, err := operators.Resolve(operators.ArgMinMax, t.Op, []types.Type{fieldType}); err != nil {
		return ttkind.ErrInvalidArgMinMaxField.New(t.Field)
	}

	if err := requireNumber(env, t.Base, sch, sc); err != nil {
		return err
	}
	if err := requireNumber(env, t.Limit, sch, sc); err != nil {
		return err
	}

	t.SetSchema(sch)
	return nil
}

// checkJoin checks both sides of a table-table Join concurrently in
// independent scope clones (spec §5: joins are the one place the
// Composer's descent is not strictly sequential), then merges the child
// scopes back into sc in deterministic lhs-then-rhs order regardless of
// which goroutine finished first.
func checkJoin(env expression.Env, t *ast.Join, sc *scope.Scope) error {
	lhsScope := sc.Clone()
	rhsScope := sc.Clone()

	g, gctx := errgroup.WithContext(env.Ctx)
	g.Go(func() error {
		lhsEnv := env
		lhsEnv.Ctx = gctx
		return CheckTable(lhsEnv, t.LHS, lhsScope)
	})
	g.Go(func() error {
		rhsEnv := env
		rhsEnv.Ctx = gctx
		return CheckTable(rhsEnv, t.RHS, rhsScope)
	})
	if err := g.Wait(); err != nil {
		return err
	}

	joined := schema.ResolveJoin(t.LHS.GetSchema(), t.RHS.GetSchema())

	sc.Merge(lhsScope)
	sc.Merge(rhsScope)

	if env.StrictConflicts {
		markSharedConflicts(sc, lhsScope, rhsScope)
	}

	if err := checkInParams(t.InParams, joined, sc); err != nil {
		return err
	}
	t.SetSchema(joined)
	return nil
}

// markSharedConflicts marks every local name bound on both sides of a
// join as ambiguous (spec §9 open question: addConflict wired in,
// gated by config.strict_conflicts).
func markSharedConflicts(sc, lhsScope, rhsScope *scope.Scope) {
	rhsNames := map[string]bool{}
	for _, name := range rhsScope.Names() {
		rhsNames[name] = true
	}
	for _, name := range lhsScope.Names() {
		if rhsNames[name] {
			sc.AddConflict(name)
		}
	}
}

// checkRestriction implements the four range-restricting table
// constructors (Window, Sequence, TimeSeries, History): none changes the
// underlying schema, only validates that base/delta type appropriately
// for a counted (Number/Number) or time-based (Date/Measure(ms)) range
// (spec §4.8).
func checkRestriction(env expression.Env, child ast.Table, node ast.Table, base, delta *ast.ScalarExpression, sc *scope.Scope, counted bool) error {
	if err := CheckTable(env, child, sc); err != nil {
		return err
	}
	sch := child.GetSchema()

	if counted {
		if err := requireNumber(env, *base, sch, sc); err != nil {
			return err
		}
		if err := requireNumber(env, *delta, sch, sc); err != nil {
			return err
		}
	} else {
		if err := requireDate(env, *base, sch, sc); err != nil {
			return err
		}
		if err := requireMeasureMs(env, *delta, sch, sc); err != nil {
			return err
		}
	}

	node.SetSchema(sch)
	return nil
}

func checkCompute(env expression.Env, t *ast.Compute, sc *scope.Scope) error {
	if err := CheckTable(env, t.Table, sc); err != nil {
		return err
	}
	sch := t.Table.GetSchema()

	resultType, err := expression.ResolveScalarExpression(env, t.Expr, sch, sc)
	if err != nil {
		return err
	}

	sch.CleanOutput(sc)
	name := "result"
	if t.Alias != nil {
		name = *t.Alias
	}
	sch.AddOutput(name, resultType, sc)
	t.SetSchema(sch)
	return nil
}

func checkSort(env expression.Env, t *ast.Sort, sc *scope.Scope) error {
	if err := CheckTable(env, t.Table, sc); err != nil {
		return err
	}
	sch := t.Table.GetSchema()
	if _, ok := sch.Out[t.Field]; !ok {
		return ttkind.ErrInvalidFieldName.New(t.Field)
	}
	t.SetSchema(sch)
	return nil
}

func checkIndex(env expression.Env, t *ast.Index, sc *scope.Scope) error {
	if err := CheckTable(env, t.Table, sc); err != nil {
		return err
	}
	sch := t.Table.GetSchema()
	if err := requireNumber(env, t.Base, sch, sc); err != nil {
		return err
	}
	t.SetSchema(sch)
	return nil
}

func checkSlice(env expression.Env, t *ast.Slice, sc *scope.Scope) error {
	if err := CheckTable(env, t.Table, sc); err != nil {
		return err
	}
	sch := t.Table.GetSchema()
	if err := requireNumber(env, t.Base, sch, sc); err != nil {
		return err
	}
	if err := requireNumber(env, t.Limit, sch, sc); err != nil {
		return err
	}
	t.SetSchema(sch)
	return nil
}

// publishOutputs binds every output of sch as a local in sc, as a leaf
// invocation's outputs become visible immediately (spec §4.8).
func publishOutputs(sch *schema.Schema, sc *scope.Scope) {
	for name, t := range sch.Out {
		sc.AddLocal(name, t)
	}
}
