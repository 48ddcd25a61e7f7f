package analyzer

import (
	"github.com/sirupsen/logrus"

	"github.com/thingpedia/tt-semcheck/ast"
	"github.com/thingpedia/tt-semcheck/checker"
	"github.com/thingpedia/tt-semcheck/expression"
	"github.com/thingpedia/tt-semcheck/plan"
	"github.com/thingpedia/tt-semcheck/resolver"
	"github.com/thingpedia/tt-semcheck/scope"
	"github.com/thingpedia/tt-semcheck/ttkind"
)

// TypeCheckRule checks rule's stream-or-table through the Composer (if
// present, setting hasEvent), then each action through the Primitive
// Checker in turn (spec §4.9, §5: "streams/tables are checked before
// actions"). Afterward, every primitive reached has Undefined(remote:
// true) slots appended to in_params for any required input still
// unsupplied — a postcondition downstream slot-filling relies on. A rule
// whose only action is the builtin notify, with neither a stream nor a
// table, fails NoGetFunction.
func (c *Checker) TypeCheckRule(env expression.Env, rule *ast.Rule, sc *scope.Scope) error {
	hasQuery := rule.Stream != nil || rule.Table != nil

	if rule.Stream != nil {
		if err := plan.CheckStream(env, rule.Stream, sc); err != nil {
			return err
		}
		walkStreamInvocations(rule.Stream, appendUndefinedSlots)
	} else if rule.Table != nil {
		if err := plan.CheckTable(env, rule.Table, sc); err != nil {
			return err
		}
		walkTableInvocations(rule.Table, appendUndefinedSlots)
	}

	onlyNotify := true
	for _, action := range rule.Actions {
		if err := resolver.EnsureSchema(env.Ctx, env.Oracle, action, ast.KindAction, env.UseMeta, env.Classes); err != nil {
			return err
		}
		sch := action.Schema.Clone()
		action.Schema = sch

		if err := checker.CheckInputParams(action.InParams, sch, sc, expression.TypeForValue, false); err != nil {
			return err
		}
		appendUndefinedSlots(action)

		if !(action.Selector.IsBuiltin && action.Channel == "notify") {
			onlyNotify = false
		}
	}

	if !hasQuery && onlyNotify {
		return ttkind.ErrNoGetFunction.New()
	}

	c.Logger.WithFields(logrus.Fields{"actions": len(rule.Actions), "has_query": hasQuery}).Info("rule: checked")
	return nil
}

// appendUndefinedSlots computes inv's unsupplied required inputs from
// its own schema and appends an Undefined(remote=true) placeholder for
// each (spec §4.9).
func appendUndefinedSlots(inv *ast.Invocation) {
	if inv == nil || inv.Schema == nil {
		return
	}
	supplied := map[string]bool{}
	for _, p := range inv.InParams {
		supplied[p.Name] = true
	}
	for name := range inv.Schema.InReq {
		if !supplied[name] {
			inv.InParams = append(inv.InParams, ast.InputParam{Name: name, Value: ast.UndefinedValue{Remote: true}})
		}
	}
}

// walkTableInvocations visits every leaf Invocation reachable from t,
// in no particular order, calling fn on each.
func walkTableInvocations(t ast.Table, fn func(*ast.Invocation)) {
	switch n := t.(type) {
	case *ast.TableInvocation:
		fn(n.Invocation)
	case *ast.VarRefTable:
		// no nested Invocation to patch
	case *ast.TableFilter:
		walkTableInvocations(n.Table, fn)
	case *ast.Projection:
		walkTableInvocations(n.Table, fn)
	case *ast.TableAlias:
		walkTableInvocations(n.Table, fn)
	case *ast.Aggregation:
		walkTableInvocations(n.Table, fn)
	case *ast.ArgMinMax:
		walkTableInvocations(n.Table, fn)
	case *ast.Join:
		walkTableInvocations(n.LHS, fn)
		walkTableInvocations(n.RHS, fn)
	case *ast.Window:
		walkTableInvocations(n.Table, fn)
	case *ast.Sequence:
		walkTableInvocations(n.Table, fn)
	case *ast.TimeSeries:
		walkTableInvocations(n.Table, fn)
	case *ast.History:
		walkTableInvocations(n.Table, fn)
	case *ast.Compute:
		walkTableInvocations(n.Table, fn)
	case *ast.Sort:
		walkTableInvocations(n.Table, fn)
	case *ast.Index:
		walkTableInvocations(n.Table, fn)
	case *ast.Slice:
		walkTableInvocations(n.Table, fn)
	}
}

// walkStreamInvocations mirrors walkTableInvocations for the stream side.
func walkStreamInvocations(s ast.Stream, fn func(*ast.Invocation)) {
	switch n := s.(type) {
	case *ast.Timer, *ast.AtTimer, *ast.VarRefStream:
		// no nested Invocation to patch
	case *ast.Monitor:
		walkTableInvocations(n.Table, fn)
	case *ast.EdgeFilter:
		walkStreamInvocations(n.Stream, fn)
	case *ast.EdgeNew:
		walkStreamInvocations(n.Stream, fn)
	case *ast.StreamFilter:
		walkStreamInvocations(n.Stream, fn)
	case *ast.StreamProjection:
		walkStreamInvocations(n.Stream, fn)
	case *ast.StreamAlias:
		walkStreamInvocations(n.Stream, fn)
	case *ast.StreamJoin:
		walkStreamInvocations(n.LHS, fn)
		walkTableInvocations(n.RHS, fn)
	}
}
