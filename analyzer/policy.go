package analyzer

import (
	"context"

	"github.com/thingpedia/tt-semcheck/ast"
	"github.com/thingpedia/tt-semcheck/expression"
	"github.com/thingpedia/tt-semcheck/resolver"
	"github.com/thingpedia/tt-semcheck/schema"
	"github.com/thingpedia/tt-semcheck/scope"
	"github.com/thingpedia/tt-semcheck/types"
)

// TypeCheckPermissionRule checks a Policy (spec §4.9, §6
// "typeCheckPermissionRule"): the principal is a filter expression
// (e.g. `source == @me.phone`), type-checked in a fresh scope seeded
// with `source: Entity(tt:contact)` — unlike Program's principal, which
// is a plain value. Query's allowed schema comes from the oracle rather
// than from SchemaForSelector, since a permission rule describes what a
// *different* principal may invoke, not a function this program calls
// directly. Query's filter is checked against that schema and its
// outputs are published with hasEvent set, then Action's filter is
// checked against its own allowed schema.
func (c *Checker) TypeCheckPermissionRule(ctx context.Context, policy *ast.Policy) error {
	runID := newRunID()
	env := c.env(runID, nil)
	env.Ctx = ctx
	sc := scope.New()

	if policy.Principal != nil {
		principalScope := scope.New()
		principalScope.AddLocal("source", types.Entity("tt:contact"))
		if err := expression.TypeCheckFilter(env, policy.Principal, &schema.Schema{}, principalScope); err != nil {
			return err
		}
	}

	if policy.Query != nil {
		sch, err := env.Oracle.AllowedSchemaFor(env.Ctx, permissionKey(policy.Query), resolver.PermissionQueries)
		if err != nil {
			return err
		}
		sch = sch.Clone()
		policy.Query.Schema = sch

		if policy.Query.Filter != nil {
			if err := expression.TypeCheckFilter(env, policy.Query.Filter, sch, sc); err != nil {
				return err
			}
		}
		for name, t := range sch.Out {
			sc.AddLocal(name, t)
		}
		sc.SetHasEvent(true)
	}

	if policy.Action != nil {
		sch, err := env.Oracle.AllowedSchemaFor(env.Ctx, permissionKey(policy.Action), resolver.PermissionActions)
		if err != nil {
			return err
		}
		sch = sch.Clone()
		policy.Action.Schema = sch

		if policy.Action.Filter != nil {
			if err := expression.TypeCheckFilter(env, policy.Action.Filter, sch, sc); err != nil {
				return err
			}
		}
	}

	c.Logger.Debug("policy: checked")
	return nil
}

func isPrincipalType(t types.Type) bool {
	if t.Kind() != types.KindEntity {
		return false
	}
	return t.EntityKind() == "tt:contact" || t.EntityKind() == "tt:username"
}

// permissionKey identifies the Thingpedia function a policy's query or
// action side names, e.g. "com.twitter.post" (spec §6: "kind ∈
// {queries, actions}").
func permissionKey(inv *ast.Invocation) string {
	return inv.Selector.Kind + "." + inv.Channel
}
