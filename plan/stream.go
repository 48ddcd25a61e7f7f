package plan

import (
	"github.com/thingpedia/tt-semcheck/ast"
	"github.com/thingpedia/tt-semcheck/expression"
	"github.com/thingpedia/tt-semcheck/schema"
	"github.com/thingpedia/tt-semcheck/scope"
	"github.com/thingpedia/tt-semcheck/ttkind"
)

// CheckStream type-checks stream against sc the way CheckTable does for
// tables, additionally setting sc's has-event flag wherever the
// constructor introduces a triggering event (spec §4.8, §4.6
// "$event ... valid wherever hasEvent").
func CheckStream(env expression.Env, stream ast.Stream, sc *scope.Scope) error {
	switch s := stream.(type) {
	case *ast.Timer:
		return checkTimer(env, s, sc)
	case *ast.AtTimer:
		return checkAtTimer(env, s, sc)
	case *ast.Monitor:
		return checkMonitor(env, s, sc)
	case *ast.EdgeFilter:
		return checkEdgeFilter(env, s, sc)
	case *ast.EdgeNew:
		return checkEdgeNew(env, s, sc)
	case *ast.StreamFilter:
		return checkStreamFilter(env, s, sc)
	case *ast.StreamProjection:
		return checkStreamProjection(env, s, sc)
	case *ast.StreamAlias:
		return checkStreamAlias(env, s, sc)
	case *ast.StreamJoin:
		return checkStreamJoin(env, s, sc)
	case *ast.VarRefStream:
		return checkVarRefStream(env, s, sc)
	default:
		return ttkind.ErrNotImplemented.New("stream constructor")
	}
}

func emptySchema() *schema.Schema {
	sch, _ := schema.New(nil, nil, nil, nil, "")
	return sch
}

func checkTimer(env expression.Env, s *ast.Timer, sc *scope.Scope) error {
	sch := emptySchema()
	if err := requireDate(env, s.Base, sch, sc); err != nil {
		return err
	}
	if err := requireMeasureMs(env, s.Interval, sch, sc); err != nil {
		return err
	}
	s.SetSchema(sch)
	sc.SetHasEvent(true)
	return nil
}

func checkAtTimer(env expression.Env, s *ast.AtTimer, sc *scope.Scope) error {
	sch := emptySchema()
	if err := requireTime(env, s.Time, sch, sc); err != nil {
		return err
	}
	s.SetSchema(sch)
	sc.SetHasEvent(true)
	return nil
}

func checkMonitor(env expression.Env, s *ast.Monitor, sc *scope.Scope) error {
	if err := CheckTable(env, s.Table, sc); err != nil {
		return err
	}
	sch := s.Table.GetSchema()
	for _, name := range s.Args {
		if _, ok := sch.Out[name]; !ok {
			return ttkind.ErrInvalidFieldName.New(name)
		}
	}
	s.SetSchema(sch)
	sc.SetHasEvent(true)
	return nil
}

func checkEdgeFilter(env expression.Env, s *ast.EdgeFilter, sc *scope.Scope) error {
	if err := CheckStream(env, s.Stream, sc); err != nil {
		return err
	}
	sch := s.Stream.GetSchema()
	s.SetSchema(sch)
	return expression.TypeCheckFilter(env, s.Filter, sch, sc)
}

func checkEdgeNew(env expression.Env, s *ast.EdgeNew, sc *scope.Scope) error {
	if err := CheckStream(env, s.Stream, sc); err != nil {
		return err
	}
	s.SetSchema(s.Stream.GetSchema())
	return nil
}

func checkStreamFilter(env expression.Env, s *ast.StreamFilter, sc *scope.Scope) error {
	if err := CheckStream(env, s.Stream, sc); err != nil {
		return err
	}
	sch := s.Stream.GetSchema()
	s.SetSchema(sch)
	return expression.TypeCheckFilter(env, s.Filter, sch, sc)
}

func checkStreamProjection(env expression.Env, s *ast.StreamProjection, sc *scope.Scope) error {
	if err := CheckStream(env, s.Stream, sc); err != nil {
		return err
	}
	sch := s.Stream.GetSchema()
	if err := sch.ResolveProjection(s.Args, sc); err != nil {
		return err
	}
	s.SetSchema(sch)
	return nil
}

func checkStreamAlias(env expression.Env, s *ast.StreamAlias, sc *scope.Scope) error {
	if err := CheckStream(env, s.Stream, sc); err != nil {
		return err
	}
	sc.Prefix(s.Name)
	sch := s.Stream.GetSchema().Alias(s.Name)
	s.SetSchema(sch)
	return sc.AddGlobal(s.Name, sch)
}

// checkStreamJoin checks lhs (a stream, setting hasEvent) then rhs (a
// table queried once per lhs event, so it is checked in a scope that
// already carries hasEvent) sequentially — unlike table-table Join, the
// rhs query is causally dependent on the lhs event firing, so there is
// no concurrency to exploit (spec §4.8, §5).
func checkStreamJoin(env expression.Env, s *ast.StreamJoin, sc *scope.Scope) error {
	lhsScope := sc.Clone()
	if err := CheckStream(env, s.LHS, lhsScope); err != nil {
		return err
	}

	rhsScope := sc.Clone()
	rhsScope.SetHasEvent(true)
	if err := CheckTable(env, s.RHS, rhsScope); err != nil {
		return err
	}

	joined := schema.ResolveJoin(s.LHS.GetSchema(), s.RHS.GetSchema())

	sc.Merge(lhsScope)
	sc.Merge(rhsScope)

	if env.StrictConflicts {
		markSharedConflicts(sc, lhsScope, rhsScope)
	}

	if err := checkInParams(s.InParams, joined, sc); err != nil {
		return err
	}
	s.SetSchema(joined)
	sc.SetHasEvent(true)
	return nil
}

func checkVarRefStream(env expression.Env, s *ast.VarRefStream, sc *scope.Scope) error {
	sch, err := resolveVarRefSchema(env, sc, s.Name, env.UseMeta)
	if err != nil {
		return err
	}
	s.SetSchema(sch)

	if err := checkInParams(s.InParams, sch, sc); err != nil {
		return err
	}
	publishOutputs(sch, sc)
	sc.SetHasEvent(true)
	return nil
}
