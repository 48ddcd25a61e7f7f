package expression

import (
	"github.com/thingpedia/tt-semcheck/ast"
	"github.com/thingpedia/tt-semcheck/schema"
	"github.com/thingpedia/tt-semcheck/scope"
	"github.com/thingpedia/tt-semcheck/types"
	"github.com/thingpedia/tt-semcheck/types/operators"
)

// ResolveScalarExpression mirrors typeCheckAtom for the numeric/string/
// measure results Compute needs (spec §4.6): a primary value types
// through TypeForValue, a derived expression resolves its operator
// against the Arithmetic table once every operand has a type, and a
// wrapped boolean sub-expression always types Boolean once its filter
// checks.
func ResolveScalarExpression(env Env, expr ast.ScalarExpression, sch *schema.Schema, sc *scope.Scope) (types.Type, error) {
	switch e := expr.(type) {
	case ast.ScalarPrimary:
		return TypeForValue(e.Value, sc)

	case ast.ScalarDerived:
		operandTypes := make([]types.Type, len(e.Operands))
		for i, operand := range e.Operands {
			t, err := ResolveScalarExpression(env, operand, sch, sc)
			if err != nil {
				return types.Type{}, err
			}
			operandTypes[i] = t
		}
		return operators.Resolve(operators.Arithmetic, e.Op, operandTypes)

	case ast.ScalarBoolean:
		if err := TypeCheckFilter(env, e.Value, sch, sc); err != nil {
			return types.Type{}, err
		}
		return types.Boolean, nil

	default:
		return types.Type{}, nil
	}
}
