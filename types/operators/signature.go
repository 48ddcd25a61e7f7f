// Package operators holds the declarative overload tables for
// ThingTalk's binary comparison operators, scalar arithmetic operators,
// aggregations, and arg-min/max (spec §4.2, C2). Each table is an
// ordered list of signatures; resolution walks the list in order,
// opening a fresh type-variable scope per attempt, and returns the
// first signature whose operands all assign.
package operators

import (
	"fmt"

	"github.com/thingpedia/tt-semcheck/types"
	"github.com/thingpedia/tt-semcheck/ttkind"
)

// Signature is one entry of an operator's overload table: an ordered
// list of operand types and the (possibly type-variable-bearing) result
// type produced when all operands assign.
type Signature struct {
	Operands []types.Type
	Result   types.Type
	// NoEntityCoerce rejects every Entity operand for this signature and
	// turns off coercion for its other operands (Resolve otherwise
	// checks every operand with coercion on). Used by
	// `=~` (spec §4.2: "invalid for Entity operands even though entities
	// could coerce to string").
	NoEntityCoerce bool
}

// Table is an ordered overload set for a single operator name.
type Table map[string][]Signature

// Resolve walks op's signatures in table order, opening a fresh
// TypeVarScope per attempt, and returns the first signature's result
// type (with type variables resolved) that accepts operandTypes. It
// reports ErrInvalidOperator if op is not in the table at all, and
// ErrInvalidParameterTypes if every signature for op rejects the given
// operands.
func Resolve(table Table, op string, operandTypes []types.Type) (types.Type, error) {
	sigs, ok := table[op]
	if !ok {
		return types.Type{}, ttkind.ErrInvalidOperator.New(op)
	}

	for _, sig := range sigs {
		if len(sig.Operands) != len(operandTypes) {
			continue
		}
		scope := types.NewTypeVarScope()
		ok := true
		for i, want := range sig.Operands {
			got := operandTypes[i]
			if sig.NoEntityCoerce && got.IsEntity() {
				ok = false
				break
			}
			if !types.IsAssignable(got, want, scope, !sig.NoEntityCoerce) {
				ok = false
				break
			}
		}
		if ok {
			return types.ResolveTypeVars(sig.Result, scope), nil
		}
	}

	return types.Type{}, ttkind.ErrInvalidParameterTypes.New(op, describe(operandTypes))
}

func describe(ts []types.Type) string {
	s := ""
	for i, t := range ts {
		if i > 0 {
			s += ", "
		}
		s += t.String()
	}
	return fmt.Sprintf("(%s)", s)
}
