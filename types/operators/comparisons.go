package operators

import "github.com/thingpedia/tt-semcheck/types"

// Comparisons is the binary comparison operator table (spec §4.2 item 1).
// Every signature resolves to Boolean; operand assignability (with
// coercion, except where noted) determines which overload fires.
var Comparisons = Table{
	"==": {{Operands: []types.Type{types.Var("a"), types.Var("a")}, Result: types.Boolean}},
	"!=": {{Operands: []types.Type{types.Var("a"), types.Var("a")}, Result: types.Boolean}},

	"<":  orderedComparisons(),
	"<=": orderedComparisons(),
	">":  orderedComparisons(),
	">=": orderedComparisons(),

	// =~ : string contains, invalid over Entity operands even though
	// Entity would otherwise coerce to String.
	"=~": {{Operands: []types.Type{types.String, types.String}, Result: types.Boolean, NoEntityCoerce: true}},
	// ~= : reversed substring (rhs contains lhs).
	"~=": {{Operands: []types.Type{types.String, types.String}, Result: types.Boolean}},

	"starts_with": {{Operands: []types.Type{types.String, types.String}, Result: types.Boolean}},
	"ends_with":   {{Operands: []types.Type{types.String, types.String}, Result: types.Boolean}},
	"prefix_of":   {{Operands: []types.Type{types.String, types.String}, Result: types.Boolean}},
	"suffix_of":   {{Operands: []types.Type{types.String, types.String}, Result: types.Boolean}},

	"in_array": {{Operands: []types.Type{types.Var("a"), types.Array(types.Var("a"))}, Result: types.Boolean}},
	"contains": {
		{Operands: []types.Type{types.Array(types.Var("a")), types.Var("a")}, Result: types.Boolean},
		{Operands: []types.Type{types.String, types.String}, Result: types.Boolean},
	},
}

// orderedComparisons builds the signature list shared by <, <=, >, >=:
// any two operands of the same orderable primitive kind.
func orderedComparisons() []Signature {
	var sigs []Signature
	for _, t := range []types.Type{types.Number, types.Date, types.Time, types.Currency} {
		sigs = append(sigs, Signature{Operands: []types.Type{t, t}, Result: types.Boolean})
	}
	sigs = append(sigs, Signature{
		Operands: []types.Type{types.Measure(""), types.Measure("")},
		Result:   types.Boolean,
	})
	return sigs
}
