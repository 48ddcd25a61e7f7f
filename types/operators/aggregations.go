package operators

import "github.com/thingpedia/tt-semcheck/types"

// Aggregations is the aggregation operator table (spec §4.2 item 3).
// count(*) is the special case handled by the composer directly (its
// field is the literal "*", not a schema member) but still resolves
// through this table via the Any overload so the result type (Number)
// comes from the same place as every other aggregation.
var Aggregations = Table{
	"count": {{Operands: []types.Type{types.Any}, Result: types.Number}},
	"min": {
		{Operands: []types.Type{types.Number}, Result: types.Number},
		{Operands: []types.Type{types.Measure("")}, Result: types.Measure("")},
		{Operands: []types.Type{types.Date}, Result: types.Date},
		{Operands: []types.Type{types.Time}, Result: types.Time},
		{Operands: []types.Type{types.Currency}, Result: types.Currency},
	},
	"max": {
		{Operands: []types.Type{types.Number}, Result: types.Number},
		{Operands: []types.Type{types.Measure("")}, Result: types.Measure("")},
		{Operands: []types.Type{types.Date}, Result: types.Date},
		{Operands: []types.Type{types.Time}, Result: types.Time},
		{Operands: []types.Type{types.Currency}, Result: types.Currency},
	},
	"sum": {
		{Operands: []types.Type{types.Number}, Result: types.Number},
		{Operands: []types.Type{types.Measure("")}, Result: types.Measure("")},
		{Operands: []types.Type{types.Currency}, Result: types.Currency},
	},
	"avg": {
		{Operands: []types.Type{types.Number}, Result: types.Number},
		{Operands: []types.Type{types.Measure("")}, Result: types.Measure("")},
	},
}

// Orderable reports whether t may be used as an argmin/argmax field
// (spec §4.2 item 4: "field must be ordered").
func Orderable(t types.Type) bool {
	switch t.Kind() {
	case types.KindNumber, types.KindMeasure, types.KindDate, types.KindTime, types.KindCurrency:
		return true
	default:
		return false
	}
}

// ArgMinMax is the arg-min/max operator table (spec §4.2 item 4). Base
// and limit are validated separately by the caller (both must be
// Number); this table only governs the orderable field's own type,
// which passes through unchanged.
var ArgMinMax = Table{
	"argmin": {
		{Operands: []types.Type{types.Number}, Result: types.Number},
		{Operands: []types.Type{types.Measure("")}, Result: types.Measure("")},
		{Operands: []types.Type{types.Date}, Result: types.Date},
		{Operands: []types.Type{types.Time}, Result: types.Time},
		{Operands: []types.Type{types.Currency}, Result: types.Currency},
	},
	"argmax": {
		{Operands: []types.Type{types.Number}, Result: types.Number},
		{Operands: []types.Type{types.Measure("")}, Result: types.Measure("")},
		{Operands: []types.Type{types.Date}, Result: types.Date},
		{Operands: []types.Type{types.Time}, Result: types.Time},
		{Operands: []types.Type{types.Currency}, Result: types.Currency},
	},
}
