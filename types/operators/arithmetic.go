package operators

import "github.com/thingpedia/tt-semcheck/types"

// Arithmetic is the scalar arithmetic operator table (spec §4.2 item 2):
// +, -, *, / over numeric and measure operands, plus the Date arithmetic
// special cases (Date - Date = Measure(ms), Date + Measure(ms) = Date).
var Arithmetic = Table{
	"+": {
		{Operands: []types.Type{types.Date, types.Measure("ms")}, Result: types.Date},
		{Operands: []types.Type{types.Number, types.Number}, Result: types.Number},
		{Operands: []types.Type{types.Measure(""), types.Measure("")}, Result: types.Measure("")},
		{Operands: []types.Type{types.Currency, types.Currency}, Result: types.Currency},
	},
	"-": {
		{Operands: []types.Type{types.Date, types.Date}, Result: types.Measure("ms")},
		{Operands: []types.Type{types.Date, types.Measure("ms")}, Result: types.Date},
		{Operands: []types.Type{types.Number, types.Number}, Result: types.Number},
		{Operands: []types.Type{types.Measure(""), types.Measure("")}, Result: types.Measure("")},
		{Operands: []types.Type{types.Currency, types.Currency}, Result: types.Currency},
	},
	"*": {
		{Operands: []types.Type{types.Number, types.Number}, Result: types.Number},
		{Operands: []types.Type{types.Measure(""), types.Number}, Result: types.Measure("")},
		{Operands: []types.Type{types.Number, types.Measure("")}, Result: types.Measure("")},
	},
	"/": {
		{Operands: []types.Type{types.Number, types.Number}, Result: types.Number},
		{Operands: []types.Type{types.Measure(""), types.Number}, Result: types.Measure("")},
		{Operands: []types.Type{types.Measure(""), types.Measure("")}, Result: types.Number},
	},
}
