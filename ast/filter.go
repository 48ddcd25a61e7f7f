package ast

import (
	"github.com/thingpedia/tt-semcheck/schema"
	"github.com/thingpedia/tt-semcheck/types"
)

// BooleanExpression is the closed sum type of filter expressions (spec
// §3 "BooleanExpression").
type BooleanExpression interface {
	isBooleanExpression()
}

type True struct{}
type False struct{}
type And struct{ Operands []BooleanExpression }
type Or struct{ Operands []BooleanExpression }
type Not struct{ Operand BooleanExpression }

// Atom is a single comparison, e.g. `temperature >= 20C`. ResolvedType
// and ResolvedOperandType are annotation slots the Expression Checker
// fills in on success (spec §4.6: "Record it on the AST node").
type Atom struct {
	Name  string
	Op    string
	Value Value

	ResolvedType        *types.Type
	ResolvedOperandType *types.Type
}

// External is a sub-query embedded in a filter:
// `@selector.channel(in_params), filter`. Schema is filled by the
// Schema Resolver the first time the external is checked.
type External struct {
	Selector Selector
	Channel  string
	InParams []InputParam
	Filter   BooleanExpression
	Schema   *schema.Schema
}

func (True) isBooleanExpression()     {}
func (False) isBooleanExpression()    {}
func (And) isBooleanExpression()      {}
func (Or) isBooleanExpression()       {}
func (Not) isBooleanExpression()      {}
func (*Atom) isBooleanExpression()    {}
func (*External) isBooleanExpression() {}
