package ast

import "github.com/thingpedia/tt-semcheck/schema"

// Selector names the Thingpedia class a primitive invokes, e.g. @com.twitter.
// Kind is the class identifier (e.g. "com.twitter"); Principal is set
// only for a remote/federated invocation.
type Selector struct {
	Kind      string
	Principal *string
	IsBuiltin bool // the "@$builtin" selector: notify/return/save
}

// InputParam is one name=value binding supplied at a primitive call site.
type InputParam struct {
	Name  string
	Value Value
}

// PrimitiveKind distinguishes how a function is being used, which
// changes how the Schema Resolver dispatches (spec §4.5, §6).
type PrimitiveKind int

const (
	KindQuery PrimitiveKind = iota
	KindAction
	KindTrigger
)

// Invocation is a leaf call to a Thingpedia function: @selector.channel(in_params).
// Schema is nil until the Schema Resolver fills it; Filter is an optional
// inline filter attached directly to the invocation (checked against the
// invocation's schema by a table invocation and by a Policy's query and
// action; an External boolean expression carries its own Filter).
type Invocation struct {
	Selector  Selector
	Channel   string
	InParams  []InputParam
	Schema    *schema.Schema
	Filter    BooleanExpression
}
