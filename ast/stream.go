package ast

import "github.com/thingpedia/tt-semcheck/schema"

// Stream is the closed sum type of stream constructors (spec §3 "Stream
// constructors").
type Stream interface {
	isStream()
	GetSchema() *schema.Schema
	SetSchema(*schema.Schema)
}

type baseStream struct{ Schema *schema.Schema }

func (b *baseStream) GetSchema() *schema.Schema  { return b.Schema }
func (b *baseStream) SetSchema(s *schema.Schema) { b.Schema = s }

type Timer struct {
	baseStream
	Base     ScalarExpression
	Interval ScalarExpression
}

type AtTimer struct {
	baseStream
	Time ScalarExpression
}

// Monitor watches a table for new/changed rows. Args, when non-nil,
// restricts which output fields trigger a new event.
type Monitor struct {
	baseStream
	Table Table
	Args  []string
}

type EdgeFilter struct {
	baseStream
	Stream Stream
	Filter BooleanExpression
}

type EdgeNew struct {
	baseStream
	Stream Stream
}

type StreamFilter struct {
	baseStream
	Stream Stream
	Filter BooleanExpression
}

type StreamProjection struct {
	baseStream
	Stream Stream
	Args   []string
}

type StreamAlias struct {
	baseStream
	Stream Stream
	Name   string
}

// StreamJoin joins a stream (lhs) against a table (rhs): every stream
// event triggers a fresh query of the table.
type StreamJoin struct {
	baseStream
	LHS      Stream
	RHS      Table
	InParams []InputParam
}

type VarRefStream struct {
	baseStream
	Name     string
	InParams []InputParam
}

func (*Timer) isStream()            {}
func (*AtTimer) isStream()          {}
func (*Monitor) isStream()          {}
func (*EdgeFilter) isStream()       {}
func (*EdgeNew) isStream()          {}
func (*StreamFilter) isStream()     {}
func (*StreamProjection) isStream() {}
func (*StreamAlias) isStream()      {}
func (*StreamJoin) isStream()       {}
func (*VarRefStream) isStream()     {}
