package ast

import "github.com/thingpedia/tt-semcheck/schema"

// Table is the closed sum type of table constructors (spec §3 "Table
// constructors"). Every variant carries a Schema pointer the Composer
// fills with a fresh clone on entry (spec §8: "every reachable primitive
// AST node has a non-null schema that is a fresh clone").
type Table interface {
	isTable()
	GetSchema() *schema.Schema
	SetSchema(*schema.Schema)
}

type baseTable struct{ Schema *schema.Schema }

func (b *baseTable) GetSchema() *schema.Schema    { return b.Schema }
func (b *baseTable) SetSchema(s *schema.Schema)   { b.Schema = s }

// TableInvocation is a leaf table: @selector.channel(in_params).
type TableInvocation struct {
	baseTable
	Invocation *Invocation
}

// VarRefTable is a reference to a declared table (a Declaration's name,
// or a memory table via the VarRef schema oracle).
type VarRefTable struct {
	baseTable
	Name     string
	InParams []InputParam
}

type TableFilter struct {
	baseTable
	Table  Table
	Filter BooleanExpression
}

type Projection struct {
	baseTable
	Table Table
	Args  []string
}

type TableAlias struct {
	baseTable
	Table Table
	Name  string
}

type Aggregation struct {
	baseTable
	Table Table
	Field string // "*" for count(*)
	Op    string
	Alias *string
}

type ArgMinMax struct {
	baseTable
	Table Table
	Field string
	Op    string // "argmin" | "argmax"
	Base  ScalarExpression
	Limit ScalarExpression
}

type Join struct {
	baseTable
	LHS      Table
	RHS      Table
	InParams []InputParam
}

// Window/TimeSeries/Sequence/History all restrict a table by a
// count-based or time-based range; Base/Delta are Number/Number for a
// counted window, Date/Measure(ms) for a time-based one (spec §4.8).
type Window struct {
	baseTable
	Table Table
	Base  ScalarExpression
	Delta ScalarExpression
}

type TimeSeries struct {
	baseTable
	Table Table
	Base  ScalarExpression
	Delta ScalarExpression
}

type Sequence struct {
	baseTable
	Table Table
	Base  ScalarExpression
	Delta ScalarExpression
}

type History struct {
	baseTable
	Table Table
	Base  ScalarExpression
	Delta ScalarExpression
}

type Compute struct {
	baseTable
	Table Table
	Expr  ScalarExpression
	Alias *string
}

// Sort, Index, and Slice are real ThingTalk constructors omitted from
// the distilled spec (SPEC_FULL.md §5): sorting and positional/range
// access over a table, none of which change its schema.
type Sort struct {
	baseTable
	Table     Table
	Field     string
	Direction string // "asc" | "desc"
}

type Index struct {
	baseTable
	Table Table
	Base  ScalarExpression
}

type Slice struct {
	baseTable
	Table Table
	Base  ScalarExpression
	Limit ScalarExpression
}

func (*TableInvocation) isTable() {}
func (*VarRefTable) isTable()     {}
func (*TableFilter) isTable()     {}
func (*Projection) isTable()      {}
func (*TableAlias) isTable()      {}
func (*Aggregation) isTable()     {}
func (*ArgMinMax) isTable()       {}
func (*Join) isTable()            {}
func (*Window) isTable()          {}
func (*TimeSeries) isTable()      {}
func (*Sequence) isTable()        {}
func (*History) isTable()         {}
func (*Compute) isTable()         {}
func (*Sort) isTable()            {}
func (*Index) isTable()           {}
func (*Slice) isTable()           {}
