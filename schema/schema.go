// Package schema implements the ThingTalk function-signature model: the
// structured, mutable Schema value threaded through the composer (spec
// §3 "Schema", §4.3, C3).
package schema

import (
	"fmt"

	"github.com/thingpedia/tt-semcheck/types"
)

// ArgKind tags which partition of a schema's args an argument belongs
// to. inReq, inOpt, and out must partition Args exactly (spec §3
// invariant).
type ArgKind int

const (
	Required ArgKind = iota
	Optional
	Output
)

// Publisher is the narrow view of a lexical scope that schema mutation
// helpers need: registering a newly-exposed output, or removing one that
// a projection/aggregation/compute step has shed. scope.Scope implements
// this; schema never imports scope, avoiding a dependency cycle between
// the two packages that both need to reference each other conceptually.
type Publisher interface {
	AddLocal(name string, t types.Type)
	RemoveLocal(name string)
}

// Schema is a Thingpedia function's structured signature. Inputs always
// precede outputs in Args; InReq, InOpt, and Out are name-keyed views
// that partition Args; Index is the inverse of Args.
type Schema struct {
	Args  []string
	Types []types.Type
	Index map[string]int

	InReq map[string]types.Type
	InOpt map[string]types.Type
	Out   map[string]types.Type

	ArgCanonicals []string
	Confirmation  string
}

// SchemaArgs implements types.FunctionSchema so a Schema can be wrapped
// as a first-class types.Type via types.FunctionDef.
func (s *Schema) SchemaArgs() []string { return s.Args }

// New builds a Schema from parallel argument lists. kinds[i] determines
// whether args[i]/typs[i] is a required input, optional input, or
// output; all required/optional inputs must precede all outputs, per
// the spec §3 invariant.
func New(names []string, typs []types.Type, kinds []ArgKind, canonicals []string, confirmation string) (*Schema, error) {
	if len(names) != len(typs) || len(names) != len(kinds) {
		return nil, fmt.Errorf("schema.New: mismatched arg/type/kind lengths")
	}

	s := &Schema{
		Args:          append([]string{}, names...),
		Types:         append([]types.Type{}, typs...),
		Index:         make(map[string]int, len(names)),
		InReq:         map[string]types.Type{},
		InOpt:         map[string]types.Type{},
		Out:           map[string]types.Type{},
		ArgCanonicals: append([]string{}, canonicals...),
		Confirmation:  confirmation,
	}

	sawOutput := false
	for i, name := range names {
		s.Index[name] = i
		switch kinds[i] {
		case Required:
			if sawOutput {
				return nil, fmt.Errorf("schema.New: input %q follows an output", name)
			}
			s.InReq[name] = typs[i]
		case Optional:
			if sawOutput {
				return nil, fmt.Errorf("schema.New: input %q follows an output", name)
			}
			s.InOpt[name] = typs[i]
		case Output:
			sawOutput = true
			s.Out[name] = typs[i]
		}
	}
	return s, nil
}

// Clone deep-copies s. The composer clones on entry to every constructor
// so that mutation never aliases a shared Thingpedia signature (spec §8
// universal invariant).
func (s *Schema) Clone() *Schema {
	c := &Schema{
		Args:          append([]string{}, s.Args...),
		Types:         append([]types.Type{}, s.Types...),
		Index:         make(map[string]int, len(s.Index)),
		InReq:         make(map[string]types.Type, len(s.InReq)),
		InOpt:         make(map[string]types.Type, len(s.InOpt)),
		Out:           make(map[string]types.Type, len(s.Out)),
		ArgCanonicals: append([]string{}, s.ArgCanonicals...),
		Confirmation:  s.Confirmation,
	}
	for k, v := range s.Index {
		c.Index[k] = v
	}
	for k, v := range s.InReq {
		c.InReq[k] = v
	}
	for k, v := range s.InOpt {
		c.InOpt[k] = v
	}
	for k, v := range s.Out {
		c.Out[k] = v
	}
	return c
}

// inputCount returns the number of required+optional inputs, which is
// the boundary index between inputs and outputs in Args.
func (s *Schema) inputCount() int {
	return len(s.InReq) + len(s.InOpt)
}

// HasArg reports whether name is any argument (input or output) of s.
func (s *Schema) HasArg(name string) bool {
	_, ok := s.Index[name]
	return ok
}

// TypeOf returns the type of name, wherever it appears (inReq, inOpt, or
// out), and whether it was found.
func (s *Schema) TypeOf(name string) (types.Type, bool) {
	if t, ok := s.InReq[name]; ok {
		return t, true
	}
	if t, ok := s.InOpt[name]; ok {
		return t, true
	}
	if t, ok := s.Out[name]; ok {
		return t, true
	}
	return types.Type{}, false
}
