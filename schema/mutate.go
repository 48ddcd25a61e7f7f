package schema

import (
	"github.com/thingpedia/tt-semcheck/ttkind"
	"github.com/thingpedia/tt-semcheck/types"
)

// AddInput inserts name at the input boundary (spec §4.3): the count of
// existing required+optional inputs. Every output's index shifts up by
// one to make room.
func (s *Schema) AddInput(name string, t types.Type, required bool) {
	boundary := s.inputCount()

	s.Args = append(s.Args, "")
	copy(s.Args[boundary+1:], s.Args[boundary:])
	s.Args[boundary] = name

	s.Types = append(s.Types, types.Type{})
	copy(s.Types[boundary+1:], s.Types[boundary:])
	s.Types[boundary] = t

	for argName, idx := range s.Index {
		if idx >= boundary {
			s.Index[argName] = idx + 1
		}
	}
	s.Index[name] = boundary

	if required {
		s.InReq[name] = t
	} else {
		s.InOpt[name] = t
	}
}

// AddOutput appends a new output to the end of Args and publishes it
// into the given scope.
func (s *Schema) AddOutput(name string, t types.Type, pub Publisher) {
	s.Args = append(s.Args, name)
	s.Types = append(s.Types, t)
	s.Index[name] = len(s.Args) - 1
	s.Out[name] = t
	if pub != nil {
		pub.AddLocal(name, t)
	}
}

// CleanOutput truncates Args/Types back to the input prefix and purges
// every current output name from both Out and the scope (spec §4.3;
// used by Aggregation and Compute, which replace a table's outputs
// wholesale).
func (s *Schema) CleanOutput(pub Publisher) {
	boundary := s.inputCount()
	for name := range s.Out {
		if pub != nil {
			pub.RemoveLocal(name)
		}
		delete(s.Index, name)
	}
	s.Args = s.Args[:boundary]
	s.Types = s.Types[:boundary]
	s.Out = map[string]types.Type{}
}

// ResolveProjection validates that every requested name is an existing
// argument of s, then reorders Args/Types/Index to match the projection
// and drops every non-projected output from both Out and the scope
// (spec §4.3, §8: "schema.out.keys = args exactly" after a projection).
func (s *Schema) ResolveProjection(args []string, pub Publisher) error {
	for _, name := range args {
		if !s.HasArg(name) {
			return ttkind.ErrInvalidFieldName.New(name)
		}
	}

	kept := map[string]bool{}
	for _, name := range args {
		kept[name] = true
	}
	for name := range s.Out {
		if !kept[name] {
			if pub != nil {
				pub.RemoveLocal(name)
			}
		}
	}

	boundary := s.inputCount()
	newArgs := append([]string{}, s.Args[:boundary]...)
	newTypes := append([]types.Type{}, s.Types[:boundary]...)
	newOut := map[string]types.Type{}

	for _, name := range args {
		t, isOut := s.Out[name]
		if !isOut {
			// projecting an input leaves it as an input; only outputs
			// get reordered into the projected tail.
			continue
		}
		newArgs = append(newArgs, name)
		newTypes = append(newTypes, t)
		newOut[name] = t
	}

	s.Args = newArgs
	s.Types = newTypes
	s.Out = newOut
	s.Index = make(map[string]int, len(newArgs))
	for i, name := range newArgs {
		s.Index[name] = i
	}
	return nil
}

// ResolveJoin concatenates lhs and rhs into a fresh joined Schema: Args
// and Types concatenate, Index merges with an offset for rhs entries,
// outputs merge by name (an rhs output whose name is also an lhs output
// replaces the lhs entry), and inputs union except that any rhs input
// whose name already appears among lhs's arguments (inputs or outputs)
// is dropped — it is a parameter-passing target, supplied by the join
// itself rather than by the caller (spec §4.3, §8).
func ResolveJoin(lhs, rhs *Schema) *Schema {
	joined := &Schema{
		Args:  append([]string{}, lhs.Args...),
		Types: append([]types.Type{}, lhs.Types...),
		Index: make(map[string]int, len(lhs.Index)+len(rhs.Index)),
		InReq: map[string]types.Type{},
		InOpt: map[string]types.Type{},
		Out:   map[string]types.Type{},
	}
	for name, idx := range lhs.Index {
		joined.Index[name] = idx
	}
	offset := len(lhs.Args)
	for name, idx := range rhs.Index {
		joined.Index[name] = idx + offset
	}
	joined.Args = append(joined.Args, rhs.Args...)
	joined.Types = append(joined.Types, rhs.Types...)

	for name, t := range lhs.InReq {
		joined.InReq[name] = t
	}
	for name, t := range lhs.InOpt {
		joined.InOpt[name] = t
	}
	for name, t := range rhs.InReq {
		if lhs.HasArg(name) {
			continue
		}
		joined.InReq[name] = t
	}
	for name, t := range rhs.InOpt {
		if lhs.HasArg(name) {
			continue
		}
		joined.InOpt[name] = t
	}

	for name, t := range lhs.Out {
		joined.Out[name] = t
	}
	for name, t := range rhs.Out {
		joined.Out[name] = t
	}

	return joined
}

// Alias renames every output of s to "prefix.name", so that a sibling
// reference to an aliased table/stream's fields must qualify with the
// alias (spec §4.8 TableAlias/StreamAlias case). Inputs are left
// unqualified — only the published outputs change.
func (s *Schema) Alias(prefix string) *Schema {
	c := s.Clone()
	newOut := make(map[string]types.Type, len(c.Out))
	for i, name := range c.Args {
		t, ok := c.Out[name]
		if !ok {
			continue
		}
		aliased := prefix + "." + name
		c.Args[i] = aliased
		delete(c.Index, name)
		c.Index[aliased] = i
		newOut[aliased] = t
	}
	c.Out = newOut
	return c
}
