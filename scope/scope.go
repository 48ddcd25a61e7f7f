// Package scope implements the checker's lexical environment: globals,
// locals, conflicts, pending required inputs, the has-event flag, and
// lambda-argument renaming (spec §3 "Scope", §4.4, C4).
package scope

import (
	"github.com/thingpedia/tt-semcheck/schema"
	"github.com/thingpedia/tt-semcheck/ttkind"
	"github.com/thingpedia/tt-semcheck/types"
)

// Scope is the lexical environment threaded through a single rule or
// declaration check. A Join clones two child scopes from the caller,
// checks each side independently, then merges both back (spec §4.8).
type Scope struct {
	globals map[string]*schema.Schema
	locals  map[string]types.Type

	conflicts map[string]bool
	hasEvent  bool

	// inReq collects required inputs not yet supplied at the current
	// composition point; the enclosing boundary (declaration or rule)
	// lifts them into its own schema.
	inReq map[string]types.Type

	// lambdaArgs maps a lambda parameter's declared name to every alias
	// it has been bound through at call sites, for later schema rename.
	lambdaArgs map[string][]string
}

// New returns an empty scope.
func New() *Scope {
	return &Scope{
		globals:    map[string]*schema.Schema{},
		locals:     map[string]types.Type{},
		conflicts:  map[string]bool{},
		inReq:      map[string]types.Type{},
		lambdaArgs: map[string][]string{},
	}
}

// Clone returns a scope with every map deep-copied; mutating the clone
// never affects the original (spec §4.4: "Scope creation clones all
// maps").
func (s *Scope) Clone() *Scope {
	c := New()
	for k, v := range s.globals {
		c.globals[k] = v.Clone()
	}
	for k, v := range s.locals {
		c.locals[k] = v
	}
	for k := range s.conflicts {
		c.conflicts[k] = true
	}
	c.hasEvent = s.hasEvent
	for k, v := range s.inReq {
		c.inReq[k] = v
	}
	for k, v := range s.lambdaArgs {
		c.lambdaArgs[k] = append([]string{}, v...)
	}
	return c
}

// HasEvent reports whether a stream/table is in scope, making $event
// valid.
func (s *Scope) HasEvent() bool { return s.hasEvent }

// SetHasEvent sets the has-event flag.
func (s *Scope) SetHasEvent(v bool) { s.hasEvent = v }

// Has reports whether name is bound as a local.
func (s *Scope) Has(name string) bool {
	_, ok := s.locals[name]
	return ok
}

// HasGlobal reports whether name is bound as a global.
func (s *Scope) HasGlobal(name string) bool {
	_, ok := s.globals[name]
	return ok
}

// Get returns the type of local name, raising ErrFieldConflict if name
// has been marked ambiguous by a join, or ErrVariableNotInScope if it is
// simply absent.
func (s *Scope) Get(name string) (types.Type, error) {
	if s.conflicts[name] {
		return types.Type{}, ttkind.ErrFieldConflict.New(name)
	}
	t, ok := s.locals[name]
	if !ok {
		return types.Type{}, ttkind.ErrVariableNotInScope.New(name)
	}
	return t, nil
}

// GetGlobal returns the schema bound to a global name.
func (s *Scope) GetGlobal(name string) (*schema.Schema, bool) {
	sch, ok := s.globals[name]
	return sch, ok
}

// Add binds name as a local, overwriting any previous binding. Used
// internally by schema mutation helpers (via AddLocal) and by Assign.
func (s *Scope) Add(name string, t types.Type) {
	s.locals[name] = t
}

// AddLocal implements schema.Publisher.
func (s *Scope) AddLocal(name string, t types.Type) { s.Add(name, t) }

// RemoveLocal implements schema.Publisher.
func (s *Scope) RemoveLocal(name string) { s.Remove(name) }

// AddGlobal binds name as a global schema, raising ErrFieldRedefinition
// if name is already bound.
func (s *Scope) AddGlobal(name string, sch *schema.Schema) error {
	if _, ok := s.globals[name]; ok {
		return ttkind.ErrFieldRedefinition.New(name)
	}
	s.globals[name] = sch
	return nil
}

// AddConflict marks name as ambiguous; a later Get raises
// ErrFieldConflict until the name is reintroduced unambiguously (e.g.
// through an alias prefix).
func (s *Scope) AddConflict(name string) {
	s.conflicts[name] = true
}

// Remove deletes name from both locals and the conflict set. The
// original implementation this spec distills from deleted from a
// conflict *set* using a delete expression that was a no-op on sets
// represented as plain maps; this implementation clears both (spec §9
// open question, resolved: fix the bug).
func (s *Scope) Remove(name string) {
	delete(s.locals, name)
	delete(s.conflicts, name)
}

// InReq returns the scope's pending required-inputs map. Callers that
// need to mutate it (the Primitive Checker pushing an unsupplied
// required, a Declaration checker lifting them into its own schema) use
// PushInReq / TakeInReq.
func (s *Scope) InReq() map[string]types.Type {
	return s.inReq
}

// PushInReq records name as a required input not yet supplied at this
// composition point.
func (s *Scope) PushInReq(name string, t types.Type) {
	s.inReq[name] = t
}

// TakeInReq drains and returns the pending-required-inputs map,
// resetting it to empty. Used at a boundary (declaration, top of a
// rule) that must either lift these into its own schema or discard them.
func (s *Scope) TakeInReq() map[string]types.Type {
	taken := s.inReq
	s.inReq = map[string]types.Type{}
	return taken
}

// Assign publishes a batch of named types into scope: function-def
// entries become globals under their own schema, stream/table-marker
// entries become globals bound to a fresh empty schema (a placeholder
// pending resolution), and every other entry becomes a local (spec
// §4.4).
func (s *Scope) Assign(entries map[string]types.Type) error {
	for name, t := range entries {
		switch t.Kind() {
		case types.KindFunctionDef:
			fs := t.Schema()
			sch, ok := fs.(*schema.Schema)
			if !ok {
				sch = &schema.Schema{}
			}
			if err := s.AddGlobal(name, sch); err != nil {
				return err
			}
		case types.KindStreamDecl, types.KindTableDecl:
			if err := s.AddGlobal(name, &schema.Schema{}); err != nil {
				return err
			}
		default:
			s.Add(name, t)
		}
	}
	return nil
}

// Clean resets locals and the has-event flag, as at the start of
// checking a fresh declaration or rule. If keepGlobals is non-empty,
// those names are additionally stripped from globals (used after
// checking a Declaration, to remove its lambda parameters once they
// have been folded into the declaration's own schema).
func (s *Scope) Clean(keepGlobals ...string) {
	s.locals = map[string]types.Type{}
	s.conflicts = map[string]bool{}
	s.hasEvent = false
	s.inReq = map[string]types.Type{}
	for _, name := range keepGlobals {
		delete(s.globals, name)
	}
}

// Prefix renames every local k to "name.k", as Alias does so that
// sibling references to an aliased table's outputs must qualify with
// the alias (spec §4.8 Alias case). The scope's identity is preserved;
// this mutates s in place rather than returning a new scope.
func (s *Scope) Prefix(name string) {
	renamed := make(map[string]types.Type, len(s.locals))
	for k, v := range s.locals {
		renamed[name+"."+k] = v
	}
	s.locals = renamed
}

// Merge copies other's globals and locals into s, in place, preserving
// s's identity. The spec's original implementation routed merged
// globals through the local-binding path — flagged in spec §9 as likely
// a bug; this implementation deliberately treats merged globals as
// globals.
func (s *Scope) Merge(other *Scope) {
	for k, v := range other.globals {
		s.globals[k] = v
	}
	for k, v := range other.locals {
		s.locals[k] = v
	}
	for k := range other.conflicts {
		s.conflicts[k] = true
	}
	if other.hasEvent {
		s.hasEvent = true
	}
	for k, v := range other.inReq {
		s.inReq[k] = v
	}
	for k, v := range other.lambdaArgs {
		s.lambdaArgs[k] = append(s.lambdaArgs[k], v...)
	}
}

// InitLambdaArgs adds a declaration's lambda parameters as locals and
// seeds the lambdaArgs tracking map, one entry per parameter name.
func (s *Scope) InitLambdaArgs(names []string, typs []types.Type) {
	for i, name := range names {
		var t types.Type
		if i < len(typs) {
			t = typs[i]
		}
		s.Add(name, t)
		s.lambdaArgs[name] = []string{}
	}
}

// IsLambdaArg reports whether name was declared as a lambda parameter of
// the current declaration.
func (s *Scope) IsLambdaArg(name string) bool {
	_, ok := s.lambdaArgs[name]
	return ok
}

// UpdateLambdaArgs records that lambdaName was bound via actualName at a
// call site, so the declaration's final schema can be renamed to match.
func (s *Scope) UpdateLambdaArgs(lambdaName, actualName string) {
	s.lambdaArgs[lambdaName] = append(s.lambdaArgs[lambdaName], actualName)
}

// LambdaAliases returns every alias name recorded for lambdaName.
func (s *Scope) LambdaAliases(lambdaName string) []string {
	return s.lambdaArgs[lambdaName]
}

// Names returns every local name currently bound. Used by the Composer
// to detect a Join's overlapping field names when strict-conflict
// checking is enabled (spec §9 open question).
func (s *Scope) Names() []string {
	names := make([]string, 0, len(s.locals))
	for name := range s.locals {
		names = append(names, name)
	}
	return names
}
