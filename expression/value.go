// Package expression implements the Expression Checker (spec §4.6, C6):
// typing filter and scalar-computation expressions against a primitive's
// schema and the enclosing scope.
package expression

import (
	"strings"

	"github.com/thingpedia/tt-semcheck/ast"
	"github.com/thingpedia/tt-semcheck/scope"
	"github.com/thingpedia/tt-semcheck/ttkind"
	"github.com/thingpedia/tt-semcheck/types"
)

// TypeForValue computes the type of v as read in sc (spec §4.6):
// $context.* pseudo-variables resolve through a static table, other
// VarRefs resolve against sc (failing ErrVariableNotInScope on a miss),
// $event is only valid when sc.HasEvent() except for program_id which is
// always allowed, and every other value is typed from its literal form.
func TypeForValue(v ast.Value, sc *scope.Scope) (types.Type, error) {
	switch val := v.(type) {
	case ast.VarRefValue:
		if strings.HasPrefix(val.Name, "$context.") {
			if t, ok := contextVars[val.Name]; ok {
				return t, nil
			}
			return types.Type{}, ttkind.ErrVariableNotInScope.New(val.Name)
		}
		return sc.Get(val.Name)

	case ast.EventValue:
		if val.Name != nil && *val.Name == "program_id" {
			return types.String, nil
		}
		if !sc.HasEvent() {
			name := "$event"
			if val.Name != nil {
				name = "$event." + *val.Name
			}
			return types.Type{}, ttkind.ErrVariableNotInScope.New(name)
		}
		return types.Any, nil

	default:
		t, ok := ast.LiteralType(v)
		if !ok {
			return types.Type{}, ttkind.ErrNotImplemented.New("value")
		}
		return t, nil
	}
}
