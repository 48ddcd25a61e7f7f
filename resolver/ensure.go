package resolver

import (
	"context"

	"github.com/thingpedia/tt-semcheck/ast"
	"github.com/thingpedia/tt-semcheck/schema"
	"github.com/thingpedia/tt-semcheck/ttkind"
)

// EnsureSchema fills inv's Schema if it is not already attached. It is
// the checker's only suspending operation (spec §5): every other
// checking step is synchronous.
//
// Resolution order (spec §4.5):
//   - if a schema is already attached, return immediately;
//   - a builtin selector used as an action dispatches to the fixed
//     notify/return/save schemas, failing ErrInvalidBuiltinAction for any
//     other channel;
//   - a builtin selector used as anything else always fails;
//   - otherwise, schemaForSelector is consulted, honoring a class alias
//     substitution first.
func EnsureSchema(ctx context.Context, oracle Oracle, inv *ast.Invocation, primitiveKind ast.PrimitiveKind, useMeta bool, classes map[string]ast.ClassDef) error {
	if inv.Schema != nil {
		return nil
	}

	if inv.Selector.IsBuiltin {
		if primitiveKind != ast.KindAction {
			return ttkind.ErrInvalidBuiltinAction.New(inv.Channel)
		}
		sch, ok := builtinActionSchema(inv.Channel)
		if !ok {
			return ttkind.ErrInvalidBuiltinAction.New(inv.Channel)
		}
		inv.Schema = sch
		return nil
	}

	effectiveKind := inv.Selector.Kind
	if cls, ok := classes[inv.Selector.Kind]; ok {
		effectiveKind = cls.Extends
	}

	sch, err := oracle.SchemaForSelector(ctx, effectiveKind, inv.Channel, primitiveKind, useMeta, classes)
	if err != nil {
		return err
	}
	inv.Schema = sch
	return nil
}

// EnsureVarRefSchema resolves a VarRef-table/stream's schema via the
// memory-schema oracle, failing ErrUnknownMemoryTable on a miss (spec
// §4.5).
func EnsureVarRefSchema(ctx context.Context, oracle Oracle, name string, useMeta bool) (*schema.Schema, error) {
	sch, err := oracle.MemorySchema(ctx, name, useMeta)
	if err != nil {
		return nil, err
	}
	if sch == nil {
		return nil, ttkind.ErrUnknownMemoryTable.New(name)
	}
	return sch, nil
}
