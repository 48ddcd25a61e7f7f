// Package resolver implements the Schema Resolver (spec §4.5, C5): it
// asynchronously fills a primitive's schema from the oracle collaborator
// or the memory-schema oracle, and is the checker's sole suspension
// point (spec §5).
package resolver

import (
	"context"

	"github.com/thingpedia/tt-semcheck/ast"
	"github.com/thingpedia/tt-semcheck/schema"
)

// Oracle is the schema-retrieval collaborator (spec §6 "Schema oracle").
// Implementations are expected to be safe for concurrent reads and to
// cache internally (spec §5) — see CachingOracle for a ready-made
// wrapper.
type Oracle interface {
	// SchemaForSelector fetches the declared signature of a Thingpedia
	// function. classes lets a class alias substitute its extends kind
	// before lookup (spec §4.5).
	SchemaForSelector(ctx context.Context, kind, channel string, primitiveKind ast.PrimitiveKind, useMeta bool, classes map[string]ast.ClassDef) (*schema.Schema, error)

	// MemorySchema fetches a user-declared table schema. A nil schema
	// and nil error together are the signal that no such table exists
	// (spec §6: "returning null is the signal for UnknownMemoryTable").
	MemorySchema(ctx context.Context, name string, useMeta bool) (*schema.Schema, error)

	// AllowedSchemaFor fetches the schema a permission rule grants
	// access to, for the query or action side of a Policy.
	AllowedSchemaFor(ctx context.Context, permission string, kind PermissionKind) (*schema.Schema, error)
}

// PermissionKind distinguishes the two sides of a Policy that
// AllowedSchemaFor can be asked about (spec §6: "kind ∈ {queries, actions}").
type PermissionKind int

const (
	PermissionQueries PermissionKind = iota
	PermissionActions
)
