package resolver

import (
	"context"
	"sync"

	"github.com/thingpedia/tt-semcheck/ast"
	"github.com/thingpedia/tt-semcheck/schema"
	"github.com/thingpedia/tt-semcheck/ttkind"
)

// MemoryOracle is a simple in-process Oracle backed by maps, safe for
// concurrent reads (spec §5). It is the oracle used by the CLI demo and
// by the checker's own tests; a production deployment would instead talk
// to a remote Thingpedia index, but that transport is explicitly a
// collaborator out of this module's scope (spec §1).
type MemoryOracle struct {
	mu        sync.RWMutex
	functions map[string]*schema.Schema // key: kind + "/" + channel + "/" + primitiveKind + "/false"
	memory    map[string]*schema.Schema
	permissions map[string]*schema.Schema // key: permission + "/" + kind
}

// NewMemoryOracle returns an empty MemoryOracle.
func NewMemoryOracle() *MemoryOracle {
	return &MemoryOracle{
		functions:   map[string]*schema.Schema{},
		memory:      map[string]*schema.Schema{},
		permissions: map[string]*schema.Schema{},
	}
}

func functionKey(kind, channel string, primitiveKind ast.PrimitiveKind) string {
	return cacheKey(kind, channel, primitiveKind, false)
}

// RegisterFunction installs sch as the schema for (kind, channel,
// primitiveKind). Subsequent calls overwrite the previous registration.
func (m *MemoryOracle) RegisterFunction(kind, channel string, primitiveKind ast.PrimitiveKind, sch *schema.Schema) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.functions[functionKey(kind, channel, primitiveKind)] = sch
}

// RegisterMemoryTable installs sch as a user-declared table's schema.
func (m *MemoryOracle) RegisterMemoryTable(name string, sch *schema.Schema) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.memory[name] = sch
}

// RegisterPermission installs sch as the allowed schema for a
// permission/kind pair.
func (m *MemoryOracle) RegisterPermission(permission string, kind PermissionKind, sch *schema.Schema) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.permissions[permission+"/"+permKindString(kind)] = sch
}

func permKindString(k PermissionKind) string {
	if k == PermissionActions {
		return "actions"
	}
	return "queries"
}

func (m *MemoryOracle) SchemaForSelector(_ context.Context, kind, channel string, primitiveKind ast.PrimitiveKind, _ bool, _ map[string]ast.ClassDef) (*schema.Schema, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sch, ok := m.functions[functionKey(kind, channel, primitiveKind)]
	if !ok {
		return nil, ttkind.ErrUnknownFunction.New(kind, channel)
	}
	return sch.Clone(), nil
}

func (m *MemoryOracle) MemorySchema(_ context.Context, name string, _ bool) (*schema.Schema, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sch, ok := m.memory[name]
	if !ok {
		return nil, nil
	}
	return sch.Clone(), nil
}

func (m *MemoryOracle) AllowedSchemaFor(_ context.Context, permission string, kind PermissionKind) (*schema.Schema, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sch, ok := m.permissions[permission+"/"+permKindString(kind)]
	if !ok {
		return nil, ttkind.ErrUnknownFunction.New(permission, permKindString(kind))
	}
	return sch.Clone(), nil
}
