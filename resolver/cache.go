package resolver

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/thingpedia/tt-semcheck/ast"
	"github.com/thingpedia/tt-semcheck/schema"
)

// CachingOracle wraps another Oracle with a bounded LRU cache keyed by
// (kind, channel, primitiveKind, useMeta), satisfying spec §5's expectation that
// "the schema oracle itself is expected to ... cache internally." Only
// SchemaForSelector results are cached; MemorySchema and
// AllowedSchemaFor are request-scoped and pass straight through.
type CachingOracle struct {
	inner Oracle
	cache *lru.Cache[string, *schema.Schema]
}

// NewCachingOracle wraps inner with an LRU cache holding up to size
// resolved schemas.
func NewCachingOracle(inner Oracle, size int) (*CachingOracle, error) {
	if size <= 0 {
		size = 256
	}
	c, err := lru.New[string, *schema.Schema](size)
	if err != nil {
		return nil, err
	}
	return &CachingOracle{inner: inner, cache: c}, nil
}

func cacheKey(kind, channel string, primitiveKind ast.PrimitiveKind, useMeta bool) string {
	return fmt.Sprintf("%s/%s/%d/%t", kind, channel, primitiveKind, useMeta)
}

func (c *CachingOracle) SchemaForSelector(ctx context.Context, kind, channel string, primitiveKind ast.PrimitiveKind, useMeta bool, classes map[string]ast.ClassDef) (*schema.Schema, error) {
	key := cacheKey(kind, channel, primitiveKind, useMeta)
	if cached, ok := c.cache.Get(key); ok {
		return cached.Clone(), nil
	}

	sch, err := c.inner.SchemaForSelector(ctx, kind, channel, primitiveKind, useMeta, classes)
	if err != nil {
		return nil, err
	}
	c.cache.Add(key, sch)
	return sch.Clone(), nil
}

func (c *CachingOracle) MemorySchema(ctx context.Context, name string, useMeta bool) (*schema.Schema, error) {
	return c.inner.MemorySchema(ctx, name, useMeta)
}

func (c *CachingOracle) AllowedSchemaFor(ctx context.Context, permission string, kind PermissionKind) (*schema.Schema, error) {
	return c.inner.AllowedSchemaFor(ctx, permission, kind)
}
