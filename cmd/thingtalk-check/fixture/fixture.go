// Package fixture loads the YAML schema-fixture file the thingtalk-check
// CLI uses in place of a live Thingpedia index (SPEC_FULL.md §3.4: "an
// in-memory schema fixture file"), grounded on aiseeq-glint's YAML
// config loading (pkg/core/config.go) the same way package config is.
package fixture

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/thingpedia/tt-semcheck/ast"
	"github.com/thingpedia/tt-semcheck/cmd/thingtalk-check/wire"
	"github.com/thingpedia/tt-semcheck/resolver"
	"github.com/thingpedia/tt-semcheck/schema"
	"github.com/thingpedia/tt-semcheck/types"
)

type argDoc struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
	Kind string `yaml:"kind"` // "required" | "optional" | "output"
}

type functionDoc struct {
	Kind          string   `yaml:"kind"`
	Channel       string   `yaml:"channel"`
	PrimitiveKind string   `yaml:"primitiveKind"` // "query" | "action" | "trigger"
	Args          []argDoc `yaml:"args"`
}

type permissionDoc struct {
	Permission string   `yaml:"permission"`
	Kind       string   `yaml:"kind"` // "queries" | "actions"
	Args       []argDoc `yaml:"args"`
}

type memoryTableDoc struct {
	Name string   `yaml:"name"`
	Args []argDoc `yaml:"args"`
}

type document struct {
	Functions    []functionDoc    `yaml:"functions"`
	MemoryTables []memoryTableDoc `yaml:"memoryTables"`
	Permissions  []permissionDoc  `yaml:"permissions"`
}

// Load reads path and registers every declared function, memory table,
// and permission into a fresh MemoryOracle.
func Load(path string) (*resolver.MemoryOracle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("thingtalk-check: reading fixture: %w", err)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("thingtalk-check: parsing fixture: %w", err)
	}

	oracle := resolver.NewMemoryOracle()

	for _, fn := range doc.Functions {
		sch, err := buildSchema(fn.Args)
		if err != nil {
			return nil, fmt.Errorf("thingtalk-check: function %s.%s: %w", fn.Kind, fn.Channel, err)
		}
		pk, err := primitiveKind(fn.PrimitiveKind)
		if err != nil {
			return nil, fmt.Errorf("thingtalk-check: function %s.%s: %w", fn.Kind, fn.Channel, err)
		}
		oracle.RegisterFunction(fn.Kind, fn.Channel, pk, sch)
	}

	for _, mt := range doc.MemoryTables {
		sch, err := buildSchema(mt.Args)
		if err != nil {
			return nil, fmt.Errorf("thingtalk-check: memory table %s: %w", mt.Name, err)
		}
		oracle.RegisterMemoryTable(mt.Name, sch)
	}

	for _, p := range doc.Permissions {
		sch, err := buildSchema(p.Args)
		if err != nil {
			return nil, fmt.Errorf("thingtalk-check: permission %s: %w", p.Permission, err)
		}
		pk, err := permissionKind(p.Kind)
		if err != nil {
			return nil, fmt.Errorf("thingtalk-check: permission %s: %w", p.Permission, err)
		}
		oracle.RegisterPermission(p.Permission, pk, sch)
	}

	return oracle, nil
}

func buildSchema(args []argDoc) (*schema.Schema, error) {
	names := make([]string, len(args))
	typs := make([]types.Type, len(args))
	kinds := make([]schema.ArgKind, len(args))

	for i, a := range args {
		names[i] = a.Name
		t, err := wire.ParseType(a.Type)
		if err != nil {
			return nil, err
		}
		typs[i] = t

		switch a.Kind {
		case "required":
			kinds[i] = schema.Required
		case "optional":
			kinds[i] = schema.Optional
		case "output":
			kinds[i] = schema.Output
		default:
			return nil, fmt.Errorf("unrecognized arg kind %q for %q", a.Kind, a.Name)
		}
	}

	return schema.New(names, typs, kinds, nil, "")
}

func primitiveKind(s string) (ast.PrimitiveKind, error) {
	switch s {
	case "query":
		return ast.KindQuery, nil
	case "action":
		return ast.KindAction, nil
	case "trigger":
		return ast.KindTrigger, nil
	default:
		return 0, fmt.Errorf("unrecognized primitiveKind %q", s)
	}
}

func permissionKind(s string) (resolver.PermissionKind, error) {
	switch s {
	case "queries":
		return resolver.PermissionQueries, nil
	case "actions":
		return resolver.PermissionActions, nil
	default:
		return 0, fmt.Errorf("unrecognized permission kind %q", s)
	}
}
