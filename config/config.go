// Package config loads the YAML options that parameterize a checker run
// (SPEC_FULL.md §3.3), grounded on aiseeq-glint's .glint.yaml loading
// pattern (pkg/core/config.go): a small typed struct unmarshaled with
// gopkg.in/yaml.v3, with a documented zero-value default.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/thingpedia/tt-semcheck/ast"
)

// classDef mirrors ast.ClassDef with yaml tags; ast stays free of a
// serialization dependency, so config converts between the two.
type classDef struct {
	Extends string `yaml:"extends"`
}

// Options is the on-disk shape of thingtalk-check.yaml.
type Options struct {
	// UseMeta toggles whether the oracle consults Thingpedia metadata
	// (vs. a plain function signature) when resolving a schema.
	UseMeta bool `yaml:"use_meta"`

	// StrictConflicts gates whether a Join's shared field names are
	// marked ambiguous (addConflict) or left permissively mergeable —
	// spec §9's open question, resolved as a config toggle rather than
	// fixed behavior so existing programs keep working until they opt in.
	StrictConflicts bool `yaml:"strict_conflicts"`

	// Classes maps a local class alias to the kind it extends (spec §6
	// "Classes map").
	Classes map[string]classDef `yaml:"classes"`
}

// Default returns the zero-risk configuration: no metadata lookups, no
// conflict enforcement, no class aliases.
func Default() *Options {
	return &Options{}
}

// Load reads and parses path as a thingtalk-check.yaml document.
func Load(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("thingtalk-check: reading config: %w", err)
	}

	opts := Default()
	if err := yaml.Unmarshal(data, opts); err != nil {
		return nil, fmt.Errorf("thingtalk-check: parsing config: %w", err)
	}
	return opts, nil
}

// ClassesMap converts the YAML-shaped Classes into the
// map[string]ast.ClassDef the checker's Env expects.
func (o *Options) ClassesMap() map[string]ast.ClassDef {
	out := make(map[string]ast.ClassDef, len(o.Classes))
	for kind, cd := range o.Classes {
		out[kind] = ast.ClassDef{Name: kind, Extends: cd.Extends}
	}
	return out
}
