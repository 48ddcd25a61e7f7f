package expression

import "github.com/thingpedia/tt-semcheck/types"

// contextVars maps a "$context."-prefixed pseudo-variable name to its
// static type. spec.md only names $context.location.*; SPEC_FULL.md §5
// additionally recovers $context.time.* from ThingTalk's broader
// pseudo-variable vocabulary.
var contextVars = map[string]types.Type{
	"$context.location.current_location": types.Location,
	"$context.location.home":             types.Location,
	"$context.location.work":             types.Location,
	"$context.time.morning":              types.Time,
	"$context.time.evening":              types.Time,
}
