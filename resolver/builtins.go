package resolver

import "github.com/thingpedia/tt-semcheck/schema"

// Builtin action schemas (spec §6): notify, return, and save each take
// no inputs and produce no outputs.
var (
	NotifySchema = emptySchema()
	ReturnSchema = emptySchema()
	SaveSchema   = emptySchema()
)

func emptySchema() *schema.Schema {
	s, err := schema.New(nil, nil, nil, nil, "")
	if err != nil {
		// unreachable: empty arg lists always construct successfully.
		panic(err)
	}
	return s
}

// builtinActionSchema dispatches a builtin-selector action channel to its
// fixed schema (spec §4.5).
func builtinActionSchema(channel string) (*schema.Schema, bool) {
	switch channel {
	case "notify":
		return NotifySchema.Clone(), true
	case "return":
		return ReturnSchema.Clone(), true
	case "save":
		return SaveSchema.Clone(), true
	default:
		return nil, false
	}
}
