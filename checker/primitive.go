// Package checker implements the Primitive Checker (spec §4.7, C7):
// validating a primitive's input-parameter bindings against its schema,
// applying contextual coercions, recording lambda renames, and pushing
// unsupplied required inputs into scope.
package checker

import (
	"github.com/thingpedia/tt-semcheck/ast"
	"github.com/thingpedia/tt-semcheck/schema"
	"github.com/thingpedia/tt-semcheck/scope"
	"github.com/thingpedia/tt-semcheck/ttkind"
	"github.com/thingpedia/tt-semcheck/types"
)

// ValueTyper computes the type a Value would have if read in sc. The
// Expression Checker (package expression) supplies TypeForValue as this
// callback; Primitive Checker itself stays independent of package
// expression to avoid a dependency cycle (External sub-queries in
// package expression need to run this same input-parameter check).
type ValueTyper func(v ast.Value, sc *scope.Scope) (types.Type, error)

// contactRetag is the set of input-slot entity kinds at which a
// tt:username value is silently retagged as tt:contact_name when bound
// there (spec §4.7: "Coerce Entity(tt:username) values ... by retagging
// them tt:contact_name").
var contactRetag = map[string]bool{
	"tt:phone_number":  true,
	"tt:email_address": true,
}

// CheckInputParams validates every in_param against sch's required and
// optional inputs, then pushes any required input not supplied at this
// site into sc's pending inReq set (spec §4.7). isDeclaration controls
// whether sc's pending inReq (accumulated by an earlier pass) is
// first lifted into sch as new required inputs — true only for a
// Declaration, which becomes a first-class function whose lifted
// requireds are its parameters.
func CheckInputParams(params []ast.InputParam, sch *schema.Schema, sc *scope.Scope, typer ValueTyper, isDeclaration bool) error {
	if isDeclaration {
		pushInReq(sch, sc)
	}

	supplied := map[string]bool{}
	for _, p := range params {
		if supplied[p.Name] {
			return ttkind.ErrDuplicateInputParam.New(p.Name)
		}
		supplied[p.Name] = true

		slotType, required := sch.InReq[p.Name]
		if !required {
			optType, isOptional := sch.InOpt[p.Name]
			if !isOptional {
				return ttkind.ErrInvalidInputParameter.New(p.Name)
			}
			slotType = optType
		}

		if err := checkOneParam(p, slotType, sc, typer); err != nil {
			return err
		}
	}

	for name, t := range sch.InReq {
		if !supplied[name] {
			sc.PushInReq(name, t)
		}
	}

	return nil
}

func checkOneParam(p ast.InputParam, slotType types.Type, sc *scope.Scope, typer ValueTyper) error {
	value := p.Value

	if ent, ok := value.(ast.EntityValue); ok && ent.EntityType == "tt:username" && slotType.IsEntity() && contactRetag[slotType.EntityKind()] {
		value = ast.EntityValue{EntityType: "tt:contact_name", Value: ent.Value, Display: ent.Display}
	}

	valueType, err := typer(value, sc)
	if err != nil {
		return err
	}

	if !types.IsAssignable(valueType, slotType, nil, true) {
		return ttkind.ErrInvalidType.New(slotType.String(), valueType.String())
	}

	if ref, ok := p.Value.(ast.VarRefValue); ok && sc.IsLambdaArg(ref.Name) {
		sc.UpdateLambdaArgs(ref.Name, p.Name)
	}

	return nil
}

// pushInReq lifts every pending required input in sc into sch as new
// required inputs, then clears sc's pending set (spec §4.7, §4.9
// Declaration).
func pushInReq(sch *schema.Schema, sc *scope.Scope) {
	pending := sc.TakeInReq()
	for name, t := range pending {
		if sch.HasArg(name) {
			continue
		}
		sch.AddInput(name, t, true)
	}
}
