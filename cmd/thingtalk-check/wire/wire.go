// Package wire decodes the JSON program format the thingtalk-check CLI
// reads (SPEC_FULL.md §3.4: "reading a JSON-encoded ast.Program"). Every
// closed sum type in package ast (Value, BooleanExpression, Table,
// Stream, ScalarExpression) is given a "kind"-discriminated envelope;
// Decode dispatches on that tag the same way the checker itself
// switches on the concrete Go type once the AST is built.
package wire

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/thingpedia/tt-semcheck/ast"
	"github.com/thingpedia/tt-semcheck/types"
)

type envelope struct {
	Kind string `json:"kind"`
}

// ParseType parses a type literal such as "Number", "Measure(C)",
// "Entity(tt:username)", "Enum(a,b,c)", or "Array(Measure(C))". It is
// used by both the program decoder (Declaration.ArgTypes) and the
// schema-fixture loader, so a function signature and the program that
// calls it agree on one textual type grammar.
func ParseType(s string) (types.Type, error) {
	s = strings.TrimSpace(s)
	switch s {
	case "Boolean":
		return types.Boolean, nil
	case "Number":
		return types.Number, nil
	case "String":
		return types.String, nil
	case "Date":
		return types.Date, nil
	case "Time":
		return types.Time, nil
	case "Location":
		return types.Location, nil
	case "Currency":
		return types.Currency, nil
	case "Any":
		return types.Any, nil
	}

	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return types.Type{}, fmt.Errorf("wire: unrecognized type %q", s)
	}
	head, arg := s[:open], s[open+1:len(s)-1]

	switch head {
	case "Measure":
		return types.Measure(arg), nil
	case "Entity":
		return types.Entity(arg), nil
	case "Enum":
		return types.Enum(splitCommaList(arg)...), nil
	case "Array":
		elem, err := ParseType(arg)
		if err != nil {
			return types.Type{}, err
		}
		return types.Array(elem), nil
	default:
		return types.Type{}, fmt.Errorf("wire: unrecognized type %q", s)
	}
}

func splitCommaList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// DecodeProgram parses data as a Program document.
func DecodeProgram(data []byte) (*ast.Program, error) {
	var doc struct {
		Classes      map[string]struct{ Extends string } `json:"classes"`
		Declarations []json.RawMessage                    `json:"declarations"`
		Rules        []json.RawMessage                    `json:"rules"`
		Principal    json.RawMessage                      `json:"principal"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("wire: decoding program: %w", err)
	}

	program := &ast.Program{}
	if len(doc.Classes) > 0 {
		program.Classes = make(map[string]ast.ClassDef, len(doc.Classes))
		for kind, cd := range doc.Classes {
			program.Classes[kind] = ast.ClassDef{Name: kind, Extends: cd.Extends}
		}
	}

	for _, raw := range doc.Declarations {
		decl, err := decodeDeclaration(raw)
		if err != nil {
			return nil, err
		}
		program.Declarations = append(program.Declarations, decl)
	}

	for _, raw := range doc.Rules {
		rule, err := decodeRule(raw)
		if err != nil {
			return nil, err
		}
		program.Rules = append(program.Rules, rule)
	}

	if len(doc.Principal) > 0 {
		v, err := decodeValue(doc.Principal)
		if err != nil {
			return nil, err
		}
		program.Principal = v
	}
	return program, nil
}

// DecodePolicy parses data as a standalone Policy document, for the
// permission-rule path of `thingtalk-check check --policy`.
func DecodePolicy(data []byte) (*ast.Policy, error) {
	var doc struct {
		Principal json.RawMessage `json:"principal"`
		Query     json.RawMessage `json:"query"`
		Action    json.RawMessage `json:"action"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("wire: decoding policy: %w", err)
	}

	policy := &ast.Policy{}
	if len(doc.Principal) > 0 {
		f, err := decodeFilter(doc.Principal)
		if err != nil {
			return nil, err
		}
		policy.Principal = f
	}
	if len(doc.Query) > 0 {
		inv, err := decodeInvocation(doc.Query)
		if err != nil {
			return nil, err
		}
		policy.Query = inv
	}
	if len(doc.Action) > 0 {
		inv, err := decodeInvocation(doc.Action)
		if err != nil {
			return nil, err
		}
		policy.Action = inv
	}
	return policy, nil
}

func decodeDeclaration(raw json.RawMessage) (*ast.Declaration, error) {
	var doc struct {
		Name        string            `json:"name"`
		Type        string            `json:"type"`
		Args        []string          `json:"args"`
		ArgTypes    []string          `json:"argTypes"`
		StreamValue json.RawMessage   `json:"streamValue"`
		TableValue  json.RawMessage   `json:"tableValue"`
		ActionValue json.RawMessage   `json:"actionValue"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("wire: decoding declaration: %w", err)
	}

	decl := &ast.Declaration{Name: doc.Name, Args: doc.Args}
	for _, t := range doc.ArgTypes {
		pt, err := ParseType(t)
		if err != nil {
			return nil, err
		}
		decl.ArgTypes = append(decl.ArgTypes, pt)
	}

	switch doc.Type {
	case "stream":
		decl.Type = ast.DeclStream
		s, err := decodeStream(doc.StreamValue)
		if err != nil {
			return nil, err
		}
		decl.StreamValue = s
	case "table":
		decl.Type = ast.DeclTable
		tbl, err := decodeTable(doc.TableValue)
		if err != nil {
			return nil, err
		}
		decl.TableValue = tbl
	case "action":
		decl.Type = ast.DeclAction
		inv, err := decodeInvocation(doc.ActionValue)
		if err != nil {
			return nil, err
		}
		decl.ActionValue = inv
	default:
		return nil, fmt.Errorf("wire: unrecognized declaration type %q", doc.Type)
	}
	return decl, nil
}

func decodeRule(raw json.RawMessage) (*ast.Rule, error) {
	var doc struct {
		Stream  json.RawMessage   `json:"stream"`
		Table   json.RawMessage   `json:"table"`
		Actions []json.RawMessage `json:"actions"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("wire: decoding rule: %w", err)
	}

	rule := &ast.Rule{}
	if len(doc.Stream) > 0 {
		s, err := decodeStream(doc.Stream)
		if err != nil {
			return nil, err
		}
		rule.Stream = s
	}
	if len(doc.Table) > 0 {
		tbl, err := decodeTable(doc.Table)
		if err != nil {
			return nil, err
		}
		rule.Table = tbl
	}
	for _, raw := range doc.Actions {
		inv, err := decodeInvocation(raw)
		if err != nil {
			return nil, err
		}
		rule.Actions = append(rule.Actions, inv)
	}
	return rule, nil
}

func decodeSelector(raw json.RawMessage) (ast.Selector, error) {
	var doc struct {
		Kind      string  `json:"kind"`
		Principal *string `json:"principal"`
		IsBuiltin bool    `json:"isBuiltin"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return ast.Selector{}, fmt.Errorf("wire: decoding selector: %w", err)
	}
	return ast.Selector{Kind: doc.Kind, Principal: doc.Principal, IsBuiltin: doc.IsBuiltin}, nil
}

func decodeInputParams(raw []json.RawMessage) ([]ast.InputParam, error) {
	params := make([]ast.InputParam, 0, len(raw))
	for _, r := range raw {
		var doc struct {
			Name  string          `json:"name"`
			Value json.RawMessage `json:"value"`
		}
		if err := json.Unmarshal(r, &doc); err != nil {
			return nil, fmt.Errorf("wire: decoding input param: %w", err)
		}
		v, err := decodeValue(doc.Value)
		if err != nil {
			return nil, err
		}
		params = append(params, ast.InputParam{Name: doc.Name, Value: v})
	}
	return params, nil
}

func decodeInvocation(raw json.RawMessage) (*ast.Invocation, error) {
	var doc struct {
		Selector json.RawMessage   `json:"selector"`
		Channel  string            `json:"channel"`
		InParams []json.RawMessage `json:"inParams"`
		Filter   json.RawMessage   `json:"filter"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("wire: decoding invocation: %w", err)
	}

	sel, err := decodeSelector(doc.Selector)
	if err != nil {
		return nil, err
	}
	params, err := decodeInputParams(doc.InParams)
	if err != nil {
		return nil, err
	}

	inv := &ast.Invocation{Selector: sel, Channel: doc.Channel, InParams: params}
	if len(doc.Filter) > 0 {
		f, err := decodeFilter(doc.Filter)
		if err != nil {
			return nil, err
		}
		inv.Filter = f
	}
	return inv, nil
}

func decodeValue(raw json.RawMessage) (ast.Value, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("wire: decoding value: %w", err)
	}

	switch env.Kind {
	case "number":
		var doc struct{ Value float64 }
		_ = json.Unmarshal(raw, &doc)
		return ast.NumberValue{Value: doc.Value}, nil
	case "string":
		var doc struct{ Value string }
		_ = json.Unmarshal(raw, &doc)
		return ast.StringValue{Value: doc.Value}, nil
	case "boolean":
		var doc struct{ Value bool }
		_ = json.Unmarshal(raw, &doc)
		return ast.BooleanValue{Value: doc.Value}, nil
	case "date":
		var doc struct{ Value string }
		_ = json.Unmarshal(raw, &doc)
		return ast.DateValue{Value: doc.Value}, nil
	case "time":
		var doc struct{ Hour, Minute, Second int }
		_ = json.Unmarshal(raw, &doc)
		return ast.TimeValue{Hour: doc.Hour, Minute: doc.Minute, Second: doc.Second}, nil
	case "location":
		var doc struct {
			Latitude, Longitude float64
			Display             string
		}
		_ = json.Unmarshal(raw, &doc)
		return ast.LocationValue{Latitude: doc.Latitude, Longitude: doc.Longitude, Display: doc.Display}, nil
	case "currency":
		var doc struct {
			Value float64
			Code  string
		}
		_ = json.Unmarshal(raw, &doc)
		return ast.CurrencyValue{Value: doc.Value, Code: doc.Code}, nil
	case "entity":
		var doc struct{ EntityType, Value, Display string }
		_ = json.Unmarshal(raw, &doc)
		return ast.EntityValue{EntityType: doc.EntityType, Value: doc.Value, Display: doc.Display}, nil
	case "enum":
		var doc struct{ Value string }
		_ = json.Unmarshal(raw, &doc)
		return ast.EnumValue{Value: doc.Value}, nil
	case "measure":
		var doc struct {
			Value float64
			Unit  string
		}
		_ = json.Unmarshal(raw, &doc)
		return ast.MeasureValue{Value: doc.Value, Unit: doc.Unit}, nil
	case "compoundMeasure":
		var doc struct {
			Parts []struct {
				Value float64
				Unit  string
			}
		}
		_ = json.Unmarshal(raw, &doc)
		parts := make([]ast.MeasureValue, len(doc.Parts))
		for i, p := range doc.Parts {
			parts[i] = ast.MeasureValue{Value: p.Value, Unit: p.Unit}
		}
		return ast.CompoundMeasureValue{Parts: parts}, nil
	case "array":
		var doc struct{ Elements []json.RawMessage }
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
		elems := make([]ast.Value, 0, len(doc.Elements))
		for _, e := range doc.Elements {
			v, err := decodeValue(e)
			if err != nil {
				return nil, err
			}
			elems = append(elems, v)
		}
		return ast.ArrayValue{Elements: elems}, nil
	case "varref":
		var doc struct{ Name string }
		_ = json.Unmarshal(raw, &doc)
		return ast.VarRefValue{Name: doc.Name}, nil
	case "event":
		var doc struct{ Name *string }
		_ = json.Unmarshal(raw, &doc)
		return ast.EventValue{Name: doc.Name}, nil
	case "undefined":
		var doc struct{ Remote bool }
		_ = json.Unmarshal(raw, &doc)
		return ast.UndefinedValue{Remote: doc.Remote}, nil
	default:
		return nil, fmt.Errorf("wire: unrecognized value kind %q", env.Kind)
	}
}

func decodeFilter(raw json.RawMessage) (ast.BooleanExpression, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("wire: decoding filter: %w", err)
	}

	switch env.Kind {
	case "true":
		return ast.True{}, nil
	case "false":
		return ast.False{}, nil
	case "and", "or":
		var doc struct{ Operands []json.RawMessage }
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
		operands := make([]ast.BooleanExpression, 0, len(doc.Operands))
		for _, o := range doc.Operands {
			be, err := decodeFilter(o)
			if err != nil {
				return nil, err
			}
			operands = append(operands, be)
		}
		if env.Kind == "and" {
			return ast.And{Operands: operands}, nil
		}
		return ast.Or{Operands: operands}, nil
	case "not":
		var doc struct{ Operand json.RawMessage }
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
		operand, err := decodeFilter(doc.Operand)
		if err != nil {
			return nil, err
		}
		return ast.Not{Operand: operand}, nil
	case "atom":
		var doc struct {
			Name  string
			Op    string
			Value json.RawMessage
		}
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
		v, err := decodeValue(doc.Value)
		if err != nil {
			return nil, err
		}
		return &ast.Atom{Name: doc.Name, Op: doc.Op, Value: v}, nil
	case "external":
		var doc struct {
			Selector json.RawMessage
			Channel  string
			InParams []json.RawMessage
			Filter   json.RawMessage
		}
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
		sel, err := decodeSelector(doc.Selector)
		if err != nil {
			return nil, err
		}
		params, err := decodeInputParams(doc.InParams)
		if err != nil {
			return nil, err
		}
		filter, err := decodeFilter(doc.Filter)
		if err != nil {
			return nil, err
		}
		return &ast.External{Selector: sel, Channel: doc.Channel, InParams: params, Filter: filter}, nil
	default:
		return nil, fmt.Errorf("wire: unrecognized filter kind %q", env.Kind)
	}
}

func decodeScalar(raw json.RawMessage) (ast.ScalarExpression, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("wire: decoding scalar expression: %w", err)
	}

	switch env.Kind {
	case "primary":
		var doc struct{ Value json.RawMessage }
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
		v, err := decodeValue(doc.Value)
		if err != nil {
			return nil, err
		}
		return ast.ScalarPrimary{Value: v}, nil
	case "derived":
		var doc struct {
			Op       string
			Operands []json.RawMessage
		}
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
		operands := make([]ast.ScalarExpression, 0, len(doc.Operands))
		for _, o := range doc.Operands {
			se, err := decodeScalar(o)
			if err != nil {
				return nil, err
			}
			operands = append(operands, se)
		}
		return ast.ScalarDerived{Op: doc.Op, Operands: operands}, nil
	case "boolean":
		var doc struct{ Value json.RawMessage }
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
		be, err := decodeFilter(doc.Value)
		if err != nil {
			return nil, err
		}
		return ast.ScalarBoolean{Value: be}, nil
	default:
		return nil, fmt.Errorf("wire: unrecognized scalar expression kind %q", env.Kind)
	}
}

func decodeTable(raw json.RawMessage) (ast.Table, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("wire: decoding table: %w", err)
	}

	switch env.Kind {
	case "invocation":
		var doc struct{ Invocation json.RawMessage }
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
		inv, err := decodeInvocation(doc.Invocation)
		if err != nil {
			return nil, err
		}
		return &ast.TableInvocation{Invocation: inv}, nil
	case "varref":
		var doc struct {
			Name     string
			InParams []json.RawMessage
		}
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
		params, err := decodeInputParams(doc.InParams)
		if err != nil {
			return nil, err
		}
		return &ast.VarRefTable{Name: doc.Name, InParams: params}, nil
	case "filter":
		table, filter, err := decodeTableFilterPair(raw)
		if err != nil {
			return nil, err
		}
		return &ast.TableFilter{Table: table, Filter: filter}, nil
	case "projection":
		var doc struct {
			Table json.RawMessage
			Args  []string
		}
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
		table, err := decodeTable(doc.Table)
		if err != nil {
			return nil, err
		}
		return &ast.Projection{Table: table, Args: doc.Args}, nil
	case "alias":
		var doc struct {
			Table json.RawMessage
			Name  string
		}
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
		table, err := decodeTable(doc.Table)
		if err != nil {
			return nil, err
		}
		return &ast.TableAlias{Table: table, Name: doc.Name}, nil
	case "aggregation":
		var doc struct {
			Table json.RawMessage
			Field string
			Op    string
			Alias *string
		}
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
		table, err := decodeTable(doc.Table)
		if err != nil {
			return nil, err
		}
		return &ast.Aggregation{Table: table, Field: doc.Field, Op: doc.Op, Alias: doc.Alias}, nil
	case "argminmax":
		var doc struct {
			Table json.RawMessage
			Field string
			Op    string
			Base  json.RawMessage
			Limit json.RawMessage
		}
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
		table, err := decodeTable(doc.Table)
		if err != nil {
			return nil, err
		}
		base, err := decodeScalar(doc.Base)
		if err != nil {
			return nil, err
		}
		limit, err := decodeScalar(doc.Limit)
		if err != nil {
			return nil, err
		}
		return &ast.ArgMinMax{Table: table, Field: doc.Field, Op: doc.Op, Base: base, Limit: limit}, nil
	case "join":
		var doc struct {
			LHS      json.RawMessage
			RHS      json.RawMessage
			InParams []json.RawMessage
		}
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
		lhs, err := decodeTable(doc.LHS)
		if err != nil {
			return nil, err
		}
		rhs, err := decodeTable(doc.RHS)
		if err != nil {
			return nil, err
		}
		params, err := decodeInputParams(doc.InParams)
		if err != nil {
			return nil, err
		}
		return &ast.Join{LHS: lhs, RHS: rhs, InParams: params}, nil
	case "window", "timeseries", "sequence", "history":
		table, base, delta, err := decodeTableRangePair(raw)
		if err != nil {
			return nil, err
		}
		switch env.Kind {
		case "window":
			return &ast.Window{Table: table, Base: base, Delta: delta}, nil
		case "timeseries":
			return &ast.TimeSeries{Table: table, Base: base, Delta: delta}, nil
		case "sequence":
			return &ast.Sequence{Table: table, Base: base, Delta: delta}, nil
		default:
			return &ast.History{Table: table, Base: base, Delta: delta}, nil
		}
	case "compute":
		var doc struct {
			Table json.RawMessage
			Expr  json.RawMessage
			Alias *string
		}
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
		table, err := decodeTable(doc.Table)
		if err != nil {
			return nil, err
		}
		expr, err := decodeScalar(doc.Expr)
		if err != nil {
			return nil, err
		}
		return &ast.Compute{Table: table, Expr: expr, Alias: doc.Alias}, nil
	case "sort":
		var doc struct {
			Table     json.RawMessage
			Field     string
			Direction string
		}
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
		table, err := decodeTable(doc.Table)
		if err != nil {
			return nil, err
		}
		return &ast.Sort{Table: table, Field: doc.Field, Direction: doc.Direction}, nil
	case "index":
		var doc struct {
			Table json.RawMessage
			Base  json.RawMessage
		}
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
		table, err := decodeTable(doc.Table)
		if err != nil {
			return nil, err
		}
		base, err := decodeScalar(doc.Base)
		if err != nil {
			return nil, err
		}
		return &ast.Index{Table: table, Base: base}, nil
	case "slice":
		var doc struct {
			Table json.RawMessage
			Base  json.RawMessage
			Limit json.RawMessage
		}
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
		table, err := decodeTable(doc.Table)
		if err != nil {
			return nil, err
		}
		base, err := decodeScalar(doc.Base)
		if err != nil {
			return nil, err
		}
		limit, err := decodeScalar(doc.Limit)
		if err != nil {
			return nil, err
		}
		return &ast.Slice{Table: table, Base: base, Limit: limit}, nil
	default:
		return nil, fmt.Errorf("wire: unrecognized table kind %q", env.Kind)
	}
}

func decodeTableFilterPair(raw json.RawMessage) (ast.Table, ast.BooleanExpression, error) {
	var doc struct {
		Table  json.RawMessage
		Filter json.RawMessage
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, nil, err
	}
	table, err := decodeTable(doc.Table)
	if err != nil {
		return nil, nil, err
	}
	filter, err := decodeFilter(doc.Filter)
	if err != nil {
		return nil, nil, err
	}
	return table, filter, nil
}

func decodeTableRangePair(raw json.RawMessage) (ast.Table, ast.ScalarExpression, ast.ScalarExpression, error) {
	var doc struct {
		Table json.RawMessage
		Base  json.RawMessage
		Delta json.RawMessage
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, nil, nil, err
	}
	table, err := decodeTable(doc.Table)
	if err != nil {
		return nil, nil, nil, err
	}
	base, err := decodeScalar(doc.Base)
	if err != nil {
		return nil, nil, nil, err
	}
	delta, err := decodeScalar(doc.Delta)
	if err != nil {
		return nil, nil, nil, err
	}
	return table, base, delta, nil
}

func decodeStream(raw json.RawMessage) (ast.Stream, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("wire: decoding stream: %w", err)
	}

	switch env.Kind {
	case "timer":
		var doc struct{ Base, Interval json.RawMessage }
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
		base, err := decodeScalar(doc.Base)
		if err != nil {
			return nil, err
		}
		interval, err := decodeScalar(doc.Interval)
		if err != nil {
			return nil, err
		}
		return &ast.Timer{Base: base, Interval: interval}, nil
	case "attimer":
		var doc struct{ Time json.RawMessage }
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
		t, err := decodeScalar(doc.Time)
		if err != nil {
			return nil, err
		}
		return &ast.AtTimer{Time: t}, nil
	case "monitor":
		var doc struct {
			Table json.RawMessage
			Args  []string
		}
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
		table, err := decodeTable(doc.Table)
		if err != nil {
			return nil, err
		}
		return &ast.Monitor{Table: table, Args: doc.Args}, nil
	case "edgefilter":
		stream, filter, err := decodeStreamFilterPair(raw)
		if err != nil {
			return nil, err
		}
		return &ast.EdgeFilter{Stream: stream, Filter: filter}, nil
	case "edgenew":
		var doc struct{ Stream json.RawMessage }
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
		stream, err := decodeStream(doc.Stream)
		if err != nil {
			return nil, err
		}
		return &ast.EdgeNew{Stream: stream}, nil
	case "streamfilter":
		stream, filter, err := decodeStreamFilterPair(raw)
		if err != nil {
			return nil, err
		}
		return &ast.StreamFilter{Stream: stream, Filter: filter}, nil
	case "streamprojection":
		var doc struct {
			Stream json.RawMessage
			Args   []string
		}
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
		stream, err := decodeStream(doc.Stream)
		if err != nil {
			return nil, err
		}
		return &ast.StreamProjection{Stream: stream, Args: doc.Args}, nil
	case "streamalias":
		var doc struct {
			Stream json.RawMessage
			Name   string
		}
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
		stream, err := decodeStream(doc.Stream)
		if err != nil {
			return nil, err
		}
		return &ast.StreamAlias{Stream: stream, Name: doc.Name}, nil
	case "streamjoin":
		var doc struct {
			LHS      json.RawMessage
			RHS      json.RawMessage
			InParams []json.RawMessage
		}
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
		lhs, err := decodeStream(doc.LHS)
		if err != nil {
			return nil, err
		}
		rhs, err := decodeTable(doc.RHS)
		if err != nil {
			return nil, err
		}
		params, err := decodeInputParams(doc.InParams)
		if err != nil {
			return nil, err
		}
		return &ast.StreamJoin{LHS: lhs, RHS: rhs, InParams: params}, nil
	case "varref":
		var doc struct {
			Name     string
			InParams []json.RawMessage
		}
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
		params, err := decodeInputParams(doc.InParams)
		if err != nil {
			return nil, err
		}
		return &ast.VarRefStream{Name: doc.Name, InParams: params}, nil
	default:
		return nil, fmt.Errorf("wire: unrecognized stream kind %q", env.Kind)
	}
}

func decodeStreamFilterPair(raw json.RawMessage) (ast.Stream, ast.BooleanExpression, error) {
	var doc struct {
		Stream json.RawMessage
		Filter json.RawMessage
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, nil, err
	}
	stream, err := decodeStream(doc.Stream)
	if err != nil {
		return nil, nil, err
	}
	filter, err := decodeFilter(doc.Filter)
	if err != nil {
		return nil, nil, err
	}
	return stream, filter, nil
}
