// Package ttkind declares the typed error kinds raised by the ThingTalk
// semantic analyzer. Every kind is a distinct, matchable failure mode so
// callers can discriminate checker errors the way the rest of the
// toolchain discriminates parser or runtime errors.
package ttkind

import "gopkg.in/src-d/go-errors.v1"

var (
	// ErrInvalidPrincipal is raised when a program's principal is not a
	// tt:contact or tt:username entity.
	ErrInvalidPrincipal = errors.NewKind("invalid principal: %s")

	// ErrUnknownMemoryTable is raised when a VarRef cannot be resolved by
	// the memory-schema oracle.
	ErrUnknownMemoryTable = errors.NewKind("unknown memory table: %s")
	// ErrInvalidBuiltinAction is raised for a builtin selector channel
	// other than notify, return, or save.
	ErrInvalidBuiltinAction = errors.NewKind("invalid builtin action: %s")
	// ErrUnknownFunction is raised when the schema oracle cannot resolve
	// a (kind, channel) pair.
	ErrUnknownFunction = errors.NewKind("unknown function: %s.%s")

	// ErrVariableNotInScope is raised when a VarRef or Event value has no
	// binding in the current scope.
	ErrVariableNotInScope = errors.NewKind("variable not in scope: %s")
	// ErrFieldConflict is raised when a name made ambiguous by a join is
	// read before being disambiguated.
	ErrFieldConflict = errors.NewKind("field conflict: %s")
	// ErrInvalidFieldName is raised when a projection, monitor, or sort
	// names a field absent from the schema.
	ErrInvalidFieldName = errors.NewKind("invalid field name: %s")
	// ErrFieldRedefinition is raised when a global name is redefined.
	ErrFieldRedefinition = errors.NewKind("field redefinition: %s")

	// ErrInvalidInputParameter is raised when an in_param names a field
	// absent from the primitive's required/optional inputs.
	ErrInvalidInputParameter = errors.NewKind("invalid input parameter: %s")
	// ErrDuplicateInputParam is raised when the same input is supplied
	// twice at one call site.
	ErrDuplicateInputParam = errors.NewKind("duplicate input parameter: %s")
	// ErrInvalidType is raised when a value's type cannot be assigned to
	// the slot it is bound to.
	ErrInvalidType = errors.NewKind("invalid type: expected %s, got %s")

	// ErrInvalidOperator is raised when an operator name is not present
	// in its operator table.
	ErrInvalidOperator = errors.NewKind("invalid operator: %s")
	// ErrInvalidParameterTypes is raised when no signature in an operator
	// table accepts the given operand types.
	ErrInvalidParameterTypes = errors.NewKind("invalid parameter types for %s: %s")

	// ErrInvalidAggregationField is raised when an aggregation names a
	// field absent from the table's outputs.
	ErrInvalidAggregationField = errors.NewKind("invalid aggregation field: %s")
	// ErrInvalidAggregation is raised when an aggregation operator has no
	// matching overload for the field's type.
	ErrInvalidAggregation = errors.NewKind("invalid aggregation: %s over %s")
	// ErrInvalidArgMinMaxField is raised when an argmin/argmax field is
	// not orderable.
	ErrInvalidArgMinMaxField = errors.NewKind("invalid argmin/argmax field: %s")
	// ErrInvalidRange is raised when a counted window's base/limit are
	// not Number.
	ErrInvalidRange = errors.NewKind("invalid range: %s")
	// ErrInvalidTimeRange is raised when a time window's base/delta are
	// not Date/Measure(ms).
	ErrInvalidTimeRange = errors.NewKind("invalid time range: %s")

	// ErrNotImplemented guards AST shapes the checker does not (yet)
	// understand.
	ErrNotImplemented = errors.NewKind("not implemented: %s")
	// ErrNoGetFunction is raised when a rule's only action is the builtin
	// notify with no query or stream.
	ErrNoGetFunction = errors.NewKind("rule has no query or stream and only calls notify")
)
