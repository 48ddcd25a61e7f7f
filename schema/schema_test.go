package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thingpedia/tt-semcheck/types"
)

type fakeScope struct {
	added   map[string]types.Type
	removed map[string]bool
}

func newFakeScope() *fakeScope {
	return &fakeScope{added: map[string]types.Type{}, removed: map[string]bool{}}
}
func (f *fakeScope) AddLocal(name string, t types.Type) { f.added[name] = t }
func (f *fakeScope) RemoveLocal(name string)             { f.removed[name] = true }

func twitterPost() *Schema {
	s, err := New(
		[]string{"status"},
		[]types.Type{types.String},
		[]ArgKind{Required},
		[]string{"status"},
		"post $status",
	)
	if err != nil {
		panic(err)
	}
	return s
}

func TestNewPartitionsArgs(t *testing.T) {
	s, err := New(
		[]string{"food", "price", "restaurant"},
		[]types.Type{types.String, types.Currency, types.String},
		[]ArgKind{Required, Optional, Output},
		[]string{"food", "price", "restaurant"},
		"",
	)
	require.NoError(t, err)
	assert.Equal(t, types.String, s.InReq["food"])
	assert.Equal(t, types.Currency, s.InOpt["price"])
	assert.Equal(t, types.String, s.Out["restaurant"])
	assert.Equal(t, 2, s.Index["restaurant"])
}

func TestCloneIsIndependent(t *testing.T) {
	s := twitterPost()
	c := s.Clone()
	c.AddOutput("result", types.Boolean, nil)

	assert.False(t, s.HasArg("result"))
	assert.True(t, c.HasArg("result"))
}

func TestAddInputShiftsOutputIndices(t *testing.T) {
	s := twitterPost()
	scope := newFakeScope()
	s.AddOutput("result", types.Boolean, scope)
	require.Equal(t, 1, s.Index["result"])

	s.AddInput("retry", types.Boolean, false)
	assert.Equal(t, 0, s.Index["status"])
	assert.Equal(t, 1, s.Index["retry"])
	assert.Equal(t, 2, s.Index["result"])
	assert.Equal(t, types.Boolean, s.InOpt["retry"])
}

func TestCleanOutputPurgesScope(t *testing.T) {
	s := twitterPost()
	scope := newFakeScope()
	s.AddOutput("result", types.Boolean, scope)

	s.CleanOutput(scope)
	assert.Empty(t, s.Out)
	assert.True(t, scope.removed["result"])
	assert.False(t, s.HasArg("result"))
}

func TestResolveProjectionExactOutputs(t *testing.T) {
	s := twitterPost()
	scope := newFakeScope()
	s.AddOutput("result", types.Boolean, scope)
	s.AddOutput("timestamp", types.Date, scope)

	err := s.ResolveProjection([]string{"result"}, scope)
	require.NoError(t, err)
	assert.Equal(t, map[string]types.Type{"result": types.Boolean}, s.Out)
	assert.True(t, scope.removed["timestamp"])
}

func TestResolveProjectionUnknownField(t *testing.T) {
	s := twitterPost()
	err := s.ResolveProjection([]string{"nope"}, nil)
	assert.Error(t, err)
}

func TestResolveJoinDropsParameterPassedInput(t *testing.T) {
	left, err := New(
		[]string{"temperature"},
		[]types.Type{types.Measure("C")},
		[]ArgKind{Output},
		nil, "",
	)
	require.NoError(t, err)
	right, err := New(
		[]string{"temperature", "mode"},
		[]types.Type{types.Measure("C"), types.String},
		[]ArgKind{Required, Optional},
		nil, "",
	)
	require.NoError(t, err)

	joined := ResolveJoin(left, right)
	_, stillRequired := joined.InReq["temperature"]
	assert.False(t, stillRequired, "parameter-passed rhs input must not survive into the join's inReq")
	assert.Contains(t, joined.InOpt, "mode")
	assert.Contains(t, joined.Out, "temperature")
}
