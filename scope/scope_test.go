package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thingpedia/tt-semcheck/schema"
	"github.com/thingpedia/tt-semcheck/types"
)

func TestGetMissingVariable(t *testing.T) {
	s := New()
	_, err := s.Get("x")
	assert.Error(t, err)
}

func TestGetConflictedVariable(t *testing.T) {
	s := New()
	s.Add("temperature", types.Measure("C"))
	s.AddConflict("temperature")

	_, err := s.Get("temperature")
	assert.Error(t, err)
}

func TestRemoveClearsConflictToo(t *testing.T) {
	s := New()
	s.Add("temperature", types.Measure("C"))
	s.AddConflict("temperature")
	s.Remove("temperature")

	s.Add("temperature", types.Measure("F"))
	got, err := s.Get("temperature")
	require.NoError(t, err, "a removed conflict must not resurface on rebinding")
	assert.Equal(t, types.Measure("F"), got)
}

func TestAddGlobalRejectsRedefinition(t *testing.T) {
	s := New()
	require.NoError(t, s.AddGlobal("t", &schema.Schema{}))
	err := s.AddGlobal("t", &schema.Schema{})
	assert.Error(t, err)
}

func TestCloneIsIndependent(t *testing.T) {
	s := New()
	s.Add("x", types.Number)
	c := s.Clone()
	c.Add("x", types.String)

	got, err := s.Get("x")
	require.NoError(t, err)
	assert.Equal(t, types.Number, got)
}

func TestPrefixRenamesLocals(t *testing.T) {
	s := New()
	s.Add("name", types.String)
	s.Prefix("twitter")

	_, err := s.Get("name")
	assert.Error(t, err)
	got, err := s.Get("twitter.name")
	require.NoError(t, err)
	assert.Equal(t, types.String, got)
}

func TestMergeKeepsGlobalsAsGlobals(t *testing.T) {
	s := New()
	other := New()
	require.NoError(t, other.AddGlobal("t", &schema.Schema{}))

	s.Merge(other)
	assert.True(t, s.HasGlobal("t"))
	assert.False(t, s.Has("t"), "merged global must not also appear as a local")
}

func TestCleanResetsLocalsAndEvent(t *testing.T) {
	s := New()
	s.Add("x", types.Number)
	s.SetHasEvent(true)
	require.NoError(t, s.AddGlobal("decl", &schema.Schema{}))

	s.Clean("decl")
	assert.False(t, s.Has("x"))
	assert.False(t, s.HasEvent())
	assert.False(t, s.HasGlobal("decl"))
}

func TestLambdaArgRenameTracking(t *testing.T) {
	s := New()
	s.InitLambdaArgs([]string{"p"}, []types.Type{types.Number})
	assert.True(t, s.IsLambdaArg("p"))

	s.UpdateLambdaArgs("p", "actual_price")
	assert.Equal(t, []string{"actual_price"}, s.LambdaAliases("p"))
}
