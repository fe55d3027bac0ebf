package restcore

import (
	"testing"

	"github.com/rohanthewiz/assert"
)

func TestConfigMaterializeDefaults(t *testing.T) {
	m := NewConfig().Materialize()
	assert.True(t, m.HandleHead)
	assert.Equal(t, len(m.ExtraHeaders), 0)
}

func TestConfigAddFillsOnlyUnsetOptions(t *testing.T) {
	child := NewConfig().HandleHead(false)
	parent := NewConfig().HandleHead(true).ExtraHeaders([]ExtraHeader{{Name: "X-Api", Values: [][]byte{[]byte("v1")}}})

	combined := child.Add(parent)
	m := combined.Materialize()

	// child already decided handle_head=false; parent must not override it.
	assert.False(t, m.HandleHead)
	// child left extra_headers unset; parent's value fills in.
	assert.Equal(t, len(m.ExtraHeaders), 1)
	assert.Equal(t, m.ExtraHeaders[0].Name, "X-Api")
}

func TestBaseConfigIsImmuneToParentFillIn(t *testing.T) {
	child := BaseConfig()
	assert.True(t, child.IsBase())

	parent := NewConfig().HandleHead(false)
	combined := child.Add(parent)

	assert.True(t, combined.Materialize().HandleHead)
}
