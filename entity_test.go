package sdm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntityIDsAreUnique(t *testing.T) {
	a := NewEntity("a", 0)
	b := NewEntity("b", 0)
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestEntityPriorityUnsetByDefault(t *testing.T) {
	e := NewEntity("a", 0)
	_, ok := e.Priority()
	assert.False(t, ok)

	e.SetPriority(7)
	p, ok := e.Priority()
	assert.True(t, ok)
	assert.Equal(t, 7, p)

	e.ClearPriority()
	_, ok = e.Priority()
	assert.False(t, ok)
}

func TestEntitySubmodelRoundTrip(t *testing.T) {
	e := NewEntity("a", 0)
	assert.Nil(t, e.Submodel())
	prev := e.AttachSubmodel("payload")
	assert.Nil(t, prev)
	assert.Equal(t, "payload", e.Submodel())
	prev = e.AttachSubmodel("other")
	assert.Equal(t, "payload", prev)
}
