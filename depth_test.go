package fixture

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDepthTracker_OutermostFollowsNesting(t *testing.T) {
	d := &depthTracker{}

	assert.True(t, d.isOutermost(), "idle tracker counts as outermost")

	d.enter()
	assert.True(t, d.isOutermost())

	d.enter()
	assert.False(t, d.isOutermost())

	d.enter()
	assert.False(t, d.isOutermost())
	assert.Equal(t, 3, d.level())

	d.exit()
	assert.False(t, d.isOutermost())

	d.exit()
	assert.True(t, d.isOutermost())

	d.exit()
	assert.Equal(t, 0, d.level())
}

func TestScope_NestedSharesDepthButNotCounters(t *testing.T) {
	parent := NewScope()
	child := parent.nested()

	assert.Same(t, parent.depth, child.depth)
	assert.NotSame(t, parent.counters, child.counters)
	assert.NotSame(t, parent.factories, child.factories)

	parent.counters.next("")
	assert.Equal(t, 0, child.Counter(""))
}

func TestDepthTracker_FirstOperationOfCall(t *testing.T) {
	d := &depthTracker{}

	assert.True(t, d.beginOperation())
	assert.False(t, d.beginOperation())
	d.endOperation()
	d.endOperation()

	assert.True(t, d.beginOperation())
	d.endOperation()
}
