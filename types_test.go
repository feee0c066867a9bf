package nodeconf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptional(t *testing.T) {
	var unset Optional[bool]
	v, ok := unset.Get()
	assert.False(t, v)
	assert.False(t, ok)
	assert.True(t, unset.OrDefault(true))
	assert.Equal(t, "<not set>", unset.String())

	set := Some(false)
	v, ok = set.Get()
	assert.False(t, v)
	assert.True(t, ok)
	assert.False(t, set.OrDefault(true))
	assert.Equal(t, "false", set.String())
}
