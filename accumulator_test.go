package nodeconf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationErrors_Empty(t *testing.T) {
	acc := NewValidationErrors()
	assert.True(t, acc.Empty())
	assert.Equal(t, "", acc.Render())

	acc.PushSemantics("boom")
	assert.False(t, acc.Empty())
}

func TestValidationErrors_Render(t *testing.T) {
	acc := NewValidationErrors()
	acc.PushSemantics("first")
	acc.PushSemantics("second")

	assert.Equal(t,
		"config.json semantic issue: first\nconfig.json semantic issue: second",
		acc.Render())
}

func TestValidationErrors_RenderGroupsByCategory(t *testing.T) {
	acc := NewValidationErrors()
	acc.Push("a", CategorySemantics)
	acc.Push("b", Category("genesis"))
	acc.Push("c", CategorySemantics)

	assert.Equal(t,
		"config.json semantic issue: a\n"+
			"config.json semantic issue: c\n"+
			"config.json genesis issue: b",
		acc.Render())
}

func TestValidationErrors_ViolationsIsCopy(t *testing.T) {
	acc := NewValidationErrors()
	acc.PushSemantics("first")

	got := acc.Violations()
	got[0].Message = "changed"

	assert.Equal(t, []Violation{{Category: CategorySemantics, Message: "first"}}, acc.Violations())
}
