package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenEquality(t *testing.T) {
	assert.Equal(t, New(Operator, "+"), New(Operator, "+"))
	assert.NotEqual(t, New(Operator, "+"), New(Operator, "-"))
	assert.NotEqual(t, New(Identifier, "x"), New(Operator, "x"))
}

func TestIsOpeningGrouper(t *testing.T) {
	assert.True(t, New(Grouper, "(").IsOpeningGrouper())
	assert.True(t, New(Grouper, "[").IsOpeningGrouper())
	assert.True(t, New(Grouper, "{").IsOpeningGrouper())
	assert.False(t, New(Grouper, ")").IsOpeningGrouper())
	assert.False(t, New(Operator, "(").IsOpeningGrouper())
}

func TestIsClosingGrouper(t *testing.T) {
	assert.True(t, New(Grouper, ")").IsClosingGrouper())
	assert.True(t, New(Grouper, "]").IsClosingGrouper())
	assert.True(t, New(Grouper, "}").IsClosingGrouper())
	assert.False(t, New(Grouper, "(").IsClosingGrouper())
}

func TestMatchingGrouper(t *testing.T) {
	assert.Equal(t, New(Grouper, ")"), New(Grouper, "(").MatchingGrouper())
	assert.Equal(t, New(Grouper, "("), New(Grouper, ")").MatchingGrouper())
	assert.Equal(t, New(Grouper, "]"), New(Grouper, "[").MatchingGrouper())
	assert.Equal(t, New(Grouper, "}"), New(Grouper, "{").MatchingGrouper())
}

func TestString(t *testing.T) {
	assert.Equal(t, "(Operator: +)", New(Operator, "+").String())
}
