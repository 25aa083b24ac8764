package tree

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/fleet-lang/fleet/internal/token"
)

func TestStringRendering(t *testing.T) {
	// f x y -> Apply(Apply(f, x), y), per spec's worked example.
	f := NewLeaf(token.New(token.Identifier, "f"))
	x := NewLeaf(token.New(token.Identifier, "x"))
	y := NewLeaf(token.New(token.Identifier, "y"))
	fx := NewApply(f, x)
	fxy := NewApply(fx, y)

	assert.Equal(t, "[[[f], [x]], [y]]", fxy.String())
}

func TestBlockRendering(t *testing.T) {
	b := NewBlock([]*Tree{
		NewLeaf(token.New(token.Number, "1")),
		NewLeaf(token.New(token.Number, "2")),
	})
	assert.Equal(t, "{[1]; [2]}", b.String())
}

func TestImpliedRendering(t *testing.T) {
	assert.Equal(t, "<implied>", NewImplied().String())
}

func TestEqualStructural(t *testing.T) {
	build := func() *Tree {
		return NewApply(
			NewLeaf(token.New(token.Operator, "+")),
			NewLeaf(token.New(token.Number, "1")),
		)
	}
	a, b := build(), build()
	assert.True(t, a.Equal(b))
	if diff := cmp.Diff(a.String(), b.String()); diff != "" {
		t.Errorf("unexpected diff (-want +got):\n%s", diff)
	}
}

func TestEqualDetectsDifference(t *testing.T) {
	a := NewLeaf(token.New(token.Number, "1"))
	b := NewLeaf(token.New(token.Number, "2"))
	assert.False(t, a.Equal(b))
}

type countingVisitor struct {
	leaves, applies, blocks, implieds int
}

func (v *countingVisitor) VisitLeaf(token.Token) (int, error) {
	v.leaves++
	return v.leaves, nil
}

func (v *countingVisitor) VisitApply(f, x *Tree) (int, error) {
	v.applies++
	return v.applies, nil
}

func (v *countingVisitor) VisitBlock(lines []*Tree) (int, error) {
	v.blocks++
	return v.blocks, nil
}

func (v *countingVisitor) VisitImplied() (int, error) {
	v.implieds++
	return v.implieds, nil
}

func TestAcceptDispatchesByKind(t *testing.T) {
	v := &countingVisitor{}
	leaf := NewLeaf(token.New(token.Number, "1"))
	_, err := Accept[int](leaf, v)
	assert.NoError(t, err)
	assert.Equal(t, 1, v.leaves)

	apply := NewApply(leaf, leaf)
	_, err = Accept[int](apply, v)
	assert.NoError(t, err)
	assert.Equal(t, 1, v.applies)

	block := NewBlock(nil)
	_, err = Accept[int](block, v)
	assert.NoError(t, err)
	assert.Equal(t, 1, v.blocks)

	implied := NewImplied()
	_, err = Accept[int](implied, v)
	assert.NoError(t, err)
	assert.Equal(t, 1, v.implieds)
}
