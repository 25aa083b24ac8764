/*
Package tree defines Fleet's expression tree (ET): the recursive sum
type the tree builder produces and the evaluator walks.

A Tree is one of four variants: Leaf (a single token), Apply (function
application of one ET to another), Block (an ordered sequence of
sibling ETs, one per logical line), and Implied (a placeholder for a
missing left operand, used to desugar operator sections like `(+ 3)`).
The zero value of Tree is not meaningful; always construct one with
NewLeaf, NewApply, NewBlock, or NewImplied.
*/
package tree

import (
	"strings"

	"github.com/fleet-lang/fleet/internal/token"
)

// Kind names which of the four ET variants a Tree holds.
type Kind int

const (
	KindLeaf Kind = iota
	KindApply
	KindBlock
	KindImplied
)

// Tree is Fleet's expression tree sum type.
type Tree struct {
	kind  Kind
	leaf  token.Token
	f, x  *Tree
	lines []*Tree
}

// NewLeaf wraps a single token as a Leaf ET.
func NewLeaf(tok token.Token) *Tree {
	return &Tree{kind: KindLeaf, leaf: tok}
}

// NewApply builds an Apply ET representing application of f to x.
// Both f and x must be non-nil.
func NewApply(f, x *Tree) *Tree {
	return &Tree{kind: KindApply, f: f, x: x}
}

// NewBlock builds a Block ET from an ordered sequence of lines. The
// sequence may be empty.
func NewBlock(lines []*Tree) *Tree {
	return &Tree{kind: KindBlock, lines: lines}
}

// NewImplied builds the Implied placeholder ET.
func NewImplied() *Tree {
	return &Tree{kind: KindImplied}
}

// Kind reports which ET variant t holds.
func (t *Tree) Kind() Kind {
	return t.kind
}

// IsImplied reports whether t is the Implied placeholder.
func (t *Tree) IsImplied() bool {
	return t.kind == KindImplied
}

// Leaf returns the token held by a Leaf ET. It panics if t is not a Leaf.
func (t *Tree) Leaf() token.Token {
	if t.kind != KindLeaf {
		panic("tree: Leaf called on non-Leaf node")
	}
	return t.leaf
}

// Apply returns the function and argument of an Apply ET. It panics if
// t is not an Apply.
func (t *Tree) Apply() (f, x *Tree) {
	if t.kind != KindApply {
		panic("tree: Apply called on non-Apply node")
	}
	return t.f, t.x
}

// Lines returns the sibling ETs of a Block. It panics if t is not a
// Block.
func (t *Tree) Lines() []*Tree {
	if t.kind != KindBlock {
		panic("tree: Lines called on non-Block node")
	}
	return t.lines
}

// Equal reports whether t and other are structurally identical: same
// variant at every node, same leaf tokens, same application shape, same
// block line sequence.
func (t *Tree) Equal(other *Tree) bool {
	if t == nil || other == nil {
		return t == other
	}
	if t.kind != other.kind {
		return false
	}
	switch t.kind {
	case KindLeaf:
		return t.leaf == other.leaf
	case KindApply:
		return t.f.Equal(other.f) && t.x.Equal(other.x)
	case KindBlock:
		if len(t.lines) != len(other.lines) {
			return false
		}
		for i := range t.lines {
			if !t.lines[i].Equal(other.lines[i]) {
				return false
			}
		}
		return true
	case KindImplied:
		return true
	}
	return false
}

// String renders t for diagnostics: a Leaf renders as "[text]", an
// Apply as "[f, x]", a Block as "{line1; line2; ...}", and Implied as
// "<implied>".
func (t *Tree) String() string {
	if t == nil {
		return "<nil>"
	}
	switch t.kind {
	case KindLeaf:
		return "[" + t.leaf.Text + "]"
	case KindApply:
		return "[" + t.f.String() + ", " + t.x.String() + "]"
	case KindBlock:
		parts := make([]string, len(t.lines))
		for i, l := range t.lines {
			parts[i] = l.String()
		}
		return "{" + strings.Join(parts, "; ") + "}"
	case KindImplied:
		return "<implied>"
	}
	return "<unknown>"
}

// Visitor routes each ET variant to its own handler, producing a value
// of type T. Accept performs the dispatch so callers never switch on
// Kind directly.
type Visitor[T any] interface {
	VisitLeaf(tok token.Token) (T, error)
	VisitApply(f, x *Tree) (T, error)
	VisitBlock(lines []*Tree) (T, error)
	VisitImplied() (T, error)
}

// Accept dispatches t to the matching method of v.
func Accept[T any](t *Tree, v Visitor[T]) (T, error) {
	switch t.kind {
	case KindLeaf:
		return v.VisitLeaf(t.leaf)
	case KindApply:
		return v.VisitApply(t.f, t.x)
	case KindBlock:
		return v.VisitBlock(t.lines)
	case KindImplied:
		return v.VisitImplied()
	}
	var zero T
	return zero, nil
}
