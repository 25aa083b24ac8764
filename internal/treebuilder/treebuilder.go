/*
Package treebuilder turns a token stream into Fleet's expression tree
using a shunting-yard variant extended for juxtaposition-as-application.

Build consumes tokens from a TokenSource (satisfied by *lexer.Lexer)
and produces one tree.Tree per non-empty logical line, wrapped in a
single Block. Operator precedence and associativity are fixed at
compile time; function application by adjacency (juxtaposition) binds
tighter than any named operator and is handled outside the operator
stack entirely.
*/
package treebuilder

import (
	"github.com/fleet-lang/fleet/internal/fleeterr"
	"github.com/fleet-lang/fleet/internal/token"
	"github.com/fleet-lang/fleet/internal/tree"
)

// TokenSource is the subset of *lexer.Lexer the builder consumes.
type TokenSource interface {
	Peek() (token.Token, error)
	Next() (token.Token, error)
	HasNext() (bool, error)
}

// precedence reports the binding power and associativity of an
// operator's text. Unlisted operators fall to the default row.
func precedence(op string) (prec int, leftAssoc bool) {
	switch op {
	case ".":
		return 100, true
	case ":":
		return 90, true
	case "^":
		return 80, false
	case "*", "/", "%":
		return 70, true
	case "+", "++", "-":
		return 50, true
	case "&", "|":
		return 40, true
	case "$":
		return 30, true
	case ",":
		return 20, true
	case ";":
		return 10, true
	case "=":
		return 0, true
	default:
		return 60, true
	}
}

// opEntry is one frame of the operator stack: the token plus its
// resolved precedence and associativity, cached at push time.
type opEntry struct {
	tok       token.Token
	prec      int
	leftAssoc bool
}

// builder holds the three pieces of shunting-yard state described in
// spec: the operator stack, the seen-operand stack (one bool per
// active grouping level), and the operand output stack.
type builder struct {
	ops         []opEntry
	seenOperand []bool
	out         []*tree.Tree
	lines       []*tree.Tree
}

// Build consumes every token from src and returns the resulting Block.
func Build(src TokenSource) (*tree.Tree, error) {
	b := &builder{seenOperand: []bool{false}}

	for {
		has, err := src.HasNext()
		if err != nil {
			return nil, err
		}
		if !has {
			break
		}
		tok, err := src.Next()
		if err != nil {
			return nil, err
		}
		if err := b.dispatch(tok); err != nil {
			return nil, err
		}
	}

	if err := b.drainLine(); err != nil {
		return nil, err
	}
	return tree.NewBlock(b.lines), nil
}

func (b *builder) dispatch(tok token.Token) error {
	switch tok.Type {
	case token.Comment:
		return nil
	case token.Identifier, token.Number, token.String:
		return b.handleOperand(tok)
	case token.Grouper:
		if tok.IsOpeningGrouper() {
			return b.handleOpenGrouper(tok)
		}
		return b.handleCloseGrouper(tok)
	case token.Operator:
		return b.handleOperator(tok)
	case token.LineBreak:
		return b.drainLine()
	}
	return fleeterr.InternalParse("unrecognized token type %s", tok.Type)
}

func (b *builder) push(t *tree.Tree) {
	b.out = append(b.out, t)
}

func (b *builder) pop() *tree.Tree {
	t := b.out[len(b.out)-1]
	b.out = b.out[:len(b.out)-1]
	return t
}

func (b *builder) topSeenOperand() bool {
	return b.seenOperand[len(b.seenOperand)-1]
}

func (b *builder) setTopSeenOperand(v bool) {
	b.seenOperand[len(b.seenOperand)-1] = v
}

// reduce pops up to two ETs off out and folds them with op into an
// Apply chain, per the binary/unary/zero-operand rules in spec §4.2.
func (b *builder) reduce(op token.Token) error {
	switch len(b.out) {
	case 0:
		b.push(tree.NewLeaf(op))
	case 1:
		if b.out[0].IsImplied() {
			b.pop()
			b.push(tree.NewLeaf(op))
			return nil
		}
		r := b.pop()
		b.push(tree.NewApply(tree.NewLeaf(op), r))
	default:
		r := b.pop()
		l := b.pop()
		b.push(tree.NewApply(tree.NewApply(tree.NewLeaf(op), l), r))
	}
	return nil
}

// handleOperand implements the Operand dispatch rule: juxtapose onto
// the previous operand if one was just seen at this level, else push
// a fresh Leaf.
func (b *builder) handleOperand(tok token.Token) error {
	if b.topSeenOperand() {
		f := b.pop()
		b.push(tree.NewApply(f, tree.NewLeaf(tok)))
	} else {
		b.push(tree.NewLeaf(tok))
	}
	b.setTopSeenOperand(true)
	return nil
}

func (b *builder) handleOpenGrouper(tok token.Token) error {
	b.ops = append(b.ops, opEntry{tok: tok, prec: 0, leftAssoc: false})
	b.seenOperand = append(b.seenOperand, false)
	return nil
}

// handleCloseGrouper reduces everything back to the matching opener,
// then treats the completed subexpression as a single operand of the
// enclosing grouping level, juxtaposing it against a preceding operand
// if one is present there.
func (b *builder) handleCloseGrouper(tok token.Token) error {
	for {
		if len(b.ops) == 0 {
			return fleeterr.UnmatchedGrouper(tok.Text)
		}
		top := b.ops[len(b.ops)-1]
		if top.tok.IsOpeningGrouper() {
			break
		}
		b.ops = b.ops[:len(b.ops)-1]
		if err := b.reduce(top.tok); err != nil {
			return err
		}
	}

	opener := b.ops[len(b.ops)-1]
	b.ops = b.ops[:len(b.ops)-1]
	if opener.tok.MatchingGrouper().Text != tok.Text {
		return fleeterr.UnmatchedGrouper(tok.Text)
	}

	if len(b.seenOperand) < 2 {
		return fleeterr.InternalParse("seen_operand underflow at grouper close")
	}
	b.seenOperand = b.seenOperand[:len(b.seenOperand)-1]

	if b.topSeenOperand() {
		if len(b.out) < 2 {
			return fleeterr.InternalParse("operand stack underflow at grouper close")
		}
		r := b.pop()
		l := b.pop()
		b.push(tree.NewApply(l, r))
	}
	b.setTopSeenOperand(true)
	return nil
}

// handleOperator implements the Operator dispatch rule: insert an
// Implied placeholder when no left operand has been seen at this
// level, then pop and reduce higher-or-equal (per associativity)
// precedence operators before pushing this one.
func (b *builder) handleOperator(tok token.Token) error {
	if !b.topSeenOperand() {
		b.push(tree.NewImplied())
	}

	prec, leftAssoc := precedence(tok.Text)
	for len(b.ops) > 0 {
		top := b.ops[len(b.ops)-1]
		if top.tok.IsOpeningGrouper() {
			break
		}
		if top.prec > prec || (top.prec == prec && leftAssoc) {
			b.ops = b.ops[:len(b.ops)-1]
			if err := b.reduce(top.tok); err != nil {
				return err
			}
			continue
		}
		break
	}

	b.ops = append(b.ops, opEntry{tok: tok, prec: prec, leftAssoc: leftAssoc})
	b.setTopSeenOperand(false)
	return nil
}

// drainLine implements the LineBreak (and end-of-input) rule: reset
// seen_operand to the base level, reduce every remaining operator, and
// append whatever single operand remains as a completed line.
func (b *builder) drainLine() error {
	b.seenOperand = b.seenOperand[:1]
	b.seenOperand[0] = false

	for len(b.ops) > 0 {
		top := b.ops[len(b.ops)-1]
		b.ops = b.ops[:len(b.ops)-1]
		if top.tok.IsOpeningGrouper() {
			return fleeterr.UnmatchedGrouper(top.tok.Text)
		}
		if err := b.reduce(top.tok); err != nil {
			return err
		}
	}

	if len(b.out) > 1 {
		return fleeterr.InternalParse("operand stack has %d entries at end of line", len(b.out))
	}
	if len(b.out) == 1 {
		b.lines = append(b.lines, b.pop())
	}
	return nil
}
