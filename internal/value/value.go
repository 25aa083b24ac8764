/*
Package value implements Fleet's runtime value model: the tagged sum
the evaluator produces and manipulates.

Value is a plain Go interface rather than a closed sum type with a type
switch, per spec's own design note that Value should be "a tagged sum"
matched by pattern — in Go that means a small interface and type
assertions, not reflection. The three variants that carry testable
behavior are Number, Function (native or interpreted, curried), and
Identifier (an unevaluated name holder used on the left of `=`).

Env is an alias for environment.Environment[Value]: the generic
environment package never imports this one, so closures captured in a
Function can embed *Env without creating an import cycle.
*/
package value

import (
	"fmt"
	"strconv"

	"github.com/fleet-lang/fleet/internal/environment"
	"github.com/fleet-lang/fleet/internal/fleeterr"
	"github.com/fleet-lang/fleet/internal/token"
	"github.com/fleet-lang/fleet/internal/tree"
)

// Value is any Fleet runtime value.
type Value interface {
	// String renders the value for diagnostics and for the -c CLI mode.
	String() string
	// TypeName names the value's variant, for use in error messages.
	TypeName() string
	// Call applies the value to a single argument, curry-style. Values
	// that aren't callable return a NotCallable error.
	Call(arg Value) (Value, error)
}

// Env is the environment frame type Fleet values are looked up and
// bound in.
type Env = environment.Environment[Value]

// NewRoot creates an empty root Value environment.
func NewRoot() *Env {
	return environment.NewRoot[Value]()
}

// EvalFunc runs an interpreted function body against an environment.
// The evaluator package supplies this; the value package only declares
// the shape, so a Function can hold one without importing evaluator.
type EvalFunc func(body *tree.Tree, env *Env) (Value, error)

// AssignHost is implemented by the evaluator to let the `=` builtin
// define a name in whatever environment is currently active, rather
// than the environment captured when `=` itself was looked up.
type AssignHost interface {
	DefineInCurrent(name string, v Value) error
}

// Reversible is the capability a function value may opt into so that
// the evaluator can resolve operator-section syntax like `(+ 3)`: Call
// a two-argument curried function's Reverse to get back a value that
// applies the same underlying operation with its two arguments swapped.
type Reversible interface {
	Reverse() (Value, error)
}

// Number is Fleet's only numeric type: a host double.
type Number struct {
	v float64
}

// NewNumber wraps a float64 as a Number value.
func NewNumber(v float64) *Number {
	return &Number{v: v}
}

// Value returns the underlying float64.
func (n *Number) Value() float64 {
	return n.v
}

// String renders n in the host's standard 6-decimal form, e.g. "2.000000".
func (n *Number) String() string {
	return strconv.FormatFloat(n.v, 'f', 6, 64)
}

func (n *Number) TypeName() string {
	return "Number"
}

func (n *Number) Call(Value) (Value, error) {
	return nil, fleeterr.NotCallable("Number")
}

// Identifier holds an unevaluated syntactic form: the tree that was the
// left operand of a raw-argument function like `=`, captured so the
// bound name can be extracted syntactically instead of looked up.
type Identifier struct {
	t *tree.Tree
}

// NewIdentifier wraps an ET as an Identifier value without validating
// that it is actually a name; Name reports that failure lazily.
func NewIdentifier(t *tree.Tree) *Identifier {
	return &Identifier{t: t}
}

// Name extracts the bound name, failing with InvalidIdentifier if t
// isn't a bare Identifier or Operator leaf.
func (i *Identifier) Name() (string, error) {
	if i.t.Kind() != tree.KindLeaf {
		return "", fleeterr.InvalidIdentifier(i.t.String())
	}
	leaf := i.t.Leaf()
	if leaf.Type != token.Identifier && leaf.Type != token.Operator {
		return "", fleeterr.InvalidIdentifier(i.t.String())
	}
	return leaf.Text, nil
}

func (i *Identifier) String() string {
	if name, err := i.Name(); err == nil {
		return name
	}
	return i.t.String()
}

func (i *Identifier) TypeName() string {
	return "Identifier"
}

func (i *Identifier) Call(Value) (Value, error) {
	return nil, fleeterr.NotCallable("Identifier")
}

var _ fmt.Stringer = (*Number)(nil)
var _ fmt.Stringer = (*Identifier)(nil)
