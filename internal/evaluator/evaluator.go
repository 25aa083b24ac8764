/*
Package evaluator walks Fleet's expression tree against an environment
and produces a value or an error.

Evaluator holds a single mutable "current environment" pointer, per
spec's own state-machine description (Idle -> Evaluating(tree, env) ->
Idle). That pointer exists for one reason: the `=` builtin needs to
define a name in whatever environment is active at the moment it runs,
not the environment that was active when `=` itself was looked up, and
a native callback has no tree-walking context of its own to consult.
Evaluator implements value.AssignHost to give `=` exactly that hook,
and value.EvalFunc (via CallBody) to let interpreted Function values
call back into the evaluator without the value package importing it.
*/
package evaluator

import (
	"strconv"

	"github.com/fleet-lang/fleet/internal/fleeterr"
	"github.com/fleet-lang/fleet/internal/token"
	"github.com/fleet-lang/fleet/internal/tree"
	"github.com/fleet-lang/fleet/internal/value"
)

// Evaluator walks an ET against an environment.
type Evaluator struct {
	current *value.Env
}

// New creates an Evaluator with no active environment yet.
func New() *Evaluator {
	return &Evaluator{}
}

// Eval evaluates t against env, becoming the active environment for
// the duration of the call (and anything it recursively triggers, such
// as a native function's use of DefineInCurrent).
func (e *Evaluator) Eval(t *tree.Tree, env *value.Env) (value.Value, error) {
	prev := e.current
	e.current = env
	defer func() { e.current = prev }()

	v := &visitor{eval: e, env: env}
	return tree.Accept[value.Value](t, v)
}

// CallBody evaluates an interpreted Function's body; its signature
// matches value.EvalFunc so it can be passed directly wherever one is
// needed, such as value.NewInterpreted.
func (e *Evaluator) CallBody(body *tree.Tree, env *value.Env) (value.Value, error) {
	return e.Eval(body, env)
}

// DefineInCurrent implements value.AssignHost for the `=` builtin.
func (e *Evaluator) DefineInCurrent(name string, v value.Value) error {
	if e.current == nil {
		return fleeterr.Internal("assignment outside of any evaluation")
	}
	return e.current.Define(name, v)
}

// visitor implements tree.Visitor[value.Value] for one Eval call. It is
// recreated (cheaply) on every recursive Eval rather than reused, since
// each recursive step may run against a different env.
type visitor struct {
	eval *Evaluator
	env  *value.Env
}

func (v *visitor) VisitLeaf(tok token.Token) (value.Value, error) {
	switch tok.Type {
	case token.Number:
		f, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			return nil, fleeterr.InternalParse("malformed number literal %q", tok.Text)
		}
		return value.NewNumber(f), nil
	case token.Identifier, token.Operator:
		return v.env.Lookup(tok.Text)
	default:
		return nil, fleeterr.Internal("token of type %s cannot appear as a leaf", tok.Type)
	}
}

func (v *visitor) VisitApply(f, x *tree.Tree) (value.Value, error) {
	fval, err := v.eval.Eval(f, v.env)
	if err != nil {
		return nil, err
	}

	if x.IsImplied() {
		rev, ok := fval.(value.Reversible)
		if !ok {
			return nil, fleeterr.NotReversible(fval.TypeName())
		}
		return rev.Reverse()
	}

	if raw, ok := fval.(interface{ RawArgument() bool }); ok && raw.RawArgument() {
		return fval.Call(value.NewIdentifier(x))
	}

	xval, err := v.eval.Eval(x, v.env)
	if err != nil {
		return nil, err
	}
	return fval.Call(xval)
}

func (v *visitor) VisitBlock(lines []*tree.Tree) (value.Value, error) {
	if len(lines) == 0 {
		return nil, fleeterr.EmptyBlock()
	}
	var result value.Value
	for _, line := range lines {
		r, err := v.eval.Eval(line, v.env)
		if err != nil {
			return nil, err
		}
		result = r
	}
	return result, nil
}

func (v *visitor) VisitImplied() (value.Value, error) {
	return nil, fleeterr.Internal("implied operand cannot be evaluated directly")
}
