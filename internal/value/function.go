package value

import "github.com/fleet-lang/fleet/internal/tree"

// Function is Fleet's only callable value. It holds either a native
// callback or an interpreted body (an ET, its parameter name, and the
// environment it closed over); currying is not a language primitive,
// so a two-argument operation is modeled as a native that returns
// another native rather than as a function of arity two.
type Function struct {
	sig string

	// Native form.
	native func(Value) (Value, error)
	rawArg bool

	// Interpreted form.
	body  *tree.Tree
	param string
	env   *Env
	eval  EvalFunc
}

// NewNative builds a Function around a native Go callback. sig is the
// recursive P->R signature used for diagnostic rendering.
func NewNative(sig string, fn func(Value) (Value, error)) *Function {
	return &Function{sig: sig, native: fn}
}

// NewRawNative builds a native Function whose argument should be
// passed as the unevaluated syntactic form the caller wrote, wrapped
// as an *Identifier, rather than evaluated first. Only `=` needs this.
func NewRawNative(sig string, fn func(Value) (Value, error)) *Function {
	return &Function{sig: sig, native: fn, rawArg: true}
}

// NewInterpreted builds a Function whose body is an ET evaluated, on
// Call, against a fresh child of env with param bound to the argument.
func NewInterpreted(sig, param string, body *tree.Tree, env *Env, eval EvalFunc) *Function {
	return &Function{sig: sig, body: body, param: param, env: env, eval: eval}
}

// RawArgument reports whether f wants its argument passed unevaluated.
// The evaluator checks this through a RawArgument() bool interface
// assertion before evaluating an Apply's right-hand ET.
func (f *Function) RawArgument() bool {
	return f.rawArg
}

// Call invokes f with arg: for a native Function this runs the
// callback directly; for an interpreted Function it binds param to arg
// in a fresh child of the captured environment and evaluates body
// against that child, so the binding cannot leak into the caller or
// the closure's home frame.
func (f *Function) Call(arg Value) (Value, error) {
	if f.native != nil {
		return f.native(arg)
	}
	child := f.env.NewChild()
	if err := child.Define(f.param, arg); err != nil {
		return nil, err
	}
	return f.eval(f.body, child)
}

// Reverse mechanically derives the reversed form of a curried
// two-argument function: a value g such that g(a)(b) == f(b)(a). This
// is built generically for any Function, native or interpreted; it
// only actually behaves like a two-argument operation once called,
// so applying Reverse to a function that isn't curried surfaces as a
// WrongArgumentType/NotCallable error at that later call site rather
// than here.
func (f *Function) Reverse() (Value, error) {
	outer := f
	return NewNative(outer.sig, func(a Value) (Value, error) {
		return NewNative(outer.sig, func(b Value) (Value, error) {
			stage2, err := outer.Call(b)
			if err != nil {
				return nil, err
			}
			return stage2.Call(a)
		}), nil
	}), nil
}

func (f *Function) String() string {
	if f.native != nil {
		return "<Native " + f.sig + ">"
	}
	return "<Function " + f.sig + ">"
}

func (f *Function) TypeName() string {
	return "Function"
}

var _ Value = (*Function)(nil)
var _ Reversible = (*Function)(nil)
