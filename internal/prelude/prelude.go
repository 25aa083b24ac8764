/*
Package prelude builds Fleet's default root environment: the curried
arithmetic operators and the `=` assignment builtin every program
starts with.

New takes a value.AssignHost (the evaluator) because `=` has to define
its bound name in whatever environment is active at the call site, a
capability no plain native callback can reach on its own.
*/
package prelude

import (
	"math"

	"github.com/fleet-lang/fleet/internal/environment"
	"github.com/fleet-lang/fleet/internal/fleeterr"
	"github.com/fleet-lang/fleet/internal/value"
)

// New builds and returns the prelude root environment.
func New(host value.AssignHost) *value.Env {
	root := environment.NewRoot[value.Value]()

	define := func(name string, v value.Value) {
		// The root environment is fresh, so Define can only fail on a
		// duplicate name within this function itself.
		if err := root.Define(name, v); err != nil {
			panic("prelude: duplicate builtin " + name)
		}
	}

	define("+", arith("+", func(a, b float64) (float64, error) { return a + b, nil }))
	define("-", arith("-", func(a, b float64) (float64, error) { return a - b, nil }))
	define("*", arith("*", func(a, b float64) (float64, error) { return a * b, nil }))
	define("/", arith("/", divide))
	define("%", arith("%", modulo))
	define("^", arith("^", func(a, b float64) (float64, error) { return math.Pow(a, b), nil }))
	define("=", assign(host))

	return root
}

func divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, fleeterr.Type("division by zero")
	}
	return a / b, nil
}

func modulo(a, b float64) (float64, error) {
	if b == 0 {
		return 0, fleeterr.Type("division by zero")
	}
	return math.Mod(a, b), nil
}

// arith builds a curried Number->Number->Number native from a plain
// two-argument host callback, the "small helper" spec's design notes
// call for so built-ins don't each hand-roll their own currying.
func arith(name string, fn func(a, b float64) (float64, error)) *value.Function {
	sig := "Number->Number->Number"
	return value.NewNative(sig, func(aVal value.Value) (value.Value, error) {
		a, ok := aVal.(*value.Number)
		if !ok {
			return nil, fleeterr.WrongArgumentType("Number", aVal.TypeName())
		}
		return value.NewNative("Number->Number", func(bVal value.Value) (value.Value, error) {
			b, ok := bVal.(*value.Number)
			if !ok {
				return nil, fleeterr.WrongArgumentType("Number", bVal.TypeName())
			}
			r, err := fn(a.Value(), b.Value())
			if err != nil {
				return nil, err
			}
			return value.NewNumber(r), nil
		}), nil
	})
}

// assign builds the `=` builtin: a raw-argument curried native whose
// first stage extracts a bound name from the unevaluated left operand
// and whose second stage defines it in host's current environment.
func assign(host value.AssignHost) *value.Function {
	sig := "Identifier->Value->Value"
	return value.NewRawNative(sig, func(rawVal value.Value) (value.Value, error) {
		ident, ok := rawVal.(*value.Identifier)
		if !ok {
			return nil, fleeterr.WrongArgumentType("Identifier", rawVal.TypeName())
		}
		name, err := ident.Name()
		if err != nil {
			return nil, err
		}
		return value.NewNative("Value->Value", func(v value.Value) (value.Value, error) {
			if err := host.DefineInCurrent(name, v); err != nil {
				return nil, err
			}
			return v, nil
		}), nil
	})
}
