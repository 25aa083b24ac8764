package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleet-lang/fleet/internal/token"
	"github.com/fleet-lang/fleet/internal/tree"
)

func TestNumberString(t *testing.T) {
	assert.Equal(t, "2.000000", NewNumber(2).String())
	assert.Equal(t, "8.800000", NewNumber(8.8).String())
}

func TestNumberIsNotCallable(t *testing.T) {
	_, err := NewNumber(1).Call(NewNumber(2))
	require.Error(t, err)
}

func TestIdentifierNameFromLeaf(t *testing.T) {
	leaf := tree.NewLeaf(token.New(token.Identifier, "x"))
	id := NewIdentifier(leaf)
	name, err := id.Name()
	require.NoError(t, err)
	assert.Equal(t, "x", name)
}

func TestIdentifierNameRejectsNonLeaf(t *testing.T) {
	apply := tree.NewApply(
		tree.NewLeaf(token.New(token.Identifier, "f")),
		tree.NewLeaf(token.New(token.Number, "1")),
	)
	id := NewIdentifier(apply)
	_, err := id.Name()
	assert.Error(t, err)
}

func TestIdentifierNameRejectsNumberLeaf(t *testing.T) {
	leaf := tree.NewLeaf(token.New(token.Number, "1"))
	id := NewIdentifier(leaf)
	_, err := id.Name()
	assert.Error(t, err)
}

func TestNativeFunctionCurrying(t *testing.T) {
	add := NewNative("Number->Number->Number", func(a Value) (Value, error) {
		return NewNative("Number->Number", func(b Value) (Value, error) {
			return NewNumber(a.(*Number).Value() + b.(*Number).Value()), nil
		}), nil
	})

	stage2, err := add.Call(NewNumber(3))
	require.NoError(t, err)
	result, err := stage2.Call(NewNumber(4))
	require.NoError(t, err)
	assert.Equal(t, "7.000000", result.String())
}

func TestFunctionReverseSwapsArguments(t *testing.T) {
	sub := NewNative("Number->Number->Number", func(a Value) (Value, error) {
		return NewNative("Number->Number", func(b Value) (Value, error) {
			return NewNumber(a.(*Number).Value() - b.(*Number).Value()), nil
		}), nil
	})

	reversed, err := sub.Reverse()
	require.NoError(t, err)

	stage2, err := reversed.Call(NewNumber(3))
	require.NoError(t, err)
	result, err := stage2.Call(NewNumber(10))
	require.NoError(t, err)
	// reversed(3)(10) == sub(10)(3) == 10 - 3 == 7
	assert.Equal(t, "7.000000", result.String())
}

func TestInterpretedFunctionScopedBinding(t *testing.T) {
	// Build a function body that looks up its own parameter, exercising
	// scoped parameter binding via the API directly since no lambda
	// syntax exists in this version.
	root := NewRoot()
	require.NoError(t, root.Define("free", NewNumber(100)))

	body := tree.NewLeaf(token.New(token.Identifier, "param"))
	evalCalls := 0
	evalFn := EvalFunc(func(b *tree.Tree, env *Env) (Value, error) {
		evalCalls++
		return env.Lookup(b.Leaf().Text)
	})

	fn := NewInterpreted("Any->Any", "param", body, root, evalFn)
	result, err := fn.Call(NewNumber(5))
	require.NoError(t, err)
	assert.Equal(t, "5.000000", result.String())
	assert.Equal(t, 1, evalCalls)

	// The parameter must not leak into the captured environment.
	_, err = root.Lookup("param")
	assert.Error(t, err)
}

func TestRawNativeReportsRawArgument(t *testing.T) {
	fn := NewRawNative("Identifier->Value->Value", func(Value) (Value, error) {
		return nil, nil
	})
	assert.True(t, fn.RawArgument())

	plain := NewNative("Number->Number", func(Value) (Value, error) { return nil, nil })
	assert.False(t, plain.RawArgument())
}

func TestFunctionStringRendering(t *testing.T) {
	native := NewNative("Number->Number", func(Value) (Value, error) { return nil, nil })
	assert.Equal(t, "<Native Number->Number>", native.String())

	interpreted := NewInterpreted("Any->Any", "p", tree.NewImplied(), NewRoot(), nil)
	assert.Equal(t, "<Function Any->Any>", interpreted.String())
}
