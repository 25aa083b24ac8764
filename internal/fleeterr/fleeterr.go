/*
Package fleeterr defines Fleet's error taxonomy.

Fleet reports three kinds of failure: a ParseError for malformed source,
a TypeError for well-formed source that mismatches types at runtime, and
an InternalError for an invariant the implementation believes unreachable.
Every fallible operation in the lexer, tree builder, and evaluator returns
one of these as a plain Go error rather than the variant-of-exception
encoding the original C++ source used.
*/
package fleeterr

import "fmt"

// Kind identifies which branch of the taxonomy an Error belongs to.
type Kind string

const (
	KindParse    Kind = "ParseError"
	KindType     Kind = "TypeError"
	KindInternal Kind = "InternalError"
)

// Error is a Fleet error: a Kind plus a human-readable message. Its
// Error() string is the Kind prefix followed by the message, matching
// the CLI's "Error: <kind>: <message>" rendering from spec §7.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func newf(kind Kind, format string, a ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, a...)}
}

// Parse constructs a ParseError with the given formatted message.
func Parse(format string, a ...interface{}) *Error {
	return newf(KindParse, format, a...)
}

// Type constructs a TypeError with the given formatted message.
func Type(format string, a ...interface{}) *Error {
	return newf(KindType, format, a...)
}

// Internal constructs an InternalError with the given formatted message.
// These should never fire on well-formed input; they exist as defensive
// checks against the implementation's own invariants.
func Internal(format string, a ...interface{}) *Error {
	return newf(KindInternal, format, a...)
}

// Lexer failures.

func UnclosedString() *Error {
	return Parse("unclosed string")
}

func UnterminatedEscape() *Error {
	return Parse("unterminated escape sequence")
}

func Exhausted() *Error {
	return Internal("token stream is exhausted")
}

// Tree builder failures.

func UnmatchedGrouper(text string) *Error {
	return Parse("unmatched %s", text)
}

func EmptyBlock() *Error {
	return Parse("empty block")
}

func InternalParse(format string, a ...interface{}) *Error {
	return newf(KindInternal, format, a...)
}

// Evaluator / runtime failures.

func Undefined(name string) *Error {
	return Type("%s is undefined", name)
}

func AlreadyDefined(name string) *Error {
	return Type("%s is already defined", name)
}

func NotCallable(typeName string) *Error {
	return Type("value of type %s cannot be called", typeName)
}

func WrongArgumentType(expected, got string) *Error {
	return Type("expected argument of type %s but got argument of type %s", expected, got)
}

func WrongReturnType(expected, got string) *Error {
	return Type("expected return value of type %s but got return value of type %s", expected, got)
}

func NotReversible(typeName string) *Error {
	return Type("cannot reverse value of type %s", typeName)
}

func InvalidIdentifier(rendered string) *Error {
	return Type("%s is not a valid identifier", rendered)
}
