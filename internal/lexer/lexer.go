/*
Package lexer segments a Fleet source string into tokens on demand.

A Lexer buffers at most one look-ahead token plus the last token it
emitted (to implement the operator-continuation rule for newlines: a
newline immediately following an operator is silently absorbed rather
than emitted as a LineBreak, so an operator can trail onto the next
source line). Peek is idempotent between calls to Next.
*/
package lexer

import (
	"github.com/fleet-lang/fleet/internal/fleeterr"
	"github.com/fleet-lang/fleet/internal/token"
)

// Lexer converts a source string into a sequence of Tokens.
type Lexer struct {
	src     string
	index   int
	nextTok *token.Token
	lastTok *token.Token
}

// New creates a Lexer over the given source code.
func New(src string) *Lexer {
	return &Lexer{src: src}
}

// isBlank reports whether c is Fleet whitespace other than newline.
func isBlank(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\f', '\v':
		return true
	}
	return false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlnum(c byte) bool {
	return isAlpha(c) || isDigit(c)
}

func isGrouper(c byte) bool {
	switch c {
	case '(', ')', '[', ']', '{', '}':
		return true
	}
	return false
}

// queueNext ensures l.nextTok holds the next token, or leaves it nil if
// the source is exhausted. It must be idempotent: calling it when
// l.nextTok is already populated is a no-op.
func (l *Lexer) queueNext() error {
	if l.nextTok != nil {
		return nil
	}
	if l.index >= len(l.src) {
		return nil
	}

	c := l.src[l.index]
	switch {
	case c == '\n':
		if l.lastTok != nil && l.lastTok.Type == token.Operator {
			// An operator continues onto the next line: absorb the
			// newline silently and look further ahead.
			l.takeLineBreak()
			return l.queueNext()
		}
		text := l.takeLineBreak()
		tok := token.New(token.LineBreak, text)
		l.nextTok = &tok
	case isBlank(c):
		l.takeWhitespace()
		return l.queueNext()
	case isDigit(c):
		text := l.takeNumber()
		tok := token.New(token.Number, text)
		l.nextTok = &tok
	case isAlpha(c) || c == '_':
		text := l.takeIdentifier()
		tok := token.New(token.Identifier, text)
		l.nextTok = &tok
	case c == '#':
		text := l.takeComment()
		tok := token.New(token.Comment, text)
		l.nextTok = &tok
	case c == '"' || c == '\'':
		text, err := l.takeString()
		if err != nil {
			return err
		}
		tok := token.New(token.String, text)
		l.nextTok = &tok
	case isGrouper(c):
		text := l.takeGrouper()
		tok := token.New(token.Grouper, text)
		l.nextTok = &tok
	default:
		text := l.takeOperator()
		tok := token.New(token.Operator, text)
		l.nextTok = &tok
	}
	return nil
}

// Peek returns the next token without consuming it. Calling Peek
// repeatedly without an intervening Next returns the same token.
func (l *Lexer) Peek() (token.Token, error) {
	if err := l.queueNext(); err != nil {
		return token.Token{}, err
	}
	if l.nextTok == nil {
		return token.Token{}, fleeterr.Exhausted()
	}
	return *l.nextTok, nil
}

// Next returns the next token and advances past it.
func (l *Lexer) Next() (token.Token, error) {
	tok, err := l.Peek()
	if err != nil {
		return token.Token{}, err
	}
	l.lastTok = &tok
	l.nextTok = nil
	return tok, nil
}

// HasNext reports whether there are more tokens to retrieve.
func (l *Lexer) HasNext() (bool, error) {
	if err := l.queueNext(); err != nil {
		return false, err
	}
	return l.nextTok != nil, nil
}

// takeWhitespace consumes and returns blank characters (not '\n') at the
// current position.
func (l *Lexer) takeWhitespace() string {
	start := l.index
	for l.index < len(l.src) {
		c := l.src[l.index]
		if c == '\n' || !isBlank(c) {
			break
		}
		l.index++
	}
	return l.src[start:l.index]
}

// takeComment consumes a '#' through (but not including) the next '\n'.
func (l *Lexer) takeComment() string {
	start := l.index
	for l.index < len(l.src) && l.src[l.index] != '\n' {
		l.index++
	}
	return l.src[start:l.index]
}

// takeGrouper consumes a single bracket character.
func (l *Lexer) takeGrouper() string {
	if l.index >= len(l.src) {
		return ""
	}
	l.index++
	return l.src[l.index-1 : l.index]
}

// takeIdentifier consumes alpha/underscore followed by alnum/underscore.
func (l *Lexer) takeIdentifier() string {
	start := l.index
	for l.index < len(l.src) {
		c := l.src[l.index]
		if !isAlnum(c) && c != '_' {
			break
		}
		l.index++
	}
	return l.src[start:l.index]
}

// takeLineBreak consumes a single '\n' character.
func (l *Lexer) takeLineBreak() string {
	if l.index >= len(l.src) {
		return ""
	}
	l.index++
	return l.src[l.index-1 : l.index]
}

// takeNumber consumes digits with at most one '.'; a second '.'
// terminates the number rather than being consumed.
func (l *Lexer) takeNumber() string {
	start := l.index
	dotSeen := false
	for l.index < len(l.src) {
		c := l.src[l.index]
		if !dotSeen && c == '.' {
			dotSeen = true
		} else if !isDigit(c) {
			break
		}
		l.index++
	}
	return l.src[start:l.index]
}

// takeOperator consumes a maximal run of characters that are not blank,
// alnum, '_', '#', a grouper, or a quote.
func (l *Lexer) takeOperator() string {
	start := l.index
	for l.index < len(l.src) {
		c := l.src[l.index]
		if isBlank(c) || c == '\n' || isAlnum(c) || c == '_' || c == '#' ||
			isGrouper(c) || c == '"' || c == '\'' {
			break
		}
		l.index++
	}
	return l.src[start:l.index]
}

// takeString consumes a quoted string starting at the current position,
// honoring backslash escapes, and returns the entire quoted text
// including both delimiters.
func (l *Lexer) takeString() (string, error) {
	start := l.index
	quote := l.src[l.index]
	l.index++

	closed := false
	for l.index < len(l.src) {
		c := l.src[l.index]
		if c == '\\' {
			if err := l.takeEscape(); err != nil {
				return "", err
			}
			continue
		}
		if c == quote {
			closed = true
			break
		}
		l.index++
	}
	if !closed {
		return "", fleeterr.UnclosedString()
	}
	l.index++ // consume the closing quote
	return l.src[start:l.index], nil
}

// takeEscape consumes a backslash and the character it escapes.
func (l *Lexer) takeEscape() error {
	if l.index >= len(l.src) {
		return fleeterr.UnterminatedEscape()
	}
	l.index++ // the backslash
	if l.index >= len(l.src) {
		return fleeterr.UnterminatedEscape()
	}
	l.index++ // the escaped character
	return nil
}
