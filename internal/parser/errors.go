package parser

import (
	"fmt"
	"strings"
)

// ErrorKind classifies a syntax error
type ErrorKind int

const (
	// LexicalMismatch means unrecognized input sat where a terminal was required
	LexicalMismatch ErrorKind = iota + 1
	// UnexpectedToken means a valid token that cannot begin or continue the statement
	UnexpectedToken
	// MissingTerminator means the input ended where ';' was required
	MissingTerminator
	// NumericOverflow means an integer literal does not fit in 64 bits
	NumericOverflow
	// EmptyList means a parenthesized list that requires elements had none
	EmptyList
)

func (k ErrorKind) String() string {
	switch k {
	case LexicalMismatch:
		return "LexicalMismatch"
	case UnexpectedToken:
		return "UnexpectedToken"
	case MissingTerminator:
		return "MissingTerminator"
	case NumericOverflow:
		return "NumericOverflow"
	case EmptyList:
		return "EmptyList"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Sentinels for errors.Is; they match any SyntaxError of the same kind.
var (
	ErrLexicalMismatch   = &SyntaxError{Kind: LexicalMismatch}
	ErrUnexpectedToken   = &SyntaxError{Kind: UnexpectedToken}
	ErrMissingTerminator = &SyntaxError{Kind: MissingTerminator}
	ErrNumericOverflow   = &SyntaxError{Kind: NumericOverflow}
	ErrEmptyList         = &SyntaxError{Kind: EmptyList}
)

// SyntaxError represents a syntax error in SQL
type SyntaxError struct {
	Kind     ErrorKind
	Message  string
	Token    Token       // offending token
	Expected []TokenType // what would have been accepted, if known
	Err      error       // underlying cause, e.g. a strconv range error
}

// newSyntaxError builds an error positioned at tok
func newSyntaxError(kind ErrorKind, tok Token, expected []TokenType, message string) *SyntaxError {
	return &SyntaxError{
		Kind:     kind,
		Message:  message,
		Token:    tok,
		Expected: expected,
	}
}

// Error implements the error interface
func (e *SyntaxError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Kind.String()
	}
	if len(e.Expected) > 0 {
		msg = fmt.Sprintf("%s, expected %s", msg, joinExpected(e.Expected))
	}
	if e.Token.Line > 0 && e.Token.Column > 0 {
		return fmt.Sprintf("Syntax error at line %d, column %d: %s", e.Token.Line, e.Token.Column, msg)
	}
	return fmt.Sprintf("Syntax error: %s", msg)
}

// Unwrap returns the underlying cause
func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// Is matches sentinel errors by kind
func (e *SyntaxError) Is(target error) bool {
	t, ok := target.(*SyntaxError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func joinExpected(expected []TokenType) string {
	parts := make([]string, len(expected))
	for i, tt := range expected {
		parts[i] = tt.Display()
	}
	if len(parts) == 1 {
		return parts[0]
	}
	return "one of " + strings.Join(parts, ", ")
}

// describe renders a token for an error message
func describe(tok Token) string {
	switch tok.Type {
	case EOF:
		return "end of input"
	case ILLEGAL:
		return fmt.Sprintf("unrecognized input %q", tok.Literal)
	default:
		return fmt.Sprintf("%s %q", tok.Type.Display(), tok.Literal)
	}
}
