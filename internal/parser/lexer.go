package parser

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Lexer represents the lexical analyzer. A Lexer is not safe for concurrent
// use; create one per input.
type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           byte // current char under examination
	line         int  // current line number
	column       int  // current column number, in characters

	upper cases.Caser // keyword folding, stateful so never shared
}

// NewLexer creates a new lexer instance
func NewLexer(input string) *Lexer {
	l := &Lexer{
		input:  input,
		line:   1,
		column: 0,
		upper:  cases.Upper(language.Und),
	}
	l.readChar()
	return l
}

// readChar gives us the next character and advances our position in the input string
func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++

	if l.ch == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
}

func (l *Lexer) atEnd() bool {
	return l.position >= len(l.input)
}

// NextToken scans the input and returns the next token
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	if l.atEnd() {
		return Token{Type: EOF, Position: len(l.input), Line: l.line, Column: l.column}
	}

	var tok Token

	switch l.ch {
	case ';':
		tok = newToken(SEMICOLON, l.ch, l.position, l.line, l.column)
	case '*':
		tok = newToken(ASTERISK, l.ch, l.position, l.line, l.column)
	case ',':
		tok = newToken(COMMA, l.ch, l.position, l.line, l.column)
	case '(':
		tok = newToken(LPAREN, l.ch, l.position, l.line, l.column)
	case ')':
		tok = newToken(RPAREN, l.ch, l.position, l.line, l.column)
	case '.':
		if strings.HasPrefix(l.input[l.position:], exitCommand) {
			tok = Token{Type: EXIT, Literal: exitCommand, Position: l.position, Line: l.line, Column: l.column}
			l.advance(len(exitCommand))
			return tok
		}
		tok = newToken(ILLEGAL, l.ch, l.position, l.line, l.column)
	default:
		if isLetter(l.ch) {
			return l.readWord()
		} else if isDigit(l.ch) {
			tok = Token{Type: INT, Position: l.position, Line: l.line, Column: l.column}
			tok.Literal = l.readNumber()
			return tok
		}
		return l.readIllegal()
	}

	l.readChar()
	return tok
}

// newToken creates a new token
func newToken(tokenType TokenType, ch byte, position, line, column int) Token {
	return Token{
		Type:     tokenType,
		Literal:  string(ch),
		Position: position,
		Line:     line,
		Column:   column,
	}
}

// advance skips n bytes
func (l *Lexer) advance(n int) {
	for i := 0; i < n; i++ {
		l.readChar()
	}
}

// readWord reads an identifier or keyword. PRIMARY followed by whitespace and
// KEY becomes a single PRIMARY_KEY token spanning both words.
func (l *Lexer) readWord() Token {
	tok := Token{Position: l.position, Line: l.line, Column: l.column}
	tok.Literal = l.readIdentifier()

	word := l.upper.String(tok.Literal)
	if word == "PRIMARY" {
		if end, ok := l.scanKeySuffix(); ok {
			l.advance(end - l.position)
			tok.Type = PRIMARY_KEY
			tok.Literal = l.input[tok.Position:l.position]
			return tok
		}
	}

	tok.Type = LookupIdent(word)
	return tok
}

// scanKeySuffix looks past the current position for whitespace followed by
// the word KEY, without consuming anything. It returns the end offset of KEY.
func (l *Lexer) scanKeySuffix() (int, bool) {
	i := l.position
	for i < len(l.input) && isWhitespace(l.input[i]) {
		i++
	}
	if i == l.position || i >= len(l.input) || !isLetter(l.input[i]) {
		return 0, false
	}

	start := i
	for i < len(l.input) && (isLetter(l.input[i]) || isDigit(l.input[i])) {
		i++
	}
	if l.upper.String(l.input[start:i]) != "KEY" {
		return 0, false
	}
	return i, true
}

// readIdentifier reads [a-zA-Z][a-zA-Z0-9]*
func (l *Lexer) readIdentifier() string {
	position := l.position
	for !l.atEnd() && (isLetter(l.ch) || isDigit(l.ch)) {
		l.readChar()
	}
	return l.input[position:l.position]
}

// readNumber reads [0-9]+
func (l *Lexer) readNumber() string {
	position := l.position
	for !l.atEnd() && isDigit(l.ch) {
		l.readChar()
	}
	return l.input[position:l.position]
}

// readIllegal consumes one whole UTF-8 sequence so multi-byte input is
// reported as the character the user typed.
func (l *Lexer) readIllegal() Token {
	tok := Token{Type: ILLEGAL, Position: l.position, Line: l.line, Column: l.column}
	_, size := utf8.DecodeRuneInString(l.input[l.position:])
	tok.Literal = l.input[l.position : l.position+size]
	l.advance(size)
	// columns count characters, positions count bytes
	l.column -= size - 1
	return tok
}

// skipWhitespace skips whitespace characters
func (l *Lexer) skipWhitespace() {
	for !l.atEnd() && isWhitespace(l.ch) {
		l.readChar()
	}
}

func isWhitespace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '\f' || ch == '\v'
}

// isLetter checks if the character is an ASCII letter
func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

// isDigit checks if the character is a digit
func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

// GetAllTokens returns all tokens from the input, ending with EOF
func (l *Lexer) GetAllTokens() []Token {
	var tokens []Token

	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			break
		}
	}

	return tokens
}

// Tokenize scans input into its full token sequence
func Tokenize(input string) []Token {
	return NewLexer(input).GetAllTokens()
}

// Cursor walks a materialized token sequence for the parser
type Cursor struct {
	tokens  []Token
	current int
}

// NewCursor tokenizes input and positions the cursor on the first token
func NewCursor(input string) *Cursor {
	return &Cursor{tokens: Tokenize(input)}
}

// Current returns the current token
func (c *Cursor) Current() Token {
	return c.tokens[c.current]
}

// Advance moves to the next token and returns the one it left. The cursor
// never moves past EOF.
func (c *Cursor) Advance() Token {
	tok := c.Current()
	if c.current < len(c.tokens)-1 {
		c.current++
	}
	return tok
}

// IsAtEnd checks if we're at the end of tokens
func (c *Cursor) IsAtEnd() bool {
	return c.Current().Type == EOF
}
