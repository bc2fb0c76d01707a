package parser

import "fmt"

// TokenType represents the type of a token
type TokenType int

const (
	// Special tokens
	ILLEGAL TokenType = iota // anything the lexer does not recognize
	EOF

	// Literals
	IDENT // table_name, column_name
	INT   // 123

	// Meta commands
	EXIT // .exit

	// Keywords
	CREATE
	TABLE
	INSERT
	INTO
	VALUES
	SELECT
	FROM
	PRIMARY_KEY // PRIMARY KEY

	// Data types
	INTEGER_TYPE

	// Punctuation
	SEMICOLON // ;
	COMMA     // ,
	LPAREN    // (
	RPAREN    // )

	// Wildcards
	ASTERISK // *
)

// Token represents a single token. Position is a byte offset; Line and
// Column are 1-based and Column counts characters.
type Token struct {
	Type     TokenType
	Literal  string
	Position int
	Line     int
	Column   int
}

// String returns a string representation of the token
func (t Token) String() string {
	return fmt.Sprintf("Token{Type: %s, Literal: %q, Pos: %d:%d}",
		t.Type.String(), t.Literal, t.Line, t.Column)
}

// keywords maps upper-cased words to their token type. PRIMARY KEY is
// assembled by the lexer from two words and is not listed here.
var keywords = map[string]TokenType{
	"CREATE":  CREATE,
	"TABLE":   TABLE,
	"INSERT":  INSERT,
	"INTO":    INTO,
	"VALUES":  VALUES,
	"SELECT":  SELECT,
	"FROM":    FROM,
	"INTEGER": INTEGER_TYPE,
}

const exitCommand = ".exit"

// String returns the string representation of a TokenType
func (tt TokenType) String() string {
	switch tt {
	case ILLEGAL:
		return "ILLEGAL"
	case EOF:
		return "EOF"
	case IDENT:
		return "IDENT"
	case INT:
		return "INT"
	case EXIT:
		return "EXIT"
	case CREATE:
		return "CREATE"
	case TABLE:
		return "TABLE"
	case INSERT:
		return "INSERT"
	case INTO:
		return "INTO"
	case VALUES:
		return "VALUES"
	case SELECT:
		return "SELECT"
	case FROM:
		return "FROM"
	case PRIMARY_KEY:
		return "PRIMARY_KEY"
	case INTEGER_TYPE:
		return "INTEGER_TYPE"
	case SEMICOLON:
		return "SEMICOLON"
	case COMMA:
		return "COMMA"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	case ASTERISK:
		return "ASTERISK"
	default:
		return fmt.Sprintf("TokenType(%d)", int(tt))
	}
}

// Display returns the text a user would type for tt, used in error messages
func (tt TokenType) Display() string {
	switch tt {
	case ILLEGAL:
		return "unrecognized input"
	case EOF:
		return "end of input"
	case IDENT:
		return "identifier"
	case INT:
		return "integer"
	case EXIT:
		return exitCommand
	case PRIMARY_KEY:
		return "PRIMARY KEY"
	case INTEGER_TYPE:
		return "INTEGER"
	case SEMICOLON:
		return "';'"
	case COMMA:
		return "','"
	case LPAREN:
		return "'('"
	case RPAREN:
		return "')'"
	case ASTERISK:
		return "'*'"
	default:
		return tt.String()
	}
}

// LookupIdent checks if an upper-cased word is a keyword
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// IsKeyword checks if a token type is a keyword
func IsKeyword(tokenType TokenType) bool {
	switch tokenType {
	case CREATE, TABLE, INSERT, INTO, VALUES, SELECT, FROM, PRIMARY_KEY, INTEGER_TYPE:
		return true
	default:
		return false
	}
}

// IsDataType checks if a token type represents a data type
func IsDataType(tokenType TokenType) bool {
	return tokenType == INTEGER_TYPE
}
