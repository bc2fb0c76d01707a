package parser

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/LlamasScripters/minisql/internal/types"
)

// Parser turns one line of input into a Statement. A Parser is single use;
// Parse is the usual entry point.
type Parser struct {
	cursor *Cursor
}

// NewParser creates a new SQL parser
func NewParser(input string) *Parser {
	return &Parser{cursor: NewCursor(input)}
}

// Parse parses exactly one statement from input. On failure the error is a
// *SyntaxError and no partial statement is returned.
func Parse(input string) (Statement, error) {
	return NewParser(input).Parse()
}

// Parse parses the input and returns the statement it holds
func (p *Parser) Parse() (Statement, error) {
	stmt, err := p.parseStatement()
	if err != nil {
		return nil, err
	}

	if !p.isAtEnd() {
		return nil, p.unexpected(EOF)
	}

	return stmt, nil
}

// current returns the token under the cursor
func (p *Parser) current() Token {
	return p.cursor.Current()
}

// nextToken advances to the next token
func (p *Parser) nextToken() {
	p.cursor.Advance()
}

// isAtEnd checks if we're at the end of input
func (p *Parser) isAtEnd() bool {
	return p.cursor.IsAtEnd()
}

// expectToken consumes a token of the expected type or fails
func (p *Parser) expectToken(expected TokenType) (Token, error) {
	tok := p.current()
	if tok.Type != expected {
		return tok, p.unexpected(expected)
	}
	p.nextToken()
	return tok, nil
}

// expectTerminator consumes the closing ';'
func (p *Parser) expectTerminator() error {
	tok := p.current()
	switch tok.Type {
	case SEMICOLON:
		p.nextToken()
		return nil
	case EOF:
		return newSyntaxError(MissingTerminator, tok, []TokenType{SEMICOLON}, "statement is not terminated")
	default:
		return p.unexpected(SEMICOLON)
	}
}

// unexpected reports the current token as not matching any of expected
func (p *Parser) unexpected(expected ...TokenType) *SyntaxError {
	tok := p.current()
	if tok.Type == ILLEGAL {
		return newSyntaxError(LexicalMismatch, tok, expected, describe(tok))
	}
	return newSyntaxError(UnexpectedToken, tok, expected, "unexpected "+describe(tok))
}

// parseStatement dispatches on the leading token
func (p *Parser) parseStatement() (Statement, error) {
	switch p.current().Type {
	case EXIT:
		p.nextToken()
		return &ExitStatement{}, nil
	case CREATE:
		return p.parseCreateTable()
	case INSERT:
		return p.parseInsert()
	case SELECT:
		return p.parseSelect()
	default:
		return nil, p.unexpected(EXIT, CREATE, INSERT, SELECT)
	}
}

// ==================== CREATE TABLE ====================

func (p *Parser) parseCreateTable() (*CreateTableStatement, error) {
	p.nextToken() // consume CREATE

	if _, err := p.expectToken(TABLE); err != nil {
		return nil, err
	}

	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}

	columns, err := parseParenList(p, "column list", p.parseColumn)
	if err != nil {
		return nil, err
	}

	if err := p.expectTerminator(); err != nil {
		return nil, err
	}

	return &CreateTableStatement{Schema: TableSchema{Name: name, Columns: columns}}, nil
}

// parseColumn parses <identifier> [datatype] [PRIMARY KEY]
func (p *Parser) parseColumn() (Column, error) {
	name, err := p.parseIdentifier()
	if err != nil {
		return Column{}, err
	}

	// the data type is accepted but carries no meaning yet
	if IsDataType(p.current().Type) {
		p.nextToken()
	}

	col := Column{Name: name}
	if p.current().Type == PRIMARY_KEY {
		p.nextToken()
		col.IsPrimaryKey = true
	}

	return col, nil
}

// ==================== INSERT ====================

func (p *Parser) parseInsert() (*InsertStatement, error) {
	p.nextToken() // consume INSERT

	if _, err := p.expectToken(INTO); err != nil {
		return nil, err
	}

	table, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}

	ins := Insertion{TableName: table}

	switch p.current().Type {
	case LPAREN:
		ins.ColumnNames, err = parseParenList(p, "column name list", p.parseIdentifier)
		if err != nil {
			return nil, err
		}
	case VALUES:
	default:
		return nil, p.unexpected(LPAREN, VALUES)
	}

	if _, err := p.expectToken(VALUES); err != nil {
		return nil, err
	}

	ins.Values, err = parseParenList(p, "value list", p.parseValue)
	if err != nil {
		return nil, err
	}

	if err := p.expectTerminator(); err != nil {
		return nil, err
	}

	return &InsertStatement{Insertion: ins}, nil
}

// parseValue parses an integer literal into a 64-bit value
func (p *Parser) parseValue() (types.Value, error) {
	tok, err := p.expectToken(INT)
	if err != nil {
		return types.Value{}, err
	}

	i, err := strconv.ParseInt(tok.Literal, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			serr := newSyntaxError(NumericOverflow, tok, nil,
				fmt.Sprintf("integer %s is out of range", tok.Literal))
			serr.Err = err
			return types.Value{}, serr
		}
		return types.Value{}, newSyntaxError(LexicalMismatch, tok, []TokenType{INT}, describe(tok))
	}

	return types.NewInteger(i), nil
}

// ==================== SELECT ====================

func (p *Parser) parseSelect() (*SelectStatement, error) {
	p.nextToken() // consume SELECT

	columns, err := p.parseColumnSelection()
	if err != nil {
		return nil, err
	}

	if _, err := p.expectToken(FROM); err != nil {
		return nil, err
	}

	table, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}

	if err := p.expectTerminator(); err != nil {
		return nil, err
	}

	return &SelectStatement{Selection: Selection{TableName: table, Columns: columns}}, nil
}

// parseColumnSelection parses '*' or a bare comma-separated identifier list
func (p *Parser) parseColumnSelection() (ColumnSet, error) {
	switch p.current().Type {
	case ASTERISK:
		p.nextToken()
		return WildCardColumns(), nil
	case IDENT:
		var names []string
		for {
			name, err := p.parseIdentifier()
			if err != nil {
				return ColumnSet{}, err
			}
			names = append(names, name)

			if p.current().Type != COMMA {
				return NamedColumns(names...), nil
			}
			p.nextToken()
		}
	default:
		return ColumnSet{}, p.unexpected(ASTERISK, IDENT)
	}
}

// ==================== Shared productions ====================

// parseIdentifier takes an identifier token verbatim
func (p *Parser) parseIdentifier() (string, error) {
	tok, err := p.expectToken(IDENT)
	if err != nil {
		return "", err
	}
	return tok.Literal, nil
}

// parseParenList parses '(' item (',' item)* ')' with at least one item
func parseParenList[T any](p *Parser, what string, item func() (T, error)) ([]T, error) {
	if _, err := p.expectToken(LPAREN); err != nil {
		return nil, err
	}

	if tok := p.current(); tok.Type == RPAREN {
		return nil, newSyntaxError(EmptyList, tok, nil, what+" must not be empty")
	}

	var items []T
	for {
		it, err := item()
		if err != nil {
			return nil, err
		}
		items = append(items, it)

		switch p.current().Type {
		case COMMA:
			p.nextToken()
		case RPAREN:
			p.nextToken()
			return items, nil
		default:
			return nil, p.unexpected(COMMA, RPAREN)
		}
	}
}
