package parser

import (
	"fmt"
	"strings"

	"github.com/LlamasScripters/minisql/internal/types"
)

// Node represents any node in the AST
type Node interface {
	String() string
	Type() string
}

// Statement represents one parsed top-level instruction. The concrete types
// are *ExitStatement, *CreateTableStatement, *InsertStatement and
// *SelectStatement.
type Statement interface {
	Node
	statementNode()
}

// ExitStatement represents the .exit meta command
type ExitStatement struct{}

func (es *ExitStatement) statementNode() {}
func (es *ExitStatement) String() string { return exitCommand }
func (es *ExitStatement) Type() string   { return "ExitStatement" }

// CreateTableStatement represents CREATE TABLE statement
type CreateTableStatement struct {
	Schema TableSchema
}

func (cts *CreateTableStatement) statementNode() {}
func (cts *CreateTableStatement) String() string {
	return fmt.Sprintf("CREATE TABLE %s;", cts.Schema.String())
}
func (cts *CreateTableStatement) Type() string { return "CreateTableStatement" }

// InsertStatement represents INSERT statement
type InsertStatement struct {
	Insertion Insertion
}

func (is *InsertStatement) statementNode() {}
func (is *InsertStatement) String() string {
	return fmt.Sprintf("INSERT INTO %s;", is.Insertion.String())
}
func (is *InsertStatement) Type() string { return "InsertStatement" }

// SelectStatement represents SELECT statement
type SelectStatement struct {
	Selection Selection
}

func (ss *SelectStatement) statementNode() {}
func (ss *SelectStatement) String() string {
	return fmt.Sprintf("SELECT %s;", ss.Selection.String())
}
func (ss *SelectStatement) Type() string { return "SelectStatement" }

// ==================== Fragments ====================

// TableSchema is the body of CREATE TABLE. Columns is never empty when
// produced by the parser.
type TableSchema struct {
	Name    string   `json:"name"`
	Columns []Column `json:"columns"`
}

// PrimaryKey returns the first column flagged as primary key
func (ts TableSchema) PrimaryKey() (Column, bool) {
	for _, col := range ts.Columns {
		if col.IsPrimaryKey {
			return col, true
		}
	}
	return Column{}, false
}

// String renders "name (col, ...)"
func (ts TableSchema) String() string {
	parts := make([]string, len(ts.Columns))
	for i, col := range ts.Columns {
		parts[i] = col.String()
	}
	return fmt.Sprintf("%s (%s)", ts.Name, strings.Join(parts, ", "))
}

// Column is a column definition. The declared data type, if any, is not kept.
type Column struct {
	Name         string `json:"name"`
	IsPrimaryKey bool   `json:"is_primary_key"`
}

func (c Column) String() string {
	if c.IsPrimaryKey {
		return c.Name + " PRIMARY KEY"
	}
	return c.Name
}

// Insertion is the body of INSERT. A nil ColumnNames means the statement
// named no columns and targets all of them in declared order.
type Insertion struct {
	TableName   string        `json:"table_name"`
	ColumnNames []string      `json:"column_names"`
	Values      []types.Value `json:"values"`
}

// HasColumnNames reports whether an explicit column list was given
func (ins Insertion) HasColumnNames() bool {
	return ins.ColumnNames != nil
}

// String renders "table [(cols)] VALUES (vals)"
func (ins Insertion) String() string {
	var out strings.Builder
	out.WriteString(ins.TableName)
	if ins.HasColumnNames() {
		out.WriteString(" (")
		out.WriteString(strings.Join(ins.ColumnNames, ", "))
		out.WriteString(")")
	}

	vals := make([]string, len(ins.Values))
	for i, v := range ins.Values {
		vals[i] = v.String()
	}
	out.WriteString(" VALUES (")
	out.WriteString(strings.Join(vals, ", "))
	out.WriteString(")")
	return out.String()
}

// Selection is the body of SELECT
type Selection struct {
	TableName string    `json:"table_name"`
	Columns   ColumnSet `json:"columns"`
}

func (s Selection) String() string {
	return fmt.Sprintf("%s FROM %s", s.Columns.String(), s.TableName)
}

// ColumnSet is either the wildcard or an ordered list of column names
type ColumnSet struct {
	WildCard bool
	Names    []string
}

// WildCardColumns selects every column
func WildCardColumns() ColumnSet {
	return ColumnSet{WildCard: true}
}

// NamedColumns selects the given columns in order
func NamedColumns(names ...string) ColumnSet {
	return ColumnSet{Names: names}
}

// IsWildCard reports whether the set is '*'
func (cs ColumnSet) IsWildCard() bool {
	return cs.WildCard
}

func (cs ColumnSet) String() string {
	if cs.WildCard {
		return "*"
	}
	return strings.Join(cs.Names, ", ")
}
