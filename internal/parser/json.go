package parser

import (
	"encoding/json"
	"fmt"
)

// Statement kinds used as the "type" tag in JSON
const (
	kindExit        = "exit"
	kindCreateTable = "create_table"
	kindInsert      = "insert"
	kindSelect      = "select"
)

type statementEnvelope struct {
	Type      string       `json:"type"`
	Schema    *TableSchema `json:"schema,omitempty"`
	Insertion *Insertion   `json:"insertion,omitempty"`
	Selection *Selection   `json:"selection,omitempty"`
}

func (es *ExitStatement) MarshalJSON() ([]byte, error) {
	return json.Marshal(statementEnvelope{Type: kindExit})
}

func (cts *CreateTableStatement) MarshalJSON() ([]byte, error) {
	return json.Marshal(statementEnvelope{Type: kindCreateTable, Schema: &cts.Schema})
}

func (is *InsertStatement) MarshalJSON() ([]byte, error) {
	return json.Marshal(statementEnvelope{Type: kindInsert, Insertion: &is.Insertion})
}

func (ss *SelectStatement) MarshalJSON() ([]byte, error) {
	return json.Marshal(statementEnvelope{Type: kindSelect, Selection: &ss.Selection})
}

// MarshalJSON encodes the wildcard as "*" and names as an array
func (cs ColumnSet) MarshalJSON() ([]byte, error) {
	if cs.WildCard {
		return json.Marshal("*")
	}
	names := cs.Names
	if names == nil {
		names = []string{}
	}
	return json.Marshal(names)
}

// UnmarshalJSON accepts "*" or an array of names
func (cs *ColumnSet) UnmarshalJSON(data []byte) error {
	var star string
	if err := json.Unmarshal(data, &star); err == nil {
		if star != "*" {
			return fmt.Errorf("invalid column set %q", star)
		}
		*cs = WildCardColumns()
		return nil
	}

	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return fmt.Errorf("invalid column set: %w", err)
	}
	if len(names) == 0 {
		names = nil
	}
	*cs = NamedColumns(names...)
	return nil
}

// UnmarshalStatement decodes a statement produced by json.Marshal
func UnmarshalStatement(data []byte) (Statement, error) {
	var env statementEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("failed to decode statement: %w", err)
	}

	switch env.Type {
	case kindExit:
		return &ExitStatement{}, nil
	case kindCreateTable:
		if env.Schema == nil {
			return nil, fmt.Errorf("create_table statement has no schema")
		}
		return &CreateTableStatement{Schema: *env.Schema}, nil
	case kindInsert:
		if env.Insertion == nil {
			return nil, fmt.Errorf("insert statement has no insertion")
		}
		return &InsertStatement{Insertion: *env.Insertion}, nil
	case kindSelect:
		if env.Selection == nil {
			return nil, fmt.Errorf("select statement has no selection")
		}
		return &SelectStatement{Selection: *env.Selection}, nil
	default:
		return nil, fmt.Errorf("unknown statement type %q", env.Type)
	}
}
