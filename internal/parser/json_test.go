package parser

import (
	"encoding/json"
	"testing"

	"github.com/go-test/deep"
)

func TestStatementJSON(t *testing.T) {
	tests := []struct {
		sql      string
		expected string
	}{
		{".exit", `{"type":"exit"}`},
		{
			"CREATE TABLE t (a INTEGER, b PRIMARY KEY);",
			`{"type":"create_table","schema":{"name":"t","columns":[{"name":"a","is_primary_key":false},{"name":"b","is_primary_key":true}]}}`,
		},
		{
			"INSERT INTO t VALUES (1, 2);",
			`{"type":"insert","insertion":{"table_name":"t","column_names":null,"values":[1,2]}}`,
		},
		{
			"INSERT INTO t (a) VALUES (7);",
			`{"type":"insert","insertion":{"table_name":"t","column_names":["a"],"values":[7]}}`,
		},
		{"SELECT * FROM t;", `{"type":"select","selection":{"table_name":"t","columns":"*"}}`},
		{"SELECT a, b FROM t;", `{"type":"select","selection":{"table_name":"t","columns":["a","b"]}}`},
	}

	for _, test := range tests {
		stmt, err := Parse(test.sql)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", test.sql, err)
		}

		data, err := json.Marshal(stmt)
		if err != nil {
			t.Fatalf("Marshal failed: %v", err)
		}
		if string(data) != test.expected {
			t.Errorf("Parse(%q) encoded as %s, expected %s", test.sql, data, test.expected)
		}

		decoded, err := UnmarshalStatement(data)
		if err != nil {
			t.Fatalf("UnmarshalStatement(%s) error: %v", data, err)
		}
		if diff := deep.Equal(decoded, stmt); diff != nil {
			t.Errorf("Decoding %s: %v", data, diff)
		}
	}
}

func TestUnmarshalStatementErrors(t *testing.T) {
	inputs := []string{
		`not json`,
		`{"type":"drop"}`,
		`{"type":"insert"}`,
		`{"type":"select","selection":{"table_name":"t","columns":"a"}}`,
		`{"type":"select","selection":{"table_name":"t","columns":7}}`,
	}

	for _, input := range inputs {
		if _, err := UnmarshalStatement([]byte(input)); err == nil {
			t.Errorf("Expected error decoding %s", input)
		}
	}
}

func TestColumnSetJSONEmptyNames(t *testing.T) {
	for _, cs := range []ColumnSet{NamedColumns(), {Names: []string{}}} {
		data, err := json.Marshal(cs)
		if err != nil {
			t.Fatalf("Marshal failed: %v", err)
		}
		if string(data) != "[]" {
			t.Errorf("Expected [], got %s", data)
		}

		var decoded ColumnSet
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("Unmarshal failed: %v", err)
		}
		if diff := deep.Equal(decoded, NamedColumns()); diff != nil {
			t.Error(diff)
		}
	}

	stmt := &SelectStatement{Selection: Selection{TableName: "t", Columns: NamedColumns()}}
	data, err := json.Marshal(stmt)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	decoded, err := UnmarshalStatement(data)
	if err != nil {
		t.Fatalf("UnmarshalStatement failed: %v", err)
	}
	if diff := deep.Equal(decoded, Statement(stmt)); diff != nil {
		t.Error(diff)
	}
}
