package parser

import (
	"fmt"
	"strings"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/go-test/deep"
	"golang.org/x/sync/errgroup"

	"github.com/LlamasScripters/minisql/internal/types"
)

// randomIdentifier returns a faker word that lexes as a single identifier
func randomIdentifier(t *testing.T) string {
	t.Helper()
	for i := 0; i < 100; i++ {
		word := faker.Word()
		if word == "" || !isLetter(word[0]) {
			continue
		}
		tokens := Tokenize(word)
		if len(tokens) == 2 && tokens[0].Type == IDENT {
			return word
		}
	}
	t.Fatal("faker did not produce a usable identifier")
	return ""
}

func randomIdentifiers(t *testing.T, n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("%s%d", randomIdentifier(t), i)
	}
	return names
}

func randomInts(t *testing.T, n int) []int {
	t.Helper()
	values, err := faker.RandomInt(0, 99999, n)
	if err != nil {
		t.Fatalf("faker.RandomInt failed: %v", err)
	}
	return values
}

// TestCreateTableColumnCountProperty tests that column count and order follow the input
func TestCreateTableColumnCountProperty(t *testing.T) {
	for round := 0; round < 25; round++ {
		table := randomIdentifier(t)
		names := randomIdentifiers(t, round%6+1)

		var defs []string
		var expected []Column
		for i, name := range names {
			def := name
			if i%2 == 0 {
				def += " INTEGER"
			}
			pk := i%3 == 1
			if pk {
				def += " PRIMARY KEY"
			}
			defs = append(defs, def)
			expected = append(expected, Column{Name: name, IsPrimaryKey: pk})
		}

		sql := fmt.Sprintf("CREATE TABLE %s (%s);", table, strings.Join(defs, ", "))
		stmt, err := Parse(sql)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", sql, err)
		}

		create, ok := stmt.(*CreateTableStatement)
		if !ok {
			t.Fatalf("Expected CreateTableStatement, got %T", stmt)
		}
		if create.Schema.Name != table {
			t.Errorf("Expected table %s, got %s", table, create.Schema.Name)
		}
		if diff := deep.Equal(create.Schema.Columns, expected); diff != nil {
			t.Errorf("Parse(%q): %v", sql, diff)
		}
	}
}

// TestInsertValuesProperty tests that values keep their order with and without a column list
func TestInsertValuesProperty(t *testing.T) {
	for round := 0; round < 25; round++ {
		n := round%5 + 1
		nums := randomInts(t, n)
		table := randomIdentifier(t)

		literals := make([]string, len(nums))
		expected := make([]types.Value, len(nums))
		for i, v := range nums {
			literals[i] = fmt.Sprint(v)
			expected[i] = types.NewInteger(int64(v))
		}

		var columns []string
		sql := fmt.Sprintf("INSERT INTO %s VALUES (%s);", table, strings.Join(literals, ","))
		if round%2 == 1 {
			columns = randomIdentifiers(t, len(nums))
			sql = fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s);", table, strings.Join(columns, ","), strings.Join(literals, ","))
		}

		stmt, err := Parse(sql)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", sql, err)
		}

		want := &InsertStatement{Insertion: Insertion{TableName: table, ColumnNames: columns, Values: expected}}
		if diff := deep.Equal(stmt, want); diff != nil {
			t.Errorf("Parse(%q): %v", sql, diff)
		}
	}
}

// TestConcurrentParsing tests that independent parses share no state
func TestConcurrentParsing(t *testing.T) {
	inputs := []string{
		".exit",
		"CREATE TABLE t (a INTEGER, b PRIMARY KEY);",
		"insert into t (a, b) values (1, 2);",
		"Select a, b From t;",
		"SELECT FROM t;",
	}

	expected := make([]Statement, len(inputs))
	expectedErr := make([]error, len(inputs))
	for i, sql := range inputs {
		expected[i], expectedErr[i] = Parse(sql)
	}

	var g errgroup.Group
	for worker := 0; worker < 8; worker++ {
		g.Go(func() error {
			for round := 0; round < 50; round++ {
				for i, sql := range inputs {
					stmt, err := Parse(sql)
					if (err == nil) != (expectedErr[i] == nil) {
						return fmt.Errorf("Parse(%q) error mismatch: %v vs %v", sql, err, expectedErr[i])
					}
					if diff := deep.Equal(stmt, expected[i]); diff != nil {
						return fmt.Errorf("Parse(%q): %v", sql, diff)
					}
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
}
