package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/go-faker/faker/v4"

	"github.com/LlamasScripters/minisql/internal/parser"
)

// invalidSamples exercise each syntax error kind
var invalidSamples = []string{
	"CREATE TABLE t ();",
	"INSERT INTO t VALUES (99999999999999999999);",
	"SELECT FROM t;",
	"CREATE TABLE t (a INTEGER)",
	"CREATE TABLE my_table (a INTEGER);",
}

func runDemo(w io.Writer, rounds int) {
	fmt.Fprintln(w, "🚀 === Statement Parser Demo === 🚀")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "📊 Parsing randomly generated statements...")
	for i := 0; i < rounds; i++ {
		var query string
		switch i % 3 {
		case 0:
			query = generateRandomCreate()
		case 1:
			query = generateRandomInsert()
		default:
			query = generateRandomSelect()
		}
		demoParse(w, query)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "⚠️  Parsing invalid statements...")
	for _, query := range invalidSamples {
		demoParse(w, query)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "🎉 === Demo Complete === 🎉")
}

func demoParse(w io.Writer, query string) {
	showSQLQuery(w, query)

	stmt, err := parser.Parse(query)
	if err != nil {
		var serr *parser.SyntaxError
		if errors.As(err, &serr) {
			fmt.Fprintf(w, "   ❌ %s: %v\n", serr.Kind, err)
		} else {
			fmt.Fprintf(w, "   ❌ %v\n", err)
		}
		return
	}

	fmt.Fprintf(w, "   ✓ %s\n", describeStatement(stmt))
	if create, ok := stmt.(*parser.CreateTableStatement); ok {
		displaySchema(w, create.Schema)
	}
}

// randomName returns a faker word that the lexer reads as one identifier
func randomName() string {
	for {
		word := faker.Word()
		tokens := parser.Tokenize(word)
		if len(tokens) == 2 && tokens[0].Type == parser.IDENT {
			return word
		}
	}
}

func randomColumns(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("%s%d", randomName(), i+1)
	}
	return names
}

func generateRandomCreate() string {
	columns := randomColumns(rand.Intn(4) + 1)
	defs := make([]string, len(columns))
	for i, col := range columns {
		defs[i] = col
		if rand.Float32() > 0.3 {
			defs[i] += " INTEGER"
		}
		if i == 0 && rand.Float32() > 0.5 {
			defs[i] += " PRIMARY KEY"
		}
	}
	return fmt.Sprintf("CREATE TABLE %s (%s);", randomName(), strings.Join(defs, ", "))
}

func generateRandomInsert() string {
	n := rand.Intn(4) + 1
	values := make([]string, n)
	for i := range values {
		values[i] = fmt.Sprint(rand.Int63n(1_000_000))
	}

	if rand.Float32() > 0.5 {
		return fmt.Sprintf("INSERT INTO %s VALUES (%s);", randomName(), strings.Join(values, ", "))
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s);",
		randomName(), strings.Join(randomColumns(n), ", "), strings.Join(values, ", "))
}

func generateRandomSelect() string {
	if rand.Float32() > 0.5 {
		return fmt.Sprintf("select * from %s;", randomName())
	}
	return fmt.Sprintf("select %s from %s;", strings.Join(randomColumns(rand.Intn(3)+1), ", "), randomName())
}

// displaySchema draws the columns of a table
func displaySchema(w io.Writer, schema parser.TableSchema) {
	fmt.Fprintf(w, "   📋 %s\n", schema.Name)
	fmt.Fprintln(w, "   ┌──────────────────────┬─────────────┐")
	fmt.Fprintf(w, "   │ %-20s │ %-11s │\n", "column", "primary key")
	fmt.Fprintln(w, "   ├──────────────────────┼─────────────┤")
	for _, col := range schema.Columns {
		pk := ""
		if col.IsPrimaryKey {
			pk = "yes"
		}
		fmt.Fprintf(w, "   │ %-20s │ %-11s │\n", truncateString(col.Name, 20), pk)
	}
	fmt.Fprintln(w, "   └──────────────────────┴─────────────┘")
}

// Helper function to truncate strings for table display
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// Helper function to display SQL queries
func showSQLQuery(w io.Writer, query string) {
	fmt.Fprintf(w, "   📝 %s\n", query)
}
