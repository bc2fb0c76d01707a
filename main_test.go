package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/LlamasScripters/minisql/internal/parser"
)

func TestShowHelp(t *testing.T) {
	var buf bytes.Buffer
	showHelp(&buf)
	helpText := buf.String()

	expectedStrings := []string{
		"minisql",
		"Usage:",
		"--sql",
		"--file",
		"--json",
		"--demo",
		"--help",
		"Examples:",
	}

	for _, expected := range expectedStrings {
		if !strings.Contains(helpText, expected) {
			t.Errorf("Help text should contain '%s'", expected)
		}
	}
}

func TestReadSQLFile(t *testing.T) {
	sqlFile := filepath.Join(t.TempDir(), "test.sql")
	sqlContent := "SELECT * FROM users;\nCREATE TABLE test (id INTEGER);"

	if err := os.WriteFile(sqlFile, []byte(sqlContent), 0644); err != nil {
		t.Fatalf("Failed to write SQL file: %v", err)
	}

	result, err := readSQLFile(sqlFile)
	if err != nil {
		t.Fatalf("readSQLFile failed: %v", err)
	}
	if result != sqlContent {
		t.Errorf("Expected '%s', got '%s'", sqlContent, result)
	}

	if _, err := readSQLFile(filepath.Join(t.TempDir(), "missing.sql")); err == nil {
		t.Error("Expected error for a missing file")
	}
}

func TestParseLines(t *testing.T) {
	lines := []string{
		"CREATE TABLE users (id INTEGER PRIMARY KEY, age INTEGER);",
		"",
		"INSERT INTO users VALUES (1, 30);",
		"   ",
		"SELECT FROM users;",
		"SELECT * FROM users;",
		".exit",
	}

	results := parseLines(lines)
	if len(results) != 5 {
		t.Fatalf("Expected 5 results, got %d", len(results))
	}

	expectedLines := []int{1, 3, 5, 6, 7}
	for i, res := range results {
		if res.Line != expectedLines[i] {
			t.Errorf("Result %d: expected line %d, got %d", i, expectedLines[i], res.Line)
		}
	}

	if !errors.Is(results[2].Err, parser.ErrUnexpectedToken) {
		t.Errorf("Expected UnexpectedToken on line 5, got %v", results[2].Err)
	}
	if _, ok := results[4].Stmt.(*parser.ExitStatement); !ok {
		t.Errorf("Expected ExitStatement on line 7, got %T", results[4].Stmt)
	}
}

func TestPrintResults(t *testing.T) {
	results := parseLines([]string{
		"CREATE TABLE users (id INTEGER PRIMARY KEY, age INTEGER);",
		"INSERT INTO users (id) VALUES (1);",
		"SELECT * FROM users;",
		"SELECT id, age FROM users;",
		"CREATE TABLE t ()",
	})

	var buf bytes.Buffer
	failed, err := printResults(&buf, results, false)
	if err != nil {
		t.Fatalf("printResults failed: %v", err)
	}
	if failed != 1 {
		t.Errorf("Expected 1 failure, got %d", failed)
	}

	output := buf.String()
	for _, expected := range []string{
		"create table users with 2 column(s), primary key id",
		"insert 1 value(s) into users (id)",
		"select all columns from users",
		"select id, age from users",
		"✗ line 5:",
	} {
		if !strings.Contains(output, expected) {
			t.Errorf("Output should contain %q, got:\n%s", expected, output)
		}
	}
}

func TestPrintResultsJSON(t *testing.T) {
	results := parseLines([]string{"SELECT * FROM t;"})

	var buf bytes.Buffer
	if _, err := printResults(&buf, results, true); err != nil {
		t.Fatalf("printResults failed: %v", err)
	}

	expected := `{"type":"select","selection":{"table_name":"t","columns":"*"}}` + "\n"
	if buf.String() != expected {
		t.Errorf("Expected %q, got %q", expected, buf.String())
	}
}

func TestRunDemo(t *testing.T) {
	var buf bytes.Buffer
	runDemo(&buf, 6)
	output := buf.String()

	if !strings.Contains(output, "Demo Complete") {
		t.Error("Demo should run to completion")
	}
	if strings.Count(output, "✓") != 6 {
		t.Errorf("Expected 6 generated statements to parse, got output:\n%s", output)
	}
	for _, kind := range []string{"EmptyList", "NumericOverflow", "UnexpectedToken", "MissingTerminator", "LexicalMismatch"} {
		if !strings.Contains(output, kind) {
			t.Errorf("Demo output should show a %s error", kind)
		}
	}
}

func TestTruncateString(t *testing.T) {
	if got := truncateString("short", 10); got != "short" {
		t.Errorf("Expected 'short', got '%s'", got)
	}
	if got := truncateString("averyveryverylongname", 10); got != "averyve..." {
		t.Errorf("Expected 'averyve...', got '%s'", got)
	}
}
