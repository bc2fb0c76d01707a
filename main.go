package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/LlamasScripters/minisql/internal/parser"
)

func main() {
	sqlFlag := flag.String("sql", "", "parse a single statement")
	fileFlag := flag.String("file", "", "parse every line of a file as one statement")
	jsonFlag := flag.Bool("json", false, "print statements as JSON")
	demoFlag := flag.Bool("demo", false, "parse randomly generated statements")
	helpFlag := flag.Bool("help", false, "show help")
	flag.Usage = func() { showHelp(os.Stderr) }
	flag.Parse()

	var lines []string
	switch {
	case *helpFlag:
		showHelp(os.Stdout)
		return
	case *demoFlag:
		runDemo(os.Stdout, 12)
		return
	case *sqlFlag != "":
		lines = []string{*sqlFlag}
	case *fileFlag != "":
		content, err := readSQLFile(*fileFlag)
		if err != nil {
			log.Fatal("Failed to read SQL file:", err)
		}
		lines = strings.Split(content, "\n")
	default:
		showHelp(os.Stderr)
		os.Exit(2)
	}

	results := parseLines(lines)
	failed, err := printResults(os.Stdout, results, *jsonFlag)
	if err != nil {
		log.Fatal("Failed to print results:", err)
	}
	if failed > 0 {
		log.Printf("%d of %d statements failed to parse", failed, len(results))
		os.Exit(1)
	}
}

func showHelp(w io.Writer) {
	fmt.Fprintln(w, "minisql - statement parser for a small SQLite-like database")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  minisql --sql \"<statement>\" [--json]")
	fmt.Fprintln(w, "  minisql --file <path> [--json]")
	fmt.Fprintln(w, "  minisql --demo")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  --sql     Parse a single statement")
	fmt.Fprintln(w, "  --file    Parse every non-blank line of a file as one statement")
	fmt.Fprintln(w, "  --json    Print parsed statements as JSON")
	fmt.Fprintln(w, "  --demo    Parse randomly generated statements")
	fmt.Fprintln(w, "  --help    Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  minisql --sql \"CREATE TABLE users (id INTEGER PRIMARY KEY, age INTEGER);\"")
	fmt.Fprintln(w, "  minisql --sql \"SELECT * FROM users;\" --json")
}

func readSQLFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// lineResult is the outcome of parsing one input line
type lineResult struct {
	Line int
	Text string
	Stmt parser.Statement
	Err  error
}

// parseLines parses every non-blank line independently, in parallel, and
// returns the results in input order.
func parseLines(lines []string) []lineResult {
	var results []lineResult
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		results = append(results, lineResult{Line: i + 1, Text: line})
	}

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i := range results {
		g.Go(func() error {
			results[i].Stmt, results[i].Err = parser.Parse(results[i].Text)
			return nil
		})
	}
	_ = g.Wait() // parse failures are recorded per line

	return results
}

// printResults writes each result and returns how many failed
func printResults(w io.Writer, results []lineResult, asJSON bool) (int, error) {
	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			fmt.Fprintf(w, "✗ line %d: %v\n", res.Line, res.Err)
			continue
		}

		if asJSON {
			data, err := json.Marshal(res.Stmt)
			if err != nil {
				return failed, err
			}
			fmt.Fprintf(w, "%s\n", data)
			continue
		}

		fmt.Fprintf(w, "✓ line %d: %s\n", res.Line, describeStatement(res.Stmt))
	}
	return failed, nil
}

// describeStatement summarizes a statement for display
func describeStatement(stmt parser.Statement) string {
	switch s := stmt.(type) {
	case *parser.ExitStatement:
		return "exit"
	case *parser.CreateTableStatement:
		summary := fmt.Sprintf("create table %s with %d column(s)", s.Schema.Name, len(s.Schema.Columns))
		if pk, ok := s.Schema.PrimaryKey(); ok {
			summary += fmt.Sprintf(", primary key %s", pk.Name)
		}
		return summary
	case *parser.InsertStatement:
		target := "all columns"
		if s.Insertion.HasColumnNames() {
			target = strings.Join(s.Insertion.ColumnNames, ", ")
		}
		return fmt.Sprintf("insert %d value(s) into %s (%s)", len(s.Insertion.Values), s.Insertion.TableName, target)
	case *parser.SelectStatement:
		if s.Selection.Columns.IsWildCard() {
			return fmt.Sprintf("select all columns from %s", s.Selection.TableName)
		}
		return fmt.Sprintf("select %s from %s", s.Selection.Columns.String(), s.Selection.TableName)
	default:
		return stmt.String()
	}
}
