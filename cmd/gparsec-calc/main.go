// Command gparsec-calc is a small driver over gparsec/example's arithmetic
// and JSON grammars: it exercises the engine end to end, the way the
// teacher's own json_test.go exercises its grammar, but as a runnable binary
// instead of a test fixture.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/jon-hanson/gparsec/example"
)

func usage() {
	fmt.Fprintln(os.Stderr, `usage:
  gparsec-calc eval EXPR    evaluate an arithmetic expression
  gparsec-calc json EXPR    parse a JSON value and print its structure
  gparsec-calc              read expressions from stdin, one per line`)
}

func main() {
	flag.Usage = usage
	flag.Parse()
	logger := log.New(os.Stderr, "gparsec-calc: ", 0)

	switch flag.Arg(0) {
	case "eval":
		if flag.NArg() != 2 {
			usage()
			os.Exit(2)
		}
		runEval(logger, flag.Arg(1))
	case "json":
		if flag.NArg() != 2 {
			usage()
			os.Exit(2)
		}
		runJSON(logger, flag.Arg(1))
	case "":
		repl(logger)
	default:
		usage()
		os.Exit(2)
	}
}

func runEval(logger *log.Logger, expr string) {
	v, err := example.EvalExpr(expr).GetResult()
	if err != nil {
		logger.Printf("parse error: %v", err)
		os.Exit(1)
	}
	fmt.Println(v)
}

func runJSON(logger *log.Logger, src string) {
	v, err := example.ParseJSON(src).GetResult()
	if err != nil {
		logger.Printf("parse error: %v", err)
		os.Exit(1)
	}
	fmt.Println(describeJSON(v))
}

func describeJSON(v example.Value) string {
	switch v.Kind {
	case example.KindNull:
		return "null"
	case example.KindBool:
		return fmt.Sprintf("bool(%v)", v.Bool)
	case example.KindNumber:
		return fmt.Sprintf("number(%v)", v.Number)
	case example.KindString:
		return fmt.Sprintf("string(%q)", v.Str)
	case example.KindArray:
		parts := make([]string, len(v.Array))
		for i, elem := range v.Array {
			parts[i] = describeJSON(elem)
		}
		return "array[" + strings.Join(parts, ", ") + "]"
	case example.KindObject:
		parts := make([]string, 0, len(v.Object))
		for k, val := range v.Object {
			parts = append(parts, k+": "+describeJSON(val))
		}
		return "object{" + strings.Join(parts, ", ") + "}"
	default:
		return "<unknown>"
	}
}

// repl reads arithmetic expressions from stdin, one per line, echoing the
// result or parse error, until EOF.
func repl(logger *log.Logger) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		v, err := example.EvalExpr(line).GetResult()
		if err != nil {
			logger.Printf("parse error: %v", err)
			continue
		}
		fmt.Println(v)
	}
	if err := scanner.Err(); err != nil {
		logger.Fatalf("reading stdin: %v", err)
	}
}
