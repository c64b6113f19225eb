// Copyright 2026 The Hornlog Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package interpreter provides functions for an interactive interpreter
// over a proofsystem.ProofSystem: loading source files, evaluating
// interactively typed clauses and queries, and the REPL command loop
// itself.
package interpreter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/chzyer/readline"

	"github.com/kclause/hornlog/ast"
	"github.com/kclause/hornlog/parse"
	"github.com/kclause/hornlog/proofsystem"
)

// Interpreter is an interactive interpreter over a ProofSystem.
type Interpreter struct {
	out  io.Writer
	root string
	ps   proofsystem.ProofSystem
	// Paths loaded via ::load, in load order, for introspection.
	src []string
}

// New returns a new, empty Interpreter. root is the base directory
// ::load paths are resolved against.
func New(out io.Writer, root string) *Interpreter {
	return &Interpreter{out: out, root: root, ps: proofsystem.New()}
}

const (
	normalPrompt    = "hornlog >"
	continuedPrompt = "       >"
)

func nextLine() (string, error) {
	return nextLineWithPrompt(normalPrompt)
}

func nextLineWithPrompt(prompt string) (string, error) {
	rl, err := readline.New(prompt)
	if err != nil {
		return "", err
	}
	defer rl.Close()
	line, err := rl.Readline()
	if err != nil {
		return "", err
	}
	readline.AddHistory(line)
	return strings.TrimSpace(line), nil
}

// Load loads the source file at path (resolved against i.root), assuming
// every rule it contains. A load failure leaves the interpreter's state
// unchanged.
func (i *Interpreter) Load(path string) error {
	data, err := os.ReadFile(filepath.Join(i.root, path))
	if err != nil {
		return err
	}
	prog, err := parse.ParseFile(string(data))
	if err != nil {
		return err
	}
	next := i.ps
	var loaded int
	for _, stmt := range prog.Statements {
		if stmt.IsQuery {
			continue
		}
		next, err = next.Assume(*stmt.Rule)
		if err != nil {
			return fmt.Errorf("assuming %v: %w", stmt.Rule, err)
		}
		loaded++
	}
	i.ps = next
	i.src = append(i.src, path)
	fmt.Fprintf(i.out, "loaded %s (%d rules).\n", path, loaded)
	return nil
}

// Define parses and assumes a single interactively-typed clause.
func (i *Interpreter) Define(clauseText string) error {
	stmt, err := parse.ParseLine(clauseText)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}
	if stmt.IsQuery {
		return fmt.Errorf("expected a clause ending in '.', got a query")
	}
	next, err := i.ps.Assume(*stmt.Rule)
	if err != nil {
		return fmt.Errorf("assuming failed: %w", err)
	}
	i.ps = next
	fmt.Fprintf(i.out, "defined %s.\n", stmt.Rule.Head.Pred)
	return nil
}

// QueryInteractive parses queryText as a goal, evaluates it against the
// interpreter's state, and prints solutions one at a time, asking the
// user after each one whether to continue -- the classic Prolog REPL
// "More? [Y/n]" pagination. The prompt is skipped after the last
// solution, since ProofSystem.Query reports in advance whether another
// one remains.
func (i *Interpreter) QueryInteractive(queryText string) error {
	goal, err := parseGoal(queryText)
	if err != nil {
		return err
	}

	found := 0
	for sol, hasMore := range i.ps.Query(goal) {
		found++
		fmt.Fprintf(i.out, "%s\n", sol)
		if !hasMore {
			break
		}
		more, err := nextLineWithPrompt("More? [Y/n] ")
		if err != nil || strings.EqualFold(more, "n") {
			break
		}
	}
	if found == 0 {
		fmt.Fprintln(i.out, "false.")
	}
	return nil
}

// parseGoal parses a bare predicate name or full goal expression typed
// after a REPL '?' prompt.
func parseGoal(text string) (ast.Proposition, error) {
	stmt, err := parse.ParseLine("?" + text)
	if err != nil {
		return nil, err
	}
	return stmt.Query, nil
}

// Show prints the known predicates and their rule counts. arg == "all"
// lists every predicate; otherwise it shows just the named one.
func (i *Interpreter) Show(arg string) error {
	preds := i.ps.Predicates()
	sort.Slice(preds, func(a, b int) bool { return preds[a] < preds[b] })

	if arg == "all" || arg == "" {
		for _, p := range preds {
			i.showPredicate(p)
		}
		return nil
	}
	for _, p := range preds {
		if string(p) == arg {
			i.showPredicate(p)
			return nil
		}
	}
	return fmt.Errorf("predicate %s not found", arg)
}

func (i *Interpreter) showPredicate(p ast.PredName) {
	rules := i.ps.Rules(p)
	fmt.Fprintf(i.out, "%-20s %d rule(s)\n", p, len(rules))
}

// ShowHelp displays help text.
func (i *Interpreter) ShowHelp() {
	fmt.Fprintln(i.out, `
<clause>.            adds clause to the knowledge base immediately
?<goal>              queries the knowledge base, paginating solutions
::load <path>        loads a source file, assuming every clause in it
::assertions         lists every known predicate and its rule count
::show <predicate>   shows rule count for one predicate
::help                display this help text
<Ctrl-D>             quit`)
}

// Loop reads lines from stdin and performs the corresponding command
// until EOF (Ctrl-D) or an I/O error.
func (i *Interpreter) Loop() error {
	i.ShowHelp()
	for {
		line, err := nextLine()
		if err != nil {
			return err
		}
		switch {
		case line == "":
			continue

		case line == "::help":
			i.ShowHelp()

		case strings.HasPrefix(line, "::load "):
			if err := i.Load(strings.TrimPrefix(line, "::load ")); err != nil {
				fmt.Fprintf(i.out, "load failed: %v\n", err)
			}

		case line == "::assertions":
			if err := i.Show("all"); err != nil {
				fmt.Fprintf(i.out, "error: %v\n", err)
			}

		case strings.HasPrefix(line, "::show "):
			if err := i.Show(strings.TrimPrefix(line, "::show ")); err != nil {
				fmt.Fprintf(i.out, "show failed: %v\n", err)
			}

		case strings.HasPrefix(line, "?"):
			if err := i.QueryInteractive(strings.TrimPrefix(line, "?")); err != nil {
				fmt.Fprintf(i.out, "error evaluating query: %v\n", err)
			}

		default:
			clauseText := line
			for !strings.HasSuffix(clauseText, ".") {
				more, err := nextLineWithPrompt(continuedPrompt)
				if err != nil {
					return err
				}
				clauseText = clauseText + " " + more
			}
			if err := i.Define(clauseText); err != nil {
				fmt.Fprintf(i.out, "definition failed: %v\n", err)
			}
		}
	}
}

// Exec runs a single query string non-interactively (used by cmd/hornlog's
// -exec flag), writes every solution to out without pagination prompts,
// and reports whether at least one solution was found.
func (i *Interpreter) Exec(queryText string) (bool, error) {
	goal, err := parseGoal(queryText)
	if err != nil {
		return false, err
	}
	found := 0
	for sol, _ := range i.ps.Query(goal) {
		found++
		fmt.Fprintf(i.out, "%s\n", sol)
	}
	if found == 0 {
		fmt.Fprintln(i.out, "false.")
	}
	return found > 0, nil
}
