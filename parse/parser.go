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

package parse

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/kclause/hornlog/ast"
)

// Statement is one top-level unit parsed from source: either a rule
// (including bare axioms) or a query. The core (proofsystem, engine)
// never sees this type; the REPL and file-loading callers switch on it
// and call ProofSystem.Assume or ProofSystem.Query accordingly.
type Statement struct {
	Rule    *ast.Rule
	Query   ast.Proposition // non-nil only when this statement is a query
	IsQuery bool
}

// Program is the result of parsing a whole source file: every statement
// it contains, in source order.
type Program struct {
	Statements []Statement
}

// wildcardCounter hands out distinct names for desugared wildcards within
// one parse, so that two "_" occurrences never collide syntactically
// before ast.RefreshRule/RefreshProp even runs. Only vars.go's fresh ids
// matter once proving starts, but a wildcard in a query is still projected
// into its solutions under its "_G<n>" name.
type wildcardCounter struct{ n int }

func (w *wildcardCounter) next() string {
	w.n++
	return fmt.Sprintf("_G%d", w.n)
}

type parser struct {
	toks []token
	pos  int
	wc   wildcardCounter
}

func (p *parser) peek() token  { return p.toks[p.pos] }
func (p *parser) advance() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) expect(kind tokenKind) (token, error) {
	t := p.peek()
	if t.kind != kind {
		return token{}, fmt.Errorf("line %d: expected %v, got %v", t.line, kind, t.kind)
	}
	return p.advance(), nil
}

// ParseFile parses a whole source file of clauses and queries. Every
// malformed statement is accumulated via multierr rather than stopping at
// the first, so ::load reports every bad clause in one pass; Program
// contains whatever statements did parse successfully.
func ParseFile(src string) (Program, error) {
	toks, err := lex(src)
	if err != nil {
		return Program{}, err
	}
	p := &parser{toks: toks}

	var prog Program
	var errs error
	for p.peek().kind != tokEOF {
		stmt, err := p.parseStatement()
		if err != nil {
			errs = multierr.Append(errs, err)
			p.recoverToNextDot()
			continue
		}
		prog.Statements = append(prog.Statements, stmt)
	}
	return prog, errs
}

// ParseLine parses a single REPL line: either a clause (terminated by
// '.'), a query prefixed by '?' (no terminating '.'), or a query
// prefixed by '?-' and terminated by '.'. Unlike ParseFile it surfaces a single error
// rather than batching, since a REPL line is one unit of input.
func ParseLine(src string) (Statement, error) {
	toks, err := lex(src)
	if err != nil {
		return Statement{}, err
	}
	p := &parser{toks: toks}
	stmt, err := p.parseStatement()
	if err != nil {
		return Statement{}, err
	}
	if p.peek().kind != tokEOF {
		return Statement{}, fmt.Errorf("line %d: unexpected trailing input near %v", p.peek().line, p.peek())
	}
	return stmt, nil
}

// recoverToNextDot skips tokens up to and including the next '.', or to
// EOF, so that ParseFile can keep parsing the rest of a file after one
// malformed clause.
func (p *parser) recoverToNextDot() {
	for {
		t := p.peek()
		if t.kind == tokEOF {
			return
		}
		p.advance()
		if t.kind == tokDot {
			return
		}
	}
}

func (p *parser) parseStatement() (Statement, error) {
	if p.peek().kind == tokQueryMark {
		p.advance()
		goal, err := p.parseProposition()
		if err != nil {
			return Statement{}, err
		}
		if _, err := p.expect(tokDot); err != nil {
			return Statement{}, err
		}
		return Statement{Query: goal, IsQuery: true}, nil
	}
	if p.peek().kind == tokQuestion {
		p.advance()
		goal, err := p.parseProposition()
		if err != nil {
			return Statement{}, err
		}
		return Statement{Query: goal, IsQuery: true}, nil
	}

	head, err := p.parseAtomicProp()
	if err != nil {
		return Statement{}, err
	}
	rule := ast.Rule{Head: head}
	if p.peek().kind == tokRuleArrow {
		p.advance()
		goal, err := p.parseProposition()
		if err != nil {
			return Statement{}, err
		}
		rule.Goal = goal
	}
	if _, err := p.expect(tokDot); err != nil {
		return Statement{}, err
	}
	return Statement{Rule: &rule}, nil
}

// parseProposition parses a comma-separated, left-associative
// conjunction of atomic propositions.
func (p *parser) parseProposition() (ast.Proposition, error) {
	left, err := p.parseAtomicProp()
	if err != nil {
		return nil, err
	}
	var prop ast.Proposition = left
	for p.peek().kind == tokComma {
		p.advance()
		right, err := p.parseAtomicProp()
		if err != nil {
			return nil, err
		}
		prop = ast.Conj{Left: prop, Right: right}
	}
	return prop, nil
}

func (p *parser) parseAtomicProp() (ast.AtomicProp, error) {
	if p.peek().kind == tokAtom && p.peek().text == "!" {
		p.advance()
		return ast.AtomicProp{Pred: ast.Cut, Term: ast.Nil}, nil
	}
	nameTok, err := p.expect(tokAtom)
	if err != nil {
		return ast.AtomicProp{}, err
	}
	pred := ast.PredName(nameTok.text)
	if p.peek().kind != tokLParen {
		return ast.AtomicProp{Pred: pred, Term: ast.Nil}, nil
	}
	args, err := p.parseArgList()
	if err != nil {
		return ast.AtomicProp{}, err
	}
	return ast.AtomicProp{Pred: pred, Term: ast.ListTerm(args)}, nil
}

// parseArgList parses a parenthesized, comma-separated list of terms:
// "(" term ("," term)* ")".
func (p *parser) parseArgList() ([]ast.Term, error) {
	if _, err := p.expect(tokLParen); err != nil {
		return nil, err
	}
	var args []ast.Term
	if p.peek().kind != tokRParen {
		for {
			t, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			args = append(args, t)
			if p.peek().kind != tokComma {
				break
			}
			p.advance()
		}
	}
	if _, err := p.expect(tokRParen); err != nil {
		return nil, err
	}
	return args, nil
}

func (p *parser) parseTerm() (ast.Term, error) {
	switch p.peek().kind {
	case tokVariable:
		tok := p.advance()
		return ast.Variable{Name: tok.text, ID: ast.SentinelID}, nil
	case tokWildcard:
		p.advance()
		return ast.Variable{Name: p.wc.next(), ID: ast.SentinelID}, nil
	case tokAtom:
		tok := p.advance()
		if p.peek().kind == tokLParen {
			args, err := p.parseArgList()
			if err != nil {
				return nil, err
			}
			return ast.NewApp(ast.Atom(tok.text), args...), nil
		}
		return ast.Atom(tok.text), nil
	case tokLBracket:
		return p.parseList()
	default:
		t := p.peek()
		return nil, fmt.Errorf("line %d: expected a term, got %v", t.line, t.kind)
	}
}

// parseList parses "[" (term ("," term)* ("|" term)?)? "]".
func (p *parser) parseList() (ast.Term, error) {
	if _, err := p.expect(tokLBracket); err != nil {
		return nil, err
	}
	if p.peek().kind == tokRBracket {
		p.advance()
		return ast.Nil, nil
	}
	var elems []ast.Term
	for {
		t, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		elems = append(elems, t)
		if p.peek().kind == tokComma {
			p.advance()
			continue
		}
		break
	}
	var tail ast.Term = ast.Nil
	if p.peek().kind == tokPipe {
		p.advance()
		t, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		tail = t
	}
	if _, err := p.expect(tokRBracket); err != nil {
		return nil, err
	}
	list := tail
	for i := len(elems) - 1; i >= 0; i-- {
		list = ast.Cons{Head: elems[i], Tail: list}
	}
	return list, nil
}
