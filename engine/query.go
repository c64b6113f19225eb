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

package engine

import (
	"fmt"
	"iter"

	"bitbucket.org/creachadair/stringset"

	"github.com/kclause/hornlog/ast"
	"github.com/kclause/hornlog/env"
	"github.com/kclause/hornlog/kb"
)

// Binding is one variable's assignment in a Solution: either a term, or
// "unbound" if the proof left the variable unconstrained.
type Binding struct {
	Name    string
	Term    ast.Term
	Unbound bool
}

func (b Binding) String() string {
	if b.Unbound {
		return b.Name + " unbound"
	}
	return fmt.Sprintf("%s = %s", b.Name, b.Term)
}

// Solution is one answer to a query: the bindings of every distinct
// variable that occurred in the query, in first-occurrence order, using
// the original source names rather than any renamed id.
type Solution []Binding

func (s Solution) String() string {
	if len(s) == 0 {
		return "true"
	}
	out := ""
	for i, b := range s {
		if i > 0 {
			out += ", "
		}
		out += b.String()
	}
	return out
}

// Query returns the lazy sequence of solutions to prop under kb, starting
// from the empty environment. prop is refreshed (renamed to a fresh
// instantiation) before proving, so repeated queries of the same
// proposition value never share variable identity across calls.
//
// The second yielded value reports whether at least one further solution
// remains after the one just yielded, so a caller can decide whether to
// keep pulling without first asking for (and potentially discarding) the
// next solution's proof work -- interpreter.QueryInteractive uses this to
// skip its "More? [Y/n]" prompt on the final solution rather than always
// asking and discovering there was nothing left. Seeing one solution
// ahead requires pulling the underlying search one step ahead of what has
// been yielded, so Query uses iter.Pull to turn Prove's push-style
// iteration into a pull-style one it can peek at.
func Query(k kb.KnowledgeBase, prop ast.Proposition) iter.Seq2[Solution, bool] {
	return func(yield func(Solution, bool) bool) {
		refreshed := ast.RefreshProp(prop)
		vars := distinctVars(refreshed)

		solutions := func(yield func(Solution) bool) {
			for e, _ := range Prove(k, env.Empty(), refreshed) {
				if !yield(buildSolution(e, vars)) {
					return
				}
			}
		}

		next, stop := iter.Pull(solutions)
		defer stop()

		cur, ok := next()
		if !ok {
			return
		}
		for {
			peeked, hasMore := next()
			if !yield(cur, hasMore) {
				return
			}
			if !hasMore {
				return
			}
			cur = peeked
		}
	}
}

// distinctVars returns the variables of prop in first-occurrence order,
// without duplicates. The stringset guard only tracks membership; order
// is still produced by iterating ast.VarsProp directly.
func distinctVars(prop ast.Proposition) []ast.Variable {
	var vars []ast.Variable
	seen := stringset.New()
	for _, v := range ast.VarsProp(prop, nil) {
		key := v.String()
		if seen.Contains(key) {
			continue
		}
		seen.Add(key)
		vars = append(vars, v)
	}
	return vars
}

func buildSolution(e *env.Env, vars []ast.Variable) Solution {
	sol := make(Solution, len(vars))
	for i, v := range vars {
		t := env.Walk(e, v)
		if vv, ok := t.(ast.Variable); ok {
			if _, bound := env.TryFind(e, vv); !bound {
				sol[i] = Binding{Name: v.Name, Unbound: true}
				continue
			}
		}
		sol[i] = Binding{Name: v.Name, Term: t}
	}
	return sol
}
