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
	"testing"

	"github.com/kclause/hornlog/ast"
	"github.com/kclause/hornlog/kb"
)

func v(name string) ast.Variable { return ast.Variable{Name: name, ID: ast.SentinelID} }

func mustAssume(t *testing.T, k kb.KnowledgeBase, r ast.Rule) kb.KnowledgeBase {
	t.Helper()
	k, err := k.Assume(r)
	if err != nil {
		t.Fatalf("Assume(%v): %v", r, err)
	}
	return k
}

func solutions(k kb.KnowledgeBase, prop ast.Proposition) []Solution {
	var out []Solution
	for s, _ := range Query(k, prop) {
		out = append(out, s)
	}
	return out
}

// TestClassicalSyllogism covers spec scenario 1.
func TestClassicalSyllogism(t *testing.T) {
	k := kb.Empty()
	k = mustAssume(t, k, ast.Rule{
		Head: ast.NewAtomicProp("mortal", v("X")),
		Goal: ast.NewAtomicProp("human", v("X")),
	})
	k = mustAssume(t, k, ast.Rule{Head: ast.NewAtomicProp("human", ast.Atom("socrates"))})

	got := solutions(k, ast.NewAtomicProp("mortal", ast.Atom("socrates")))
	if len(got) != 1 || len(got[0]) != 0 {
		t.Fatalf("mortal(socrates) solutions = %v, want exactly one empty-binding solution", got)
	}

	got = solutions(k, ast.NewAtomicProp("mortal", v("X")))
	if len(got) != 1 {
		t.Fatalf("mortal(X) solutions = %v, want exactly one", got)
	}
	if got[0][0].Unbound || !got[0][0].Term.Equals(ast.Atom("socrates")) {
		t.Errorf("mortal(X) solution = %v, want X = socrates", got[0])
	}
}

// TestMultipleSolutionsInRuleOrder covers spec scenario 2.
func TestMultipleSolutionsInRuleOrder(t *testing.T) {
	k := kb.Empty()
	k = mustAssume(t, k, ast.Rule{
		Head: ast.NewAtomicProp("mortal", v("X")),
		Goal: ast.NewAtomicProp("human", v("X")),
	})
	k = mustAssume(t, k, ast.Rule{Head: ast.NewAtomicProp("human", ast.Atom("socrates"))})
	k = mustAssume(t, k, ast.Rule{Head: ast.NewAtomicProp("human", ast.Atom("plato"))})

	got := solutions(k, ast.NewAtomicProp("mortal", v("X")))
	if len(got) != 2 {
		t.Fatalf("mortal(X) solutions = %v, want 2", got)
	}
	if !got[0][0].Term.Equals(ast.Atom("socrates")) || !got[1][0].Term.Equals(ast.Atom("plato")) {
		t.Errorf("mortal(X) solutions = %v, want [socrates, plato] in that order", got)
	}
}

// TestUnboundProjection covers spec scenario 3.
func TestUnboundProjection(t *testing.T) {
	k := kb.Empty()
	k = mustAssume(t, k, ast.Rule{Head: ast.NewAtomicProp("unknown", v("X"))})
	k = mustAssume(t, k, ast.Rule{Head: ast.NewAtomicProp("unknown", ast.Atom("a"))})

	got := solutions(k, ast.NewAtomicProp("unknown", v("Y")))
	if len(got) != 2 {
		t.Fatalf("unknown(Y) solutions = %v, want 2", got)
	}
	if !got[0][0].Unbound {
		t.Errorf("first solution = %v, want Y unbound", got[0])
	}
	if got[1][0].Unbound || !got[1][0].Term.Equals(ast.Atom("a")) {
		t.Errorf("second solution = %v, want Y = a", got[1])
	}
}

func TestUnknownPredicateHasNoSolutions(t *testing.T) {
	got := solutions(kb.Empty(), ast.NewAtomicProp("nosuchpred", ast.Atom("a")))
	if len(got) != 0 {
		t.Errorf("query against unknown predicate yielded %v, want none", got)
	}
}

func TestTrueBuiltin(t *testing.T) {
	got := solutions(kb.Empty(), ast.AtomicProp{Pred: ast.True, Term: ast.Nil})
	if len(got) != 1 {
		t.Fatalf("true yielded %v, want exactly one solution", got)
	}
}

func TestConjunction(t *testing.T) {
	k := kb.Empty()
	k = mustAssume(t, k, ast.Rule{Head: ast.NewAtomicProp("human", ast.Atom("socrates"))})
	k = mustAssume(t, k, ast.Rule{Head: ast.NewAtomicProp("greek", ast.Atom("socrates"))})

	prop := ast.Conj{
		Left:  ast.NewAtomicProp("human", v("X")),
		Right: ast.NewAtomicProp("greek", v("X")),
	}
	got := solutions(k, prop)
	if len(got) != 1 || !got[0][0].Term.Equals(ast.Atom("socrates")) {
		t.Errorf("human(X),greek(X) solutions = %v, want one binding X=socrates", got)
	}
}

// TestCutScoping covers spec's cut-scoping invariant: given
// p :- q, !, r. and p :- s., after the first success via the first rule,
// the second rule is not tried.
func TestCutScoping(t *testing.T) {
	k := kb.Empty()
	k = mustAssume(t, k, ast.Rule{Head: ast.NewAtomicProp("q")})
	k = mustAssume(t, k, ast.Rule{Head: ast.NewAtomicProp("r", ast.Atom("first"))})
	k = mustAssume(t, k, ast.Rule{Head: ast.NewAtomicProp("r", ast.Atom("second"))})
	k = mustAssume(t, k, ast.Rule{
		Head: ast.NewAtomicProp("p", v("X")),
		Goal: ast.Conj{
			Left: ast.Conj{
				Left:  ast.NewAtomicProp("q"),
				Right: ast.AtomicProp{Pred: ast.Cut, Term: ast.Nil},
			},
			Right: ast.NewAtomicProp("r", v("X")),
		},
	})
	k = mustAssume(t, k, ast.Rule{Head: ast.NewAtomicProp("p", ast.Atom("fallback"))})

	got := solutions(k, ast.NewAtomicProp("p", v("X")))
	if len(got) != 1 {
		t.Fatalf("p(X) solutions = %v, want exactly one (cut should prevent the fallback rule)", got)
	}
	if !got[0][0].Term.Equals(ast.Atom("first")) {
		t.Errorf("p(X) solution = %v, want X = first", got[0])
	}
}

// TestCutCommitsToFirstAlternativeOfRightConjunct verifies that cut
// also prevents backtracking into r's own further alternatives (it
// commits to the first r as well as to the first rule of p).
func TestCutCommitsToFirstAlternativeOfRightConjunct(t *testing.T) {
	k := kb.Empty()
	k = mustAssume(t, k, ast.Rule{Head: ast.NewAtomicProp("q")})
	k = mustAssume(t, k, ast.Rule{Head: ast.NewAtomicProp("r", ast.Atom("first"))})
	k = mustAssume(t, k, ast.Rule{Head: ast.NewAtomicProp("r", ast.Atom("second"))})
	k = mustAssume(t, k, ast.Rule{
		Head: ast.NewAtomicProp("p", v("X")),
		Goal: ast.Conj{
			Left: ast.Conj{
				Left:  ast.NewAtomicProp("q"),
				Right: ast.AtomicProp{Pred: ast.Cut, Term: ast.Nil},
			},
			Right: ast.NewAtomicProp("r", v("X")),
		},
	})

	got := solutions(k, ast.NewAtomicProp("p", v("X")))
	if len(got) != 1 {
		t.Fatalf("p(X) solutions = %v, want exactly one", got)
	}
}

func TestCutMaskedAtRuleBoundary(t *testing.T) {
	k := kb.Empty()
	k = mustAssume(t, k, ast.Rule{
		Head: ast.NewAtomicProp("inner"),
		Goal: ast.AtomicProp{Pred: ast.Cut, Term: ast.Nil},
	})
	k = mustAssume(t, k, ast.Rule{
		Head: ast.NewAtomicProp("outer"),
		Goal: ast.NewAtomicProp("inner"),
	})
	k = mustAssume(t, k, ast.Rule{Head: ast.NewAtomicProp("outer")})

	got := solutions(k, ast.NewAtomicProp("outer"))
	if len(got) != 2 {
		t.Fatalf("outer solutions = %v, want 2 (cut inside inner must not prune outer's second rule)", got)
	}
}

func TestRenamingPreservesMeaning(t *testing.T) {
	k := kb.Empty()
	k = mustAssume(t, k, ast.Rule{
		Head: ast.NewAtomicProp("mortal", v("X")),
		Goal: ast.NewAtomicProp("human", v("X")),
	})
	k = mustAssume(t, k, ast.Rule{Head: ast.NewAtomicProp("human", ast.Atom("socrates"))})

	prop := ast.NewAtomicProp("mortal", v("Q"))
	direct := solutions(k, prop)
	refreshed := solutions(k, ast.RefreshProp(prop))

	if len(direct) != len(refreshed) {
		t.Fatalf("direct=%v refreshed=%v, want same number of solutions", direct, refreshed)
	}
	for i := range direct {
		if direct[i][0].Name != refreshed[i][0].Name {
			t.Errorf("solution %d variable name = %q, want %q (query() already refreshes internally)", i, refreshed[i][0].Name, direct[i][0].Name)
		}
	}
}

// TestQueryHasMoreLooksOneSolutionAhead covers the iter.Seq2 contract
// documented for Query: the bool yielded alongside each solution reports
// whether another solution follows, true for every solution but the
// last.
func TestQueryHasMoreLooksOneSolutionAhead(t *testing.T) {
	k := kb.Empty()
	k = mustAssume(t, k, ast.Rule{Head: ast.NewAtomicProp("p", ast.Atom("a"))})
	k = mustAssume(t, k, ast.Rule{Head: ast.NewAtomicProp("p", ast.Atom("b"))})
	k = mustAssume(t, k, ast.Rule{Head: ast.NewAtomicProp("p", ast.Atom("c"))})

	var gotHasMore []bool
	for _, hasMore := range Query(k, ast.NewAtomicProp("p", v("X"))) {
		gotHasMore = append(gotHasMore, hasMore)
	}
	want := []bool{true, true, false}
	if len(gotHasMore) != len(want) {
		t.Fatalf("hasMore flags = %v, want %v", gotHasMore, want)
	}
	for i := range want {
		if gotHasMore[i] != want[i] {
			t.Errorf("hasMore[%d] = %v, want %v", i, gotHasMore[i], want[i])
		}
	}
}

// TestQueryHasMoreFalseForSingleSolution covers the degenerate case: a
// query with exactly one solution reports hasMore=false on it.
func TestQueryHasMoreFalseForSingleSolution(t *testing.T) {
	k := kb.Empty()
	k = mustAssume(t, k, ast.Rule{Head: ast.NewAtomicProp("human", ast.Atom("socrates"))})

	count := 0
	for _, hasMore := range Query(k, ast.NewAtomicProp("human", v("X"))) {
		count++
		if hasMore {
			t.Errorf("expected hasMore=false on the only solution")
		}
	}
	if count != 1 {
		t.Fatalf("count = %d, want 1", count)
	}
}

func TestConsumerStopsEarly(t *testing.T) {
	k := kb.Empty()
	k = mustAssume(t, k, ast.Rule{Head: ast.NewAtomicProp("p", ast.Atom("a"))})
	k = mustAssume(t, k, ast.Rule{Head: ast.NewAtomicProp("p", ast.Atom("b"))})
	k = mustAssume(t, k, ast.Rule{Head: ast.NewAtomicProp("p", ast.Atom("c"))})

	count := 0
	for range Query(k, ast.NewAtomicProp("p", v("X"))) {
		count++
		if count == 1 {
			break
		}
	}
	if count != 1 {
		t.Errorf("consumer break did not stop enumeration early, count = %d", count)
	}
}
