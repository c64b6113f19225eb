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

// Package engine implements depth-first SLD resolution with cut over an
// ast.Proposition and a kb.KnowledgeBase, and the query driver built on
// top of it.
//
// Proof depth is bounded only by the native Go call stack; a pathological
// left-recursive rule set will exhaust it exactly as it would starve a
// textbook Prolog interpreter's stack. This package deliberately does not
// convert proof search into an explicit stack machine -- the recursive,
// tree-walking shape mirrors the search procedure well enough that the
// extra machinery would only obscure it.
package engine

import (
	"iter"

	"github.com/golang/glog"

	"github.com/kclause/hornlog/ast"
	"github.com/kclause/hornlog/env"
	"github.com/kclause/hornlog/kb"
)

// sink receives a result (e, cut) during proof search, the same signature
// iter.Seq2's yield uses. It returns whether the consumer wants more
// results; false means "stop everything, including any caller still
// backtracking above us".
type sink = func(e *env.Env, cut bool) bool

// Prove returns the lazy sequence of (Env, cutFired) results of proving p
// under e and kb, in depth-first, left-to-right, rule-insertion order.
// cutFired reports whether the "!" built-in fired while producing this
// particular result; per the cut-masking rule it is always false once it
// has crossed the boundary of the rule body it fired in (see proveAtomic).
func Prove(k kb.KnowledgeBase, e *env.Env, p ast.Proposition) iter.Seq2[*env.Env, bool] {
	return func(yield func(*env.Env, bool) bool) {
		proveProp(k, e, p, yield)
	}
}

func proveProp(k kb.KnowledgeBase, e *env.Env, p ast.Proposition, yield sink) bool {
	switch v := p.(type) {
	case ast.AtomicProp:
		return proveAtomic(k, e, v, yield)
	case ast.Conj:
		return proveConj(k, e, v, yield)
	default:
		return true
	}
}

// proveConj proves l, then for each of its results proves r under the
// resulting environment, yielding (e2, c1||c2) per result pair. Conj
// itself never prunes alternatives; it only bubbles the cut flag upward
// by OR-ing it into every yielded pair, per spec's conjunction rule.
func proveConj(k kb.KnowledgeBase, e *env.Env, c ast.Conj, yield sink) bool {
	consumerStopped := false
	proveProp(k, e, c.Left, func(e1 *env.Env, c1 bool) bool {
		proveProp(k, e1, c.Right, func(e2 *env.Env, c2 bool) bool {
			if !yield(e2, c1 || c2) {
				consumerStopped = true
				return false
			}
			return true
		})
		return !consumerStopped
	})
	return !consumerStopped
}

// proveAtomic proves a single atomic proposition a: built-ins are
// dispatched first, then a's predicate's rules are tried in insertion
// order. For a non-axiom rule, the cut flag observed while proving its
// goal is masked to false at the yield (cuts never propagate past the
// rule body they fired in) but still governs search here: the first
// cut=true sub-result stops both further sub-results of this rule's goal
// and any remaining candidate rules for a, per the rule-boundary cut
// contract.
func proveAtomic(k kb.KnowledgeBase, e *env.Env, a ast.AtomicProp, yield sink) bool {
	switch a.Pred {
	case ast.Cut:
		return yield(e, true)
	case ast.True:
		return yield(e, false)
	}

	rules := k.Rules(a.Pred)
	if glog.V(2) {
		glog.Infof("proveAtomic %s: %d candidate rule(s)", a, len(rules))
	}
	for _, r := range rules {
		rr := ast.RefreshRule(r)
		e1, ok := env.Unify(e, a.Term, rr.Head.Term)
		if !ok {
			continue
		}
		if rr.IsAxiom() {
			if !yield(e1, false) {
				return false
			}
			continue
		}

		cutFired := false
		consumerStopped := false
		proveProp(k, e1, rr.Goal, func(e2 *env.Env, c bool) bool {
			if !yield(e2, false) {
				consumerStopped = true
				return false
			}
			if c {
				cutFired = true
				return false
			}
			return true
		})
		if consumerStopped {
			return false
		}
		if cutFired {
			if glog.V(3) {
				glog.Infof("cut fired while proving %s via %s", a, r)
			}
			return true
		}
	}
	return true
}
