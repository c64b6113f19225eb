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

// Package kb holds the rule store the prover consults: an
// insertion-ordered, predicate-indexed list of rules. It is the
// resolver's analogue of the teacher pack's fact stores, except it
// indexes Horn-clause rules (which may have bodies) rather than ground
// facts, and ordering within a predicate's rule list is itself
// observable (it determines solution enumeration order), not just an
// implementation detail.
package kb

import (
	"errors"
	"fmt"

	"github.com/kclause/hornlog/ast"
)

// ErrMalformedRule is wrapped into the error Assume returns for a rule
// whose head is not well-formed.
var ErrMalformedRule = errors.New("malformed rule")

// KnowledgeBase is an immutable, predicate-indexed store of rules.
// Assume returns a new KnowledgeBase; it never mutates the receiver, so a
// KnowledgeBase already captured by an in-flight query is safe to keep
// using even after further rules are assumed elsewhere.
type KnowledgeBase struct {
	rules map[ast.PredName][]ast.Rule
}

// Empty returns a KnowledgeBase with no rules.
func Empty() KnowledgeBase {
	return KnowledgeBase{}
}

// Assume returns a KnowledgeBase extending kb with rule appended to the
// rule list of rule.Head.Pred. It rejects a rule whose head predicate
// name is empty; that is the only validation the core performs (per
// spec's "Malformed rule/query" error case — unification failure and
// unknown predicates are never errors).
func (kb KnowledgeBase) Assume(rule ast.Rule) (KnowledgeBase, error) {
	if rule.Head.Pred == "" {
		return kb, fmt.Errorf("%w: empty head predicate name", ErrMalformedRule)
	}
	next := make(map[ast.PredName][]ast.Rule, len(kb.rules)+1)
	for pred, rs := range kb.rules {
		next[pred] = rs
	}
	next[rule.Head.Pred] = append(append([]ast.Rule(nil), kb.rules[rule.Head.Pred]...), rule)
	return KnowledgeBase{rules: next}, nil
}

// Rules returns the rules for pred in insertion order, or nil if pred is
// unknown. An unknown predicate is never an error; it is indistinguishable
// from a predicate with zero rules, matching the engine's "unknown
// predicate has no solutions" contract.
func (kb KnowledgeBase) Rules(pred ast.PredName) []ast.Rule {
	return kb.rules[pred]
}

// Predicates lists the predicate names that have at least one rule, in no
// particular order. Used by the REPL's ::assertions/::show introspection.
func (kb KnowledgeBase) Predicates() []ast.PredName {
	preds := make([]ast.PredName, 0, len(kb.rules))
	for pred := range kb.rules {
		preds = append(preds, pred)
	}
	return preds
}
