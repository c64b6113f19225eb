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

// Package proofsystem is the narrow facade external collaborators (the
// parser-driven REPL, embedding callers) are meant to depend on: it
// combines a kb.KnowledgeBase with the engine package's prover behind two
// operations, Assume and Query, so that callers never need to import
// env or engine's internals directly.
package proofsystem

import (
	"iter"

	"github.com/kclause/hornlog/ast"
	"github.com/kclause/hornlog/engine"
	"github.com/kclause/hornlog/kb"
)

// ProofSystem is a value-semantic pairing of a rule base and the prover
// over it. The zero value is a valid, empty ProofSystem.
type ProofSystem struct {
	kb kb.KnowledgeBase
}

// New returns an empty ProofSystem.
func New() ProofSystem {
	return ProofSystem{kb: kb.Empty()}
}

// Assume returns a ProofSystem extending ps with rule. It returns an
// error only for a malformed rule (kb.ErrMalformedRule); ps itself is
// never mutated, so a caller holding a reference to ps before the call
// still observes the rule base as it was.
func (ps ProofSystem) Assume(rule ast.Rule) (ProofSystem, error) {
	next, err := ps.kb.Assume(rule)
	if err != nil {
		return ps, err
	}
	return ProofSystem{kb: next}, nil
}

// Query returns the lazy sequence of solutions to prop against ps's rule
// base. The second yielded value reports whether at least one further
// solution remains after the one just yielded; see engine.Query.
func (ps ProofSystem) Query(prop ast.Proposition) iter.Seq2[engine.Solution, bool] {
	return engine.Query(ps.kb, prop)
}

// Predicates lists the predicate names with at least one rule in ps, for
// REPL introspection (::assertions).
func (ps ProofSystem) Predicates() []ast.PredName {
	return ps.kb.Predicates()
}

// Rules returns the rules known for pred, in insertion order, for REPL
// introspection (::show).
func (ps ProofSystem) Rules(pred ast.PredName) []ast.Rule {
	return ps.kb.Rules(pred)
}
