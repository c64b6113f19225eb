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

package proofsystem

import (
	"testing"

	"github.com/kclause/hornlog/ast"
)

func TestAssumeIsValueSemantic(t *testing.T) {
	ps := New()
	ps2, err := ps.Assume(ast.Rule{Head: ast.NewAtomicProp("human", ast.Atom("socrates"))})
	if err != nil {
		t.Fatalf("Assume: %v", err)
	}
	if len(ps.Predicates()) != 0 {
		t.Errorf("original ProofSystem was mutated by Assume")
	}
	if len(ps2.Predicates()) != 1 {
		t.Errorf("extended ProofSystem has %d predicates, want 1", len(ps2.Predicates()))
	}
}

func TestQueryAgainstEmptySystem(t *testing.T) {
	ps := New()
	count := 0
	for range ps.Query(ast.NewAtomicProp("nosuchpred", ast.Atom("a"))) {
		count++
	}
	if count != 0 {
		t.Errorf("expected no solutions against an empty system")
	}
}

func TestAssumeMalformedRulePropagatesError(t *testing.T) {
	ps := New()
	if _, err := ps.Assume(ast.Rule{Head: ast.NewAtomicProp("")}); err == nil {
		t.Errorf("expected an error for a rule with an empty predicate name")
	}
}
