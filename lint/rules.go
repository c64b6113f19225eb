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

package lint

import "github.com/kclause/hornlog/ast"

// collectPredicatesByName walks a proposition and records the string name
// of every predicate it mentions (cut and true excluded) into preds.
func collectPredicatesByName(p ast.Proposition, preds map[string]bool) {
	switch v := p.(type) {
	case ast.AtomicProp:
		if v.Pred != ast.Cut && v.Pred != ast.True {
			preds[string(v.Pred)] = true
		}
	case ast.Conj:
		collectPredicatesByName(v.Left, preds)
		collectPredicatesByName(v.Right, preds)
	}
}

// countConjuncts returns the number of atomic propositions in p, flattening
// nested conjunctions.
func countConjuncts(p ast.Proposition) int {
	switch v := p.(type) {
	case nil:
		return 0
	case ast.AtomicProp:
		return 1
	case ast.Conj:
		return countConjuncts(v.Left) + countConjuncts(v.Right)
	default:
		return 0
	}
}
