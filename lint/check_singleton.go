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

import (
	"fmt"
	"strings"

	"github.com/kclause/hornlog/ast"
)

// SingletonVariableRule flags a variable that occurs exactly once across
// a rule's head and goal -- usually a typo for a repeated variable, or a
// sign the clause should use a wildcard (_) instead. Synthetic wildcard
// variables produced by the parser (named "_G<n>") each occur exactly once
// by construction and are skipped.
type SingletonVariableRule struct{}

func (r *SingletonVariableRule) Name() string        { return "singleton-variable" }
func (r *SingletonVariableRule) Description() string { return "variable occurs only once in its clause" }
func (r *SingletonVariableRule) DefaultSeverity() Severity { return SeverityWarning }

func (r *SingletonVariableRule) Check(input *Input, config Config) []Finding {
	var findings []Finding
	for _, rule := range input.Rules {
		counts := map[string]int{}
		countVars(rule.Head.Term, counts)
		if !rule.IsAxiom() {
			countVarsInProp(rule.Goal, counts)
		}
		for name, n := range counts {
			if n != 1 || isSyntheticWildcard(name) {
				continue
			}
			findings = append(findings, Finding{
				RuleName:  r.Name(),
				Severity:  r.DefaultSeverity(),
				Message:   fmt.Sprintf("variable %s occurs only once in rule for %s", name, rule.Head.Pred),
				Predicate: string(rule.Head.Pred),
			})
		}
	}
	return findings
}

func isSyntheticWildcard(name string) bool {
	return strings.HasPrefix(name, "_G")
}

func countVars(t ast.Term, counts map[string]int) {
	switch v := t.(type) {
	case ast.Variable:
		counts[v.Name]++
	case ast.App:
		countVars(v.Arg, counts)
	case ast.Cons:
		countVars(v.Head, counts)
		countVars(v.Tail, counts)
	}
}

func countVarsInProp(p ast.Proposition, counts map[string]int) {
	switch v := p.(type) {
	case ast.AtomicProp:
		countVars(v.Term, counts)
	case ast.Conj:
		countVarsInProp(v.Left, counts)
		countVarsInProp(v.Right, counts)
	}
}
