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

import "fmt"

// UnusedPredicateRule flags predicates that are defined (appear as a rule
// head) but never referenced from any rule body in the same file -- a
// likely sign of a typo in either the definition or its callers.
type UnusedPredicateRule struct{}

func (r *UnusedPredicateRule) Name() string        { return "unused-predicate" }
func (r *UnusedPredicateRule) Description() string { return "defined predicate is never called from another rule body" }
func (r *UnusedPredicateRule) DefaultSeverity() Severity { return SeverityWarning }

func (r *UnusedPredicateRule) Check(input *Input, config Config) []Finding {
	defined := map[string]bool{}
	called := map[string]bool{}
	for _, rule := range input.Rules {
		defined[string(rule.Head.Pred)] = true
		if rule.IsAxiom() {
			continue
		}
		preds := map[string]bool{}
		collectPredicatesByName(rule.Goal, preds)
		for pred := range preds {
			called[pred] = true
		}
	}

	var findings []Finding
	for pred := range defined {
		if called[pred] {
			continue
		}
		findings = append(findings, Finding{
			RuleName:  r.Name(),
			Severity:  r.DefaultSeverity(),
			Message:   fmt.Sprintf("predicate %s is defined but never called from another rule", pred),
			Predicate: pred,
		})
	}
	return findings
}
