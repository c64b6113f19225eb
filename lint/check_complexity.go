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

// OverlyComplexRule flags a rule whose body has more conjuncts than
// config.MaxPremises, a signal it should probably be split into
// intermediate predicates.
type OverlyComplexRule struct{}

func (r *OverlyComplexRule) Name() string        { return "overly-complex-rule" }
func (r *OverlyComplexRule) Description() string { return "rule body has more premises than the configured maximum" }
func (r *OverlyComplexRule) DefaultSeverity() Severity { return SeverityWarning }

func (r *OverlyComplexRule) Check(input *Input, config Config) []Finding {
	max := config.MaxPremises
	if max <= 0 {
		return nil
	}
	var findings []Finding
	for _, rule := range input.Rules {
		if rule.IsAxiom() {
			continue
		}
		n := countConjuncts(rule.Goal)
		if n <= max {
			continue
		}
		findings = append(findings, Finding{
			RuleName:  r.Name(),
			Severity:  r.DefaultSeverity(),
			Message:   fmt.Sprintf("rule for %s has %d premises, exceeding the configured maximum of %d", rule.Head.Pred, n, max),
			Predicate: string(rule.Head.Pred),
		})
	}
	return findings
}
