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
	"regexp"
)

var (
	snakeCasePredicate = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)
)

// NamingConventionRule flags predicate names that are not lower_snake_case,
// mirroring the convention this resolver's surface syntax expects (a
// leading uppercase letter or underscore would instead parse as a
// variable or wildcard).
type NamingConventionRule struct{}

func (r *NamingConventionRule) Name() string        { return "naming-convention" }
func (r *NamingConventionRule) Description() string { return "predicate name should be lower_snake_case" }
func (r *NamingConventionRule) DefaultSeverity() Severity { return SeverityInfo }

func (r *NamingConventionRule) Check(input *Input, config Config) []Finding {
	seen := map[string]bool{}
	var findings []Finding
	for _, rule := range input.Rules {
		name := string(rule.Head.Pred)
		if seen[name] || snakeCasePredicate.MatchString(name) {
			seen[name] = true
			continue
		}
		seen[name] = true
		findings = append(findings, Finding{
			RuleName:  r.Name(),
			Severity:  r.DefaultSeverity(),
			Message:   fmt.Sprintf("predicate %s is not lower_snake_case", name),
			Predicate: name,
		})
	}
	return findings
}
