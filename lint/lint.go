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

// Package lint is a standalone style linter for hornlog source files. It
// parses a file with the parse package and runs a small set of
// independent checks against the resulting rules -- it never consults a
// ProofSystem or proves anything, so it can flag issues (singleton
// variables, unused predicates, overly long rule bodies) before a file is
// ever loaded.
package lint

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/kclause/hornlog/ast"
	"github.com/kclause/hornlog/parse"
)

// Severity is how seriously a Finding should be taken.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "info"
	}
}

// MarshalJSON encodes a Severity as its string name.
func (s Severity) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// ParseSeverity parses a severity name, defaulting to SeverityInfo for
// anything unrecognized.
func ParseSeverity(s string) Severity {
	switch s {
	case "warning":
		return SeverityWarning
	case "error":
		return SeverityError
	default:
		return SeverityInfo
	}
}

// Finding is a single result from a lint Rule.
type Finding struct {
	RuleName  string   `json:"rule"`
	Severity  Severity `json:"severity"`
	File      string   `json:"file,omitempty"`
	Message   string   `json:"message"`
	Predicate string   `json:"predicate,omitempty"`
}

// Config holds the toggleable configuration for all lint rules.
type Config struct {
	// MaxPremises is the threshold for the overly-complex-rule check: a
	// rule body with more conjuncts than this is flagged.
	MaxPremises int
	// DisabledRules is the set of rule names to skip.
	DisabledRules map[string]bool
	// MinSeverity: findings below this severity are suppressed.
	MinSeverity Severity
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxPremises:   8,
		DisabledRules: map[string]bool{},
		MinSeverity:   SeverityInfo,
	}
}

// Input bundles everything a Rule needs to check one source file.
type Input struct {
	File  string
	Rules []ast.Rule
}

// Rule is the interface every lint check implements.
type Rule interface {
	Name() string
	Description() string
	DefaultSeverity() Severity
	Check(input *Input, config Config) []Finding
}

// AllRules returns every built-in lint rule.
func AllRules() []Rule {
	return []Rule{
		&UnusedPredicateRule{},
		&SingletonVariableRule{},
		&NamingConventionRule{},
		&OverlyComplexRule{},
	}
}

// Linter runs a configured set of rules against hornlog source files.
type Linter struct {
	config Config
	rules  []Rule
}

// NewLinter returns a Linter configured with config, running every
// registered rule not named in config.DisabledRules.
func NewLinter(config Config) *Linter {
	return &Linter{config: config, rules: AllRules()}
}

// LintFile reads, parses, and lints the source file at path.
func (l *Linter) LintFile(path string) ([]Finding, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return l.LintSource(path, string(data))
}

// LintSource parses and lints src, attributing findings to file (used
// only for display; pass "" for anonymous sources like stdin).
func (l *Linter) LintSource(file, src string) ([]Finding, error) {
	prog, err := parse.ParseFile(src)
	if err != nil {
		return []Finding{{
			RuleName: "parse",
			Severity: SeverityError,
			File:     file,
			Message:  fmt.Sprintf("parse error: %v", err),
		}}, nil
	}

	var rules []ast.Rule
	for _, stmt := range prog.Statements {
		if !stmt.IsQuery {
			rules = append(rules, *stmt.Rule)
		}
	}
	input := &Input{File: file, Rules: rules}

	var findings []Finding
	for _, rule := range l.rules {
		if l.config.DisabledRules[rule.Name()] {
			continue
		}
		for _, f := range rule.Check(input, l.config) {
			if f.Severity < l.config.MinSeverity {
				continue
			}
			f.File = file
			findings = append(findings, f)
		}
	}
	return findings, nil
}

// FormatText writes findings in human-readable text format.
func FormatText(w io.Writer, findings []Finding) {
	for _, f := range findings {
		loc := f.File
		if loc == "" {
			loc = "<stdin>"
		}
		fmt.Fprintf(w, "%s: [%s] %s: %s\n", loc, f.Severity, f.RuleName, f.Message)
	}
}

// FormatJSON writes findings as a JSON array, encoding a nil slice as []
// rather than null.
func FormatJSON(w io.Writer, findings []Finding) error {
	if findings == nil {
		findings = []Finding{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(findings)
}
