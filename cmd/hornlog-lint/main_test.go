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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/kclause/hornlog/lint"
)

func TestBuildConfigAppliesDisable(t *testing.T) {
	config := buildConfig(options{disable: "unused-predicate, naming-convention", severity: "info", maxPremises: 8})
	if !config.DisabledRules["unused-predicate"] || !config.DisabledRules["naming-convention"] {
		t.Errorf("disabled rules = %v, want unused-predicate and naming-convention disabled", config.DisabledRules)
	}
	if config.DisabledRules["singleton-variable"] {
		t.Errorf("singleton-variable should not be disabled")
	}
}

func TestBuildConfigEnableDisablesEverythingElse(t *testing.T) {
	config := buildConfig(options{enable: "naming-convention", maxPremises: 8})
	for _, r := range lint.AllRules() {
		want := r.Name() != "naming-convention"
		if config.DisabledRules[r.Name()] != want {
			t.Errorf("DisabledRules[%s] = %v, want %v", r.Name(), config.DisabledRules[r.Name()], want)
		}
	}
}

func TestBuildConfigMaxPremisesAndSeverity(t *testing.T) {
	config := buildConfig(options{maxPremises: 3, severity: "warning"})
	if config.MaxPremises != 3 {
		t.Errorf("MaxPremises = %d, want 3", config.MaxPremises)
	}
	if config.MinSeverity != lint.SeverityWarning {
		t.Errorf("MinSeverity = %v, want SeverityWarning", config.MinSeverity)
	}
}

func TestExpandFilesFallsBackToLiteralPath(t *testing.T) {
	got := expandFiles([]string{"no/such/glob/*.hl"})
	want := []string{"no/such/glob/*.hl"}
	if len(got) != 1 || got[0] != want[0] {
		t.Errorf("expandFiles = %v, want literal fallback %v", got, want)
	}
}

func TestExpandFilesPassesThroughStdinMarker(t *testing.T) {
	got := expandFiles([]string{"-"})
	if len(got) != 1 || got[0] != "-" {
		t.Errorf("expandFiles(-) = %v, want [-]", got)
	}
}

func TestExpandFilesExpandsGlob(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.hl", "b.hl"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("fact(x).\n"), 0o644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}
	got := expandFiles([]string{filepath.Join(dir, "*.hl")})
	if len(got) != 2 {
		t.Fatalf("expandFiles matched %v, want 2 files", got)
	}
}

func TestExitCodeOrdering(t *testing.T) {
	cases := []struct {
		name       string
		parseErr   bool
		severities []lint.Severity
		want       int
	}{
		{"clean", false, nil, 0},
		{"info only", false, []lint.Severity{lint.SeverityInfo}, 0},
		{"warning", false, []lint.Severity{lint.SeverityInfo, lint.SeverityWarning}, 1},
		{"error", false, []lint.Severity{lint.SeverityWarning, lint.SeverityError}, 2},
		{"parse error wins", true, []lint.Severity{lint.SeverityInfo}, 2},
	}
	for _, c := range cases {
		var findings []lint.Finding
		for _, sev := range c.severities {
			findings = append(findings, lint.Finding{Severity: sev})
		}
		if got := exitCode(c.parseErr, findings); got != c.want {
			t.Errorf("%s: exitCode = %d, want %d", c.name, got, c.want)
		}
	}
}

func TestRunEndToEndReportsWarningExitCode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "orphan.hl")
	if err := os.WriteFile(path, []byte("orphan(a).\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	var stdout, stderr bytes.Buffer
	code := run(options{format: "text", maxPremises: 8}, []string{path}, &stdout, &stderr)
	if code != 1 {
		t.Errorf("exit code = %d, want 1 (unused-predicate is a warning)", code)
	}
	if stdout.Len() == 0 {
		t.Errorf("expected findings written to stdout")
	}
}

func TestRunNoArgsReturnsTwo(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(options{}, nil, &stdout, &stderr)
	if code != 2 {
		t.Errorf("exit code = %d, want 2", code)
	}
}

func TestRunListRulesReturnsZero(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(options{listRules: true}, nil, &stdout, &stderr)
	if code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
	if stdout.Len() == 0 {
		t.Errorf("expected rule listing written to stdout")
	}
}
