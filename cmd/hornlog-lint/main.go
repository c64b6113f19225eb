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

// Binary hornlog-lint is a standalone style linter for hornlog source
// files.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/kclause/hornlog/lint"
)

// options is the parsed form of the command's flags, kept separate from
// the flag.FlagSet wiring so buildConfig and run can be exercised by a
// test without touching the process's global flag state.
type options struct {
	format      string
	severity    string
	disable     string
	enable      string
	listRules   bool
	maxPremises int
}

func main() {
	var opts options
	flag.StringVar(&opts.format, "format", "text", "output format: text or json")
	flag.StringVar(&opts.severity, "severity", "info", "minimum severity to report: info, warning, or error")
	flag.StringVar(&opts.disable, "disable", "", "comma-separated list of rule names to disable")
	flag.StringVar(&opts.enable, "enable", "", "comma-separated list of rule names to enable (all others disabled)")
	flag.BoolVar(&opts.listRules, "list-rules", false, "list all available lint rules and exit")
	flag.IntVar(&opts.maxPremises, "max-premises", 8, "threshold for overly-complex-rule check")
	flag.Usage = printUsage
	flag.Parse()

	os.Exit(run(opts, flag.Args(), os.Stdout, os.Stderr))
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: hornlog-lint [flags] <file.hl|-> [file.hl...]\n\n")
	fmt.Fprintf(os.Stderr, "A style linter for hornlog source files. A lone \"-\" reads source\n")
	fmt.Fprintf(os.Stderr, "from stdin instead of a path.\n\n")
	fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExit codes:\n")
	fmt.Fprintf(os.Stderr, "  0  No findings (or only info)\n")
	fmt.Fprintf(os.Stderr, "  1  Warnings found\n")
	fmt.Fprintf(os.Stderr, "  2  Errors found, a file failed to parse, or no files were given\n")
}

// run performs one invocation of the linter and returns the process exit
// code, without itself calling os.Exit -- main is the only caller that
// needs to terminate the process, so the rest of the command's logic
// stays testable.
func run(opts options, args []string, stdout, stderr io.Writer) int {
	if opts.listRules {
		printRules(stdout)
		return 0
	}
	if len(args) == 0 {
		printUsage()
		return 2
	}

	config := buildConfig(opts)
	linter := lint.NewLinter(config)

	var allFindings []lint.Finding
	hasParseError := false
	for _, path := range expandFiles(args) {
		findings, err := lintOne(linter, path)
		if err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", path, err)
			hasParseError = true
			continue
		}
		allFindings = append(allFindings, findings...)
	}

	if err := writeFindings(stdout, opts.format, allFindings); err != nil {
		fmt.Fprintf(stderr, "error writing output: %v\n", err)
		return 2
	}
	return exitCode(hasParseError, allFindings)
}

// lintOne lints path, reading from stdin instead of the filesystem when
// path is the literal "-".
func lintOne(linter *lint.Linter, path string) ([]lint.Finding, error) {
	if path != "-" {
		return linter.LintFile(path)
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return linter.LintSource("<stdin>", string(data))
}

// expandFiles resolves every glob pattern in args to the files it
// matches, falling back to the literal argument when it matches nothing
// (so a plain, non-glob path is never silently dropped) or is the
// stdin marker "-".
func expandFiles(args []string) []string {
	var files []string
	for _, arg := range args {
		if arg == "-" {
			files = append(files, arg)
			continue
		}
		matches, err := filepath.Glob(arg)
		if err != nil || len(matches) == 0 {
			files = append(files, arg)
			continue
		}
		files = append(files, matches...)
	}
	return files
}

// buildConfig turns the command's flags into a lint.Config, applying
// -disable and -enable as overrides on top of lint.DefaultConfig --
// -enable wins if both are given, since it expresses "only these rules"
// rather than "everything except these".
func buildConfig(opts options) lint.Config {
	config := lint.DefaultConfig()
	config.MaxPremises = opts.maxPremises
	config.MinSeverity = lint.ParseSeverity(opts.severity)

	for _, name := range splitRuleNames(opts.disable) {
		config.DisabledRules[name] = true
	}
	if strings.TrimSpace(opts.enable) != "" {
		for _, r := range lint.AllRules() {
			config.DisabledRules[r.Name()] = true
		}
		for _, name := range splitRuleNames(opts.enable) {
			delete(config.DisabledRules, name)
		}
	}
	return config
}

func splitRuleNames(csv string) []string {
	if strings.TrimSpace(csv) == "" {
		return nil
	}
	var names []string
	for _, name := range strings.Split(csv, ",") {
		names = append(names, strings.TrimSpace(name))
	}
	return names
}

func printRules(w io.Writer) {
	fmt.Fprintln(w, "Available lint rules:")
	fmt.Fprintln(w)
	for _, r := range lint.AllRules() {
		fmt.Fprintf(w, "  %-25s [%s]  %s\n", r.Name(), r.DefaultSeverity(), r.Description())
	}
}

func writeFindings(w io.Writer, format string, findings []lint.Finding) error {
	if format == "json" {
		return lint.FormatJSON(w, findings)
	}
	lint.FormatText(w, findings)
	return nil
}

// exitCode derives the process exit code from whether any file failed to
// read and the worst severity among the findings that were produced.
func exitCode(hasParseError bool, findings []lint.Finding) int {
	if hasParseError {
		return 2
	}
	maxSev := lint.SeverityInfo
	for _, f := range findings {
		if f.Severity > maxSev {
			maxSev = f.Severity
		}
	}
	switch {
	case maxSev >= lint.SeverityError:
		return 2
	case maxSev >= lint.SeverityWarning:
		return 1
	default:
		return 0
	}
}
