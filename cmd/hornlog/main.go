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

// Binary hornlog is a shell for the interactive resolver REPL.
package main

import (
	"flag"
	"io"
	"os"

	log "github.com/golang/glog"

	"github.com/kclause/hornlog/interpreter"
)

var (
	load = flag.String("load", "", "source file to load on startup")
	exec = flag.String("exec", "", "if non-empty, runs a single query and exits: code 0 for at least one solution, 1 for none")
	root = flag.String("root", "", "::load commands and -load are resolved relative to this directory")
	out  = flag.String("out", "", "if non-empty, write output to this file instead of stdout")
)

func main() {
	flag.Parse()
	writer := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			log.Exit(err)
		}
		defer func() {
			if err := f.Close(); err != nil {
				log.Exit(err)
			}
		}()
		writer = f
	}

	i := interpreter.New(writer, *root)
	if *load != "" {
		if err := i.Load(*load); err != nil {
			log.Exitf("error loading src %s: %v", *load, err)
		}
	}

	if *exec != "" {
		found, err := i.Exec(*exec)
		if err != nil {
			log.Exitf("error evaluating query %q: %v", *exec, err)
		}
		if found {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if err := i.Loop(); err != io.EOF {
		log.Exit(err)
	}
	os.Exit(0)
}
