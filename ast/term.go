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

// Package ast contains the term and proposition model of the resolver: the
// recursive algebraic data types that terms, goals and rules are built
// from, plus the handful of structural operations (variable collection,
// fresh-id renaming) that the rest of the engine is built on.
package ast

import (
	"fmt"
	"strings"
)

// Nil is the distinguished atom that terminates lists.
const Nil Atom = "nil"

// Term is the building block of the resolver: a variable, a constant atom,
// a unary application, or a cons cell. N-ary structure is encoded as a
// single App whose argument is a list (see NewApp); list terms are sugar
// over Cons/Nil.
type Term interface {
	// Marker method; restricts Term implementations to this package's
	// four variants.
	isTerm()

	String() string

	// Equals reports structural (syntactic) equality: same variant, same
	// shape, same leaves. It does not dereference through an Env.
	Equals(Term) bool
}

// Atom is an interned constant symbol. Two atoms are equal iff their names
// are equal; Go's string equality already gives us this for free, so Atom
// is simply a named string type rather than a pointer-interned one.
type Atom string

func (Atom) isTerm() {}

// String returns the atom's name.
func (a Atom) String() string { return string(a) }

// Equals reports whether u is the same atom.
func (a Atom) Equals(u Term) bool {
	o, ok := u.(Atom)
	return ok && a == o
}

// Variable is a pair (name, id). name is the source-level identifier,
// preserved for display. id distinguishes distinct instantiations of a
// rule's variables at different points in the proof. SentinelID marks
// variables produced by a parser before they have been renamed by
// RefreshRule or RefreshProp.
type Variable struct {
	Name string
	ID   int64
}

// SentinelID is the id a parser must use for every variable it produces;
// RefreshRule and RefreshProp replace it (and any other id) with a fresh
// one per rule instantiation.
const SentinelID int64 = -1

func (Variable) isTerm() {}

// String renders "Name" when the variable is still at its sentinel id
// (unrenamed, as the parser leaves it) and "Name_id" once it has been
// renamed by RefreshRule or RefreshProp, so that distinct instantiations are distinguishable
// in traces and error messages.
func (v Variable) String() string {
	if v.ID == SentinelID {
		return v.Name
	}
	return fmt.Sprintf("%s_%d", v.Name, v.ID)
}

// Equals reports whether u is the same variable: same name and same id.
func (v Variable) Equals(u Term) bool {
	o, ok := u.(Variable)
	return ok && v.Name == o.Name && v.ID == o.ID
}

// App is a unary application: functor(arg), where functor is a bare atom
// (so two App terms can only unify when their functors match exactly, with
// no recursive unification of the functor position). N-ary predicate and
// structure syntax, e.g. f(a,b,c), desugars to a single App whose arg is
// the list [a,b,c] built from Cons -- see NewApp. Unifying two such terms
// then reduces to matching functors plus a single recursive Arg unification
// that cascades pairwise through the Cons spine.
type App struct {
	Functor Atom
	Arg     Term
}

func (App) isTerm() {}

func (a App) String() string {
	return fmt.Sprintf("%s(%s)", a.Functor, a.Arg)
}

// Equals reports whether u is structurally the same application.
func (a App) Equals(u Term) bool {
	o, ok := u.(App)
	return ok && a.Functor.Equals(o.Functor) && a.Arg.Equals(o.Arg)
}

// Cons is a list cell: (head . tail).
type Cons struct {
	Head Term
	Tail Term
}

func (Cons) isTerm() {}

func (c Cons) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	sb.WriteString(c.Head.String())
	rest := c.Tail
	for {
		switch t := rest.(type) {
		case Cons:
			sb.WriteString(", ")
			sb.WriteString(t.Head.String())
			rest = t.Tail
			continue
		case Atom:
			if t == Nil {
				sb.WriteByte(']')
				return sb.String()
			}
		}
		sb.WriteString(" | ")
		sb.WriteString(rest.String())
		sb.WriteByte(']')
		return sb.String()
	}
}

// Equals reports whether u is structurally the same cons cell.
func (c Cons) Equals(u Term) bool {
	o, ok := u.(Cons)
	return ok && c.Head.Equals(o.Head) && c.Tail.Equals(o.Tail)
}

// NewApp builds the n-ary application sugar functor(args...) as nested
// App/Cons structure: functor applied to a single argument that is the
// list of args. It does not build nested App terms: f(a, b) is one App
// whose Arg is [a, b]. This gives structures and predicates a uniform
// single-argument shape, the same trick AtomicProp.Term relies on.
func NewApp(functor Atom, args ...Term) Term {
	return App{Functor: functor, Arg: ListTerm(args)}
}

// ListTerm builds a list term [elems...] as Cons cells terminated by Nil.
func ListTerm(elems []Term) Term {
	var list Term = Nil
	for i := len(elems) - 1; i >= 0; i-- {
		list = Cons{Head: elems[i], Tail: list}
	}
	return list
}
