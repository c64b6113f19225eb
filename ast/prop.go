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

package ast

import "fmt"

// PredName is a predicate name: a plain string identity used as a
// knowledge-base index key.
type PredName string

// Cut is the predicate name of the cut built-in, "!". It always carries
// Nil as its argument.
const Cut PredName = "!"

// True is the predicate name of the always-succeeding built-in. It always
// carries Nil as its argument.
const True PredName = "true"

// AtomicProp is a predicate applied to a term: (predicate_name, term).
// Built-ins are dispatched on Pred before the knowledge base is ever
// consulted (see engine.Prove), so a user rule named "!" or "true" can
// never shadow them.
type AtomicProp struct {
	Pred PredName
	Term Term
}

// NewAtomicProp builds an n-ary atomic proposition pred(args...), packing
// args into the single Term slot the same way NewApp does.
func NewAtomicProp(pred PredName, args ...Term) AtomicProp {
	return AtomicProp{Pred: pred, Term: ListTerm(args)}
}

func (a AtomicProp) isProp() {}

func (a AtomicProp) String() string {
	return fmt.Sprintf("%s%s", a.Pred, formatArgs(a.Term))
}

// formatArgs renders an atomic proposition's packed-list argument term as
// a parenthesized, comma-separated arg list when it is a proper list,
// falling back to the term's own String for anything else (so malformed
// or partial terms still print something useful).
func formatArgs(t Term) string {
	args, ok := unpackList(t)
	if !ok {
		return "(" + t.String() + ")"
	}
	if len(args) == 0 {
		return "()"
	}
	s := "("
	for i, a := range args {
		if i > 0 {
			s += ", "
		}
		s += a.String()
	}
	return s + ")"
}

// unpackList returns the elements of a proper Cons/Nil list term, or false
// if t is not one (e.g. an improper list, or not a list at all).
func unpackList(t Term) ([]Term, bool) {
	var elems []Term
	for {
		switch v := t.(type) {
		case Atom:
			if v == Nil {
				return elems, true
			}
			return nil, false
		case Cons:
			elems = append(elems, v.Head)
			t = v.Tail
		default:
			return nil, false
		}
	}
}

// Proposition is an atomic proposition, or a conjunction of propositions.
// There is no disjunction node; alternative ways to prove something are
// expressed by supplying multiple rules for the same head predicate.
type Proposition interface {
	isProp()
	String() string
}

// Conj is a conjunction, interpreted as "prove Left, then prove Right
// under the resulting bindings".
type Conj struct {
	Left, Right Proposition
}

func (Conj) isProp() {}

func (c Conj) String() string {
	return fmt.Sprintf("%s, %s", c.Left, c.Right)
}

// Rule is a head atomic proposition with an optional goal. A rule with no
// goal is an axiom: the head is unconditionally true once it unifies.
type Rule struct {
	Head AtomicProp
	Goal Proposition // nil for an axiom
}

func (r Rule) String() string {
	if r.Goal == nil {
		return r.Head.String() + "."
	}
	return fmt.Sprintf("%s :- %s.", r.Head, r.Goal)
}

// IsAxiom reports whether this rule has no goal.
func (r Rule) IsAxiom() bool { return r.Goal == nil }
