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

import "sync/atomic"

// idCounter hands out the ids that keep distinct instantiations of a
// rule's variables apart across a proof. Starting above SentinelID means
// any accidental leak of an unrenamed (sentinel) variable into a proof
// is immediately distinguishable from a properly-renamed one.
var idCounter atomic.Int64

// FreshID returns an id no previous call (in this process) has returned.
func FreshID() int64 {
	return idCounter.Add(1)
}

// Vars appends the variables occurring in t to into, in left-to-right
// occurrence order, including duplicates. Callers that need a set should
// dedupe the result themselves.
func Vars(t Term, into []Variable) []Variable {
	switch v := t.(type) {
	case Variable:
		return append(into, v)
	case Atom:
		return into
	case App:
		return Vars(v.Arg, into)
	case Cons:
		into = Vars(v.Head, into)
		return Vars(v.Tail, into)
	default:
		return into
	}
}

// VarsProp appends the variables occurring in p to into, in left-to-right
// occurrence order, including duplicates.
func VarsProp(p Proposition, into []Variable) []Variable {
	switch v := p.(type) {
	case AtomicProp:
		return Vars(v.Term, into)
	case Conj:
		into = VarsProp(v.Left, into)
		return VarsProp(v.Right, into)
	default:
		return into
	}
}

// renaming is a one-shot map from a rule instantiation's original variable
// ids to the fresh ids minted for this particular instantiation. It only
// exists for the lifetime of a single WithFreshID/WithFreshIDProp call
// tree, so that every occurrence of the same source variable within one
// rule gets the same fresh id, while two separate rules (or two separate
// uses of the same rule) never collide.
type renaming map[Variable]Variable

func (r renaming) rename(v Variable) Variable {
	if fresh, ok := r[v]; ok {
		return fresh
	}
	fresh := Variable{Name: v.Name, ID: FreshID()}
	r[v] = fresh
	return fresh
}

// WithFreshID returns t with every variable replaced by a fresh one,
// consistently: two occurrences of the same source variable map to the
// same fresh variable, and distinct source variables map to distinct
// fresh ones.
func WithFreshID(t Term) Term {
	return renaming{}.term(t)
}

// RefreshRule returns a copy of r with every variable in its head and
// goal replaced by fresh ids, consistently across head and goal. This is
// what gives each candidate-rule instantiation during proof search its
// own private set of variables, so that bindings made while proving one
// candidate never leak into a sibling candidate's variables.
func RefreshRule(r Rule) Rule {
	ren := renaming{}
	head := ren.atomicProp(r.Head)
	var goal Proposition
	if r.Goal != nil {
		goal = ren.prop(r.Goal)
	}
	return Rule{Head: head, Goal: goal}
}

// RefreshProp returns a copy of p with every variable replaced by a fresh
// id, consistently across the whole proposition. This is the query
// driver's renaming primitive (spec's refresh(prop)): it guarantees a
// query's variables never collide with any left over from a previous
// query against the same long-lived process.
func RefreshProp(p Proposition) Proposition {
	return renaming{}.prop(p)
}

func (ren renaming) term(t Term) Term {
	switch v := t.(type) {
	case Variable:
		return ren.rename(v)
	case Atom:
		return v
	case App:
		return App{Functor: v.Functor, Arg: ren.term(v.Arg)}
	case Cons:
		return Cons{Head: ren.term(v.Head), Tail: ren.term(v.Tail)}
	default:
		return t
	}
}

func (ren renaming) atomicProp(a AtomicProp) AtomicProp {
	return AtomicProp{Pred: a.Pred, Term: ren.term(a.Term)}
}

func (ren renaming) prop(p Proposition) Proposition {
	switch v := p.(type) {
	case AtomicProp:
		return ren.atomicProp(v)
	case Conj:
		return Conj{Left: ren.prop(v.Left), Right: ren.prop(v.Right)}
	default:
		return p
	}
}
