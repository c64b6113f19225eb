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

// Package env implements the resolver's substitution environment: a
// persistent binding of variables to terms, plus unification over it.
//
// The representation is a persistent singly-linked list of bindings,
// shared structurally between an Env and every Env derived from it by
// Bind. This is the same persistence idea as the teacher pack's
// red-black-tree Env (a balanced persistent map), simplified to a list
// since the engine's knowledge bases and proofs are small enough that
// O(depth) lookup never dominates: a proof's environment grows by a
// handful of bindings per rule application, not by the thousands of
// facts a full Datalog engine indexes.
package env

import "github.com/kclause/hornlog/ast"

// Env is an immutable substitution environment. The zero value is not a
// valid Env; use Empty.
type Env struct {
	// head is nil for the empty environment.
	head *binding
}

type binding struct {
	v      ast.Variable
	t      ast.Term
	parent *binding
}

// Empty returns the environment with no bindings.
func Empty() *Env {
	return &Env{}
}

// TryFind performs a direct lookup of v in env, without walking through
// chains of variable-to-variable bindings. Returns (term, true) if v is
// bound, or (nil, false) otherwise.
func TryFind(e *Env, v ast.Variable) (ast.Term, bool) {
	for b := e.head; b != nil; b = b.parent {
		if b.v == v {
			return b.t, true
		}
	}
	return nil, false
}

// Bind returns a new environment extending e with v bound to t.
//
// Precondition: v must be unbound in e; callers (Unify) are responsible
// for checking this, matching spec's "bind" contract. Bind substitutes t
// through e first; if the result is syntactically just Var(v) itself
// (binding a variable to itself), e is returned unchanged rather than
// growing with a self-referential entry — this is what keeps Walk's
// termination argument intact (every dereference step must visit a
// strictly different variable).
func Bind(e *Env, v ast.Variable, t ast.Term) *Env {
	t2 := Walk(e, t)
	if vv, ok := t2.(ast.Variable); ok && vv == v {
		return e
	}
	return &Env{head: &binding{v: v, t: t2, parent: e.head}}
}

// Walk recursively substitutes t under e: every Variable child bound in e
// is replaced by the (recursively substituted) term it is bound to;
// unbound variables and atoms are left as-is, and App/Cons are walked
// structurally. The result contains no variable that e binds.
func Walk(e *Env, t ast.Term) ast.Term {
	switch v := t.(type) {
	case ast.Variable:
		if u, ok := TryFind(e, v); ok {
			return Walk(e, u)
		}
		return v
	case ast.Atom:
		return v
	case ast.App:
		return ast.App{Functor: v.Functor, Arg: Walk(e, v.Arg)}
	case ast.Cons:
		return ast.Cons{Head: Walk(e, v.Head), Tail: Walk(e, v.Tail)}
	default:
		return t
	}
}

// Unify attempts to extend e so that Walk(e', a) and Walk(e', b) are
// structurally equal, returning the extended environment and true on
// success. On failure it returns (nil, false); e itself is never
// observably mutated (Env is immutable), satisfying the "steadfast"
// requirement trivially.
//
// Case order matters: the variable cases must be checked before the
// constant-shape cases so that a bound variable is walked transparently
// rather than accidentally falling through to a shape mismatch.
func Unify(e *Env, a, b ast.Term) (*Env, bool) {
	if v, ok := a.(ast.Variable); ok {
		if u, bound := TryFind(e, v); bound {
			return Unify(e, b, u)
		}
		return Bind(e, v, b), true
	}
	if v, ok := b.(ast.Variable); ok {
		if u, bound := TryFind(e, v); bound {
			return Unify(e, a, u)
		}
		return Bind(e, v, a), true
	}
	switch av := a.(type) {
	case ast.Atom:
		if bv, ok := b.(ast.Atom); ok && av == bv {
			return e, true
		}
		return nil, false
	case ast.App:
		bv, ok := b.(ast.App)
		if !ok || av.Functor != bv.Functor {
			return nil, false
		}
		return Unify(e, av.Arg, bv.Arg)
	case ast.Cons:
		bv, ok := b.(ast.Cons)
		if !ok {
			return nil, false
		}
		e1, ok := Unify(e, av.Head, bv.Head)
		if !ok {
			return nil, false
		}
		return Unify(e1, av.Tail, bv.Tail)
	default:
		return nil, false
	}
}
