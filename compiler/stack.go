package compiler

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/combo/pattern"
	"github.com/npillmayer/combo/term"
)

// --- Convert : appTree <-> stack -------------------------------------------

var toStack, fromStack pattern.Matcher

func init() {
	toStack = pattern.Match(
		pattern.Clause{Pattern: term.App(x, y), Handler: func(m pattern.Bindings, extra ...interface{}) (*term.Term, error) {
			return toStack(m["x"], term.Stack(m["y"], tailOf(extra)))
		}},
		pattern.Clause{Pattern: term.Comp(x, y), Handler: func(m pattern.Bindings, extra ...interface{}) (*term.Term, error) {
			return toStack(B, term.StackOf(m["x"], m["y"], tailOf(extra)))
		}},
		pattern.Clause{Pattern: term.Join(x, y), Handler: func(m pattern.Bindings, extra ...interface{}) (*term.Term, error) {
			return toStack(J, term.StackOf(m["x"], m["y"], tailOf(extra)))
		}},
		pattern.Clause{Pattern: term.Rand(x, y), Handler: func(m pattern.Bindings, extra ...interface{}) (*term.Term, error) {
			return toStack(R, term.StackOf(m["x"], m["y"], tailOf(extra)))
		}},
		pattern.Clause{Pattern: x, Handler: func(m pattern.Bindings, extra ...interface{}) (*term.Term, error) {
			return term.Stack(m["x"], tailOf(extra)), nil
		}},
	)
	fromStack = pattern.Match(
		pattern.Clause{Pattern: term.StackOf(B, x, y, tail), Handler: func(m pattern.Bindings, _ ...interface{}) (*term.Term, error) {
			return fromStack(term.Stack(term.Comp(m["x"], m["y"]), m["tail"]))
		}},
		pattern.Clause{Pattern: term.StackOf(J, x, y, tail), Handler: func(m pattern.Bindings, _ ...interface{}) (*term.Term, error) {
			return fromStack(term.Stack(term.Join(m["x"], m["y"]), m["tail"]))
		}},
		pattern.Clause{Pattern: term.StackOf(R, x, y, tail), Handler: func(m pattern.Bindings, _ ...interface{}) (*term.Term, error) {
			return fromStack(term.Stack(term.Rand(m["x"], m["y"]), m["tail"]))
		}},
		pattern.Clause{Pattern: term.StackOf(x, y, tail), Handler: func(m pattern.Bindings, _ ...interface{}) (*term.Term, error) {
			return fromStack(term.Stack(term.App(m["x"], m["y"]), m["tail"]))
		}},
		pattern.Clause{Pattern: term.StackOf(x, term.Empty()), Handler: identity},
	)
}

// tailOf extracts the stack tail passed as extra argument to toStack.
func tailOf(extra []interface{}) *term.Term {
	if len(extra) == 0 || extra[0] == nil {
		return term.Empty()
	}
	return extra[0].(*term.Term)
}

// ToStack right-flattens the application spine of t onto a stack tail.
// If tail is nil, the empty stack is used. COMP, JOIN and RAND are expanded
// to their B-, J- and R-headed application form during flattening:
//
//     ToStack(APP(APP(x, y), z), nil)   =  STACK(x, STACK(y, STACK(z, [])))
//     ToStack(COMP(x, y), nil)          =  STACK(B, STACK(x, STACK(y, [])))
//
func ToStack(t *term.Term, tail *term.Term) (*term.Term, error) {
	if tail == nil {
		tail = term.Empty()
	}
	return toStack(t, tail)
}

// FromStack folds a stack back into an application tree. It is the inverse
// of ToStack, re-sugaring B, J and R heads applied to at least two arguments.
func FromStack(s *term.Term) (*term.Term, error) {
	return fromStack(s)
}
