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

// --- Conversion : code <-> appTree -----------------------------------------

var toAppTree, fromAppTree pattern.Matcher

func init() {
	toAppTree = pattern.Match(
		pattern.Clause{Pattern: term.App(x, y), Handler: func(m pattern.Bindings, _ ...interface{}) (*term.Term, error) {
			return binary(toAppTree, m["x"], m["y"], term.App)
		}},
		pattern.Clause{Pattern: term.Comp(x, y), Handler: func(m pattern.Bindings, _ ...interface{}) (*term.Term, error) {
			return binary(toAppTree, m["x"], m["y"], combinator(B))
		}},
		pattern.Clause{Pattern: term.Join(x, y), Handler: func(m pattern.Bindings, _ ...interface{}) (*term.Term, error) {
			return binary(toAppTree, m["x"], m["y"], combinator(J))
		}},
		pattern.Clause{Pattern: term.Rand(x, y), Handler: func(m pattern.Bindings, _ ...interface{}) (*term.Term, error) {
			return binary(toAppTree, m["x"], m["y"], combinator(R))
		}},
		pattern.Clause{Pattern: term.Quote(x), Handler: func(m pattern.Bindings, _ ...interface{}) (*term.Term, error) {
			return unary(toAppTree, m["x"], term.Quote)
		}},
		pattern.Clause{Pattern: x, Handler: identity},
	)
	fromAppTree = pattern.Match(
		pattern.Clause{Pattern: term.App(term.App(B, x), y), Handler: func(m pattern.Bindings, _ ...interface{}) (*term.Term, error) {
			return binary(fromAppTree, m["x"], m["y"], term.Comp)
		}},
		pattern.Clause{Pattern: term.App(term.App(J, x), y), Handler: func(m pattern.Bindings, _ ...interface{}) (*term.Term, error) {
			return binary(fromAppTree, m["x"], m["y"], term.Join)
		}},
		pattern.Clause{Pattern: term.App(term.App(R, x), y), Handler: func(m pattern.Bindings, _ ...interface{}) (*term.Term, error) {
			return binary(fromAppTree, m["x"], m["y"], term.Rand)
		}},
		pattern.Clause{Pattern: term.App(x, y), Handler: func(m pattern.Bindings, _ ...interface{}) (*term.Term, error) {
			return binary(fromAppTree, m["x"], m["y"], term.App)
		}},
		pattern.Clause{Pattern: term.Quote(x), Handler: func(m pattern.Bindings, _ ...interface{}) (*term.Term, error) {
			return unary(fromAppTree, m["x"], term.Quote)
		}},
		pattern.Clause{Pattern: x, Handler: identity},
	)
}

// ToAppTree desugars COMP(x,y), JOIN(x,y) and RAND(x,y) into applications
// APP(APP(B,x),y), APP(APP(J,x),y) and APP(APP(R,x),y). It recurses into
// APP and QUOTE and leaves other forms untouched.
func ToAppTree(t *term.Term) (*term.Term, error) {
	return toAppTree(t)
}

// FromAppTree is the inverse of ToAppTree: applications of B, J and R to two
// arguments are re-sugared into COMP, JOIN and RAND.
func FromAppTree(t *term.Term) (*term.Term, error) {
	return fromAppTree(t)
}
