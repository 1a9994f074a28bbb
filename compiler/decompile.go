package compiler

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strconv"

	"github.com/npillmayer/combo/pattern"
	"github.com/npillmayer/combo/term"
)

// --- Decompile : code -> lambda --------------------------------------------

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// namer hands out fresh variable names a, b, …, z, a2, b2, …, z2, a3, …
// Every call to Decompile uses a namer of its own.
type namer struct {
	count int
}

func (n *namer) fresh() *term.Term {
	name := string(alphabet[n.count%len(alphabet)])
	if round := n.count / len(alphabet); round > 0 {
		name += strconv.Itoa(round + 1)
	}
	n.count++
	return term.Var(name)
}

func namerOf(extra []interface{}) *namer {
	return extra[0].(*namer)
}

var decompile pattern.Matcher

func init() {
	decompile = pattern.Match(
		pattern.Clause{Pattern: I, Handler: func(m pattern.Bindings, extra ...interface{}) (*term.Term, error) {
			a := namerOf(extra).fresh()
			return term.Lambda(a, a), nil
		}},
		pattern.Clause{Pattern: term.App(I, x), Handler: func(m pattern.Bindings, extra ...interface{}) (*term.Term, error) {
			return decompile(m["x"], extra...)
		}},
		pattern.Clause{Pattern: K, Handler: func(m pattern.Bindings, extra ...interface{}) (*term.Term, error) {
			n := namerOf(extra)
			a := n.fresh()
			b := n.fresh()
			return term.Lambda(a, term.Lambda(b, a)), nil
		}},
		pattern.Clause{Pattern: term.App(K, x), Handler: func(m pattern.Bindings, extra ...interface{}) (*term.Term, error) {
			v := namerOf(extra).fresh()
			tx, err := decompile(m["x"], extra...)
			if err != nil {
				return nil, err
			}
			return term.Lambda(v, tx), nil
		}},
		pattern.Clause{Pattern: term.App(term.App(K, x), y), Handler: func(m pattern.Bindings, extra ...interface{}) (*term.Term, error) {
			return decompile(m["x"], extra...)
		}},
		pattern.Clause{Pattern: S, Handler: func(m pattern.Bindings, extra ...interface{}) (*term.Term, error) {
			n := namerOf(extra)
			a := n.fresh()
			b := n.fresh()
			c := n.fresh()
			return term.Lambda(a, term.Lambda(b, term.Lambda(c,
				term.App(term.App(a, c), term.App(b, c))))), nil
		}},
		pattern.Clause{Pattern: term.App(S, x), Handler: func(m pattern.Bindings, extra ...interface{}) (*term.Term, error) {
			n := namerOf(extra)
			v := n.fresh()
			w := n.fresh()
			tx, err := decompile(m["x"], extra...)
			if err != nil {
				return nil, err
			}
			return term.Lambda(v, term.Lambda(w,
				term.App(term.App(tx, w), term.App(v, w)))), nil
		}},
		pattern.Clause{Pattern: term.App(term.App(S, x), y), Handler: func(m pattern.Bindings, extra ...interface{}) (*term.Term, error) {
			v := namerOf(extra).fresh()
			tx, err := decompile(m["x"], extra...)
			if err != nil {
				return nil, err
			}
			ty, err := decompile(m["y"], extra...)
			if err != nil {
				return nil, err
			}
			return term.Lambda(v, term.App(term.App(tx, v), term.App(ty, v))), nil
		}},
		pattern.Clause{Pattern: term.App(term.App(term.App(S, x), y), z), Handler: func(m pattern.Bindings, extra ...interface{}) (*term.Term, error) {
			v := namerOf(extra).fresh()
			tz, err := decompile(m["z"], extra...)
			if err != nil {
				return nil, err
			}
			body, err := decompile(term.App(term.App(m["x"], v), term.App(m["y"], v)), extra...)
			if err != nil {
				return nil, err
			}
			return term.Let(v, tz, body), nil
		}},
		pattern.Clause{Pattern: J, Handler: func(m pattern.Bindings, extra ...interface{}) (*term.Term, error) {
			n := namerOf(extra)
			a := n.fresh()
			b := n.fresh()
			return term.Lambda(a, term.Lambda(b, term.Join(a, b))), nil
		}},
		pattern.Clause{Pattern: term.App(J, x), Handler: func(m pattern.Bindings, extra ...interface{}) (*term.Term, error) {
			v := namerOf(extra).fresh()
			tx, err := decompile(m["x"], extra...)
			if err != nil {
				return nil, err
			}
			return term.Lambda(v, term.Join(tx, v)), nil
		}},
		pattern.Clause{Pattern: term.App(term.App(J, x), y), Handler: func(m pattern.Bindings, extra ...interface{}) (*term.Term, error) {
			return binary(decompile, m["x"], m["y"], term.Join, extra...)
		}},
		pattern.Clause{Pattern: term.Join(x, y), Handler: func(m pattern.Bindings, extra ...interface{}) (*term.Term, error) {
			return binary(decompile, m["x"], m["y"], term.Join, extra...)
		}},
		pattern.Clause{Pattern: term.Rand(x, y), Handler: func(m pattern.Bindings, extra ...interface{}) (*term.Term, error) {
			return binary(decompile, m["x"], m["y"], term.Rand, extra...)
		}},
		pattern.Clause{Pattern: term.App(x, y), Handler: func(m pattern.Bindings, extra ...interface{}) (*term.Term, error) {
			return binary(decompile, m["x"], m["y"], term.App, extra...)
		}},
		pattern.Clause{Pattern: term.Comp(x, y), Handler: func(m pattern.Bindings, extra ...interface{}) (*term.Term, error) {
			return decompile(term.App(term.App(B, m["x"]), m["y"]), extra...)
		}},
		pattern.Clause{Pattern: term.Quote(x), Handler: func(m pattern.Bindings, extra ...interface{}) (*term.Term, error) {
			return unary(decompile, m["x"], term.Quote, extra...)
		}},
		pattern.Clause{Pattern: pattern.VariableOf("v", term.VAR), Handler: func(m pattern.Bindings, _ ...interface{}) (*term.Term, error) {
			return m["v"], nil
		}},
		pattern.Clause{Pattern: x, Handler: func(m pattern.Bindings, _ ...interface{}) (*term.Term, error) {
			if !m["x"].IsLeaf() {
				return nil, &pattern.NoMatchingClauseError{Term: m["x"]}
			}
			return m["x"], nil // remaining atoms are their own readable form
		}},
	)
}

// Decompile converts a combinator term into a human-readable form with
// LAMBDA and LET binders, introducing fresh variable names. I, K, S and J
// are unfolded into their lambda form; COMP is decompiled as an application
// of B. Decompile(Simplify(t)) need not equal Decompile(t).
//
// Fresh names are generated per call, starting with 'a'. Decompilation
// of saturated S applications re-decompiles a synthesized term and is not
// guaranteed to terminate for arbitrary input.
func Decompile(t *term.Term) (*term.Term, error) {
	return decompile(t, &namer{})
}
