package compiler

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"

	"github.com/npillmayer/combo/pattern"
	"github.com/npillmayer/combo/term"
)

// ErrStepLimit is returned by Simplify if the number of head reductions
// exceeds the limit set with StepLimit.
var ErrStepLimit = errors.New("simplification exceeded step limit")

// Option configures a call to Simplify.
type Option func(*budget)

// StepLimit bounds the number of head reductions Simplify performs.
// A limit of 0 means unbounded.
func StepLimit(n int) Option {
	return func(b *budget) {
		if n > 0 {
			b.limit = n
		}
	}
}

// budget accounts for head reductions during one call to Simplify.
// Rewriting clauses set again to signal that the head has to be examined
// once more.
type budget struct {
	limit int
	steps int
	again bool
}

func (b *budget) step() error {
	b.steps++
	if b.limit > 0 && b.steps > b.limit {
		return ErrStepLimit
	}
	return nil
}

// rewrite is the result of a head reduction: the new stack is scanned again.
func rewrite(s *term.Term, b *budget) (*term.Term, error) {
	b.again = true
	return s, nil
}

// --- Simplify --------------------------------------------------------------

var simplifyStack, simplifyArgs pattern.Matcher

func init() {
	simplifyStack = pattern.Match(
		pattern.Clause{Pattern: term.Stack(TOP, tail), Handler: func(m pattern.Bindings, extra ...interface{}) (*term.Term, error) {
			return term.Stack(TOP, term.Empty()), nil
		}},
		pattern.Clause{Pattern: term.Stack(BOT, tail), Handler: func(m pattern.Bindings, extra ...interface{}) (*term.Term, error) {
			return term.Stack(BOT, term.Empty()), nil
		}},
		pattern.Clause{Pattern: term.StackOf(I, x, tail), Handler: func(m pattern.Bindings, extra ...interface{}) (*term.Term, error) {
			return reflatten(m["x"], m["tail"], extra)
		}},
		pattern.Clause{Pattern: term.StackOf(K, x, y, tail), Handler: func(m pattern.Bindings, extra ...interface{}) (*term.Term, error) {
			return reflatten(m["x"], m["tail"], extra)
		}},
		pattern.Clause{Pattern: term.StackOf(B, x, y, z, tail), Handler: func(m pattern.Bindings, extra ...interface{}) (*term.Term, error) {
			return reflatten(term.App(m["x"], m["y"]), term.Stack(m["z"], m["tail"]), extra)
		}},
		pattern.Clause{Pattern: term.StackOf(C, x, y, z, tail), Handler: func(m pattern.Bindings, extra ...interface{}) (*term.Term, error) {
			return reflatten(term.App(m["x"], m["z"]), term.Stack(m["y"], m["tail"]), extra)
		}},
		pattern.Clause{Pattern: term.StackOf(J, TOP, tail), Handler: func(m pattern.Bindings, extra ...interface{}) (*term.Term, error) {
			return term.Stack(TOP, term.Empty()), nil
		}},
		pattern.Clause{Pattern: term.StackOf(J, x, TOP, tail), Handler: func(m pattern.Bindings, extra ...interface{}) (*term.Term, error) {
			return term.Stack(TOP, term.Empty()), nil
		}},
		pattern.Clause{Pattern: term.StackOf(J, BOT, tail), Handler: func(m pattern.Bindings, extra ...interface{}) (*term.Term, error) {
			return reflatten(I, m["tail"], extra)
		}},
		pattern.Clause{Pattern: term.StackOf(J, x, BOT, tail), Handler: func(m pattern.Bindings, extra ...interface{}) (*term.Term, error) {
			return reflatten(m["x"], m["tail"], extra)
		}},
		pattern.Clause{Pattern: term.Stack(x, tail), Handler: func(m pattern.Bindings, extra ...interface{}) (*term.Term, error) {
			args, err := simplifyArgs(m["tail"], extra...)
			if err != nil {
				return nil, err
			}
			s := term.Stack(m["x"], args)
			if joinRedex(s) {
				return rewrite(s, extra[0].(*budget))
			}
			return s, nil
		}},
	)
	simplifyArgs = pattern.Match(
		pattern.Clause{Pattern: term.Stack(x, y), Handler: func(m pattern.Bindings, extra ...interface{}) (*term.Term, error) {
			arg, err := simplifyTerm(m["x"], extra[0].(*budget))
			if err != nil {
				return nil, err
			}
			rest, err := simplifyArgs(m["y"], extra...)
			if err != nil {
				return nil, err
			}
			return term.Stack(arg, rest), nil
		}},
		pattern.Clause{Pattern: term.Empty(), Handler: func(m pattern.Bindings, extra ...interface{}) (*term.Term, error) {
			return term.Empty(), nil
		}},
	)
}

// reflatten puts a new head onto a stack tail, keeping the stack in spine
// normal form, and flags the result for another reduction round.
func reflatten(head, tail *term.Term, extra []interface{}) (*term.Term, error) {
	s, err := toStack(head, tail)
	if err != nil {
		return nil, err
	}
	return rewrite(s, extra[0].(*budget))
}

// joinRedex checks if one of the J rules applies to a stack. Arguments may
// simplify to TOP or BOT only after the head rules have been tried.
func joinRedex(s *term.Term) bool {
	if !s.Args[0].Is(term.J) {
		return false
	}
	rest := s.Args[1]
	for i := 0; i < 2 && !rest.IsEmpty(); i++ {
		if arg := rest.Args[0]; arg.Is(term.TOP) || arg.Is(term.BOT) {
			return true
		}
		rest = rest.Args[1]
	}
	return false
}

// reduce rewrites the head of a stack until no head rule applies any more.
// Arguments are simplified by the final clause of simplifyStack.
func reduce(s *term.Term, b *budget) (*term.Term, error) {
	for {
		b.again = false
		next, err := simplifyStack(s, b)
		if err != nil {
			return nil, err
		}
		if !b.again {
			return next, nil
		}
		if err = b.step(); err != nil {
			tracer().Infof("simplify: giving up after %d steps", b.limit)
			return nil, err
		}
		s = next
	}
}

func simplifyTerm(t *term.Term, b *budget) (*term.Term, error) {
	if t.IsLeaf() {
		return t, nil
	}
	s, err := toStack(t, term.Empty())
	if err != nil {
		return nil, err
	}
	if s, err = reduce(s, b); err != nil {
		return nil, err
	}
	return fromStack(s)
}

// Simplify normalizes a term by head reduction on its stack form, followed
// by deep simplification of all arguments:
//
//     TOP x… → TOP          BOT x… → BOT
//     I x → x               K x y → x
//     B x y z → x y z       C x y z → x z y
//     J TOP → TOP           J x TOP → TOP
//     J BOT → I             J x BOT → x
//
// Leaves are returned unchanged. The result is re-sugared into COMP, JOIN
// and RAND where possible. Simplify is idempotent.
func Simplify(t *term.Term, opts ...Option) (*term.Term, error) {
	b := &budget{}
	for _, opt := range opts {
		opt(b)
	}
	s, err := simplifyTerm(t, b)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("simplified in %d steps: %s", b.steps, s)
	return fromAppTree(s)
}
