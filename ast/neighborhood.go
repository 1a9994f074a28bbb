package ast

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strconv"

	"github.com/npillmayer/combo/term"
	"github.com/samber/lo"
)

// BoundAbove collects the identifiers bound by LAMBDA and LETREC binders
// enclosing n, innermost first and without duplicates. Variables of a
// QUOTE-wrapped binder pattern are included.
func (a *Arena) BoundAbove(n NodeID) []string {
	var vars []string
	for ; n != Nil; n = a.nodes[n].above {
		if name := a.nodes[n].name; name == term.LAMBDA || name == term.LETREC {
			vars = a.patternVars(a.nodes[n].below[0], vars)
		}
	}
	return lo.Uniq(vars)
}

func (a *Arena) patternVars(patt NodeID, vars []string) []string {
	if patt == Nil {
		return vars
	}
	switch a.nodes[patt].name {
	case term.VAR:
		vars = append(vars, a.nodes[patt].ident)
	case term.QUOTE:
		vars = a.patternVars(a.nodes[patt].below[0], vars)
	}
	return vars
}

// Neighborhood lists candidate terms to replace the term under a cursor.
//
// For a HOLE these are the constants TOP and BOT, skeletons of the binding
// and combining forms, and a VAR for every variable bound above the cursor.
// Other terms are proposed to be wrapped into a binding or combining form,
// and TOP and BOT may be reverted to HOLE.
func (a *Arena) Neighborhood(cursor NodeID) []*term.Term {
	under := a.Under(cursor)
	hole := term.Leaf(term.HOLE)
	if under == Nil || a.nodes[under].name == term.HOLE {
		proposals := []*term.Term{
			term.Leaf(term.TOP),
			term.Leaf(term.BOT),
			term.Lambda(hole, hole),
			term.Letrec(hole, hole, hole),
			term.App(hole, hole),
			term.Join(hole, hole),
			term.Rand(hole, hole),
			term.Quote(hole),
		}
		for _, v := range a.BoundAbove(cursor) {
			proposals = append(proposals, term.Var(v))
		}
		return proposals
	}
	t := a.Dump(under)
	v := freshVar(t, a.BoundAbove(cursor))
	proposals := []*term.Term{
		term.Lambda(v, t),
		term.Letrec(v, t, hole),
		term.Letrec(v, hole, t),
		term.App(t, hole),
		term.App(hole, t),
		term.Join(t, hole),
		term.Rand(t, hole),
		term.Quote(t),
	}
	if t.Is(term.TOP) || t.Is(term.BOT) {
		proposals = append(proposals, hole)
	}
	return proposals
}

// freshVar finds a variable neither occurring in t nor bound.
func freshVar(t *term.Term, bound []string) *term.Term {
	for i := 0; ; i++ {
		name := string(rune('a' + i%26))
		if i >= 26 {
			name += strconv.Itoa(i/26 + 1)
		}
		if !t.Contains(name) && !lo.Contains(bound, name) {
			return term.Var(name)
		}
	}
}
