package ast

import (
	"errors"
	"testing"

	"github.com/npillmayer/combo/symtab"
	"github.com/npillmayer/combo/term"
	"github.com/npillmayer/combo/termlang"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func parse(t *testing.T, s string) *term.Term {
	tt, err := termlang.Parse(s)
	if err != nil {
		t.Fatalf("cannot parse %q: %v", s, err)
	}
	return tt
}

func dumped(a *Arena, n NodeID) string {
	return termlang.Print(a.Dump(a.Root(n)))
}

func TestLoadDump(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "combo.ast")
	defer teardown()
	//
	for i, s := range []string{
		"VAR x",
		"QUOTE APP LAMBDA CURSOR VAR x VAR x HOLE",
		"LETREC VAR i LAMBDA VAR x VAR x APP VAR i VAR i",
		"LET VAR a COMP K I JOIN TOP RAND BOT W",
	} {
		a := NewArena(nil)
		flat := parse(t, s)
		root, err := a.Load(flat)
		if err != nil {
			t.Fatalf("example %d: %v", i+1, err)
		}
		if d := a.Dump(root); !term.Equal(d, flat) {
			t.Errorf("example %d: dump is %s, expected %s", i+1, d, flat)
		}
		if err = a.Check(root); err != nil {
			t.Errorf("example %d: %v", i+1, err)
		}
		if a.Len() != len(flat.Tokens())-countVars(flat) {
			t.Errorf("example %d: expected one node per symbol, have %d", i+1, a.Len())
		}
	}
}

func countVars(t *term.Term) int {
	n := 0
	if t.Is(term.VAR) {
		n++
	}
	for _, arg := range t.Args {
		n += countVars(arg)
	}
	return n
}

func TestLoadVar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "combo.ast")
	defer teardown()
	//
	a := NewArena(nil)
	n, err := a.Load(parse(t, "VAR x"))
	if err != nil {
		t.Fatal(err)
	}
	if a.Name(n) != term.VAR || a.Ident(n) != "x" || a.Above(n) != Nil {
		t.Errorf("expected root VAR node with payload x")
	}
	if s := termlang.Print(a.Dump(n)); s != "VAR x" {
		t.Errorf("expected dump 'VAR x', have %q", s)
	}
}

func TestLoadErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "combo.ast")
	defer teardown()
	//
	a := NewArena(nil)
	_, err := a.Load(term.Node(term.APP, term.Leaf(term.K)))
	var arityErr *symtab.ArityError
	if !errors.As(err, &arityErr) {
		t.Errorf("expected arity error, have %v", err)
	}
	_, err = a.Load(term.App(term.Leaf("FOO"), term.Leaf(term.K)))
	var unknown *symtab.UnknownTokenError
	if !errors.As(err, &unknown) {
		t.Errorf("expected unknown token error, have %v", err)
	}
	if a.Len() != 0 {
		t.Errorf("expected failed loads to leave the arena empty, have %d nodes", a.Len())
	}
}

func TestCursorInsertRemove(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "combo.ast")
	defer teardown()
	//
	a := NewArena(nil)
	root, _ := a.Load(parse(t, "APP VAR f VAR x"))
	c := a.NewCursor()
	if err := a.InsertBelow(c, root, 1); err != nil {
		t.Fatal(err)
	}
	if s := dumped(a, root); s != "APP VAR f CURSOR VAR x" {
		t.Errorf("unexpected tree after InsertBelow: %s", s)
	}
	if a.Position(c) != 1 || a.Name(a.Under(c)) != term.VAR {
		t.Errorf("cursor expected at position 1 above VAR x")
	}
	if err := a.InsertBelow(c, root, 0); err == nil {
		t.Errorf("expected attached cursor to be rejected")
	}
	pos, ok := a.Remove(c)
	if !ok || pos != 1 {
		t.Errorf("expected Remove to return position 1, have %d, %v", pos, ok)
	}
	if s := dumped(a, root); s != "APP VAR f VAR x" {
		t.Errorf("unexpected tree after Remove: %s", s)
	}
	if err := a.InsertAbove(c, root); err != nil {
		t.Fatal(err)
	}
	if a.Root(root) != c {
		t.Errorf("expected cursor to be root")
	}
	if _, ok = a.Remove(c); ok {
		t.Errorf("expected removal of root cursor to report no position")
	}
	if a.Above(root) != Nil || a.Under(c) != Nil {
		t.Errorf("expected cursor to be fully detached")
	}
	if err := a.Check(root); err != nil {
		t.Error(err)
	}
}

func TestCursorMoves(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "combo.ast")
	defer teardown()
	//
	a := NewArena(nil)
	root, _ := a.Load(parse(t, "APP VAR f APP VAR g VAR x"))
	c := a.NewCursor()
	if err := a.InsertAbove(c, root); err != nil {
		t.Fatal(err)
	}
	steps := []struct {
		d    Direction
		ok   bool
		tree string
	}{
		{Up, false, "CURSOR APP VAR f APP VAR g VAR x"},
		{Down, true, "APP CURSOR VAR f APP VAR g VAR x"},
		{Down, false, "APP CURSOR VAR f APP VAR g VAR x"},
		{Left, false, "APP CURSOR VAR f APP VAR g VAR x"},
		{Right, true, "APP VAR f APP CURSOR VAR g VAR x"},
		{Right, true, "APP VAR f APP VAR g CURSOR VAR x"},
		{Right, false, "APP VAR f APP VAR g CURSOR VAR x"},
		{Left, true, "APP VAR f APP CURSOR VAR g VAR x"},
		{Up, true, "APP VAR f CURSOR APP VAR g VAR x"},
		{Left, true, "APP VAR f APP VAR g CURSOR VAR x"},
		{Up, true, "APP VAR f CURSOR APP VAR g VAR x"},
		{Up, true, "CURSOR APP VAR f APP VAR g VAR x"},
		{Right, true, "APP CURSOR VAR f APP VAR g VAR x"},
	}
	for i, step := range steps {
		if ok := a.TryMove(c, step.d); ok != step.ok {
			t.Errorf("step %d: move %s returned %v", i+1, step.d, ok)
		}
		if s := dumped(a, c); s != step.tree {
			t.Errorf("step %d: expected %s, have %s", i+1, step.tree, s)
		}
		if err := a.Check(c); err != nil {
			t.Errorf("step %d: %v", i+1, err)
		}
	}
}

func TestMoveInBrokenTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "combo.ast")
	defer teardown()
	//
	a := NewArena(nil)
	root, _ := a.Load(parse(t, "APP VAR f VAR x"))
	c := a.NewCursor()
	if err := a.InsertAbove(c, root); err != nil {
		t.Fatal(err)
	}
	f := a.Below(root)[0]
	a.nodes[f].live = false // dangling child link
	if a.TryMove(c, Down) {
		t.Errorf("expected move into a dangling child to fail")
	}
	var violation *StructuralInvariantViolation
	if err := a.Check(root); !errors.As(err, &violation) {
		t.Errorf("expected invariant violation, have %v", err)
	}
	if a.TryMove(c, Direction(7)) {
		t.Errorf("expected invalid direction to be rejected")
	}
}

func TestParseDirection(t *testing.T) {
	for s, d := range map[string]Direction{
		"Up": Up, "D": Down, "left": Left, "R": Right, "RIGHT": Right,
	} {
		if dd, err := ParseDirection(s); err != nil || dd != d {
			t.Errorf("expected %q to parse to %s, have %s (%v)", s, d, dd, err)
		}
	}
	if _, err := ParseDirection("sideways"); err == nil {
		t.Errorf("expected error for invalid direction")
	}
}

func TestNeighborhoodOfHole(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "combo.ast")
	defer teardown()
	//
	a := NewArena(nil)
	root, _ := a.Load(parse(t, "LAMBDA VAR y LAMBDA VAR x HOLE"))
	c := a.NewCursor()
	inner := a.Below(root)[1]
	if err := a.InsertBelow(c, inner, 1); err != nil {
		t.Fatal(err)
	}
	hood := a.Neighborhood(c)
	if len(hood) != 10 {
		t.Fatalf("expected 10 proposals, have %d: %v", len(hood), hood)
	}
	if !term.Equal(hood[8], term.Var("x")) || !term.Equal(hood[9], term.Var("y")) {
		t.Errorf("expected bound variables x and y to be proposed, innermost first")
	}
}

func TestNeighborhoodOfTerm(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "combo.ast")
	defer teardown()
	//
	a := NewArena(nil)
	root, _ := a.Load(parse(t, "LAMBDA VAR a APP VAR a TOP"))
	c := a.NewCursor()
	app := a.Below(root)[1]
	a.InsertBelow(c, app, 1)
	hood := a.Neighborhood(c)
	if len(hood) != 9 {
		t.Fatalf("expected 9 proposals for TOP, have %d", len(hood))
	}
	if !term.Equal(hood[0], term.Lambda(term.Var("b"), term.Leaf(term.TOP))) {
		t.Errorf("expected fresh binder b, have %s", hood[0])
	}
	if !hood[8].Is(term.HOLE) {
		t.Errorf("expected HOLE as last proposal for TOP")
	}
	a.TryMove(c, Left)
	if hood = a.Neighborhood(c); len(hood) != 8 {
		t.Errorf("expected 8 proposals for VAR a, have %d", len(hood))
	}
}

func TestReplace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "combo.ast")
	defer teardown()
	//
	a := NewArena(nil)
	root, _ := a.Load(parse(t, "LAMBDA VAR x HOLE"))
	c := a.NewCursor()
	a.InsertBelow(c, root, 1)
	hood := a.Neighborhood(c)
	n, err := a.Replace(a.Under(c), hood[len(hood)-1])
	if err != nil {
		t.Fatal(err)
	}
	if a.Under(c) != n || a.Above(n) != c {
		t.Errorf("expected new node to be under the cursor")
	}
	if s := dumped(a, c); s != "LAMBDA VAR x CURSOR VAR x" {
		t.Errorf("unexpected tree after Replace: %s", s)
	}
	size := a.Len()
	if _, err = a.Replace(n, parse(t, "APP HOLE HOLE")); err != nil {
		t.Fatal(err)
	}
	if a.Len() != size+2 {
		t.Errorf("expected %d live nodes, have %d", size+2, a.Len())
	}
	if err = a.Check(c); err != nil {
		t.Error(err)
	}
	if err = a.Release(a.Under(c)); err == nil {
		t.Errorf("expected release of attached node to fail")
	}
}

func TestCheckDetectsViolation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "combo.ast")
	defer teardown()
	//
	a := NewArena(nil)
	root, _ := a.Load(parse(t, "APP VAR f VAR x"))
	f := a.Below(root)[0]
	a.nodes[f].above = Nil // corrupt the back-link
	err := a.Check(root)
	var violation *StructuralInvariantViolation
	if !errors.As(err, &violation) || violation.Node != root {
		t.Errorf("expected invariant violation at root, have %v", err)
	}
}
