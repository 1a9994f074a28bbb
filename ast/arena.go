package ast

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/combo/symtab"
	"github.com/npillmayer/combo/term"
	"golang.org/x/exp/slices"
)

// NodeID addresses a node within an Arena.
type NodeID int

// Nil is the NodeID of no node, e.g. the parent of a root.
const Nil NodeID = -1

type node struct {
	name  string
	ident string   // identifier of VAR nodes
	below []NodeID // owned children
	above NodeID   // parent or Nil
	live  bool
}

// Arena holds the nodes of one or more crosslinked trees. Released nodes are
// recycled by subsequent loads.
type Arena struct {
	table *symtab.Table
	nodes []node
	free  *arraystack.Stack // of NodeID
}

// NewArena creates an empty arena. Terms loaded into the arena are checked
// against table, which defaults to the standard language.
func NewArena(table *symtab.Table) *Arena {
	if table == nil {
		table = symtab.Language()
	}
	return &Arena{
		table: table,
		free:  arraystack.New(),
	}
}

func (a *Arena) alloc(name, ident string, arity int) NodeID {
	n := node{name: name, ident: ident, below: make([]NodeID, arity), above: Nil, live: true}
	for i := range n.below {
		n.below[i] = Nil
	}
	if id, ok := a.free.Pop(); ok {
		a.nodes[id.(NodeID)] = n
		return id.(NodeID)
	}
	a.nodes = append(a.nodes, n)
	return NodeID(len(a.nodes) - 1)
}

func (a *Arena) valid(n NodeID) bool {
	return n >= 0 && int(n) < len(a.nodes) && a.nodes[n].live
}

func (a *Arena) at(n NodeID) *node {
	if !a.valid(n) {
		panic(fmt.Sprintf("ast: access to invalid node %d", n))
	}
	return &a.nodes[n]
}

// Load indexes a term, allocating a node for every sub-term and wiring
// back-references from children to parents. The root of the new tree is
// returned. Terms with unknown symbols or wrong argument counts are
// rejected, leaving the arena unchanged.
func (a *Arena) Load(t *term.Term) (NodeID, error) {
	if err := a.validate(t); err != nil {
		return Nil, err
	}
	return a.load(t), nil
}

func (a *Arena) validate(t *term.Term) error {
	sym, err := a.table.Resolve(t.Name)
	if err != nil {
		return err
	}
	if sym.HasPayload() {
		if len(t.Args) != 0 || t.Ident == "" {
			return &symtab.ArityError{Symbol: sym.Name(), Arity: sym.Arity(), Got: len(t.Args)}
		}
		return nil
	}
	if len(t.Args) != sym.Arity() {
		return &symtab.ArityError{Symbol: sym.Name(), Arity: sym.Arity(), Got: len(t.Args)}
	}
	for _, arg := range t.Args {
		if err = a.validate(arg); err != nil {
			return err
		}
	}
	return nil
}

func (a *Arena) load(t *term.Term) NodeID {
	n := a.alloc(t.Name, t.Ident, len(t.Args))
	for i, arg := range t.Args {
		child := a.load(arg)
		a.nodes[n].below[i] = child
		a.nodes[child].above = n
	}
	return n
}

// Dump flattens the tree below n back into a term. Dump(Load(t)) equals t.
// An empty cursor slot is dumped as HOLE.
func (a *Arena) Dump(n NodeID) *term.Term {
	if n == Nil {
		return term.Leaf(term.HOLE)
	}
	nd := a.at(n)
	if nd.name == term.VAR {
		return term.Var(nd.ident)
	}
	if len(nd.below) == 0 {
		return term.Leaf(nd.name)
	}
	args := make([]*term.Term, len(nd.below))
	for i, child := range nd.below {
		args[i] = a.Dump(child)
	}
	return term.Node(nd.name, args...)
}

// Name returns the symbol name of a node.
func (a *Arena) Name(n NodeID) string {
	return a.at(n).name
}

// Ident returns the identifier of a VAR node, or "".
func (a *Arena) Ident(n NodeID) string {
	return a.at(n).ident
}

// Above returns the parent of a node, or Nil for roots.
func (a *Arena) Above(n NodeID) NodeID {
	return a.at(n).above
}

// Below returns a copy of the list of children of a node.
func (a *Arena) Below(n NodeID) []NodeID {
	return slices.Clone(a.at(n).below)
}

// Position returns the index of n within its parent's children, or -1 for
// roots.
func (a *Arena) Position(n NodeID) int {
	above := a.at(n).above
	if above == Nil {
		return -1
	}
	return slices.Index(a.at(above).below, n)
}

// Root follows parent links up from n.
func (a *Arena) Root(n NodeID) NodeID {
	for a.at(n).above != Nil {
		n = a.nodes[n].above
	}
	return n
}

// Len returns the number of live nodes in the arena.
func (a *Arena) Len() int {
	return len(a.nodes) - a.free.Size()
}

// Release frees a detached tree. Its nodes are recycled by later loads and
// must not be used any more.
func (a *Arena) Release(n NodeID) error {
	if a.at(n).above != Nil {
		return fmt.Errorf("ast: cannot release node %d, it is still attached to %d", n, a.nodes[n].above)
	}
	a.release(n)
	return nil
}

func (a *Arena) release(n NodeID) {
	for _, child := range a.nodes[n].below {
		if child != Nil {
			a.release(child)
		}
	}
	a.nodes[n] = node{above: Nil}
	a.free.Push(n)
}

// Replace loads t and puts it into the place of node n, which is released
// together with its subtree. The root of the new subtree is returned.
func (a *Arena) Replace(n NodeID, t *term.Term) (NodeID, error) {
	above, pos := a.at(n).above, a.Position(n)
	r, err := a.Load(t)
	if err != nil {
		return Nil, err
	}
	if above != Nil {
		a.nodes[above].below[pos] = r
		a.nodes[r].above = above
		a.nodes[n].above = Nil
	}
	a.release(n)
	tracer().Debugf("replaced node %d by %s", n, t)
	return r, nil
}
