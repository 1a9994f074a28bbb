package ast

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/npillmayer/combo/term"
)

// NewCursor creates a detached cursor with an empty slot.
func (a *Arena) NewCursor() NodeID {
	return a.alloc(term.CURSOR, "", 1)
}

// IsCursor checks if a node is a cursor.
func (a *Arena) IsCursor(n NodeID) bool {
	return a.valid(n) && a.nodes[n].name == term.CURSOR
}

// Under returns the node in the cursor's slot, or Nil if empty.
func (a *Arena) Under(cursor NodeID) NodeID {
	return a.at(cursor).below[0]
}

// Remove splices a cursor out of its tree, connecting its child directly to
// the cursor's parent at the same position. It returns that position. If the
// cursor is a root, its child becomes a root and ok is false. The cursor is
// detached with an empty slot afterwards.
func (a *Arena) Remove(cursor NodeID) (pos int, ok bool) {
	c := a.at(cursor)
	child, above := c.below[0], c.above
	if child != Nil {
		a.nodes[child].above = above
	}
	pos = -1
	if above != Nil {
		pos = a.Position(cursor)
		a.nodes[above].below[pos] = child
		ok = true
	}
	c.below[0] = Nil
	c.above = Nil
	return pos, ok
}

// InsertBelow inserts a detached cursor between parent and its child at
// position pos, pushing the child one level down.
func (a *Arena) InsertBelow(cursor, parent NodeID, pos int) error {
	if err := a.checkDetached(cursor); err != nil {
		return err
	}
	p := a.at(parent)
	if pos < 0 || pos >= len(p.below) {
		return fmt.Errorf("ast: node %d has no child at position %d", parent, pos)
	}
	child := p.below[pos]
	p.below[pos] = cursor
	c := &a.nodes[cursor]
	c.above = parent
	c.below[0] = child
	if child != Nil {
		a.nodes[child].above = cursor
	}
	return a.checkLinks(cursor)
}

// InsertAbove inserts a detached cursor directly above child, taking over
// child's slot in its parent.
func (a *Arena) InsertAbove(cursor, child NodeID) error {
	if err := a.checkDetached(cursor); err != nil {
		return err
	}
	above := a.at(child).above
	if above != Nil {
		pos := a.Position(child)
		a.nodes[above].below[pos] = cursor
	}
	c := &a.nodes[cursor]
	c.below[0] = child
	c.above = above
	a.nodes[child].above = cursor
	return a.checkLinks(cursor)
}

func (a *Arena) checkDetached(cursor NodeID) error {
	if !a.IsCursor(cursor) {
		return fmt.Errorf("ast: node %d is not a cursor", cursor)
	}
	if c := a.nodes[cursor]; c.above != Nil || c.below[0] != Nil {
		return fmt.Errorf("ast: cursor %d is still attached", cursor)
	}
	return nil
}
