package ast

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
	"strings"
)

// Direction is a direction of cursor movement.
type Direction int

// Directions for TryMove.
const (
	Up Direction = iota
	Down
	Left
	Right
)

var directionNames = []string{"Up", "Down", "Left", "Right"}

func (d Direction) String() string {
	if d < Up || d > Right {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// ParseDirection accepts the direction names Up, Down, Left and Right,
// ignoring case, as well as their initials U, D, L and R.
func ParseDirection(s string) (Direction, error) {
	for i, name := range directionNames {
		if strings.EqualFold(s, name) || strings.EqualFold(s, name[:1]) {
			return Direction(i), nil
		}
	}
	return Up, fmt.Errorf("ast: not a direction: %q", s)
}

// TryMove moves a cursor one step into direction d. If no move is possible
// it returns false and leaves the cursor unchanged.
//
// Up wraps the cursor's parent, Down wraps the first child of the node under
// the cursor. Left and Right walk the tree in order: a node with children is
// left by descending into its last (resp. first) child down to a leaf, a
// leaf by walking up to the nearest enclosing node with a sibling to the left
// (resp. right) and descending into that sibling.
func (a *Arena) TryMove(cursor NodeID, d Direction) bool {
	if !a.IsCursor(cursor) || a.Under(cursor) == Nil {
		return false
	}
	var target NodeID
	switch d {
	case Up:
		target = a.nodes[cursor].above
	case Down:
		pivot := a.Under(cursor)
		if len(a.nodes[pivot].below) == 0 {
			return false
		}
		a.Remove(cursor)
		if err := a.InsertBelow(cursor, pivot, 0); err != nil {
			a.failedMove(cursor, d, err)
			return false
		}
		tracer().Debugf("cursor moved %s", d)
		return true
	case Left:
		target = a.traverseLeft(a.Under(cursor))
	case Right:
		target = a.traverseRight(a.Under(cursor))
	default:
		return false
	}
	if target == Nil {
		return false
	}
	a.Remove(cursor)
	if err := a.InsertAbove(cursor, target); err != nil {
		a.failedMove(cursor, d, err)
		return false
	}
	tracer().Debugf("cursor moved %s", d)
	return true
}

// failedMove reports a cursor which could not be re-inserted after having
// been removed. The tree is inconsistent at this point.
func (a *Arena) failedMove(cursor NodeID, d Direction, err error) {
	var v *StructuralInvariantViolation
	if errors.As(err, &v) {
		return // already reported by checkLinks
	}
	violation(cursor, "cannot move cursor %s: %v", d, err)
}

func (a *Arena) downLeft(n NodeID) NodeID {
	for len(a.nodes[n].below) > 0 && a.nodes[n].below[0] != Nil {
		n = a.nodes[n].below[0]
	}
	return n
}

func (a *Arena) downRight(n NodeID) NodeID {
	for len(a.nodes[n].below) > 0 && a.nodes[n].below[len(a.nodes[n].below)-1] != Nil {
		below := a.nodes[n].below
		n = below[len(below)-1]
	}
	return n
}

func (a *Arena) traverseLeft(n NodeID) NodeID {
	if len(a.nodes[n].below) > 0 {
		return a.downRight(n)
	}
	for above := a.nodes[n].above; above != Nil; above = a.nodes[n].above {
		if pos := a.Position(n); pos > 0 {
			return a.downRight(a.nodes[above].below[pos-1])
		}
		n = above
	}
	return Nil
}

func (a *Arena) traverseRight(n NodeID) NodeID {
	if len(a.nodes[n].below) > 0 {
		return a.downLeft(n)
	}
	for above := a.nodes[n].above; above != Nil; above = a.nodes[n].above {
		below := a.nodes[above].below
		if pos := a.Position(n); pos < len(below)-1 {
			return a.downLeft(below[pos+1])
		}
		n = above
	}
	return Nil
}
