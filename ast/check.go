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
	"github.com/npillmayer/schuko/gconf"
)

// StructuralInvariantViolation reports a node whose parent and child links
// disagree. It always signals a defect, never a user error.
type StructuralInvariantViolation struct {
	Node   NodeID
	Reason string
}

func (e *StructuralInvariantViolation) Error() string {
	return fmt.Sprintf("ast: structural invariant violated at node %d: %s", e.Node, e.Reason)
}

func violation(n NodeID, format string, args ...interface{}) error {
	err := &StructuralInvariantViolation{Node: n, Reason: fmt.Sprintf(format, args...)}
	tracer().Errorf("%v", err)
	if gconf.GetBool("panic-on-invariant-violation") {
		panic(`Crosslinked tree is inconsistent.

Configuration flag panic-on-invariant-violation is set to true. It is aimed at
helping to debug cursor operations. If you did not expect this to panic, please
unset panic-on-invariant-violation to its default (false).

` + err.Error())
	}
	return err
}

// checkLinks verifies the links between n, its parent and its children.
func (a *Arena) checkLinks(n NodeID) error {
	nd := a.at(n)
	if nd.above != Nil {
		if !a.valid(nd.above) {
			return violation(n, "parent %d is not a live node", nd.above)
		}
		if pos := a.Position(n); pos < 0 {
			return violation(n, "not found below parent %d", nd.above)
		}
	}
	for i, child := range nd.below {
		if child == Nil {
			if !a.IsCursor(n) {
				return violation(n, "empty child slot %d", i)
			}
			continue
		}
		if !a.valid(child) {
			return violation(n, "child %d is not a live node", child)
		}
		if a.nodes[child].above != n {
			return violation(n, "child %d at position %d points to parent %d", child, i, a.nodes[child].above)
		}
	}
	return nil
}

// Check verifies the parent/child links of the whole tree containing n.
func (a *Arena) Check(n NodeID) error {
	todo := arraystack.New()
	todo.Push(a.Root(n))
	for !todo.Empty() {
		top, _ := todo.Pop()
		n = top.(NodeID)
		if err := a.checkLinks(n); err != nil {
			return err
		}
		for _, child := range a.nodes[n].below {
			if child != Nil {
				todo.Push(child)
			}
		}
	}
	return nil
}
