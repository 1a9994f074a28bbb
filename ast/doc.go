/*
Package ast implements crosslinked syntax trees for terms, with a cursor
for structural editing.

Nodes live in an Arena and are addressed by NodeID. Every node owns an
ordered list of children ("below") and refers to its parent ("above"),
which is Nil for roots. For every non-root node n the arena guarantees

    Below(Above(n))[Position(n)] == n

after every operation. A cursor is a node of symbol CURSOR with a single
child, the term currently under the cursor. Moving the cursor splices it
out of the tree and in again at a new position:

    arena := ast.NewArena(nil)
    root, _ := arena.Load(t)
    c := arena.NewCursor()
    arena.InsertAbove(c, root)
    arena.TryMove(c, ast.Down)

Arenas are not safe for concurrent use.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ast

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'combo.ast'.
func tracer() tracing.Trace {
	return tracing.Select("combo.ast")
}
