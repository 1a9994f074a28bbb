/*
Package analyst is the client side of the boundary to an analysis service,
which simplifies terms and decides whether they are equal to TOP or BOT.

Terms cross the boundary in token notation: package termlang's Print and
Parse are the only encoding and decoding steps. Tri-valued answers arrive as
a wire enumeration and are decoded one-to-one into Trool values.

The network exchange itself is not part of this package. Clients talk to a
Transport; LocalTransport answers requests in-process, using the simplifier
of package compiler.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package analyst

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'combo.analyst'.
func tracer() tracing.Trace {
	return tracing.Select("combo.analyst")
}
