/*
Package pattern implements ordered, first-match-wins pattern dispatch over
flat terms.

A pattern is a term built from symbol constructors and pattern variables.
A pattern variable matches any sub-term and binds it by name; a constructor
pattern matches a term with the same head symbol and matching children.
Match compiles an ordered list of clauses (pattern plus handler) into a
function. The function tries the clauses in declaration order and calls the
handler of the first matching clause:

    x := pattern.Variable("x")
    y := pattern.Variable("y")
    var t pattern.Matcher
    t = pattern.Match(
        pattern.Clause{term.App(x, y), func(m pattern.Bindings, _ ...interface{}) (*term.Term, error) {
            …
        }},
        pattern.Clause{x, …},
    )

Order matters: earlier, more specific patterns shadow later, general ones.
Matching is purely structural. Each variable name is assumed to occur at most
once per pattern; there is no consistency check between repeated names.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pattern
