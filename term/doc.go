/*
Package term implements the flat representation of terms of the combinator
language.

A flat term is either a bare symbol name (a 0-ary constant like K) or a
symbol name applied to an ordered sequence of sub-terms, as in APP(K, VAR x).
VAR is the one symbol which carries an identifier payload instead of
sub-terms. Flat terms are the wire form of the language: they print to
whitespace-separated tokens in prefix notation (see package termlang) and
are the unit of rewriting (see package compiler).

Terms are treated as immutable values. Operations never modify a term in
place, which allows sub-terms to be shared freely between terms.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package term
