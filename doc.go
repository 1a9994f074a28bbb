/*
Package combo is a toolbox for a symbolic language over an extensional
combinatory algebra.

The language knows the constants TOP, BOT, I, K, B, C, W, S, J, R, binder
forms (LAMBDA, LETREC, DEFINE, LET) and structural forms (APP, COMP, JOIN,
RAND, QUOTE). Terms come in two representations: a flat, serializable form
used for parsing, printing and rewriting, and a back-linked tree used for
interactive, cursor-based editing. Package structure is as follows:

■ term: Package term implements the flat term representation.

■ symtab: Package symtab registers every term constructor by name and arity.

■ termlang: Package termlang parses and prints the prefix token language.

■ pattern: Package pattern implements first-match-wins pattern dispatch over terms.

■ compiler: Package compiler implements combinator simplification, bracket
abstraction and decompilation to a readable lambda form.

■ ast: Package ast implements a crosslinked AST with an editing cursor.

■ analyst: Package analyst defines the boundary to a remote analysis service.

■ termlang/crepl: An interactive command line tool for experiments with terms.

The base package contains token types which are used by the scanner.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package combo
