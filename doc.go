/*
Package llkit is a toolbox for the static analysis of LL(1) grammars.

It computes the data needed to build a predictive parser for a context-free
grammar: nullable non-terminals, FIRST sets, FOLLOW sets and SELECT sets,
together with a set of derived relations between grammar symbols.
Package structure is as follows:

■ ll: Package ll implements the grammar model and the analysis pipeline,
together with a heuristic LL(1) conformance check.

■ ll/relation: Package relation implements binary relations over grammar symbols
and their transitive and reflexive closures.

■ ll/rules: Package rules reads grammar rules from text.

The base package contains data types which are used throughout all the other packages.

Symbols are single characters: upper case letters are non-terminals, lower case
letters are terminals. Two special symbols exist, ϵ for the empty production
and ← for end of input.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package llkit
