/*
Package scanner tokenizes the textual form of grammar rules.

A rule line looks like

	S -> A b | c
	A -> a | {}      { braces enclose commentary; an empty pair denotes ϵ }

Upper case letters are non-terminals, lower case letters are terminals.
Alternatives are separated by '|', left and right side by "->" (or '→').
White space and brace commentary are skipped. Any other character results in
a token of type Illegal, and the error handler of the scanner is called.

The tokenizer is built on lexmachine. The DFA is compiled once per Lexer;
a Scanner is instantiated for each line of input:

	lexer, err := scanner.NewLexer()
	…
	scan, err := lexer.Scanner("S -> A b")
	for token := scan.NextToken(); token.TokType() != scanner.EOF; token = scan.NextToken() {
		…
	}

________________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'llkit.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("llkit.scanner")
}
