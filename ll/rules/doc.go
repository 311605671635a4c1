/*
Package rules reads grammars from their textual form.

Input is a list of strings, each holding one or more rules separated by
newlines:

	lines := []string{
		"S -> A b",
		"A -> a | {}",
	}
	g, err := rules.Parse(lines)

Left and right side of a rule are separated by "->". Alternatives are separated
by '|'. An alternative which is blank, consists of commentary only, or is 'ϵ',
denotes the epsilon production. Repeated rules for the same non-terminal add
alternatives.

Parsing fails as a whole on the first malformed rule; no partial grammar is
returned. Errors are of type *RuleError and match ll.ErrMalformedRule.

Analyze and Respond combine parsing with ll.Analyze. Respond packages the
outcome as a status and a message, ready to be handed to a client.

________________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package rules

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'llkit.rules'.
func tracer() tracing.Trace {
	return tracing.Select("llkit.rules")
}
