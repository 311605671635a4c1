/*
Package llrepl/main provides an interactive command line tool (LL.REPL)
for LL(1) grammar analysis. Users enter grammar rules line by line, in the
notation of package rules, and run the analysis with ":run". The report
lists every step of the analysis, from nullable non-terminals to SELECT sets.

Commands:

	:run       analyse the rules entered so far and print the report
	:check     run the LL(1) heuristic check only
	:grammar   list the rules entered so far
	:reset     forget all rules
	:help      list commands
	:quit      leave LL.REPL (<ctrl>D works as well)

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'llkit.repl'
func tracer() tracing.Trace {
	return tracing.Select("llkit.repl")
}
