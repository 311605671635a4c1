package ll

import (
	"errors"
	"fmt"

	"github.com/npillmayer/llkit"
)

// Errors reported by grammar construction and analysis. Clients should test
// with errors.Is.
var (
	ErrMalformedRule = errors.New("malformed grammar rule")
	ErrEmptyGrammar  = errors.New("grammar input cannot be empty")
	ErrNotLL1        = errors.New("grammar is not LL(1)")
)

// LL1ErrorKind tells why a grammar has been rejected by CheckLL1.
type LL1ErrorKind int8

// Reasons for rejecting a grammar.
const (
	LeftRecursion LL1ErrorKind = iota + 1
	FirstFirstConflict
)

// LL1Error is returned by CheckLL1 and Analyze for rejected grammars.
type LL1Error struct {
	Kind        LL1ErrorKind
	NonTerminal llkit.Symbol
	Rule        *Rule        // offending rule
	Other       *Rule        // for conflicts: the rule Rule conflicts with
	Symbol      llkit.Symbol // for conflicts: the common FIRST symbol
}

func (e *LL1Error) Error() string {
	switch e.Kind {
	case LeftRecursion:
		return fmt.Sprintf("%s: direct left recursion detected in rule %v", ErrNotLL1, e.Rule)
	case FirstFirstConflict:
		return fmt.Sprintf("%s: productions for %s have a common prefix %s (%v | %v)",
			ErrNotLL1, e.NonTerminal, e.Symbol, e.Other.RHS(), e.Rule.RHS())
	}
	return ErrNotLL1.Error()
}

// Unwrap makes errors.Is(err, ErrNotLL1) work.
func (e *LL1Error) Unwrap() error {
	return ErrNotLL1
}
