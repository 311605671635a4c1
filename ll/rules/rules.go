package rules

import (
	"fmt"
	"strings"

	"github.com/npillmayer/llkit"
	"github.com/npillmayer/llkit/ll"
	"github.com/npillmayer/llkit/ll/scanner"
)

// RuleError describes a malformed rule.
type RuleError struct {
	Line  int        // line number, starting at 1
	Span  llkit.Span // byte columns within the line
	Input string     // text of the line
	Msg   string
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("%s: line %d, column %d: %s", ll.ErrMalformedRule, e.Line,
		e.Span.From()+1, e.Msg)
}

// Unwrap makes errors.Is(err, ll.ErrMalformedRule) work.
func (e *RuleError) Unwrap() error {
	return ll.ErrMalformedRule
}

// Parse reads a grammar named "G" from rule strings.
func Parse(lines []string) (*ll.Grammar, error) {
	return ParseGrammar("G", lines)
}

// ParseGrammar reads a grammar from rule strings. Input without any rule
// results in ll.ErrEmptyGrammar.
func ParseGrammar(name string, lines []string) (*ll.Grammar, error) {
	lexer, err := scanner.NewLexer()
	if err != nil {
		return nil, err
	}
	b := ll.NewGrammarBuilder(name)
	lineno := 0
	for _, chunk := range lines {
		for _, line := range strings.Split(chunk, "\n") {
			lineno++
			A, prods, err := parseLine(lexer, lineno, line)
			if err != nil {
				tracer().Errorf(err.Error())
				return nil, err
			}
			if A.Kind == llkit.NoKind {
				continue // blank line
			}
			b.Define(A, prods...)
		}
	}
	g, err := b.Grammar()
	if err != nil {
		return nil, err
	}
	tracer().Debugf("parsed grammar %q with %d rules", g.Name, g.Size())
	return g, nil
}

var noSymbol = llkit.Symbol{}

// parseLine reads a single rule "N -> α | β | …". For blank lines it returns
// the zero symbol.
func parseLine(lexer *scanner.Lexer, lineno int, line string) (llkit.Symbol, []ll.Production, error) {
	fail := func(span llkit.Span, format string, args ...interface{}) error {
		return &RuleError{
			Line:  lineno,
			Span:  span,
			Input: line,
			Msg:   fmt.Sprintf(format, args...),
		}
	}
	tokens, _ := lexer.Tokens(line)
	if len(tokens) == 0 {
		return noSymbol, nil, nil
	}
	for _, token := range tokens {
		if token.TokType() == scanner.Illegal {
			return noSymbol, nil, fail(token.Span(), "unexpected character %q", token.Lexeme())
		}
	}
	arrow := -1
	for i, token := range tokens {
		if token.TokType() == scanner.Arrow {
			arrow = i
			break
		}
	}
	if arrow < 0 {
		return noSymbol, nil, fail(llkit.Span{0, len(line)}, "missing '->'")
	}
	lhs := tokens[0]
	if arrow != 1 || lhs.TokType() != scanner.NonTerm {
		span := llkit.Span{lhs.Span().From(), tokens[arrow].Span().From()}
		return noSymbol, nil, fail(span, "left side must be a single upper case letter")
	}
	A, _ := llkit.SymbolFor([]rune(lhs.Lexeme())[0])
	var prods []ll.Production
	alt := ll.Production{}
	epsilon := false
	var epsilonAt llkit.Span
	closeAlt := func() error {
		switch {
		case epsilon && len(alt) > 0:
			return fail(epsilonAt, "ϵ mixed with other symbols")
		case epsilon || len(alt) == 0:
			prods = append(prods, ll.EpsilonProduction())
		default:
			prods = append(prods, alt)
		}
		alt, epsilon = ll.Production{}, false
		return nil
	}
	for _, token := range tokens[arrow+1:] {
		switch token.TokType() {
		case scanner.NonTerm, scanner.Term:
			X, _ := llkit.SymbolFor([]rune(token.Lexeme())[0])
			alt = append(alt, X)
		case scanner.Epsilon:
			epsilon, epsilonAt = true, token.Span()
		case scanner.Bar:
			if err := closeAlt(); err != nil {
				return noSymbol, nil, err
			}
		case scanner.Arrow:
			return noSymbol, nil, fail(token.Span(), "more than one '->' in rule")
		}
	}
	if err := closeAlt(); err != nil {
		return noSymbol, nil, err
	}
	tracer().Debugf("line %d: %s -> %v", lineno, A, prods)
	return A, prods, nil
}
