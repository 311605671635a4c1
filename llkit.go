package llkit

import (
	"fmt"
	"unicode"
)

// --- Grammar symbols -------------------------------------------------------

// SymbolKind classifies grammar symbols.
type SymbolKind int8

// Kinds of grammar symbols.
const (
	NoKind SymbolKind = iota
	NonTerminalKind
	TerminalKind
	EpsilonKind
	EndMarkerKind
)

func (k SymbolKind) String() string {
	switch k {
	case NonTerminalKind:
		return "non-terminal"
	case TerminalKind:
		return "terminal"
	case EpsilonKind:
		return "epsilon"
	case EndMarkerKind:
		return "end-marker"
	}
	return "none"
}

// Symbol is an atomic grammar element, identified by a single character.
// Symbols are values and may be compared with ==.
//
//    llkit.N('A')      // non-terminal A
//    llkit.T('a')      // terminal a
//    llkit.Epsilon     // ϵ
//    llkit.EndMarker   // ←, end of input
//
type Symbol struct {
	Kind SymbolKind
	Char rune
}

// Glyphs for the special symbols.
const (
	EpsilonGlyph   = 'ϵ'
	EndMarkerGlyph = '←'
)

// Epsilon marks the empty production. It never appears together with other symbols
// in a production.
var Epsilon = Symbol{Kind: EpsilonKind, Char: EpsilonGlyph}

// EndMarker denotes end of input. It is used in FOLLOW and SELECT sets only.
var EndMarker = Symbol{Kind: EndMarkerKind, Char: EndMarkerGlyph}

// N creates a non-terminal symbol. r has to be an upper case ASCII letter.
func N(r rune) Symbol {
	if r < 'A' || r > 'Z' {
		panic(fmt.Sprintf("not a non-terminal: %q", r))
	}
	return Symbol{Kind: NonTerminalKind, Char: r}
}

// T creates a terminal symbol. r has to be a lower case ASCII letter.
func T(r rune) Symbol {
	if r < 'a' || r > 'z' {
		panic(fmt.Sprintf("not a terminal: %q", r))
	}
	return Symbol{Kind: TerminalKind, Char: r}
}

// SymbolFor classifies a character. It returns false if r does not denote a
// grammar symbol.
func SymbolFor(r rune) (Symbol, bool) {
	switch {
	case r == EpsilonGlyph:
		return Epsilon, true
	case r == EndMarkerGlyph:
		return EndMarker, true
	case r > unicode.MaxASCII || !unicode.IsLetter(r):
		return Symbol{}, false
	case unicode.IsUpper(r):
		return N(r), true
	}
	return T(r), true
}

// IsNonTerminal is true for non-terminals.
func (s Symbol) IsNonTerminal() bool {
	return s.Kind == NonTerminalKind
}

// IsTerminal is true for terminals. Epsilon and the end marker are not terminals.
func (s Symbol) IsTerminal() bool {
	return s.Kind == TerminalKind
}

// IsEpsilon is true for ϵ.
func (s Symbol) IsEpsilon() bool {
	return s.Kind == EpsilonKind
}

// IsEndMarker is true for ←.
func (s Symbol) IsEndMarker() bool {
	return s.Kind == EndMarkerKind
}

// SymbolCount is the size of the symbol universe: 26 non-terminals,
// 26 terminals, ϵ and ←.
const SymbolCount = 54

// Index returns a dense index for s, 0 ≤ index < SymbolCount, or -1 for
// the zero symbol.
func (s Symbol) Index() int {
	switch s.Kind {
	case NonTerminalKind:
		return int(s.Char - 'A')
	case TerminalKind:
		return 26 + int(s.Char-'a')
	case EpsilonKind:
		return 52
	case EndMarkerKind:
		return 53
	}
	return -1
}

// SymbolAt is the inverse of Index.
func SymbolAt(inx int) Symbol {
	switch {
	case inx < 0 || inx >= SymbolCount:
		return Symbol{}
	case inx < 26:
		return N(rune('A' + inx))
	case inx < 52:
		return T(rune('a' + inx - 26))
	case inx == 52:
		return Epsilon
	}
	return EndMarker
}

// Compare orders symbols by character: non-terminals before terminals, followed by
// ϵ and ←. It is suitable as a comparator for sorted containers.
func Compare(a, b Symbol) int {
	if a.Char < b.Char {
		return -1
	} else if a.Char > b.Char {
		return 1
	}
	return 0
}

func (s Symbol) String() string {
	if s.Kind == NoKind {
		return "<none>"
	}
	return string(s.Char)
}

// --- A general purpose interface for tokens --------------------------------

// TokType is a category type for a Token. Scanners define their own constants.
type TokType int

// Token represents an input token of a grammar rule.
//
// An example would be the arrow separating left and right side of a rule:
//
//    TokType = Arrow       // identifier for this kind of tokens (scanner specific)
//    Lexeme  = "->"        // lexeme as it appeared in the input
//    Span    = 2…4         // occured from column 2 in the rule text
//
type Token interface {
	TokType() TokType
	Lexeme() string
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span denotes a run of columns within a line of input: a start position and the
// position just behind the end.
type Span [2]int // (x…y)

// From returns the start value of a span.
func (s Span) From() int {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() int {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() int {
	return s[1] - s[0]
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
