package scanner

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/npillmayer/llkit"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Token types for rule input.
const (
	EOF     llkit.TokType = -1
	Illegal llkit.TokType = iota // unexpected input
	NonTerm                      // 'A' … 'Z'
	Term                         // 'a' … 'z'
	Arrow                        // "->" or '→'
	Bar                          // '|'
	Epsilon                      // 'ϵ'
)

var tokenNames = map[llkit.TokType]string{
	EOF:     "EOF",
	Illegal: "Illegal",
	NonTerm: "NonTerm",
	Term:    "Term",
	Arrow:   "Arrow",
	Bar:     "Bar",
	Epsilon: "Epsilon",
}

// TokenName returns a readable name for a token type.
func TokenName(t llkit.TokType) string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokType(%d)", t)
}

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() llkit.Token
	SetErrorHandler(func(error))
}

// --- Lexer -----------------------------------------------------------------

// Lexer holds a compiled DFA for rule input.
type Lexer struct {
	lexer *lexmachine.Lexer
}

// NewLexer creates a lexer for rule input. It will return an error if compiling
// the DFA failed.
func NewLexer() (*Lexer, error) {
	lexer := lexmachine.NewLexer()
	lexer.Add([]byte(`\{[^}]*\}`), Skip)
	lexer.Add([]byte(`( |\t|\r|\n)+`), Skip)
	lexer.Add([]byte(`[A-Z]`), MakeToken(NonTerm))
	lexer.Add([]byte(`[a-z]`), MakeToken(Term))
	lexer.Add([]byte(`\-\>`), MakeToken(Arrow))
	lexer.Add([]byte(`→`), MakeToken(Arrow))
	lexer.Add([]byte(`\|`), MakeToken(Bar))
	lexer.Add([]byte(string(llkit.EpsilonGlyph)), MakeToken(Epsilon))
	if err := lexer.Compile(); err != nil {
		tracer().Errorf("error compiling DFA: %v", err)
		return nil, err
	}
	return &Lexer{lexer: lexer}, nil
}

// Scanner creates a scanner for a given input. The scanner implements the
// Tokenizer interface.
func (l *Lexer) Scanner(input string) (*Scanner, error) {
	s, err := l.lexer.Scanner([]byte(input))
	if err != nil {
		return nil, err
	}
	return &Scanner{scanner: s, input: input, length: len(input), Error: logError}, nil
}

// --- Scanner ---------------------------------------------------------------

// Scanner tokenizes a single input string.
type Scanner struct {
	scanner *lexmachine.Scanner
	input   string
	length  int         // length of input in bytes
	Error   func(error) // error handler
}

var _ Tokenizer = (*Scanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
func (s *Scanner) SetErrorHandler(h func(error)) {
	if h == nil {
		s.Error = logError
		return
	}
	s.Error = h
}

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// NextToken is part of the Tokenizer interface. Input which cannot be matched
// is reported to the error handler and returned as a token of type Illegal.
// Spans are byte offsets into the input.
func (s *Scanner) NextToken() llkit.Token {
	tok, err, eof := s.scanner.Next()
	if err != nil {
		s.Error(err)
		var ui *machines.UnconsumedInput
		if errors.As(err, &ui) {
			from, to := ui.StartTC, ui.FailTC
			if to <= from {
				_, w := utf8.DecodeRuneInString(s.input[from:])
				to = from + w
			}
			for to < s.length && !utf8.RuneStart(s.input[to]) {
				to++ // do not split a multi-byte character
			}
			if to > s.length {
				to = s.length
			}
			s.scanner.TC = to
			return MakeRuleToken(Illegal, s.input[from:to], llkit.Span{from, to})
		}
		s.scanner.TC = s.length
		return MakeRuleToken(Illegal, "", llkit.Span{s.length, s.length})
	}
	if eof {
		return MakeRuleToken(EOF, "", llkit.Span{s.length, s.length})
	}
	token := tok.(*lexmachine.Token)
	tracer().Debugf("token %s %q @%d", TokenName(llkit.TokType(token.Type)), token.Lexeme, token.TC)
	return MakeRuleToken(
		llkit.TokType(token.Type),
		string(token.Lexeme),
		llkit.Span{token.TC, token.TC + len(token.Lexeme)},
	)
}

// Tokens scans a complete input string. Illegal tokens are included in the
// result; the error returned is the first one encountered.
func (l *Lexer) Tokens(input string) ([]llkit.Token, error) {
	scan, err := l.Scanner(input)
	if err != nil {
		return nil, err
	}
	var first error
	scan.SetErrorHandler(func(e error) {
		if first == nil {
			first = e
		}
	})
	var tokens []llkit.Token
	for token := scan.NextToken(); token.TokType() != EOF; token = scan.NextToken() {
		tokens = append(tokens, token)
	}
	return tokens, first
}

// --- Tokens ----------------------------------------------------------------

// RuleToken is the token type produced by Scanner.
type RuleToken struct {
	kind   llkit.TokType
	lexeme string
	span   llkit.Span
}

// MakeRuleToken creates a token.
func MakeRuleToken(typ llkit.TokType, lexeme string, span llkit.Span) RuleToken {
	return RuleToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

func (t RuleToken) TokType() llkit.TokType {
	return t.kind
}

func (t RuleToken) Lexeme() string {
	return t.lexeme
}

func (t RuleToken) Span() llkit.Span {
	return t.span
}

func (t RuleToken) String() string {
	return fmt.Sprintf("%s(%q)%v", TokenName(t.kind), t.lexeme, t.span)
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token.
func MakeToken(typ llkit.TokType) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(typ), string(m.Bytes), m), nil
	}
}
