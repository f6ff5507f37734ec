package constraint

import (
	"fmt"
	"strings"

	"github.com/npillmayer/gorgo/lr/scanner"
)

// TokenType is the type of tokens produced by a Tokenizer.
type TokenType int

// Tokenizers produce alternating literal and bracket tokens. Literals may be
// empty, brackets always consist of a single character.
const (
	Literal  TokenType = iota + 1 // run of text without brackets
	LBracket                      // '['
	RBracket                      // ']'
)

func (tt TokenType) String() string {
	switch tt {
	case Literal:
		return "Literal"
	case LBracket:
		return "LBracket"
	case RBracket:
		return "RBracket"
	case TokenType(scanner.EOF):
		return "EOF"
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// Token is a lexeme of a constraint, together with its byte position.
type Token struct {
	Type TokenType
	Text string
	Pos  uint64
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%d", t.Type, t.Text, t.Pos)
}

// Tokenizer splits a constraint at brackets, keeping the brackets as tokens
// of their own. It implements the scanner.Tokenizer interface of gorgo.
//
// The token sequence always starts and ends with a literal and alternates
// between literals and brackets:
//
//    "a[+voice]"  →  "a" "[" "+voice" "]" ""
//
// Literals between two adjacent brackets are empty.
type Tokenizer struct {
	input     string
	pos       int
	expectLit bool
	done      bool
}

// NewTokenizer creates a tokenizer for a constraint string.
func NewTokenizer(input string) *Tokenizer {
	tok := &Tokenizer{}
	tok.Reset(input)
	return tok
}

// Reset re-initializes a tokenizer for a new input.
func (tok *Tokenizer) Reset(input string) {
	tok.input = input
	tok.pos = 0
	tok.expectLit = true
	tok.done = false
}

// NextToken returns the next token of the input. The expected token types
// are ignored; clients usually pass scanner.AnyToken.
// Returns the token type, the token's text, its position and its length.
// At the end of input, the token type is scanner.EOF.
func (tok *Tokenizer) NextToken(expected []int) (int, interface{}, uint64, uint64) {
	if tok.done {
		return scanner.EOF, "", uint64(len(tok.input)), 0
	}
	start := tok.pos
	if tok.expectLit {
		tok.expectLit = false
		end := strings.IndexAny(tok.input[start:], "[]")
		if end < 0 {
			tok.pos = len(tok.input)
			tok.done = true
		} else {
			tok.pos = start + end
		}
		lexeme := tok.input[start:tok.pos]
		tracer().Debugf("literal %q at %d", lexeme, start)
		return int(Literal), lexeme, uint64(start), uint64(len(lexeme))
	}
	tok.expectLit = true
	tok.pos++
	if tok.input[start] == '[' {
		return int(LBracket), "[", uint64(start), 1
	}
	return int(RBracket), "]", uint64(start), 1
}

// SetErrorHandler is part of interface scanner.Tokenizer. Tokenizing
// constraints cannot fail, so h is ignored. Unbalanced brackets are
// reported by Parse.
func (tok *Tokenizer) SetErrorHandler(h func(error)) {}

var _ scanner.Tokenizer = (*Tokenizer)(nil)

// Split tokenizes a constraint completely.
func Split(input string) []Token {
	return NewTokenizer(input).All()
}

// All collects all the remaining tokens of tok.
func (tok *Tokenizer) All() []Token {
	tokens := make([]Token, 0, 2*strings.Count(tok.input, "[")+3)
	for {
		tt, lexeme, pos, _ := tok.NextToken(scanner.AnyToken)
		if tt == scanner.EOF {
			break
		}
		tokens = append(tokens, Token{Type: TokenType(tt), Text: lexeme.(string), Pos: pos})
	}
	return tokens
}
