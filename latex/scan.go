package latex

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sync"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Token types for operands. Operators have already been split off by the
// parser when the scanner comes into play.
const (
	tokNum = iota + 1
	tokIdent
	tokCmd
	tokOpen
	tokClose
)

var tokenNames = map[int]string{
	tokNum:   "NUM",
	tokIdent: "IDENT",
	tokCmd:   "CMD",
	tokOpen:  "OPEN",
	tokClose: "CLOSE",
}

const subscript = `(_([a-zA-Z0-9]|\{[a-zA-Z0-9]+\}))?`

var (
	lexerOnce sync.Once // monitors one-time initialization
	lexer     *lexmachine.Lexer
	lexerErr  error
)

// operandLexer returns the compiled lexer for operands.
func operandLexer() (*lexmachine.Lexer, error) {
	lexerOnce.Do(func() {
		lexer = lexmachine.NewLexer()
		lexer.Add([]byte(`[0-9]+(\.[0-9]+)?`), makeToken(tokNum))
		lexer.Add([]byte(`[a-zA-Z]+`+subscript), makeToken(tokIdent))
		lexer.Add([]byte(`\\[a-zA-Z]+`+subscript), makeToken(tokCmd))
		lexer.Add([]byte(`\(|\[|\{|⟨`), makeToken(tokOpen))
		lexer.Add([]byte(`\)|\]|\}|⟩`), makeToken(tokClose))
		if lexerErr = lexer.Compile(); lexerErr != nil {
			tracer().Errorf("error compiling DFA: %v", lexerErr)
		}
	})
	return lexer, lexerErr
}

func makeToken(id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}

// operandScanner iterates over the operand tokens of a piece of text.
// Clients may skip input by setting the text cursor.
type operandScanner struct {
	input   []byte
	scanner *lexmachine.Scanner
}

func newOperandScanner(text string) (*operandScanner, error) {
	lx, err := operandLexer()
	if err != nil {
		return nil, err
	}
	input := []byte(text)
	s, err := lx.Scanner(input)
	if err != nil {
		return nil, err
	}
	return &operandScanner{input: input, scanner: s}, nil
}

// next returns the next token, or nil at the end of the input.
// Input which does not form a token is reported as an error.
func (sc *operandScanner) next() (*lexmachine.Token, error) {
	tok, err, eof := sc.scanner.Next()
	if err != nil {
		if ui, is := err.(*machines.UnconsumedInput); is {
			sc.scanner.TC = ui.FailTC
			return nil, fmt.Errorf("cannot interpret %q", string(sc.input[ui.StartTC:ui.FailTC]))
		}
		return nil, err
	}
	if eof {
		return nil, nil
	}
	token := tok.(*lexmachine.Token)
	tracer().Debugf("token %s %q at %d", tokenNames[token.Type], string(token.Lexeme), token.TC)
	return token, nil
}

// rest returns the input starting at a token.
func (sc *operandScanner) rest(token *lexmachine.Token) string {
	return string(sc.input[token.TC:])
}

// skipTo moves the text cursor to byte position pos.
func (sc *operandScanner) skipTo(pos int) {
	sc.scanner.TC = pos
}
