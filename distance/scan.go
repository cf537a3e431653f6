package distance

/*
BSD License

Copyright (c) 2019–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.  */

import (
	"errors"
	"fmt"
	"sync"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Token values for the parts of a distance literal
const (
	tokNumber int = iota + 1
	tokSuffix
)

// Distance literals are of the form
//
//     distance := number unit?
//     number   := [0-9,.]+
//     unit     := non-digit, then any remaining characters
//
// The number is matched greedily, thus a unit never starts with a
// separator character.
var patterns = []struct {
	regex string
	tok   int
}{
	{`[0-9,\.]+`, tokNumber},
	{`[^0-9,\.][^\n]*`, tokSuffix},
}

var lexer *lexmachine.Lexer
var lexerErr error
var initOnce sync.Once // monitors one-time compilation of the lexer

func initLexer() error {
	initOnce.Do(func() {
		lexer = lexmachine.NewLexer()
		for _, p := range patterns {
			lexer.Add([]byte(p.regex), makeToken(p.tok))
		}
		if lexerErr = lexer.Compile(); lexerErr != nil {
			tracer().Errorf("cannot compile distance lexer: %v", lexerErr)
		}
	})
	return lexerErr
}

func makeToken(id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}

var errNoNumber = errors.New("distance must start with a number")

// split splits a trimmed distance literal into its number part and its unit
// suffix. The suffix is empty if the literal does not carry a unit.
func split(text string) (number string, suffix string, err error) {
	if err = initLexer(); err != nil {
		return
	}
	scanner, err := lexer.Scanner([]byte(text))
	if err != nil {
		return
	}
	tokcnt := 0
	for tok, serr, eos := scanner.Next(); !eos; tok, serr, eos = scanner.Next() {
		if serr != nil {
			return "", "", serr
		}
		token := tok.(*lexmachine.Token)
		switch {
		case tokcnt == 0 && token.Type == tokNumber:
			number = token.Value.(string)
		case tokcnt == 1 && token.Type == tokSuffix:
			suffix = token.Value.(string)
		case tokcnt == 0:
			return "", "", errNoNumber
		default:
			return "", "", fmt.Errorf("unexpected input %q", token.Value)
		}
		tokcnt++
	}
	if number == "" {
		return "", "", errNoNumber
	}
	return
}
