package syntax

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sync"

	"github.com/npillmayer/stackscript/scanner"
	"github.com/npillmayer/stackscript/scanner/lexmach"
	"github.com/timtadh/lexmachine"
)

// The tokens representing brackets
var brackets = []string{"[", "]", "(", ")", "{", "}"}

// The operator tokens
var ops = []string{".", ",", ";", "`", ":", "!", "%", "/", "+", "-", "*", "**",
	"|", "&", "^", "<<", ">>", "<", "<=", ">", ">=", "=", "~=", "~", "#", "$"}

// The keyword tokens
var keywords = []string{"true", "false", "not", "and", "or", "if", "while", "do"}

// tokenIds will be set in initTokens()
var tokenIds map[string]int // A map from the token names to their token types

var initOnce sync.Once // monitors one-time initialization
func initTokens() {
	initOnce.Do(func() {
		tokenIds = make(map[string]int)
		tokenIds["ID"] = scanner.Ident
		tokenIds["INT"] = scanner.Int
		tokenIds["FLOAT"] = scanner.Float
		tokenIds["STRING"] = scanner.String
		tokenIds["RAWSTRING"] = scanner.RawString
		id := 10
		for _, group := range [][]string{keywords, brackets, ops} {
			for _, t := range group {
				tokenIds[t] = id
				id++
			}
		}
	})
}

// Lexer creates a new lexmachine lexer for stackscript.
func Lexer() (*lexmach.LMAdapter, error) {
	initTokens()
	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`//[^\n]*`), lexmach.Skip) // skip comments
		lexer.Add([]byte(`\"([^"\\]|\\.)*\"`), makeToken("STRING"))
		lexer.Add([]byte(`\'[^']*\'`), makeToken("RAWSTRING"))
		lexer.Add([]byte(`([a-z]|[A-Z]|_)([a-z]|[A-Z]|[0-9]|_)*`), makeToken("ID"))
		lexer.Add([]byte(`[\+\-]?[0-9]+\.[0-9]+([eE][\+\-]?[0-9]+)?`), makeToken("FLOAT"))
		lexer.Add([]byte(`[\+\-]?[0-9]+[eE][\+\-]?[0-9]+`), makeToken("FLOAT"))
		lexer.Add([]byte(`[\+\-]?[0-9]+`), makeToken("INT"))
		lexer.Add([]byte(`( |\t|\n|\r)+`), lexmach.Skip)
	}
	literals := append(append([]string{}, brackets...), ops...)
	adapter, err := lexmach.NewLMAdapter(init, literals, keywords, tokenIds)
	if err != nil {
		return nil, err
	}
	return adapter, nil
}

func makeToken(s string) lexmachine.Action {
	id, ok := tokenIds[s]
	if !ok {
		panic(fmt.Errorf("unknown token: %s", s))
	}
	return lexmach.MakeToken(s, id)
}
