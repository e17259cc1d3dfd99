// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package parser

import (
	"fmt"

	"github.com/consensys/go-linkir/pkg/util/source"
	"github.com/consensys/go-linkir/pkg/util/source/lex"
)

// END_OF signals "end of file"
const END_OF uint = 0

// WHITESPACE signals whitespace
const WHITESPACE uint = 1

// COMMENT signals "// ... \n"
const COMMENT uint = 2

// LBRACE signals "("
const LBRACE uint = 3

// RBRACE signals ")"
const RBRACE uint = 4

// LCURLY signals "{"
const LCURLY uint = 5

// RCURLY signals "}"
const RCURLY uint = 6

// COMMA signals ","
const COMMA uint = 7

// COLON signals ":"
const COLON uint = 8

// SEMICOLON signals ";"
const SEMICOLON uint = 9

// NUMBER signals an integer literal
const NUMBER uint = 10

// IDENTIFIER signals a variable name
const IDENTIFIER uint = 20

// KEYWORD_IF signals "if"
const KEYWORD_IF uint = 21

// KEYWORD_WHILE signals "while"
const KEYWORD_WHILE uint = 22

// KEYWORD_FOR signals "for"
const KEYWORD_FOR uint = 23

// KEYWORD_SWITCH signals "switch"
const KEYWORD_SWITCH uint = 24

// KEYWORD_CASE signals "case"
const KEYWORD_CASE uint = 25

// KEYWORD_DEFAULT signals "default"
const KEYWORD_DEFAULT uint = 26

// KEYWORD_INPUT signals "input"
const KEYWORD_INPUT uint = 27

// KEYWORD_OUTPUT signals "output"
const KEYWORD_OUTPUT uint = 28

// EQUALS signals "="
const EQUALS uint = 30

// NOT_EQUALS signals "!="
const NOT_EQUALS uint = 31

// LESS_THAN signals "<"
const LESS_THAN uint = 32

// GREATER_THAN signals ">"
const GREATER_THAN uint = 33

// ADD signals "+"
const ADD uint = 34

// SUB signals "-"
const SUB uint = 35

// MUL signals "*"
const MUL uint = 36

// DIV signals "/"
const DIV uint = 37

// KEYWORDS maps the text of each keyword to its token kind.  Keywords are
// lexed as identifiers first, so that (for example) "iffy" remains an
// identifier.
var KEYWORDS = map[string]uint{
	"if":      KEYWORD_IF,
	"while":   KEYWORD_WHILE,
	"for":     KEYWORD_FOR,
	"switch":  KEYWORD_SWITCH,
	"case":    KEYWORD_CASE,
	"default": KEYWORD_DEFAULT,
	"input":   KEYWORD_INPUT,
	"output":  KEYWORD_OUTPUT,
}

// Rule for describing whitespace
var whitespace lex.Scanner[rune] = lex.Many(lex.Or(lex.Unit(' '), lex.Unit('\t'), lex.Unit('\r'), lex.Unit('\n')))

// Rule for describing numbers
var number lex.Scanner[rune] = lex.Many(lex.Within('0', '9'))

var identifierStart lex.Scanner[rune] = lex.Or(
	lex.Unit('_'),
	lex.Within('a', 'z'),
	lex.Within('A', 'Z'))

var identifierRest lex.Scanner[rune] = lex.Many(lex.Or(
	lex.Unit('_'),
	lex.Within('0', '9'),
	lex.Within('a', 'z'),
	lex.Within('A', 'Z')))

// Rule for describing identifiers
var identifier lex.Scanner[rune] = lex.And(identifierStart, identifierRest)

// Comments run from "//" until a newline or EOF.
var comment lex.Scanner[rune] = lex.And(lex.Unit('/', '/'), lex.Until('\n'))

// lexing rules
var rules []lex.LexRule[rune] = []lex.LexRule[rune]{
	lex.Rule(comment, COMMENT),
	lex.Rule(lex.Unit('('), LBRACE),
	lex.Rule(lex.Unit(')'), RBRACE),
	lex.Rule(lex.Unit('{'), LCURLY),
	lex.Rule(lex.Unit('}'), RCURLY),
	lex.Rule(lex.Unit(','), COMMA),
	lex.Rule(lex.Unit(':'), COLON),
	lex.Rule(lex.Unit(';'), SEMICOLON),
	lex.Rule(lex.Unit('!', '='), NOT_EQUALS),
	lex.Rule(lex.Unit('<'), LESS_THAN),
	lex.Rule(lex.Unit('>'), GREATER_THAN),
	lex.Rule(lex.Unit('='), EQUALS),
	lex.Rule(lex.Unit('+'), ADD),
	lex.Rule(lex.Unit('-'), SUB),
	lex.Rule(lex.Unit('*'), MUL),
	lex.Rule(lex.Unit('/'), DIV),
	lex.Rule(whitespace, WHITESPACE),
	lex.Rule(number, NUMBER),
	lex.Rule(identifier, IDENTIFIER),
	lex.Rule(lex.Eof[rune](), END_OF),
}

// Lex a given source file into a sequence of tokens (ending with END_OF),
// along with any syntax errors arising.  Whitespace and comments are removed.
func Lex(srcfile source.File) ([]lex.Token, []source.SyntaxError) {
	var (
		lexer = lex.NewLexer(srcfile.Contents(), rules...)
		// Lex as many tokens as possible
		tokens = lexer.Collect()
		result = make([]lex.Token, 0, len(tokens))
	)
	// Check whether anything was left (if so this is an error)
	if lexer.Remaining() != 0 {
		start, end := lexer.Index(), lexer.Index()+lexer.Remaining()
		err := srcfile.SyntaxError(source.NewSpan(int(start), int(end)), "unknown text encountered")
		// errors
		return nil, []source.SyntaxError{*err}
	}
	//
	for _, t := range tokens {
		switch t.Kind {
		case WHITESPACE, COMMENT:
			continue
		case IDENTIFIER:
			if kind, ok := KEYWORDS[srcfile.Text(t.Span)]; ok {
				t.Kind = kind
			}
		}
		//
		result = append(result, t)
	}
	// Done
	return result, nil
}

var descriptions = map[uint]string{
	END_OF:          "end of file",
	LBRACE:          "'('",
	RBRACE:          "')'",
	LCURLY:          "'{'",
	RCURLY:          "'}'",
	COMMA:           "','",
	COLON:           "':'",
	SEMICOLON:       "';'",
	NUMBER:          "number",
	IDENTIFIER:      "identifier",
	KEYWORD_IF:      "'if'",
	KEYWORD_WHILE:   "'while'",
	KEYWORD_FOR:     "'for'",
	KEYWORD_SWITCH:  "'switch'",
	KEYWORD_CASE:    "'case'",
	KEYWORD_DEFAULT: "'default'",
	KEYWORD_INPUT:   "'input'",
	KEYWORD_OUTPUT:  "'output'",
	EQUALS:          "'='",
	NOT_EQUALS:      "'!='",
	LESS_THAN:       "'<'",
	GREATER_THAN:    "'>'",
	ADD:             "'+'",
	SUB:             "'-'",
	MUL:             "'*'",
	DIV:             "'/'",
}

// describe returns the text used for a given token kind in error messages.
func describe(kind uint) string {
	if d, ok := descriptions[kind]; ok {
		return d
	}
	//
	return fmt.Sprintf("token %d", kind)
}
