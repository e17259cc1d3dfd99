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
package lex

import (
	"slices"
	"testing"

	"github.com/consensys/go-linkir/pkg/util/assert"
	"github.com/consensys/go-linkir/pkg/util/source"
)

func TestLexer_00(t *testing.T) {
	checkLexer(t, "", 0,
		Token{END_OF, source.NewSpan(0, 0)})
}

func TestLexer_01(t *testing.T) {
	checkLexer(t, "{", 0,
		Token{LCURLY, source.NewSpan(0, 1)},
		Token{END_OF, source.NewSpan(1, 1)})
}

func TestLexer_02(t *testing.T) {
	checkLexer(t, "{ }", 0,
		Token{LCURLY, source.NewSpan(0, 1)},
		Token{WSPACE, source.NewSpan(1, 2)},
		Token{RCURLY, source.NewSpan(2, 3)},
		Token{END_OF, source.NewSpan(3, 3)})
}

func TestLexer_03(t *testing.T) {
	checkLexer(t, "x1 != 12", 0,
		Token{IDENT, source.NewSpan(0, 2)},
		Token{WSPACE, source.NewSpan(2, 3)},
		Token{NOT_EQUALS, source.NewSpan(3, 5)},
		Token{WSPACE, source.NewSpan(5, 6)},
		Token{NUMBER, source.NewSpan(6, 8)},
		Token{END_OF, source.NewSpan(8, 8)})
}

func TestLexer_04(t *testing.T) {
	// "?" matches no rule, so it and everything after is left over.
	checkLexer(t, "{?}", 2,
		Token{LCURLY, source.NewSpan(0, 1)})
}

func TestLexer_05(t *testing.T) {
	checkLexer(t, "x", 0,
		Token{IDENT, source.NewSpan(0, 1)},
		Token{END_OF, source.NewSpan(1, 1)})
}

func TestLexer_06(t *testing.T) {
	checkLexer(t, "// note\n9", 0,
		Token{COMMENT, source.NewSpan(0, 7)},
		Token{WSPACE, source.NewSpan(7, 8)},
		Token{NUMBER, source.NewSpan(8, 9)},
		Token{END_OF, source.NewSpan(9, 9)})
}

func TestScanner_Sequence(t *testing.T) {
	rule := Sequence(Unit('a'), Unit('b'), Unit('c'))
	//
	assert.Equal(t, 0, rule([]rune("acc")))
	assert.Equal(t, 0, rule([]rune("ab")))
	assert.Equal(t, 3, rule([]rune("abcd")))
}

func TestScanner_Not(t *testing.T) {
	rule := Many(Not('"'))
	//
	assert.Equal(t, 3, rule([]rune(`abc"`)))
	assert.Equal(t, 0, rule([]rune(`"abc`)))
}

func TestScanner_Until(t *testing.T) {
	rule := Until('\n')
	//
	assert.Equal(t, 2, rule([]rune("ab\ncd")))
	assert.Equal(t, 4, rule([]rune("abcd")))
}

// ==================================================================
// Framework
// ==================================================================

const END_OF uint = 0
const WSPACE uint = 1
const LCURLY uint = 2
const RCURLY uint = 3
const NUMBER uint = 4
const IDENT uint = 5
const NOT_EQUALS uint = 6
const COMMENT uint = 7

var whitespace = Many(Or(Unit(' '), Unit('\t'), Unit('\n')))

var number = Many(Within('0', '9'))

var identifier = And(
	Or(Within('a', 'z'), Within('A', 'Z')),
	Many(Or(Within('a', 'z'), Within('A', 'Z'), Within('0', '9'))))

var comment = And(Unit('/', '/'), Until('\n'))

var rules = []LexRule[rune]{
	Rule(comment, COMMENT),
	Rule(Unit('{'), LCURLY),
	Rule(Unit('}'), RCURLY),
	Rule(Unit('!', '='), NOT_EQUALS),
	Rule(whitespace, WSPACE),
	Rule(number, NUMBER),
	Rule(identifier, IDENT),
	Rule(Eof[rune](), END_OF),
}

func checkLexer(t *testing.T, input string, remainder uint, expected ...Token) {
	items := []rune(input)
	lexer := NewLexer(items, rules...)
	tokens := lexer.Collect()
	//
	if !slices.Equal(tokens, expected) {
		t.Errorf("got %v, expected %v", tokens, expected)
	} else if lexer.Remaining() != remainder {
		n := len(items) - int(lexer.Remaining())
		t.Errorf("unmatched items: %v", items[n:])
	}
}
