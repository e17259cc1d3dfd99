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

import "github.com/consensys/go-linkir/pkg/util/source"

// Token is a tagged span of the input.  The tag (or kind) is assigned by
// whichever rule matched the span.
type Token struct {
	Kind uint
	Span source.Span
}

// LexRule associates a scanner with the tag given to the tokens it matches.
//
// nolint
type LexRule[T any] struct {
	scanner Scanner[T]
	tag     uint
}

// Rule constructs a lexing rule which tags anything matched by scanner.
func Rule[T any](scanner Scanner[T], tag uint) LexRule[T] {
	return LexRule[T]{scanner, tag}
}

// Lexer splits an input sequence into tokens by repeatedly applying the first
// rule (in order) which matches at the current position.
type Lexer[T any] struct {
	items []T
	index int
	rules []LexRule[T]
	// Token matched by the last scan, but not yet returned.
	lookahead *Token
}

// NewLexer constructs a lexer over some input with a given set of rules.
func NewLexer[T any](input []T, rules ...LexRule[T]) *Lexer[T] {
	return &Lexer[T]{input, 0, rules, nil}
}

// Index returns the position of the next item to be scanned.
func (p *Lexer[T]) Index() uint {
	return uint(min(p.index, len(p.items)))
}

// Remaining returns the number of items not yet covered by a token.
func (p *Lexer[T]) Remaining() uint {
	return uint(max(0, len(p.items)-p.index))
}

// HasNext determines whether some rule matches at the current position.
func (p *Lexer[T]) HasNext() bool {
	p.scan()
	return p.lookahead != nil
}

// Next returns the next token and moves past it.  This should only be called
// after HasNext() has returned true.
func (p *Lexer[T]) Next() Token {
	next := *p.lookahead
	p.lookahead = nil
	// Matching at the end is an end-of-input token, which is returned once.
	if p.index == len(p.items) {
		p.index++
	} else {
		p.index = next.Span.End()
	}
	//
	return next
}

// Collect returns all tokens up to the point where no rule matches.
func (p *Lexer[T]) Collect() []Token {
	var tokens []Token
	//
	for p.HasNext() {
		tokens = append(tokens, p.Next())
	}
	//
	return tokens
}

func (p *Lexer[T]) scan() {
	if p.lookahead != nil || p.index > len(p.items) {
		return
	}
	//
	for _, r := range p.rules {
		if n := r.scanner(p.items[p.index:]); n > 0 {
			end := min(len(p.items), p.index+int(n))
			p.lookahead = &Token{r.tag, source.NewSpan(p.index, end)}
			//
			return
		}
	}
}
