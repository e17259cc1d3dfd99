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
	"github.com/consensys/go-linkir/pkg/util/source"
	"github.com/consensys/go-linkir/pkg/util/source/lex"
)

// TokenSource supplies tokens to the generator, one at a time, with exactly one
// token of lookahead.
type TokenSource interface {
	// Next consumes and returns the next token.
	Next() lex.Token
	// Peek returns the next token without consuming it.
	Peek() lex.Token
	// Text returns the characters making up a given token.
	Text(token lex.Token) string
	// SyntaxError constructs an error reported against a given token.
	SyntaxError(token lex.Token, msg string) *source.SyntaxError
}

// TokenStream is a TokenSource over the tokens of a lexed source file.  Once
// the final token has been reached, it is returned indefinitely.  Thus, a
// stream always appears to end with END_OF, even when the tokens given do not.
type TokenStream struct {
	srcfile *source.File
	tokens  []lex.Token
	index   int
}

// NewTokenStream constructs a stream over the given tokens of a source file.
func NewTokenStream(srcfile *source.File, tokens []lex.Token) *TokenStream {
	return &TokenStream{srcfile, tokens, 0}
}

// Next implementation for TokenSource interface.
func (p *TokenStream) Next() lex.Token {
	token := p.Peek()
	//
	if p.index < len(p.tokens) {
		p.index++
	}
	//
	return token
}

// Peek implementation for TokenSource interface.
func (p *TokenStream) Peek() lex.Token {
	switch {
	case p.index < len(p.tokens):
		return p.tokens[p.index]
	case len(p.tokens) > 0 && p.tokens[len(p.tokens)-1].Kind == END_OF:
		return p.tokens[len(p.tokens)-1]
	default:
		end := len(p.srcfile.Contents())
		return lex.Token{Kind: END_OF, Span: source.NewSpan(end, end)}
	}
}

// Text implementation for TokenSource interface.
func (p *TokenStream) Text(token lex.Token) string {
	return p.srcfile.Text(token.Span)
}

// SyntaxError implementation for TokenSource interface.
func (p *TokenStream) SyntaxError(token lex.Token, msg string) *source.SyntaxError {
	return p.srcfile.SyntaxError(token.Span, msg)
}
