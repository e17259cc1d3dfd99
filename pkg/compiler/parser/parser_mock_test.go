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

//go:generate mockgen -write_package_comment=false -package=$GOPACKAGE -destination=mock_token_source_test.go github.com/consensys/go-linkir/pkg/compiler/parser TokenSource

import (
	"testing"

	"github.com/consensys/go-linkir/pkg/ir"
	"github.com/consensys/go-linkir/pkg/util/assert"
	"github.com/consensys/go-linkir/pkg/util/source"
	"github.com/golang/mock/gomock"
)

func Test_Mock_Consumption_01(t *testing.T) {
	// Each token is consumed exactly once, and nothing beyond the end.
	p, errs := checkMockGenerate(t, "a, b; { if a > b { output a; } }", 15)
	//
	assert.Equal(t, 0, len(errs))
	assert.Equal(t, 3, len(chain(p)))
}

func Test_Mock_Consumption_02(t *testing.T) {
	// Consumption of trailing inputs stops at the first non-number, which is
	// left unconsumed.
	p, errs := checkMockGenerate(t, "x; { input x; } 4 7 y 9", 9)
	//
	assert.Equal(t, []int{4, 7}, p.Inputs())
	assert.Equal(t, 1, len(errs))
}

func Test_Mock_Consumption_03(t *testing.T) {
	// Truncated programs read the end repeatedly, without failing.
	_, errs := checkMockGenerate(t, "a; { a = 1", -1)
	//
	assert.True(t, len(errs) > 0)
}

func Test_Mock_Errors_01(t *testing.T) {
	var (
		ctrl    = gomock.NewController(t)
		srcfile = source.NewSourceFile("test", []byte("a; { if a = 1 { } }"))
		stream  = newStream(t, srcfile)
		tokens  = NewMockTokenSource(ctrl)
	)
	//
	delegate(tokens, stream, -1)
	// Errors are only ever constructed for the offending token.
	tokens.EXPECT().SyntaxError(gomock.Any(), "unknown comparator").
		DoAndReturn(stream.SyntaxError).Times(1)
	//
	_, errs := Generate(tokens)
	//
	assert.Equal(t, 1, len(errs))
	assert.Equal(t, "=", srcfile.Text(errs[0].Span()))
}

// checkMockGenerate generates a program from a mock token source which
// delegates to a real stream, checking the number of tokens consumed (unless
// negative).
func checkMockGenerate(t *testing.T, text string, consumed int) (*ir.Program, []source.SyntaxError) {
	var (
		ctrl    = gomock.NewController(t)
		srcfile = source.NewSourceFile("test", []byte(text))
		stream  = newStream(t, srcfile)
		tokens  = NewMockTokenSource(ctrl)
	)
	//
	delegate(tokens, stream, consumed)
	tokens.EXPECT().SyntaxError(gomock.Any(), gomock.Any()).DoAndReturn(stream.SyntaxError).AnyTimes()
	//
	return Generate(tokens)
}

func delegate(tokens *MockTokenSource, stream *TokenStream, consumed int) {
	next := tokens.EXPECT().Next().DoAndReturn(stream.Next)
	//
	if consumed < 0 {
		next.AnyTimes()
	} else {
		next.Times(consumed)
	}
	//
	tokens.EXPECT().Peek().DoAndReturn(stream.Peek).AnyTimes()
	tokens.EXPECT().Text(gomock.Any()).DoAndReturn(stream.Text).AnyTimes()
}

func newStream(t *testing.T, srcfile *source.File) *TokenStream {
	tokens, errs := Lex(*srcfile)
	//
	assert.Equal(t, 0, len(errs))
	//
	return NewTokenStream(srcfile, tokens)
}
