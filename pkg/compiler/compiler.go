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
package compiler

import (
	"github.com/consensys/go-linkir/pkg/compiler/parser"
	"github.com/consensys/go-linkir/pkg/ir"
	"github.com/consensys/go-linkir/pkg/util/source"
)

// Compile translates a given source file into its IR.  Text which cannot be
// tokenised is fatal, and produces no program.  Otherwise, a program is always
// produced, along with any syntax errors found whilst translating.
func Compile(srcfile *source.File) (*ir.Program, []source.SyntaxError) {
	tokens, errors := parser.Lex(*srcfile)
	//
	if len(errors) != 0 {
		return nil, errors
	}
	//
	return parser.Generate(parser.NewTokenStream(srcfile, tokens))
}

// CompileString is a convenience for translating program text held in memory.
func CompileString(name string, text string) (*ir.Program, []source.SyntaxError) {
	return Compile(source.NewSourceFile(name, []byte(text)))
}
