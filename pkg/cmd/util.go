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
package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/consensys/go-linkir/pkg/compiler"
	"github.com/consensys/go-linkir/pkg/ir"
	"github.com/consensys/go-linkir/pkg/util/source"
	"github.com/consensys/go-linkir/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

// Buffered standard output, flushed on exit.
var stdout = bufio.NewWriter(os.Stdout)

func init() {
	atexit.Register(func() { _ = stdout.Flush() })
}

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		atexit.Exit(2)
	}

	return r
}

// GetUint gets an expected unsigned integer, or exits if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		atexit.Exit(2)
	}

	return r
}

// GetIntArray gets an expected integer array, or exits if an error arises.
func GetIntArray(cmd *cobra.Command, flag string) []int {
	r, err := cmd.Flags().GetIntSlice(flag)
	if err != nil {
		fmt.Println(err)
		atexit.Exit(2)
	}

	return r
}

// Configure the log level according to the verbose flag, unless tracing is
// requested.
func configureLogging(cmd *cobra.Command, trace bool) {
	if trace {
		log.SetLevel(log.TraceLevel)
	} else if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
}

// CompileSourceFile reads and compiles a given source file into a program.
// Text which cannot be tokenised is always fatal, whilst other syntax errors
// are fatal only in strict mode.
func CompileSourceFile(cmd *cobra.Command, filename string) *ir.Program {
	log.Debug(fmt.Sprintf("reading source file %s", filename))
	// Read source file
	srcfile, err := source.ReadFile(filename)
	// Sanity check for errors
	if err != nil {
		fmt.Println(err)
		atexit.Exit(3)
	}
	// Compile source file
	program, errors := compiler.Compile(srcfile)
	// Report errors
	for _, err := range errors {
		printSyntaxError(&err)
	}
	//
	if program == nil || (len(errors) != 0 && GetFlag(cmd, "strict")) {
		atexit.Exit(4)
	} else if len(errors) != 0 {
		log.Warn(fmt.Sprintf("ignoring %d syntax error(s)", len(errors)))
	}
	//
	log.Debug(fmt.Sprintf("compiled %d node(s) and %d slot(s)", program.Code().Len(), program.Memory().Len()))
	// Done
	return program
}

// Print a syntax error with appropriate highlighting.
func printSyntaxError(err *source.SyntaxError) {
	span := err.Span()
	line := err.FirstEnclosingLine()
	lineOffset := span.Start() - line.Start()
	// Calculate length (ensures don't overflow line)
	length := max(1, min(line.Length()-lineOffset, span.Length()))
	// Print error + line number
	fmt.Fprintf(stdout, "%s:%d:%d-%d %s\n", err.SourceFile().Filename(),
		line.Number(), 1+lineOffset, 1+lineOffset+length, err.Message())
	// Print separator line
	fmt.Fprintln(stdout)
	// Print line
	fmt.Fprintln(stdout, line.String())
	// Print indent (todo: account for tabs)
	fmt.Fprint(stdout, strings.Repeat(" ", lineOffset))
	//
	highlight := strings.Repeat("^", length)
	// Colour highlight on terminals
	if termio.IsTerminal(os.Stdout) {
		highlight = termio.Highlight(highlight, termio.BoldAnsiEscape().FgColour(termio.TERM_RED))
	}
	//
	fmt.Fprintln(stdout, highlight)
}
