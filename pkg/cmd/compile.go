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
	"fmt"
	"strings"

	"github.com/consensys/go-linkir/pkg/ir"
	"github.com/spf13/cobra"
)

var compileCmd = &cobra.Command{
	Use:   "compile [flags] file.lir",
	Short: "compile a source file into linked IR.",
	Long:  "Compile a given source file into linked IR, reporting any syntax errors.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd, false)
		// Compile source file, or print errors
		program := CompileSourceFile(cmd, args[0])
		//
		if GetFlag(cmd, "memory") {
			writeMemory(program)
		}
		//
		if GetFlag(cmd, "ir") {
			fmt.Fprint(stdout, program.String())
		}
	},
}

// Write the location table and initial store of a program, followed by its
// input queue.
func writeMemory(program *ir.Program) {
	var (
		memory = program.Memory()
		store  = memory.Store()
		inputs = make([]string, len(program.Inputs()))
	)
	//
	for i := range store {
		slot := ir.Slot(i)
		//
		if memory.IsLiteral(slot) {
			fmt.Fprintf(stdout, "#%d\tconst %d\n", i, store[i])
		} else {
			fmt.Fprintf(stdout, "#%d\tvar %s = %d\n", i, memory.Name(slot), store[i])
		}
	}
	//
	for i, v := range program.Inputs() {
		inputs[i] = fmt.Sprintf("%d", v)
	}
	//
	fmt.Fprintf(stdout, "inputs: [%s]\n", strings.Join(inputs, ", "))
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(compileCmd)
	compileCmd.Flags().Bool("ir", true, "Output intermediate representation (IR)")
	compileCmd.Flags().Bool("memory", false, "Output memory layout and inputs")
}
