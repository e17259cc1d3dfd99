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

	"github.com/consensys/go-linkir/pkg/vm"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

var executeCmd = &cobra.Command{
	Use:     "execute [flags] file.lir",
	Short:   "Execute a program.",
	Long:    "Compile and execute a program, printing each value it outputs on a separate line.",
	Aliases: []string{"exec"},
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd, GetFlag(cmd, "trace"))
		//
		var (
			maxSteps = GetUint(cmd, "max-steps")
			program  = CompileSourceFile(cmd, args[0])
			machine  = vm.New(program)
		)
		// Override trailing inputs
		if cmd.Flags().Changed("input") {
			machine.WithInputs(GetIntArray(cmd, "input")...)
		}
		// Execute machine in chunks of 1K steps
		nsteps, err := vm.ExecuteWithin(machine, 1024, maxSteps)
		//
		log.Debug(fmt.Sprintf("executed %d step(s)", nsteps))
		// write output (even on failure)
		for _, val := range machine.Outputs() {
			fmt.Fprintln(stdout, val)
		}
		// Exit with failure (if error)
		if err != nil {
			log.Error(err)
			atexit.Exit(5)
		}
	},
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(executeCmd)
	executeCmd.Flags().Uint("max-steps", 0, "maximum number of steps to execute (0 for no limit)")
	executeCmd.Flags().IntSlice("input", nil, "input values (overriding those in the program)")
	executeCmd.Flags().Bool("trace", false, "trace each instruction executed")
}
