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
package main

import (
	"fmt"
	"math/rand"
	"os"
	"path"
	"strings"

	"github.com/consensys/go-linkir/pkg/compiler"
	"github.com/consensys/go-linkir/pkg/vm"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Uint("count", 10, "Number of programs to generate")
	rootCmd.Flags().Int64("seed", 1, "Seed for the random number generator")
	rootCmd.Flags().Uint("depth", 3, "Maximum nesting depth of statements")
	rootCmd.Flags().Uint("statements", 4, "Maximum number of statements per block")
	rootCmd.Flags().Uint("max-const", 5, "Maximum constant")
	rootCmd.Flags().String("dir", "testdata/valid", "Directory to write programs into")
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "testgen [flags] name",
	Short: "Test generation utility for linkir.",
	Long: "Generate random, terminating programs along with the outputs they produce, " +
		"writing each as a valid test named name_N.",
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var cfg TestGenConfig
		//
		cfg.depth = getUint(cmd, "depth")
		cfg.statements = max(1, getUint(cmd, "statements"))
		cfg.maxConst = getUint(cmd, "max-const")
		count := getUint(cmd, "count")
		seed, _ := cmd.Flags().GetInt64("seed")
		dir, _ := cmd.Flags().GetString("dir")
		//
		rng := rand.New(rand.NewSource(seed))
		//
		for i := uint(0); i < count; i++ {
			text := NewGenerator(cfg, rng).Program()
			filename := path.Join(dir, fmt.Sprintf("%s_%d.lir", args[0], i))
			//
			if err := writeTest(filename, text); err != nil {
				fmt.Println(err)
				os.Exit(2)
			}
		}
	},
}

func getUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// TestGenConfig encapsulates configuration related to test generation.
type TestGenConfig struct {
	depth      uint
	statements uint
	maxConst   uint
}

// Variables which generated statements may read and write.  Loop counters are
// separate, such that no loop body can modify the counter of its loop.
var variables = []string{"a", "b", "c", "d"}

// Generator constructs the text of a random (well-formed) program which always
// terminates.  Loops are counted, and division only ever uses a non-zero
// constant divisor.
type Generator struct {
	cfg     TestGenConfig
	rng     *rand.Rand
	builder strings.Builder
	// Number of loop counters allocated
	counters uint
	// Values for the input queue
	inputs []uint
}

// NewGenerator constructs a generator for a given configuration.
func NewGenerator(cfg TestGenConfig, rng *rand.Rand) *Generator {
	return &Generator{cfg: cfg, rng: rng}
}

// Program generates the text of a complete program.
func (p *Generator) Program() string {
	var body strings.Builder
	// Generate body first, so loop counters are known.
	p.builder.Reset()
	p.block(0, 1)
	body.WriteString(p.builder.String())
	// Declarations
	decls := append([]string{}, variables...)
	for i := uint(0); i < p.counters; i++ {
		decls = append(decls, fmt.Sprintf("i%d", i))
	}
	//
	var out strings.Builder
	//
	out.WriteString(strings.Join(decls, ", "))
	out.WriteString("; ")
	out.WriteString(body.String())
	out.WriteString("\n")
	//
	for i, v := range p.inputs {
		if i != 0 {
			out.WriteString(" ")
		}
		//
		out.WriteString(fmt.Sprintf("%d", v))
	}
	//
	if len(p.inputs) > 0 {
		out.WriteString("\n")
	}
	//
	return out.String()
}

// Generate a block of statements, where the given prelude (if any) begins the
// block.
func (p *Generator) block(depth uint, indent int, prelude ...string) {
	n := 1 + p.rng.Intn(int(p.cfg.statements))
	//
	p.builder.WriteString("{\n")
	//
	for _, stmt := range prelude {
		p.builder.WriteString(strings.Repeat("  ", indent))
		p.builder.WriteString(stmt)
		p.builder.WriteString("\n")
	}
	//
	for i := 0; i < n; i++ {
		p.statement(depth, indent)
	}
	//
	p.builder.WriteString(strings.Repeat("  ", indent-1))
	p.builder.WriteString("}")
}

func (p *Generator) statement(depth uint, indent int) {
	var kinds = 3
	// Compound statements only below the maximum depth
	if depth < p.cfg.depth {
		kinds = 7
	}
	//
	p.builder.WriteString(strings.Repeat("  ", indent))
	//
	switch p.rng.Intn(kinds) {
	case 0:
		p.assignment()
	case 1:
		p.builder.WriteString(fmt.Sprintf("output %s;", p.variable()))
	case 2:
		// Top-level statements execute at most once, hence input never runs dry.
		if depth == 0 {
			p.inputs = append(p.inputs, p.constant())
			p.builder.WriteString(fmt.Sprintf("input %s;", p.variable()))
		} else {
			p.builder.WriteString(fmt.Sprintf("output %s;", p.variable()))
		}
	case 3:
		p.builder.WriteString(fmt.Sprintf("if %s ", p.condition()))
		p.block(depth+1, indent+1)
	case 4:
		p.forLoop(depth, indent)
	case 5:
		p.whileLoop(depth, indent)
	default:
		p.switchStatement(depth, indent)
	}
	//
	p.builder.WriteString("\n")
}

func (p *Generator) assignment() {
	var (
		target = p.variable()
		ops    = []string{"+", "-", "*", "/"}
	)
	//
	switch op := ops[p.rng.Intn(len(ops))]; {
	case p.rng.Intn(3) == 0:
		p.builder.WriteString(fmt.Sprintf("%s = %s;", target, p.primary()))
	case op == "/":
		p.builder.WriteString(fmt.Sprintf("%s = %s / %d;", target, p.primary(), 1+p.constant()))
	default:
		p.builder.WriteString(fmt.Sprintf("%s = %s %s %s;", target, p.primary(), op, p.primary()))
	}
}

func (p *Generator) forLoop(depth uint, indent int) {
	var (
		counter = p.counter()
		limit   = p.constant()
	)
	//
	p.builder.WriteString(fmt.Sprintf("for (%s = 0; %s < %d; %s = %s + 1;) ", counter, counter, limit, counter,
		counter))
	p.block(depth+1, indent+1)
}

func (p *Generator) whileLoop(depth uint, indent int) {
	var (
		counter = p.counter()
		limit   = p.constant()
	)
	// Counting down, where the body begins with the decrement.
	p.builder.WriteString(fmt.Sprintf("%s = %d;\n", counter, limit))
	p.builder.WriteString(strings.Repeat("  ", indent))
	p.builder.WriteString(fmt.Sprintf("while %s > 0 ", counter))
	p.block(depth+1, indent+1, fmt.Sprintf("%s = %s - 1;", counter, counter))
}

func (p *Generator) switchStatement(depth uint, indent int) {
	var (
		cases = p.rng.Intn(3)
		seen  = make(map[uint]bool)
	)
	//
	p.builder.WriteString(fmt.Sprintf("switch %s {\n", p.variable()))
	//
	for i := 0; i < cases; i++ {
		c := p.constant()
		// Skip duplicate cases
		if seen[c] {
			continue
		}
		//
		seen[c] = true
		p.builder.WriteString(strings.Repeat("  ", indent+1))
		p.builder.WriteString(fmt.Sprintf("case %d: ", c))
		p.block(depth+1, indent+2)
		p.builder.WriteString("\n")
	}
	//
	if p.rng.Intn(2) == 0 {
		p.builder.WriteString(strings.Repeat("  ", indent+1))
		p.builder.WriteString("default: ")
		p.block(depth+1, indent+2)
		p.builder.WriteString("\n")
	}
	//
	p.builder.WriteString(strings.Repeat("  ", indent))
	p.builder.WriteString("}")
}

func (p *Generator) condition() string {
	var ops = []string{">", "<", "!="}
	//
	return fmt.Sprintf("%s %s %s", p.primary(), ops[p.rng.Intn(len(ops))], p.primary())
}

func (p *Generator) primary() string {
	if p.rng.Intn(2) == 0 {
		return fmt.Sprintf("%d", p.constant())
	}
	//
	return p.variable()
}

func (p *Generator) variable() string {
	return variables[p.rng.Intn(len(variables))]
}

func (p *Generator) counter() string {
	p.counters++
	//
	return fmt.Sprintf("i%d", p.counters-1)
}

func (p *Generator) constant() uint {
	return uint(p.rng.Intn(int(p.cfg.maxConst) + 1))
}

// Compile and execute a generated program, writing it along with its outputs.
func writeTest(filename string, text string) error {
	program, errs := compiler.CompileString(filename, text)
	//
	if len(errs) != 0 {
		return fmt.Errorf("generated program is malformed (%s)", errs[0].Message())
	}
	//
	machine := vm.New(program)
	//
	if _, err := vm.ExecuteAll(machine, 1024); err != nil {
		return fmt.Errorf("generated program failed (%w)", err)
	}
	//
	var sb strings.Builder
	//
	sb.WriteString("//output:")
	//
	for _, v := range machine.Outputs() {
		sb.WriteString(fmt.Sprintf(" %d", v))
	}
	//
	sb.WriteString("\n")
	sb.WriteString(text)
	// Write the file
	if err := os.WriteFile(filename, []byte(sb.String()), 0644); err != nil {
		return err
	}
	// Log what happened
	log.Infof("Wrote %s (%d outputs)\n", filename, len(machine.Outputs()))
	//
	return nil
}
