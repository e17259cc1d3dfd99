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
package vm_test

import (
	"errors"

	"github.com/consensys/go-linkir/pkg/compiler"
	"github.com/consensys/go-linkir/pkg/ir"
	"github.com/consensys/go-linkir/pkg/vm"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// compile a program which is expected to be well-formed.
func compile(text string) *ir.Program {
	p, errs := compiler.CompileString("test", text)
	//
	ExpectWithOffset(1, errs).To(BeEmpty())
	//
	return p
}

// run a program to completion, returning its outputs.
func run(text string, inputs ...int) []int {
	machine := vm.New(compile(text))
	//
	if len(inputs) > 0 {
		machine.WithInputs(inputs...)
	}
	//
	_, err := vm.ExecuteAll(machine, 16)
	//
	ExpectWithOffset(1, err).NotTo(HaveOccurred())
	ExpectWithOffset(1, machine.IsHalted()).To(BeTrue())
	//
	return machine.Outputs()
}

var _ = Describe("Machine", func() {
	Describe("Assignment", func() {
		It("should copy values", func() {
			Expect(run("x, y; { x = 7; y = x; output y; }")).To(Equal([]int{7}))
		})

		It("should perform arithmetic", func() {
			Expect(run("x; { x = 7 + 3; output x; x = x - 12; output x; x = x * 3; output x; }")).
				To(Equal([]int{10, -2, -6}))
		})

		It("should truncate division towards zero", func() {
			Expect(run("x; { x = 7 / 2; output x; x = 0 - 7; x = x / 2; output x; }")).
				To(Equal([]int{3, -3}))
		})

		It("should start variables at zero", func() {
			Expect(run("x; { output x; output y; }")).To(Equal([]int{0, 0}))
		})
	})

	Describe("Input", func() {
		It("should read trailing inputs in order", func() {
			Expect(run("x, y; { input x; input y; output y; output x; } 4 9")).To(Equal([]int{9, 4}))
		})

		It("should accept overriding inputs", func() {
			Expect(run("x; { input x; output x; } 4", 5)).To(Equal([]int{5}))
		})

		It("should fail when inputs are exhausted", func() {
			machine := vm.New(compile("x; { input x; input x; } 1"))
			//
			n, err := vm.ExecuteAll(machine, 16)
			//
			Expect(errors.Is(err, vm.ErrInputExhausted)).To(BeTrue())
			Expect(n).To(Equal(uint(1)))
		})
	})

	Describe("Conditionals", func() {
		It("should execute the body when the condition holds", func() {
			Expect(run("a, b; { input a; input b; if a > b { output a; } output b; } 3 2")).
				To(Equal([]int{3, 2}))
		})

		It("should skip the body when the condition fails", func() {
			Expect(run("a, b; { input a; input b; if a > b { output a; } output b; } 2 3")).
				To(Equal([]int{3}))
		})
	})

	Describe("Loops", func() {
		It("should repeat while the condition holds", func() {
			Expect(run("x; { input x; while x > 0 { output x; x = x - 1; } } 3")).
				To(Equal([]int{3, 2, 1}))
		})

		It("should not enter a loop whose condition fails", func() {
			Expect(run("x; { while x > 0 { output x; } output x; }")).To(Equal([]int{0}))
		})

		It("should execute counting loops", func() {
			Expect(run("i; { for (i = 0; i < 3; i = i + 1;) { output i; } output i; }")).
				To(Equal([]int{0, 1, 2, 3}))
		})

		It("should nest", func() {
			Expect(run(`i, j; {
				for (i = 0; i < 2; i = i + 1;) {
					for (j = 0; j < 2; j = j + 1;) { output j; }
					output i;
				}
			}`)).To(Equal([]int{0, 1, 0, 0, 1, 1}))
		})
	})

	Describe("Switch", func() {
		const program = `v, a, b, c; {
			input v; a = 10; b = 20; c = 30;
			switch v { case 1: { output a; } case 2: { output b; } default: { output c; } }
			output v;
		}`
		//
		for _, tc := range []struct {
			input    int
			expected []int
		}{{1, []int{10, 1}}, {2, []int{20, 2}}, {0, []int{30, 0}}, {3, []int{30, 3}}} {
			tc := tc
			It("should execute exactly one arm", func() {
				Expect(run(program, tc.input)).To(Equal(tc.expected))
			})
		}

		It("should do nothing without a match or default", func() {
			Expect(run("v, z; { input v; switch v { case 1: { output v; } } output z; } 2")).
				To(Equal([]int{0}))
		})

		It("should exit after an empty default", func() {
			Expect(run("v, z; { input v; switch v { case 1: { output v; } default: { } } output z; } 2")).
				To(Equal([]int{0}))
		})

		It("should execute a default without cases", func() {
			Expect(run("v, x; { switch v { default: { x = 5; output x; } } output v; }")).To(Equal([]int{5, 0}))
		})
	})

	Describe("Execution", func() {
		It("should halt immediately for an empty body", func() {
			machine := vm.New(compile("; { }"))
			//
			n, err := machine.Execute(10)
			//
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(uint(0)))
			Expect(machine.IsHalted()).To(BeTrue())
		})

		It("should execute in chunks", func() {
			machine := vm.New(compile("x; { x = 1; x = 2; x = 3; }"))
			//
			n, err := machine.Execute(2)
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(uint(2)))
			//
			x, ok := machine.Variable("x")
			Expect(ok).To(BeTrue())
			Expect(x).To(Equal(2))
			//
			n, err = machine.Execute(2)
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(uint(1)))
			Expect(machine.IsHalted()).To(BeTrue())
		})

		It("should not modify the program", func() {
			program := compile("x; { x = 5; output x; }")
			//
			Expect(vm.ExecuteAll(vm.New(program), 1)).To(Equal(uint(2)))
			Expect(vm.ExecuteAll(vm.New(program), 1)).To(Equal(uint(2)))
			Expect(program.Memory().Store()).To(Equal([]int{0, 5}))
		})

		It("should enforce a step limit", func() {
			machine := vm.New(compile("x; { x = 1; while x > 0 { } }"))
			//
			n, err := vm.ExecuteWithin(machine, 7, 100)
			//
			Expect(errors.Is(err, vm.ErrStepLimit)).To(BeTrue())
			Expect(n).To(Equal(uint(100)))
		})

		It("should accept halting exactly on the step limit", func() {
			machine := vm.New(compile("x; { x = 1; x = 2; }"))
			//
			Expect(vm.ExecuteWithin(machine, 1, 2)).To(Equal(uint(2)))
		})

		It("should load slots by index", func() {
			machine := vm.New(compile("x; { x = 4; }"))
			Expect(vm.ExecuteAll(machine, 4)).To(Equal(uint(1)))
			//
			Expect(machine.Load(0)).To(Equal(4))
			Expect(machine.Load(1)).To(Equal(4))
		})

		It("should fail to load an invalid slot", func() {
			machine := vm.New(compile("x; { x = 4; }"))
			//
			_, err := machine.Load(ir.INVALID_SLOT)
			Expect(errors.Is(err, vm.ErrInvalidSlot)).To(BeTrue())
			//
			_, err = machine.Load(2)
			Expect(errors.Is(err, vm.ErrInvalidSlot)).To(BeTrue())
		})
	})

	Describe("Errors", func() {
		It("should fail on division by zero", func() {
			_, err := vm.ExecuteAll(vm.New(compile("x; { x = 1 / x; }")), 16)
			//
			Expect(errors.Is(err, vm.ErrDivisionByZero)).To(BeTrue())
		})

		It("should fail on an invalid slot", func() {
			program, errs := compiler.CompileString("test", "x; { x = ; }")
			Expect(errs).To(HaveLen(1))
			//
			_, err := vm.ExecuteAll(vm.New(program), 16)
			//
			Expect(errors.Is(err, vm.ErrInvalidSlot)).To(BeTrue())
		})

		It("should fail on a missing target", func() {
			var (
				code   = ir.NewArena()
				memory = ir.NewMemory()
				x      = memory.Variable("x")
				jump   = code.Add(&ir.Jump{Target: ir.NIL})
				entry  = code.Add(&ir.Output{Source: x})
			)
			//
			code.Link(entry, jump)
			//
			machine := vm.New(ir.NewProgram(code, entry, memory, nil))
			n, err := vm.ExecuteAll(machine, 16)
			//
			Expect(errors.Is(err, vm.ErrMissingTarget)).To(BeTrue())
			Expect(n).To(Equal(uint(1)))
			Expect(machine.Outputs()).To(Equal([]int{0}))
		})
	})
})
