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
package vm

import (
	"errors"
	"fmt"

	"github.com/consensys/go-linkir/pkg/ir"
	"github.com/consensys/go-linkir/pkg/util/collection/queue"
	log "github.com/sirupsen/logrus"
)

// ErrInputExhausted is returned when an input instruction executes with no
// values left on the input queue.
var ErrInputExhausted = errors.New("input queue exhausted")

// ErrDivisionByZero is returned when a division has a zero divisor.
var ErrDivisionByZero = errors.New("division by zero")

// ErrInvalidSlot is returned when an instruction accesses a slot which was
// never allocated (e.g. the operand of a malformed expression).
var ErrInvalidSlot = errors.New("invalid slot")

// ErrMissingTarget is returned when a branch is taken whose target was never
// resolved.
var ErrMissingTarget = errors.New("missing jump target")

// ErrStepLimit is returned when execution does not terminate within the number
// of steps allowed.
var ErrStepLimit = errors.New("step limit exceeded")

// Core represents an executing machine which can be run in steps.
type Core interface {
	// Execute the machine for the given number of steps, returning the actual
	// number of steps executed and an error (if execution failed).  Executing
	// fewer steps than requested (without error) indicates the machine has
	// halted.
	Execute(steps uint) (uint, error)
	// IsHalted checks whether the machine has finished executing.
	IsHalted() bool
}

// ExecuteAll executes a given machine to completion in chunks of n steps,
// returning the number of steps executed and/or any error arising.
func ExecuteAll(machine Core, n uint) (uint, error) {
	return ExecuteWithin(machine, n, 0)
}

// ExecuteWithin executes a given machine to completion in chunks of n steps,
// failing if it has not halted after limit steps.  A limit of zero means no
// limit.
func ExecuteWithin(machine Core, n uint, limit uint) (uint, error) {
	var nsteps uint
	//
	if n == 0 {
		return 0, errors.New("invalid chunk size")
	}
	//
	for {
		chunk := n
		// Don't overrun the limit
		if limit != 0 && nsteps+chunk > limit {
			chunk = limit - nsteps
		}
		// Execute upto chunk steps
		m, err := machine.Execute(chunk)
		// update the tally
		nsteps += m
		// check for termination
		if err != nil || m < chunk || machine.IsHalted() {
			return nsteps, err
		} else if limit != 0 && nsteps >= limit {
			return nsteps, fmt.Errorf("%w (%d steps)", ErrStepLimit, limit)
		}
	}
}

// Machine executes a program by walking its nodes, starting from the entry.
// Execution halts when control falls off the end of a chain.
type Machine struct {
	program *ir.Program
	// Node to execute next
	pc ir.Handle
	// Current contents of memory
	store []int
	// Values remaining to be read
	inputs *queue.Queue[int]
	// Values written so far
	outputs []int
}

// New constructs a machine ready to execute a given program from its entry,
// with the initial memory store and input queue of that program.
func New(program *ir.Program) *Machine {
	inputs := queue.NewQueue(program.Inputs()...)
	//
	return &Machine{program, program.Entry(), program.Memory().Store(), inputs, nil}
}

// WithInputs replaces the input queue of this machine.
func (p *Machine) WithInputs(inputs ...int) *Machine {
	p.inputs = queue.NewQueue(inputs...)
	//
	return p
}

// IsHalted checks whether this machine has finished executing.
func (p *Machine) IsHalted() bool {
	return p.pc == ir.NIL
}

// PC returns the node to be executed next (or NIL if halted).
func (p *Machine) PC() ir.Handle {
	return p.pc
}

// Outputs returns the values written by output instructions so far, in the
// order they were written.
func (p *Machine) Outputs() []int {
	return p.outputs
}

// Load returns the current value of a given slot, or an error if no such slot
// exists.
func (p *Machine) Load(slot ir.Slot) (int, error) {
	return p.read(slot)
}

// Variable returns the current value of a named variable, or false if the
// program has no such variable.
func (p *Machine) Variable(name string) (int, bool) {
	if slot, ok := p.program.Memory().Lookup(name); ok {
		return p.store[slot], true
	}
	//
	return 0, false
}

// Execute implementation for the Core interface.
func (p *Machine) Execute(steps uint) (uint, error) {
	var nsteps uint
	//
	for ; nsteps < steps && p.pc != ir.NIL; nsteps++ {
		if err := p.step(); err != nil {
			return nsteps, err
		}
	}
	//
	return nsteps, nil
}

// Execute the instruction at the current node, and advance to its successor.
func (p *Machine) step() error {
	var (
		code = p.program.Code()
		insn = code.Instruction(p.pc)
		next = code.Next(p.pc)
		err  error
	)
	//
	if log.IsLevelEnabled(log.TraceLevel) {
		log.Tracef("[%d] %s", p.pc, insn.String(p))
	}
	//
	switch insn := insn.(type) {
	case *ir.Noop:
		// nothing
	case *ir.Assign:
		err = p.assign(insn)
	case *ir.CondJump:
		var lhs, rhs int
		//
		if lhs, err = p.read(insn.Left); err != nil {
			break
		} else if rhs, err = p.read(insn.Right); err != nil {
			break
		} else if !insn.Op.Holds(lhs, rhs) {
			next, err = p.branch(insn.Target)
		}
	case *ir.Jump:
		next, err = p.branch(insn.Target)
	case *ir.Input:
		if p.inputs.IsEmpty() {
			err = ErrInputExhausted
		} else {
			err = p.write(insn.Target, p.inputs.Pop())
		}
	case *ir.Output:
		var val int
		//
		if val, err = p.read(insn.Source); err == nil {
			p.outputs = append(p.outputs, val)
		}
	default:
		err = fmt.Errorf("unknown instruction %s", insn.String(p))
	}
	//
	if err != nil {
		return fmt.Errorf("node %d: %w", p.pc, err)
	}
	//
	p.pc = next
	//
	return nil
}

func (p *Machine) assign(insn *ir.Assign) error {
	lhs, err := p.read(insn.Left)
	//
	if err != nil {
		return err
	} else if insn.IsCopy() {
		return p.write(insn.Target, lhs)
	}
	//
	rhs, err := p.read(insn.Right)
	//
	if err != nil {
		return err
	}
	//
	switch insn.Op {
	case ir.ADD:
		lhs += rhs
	case ir.SUB:
		lhs -= rhs
	case ir.MUL:
		lhs *= rhs
	case ir.DIV:
		if rhs == 0 {
			return ErrDivisionByZero
		}
		//
		lhs /= rhs
	}
	//
	return p.write(insn.Target, lhs)
}

func (p *Machine) branch(target ir.Handle) (ir.Handle, error) {
	if target == ir.NIL {
		return ir.NIL, ErrMissingTarget
	}
	//
	return target, nil
}

func (p *Machine) read(slot ir.Slot) (int, error) {
	if slot < 0 || int(slot) >= len(p.store) {
		return 0, fmt.Errorf("%w %d", ErrInvalidSlot, slot)
	}
	//
	return p.store[slot], nil
}

func (p *Machine) write(slot ir.Slot, value int) error {
	if slot < 0 || int(slot) >= len(p.store) {
		return fmt.Errorf("%w %d", ErrInvalidSlot, slot)
	}
	//
	p.store[slot] = value
	//
	return nil
}

// SlotName implementation for the ir.Env interface, used when tracing.
func (p *Machine) SlotName(slot ir.Slot) string {
	return p.program.Memory().Name(slot)
}

// Label implementation for the ir.Env interface, used when tracing.
func (p *Machine) Label(target ir.Handle) string {
	if target == ir.NIL {
		return "?"
	}
	//
	return fmt.Sprintf("%d", target)
}
