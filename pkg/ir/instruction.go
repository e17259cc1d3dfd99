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
package ir

import (
	"fmt"
)

// Slot identifies a location within the (flat) memory store.  Variables and
// literals are both addressed by slot.
type Slot int

// INVALID_SLOT is produced for an operand which is neither an identifier nor a
// literal.  It does not address any location in the memory store.
const INVALID_SLOT Slot = -1

// Env provides the information needed to render instructions in human readable
// form.
type Env interface {
	// SlotName returns the name to show for a given slot.
	SlotName(slot Slot) string
	// Label returns the name to show for the target of a jump.
	Label(target Handle) string
}

// Instruction is a single operation within the IR.  Every instruction occupies
// one node of an Arena, and control falls through to the node's successor
// unless the instruction is a jump.
type Instruction interface {
	// Uses returns the slots read by this instruction.
	Uses() []Slot
	// Definitions returns the slots written by this instruction.
	Definitions() []Slot
	// String returns a human readable form of this instruction.
	String(env Env) string
}

// ============================================================================
// Operators
// ============================================================================

// ArithOp identifies the arithmetic operator of an assignment.
type ArithOp uint8

const (
	// NONE indicates an assignment which simply copies its (only) operand.
	NONE ArithOp = iota
	// ADD indicates "+"
	ADD
	// SUB indicates "-"
	SUB
	// MUL indicates "*"
	MUL
	// DIV indicates "/"
	DIV
)

func (op ArithOp) String() string {
	switch op {
	case ADD:
		return "+"
	case SUB:
		return "-"
	case MUL:
		return "*"
	case DIV:
		return "/"
	default:
		return ""
	}
}

// CmpOp identifies the relational operator of a conditional jump.
type CmpOp uint8

const (
	// GT indicates ">"
	GT CmpOp = iota
	// LT indicates "<"
	LT
	// NEQ indicates "!="
	NEQ
)

// Holds determines whether "lhs op rhs" is true.
func (op CmpOp) Holds(lhs, rhs int) bool {
	switch op {
	case GT:
		return lhs > rhs
	case LT:
		return lhs < rhs
	case NEQ:
		return lhs != rhs
	default:
		panic(fmt.Sprintf("unknown comparator %d", op))
	}
}

func (op CmpOp) String() string {
	switch op {
	case GT:
		return ">"
	case LT:
		return "<"
	case NEQ:
		return "!="
	default:
		return "?"
	}
}

// ============================================================================
// Instructions
// ============================================================================

// Noop does nothing.  Noops are the join points at which the arms of a
// conditional, loop or switch meet again.
type Noop struct{}

// Uses implementation for Instruction interface.
func (p *Noop) Uses() []Slot {
	return nil
}

// Definitions implementation for Instruction interface.
func (p *Noop) Definitions() []Slot {
	return nil
}

func (p *Noop) String(_ Env) string {
	return "nop"
}

// Assign represents an instruction of the form "t = l" or "t = l op r".  When
// Op is NONE, the right operand is unused.
type Assign struct {
	Target Slot
	Left   Slot
	Op     ArithOp
	Right  Slot
}

// NewCopy constructs an assignment "target = source".
func NewCopy(target, source Slot) *Assign {
	return &Assign{target, source, NONE, INVALID_SLOT}
}

// NewArith constructs an assignment "target = left op right".
func NewArith(target, left Slot, op ArithOp, right Slot) *Assign {
	return &Assign{target, left, op, right}
}

// IsCopy checks whether this assignment has a single operand.
func (p *Assign) IsCopy() bool {
	return p.Op == NONE
}

// Uses implementation for Instruction interface.
func (p *Assign) Uses() []Slot {
	if p.IsCopy() {
		return []Slot{p.Left}
	}
	//
	return []Slot{p.Left, p.Right}
}

// Definitions implementation for Instruction interface.
func (p *Assign) Definitions() []Slot {
	return []Slot{p.Target}
}

func (p *Assign) String(env Env) string {
	if p.IsCopy() {
		return fmt.Sprintf("%s = %s", env.SlotName(p.Target), env.SlotName(p.Left))
	}
	//
	return fmt.Sprintf("%s = %s %s %s", env.SlotName(p.Target), env.SlotName(p.Left), p.Op, env.SlotName(p.Right))
}

// CondJump is a conditional branch.  When its condition holds, control falls
// through to the successor node; otherwise, control continues at Target.
type CondJump struct {
	Left   Slot
	Op     CmpOp
	Right  Slot
	Target Handle
}

// Uses implementation for Instruction interface.
func (p *CondJump) Uses() []Slot {
	return []Slot{p.Left, p.Right}
}

// Definitions implementation for Instruction interface.
func (p *CondJump) Definitions() []Slot {
	return nil
}

func (p *CondJump) String(env Env) string {
	return fmt.Sprintf("if !(%s %s %s) goto %s", env.SlotName(p.Left), p.Op, env.SlotName(p.Right),
		env.Label(p.Target))
}

// Jump is an unconditional branch.  Control never falls through a jump, even
// if its node has a successor.
type Jump struct {
	Target Handle
}

// Uses implementation for Instruction interface.
func (p *Jump) Uses() []Slot {
	return nil
}

// Definitions implementation for Instruction interface.
func (p *Jump) Definitions() []Slot {
	return nil
}

func (p *Jump) String(env Env) string {
	return fmt.Sprintf("goto %s", env.Label(p.Target))
}

// Input reads the next value of the input queue into a given slot.
type Input struct {
	Target Slot
}

// Uses implementation for Instruction interface.
func (p *Input) Uses() []Slot {
	return nil
}

// Definitions implementation for Instruction interface.
func (p *Input) Definitions() []Slot {
	return []Slot{p.Target}
}

func (p *Input) String(env Env) string {
	return fmt.Sprintf("input %s", env.SlotName(p.Target))
}

// Output emits the value held in a given slot.
type Output struct {
	Source Slot
}

// Uses implementation for Instruction interface.
func (p *Output) Uses() []Slot {
	return []Slot{p.Source}
}

// Definitions implementation for Instruction interface.
func (p *Output) Definitions() []Slot {
	return nil
}

func (p *Output) String(env Env) string {
	return fmt.Sprintf("output %s", env.SlotName(p.Source))
}

// Targets returns the jump target of a given instruction, if it has one.
func Targets(insn Instruction) (Handle, bool) {
	switch insn := insn.(type) {
	case *CondJump:
		return insn.Target, true
	case *Jump:
		return insn.Target, true
	default:
		return NIL, false
	}
}
