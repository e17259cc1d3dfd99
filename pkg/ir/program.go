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
	"strings"

	"github.com/consensys/go-linkir/pkg/util/collection/queue"
)

// Program is the result of translating a source program.  It consists of the
// nodes making up the code, the node at which execution begins, the memory
// layout and the values of the input queue.
type Program struct {
	code   *Arena
	entry  Handle
	memory *Memory
	inputs []int
}

// NewProgram constructs a program from its constituent parts.  An entry of
// NIL indicates a program with an empty body.
func NewProgram(code *Arena, entry Handle, memory *Memory, inputs []int) *Program {
	return &Program{code, entry, memory, inputs}
}

// Code returns the arena holding the nodes of this program.
func (p *Program) Code() *Arena {
	return p.code
}

// Entry returns the first node to be executed (or NIL for an empty body).
func (p *Program) Entry() Handle {
	return p.entry
}

// Memory returns the memory layout of this program.
func (p *Program) Memory() *Memory {
	return p.memory
}

// Inputs returns the values of the input queue, front first.
func (p *Program) Inputs() []int {
	return p.inputs
}

// Layout returns every node reachable from the entry, in the order in which
// they should be listed.  Fall-through chains are kept together, whilst nodes
// only reachable by a jump are placed after the chain in which their jump was
// found.
func (p *Program) Layout() []Handle {
	var (
		order   []Handle
		visited = make(map[Handle]bool)
		pending = queue.NewQueue(p.entry)
	)
	//
	for !pending.IsEmpty() {
		for node := pending.Pop(); node != NIL && !visited[node]; node = p.code.Next(node) {
			visited[node] = true
			order = append(order, node)
			//
			if target, ok := Targets(p.code.Instruction(node)); ok && target != NIL {
				pending.Push(target)
			}
		}
	}
	//
	return order
}

// String returns a listing of this program, with one line per reachable node.
// A fall-through which does not continue to the following line is shown
// explicitly.
func (p *Program) String() string {
	var (
		builder strings.Builder
		order   = p.Layout()
		env     = newListingEnv(p.memory, order)
	)
	//
	for i, node := range order {
		var (
			insn = p.code.Instruction(node)
			next = p.code.Next(node)
		)
		//
		builder.WriteString(fmt.Sprintf("[%d]\t%s", i, insn.String(env)))
		//
		if _, ok := insn.(*Jump); !ok && next != NIL && env.labels[next] != i+1 {
			builder.WriteString(fmt.Sprintf("\t-> %s", env.Label(next)))
		}
		//
		builder.WriteString("\n")
	}
	//
	return builder.String()
}

// listingEnv names slots using the memory layout, and nodes by their position
// in a given layout.
type listingEnv struct {
	memory *Memory
	labels map[Handle]int
}

func newListingEnv(memory *Memory, order []Handle) *listingEnv {
	labels := make(map[Handle]int, len(order))
	//
	for i, node := range order {
		labels[node] = i
	}
	//
	return &listingEnv{memory, labels}
}

func (p *listingEnv) SlotName(slot Slot) string {
	return p.memory.Name(slot)
}

func (p *listingEnv) Label(target Handle) string {
	if index, ok := p.labels[target]; ok {
		return fmt.Sprintf("%d", index)
	}
	//
	return "?"
}
