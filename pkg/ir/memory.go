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
	"slices"
	"strconv"
)

// Memory allocates slots of a flat memory store to the variables and literals
// of a program, recording the initial value of each slot.  Variables receive a
// slot on first reference, whilst every literal occurrence receives a fresh
// slot of its own (i.e. literals are never shared).
type Memory struct {
	// Location table mapping variable names to slots.
	locations map[string]Slot
	// Variable names in order of first appearance.
	variables []string
	// Initial contents of the store.
	store []int
	// Identifies which slots hold literals.
	literals []bool
}

// NewMemory constructs an (initially empty) memory.
func NewMemory() *Memory {
	return &Memory{locations: make(map[string]Slot)}
}

// Variable returns the slot of the variable with the given name, allocating
// (and zeroing) one if this name has not been seen before.
func (p *Memory) Variable(name string) Slot {
	if slot, ok := p.locations[name]; ok {
		return slot
	}
	//
	slot := p.allocate(0, false)
	p.locations[name] = slot
	p.variables = append(p.variables, name)
	//
	return slot
}

// Literal allocates a fresh slot initialised to the given value.
func (p *Memory) Literal(value int) Slot {
	return p.allocate(value, true)
}

// Lookup returns the slot of a given variable, or false if it has not been
// allocated.
func (p *Memory) Lookup(name string) (Slot, bool) {
	slot, ok := p.locations[name]
	return slot, ok
}

// Variables returns the names of all allocated variables in order of first
// appearance.
func (p *Memory) Variables() []string {
	return p.variables
}

// Len returns the number of slots allocated so far.
func (p *Memory) Len() uint {
	return uint(len(p.store))
}

// Store returns a copy of the initial memory store.
func (p *Memory) Store() []int {
	return slices.Clone(p.store)
}

// IsValid checks whether a given slot addresses an allocated location.
func (p *Memory) IsValid(slot Slot) bool {
	return slot >= 0 && int(slot) < len(p.store)
}

// IsLiteral checks whether a given slot was allocated for a literal.
func (p *Memory) IsLiteral(slot Slot) bool {
	return p.IsValid(slot) && p.literals[slot]
}

// Value returns the initial value of a given slot.
func (p *Memory) Value(slot Slot) int {
	return p.store[slot]
}

// Name returns a human readable name for a given slot: the variable name, the
// value of a literal, or "?" for a slot which was never allocated.
func (p *Memory) Name(slot Slot) string {
	switch {
	case !p.IsValid(slot):
		return "?"
	case p.literals[slot]:
		return strconv.Itoa(p.store[slot])
	}
	// Linear, but only used for printing.
	for _, name := range p.variables {
		if p.locations[name] == slot {
			return name
		}
	}
	//
	return "?"
}

func (p *Memory) allocate(value int, literal bool) Slot {
	p.store = append(p.store, value)
	p.literals = append(p.literals, literal)
	//
	return Slot(len(p.store) - 1)
}
