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
	"math"
)

// Handle identifies a node within an Arena.  Handles remain valid for the
// lifetime of the arena, hence jump targets are simply handles and can refer
// to nodes whose successors (or own targets) have not yet been determined.
type Handle uint

// NIL is the handle of no node.  It marks the end of a fall-through chain, or
// a jump target which has not been resolved.
const NIL Handle = math.MaxUint

// Node is a single instruction together with its fall-through successor.
type Node struct {
	insn Instruction
	next Handle
}

// Arena owns every node of a program.  Nodes are created once and never
// removed.
type Arena struct {
	nodes []Node
}

// NewArena constructs an (initially empty) arena.
func NewArena() *Arena {
	return &Arena{}
}

// Add allocates a new node holding a given instruction, which has no
// successor.
func (p *Arena) Add(insn Instruction) Handle {
	p.nodes = append(p.nodes, Node{insn, NIL})
	//
	return Handle(len(p.nodes) - 1)
}

// Noop allocates a fresh noop node with no successor.
func (p *Arena) Noop() Handle {
	return p.Add(&Noop{})
}

// Len returns the number of nodes allocated in this arena.
func (p *Arena) Len() uint {
	return uint(len(p.nodes))
}

// Instruction returns the instruction held by a given node.
func (p *Arena) Instruction(node Handle) Instruction {
	return p.nodes[node].insn
}

// Next returns the fall-through successor of a given node (or NIL).
func (p *Arena) Next(node Handle) Handle {
	return p.nodes[node].next
}

// Link sets the fall-through successor of a given node.
func (p *Arena) Link(node Handle, next Handle) {
	p.nodes[node].next = next
}

// Last follows the fall-through chain from a given node to its final node.
func (p *Arena) Last(node Handle) Handle {
	for p.nodes[node].next != NIL {
		node = p.nodes[node].next
	}
	//
	return node
}

// Concat joins two chains by linking the final node of the first to the head
// of the second, returning the head of the combined chain.  If the first chain
// is empty (NIL), the second is returned.  Finding the final node walks the
// entire first chain, hence building long chains this way is quadratic.  The
// Fragment based Append does not suffer from this.
func (p *Arena) Concat(first, second Handle) Handle {
	if first == NIL {
		return second
	}
	//
	p.Link(p.Last(first), second)
	//
	return first
}

// Fragment identifies a fall-through chain by both its first and last nodes,
// such that chains can be appended in constant time.  An empty fragment has
// NIL for both.
type Fragment struct {
	Head Handle
	Tail Handle
}

// EmptyFragment returns a fragment containing no nodes.
func EmptyFragment() Fragment {
	return Fragment{NIL, NIL}
}

// Single returns a fragment consisting of exactly one node.  The node is
// assumed to have no successor.
func Single(node Handle) Fragment {
	return Fragment{node, node}
}

// IsEmpty checks whether this fragment contains any nodes.
func (f Fragment) IsEmpty() bool {
	return f.Head == NIL
}

// Append joins zero or more fragments, in order, into a single fragment by
// linking the tail of each to the head of the next (non-empty) one.
func (p *Arena) Append(fragments ...Fragment) Fragment {
	var result = EmptyFragment()
	//
	for _, f := range fragments {
		switch {
		case f.IsEmpty():
			continue
		case result.IsEmpty():
			result = f
		default:
			p.Link(result.Tail, f.Head)
			result.Tail = f.Tail
		}
	}
	//
	return result
}
