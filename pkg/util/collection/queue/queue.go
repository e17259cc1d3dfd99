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
package queue

// Queue is a FIFO queue backed by an array.  Items are never shifted on
// removal; instead, a head index records how many have been taken.
type Queue[T any] struct {
	items []T
	head  int
}

// NewQueue returns a queue initially holding the given items (front first).
func NewQueue[T any](items ...T) *Queue[T] {
	return &Queue[T]{items, 0}
}

// IsEmpty checks whether there are any items left in the queue.
func (p *Queue[T]) IsEmpty() bool {
	return p.Len() == 0
}

// Len returns the number of items remaining in the queue.
func (p *Queue[T]) Len() uint {
	return uint(len(p.items) - p.head)
}

// Push adds an item to the back of the queue.
func (p *Queue[T]) Push(item T) {
	p.items = append(p.items, item)
}

// Peek returns the item at the front of the queue without removing it.
func (p *Queue[T]) Peek() T {
	if p.IsEmpty() {
		panic("cannot peek into empty queue")
	}
	//
	return p.items[p.head]
}

// Pop removes and returns the item at the front of the queue.
func (p *Queue[T]) Pop() T {
	item := p.Peek()
	p.head++
	//
	return item
}

// Items returns the remaining items, front first.
func (p *Queue[T]) Items() []T {
	return p.items[p.head:]
}

// Clone returns an independent copy of this queue holding the remaining items.
func (p *Queue[T]) Clone() *Queue[T] {
	items := make([]T, p.Len())
	copy(items, p.items[p.head:])
	//
	return &Queue[T]{items, 0}
}
