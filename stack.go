// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

import "sync/atomic"

// StackNode is an intrusive stack node: the caller allocates and owns it,
// and chains it via [Stack.Push]. The stack itself never allocates.
//
// The zero StackNode is ready to push. After [Stack.Pop] returns a node,
// the caller owns it again and may reuse or discard it — but see the ABA
// warning on [Stack.Pop] before recycling a node while a pop might still
// be in flight.
type StackNode[T any] struct {
	next  atomic.Pointer[StackNode[T]]
	Value T
}

// Stack is a classical Treiber stack: an unbounded, lock-free LIFO of
// caller-owned, intrusively-linked nodes.
//
// Unlike [Ring], Stack does not use [code.hybscloud.com/atomix]: its single
// mutable field is the top-of-stack pointer itself, not a numeric cursor,
// and arbitrary caller-owned nodes must stay GC-traceable while linked —
// storing them as a bare uintptr (the shape atomix's observed surface
// offers) would hide them from the garbage collector. sync/atomic.Pointer[T]
// is the stdlib's typed, GC-safe equivalent and is used here instead; see
// DESIGN.md for the full justification.
//
// The zero Stack is an empty stack, ready to use.
type Stack[T any] struct {
	top atomic.Pointer[StackNode[T]]
}

// NewStack creates an empty stack.
func NewStack[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Push adds node to the top of the stack. node must not already be linked
// into this or any other stack.
func (s *Stack[T]) Push(node *StackNode[T]) {
	for {
		top := s.top.Load()
		node.next.Store(top)
		if s.top.CompareAndSwap(top, node) {
			return
		}
	}
}

// Pop removes and returns the top node, or nil if the stack is empty.
//
// Pop is a classical Treiber stack operation and is therefore vulnerable
// to the ABA problem if a popped node is pushed back onto the SAME stack
// while another Pop on that stack is still in flight: the CAS can succeed
// against a recycled address it only coincidentally still matches. Callers
// must ensure either that no popped node is reused while a concurrent Pop
// might be in flight, or layer a safe-memory-reclamation scheme (hazard
// pointers, epochs) external to this type.
func (s *Stack[T]) Pop() *StackNode[T] {
	for {
		top := s.top.Load()
		if top == nil {
			return nil
		}
		next := top.next.Load()
		if s.top.CompareAndSwap(top, next) {
			return top
		}
	}
}
