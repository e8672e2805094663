// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package wsvm

import (
	"fmt"
	"math/big"
	"strings"
	"sync"
)

// stack is the data stack of the VM. Unlike the call stack it grows on
// demand; the backing array is retained when stacks are recycled through
// the stack pool.
//
// Example usage:
//
//	s := NewStack()
//	defer ReturnStack(s)
//	<use the stack in your local scope>
//
// The stack is not thread-safe. NewStack() and ReturnStack() are thread-safe.
type stack struct {
	data []*big.Rat
}

// push adds the given value to the top of the stack. Values are shared, not
// copied, and thus must not be modified after being pushed.
func (s *stack) push(v *big.Rat) {
	s.data = append(s.data, v)
}

// pop removes the top element from the stack and returns it.
func (s *stack) pop() (*big.Rat, error) {
	if len(s.data) == 0 {
		return nil, ErrStackUnderflow
	}
	top := s.data[len(s.data)-1]
	s.data[len(s.data)-1] = nil
	s.data = s.data[:len(s.data)-1]
	return top, nil
}

// peek returns the top element of the stack without removing it.
func (s *stack) peek() (*big.Rat, error) {
	if len(s.data) == 0 {
		return nil, ErrStackUnderflow
	}
	return s.data[len(s.data)-1], nil
}

// len returns the number of elements on the stack.
func (s *stack) len() int {
	return len(s.data)
}

// get returns the element at the given index. The bottom element is at index 0.
func (s *stack) get(i int) *big.Rat {
	return s.data[i]
}

func (s *stack) String() string {
	b := strings.Builder{}
	for i := s.len() - 1; i >= 0; i-- {
		b.WriteString(fmt.Sprintf("    [%4d] %v\n", i, formatValue(s.get(i))))
	}
	return b.String()
}

// ------------------ Stack Pool ------------------

var stackPool = sync.Pool{
	New: func() interface{} {
		return &stack{}
	},
}

// NewStack returns a new stack instance from the a reuse pool.
// This function is thread-safe.
func NewStack() *stack {
	return stackPool.Get().(*stack)
}

// ReturnStack returns the stack to the reuse pool. Any stack may only be
// returned once to avoid concurrent re-use. This is not checked internally.
// This function is thread-safe.
func ReturnStack(s *stack) {
	clear(s.data)
	s.data = s.data[:0]
	stackPool.Put(s)
}
