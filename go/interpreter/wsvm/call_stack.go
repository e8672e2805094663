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

// callStack holds the program counters saved by CALL instructions.
type callStack struct {
	data []int
}

func (s *callStack) push(pc int) {
	s.data = append(s.data, pc)
}

func (s *callStack) pop() (int, error) {
	if len(s.data) == 0 {
		return 0, ErrCallStackUnderflow
	}
	pc := s.data[len(s.data)-1]
	s.data = s.data[:len(s.data)-1]
	return pc, nil
}

func (s *callStack) len() int {
	return len(s.data)
}
