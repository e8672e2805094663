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
	"bytes"
	"fmt"
	"math/big"
)

// Instruction encodes a single instruction of a Whitespace program.
type Instruction struct {
	// The op-code of this instruction.
	opcode OpCode
	// The literal pushed by PUSH instructions, nil otherwise.
	value *big.Int
	// The target of flow control instructions, empty otherwise.
	label Label
}

// Code of a Whitespace program is a slice of instructions.
type Code []Instruction

// OpCode returns the op-code of this instruction.
func (i Instruction) OpCode() OpCode {
	return i.opcode
}

func (i Instruction) String() string {
	switch {
	case i.opcode.HasValue():
		return fmt.Sprintf("%v %v", i.opcode, i.value)
	case i.opcode.HasLabel():
		return fmt.Sprintf("%v %v", i.opcode, i.label)
	}
	return i.opcode.String()
}

func (c Code) String() string {
	var buffer bytes.Buffer
	for i, instruction := range c {
		buffer.WriteString(fmt.Sprintf("0x%04x: %v\n", i, instruction))
	}
	return buffer.String()
}
