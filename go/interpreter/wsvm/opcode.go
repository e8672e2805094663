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

import "fmt"

type OpCode byte

const (
	// Stack manipulation
	PUSH OpCode = iota
	DUP
	SWAP
	DISCARD

	// Arithmetic
	ADD
	SUB
	MUL
	DIV
	MOD

	// Heap access
	STORE
	RETRIEVE

	// IO
	PUTC
	PUTN
	GETC
	GETN

	// Flow control
	MARK
	CALL
	JUMP
	JUMPZ
	JUMPN
	RET
	END

	// NUM_OPCODES is the number of defined OpCodes. It is not an instruction.
	NUM_OPCODES
)

var toString = [NUM_OPCODES]string{
	PUSH:     "PUSH",
	DUP:      "DUP",
	SWAP:     "SWAP",
	DISCARD:  "DISCARD",
	ADD:      "ADD",
	SUB:      "SUB",
	MUL:      "MUL",
	DIV:      "DIV",
	MOD:      "MOD",
	STORE:    "STORE",
	RETRIEVE: "RETRIEVE",
	PUTC:     "PUTC",
	PUTN:     "PUTN",
	GETC:     "GETC",
	GETN:     "GETN",
	MARK:     "MARK",
	CALL:     "CALL",
	JUMP:     "JUMP",
	JUMPZ:    "JUMPZ",
	JUMPN:    "JUMPN",
	RET:      "RET",
	END:      "END",
}

// String returns the string representation of the OpCode.
func (o OpCode) String() string {
	if o < NUM_OPCODES {
		return toString[o]
	}
	return fmt.Sprintf("op(0x%02X)", byte(o))
}

// HasValue returns true if instructions of this OpCode carry a numeric
// argument.
func (o OpCode) HasValue() bool {
	return o == PUSH
}

// HasLabel returns true if instructions of this OpCode carry a label
// argument.
func (o OpCode) HasLabel() bool {
	switch o {
	case MARK, CALL, JUMP, JUMPZ, JUMPN:
		return true
	}
	return false
}

// isValid returns true if the OpCode is one of the defined instructions.
func (o OpCode) isValid() bool {
	return o < NUM_OPCODES
}
