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

	"github.com/Fantom-foundation/wsvm/go/ws"
)

const (
	ErrStackUnderflow     = ws.ConstError("stack underflow")
	ErrCallStackUnderflow = ws.ConstError("call stack underflow")
	ErrAddressNotStored   = ws.ConstError("address not stored")
	ErrLabelNotFound      = ws.ConstError("label not found")
	ErrDivisionByZero     = ws.ConstError("division by zero")
	ErrInvalidNumber      = ws.ConstError("invalid number input")
	ErrInvalidCharacter   = ws.ConstError("invalid character code")
	ErrInvalidOpCode      = ws.ConstError("invalid opcode")
)

// ParseError is reported for source text not matching the grammar. Parsing
// stops at the first such error.
type ParseError struct {
	Filename string
	Line     int
	Column   int
	Message  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %s at %s:%d:%d", e.Message, e.Filename, e.Line, e.Column)
}

// RuntimeError is reported for a fault while executing the instruction at
// position Pc. Execution stops at the first such error.
type RuntimeError struct {
	Pc  int
	Op  OpCode
	Err error
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("runtime error: %v at instruction %d (%v)", e.Err, e.Pc, e.Op)
}

func (e *RuntimeError) Unwrap() error {
	return e.Err
}
