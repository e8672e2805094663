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
	"io"
	"strings"

	"github.com/Fantom-foundation/wsvm/go/ws"
)

// status is enumeration of the execution state of an interpreter run.
type status byte

const (
	statusRunning status = iota // < all fine, ops are processed
	statusStopped               // < the program counter moved past the end of the code
	statusFailed                // < execution stopped with a runtime error
)

// context is the execution environment of an interpreter run. It contains
// the program and the machine state: program counter, data stack, heap and
// call stack. For each program execution, a new context is created.
type context struct {
	// Inputs
	program *Program
	code    Code // < the code of the program, cached for the fetch loop
	input   ws.Input
	output  ws.Output

	// Execution state
	pc    int
	stack *stack
	heap  heap
	calls callStack

	// Number of instructions executed so far
	steps uint64
}

func newContext(program *Program, input ws.Input, output ws.Output) context {
	if input == nil {
		input = ws.NewReaderInput(strings.NewReader(""))
	}
	if output == nil {
		output = ws.NewWriterOutput(io.Discard)
	}
	return context{
		program: program,
		code:    program.Code,
		input:   input,
		output:  output,
		stack:   NewStack(),
		heap:    newHeap(),
	}
}

// --- Interpreter ---

type runner interface {
	// run executes the program in the given context. It returns the first
	// runtime error encountered, or nil if the program ran to completion.
	run(*context) error
}

type interpreterConfig struct {
	runner runner
}

func run(
	config interpreterConfig,
	program *Program,
	params ws.Parameters,
) (ws.Result, error) {
	ctxt := newContext(program, params.Input, params.Output)
	defer ReturnStack(ctxt.stack)

	if config.runner == nil {
		config.runner = vanillaRunner{}
	}
	if err := config.runner.run(&ctxt); err != nil {
		return ws.Result{Steps: ctxt.steps}, err
	}
	return ws.Result{Steps: ctxt.steps}, nil
}

// --- Runners ---

// vanillaRunner is the default runner that executes the program without
// any additional features.
type vanillaRunner struct{}

func (r vanillaRunner) run(c *context) error {
	_, err := steps(c, false)
	return err
}

// --- Execution ---

// step executes the instruction pointed to by the program counter.
func step(c *context) (status, error) {
	return steps(c, true)
}

// steps executes the program in the given context. After every instruction
// the program counter is incremented, including after instructions setting
// it themselves (CALL, JUMP, JUMPZ, JUMPN, RET, END). The run ends once the
// program counter is at or beyond the end of the code.
// If oneStepOnly is true, at most one instruction is executed.
func steps(c *context, oneStepOnly bool) (status, error) {
	for {
		if c.pc >= len(c.code) {
			return statusStopped, nil
		}

		pc := c.pc
		instruction := &c.code[pc]

		var err error
		switch instruction.opcode {
		case PUSH:
			opPush(c, instruction.value)
		case DUP:
			err = opDup(c)
		case SWAP:
			err = opSwap(c)
		case DISCARD:
			err = opDiscard(c)
		case ADD:
			err = opAdd(c)
		case SUB:
			err = opSub(c)
		case MUL:
			err = opMul(c)
		case DIV:
			err = opDiv(c)
		case MOD:
			err = opMod(c)
		case STORE:
			err = opStore(c)
		case RETRIEVE:
			err = opRetrieve(c)
		case PUTC:
			err = opPutc(c)
		case PUTN:
			err = opPutn(c)
		case GETC:
			err = opGetc(c)
		case GETN:
			err = opGetn(c)
		case MARK:
			// nothing
		case CALL:
			err = opCall(c, instruction.label)
		case JUMP:
			err = opJump(c, instruction.label)
		case JUMPZ:
			err = opJumpZero(c, instruction.label)
		case JUMPN:
			err = opJumpNegative(c, instruction.label)
		case RET:
			err = opRet(c)
		case END:
			opEnd(c)
		default:
			err = ErrInvalidOpCode
		}

		if err != nil {
			return statusFailed, &RuntimeError{Pc: pc, Op: instruction.opcode, Err: err}
		}

		c.pc++
		c.steps++

		if oneStepOnly {
			if c.pc >= len(c.code) {
				return statusStopped, nil
			}
			return statusRunning, nil
		}
	}
}
