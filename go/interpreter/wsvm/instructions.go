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
)

// --- Stack manipulation ---

func opPush(c *context, value *big.Int) {
	c.stack.push(newValue(value))
}

func opDup(c *context) error {
	top, err := c.stack.peek()
	if err != nil {
		return err
	}
	c.stack.push(top)
	return nil
}

func opSwap(c *context) error {
	a, err := c.stack.pop()
	if err != nil {
		return err
	}
	b, err := c.stack.pop()
	if err != nil {
		return err
	}
	c.stack.push(a)
	c.stack.push(b)
	return nil
}

func opDiscard(c *context) error {
	_, err := c.stack.pop()
	return err
}

// --- Arithmetic ---

// binaryOp pops the left operand (top of the stack) and the right operand
// (second element) and pushes the result of the given operation.
func binaryOp(c *context, op func(a, b *big.Rat) (*big.Rat, error)) error {
	a, err := c.stack.pop()
	if err != nil {
		return err
	}
	b, err := c.stack.pop()
	if err != nil {
		return err
	}
	res, err := op(a, b)
	if err != nil {
		return err
	}
	c.stack.push(res)
	return nil
}

func opAdd(c *context) error {
	return binaryOp(c, func(a, b *big.Rat) (*big.Rat, error) {
		return new(big.Rat).Add(a, b), nil
	})
}

func opSub(c *context) error {
	return binaryOp(c, func(a, b *big.Rat) (*big.Rat, error) {
		return new(big.Rat).Sub(a, b), nil
	})
}

func opMul(c *context) error {
	return binaryOp(c, func(a, b *big.Rat) (*big.Rat, error) {
		return new(big.Rat).Mul(a, b), nil
	})
}

func opDiv(c *context) error {
	return binaryOp(c, quotient)
}

func opMod(c *context) error {
	return binaryOp(c, remainder)
}

// --- Heap access ---

func opStore(c *context) error {
	value, err := c.stack.pop()
	if err != nil {
		return err
	}
	address, err := c.stack.pop()
	if err != nil {
		return err
	}
	c.heap.store(address, value)
	return nil
}

func opRetrieve(c *context) error {
	address, err := c.stack.pop()
	if err != nil {
		return err
	}
	value, err := c.heap.fetch(address)
	if err != nil {
		return err
	}
	c.stack.push(value)
	return nil
}

// --- IO ---

// readInput drains the input channel. Every input instruction reads
// independently of previous ones.
func readInput(c *context) (string, error) {
	input, err := c.input.ReadAll()
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return input, nil
}

func writeOutput(c *context, s string) error {
	if err := c.output.WriteString(s); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func opGetc(c *context) error {
	input, err := readInput(c)
	if err != nil {
		return err
	}
	address, err := c.stack.pop()
	if err != nil {
		return err
	}
	c.heap.store(address, firstCharacter(input))
	return nil
}

func opGetn(c *context) error {
	input, err := readInput(c)
	if err != nil {
		return err
	}
	value, err := parseDecimal(input)
	if err != nil {
		return err
	}
	address, err := c.stack.pop()
	if err != nil {
		return err
	}
	c.heap.store(address, value)
	return nil
}

func opPutc(c *context) error {
	value, err := c.stack.pop()
	if err != nil {
		return err
	}
	char, err := toCharacter(value)
	if err != nil {
		return err
	}
	return writeOutput(c, char)
}

func opPutn(c *context) error {
	value, err := c.stack.pop()
	if err != nil {
		return err
	}
	return writeOutput(c, formatValue(value))
}

// --- Flow control ---

// All control transfers set the program counter to the resolved target; the
// interpreter loop increments it afterwards as for any other instruction.

func opCall(c *context, label Label) error {
	target, err := c.program.target(label)
	if err != nil {
		return err
	}
	c.calls.push(c.pc)
	c.pc = target
	return nil
}

func opRet(c *context) error {
	pc, err := c.calls.pop()
	if err != nil {
		return err
	}
	c.pc = pc
	return nil
}

func opJump(c *context, label Label) error {
	target, err := c.program.target(label)
	if err != nil {
		return err
	}
	c.pc = target
	return nil
}

func opJumpZero(c *context, label Label) error {
	value, err := c.stack.pop()
	if err != nil {
		return err
	}
	if value.Sign() != 0 {
		return nil
	}
	return opJump(c, label)
}

func opJumpNegative(c *context, label Label) error {
	value, err := c.stack.pop()
	if err != nil {
		return err
	}
	if value.Sign() >= 0 {
		return nil
	}
	return opJump(c, label)
}

func opEnd(c *context) {
	c.pc = len(c.code)
}
