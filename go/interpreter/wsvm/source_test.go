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
	"math/big"
	"strings"
)

// Helpers composing Whitespace sources for tests.

const (
	S = " "
	T = "\t"
	L = "\n"
)

// number encodes a number literal: sign, binary digits and a LineFeed.
func number(n int64) string {
	return bigNumber(big.NewInt(n))
}

func bigNumber(n *big.Int) string {
	sign := S
	if n.Sign() < 0 {
		sign = T
	}
	digits := new(big.Int).Abs(n).Text(2)
	digits = strings.NewReplacer("0", S, "1", T).Replace(digits)
	return sign + digits + L
}

func push(n int64) string { return S + S + number(n) }

const (
	dup      = S + L + S
	swap     = S + L + T
	discard  = S + L + L
	add      = T + S + S + S
	sub      = T + S + S + T
	mul      = T + S + S + L
	div      = T + S + T + S
	mod      = T + S + T + T
	store    = T + T + S
	retrieve = T + T + T
	putc     = T + L + S + S
	putn     = T + L + S + T
	getc     = T + L + T + S
	getn     = T + L + T + T
	ret      = L + T + L
	end      = L + L + L
)

func mark(label string) string { return L + S + S + label + L }
func call(label string) string { return L + S + T + label + L }
func jump(label string) string { return L + S + L + label + L }
func jumpZ(label string) string { return L + T + S + label + L }
func jumpN(label string) string { return L + T + T + label + L }
func source(parts ...string) string { return strings.Join(parts, "") }

func pushOp(n int64) Instruction {
	return Instruction{opcode: PUSH, value: big.NewInt(n)}
}

func labelOp(op OpCode, label string) Instruction {
	return Instruction{opcode: op, label: Label(label)}
}

func equalCode(a, b Code) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].opcode != b[i].opcode || a[i].label != b[i].label {
			return false
		}
		if (a[i].value == nil) != (b[i].value == nil) {
			return false
		}
		if a[i].value != nil && a[i].value.Cmp(b[i].value) != 0 {
			return false
		}
	}
	return true
}
