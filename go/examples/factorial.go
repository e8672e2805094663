// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package examples

// GetFactorialExample computes factorials using recursive calls.
func GetFactorialExample() Example {
	a := newAssembler()
	readArgument(a).call("fact").putn().end()

	// fact: [n] -> [n!]
	a.entry("fact")
	a.dup().jumpZero("zero")
	a.dup().subtract(1).call("fact")
	a.mul().ret()
	a.entry("zero")
	a.discard().push(1).ret()

	return exampleSpec{
		Name:      "factorial",
		source:    a.String(),
		reference: factorial,
	}.build()
}

func factorial(n int) int {
	res := 1
	for i := 2; i <= n; i++ {
		res *= i
	}
	return res
}
