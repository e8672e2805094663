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

// GetFibExample computes Fibonacci numbers using recursive calls.
func GetFibExample() Example {
	a := newAssembler()
	readArgument(a).call("fib").putn().end()

	// fib: [n] -> [fib(n)]
	a.entry("fib")
	a.dup().subtract(2).jumpNegative("base") // n < 2
	a.dup().subtract(1).call("fib")          // [n, fib(n-1)]
	a.swap().subtract(2).call("fib")         // [fib(n-1), fib(n-2)]
	a.add().ret()
	a.entry("base")
	a.ret()

	return exampleSpec{
		Name:      "fib",
		source:    a.String(),
		reference: fib,
	}.build()
}

func fib(n int) int {
	if n < 2 {
		return n
	}
	return fib(n-1) + fib(n-2)
}
