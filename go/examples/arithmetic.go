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

const arithmeticModulus = 1000003

// GetArithmeticExample sums up squares in a loop keeping its state in the
// heap.
func GetArithmeticExample() Example {
	const (
		counter = 0
		result  = 1
	)
	a := newAssembler()
	a.push(counter).getn()
	a.push(result).push(0).store()

	a.entry("loop")
	a.push(counter).retrieve().jumpZero("done")

	// result = (result + counter*counter) % modulus
	a.push(result)
	a.push(result).retrieve()
	a.push(counter).retrieve().dup().mul()
	a.add()
	a.push(arithmeticModulus).swap().mod()
	a.store()

	// counter = counter - 1
	a.push(counter)
	a.push(counter).retrieve().subtract(1)
	a.store()
	a.jump("loop")

	a.entry("done")
	a.push(result).retrieve().putn().end()

	return exampleSpec{
		Name:      "arithmetic",
		source:    a.String(),
		reference: arithmetic,
	}.build()
}

func arithmetic(n int) int {
	result := 0
	for i := 1; i <= n; i++ {
		result = (result + i*i) % arithmeticModulus
	}
	return result
}
