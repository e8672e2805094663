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

func GetIncrementExample() Example {
	a := newAssembler()
	readArgument(a).push(1).add().putn().end()

	return exampleSpec{
		Name:      "inc",
		source:    a.String(),
		reference: increment,
	}.build()
}

func increment(x int) int {
	return x + 1
}
