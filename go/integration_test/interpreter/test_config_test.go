// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package interpreter_test

import (
	"github.com/Fantom-foundation/wsvm/go/ws"

	// Registers the interpreter configurations under test.
	_ "github.com/Fantom-foundation/wsvm/go/interpreter/wsvm"
)

// getAllInterpreterVariantsForTests returns the names of all registered
// interpreter configurations, in sorted order.
func getAllInterpreterVariantsForTests() []string {
	return ws.RegisteredInterpreterNames()
}
