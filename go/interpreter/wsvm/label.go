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

import "strings"

// Label is the name of a jump or call target. It holds the raw sequence of
// space and tab characters spelling the label, so two labels are equal iff
// their token sequences are identical.
type Label string

// String renders the label with S for spaces and T for tabs.
func (l Label) String() string {
	return strings.NewReplacer(" ", "S", "\t", "T").Replace(string(l))
}

// labelOf builds a label from the given tokens. Tokens other than Space and
// Tab are ignored.
func labelOf(tokens ...Token) Label {
	builder := strings.Builder{}
	for _, token := range tokens {
		switch token {
		case Space:
			builder.WriteByte(' ')
		case Tab:
			builder.WriteByte('\t')
		}
	}
	return Label(builder.String())
}
