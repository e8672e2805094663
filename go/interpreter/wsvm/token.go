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

// Token is one of the three characters recognized by the grammar, or the
// end-of-input sentinel. Every other character is commentary.
type Token byte

const (
	EndOfInput Token = iota
	Space
	Tab
	LineFeed
)

func (t Token) String() string {
	switch t {
	case EndOfInput:
		return "EOF"
	case Space:
		return "SPACE"
	case Tab:
		return "TAB"
	case LineFeed:
		return "LF"
	}
	return "INVALID"
}

// tokenOf maps a source character to its token. The result is false for
// commentary characters.
func tokenOf(r rune) (Token, bool) {
	switch r {
	case ' ':
		return Space, true
	case '\t':
		return Tab, true
	case '\n':
		return LineFeed, true
	}
	return EndOfInput, false
}
