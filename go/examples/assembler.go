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

import (
	"strconv"
	"strings"
)

// assembler composes Whitespace source text instruction by instruction.
// Labels are referenced by name and encoded as distinct Space/Tab sequences.
type assembler struct {
	code   strings.Builder
	labels map[string]string
}

const (
	space    = " "
	tab      = "\t"
	linefeed = "\n"
)

func newAssembler() *assembler {
	return &assembler{labels: map[string]string{}}
}

func (a *assembler) emit(parts ...string) *assembler {
	for _, part := range parts {
		a.code.WriteString(part)
	}
	return a
}

// encode renders the binary digits of n using Space for 0 and Tab for 1.
func encode(n uint64) string {
	return strings.NewReplacer("0", space, "1", tab).Replace(strconv.FormatUint(n, 2))
}

func (a *assembler) label(name string) string {
	if label, found := a.labels[name]; found {
		return label
	}
	label := encode(uint64(len(a.labels) + 1))
	a.labels[name] = label
	return label
}

func (a *assembler) push(n int) *assembler {
	sign := space
	if n < 0 {
		sign = tab
		n = -n
	}
	return a.emit(space, space, sign, encode(uint64(n)), linefeed)
}

func (a *assembler) dup() *assembler      { return a.emit(space, linefeed, space) }
func (a *assembler) swap() *assembler     { return a.emit(space, linefeed, tab) }
func (a *assembler) discard() *assembler  { return a.emit(space, linefeed, linefeed) }
func (a *assembler) add() *assembler      { return a.emit(tab, space, space, space) }
func (a *assembler) sub() *assembler      { return a.emit(tab, space, space, tab) }
func (a *assembler) mul() *assembler      { return a.emit(tab, space, space, linefeed) }
func (a *assembler) mod() *assembler      { return a.emit(tab, space, tab, tab) }
func (a *assembler) store() *assembler    { return a.emit(tab, tab, space) }
func (a *assembler) retrieve() *assembler { return a.emit(tab, tab, tab) }
func (a *assembler) putn() *assembler     { return a.emit(tab, linefeed, space, tab) }
func (a *assembler) getn() *assembler     { return a.emit(tab, linefeed, tab, tab) }
func (a *assembler) ret() *assembler      { return a.emit(linefeed, tab, linefeed) }
func (a *assembler) end() *assembler      { return a.emit(linefeed, linefeed, linefeed) }

func (a *assembler) call(name string) *assembler {
	return a.emit(linefeed, space, tab, a.label(name), linefeed)
}

func (a *assembler) jump(name string) *assembler {
	return a.emit(linefeed, space, linefeed, a.label(name), linefeed)
}

func (a *assembler) jumpZero(name string) *assembler {
	return a.emit(linefeed, tab, space, a.label(name), linefeed)
}

func (a *assembler) jumpNegative(name string) *assembler {
	return a.emit(linefeed, tab, tab, a.label(name), linefeed)
}

// entry marks a jump and call target. Control transfers resume execution
// two instructions after the mark, so the mark is followed by a second,
// anonymous mark acting as a no-op for the skipped position.
func (a *assembler) entry(name string) *assembler {
	a.emit(linefeed, space, space, a.label(name), linefeed)
	return a.emit(linefeed, space, space, a.label(name+"#skip"), linefeed)
}

// subtract subtracts the constant n from the top of the stack.
func (a *assembler) subtract(n int) *assembler {
	return a.push(n).swap().sub()
}

func (a *assembler) String() string {
	return a.code.String()
}
