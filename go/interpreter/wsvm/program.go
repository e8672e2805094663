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
	"slices"
	"strings"

	"golang.org/x/exp/maps"
)

// Program is the result of parsing a Whitespace source: the instruction
// sequence and the table mapping labels to the position following their MARK
// instruction. A Program is immutable once parsed and may be shared between
// concurrent runs.
type Program struct {
	Code   Code
	Labels map[Label]int
}

// target resolves the position registered for the given label. Positions
// are not checked against the length of the code.
func (p *Program) target(label Label) (int, error) {
	pos, found := p.Labels[label]
	if !found {
		return 0, fmt.Errorf("%w: %v", ErrLabelNotFound, label)
	}
	return pos, nil
}

func (p *Program) String() string {
	builder := strings.Builder{}
	builder.WriteString(p.Code.String())
	labels := maps.Keys(p.Labels)
	slices.Sort(labels)
	for _, label := range labels {
		builder.WriteString(fmt.Sprintf("%v -> 0x%04x\n", label, p.Labels[label]))
	}
	return builder.String()
}
