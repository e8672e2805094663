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
	"math/big"
)

// heap is the sparse, integer addressed store of the VM. Cells are absent
// until stored.
type heap struct {
	cells map[string]*big.Rat
}

func newHeap() heap {
	return heap{cells: map[string]*big.Rat{}}
}

func (h *heap) store(address, value *big.Rat) {
	if h.cells == nil {
		h.cells = map[string]*big.Rat{}
	}
	h.cells[heapKey(address)] = value
}

func (h *heap) fetch(address *big.Rat) (*big.Rat, error) {
	value, found := h.cells[heapKey(address)]
	if !found {
		return nil, fmt.Errorf("%w: %v", ErrAddressNotStored, formatValue(address))
	}
	return value, nil
}

func (h *heap) len() int {
	return len(h.cells)
}
