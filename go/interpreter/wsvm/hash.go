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
	"hash"
	"sync"

	"golang.org/x/crypto/sha3"
)

// Hash is the SHA3-256 digest of a program source.
type Hash [32]byte

var hasherPool = sync.Pool{New: func() any { return sha3.New256() }}

// hashSource computes the digest identifying the given source text.
func hashSource(source string) Hash {
	hasher := hasherPool.Get().(hash.Hash)
	hasher.Reset()
	// Writes to a hash never fail.
	_, _ = hasher.Write([]byte(source))
	var res Hash
	hasher.Sum(res[:0])
	hasherPool.Put(hasher)
	return res
}
