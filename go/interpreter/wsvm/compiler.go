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
	lru "github.com/hashicorp/golang-lru/v2"
)

// CompilerConfig contains a set of configuration options for parsing sources
// into programs.
type CompilerConfig struct {
	// CacheSize is the maximum number of parsed programs retained in the
	// cache. If set to 0, a default size is used. If negative, no cache is
	// used.
	CacheSize int
}

const defaultCacheSize = 1 << 10

// maxCachedSourceLength is the maximum length of a source in bytes that is
// retained in the cache. Longer sources are parsed on every request.
const maxCachedSourceLength = 1 << 20

// Compiler parses sources into programs, caching the results by source
// hash. Since programs are immutable, cached instances are shared between
// runs. The Compiler is thread-safe.
type Compiler struct {
	config CompilerConfig
	cache  *lru.Cache[Hash, *Program]
}

// NewCompiler creates a new compiler with the provided configuration.
func NewCompiler(config CompilerConfig) (*Compiler, error) {
	if config.CacheSize == 0 {
		config.CacheSize = defaultCacheSize
	}

	var cache *lru.Cache[Hash, *Program]
	if config.CacheSize > 0 {
		var err error
		cache, err = lru.New[Hash, *Program](config.CacheSize)
		if err != nil {
			return nil, err
		}
	}
	return &Compiler{
		config: config,
		cache:  cache,
	}, nil
}

// Compile parses the given source. Programs that parsed successfully are
// cached; parse errors are reported on every request.
func (c *Compiler) Compile(filename, source string) (*Program, error) {
	if c.cache == nil || len(source) > maxCachedSourceLength {
		return NewParser(filename, source).ParseAll()
	}

	hash := hashSource(source)
	if res, exists := c.cache.Get(hash); exists {
		return res, nil
	}

	res, err := NewParser(filename, source).ParseAll()
	if err != nil {
		return nil, err
	}
	c.cache.Add(hash, res)
	return res, nil
}

// cachedPrograms returns the number of programs currently held in the cache.
func (c *Compiler) cachedPrograms() int {
	if c.cache == nil {
		return 0
	}
	return c.cache.Len()
}
