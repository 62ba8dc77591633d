// Package pool holds reusable xxhash digests
package pool

import (
	"sync"

	"github.com/cespare/xxhash/v2"
)

var Hash64 = NewHash64Pool()

// Hash64Pool hands out xxhash digests that are reset on every Get
type Hash64Pool struct {
	digests sync.Pool
}

func NewHash64Pool() *Hash64Pool {
	return &Hash64Pool{
		digests: sync.Pool{
			New: func() interface{} {
				return xxhash.New()
			},
		},
	}
}

func (p *Hash64Pool) Get() *xxhash.Digest {
	digest := p.digests.Get().(*xxhash.Digest)
	digest.Reset()
	return digest
}

func (p *Hash64Pool) Put(digest *xxhash.Digest) {
	p.digests.Put(digest)
}

// Sum64 hashes the concatenation of chunks
func (p *Hash64Pool) Sum64(chunks ...[]byte) uint64 {
	digest := p.Get()
	defer p.Put(digest)
	for _, chunk := range chunks {
		_, _ = digest.Write(chunk)
	}
	return digest.Sum64()
}
