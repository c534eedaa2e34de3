package argv

import (
	"fmt"

	"github.com/dzonerzy/go-argv/internal/pool"
)

// Allocator supplies the single arena a Store tokenizes into.
// Alloc returns a slice of length n or an error; Free receives that slice
// back exactly once.
type Allocator interface {
	Alloc(n int) ([]byte, error)
	Free(b []byte)
}

// DefaultAllocator recycles arenas through the global buffer pool.
var DefaultAllocator Allocator = pooledAllocator{}

type pooledAllocator struct{}

func (pooledAllocator) Alloc(n int) ([]byte, error) {
	buf := pool.GetBuffer(n)
	return (*buf)[:n], nil
}

func (pooledAllocator) Free(b []byte) {
	b = b[:0]
	pool.PutBuffer(&b)
}

// LimitAllocator returns an allocator that refuses any arena larger than
// maxBytes and otherwise delegates to DefaultAllocator.
func LimitAllocator(maxBytes int) Allocator {
	return limitAllocator{max: maxBytes}
}

type limitAllocator struct {
	max int
}

func (l limitAllocator) Alloc(n int) ([]byte, error) {
	if n > l.max {
		return nil, fmt.Errorf("%w: arena of %d bytes exceeds limit of %d", ErrOutOfMemory, n, l.max)
	}
	return DefaultAllocator.Alloc(n)
}

func (l limitAllocator) Free(b []byte) {
	DefaultAllocator.Free(b)
}
