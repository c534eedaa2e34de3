// Package pool provides object pooling for go-argv
// Used by the argv store to recycle token arenas and token slot slices
package pool

import (
	"sync"
)

// Pool provides a generic, type-safe object pool
type Pool[T any] struct {
	pool    sync.Pool
	reset   func(*T) // Optional reset function called before reuse
	maxSize int      // Maximum objects to keep (0 = unlimited)
	count   int64    // Current pool size (approximate)
	mutex   sync.RWMutex
}

// NewPool creates a new generic pool with the given factory function
func NewPool[T any](factory func() *T) *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any {
				return factory()
			},
		},
	}
}

// NewPoolWithReset creates a pool with a reset function called before reuse
func NewPoolWithReset[T any](factory func() *T, reset func(*T)) *Pool[T] {
	p := NewPool(factory)
	p.reset = reset
	return p
}

// Get retrieves an object from the pool or creates a new one
func (p *Pool[T]) Get() *T {
	obj := p.pool.Get().(*T)
	if p.maxSize > 0 {
		p.mutex.Lock()
		if p.count > 0 {
			p.count--
		}
		p.mutex.Unlock()
	}
	if p.reset != nil {
		p.reset(obj)
	}
	return obj
}

// Put returns an object to the pool for reuse
func (p *Pool[T]) Put(obj *T) {
	if obj == nil {
		return
	}

	if p.maxSize > 0 {
		p.mutex.Lock()
		defer p.mutex.Unlock()
		if p.count >= int64(p.maxSize) {
			return
		}
		p.count++
	}

	p.pool.Put(obj)
}

// SetMaxSize sets the maximum number of objects to keep in the pool
func (p *Pool[T]) SetMaxSize(size int) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.maxSize = size
}

// Stats returns approximate pool statistics
func (p *Pool[T]) Stats() (count int64, maxSize int) {
	p.mutex.RLock()
	defer p.mutex.RUnlock()
	return p.count, p.maxSize
}

// BufferPool pools byte slices in power-of-two capacity buckets.
// Requests above the largest bucket are served by make and never pooled.
type BufferPool struct {
	pools   map[int]*Pool[[]byte]
	buckets []int
}

// NewBufferPool creates a buffer pool with buckets from minCap up to maxCap,
// doubling each step.
func NewBufferPool(minCap, maxCap int) *BufferPool {
	bp := &BufferPool{pools: make(map[int]*Pool[[]byte])}
	for c := minCap; c <= maxCap; c *= 2 {
		capacity := c
		bp.buckets = append(bp.buckets, capacity)
		bp.pools[capacity] = NewPoolWithReset(
			func() *[]byte {
				buf := make([]byte, 0, capacity)
				return &buf
			},
			func(buf *[]byte) {
				*buf = (*buf)[:0] // Reset length but keep capacity
			},
		)
	}
	return bp
}

// Get retrieves an empty buffer with at least the requested capacity
func (bp *BufferPool) Get(minCap int) *[]byte {
	bucket, ok := bp.findBucket(minCap)
	if !ok {
		buf := make([]byte, 0, minCap)
		return &buf
	}
	return bp.pools[bucket].Get()
}

// Put returns a buffer to the pool matching its capacity. Buffers whose
// capacity is not exactly a bucket size are dropped.
func (bp *BufferPool) Put(buf *[]byte) {
	if buf == nil {
		return
	}
	if p, ok := bp.pools[cap(*buf)]; ok {
		p.Put(buf)
	}
}

// findBucket finds the smallest bucket that holds minCap bytes
func (bp *BufferPool) findBucket(minCap int) (int, bool) {
	for _, bucket := range bp.buckets {
		if bucket >= minCap {
			return bucket, true
		}
	}
	return 0, false
}

// StringSlicePool provides pooling for string slices
type StringSlicePool struct {
	*Pool[[]string]
}

// NewStringSlicePool creates a new string slice pool
func NewStringSlicePool(defaultCap int) *StringSlicePool {
	return &StringSlicePool{
		Pool: NewPoolWithReset(
			func() *[]string {
				slice := make([]string, 0, defaultCap)
				return &slice
			},
			func(slice *[]string) {
				clear(*slice)
				*slice = (*slice)[:0]
			},
		),
	}
}

// Global pool instances
var (
	// Arena buffers for command lines up to 64KiB, the Windows limit
	GlobalBufferPool = NewBufferPool(64, 64<<10)

	// Token slot slices
	GlobalStringSlicePool = NewStringSlicePool(32)
)

// GetBuffer retrieves an arena buffer with at least minCap bytes of capacity
func GetBuffer(minCap int) *[]byte {
	return GlobalBufferPool.Get(minCap)
}

// PutBuffer returns an arena buffer to the global pool
func PutBuffer(buf *[]byte) {
	GlobalBufferPool.Put(buf)
}

// GetStringSlice retrieves an empty string slice
func GetStringSlice() *[]string {
	return GlobalStringSlicePool.Get()
}

// PutStringSlice returns a string slice to the global pool
func PutStringSlice(slice *[]string) {
	GlobalStringSlicePool.Put(slice)
}
