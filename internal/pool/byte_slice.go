// Package pool holds the sync.Pool wrappers used while rendering.
package pool

import "sync"

const defaultByteSliceCapacity = 64

// ByteSlicePool hands out zero-length byte slices for scratch use.
type ByteSlicePool struct {
	pool sync.Pool
}

var byteSlicePool = &ByteSlicePool{
	pool: sync.Pool{
		New: func() any {
			b := make([]byte, 0, defaultByteSliceCapacity)
			return &b
		},
	},
}

// ByteSlice returns the process-wide byte slice pool.
func ByteSlice() *ByteSlicePool {
	return byteSlicePool
}

func (p *ByteSlicePool) Get() []byte {
	return (*(p.pool.Get().(*[]byte)))[:0]
}

// GetCapacity returns a slice whose capacity is at least n.
func (p *ByteSlicePool) GetCapacity(n int) []byte {
	b := p.Get()
	if cap(b) < n {
		p.Put(b)
		return make([]byte, 0, n)
	}
	return b
}

func (p *ByteSlicePool) Put(b []byte) {
	// oversized buffers would pin memory
	if cap(b) > 64*1024 {
		return
	}
	b = b[:0]
	p.pool.Put(&b)
}
