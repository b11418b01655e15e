// Package pool provides object pooling for parse sessions and scratch
// buffers, so repeated Parse calls on the same option set stay
// allocation-light.
package pool

import (
	"bytes"
	"sync"
)

// Pool is a type-safe wrapper around sync.Pool with an optional reset
// hook applied on Get.
type Pool[T any] struct {
	pool  sync.Pool
	reset func(*T)
}

// New creates a pool backed by the given factory.
func New[T any](factory func() *T) *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{New: func() any { return factory() }},
	}
}

// NewWithReset creates a pool whose objects are reset before each reuse.
func NewWithReset[T any](factory func() *T, reset func(*T)) *Pool[T] {
	p := New(factory)
	p.reset = reset
	return p
}

// Get retrieves an object from the pool, resetting it if a reset hook was
// given.
func (p *Pool[T]) Get() *T {
	obj := p.pool.Get().(*T)
	if p.reset != nil {
		p.reset(obj)
	}
	return obj
}

// Put returns an object to the pool.
func (p *Pool[T]) Put(obj *T) {
	if obj != nil {
		p.pool.Put(obj)
	}
}

// BufferPool pools bytes.Buffers for text rendering. Oversized buffers
// are dropped instead of being kept alive.
type BufferPool struct {
	pool    sync.Pool
	maxSize int
}

// NewBufferPool creates a buffer pool. Buffers that grow beyond maxSize
// bytes are not returned to the pool; maxSize 0 means no limit.
func NewBufferPool(maxSize int) *BufferPool {
	return &BufferPool{
		pool:    sync.Pool{New: func() any { return new(bytes.Buffer) }},
		maxSize: maxSize,
	}
}

// Get retrieves an empty buffer.
func (p *BufferPool) Get() *bytes.Buffer {
	buf := p.pool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// Put returns a buffer to the pool unless it has grown past the size
// limit.
func (p *BufferPool) Put(buf *bytes.Buffer) {
	if buf == nil {
		return
	}
	if p.maxSize > 0 && buf.Cap() > p.maxSize {
		return
	}
	p.pool.Put(buf)
}
