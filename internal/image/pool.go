// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package image

import "sync"

// Pool recycles buffers grouped by size.
//
// All methods are safe for concurrent use.
type Pool struct {
	mu      sync.Mutex
	buckets map[poolKey][]*Buf
	maxSize int // max buffers per bucket, 0 = unlimited
}

type poolKey struct {
	width  int
	height int
}

// NewPool creates a pool retaining at most maxPerBucket buffers per size.
func NewPool(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[poolKey][]*Buf),
		maxSize: maxPerBucket,
	}
}

// Get returns a cleared buffer of the requested size, reusing a pooled one
// when available.
func (p *Pool) Get(width, height int) (*Buf, error) {
	key := poolKey{width: width, height: height}

	p.mu.Lock()
	bucket := p.buckets[key]
	if n := len(bucket); n > 0 {
		buf := bucket[n-1]
		p.buckets[key] = bucket[:n-1]
		p.mu.Unlock()
		buf.Clear()
		return buf, nil
	}
	p.mu.Unlock()

	return NewBuf(width, height)
}

// Put returns a buffer to the pool. Nil buffers are ignored and buffers beyond
// the bucket limit are dropped.
func (p *Pool) Put(buf *Buf) {
	if buf == nil {
		return
	}
	key := poolKey{width: buf.Width(), height: buf.Height()}

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[key]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[key] = append(bucket, buf)
}

// Len returns the number of pooled buffers across all sizes.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	n := 0
	for _, b := range p.buckets {
		n += len(b)
	}
	return n
}
