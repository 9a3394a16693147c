// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package image

import (
	"sync"
	"testing"
)

func TestPoolReuse(t *testing.T) {
	pool := NewPool(4)

	buf1, err := pool.Get(64, 32)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	buf1.Fill(1, 2, 3, 4)
	pool.Put(buf1)

	if pool.Len() != 1 {
		t.Errorf("Len() = %d, want 1", pool.Len())
	}

	buf2, _ := pool.Get(64, 32)
	if buf2 != buf1 {
		t.Error("Get() should reuse the pooled buffer of the same size")
	}
	if _, _, _, a := buf2.At(0, 0); a != 0 {
		t.Error("reused buffer should be cleared")
	}

	other, _ := pool.Get(32, 32)
	if other == buf1 {
		t.Error("Get() returned a buffer of a different size")
	}
}

func TestPoolBucketLimit(t *testing.T) {
	pool := NewPool(2)
	for range 5 {
		b, _ := NewBuf(8, 8)
		pool.Put(b)
	}
	if pool.Len() != 2 {
		t.Errorf("Len() = %d, want 2", pool.Len())
	}
	pool.Put(nil)
}

func TestPoolGetInvalid(t *testing.T) {
	pool := NewPool(1)
	if _, err := pool.Get(0, 10); err == nil {
		t.Error("Get(0, 10) should fail")
	}
}

func TestPoolConcurrent(t *testing.T) {
	pool := NewPool(0)
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				b, err := pool.Get(16, 16)
				if err != nil {
					t.Error(err)
					return
				}
				pool.Put(b)
			}
		}()
	}
	wg.Wait()
}
