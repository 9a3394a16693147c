package parallel

import (
	"runtime"
	"sync"
)

// Pool is a fixed set of goroutines executing row bands.
//
// Rows splits a row range into bands, queues all but the first and runs
// the first on the calling goroutine, so a call always makes progress even
// when every worker is busy.
//
// Thread safety: Pool is safe for concurrent use.
type Pool struct {
	workers int
	queue   chan func()
	done    chan struct{}
	wg      sync.WaitGroup

	// mu guards running; Rows holds it shared while queueing so Close
	// cannot stop the workers under a half-queued call.
	mu      sync.RWMutex
	running bool
}

// NewPool starts a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		workers: workers,
		queue:   make(chan func(), max(workers*4, 8)),
		done:    make(chan struct{}),
		running: true,
	}
	p.wg.Add(workers)
	for range workers {
		go p.worker()
	}
	return p
}

// Default returns the process-wide pool, started on first use.
var Default = sync.OnceValue(func() *Pool { return NewPool(0) })

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case <-p.done:
			p.drain()
			return
		case work := <-p.queue:
			work()
		}
	}
}

// drain runs whatever is still queued.
func (p *Pool) drain() {
	for {
		select {
		case work := <-p.queue:
			work()
		default:
			return
		}
	}
}

// Rows calls fn over [0, n) split into contiguous [y0, y1) bands of at
// least minBand rows and returns when every band is done. Bands never
// overlap. Small ranges and a closed pool run fn inline.
func (p *Pool) Rows(n, minBand int, fn func(y0, y1 int)) {
	if n <= 0 {
		return
	}
	minBand = max(minBand, 1)
	bands := min(p.workers+1, n/minBand)
	if bands <= 1 {
		fn(0, n)
		return
	}

	p.mu.RLock()
	if !p.running {
		p.mu.RUnlock()
		fn(0, n)
		return
	}
	size := (n + bands - 1) / bands
	var wg sync.WaitGroup
	for y0 := size; y0 < n; y0 += size {
		y1 := min(y0+size, n)
		wg.Add(1)
		p.queue <- func() {
			defer wg.Done()
			fn(y0, y1)
		}
	}
	p.mu.RUnlock()

	fn(0, size)
	wg.Wait()
}

// Workers returns the number of worker goroutines.
func (p *Pool) Workers() int { return p.workers }

// IsRunning reports whether the pool still accepts work.
func (p *Pool) IsRunning() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.running
}

// Close stops the workers after queued bands finish. Later Rows calls run
// inline. Close is safe to call multiple times.
func (p *Pool) Close() {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return
	}
	p.running = false
	close(p.done)
	p.mu.Unlock()
	p.wg.Wait()
}
