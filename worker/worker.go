// Package worker runs CPU heavy tasks, such as whole simulations, on a fixed set of goroutines.
package worker

import (
	"runtime"
	"sync"

	"github.com/getsentry/sentry-go"
)

// Pool is a fixed set of goroutines running submitted tasks. A task that panics is reported to sentry and
// does not take its goroutine down.
type Pool struct {
	tasks chan func()
	wg    sync.WaitGroup
	once  sync.Once
}

// New starts a pool of n goroutines. If n is not positive, one goroutine per CPU is started.
func New(n int) *Pool {
	if n <= 0 {
		n = runtime.NumCPU()
	}
	p := &Pool{tasks: make(chan func(), n)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for f := range p.tasks {
		p.run(f)
	}
}

func (p *Pool) run(f func()) {
	defer sentry.Recover()
	f()
}

// Submit queues f, blocking while every goroutine is busy and the queue is full. Submitting to a closed
// pool panics.
func (p *Pool) Submit(f func()) {
	p.tasks <- f
}

// Close stops accepting tasks and waits for the queued ones to finish.
func (p *Pool) Close() {
	p.once.Do(func() {
		close(p.tasks)
	})
	p.wg.Wait()
}
