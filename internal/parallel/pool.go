// Package parallel provides the fixed-size worker pool the server uses to
// run solve jobs. The engine itself is single-threaded; the pool exists so
// a burst of requests saturates the CPUs without exhausting the host, with
// one fully-owned engine state per job.
package parallel

import (
	"context"
	"errors"
	"runtime"
	"sync"
)

// ErrPoolShutdown is returned when submitting to a pool that has been shut
// down.
var ErrPoolShutdown = errors.New("worker pool has been shut down")

// Pool runs submitted tasks on a fixed number of worker goroutines.
type Pool struct {
	workers      int
	taskChan     chan func()
	workerWg     sync.WaitGroup
	shutdownChan chan struct{}
	once         sync.Once
}

// NewPool creates a pool with the given number of workers. A non-positive
// count defaults to the number of CPU cores.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	p := &Pool{
		workers:      workers,
		taskChan:     make(chan func(), workers*2),
		shutdownChan: make(chan struct{}),
	}
	for i := 0; i < workers; i++ {
		p.workerWg.Add(1)
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.workerWg.Done()
	for {
		select {
		case task := <-p.taskChan:
			if task != nil {
				task()
			}
		case <-p.shutdownChan:
			return
		}
	}
}

// Submit hands a task to the pool, blocking until a queue slot frees up,
// the context is cancelled, or the pool shuts down.
func (p *Pool) Submit(ctx context.Context, task func()) error {
	select {
	case <-p.shutdownChan:
		return ErrPoolShutdown
	default:
	}
	select {
	case p.taskChan <- task:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-p.shutdownChan:
		return ErrPoolShutdown
	}
}

// Run executes task on the pool and waits for it to finish.
func (p *Pool) Run(ctx context.Context, task func()) error {
	done := make(chan struct{})
	err := p.Submit(ctx, func() {
		defer close(done)
		task()
	})
	if err != nil {
		return err
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		// the task keeps running on its worker; the caller stops waiting
		return ctx.Err()
	}
}

// Workers returns the fixed worker count.
func (p *Pool) Workers() int { return p.workers }

// QueueDepth returns the number of queued tasks.
func (p *Pool) QueueDepth() int { return len(p.taskChan) }

// Shutdown stops the workers after their current tasks. Safe to call more
// than once.
func (p *Pool) Shutdown() {
	p.once.Do(func() {
		close(p.shutdownChan)
		p.workerWg.Wait()
	})
}
