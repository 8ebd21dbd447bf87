package worker

import (
	"context"
	"sync"
)

// Job is a unit of work executed by the pool
type Job interface {
	Execute(ctx context.Context) Result
}

// Result is what a job produces
type Result interface {
	GetError() error
}

// Pool runs jobs across a fixed set of goroutines. Results arrive in
// completion order; callers that need a stable order sort after Wait.
type Pool struct {
	size   int
	jobs   chan Job
	done   chan Result
	wg     sync.WaitGroup
	ctx    context.Context
	cancel context.CancelFunc
	once   sync.Once
}

// NewPool creates a pool with the given number of workers (minimum 1)
func NewPool(size int) *Pool {
	if size < 1 {
		size = 1
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Pool{
		size:   size,
		jobs:   make(chan Job, size*2),
		done:   make(chan Result, size*2),
		ctx:    ctx,
		cancel: cancel,
	}
}

// Start launches the workers
func (p *Pool) Start() {
	p.wg.Add(p.size)
	for i := 0; i < p.size; i++ {
		go p.run()
	}
}

func (p *Pool) run() {
	defer p.wg.Done()

	for {
		select {
		case <-p.ctx.Done():
			return
		case job, ok := <-p.jobs:
			if !ok {
				return
			}
			res := job.Execute(p.ctx)
			select {
			case p.done <- res:
			case <-p.ctx.Done():
				return
			}
		}
	}
}

// Submit queues a job for execution. It is a no-op after Shutdown.
func (p *Pool) Submit(job Job) {
	select {
	case <-p.ctx.Done():
	case p.jobs <- job:
	}
}

// Wait closes the queue, drains every result, and returns them
func (p *Pool) Wait() []Result {
	close(p.jobs)

	go func() {
		p.wg.Wait()
		p.closeDone()
	}()

	var out []Result
	for res := range p.done {
		out = append(out, res)
	}
	return out
}

// Shutdown cancels in-flight jobs and releases the workers
func (p *Pool) Shutdown() {
	p.cancel()
	p.wg.Wait()
	p.closeDone()
}

func (p *Pool) closeDone() {
	p.once.Do(func() {
		close(p.done)
	})
}
