package worker

import (
	"context"
	"errors"
	"sync"
)

// ErrStopped is returned when submitting to a pool that has been stopped.
var ErrStopped = errors.New("worker pool stopped")

// Job represents a unit of work executed by the pool.
type Job func()

// Pool runs jobs on a fixed number of goroutines.
type Pool interface {
	Submit(ctx context.Context, job Job) error
	Stop()
}

// NewPool creates a pool with n workers. n<=0 defaults to 1.
func NewPool(n int) Pool {
	if n <= 0 {
		n = 1
	}
	p := &pool{jobs: make(chan Job), quit: make(chan struct{})}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go p.loop()
	}
	return p
}

type pool struct {
	jobs chan Job
	quit chan struct{}
	once sync.Once
	wg   sync.WaitGroup
}

func (p *pool) loop() {
	defer p.wg.Done()
	for {
		select {
		case job := <-p.jobs:
			if job != nil {
				job()
			}
		case <-p.quit:
			return
		}
	}
}

// Submit blocks until a worker accepts the job, ctx is done, or the pool stops.
func (p *pool) Submit(ctx context.Context, job Job) error {
	select {
	case <-p.quit:
		return ErrStopped
	default:
	}
	select {
	case p.jobs <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-p.quit:
		return ErrStopped
	}
}

// Stop waits for running jobs to finish. It is safe to call more than once.
func (p *pool) Stop() {
	p.once.Do(func() { close(p.quit) })
	p.wg.Wait()
}

// Run submits fn to p and waits for its result.
func Run(ctx context.Context, p Pool, fn func() error) error {
	done := make(chan error, 1)
	if err := p.Submit(ctx, func() { done <- fn() }); err != nil {
		return err
	}
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
