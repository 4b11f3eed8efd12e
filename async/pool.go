// Package async provides worker pools for fanning blocking work, such as
// decoding textures, out across goroutines.
//
// Pools adapted from Egon's https://github.com/egonelbre/expgio.
package async

import (
	"context"
	"runtime"
	"sync"
)

// Scheduler schedules work according to some strategy.
// Implementations can implement the best way to distribute work for a given
// application.
type Scheduler interface {
	// Schedule a piece of work. This method is allowed to block.
	Schedule(func())
}

// FixedWorkerPool implements a simple fixed-size worker pool that lets go
// runtime schedule work atop some number of goroutines.
//
// This pool will minimize goroutine latency at the cost of maintaining the
// configured number of goroutines until Close is called.
type FixedWorkerPool struct {
	// Workers specifies the number of concurrent workers in this pool.
	Workers int
	// queue of work. Unbuffered so it will block if worker pull is at capacity.
	queue chan func()
	// once time initialization.
	sync.Once
}

// Schedule work to be executed by the available workers. This is a blocking
// call if all workers are busy. Schedule must not be called after Close.
func (p *FixedWorkerPool) Schedule(work func()) {
	p.init()
	p.queue <- work
}

// Close stops the workers once queued work has drained.
func (p *FixedWorkerPool) Close() {
	p.init()
	close(p.queue)
}

func (p *FixedWorkerPool) init() {
	p.Once.Do(func() {
		p.queue = make(chan func())
		if p.Workers <= 0 {
			p.Workers = runtime.NumCPU()
		}
		for ii := 0; ii < p.Workers; ii++ {
			go func() {
				for w := range p.queue {
					if w != nil {
						w()
					}
				}
			}()
		}
	})
}

// DynamicWorkerPool implements a simple dynamic-sized worker pool that spins up
// a new worker per unit of work, until the maximum number of workers has been
// reached.
//
// This pool will minimize idle memory as goroutines will die off once complete,
// but will incur the latency cost, such that it is, of spinning up goroutines
// on-the-fly.
type DynamicWorkerPool struct {
	// Workers specifies the maximum allowed number of concurrent workers in
	// this pool. Defaults to NumCPU.
	Workers int
	// count is a semaphore that limits the number of workers at any given
	// time. The size of the buffer for the channel provides the limit.
	count chan struct{}
	// once time initialization.
	sync.Once
}

// Schedule work to be executed by a new worker. This is a blocking call if
// all workers are busy.
func (p *DynamicWorkerPool) Schedule(work func()) {
	p.Once.Do(func() {
		if p.Workers <= 0 {
			p.Workers = runtime.NumCPU()
		}
		p.count = make(chan struct{}, p.Workers)
	})
	if work == nil {
		return
	}
	p.count <- struct{}{}
	go func() {
		defer func() { <-p.count }()
		work()
	}()
}

// Run schedules n jobs on s and waits for all of them. The returned slice
// holds the error of each job by index.
//
// Jobs that have not started when ctx is done are skipped and report the
// context error.
func Run(ctx context.Context, s Scheduler, n int, job func(ctx context.Context, ii int) error) []error {
	var (
		errs = make([]error, n)
		wg   sync.WaitGroup
	)
	for ii := 0; ii < n; ii++ {
		if err := ctx.Err(); err != nil {
			errs[ii] = err
			continue
		}
		ii := ii
		wg.Add(1)
		s.Schedule(func() {
			defer wg.Done()
			if err := ctx.Err(); err != nil {
				errs[ii] = err
				return
			}
			errs[ii] = job(ctx, ii)
		})
	}
	wg.Wait()
	return errs
}
