package async

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
)

func TestRun(t *testing.T) {
	boom := errors.New("boom")
	for _, tt := range []struct {
		name  string
		sched func() Scheduler
	}{
		{name: "fixed", sched: func() Scheduler { return &FixedWorkerPool{Workers: 3} }},
		{name: "dynamic", sched: func() Scheduler { return &DynamicWorkerPool{Workers: 2} }},
		{name: "default workers", sched: func() Scheduler { return &DynamicWorkerPool{} }},
	} {
		t.Run(tt.name, func(t *testing.T) {
			var ran int64
			errs := Run(context.Background(), tt.sched(), 20, func(_ context.Context, ii int) error {
				atomic.AddInt64(&ran, 1)
				if ii%5 == 0 {
					return boom
				}
				return nil
			})
			if ran != 20 {
				t.Fatalf("ran %d jobs, want 20", ran)
			}
			for ii, err := range errs {
				if want := ii%5 == 0; errors.Is(err, boom) != want {
					t.Fatalf("job %d: got err %v", ii, err)
				}
			}
		})
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	pool := &FixedWorkerPool{Workers: 1}
	defer pool.Close()
	var ran int64
	errs := Run(ctx, pool, 4, func(context.Context, int) error {
		atomic.AddInt64(&ran, 1)
		return nil
	})
	if ran != 0 {
		t.Fatalf("ran %d jobs after cancellation", ran)
	}
	for ii, err := range errs {
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("job %d: got %v, want context.Canceled", ii, err)
		}
	}
}

func TestFixedWorkerPoolClose(t *testing.T) {
	pool := &FixedWorkerPool{}
	done := make(chan struct{})
	pool.Schedule(func() { close(done) })
	<-done
	if pool.Workers <= 0 {
		t.Fatalf("expected default worker count, got %d", pool.Workers)
	}
	pool.Close()
}
