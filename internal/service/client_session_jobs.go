package service

import (
	"context"
	"sync"
)

// clientSessionJobs runs the background work of one authenticated session
// under a single cancellable context.
type clientSessionJobs struct {
	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// Start stops any previously running tasks, then launches every task in its
// own goroutine. The tasks exit when ctx is cancelled or Cancel/Stop is
// called.
func (j *clientSessionJobs) Start(ctx context.Context, tasks ...func(ctx context.Context)) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(len(tasks))
	j.mu.Unlock()

	for _, task := range tasks {
		go func() {
			defer j.wg.Done()
			task(jobCtx)
		}()
	}
}

// Cancel signals the running tasks without waiting for them. It may be
// called from a task.
func (j *clientSessionJobs) Cancel() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// Stop cancels the running tasks and blocks until they have exited. Safe to
// call when nothing is running. Must not be called from a task.
func (j *clientSessionJobs) Stop() {
	j.Cancel()
	j.wg.Wait()
}
