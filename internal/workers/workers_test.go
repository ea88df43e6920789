// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-job-board/internal/logger"
	"github.com/stretchr/testify/assert"
)

// blockingWorker is a test implementation of the Worker interface that
// counts runs and blocks until its context is cancelled.
type blockingWorker struct {
	runCount atomic.Int32
	err      error
}

func (m *blockingWorker) Name() string { return "blocking" }

func (m *blockingWorker) Run(ctx context.Context) error {
	m.runCount.Add(1)
	<-ctx.Done()
	return m.err
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &blockingWorker{}
	w2 := &blockingWorker{}
	w3 := &blockingWorker{err: errors.New("boom")}

	ctx, cancel := context.WithCancel(context.Background())
	ws := NewWorkers(logger.Nop(), w1, w2, w3)
	ws.Run(ctx)

	assert.Eventually(t, func() bool {
		return w1.runCount.Load() == 1 && w2.runCount.Load() == 1 && w3.runCount.Load() == 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	ws.Wait()
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := NewWorkers(logger.Nop())

	// Should not block on an empty workers list
	ws.Run(context.Background())
	ws.Wait()
}

func TestWorkers_NilWorkersAreSkipped(t *testing.T) {
	w := &blockingWorker{}
	ws := NewWorkers(logger.Nop(), nil, w, nil)
	assert.Len(t, ws.workers, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ws.Run(ctx)
	ws.Wait()

	assert.Equal(t, int32(1), w.runCount.Load())
}

func TestWorkers_Wait_ReturnsAfterCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	ws := NewWorkers(logger.Nop(), &blockingWorker{})
	ws.Run(ctx)

	done := make(chan struct{})
	go func() {
		ws.Wait()
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("Wait returned before cancel")
	case <-time.After(20 * time.Millisecond):
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Wait did not return after cancel")
	}
}
