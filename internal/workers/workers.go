package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-job-board/internal/logger"
)

type Workers struct {
	workers []Worker
	logger  *logger.Logger

	wg sync.WaitGroup
}

// NewWorkers groups workers; nil entries are skipped.
func NewWorkers(logger *logger.Logger, workers ...Worker) *Workers {
	w := &Workers{logger: logger}
	for _, worker := range workers {
		if worker != nil {
			w.workers = append(w.workers, worker)
		}
	}
	return w
}

// Run starts every worker in its own goroutine and returns immediately.
// Use Wait to block until all of them have stopped.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		w.wg.Add(1)
		go func(worker Worker) {
			defer w.wg.Done()

			w.logger.Info().Str("worker", worker.Name()).Msg("worker started")
			if err := worker.Run(ctx); err != nil {
				w.logger.Err(err).Str("worker", worker.Name()).Msg("worker stopped with error")
				return
			}
			w.logger.Info().Str("worker", worker.Name()).Msg("worker stopped")
		}(worker)
	}
}

// Wait blocks until every started worker has returned.
func (w *Workers) Wait() {
	w.wg.Wait()
}
