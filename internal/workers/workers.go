package workers

import (
	"context"

	"github.com/MKhiriev/go-replisync/internal/config"
	"github.com/MKhiriev/go-replisync/internal/logger"
	"github.com/MKhiriev/go-replisync/internal/service"
	"golang.org/x/sync/errgroup"
)

type Workers struct {
	workers []Worker
	logger  *logger.Logger
}

// NewWorkers builds the client worker set: currently the periodic sync.
func NewWorkers(services *service.ClientServices, cfg config.ClientWorkers, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{newSyncWorker(services.SyncJob, cfg.SyncInterval, logger)},
		logger:  logger,
	}
}

// Run blocks until ctx is cancelled or a worker fails.
func (w *Workers) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, worker := range w.workers {
		g.Go(func() error {
			return worker.Run(gctx)
		})
	}

	err := g.Wait()
	if err != nil {
		w.logger.Err(err).Str("func", "Workers.Run").Msg("worker stopped with error")
	}
	return err
}
