package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-replisync/internal/logger"
	"github.com/MKhiriev/go-replisync/internal/service"
)

// syncWorker keeps a ClientSyncJob running for the lifetime of ctx.
type syncWorker struct {
	job      service.ClientSyncJob
	interval time.Duration
	logger   *logger.Logger
}

func newSyncWorker(job service.ClientSyncJob, interval time.Duration, logger *logger.Logger) *syncWorker {
	return &syncWorker{job: job, interval: interval, logger: logger}
}

func (w *syncWorker) Run(ctx context.Context) error {
	w.logger.Info().Dur("interval", w.interval).Msg("sync worker started")
	w.job.Start(ctx, w.interval)

	<-ctx.Done()

	w.job.Stop()
	w.logger.Info().Msg("sync worker stopped")
	return nil
}
