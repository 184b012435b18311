package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-replisync/internal/logger"
	"github.com/jonboulle/clockwork"
)

// DefaultSyncInterval is used when Start gets a non-positive interval.
const DefaultSyncInterval = 5 * time.Second

type clientSyncJob struct {
	syncService ClientSyncService
	clock       clockwork.Clock

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewClientSyncJob creates a job that calls syncService.Pull on every tick
// of clock. The job is idle until Start is called.
func NewClientSyncJob(syncService ClientSyncService, clock clockwork.Clock, logger *logger.Logger) ClientSyncJob {
	return &clientSyncJob{syncService: syncService, clock: clock, logger: logger}
}

// Start returns once the ticker is armed. Failed cycles are logged and the
// next tick retries from the last applied cookie.
func (j *clientSyncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultSyncInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	ticker := j.clock.NewTicker(interval)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		defer ticker.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-ticker.Chan():
				if err := j.syncService.Pull(jobCtx); err != nil && jobCtx.Err() == nil {
					j.logger.Err(err).Str("func", "clientSyncJob.Start").Msg("sync cycle failed")
				}
			}
		}
	}()
}

// Stop is a no-op when the job is not running.
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
