package client

import (
	"context"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/MKhiriev/go-replisync/internal/logger"
	"github.com/MKhiriev/go-replisync/internal/service"
)

var _ Client = (*App)(nil)

type App struct {
	services *service.ClientServices
	workers  Runner
	out      io.Writer

	logger *logger.Logger
}

// NewApp wires the client runtime. The replica summary is written to out.
func NewApp(services *service.ClientServices, workers Runner, out io.Writer, logger *logger.Logger) (*App, error) {
	if services == nil || workers == nil {
		return nil, ErrIncompleteClient
	}

	return &App{
		services: services,
		workers:  workers,
		out:      out,
		logger:   logger,
	}, nil
}

// Run pulls once, prints the replica and hands over to the workers. A failed
// first pull is not fatal; the sync worker keeps retrying.
func (a *App) Run(ctx context.Context) error {
	if err := a.services.SyncService.Pull(ctx); err != nil {
		a.logger.Warn().Err(err).Str("func", "App.Run").Msg("initial sync failed")
	}

	if err := a.printReplica(ctx); err != nil {
		return fmt.Errorf("read replica: %w", err)
	}

	return a.workers.Run(ctx)
}

func (a *App) printReplica(ctx context.Context) error {
	lists, err := a.services.ReplicaService.Lists(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "replica holds %d list(s)\n", len(lists))
	for _, l := range lists {
		todos, err := a.services.ReplicaService.Todos(ctx, l.ID)
		if err != nil {
			return err
		}

		fmt.Fprintf(a.out, "%s (%s)\n", l.Name, l.ID)
		for _, t := range todos {
			mark := " "
			if t.Completed {
				mark = "x"
			}
			fmt.Fprintf(a.out, "  [%s] %s\n", mark, t.Text)
		}
	}

	acks, err := a.services.ReplicaService.LastMutationIDs(ctx)
	if err != nil {
		return err
	}
	for _, clientID := range slices.Sorted(maps.Keys(acks)) {
		fmt.Fprintf(a.out, "client %s acknowledged up to mutation %d\n", clientID, acks[clientID])
	}

	return nil
}
