package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-replisync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=mock/client_service_mock.go -package=mock

// ClientSyncService keeps the local replica in step with the server.
type ClientSyncService interface {
	// Pull runs one poll cycle: it sends the stored cookie, applies the
	// returned patch and stores the new cookie, all or nothing.
	Pull(ctx context.Context) error
}

// ClientReplicaService reads the synced data back out of the replica.
type ClientReplicaService interface {
	Lists(ctx context.Context) ([]models.List, error)
	// Todos returns the todos of listID ordered by their sort key. An empty
	// listID returns every todo.
	Todos(ctx context.Context, listID string) ([]models.Todo, error)
	Todo(ctx context.Context, id string) (models.Todo, bool, error)
	// LastMutationIDs returns the last mutation id the server acknowledged
	// for each client of the group.
	LastMutationIDs(ctx context.Context) (map[string]int64, error)
}

// ClientSyncJob calls ClientSyncService.Pull on a ticker.
type ClientSyncJob interface {
	// Start launches the background loop. Any running loop is stopped first.
	// Non-positive intervals fall back to DefaultSyncInterval.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the loop to exit and blocks until it has.
	Stop()
}
