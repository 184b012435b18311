package service

import (
	"github.com/MKhiriev/go-replisync/internal/adapter"
	"github.com/MKhiriev/go-replisync/internal/config"
	"github.com/MKhiriev/go-replisync/internal/logger"
	"github.com/MKhiriev/go-replisync/internal/store"
	"github.com/MKhiriev/go-replisync/internal/utils"
	"github.com/jonboulle/clockwork"
)

type ClientServices struct {
	SyncService    ClientSyncService
	ReplicaService ClientReplicaService
	SyncJob        ClientSyncJob
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, cfg config.ClientSync, logger *logger.Logger) *ClientServices {
	syncSvc := NewClientSyncService(storages.Replica, serverAdapter, cfg, utils.NewUUIDGenerator(), logger)

	return &ClientServices{
		SyncService:    syncSvc,
		ReplicaService: NewClientReplicaService(storages.Replica),
		SyncJob:        NewClientSyncJob(syncSvc, clockwork.NewRealClock(), logger),
	}
}
