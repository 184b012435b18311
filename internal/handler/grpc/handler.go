// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"github.com/MKhiriev/go-replisync/internal/logger"
	"github.com/MKhiriev/go-replisync/internal/service"
	"google.golang.org/grpc"
)

// Handler is the gRPC transport handler. It implements SyncServer on top of
// the service layer and provides the interceptors the server is built with.
type Handler struct {
	services *service.Services

	logger *logger.Logger
}

// NewHandler constructs a Handler over services.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// Register attaches the Sync service to s.
func (h *Handler) Register(s *grpc.Server) {
	s.RegisterService(&SyncServiceDesc, h)
}

// ServerOptions returns the interceptor chain: trace id and access logging
// first, then bearer auth when an AuthService is configured.
func (h *Handler) ServerOptions() []grpc.ServerOption {
	interceptors := []grpc.UnaryServerInterceptor{h.withTraceID, h.withLogging}
	if h.services != nil && h.services.AuthService != nil {
		interceptors = append(interceptors, h.auth)
	}

	return []grpc.ServerOption{grpc.ChainUnaryInterceptor(interceptors...)}
}
