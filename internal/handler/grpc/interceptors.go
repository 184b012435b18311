package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/go-replisync/internal/logger"
	"github.com/MKhiriev/go-replisync/internal/utils"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const (
	traceIDKey       = "x-trace-id"
	authorizationKey = "authorization"
)

var traceIDs utils.IDGenerator = utils.NewUUIDGenerator()

func firstMetadata(ctx context.Context, key string) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if values := md.Get(key); len(values) > 0 {
		return values[0]
	}
	return ""
}

// withTraceID mirrors the HTTP middleware: the caller's x-trace-id is reused
// or a new one generated, echoed back in the header metadata and attached to
// the context logger.
func (h *Handler) withTraceID(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	traceID := firstMetadata(ctx, traceIDKey)
	if traceID == "" {
		traceID = traceIDs.Generate()
	}
	_ = grpc.SetHeader(ctx, metadata.Pairs(traceIDKey, traceID))

	l := h.logger.WithTraceID(traceID)
	return next(l.WithContext(ctx), req)
}

func (h *Handler) withLogging(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	started := time.Now()
	resp, err := next(ctx, req)

	code := status.Code(err)
	log := logger.FromContext(ctx)
	event := log.Info()
	if err != nil {
		event = log.Warn()
	}
	event.
		Str("method", info.FullMethod).
		Str("code", code.String()).
		Dur("duration", time.Since(started)).
		Msg("gRPC call")

	return resp, err
}

// auth reads the bearer token from the authorization metadata and puts its
// subject into the context.
func (h *Handler) auth(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	log := logger.FromContext(ctx)

	header := firstMetadata(ctx, authorizationKey)
	if header == "" {
		log.Warn().Err(ErrMissingAuthorization).Str("func", "Handler.auth").Send()
		return nil, statusFromError(ErrMissingAuthorization)
	}

	tokenString, err := utils.ParseBearerToken(header)
	if err != nil {
		log.Warn().Err(err).Str("func", "Handler.auth").Send()
		return nil, statusFromError(err)
	}

	token, err := h.services.AuthService.ParseToken(ctx, tokenString)
	if err != nil {
		log.Warn().Err(err).Str("func", "Handler.auth").Msg("token rejected")
		return nil, status.Error(codes.Unauthenticated, err.Error())
	}

	return next(utils.WithUserID(ctx, token.UserID), req)
}
