package grpc

import (
	"context"

	"github.com/MKhiriev/go-replisync/internal/logger"
	"github.com/MKhiriev/go-replisync/internal/utils"
	"github.com/MKhiriev/go-replisync/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Pull serves replisync.v1.Sync/Pull.
func (h *Handler) Pull(ctx context.Context, req *models.PullRequest) (*models.PullResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	in := *req
	in.UserID = ""
	if userID, ok := utils.GetUserIDFromContext(ctx); ok {
		in.UserID = userID
	}

	resp, err := h.services.PullService.Pull(ctx, in)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "Handler.Pull").
			Str("client_group_id", in.ClientGroupID).
			Msg("pull failed")
		return nil, statusFromError(err)
	}

	return &resp, nil
}
