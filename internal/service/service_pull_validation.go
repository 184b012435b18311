package service

import (
	"context"

	"github.com/MKhiriev/go-replisync/internal/logger"
	"github.com/MKhiriev/go-replisync/internal/validators"
	"github.com/MKhiriev/go-replisync/models"
)

// pullValidationService rejects malformed pull requests before they reach
// the wrapped PullService, so nothing is read or cached for them.
type pullValidationService struct {
	inner     PullService
	validator validators.Validator

	logger *logger.Logger
}

// NewPullValidationService returns a wrapper that validates every request.
func NewPullValidationService(logger *logger.Logger) PullServiceWrapper {
	return &pullValidationService{validator: validators.NewPullValidator(), logger: logger}
}

func (v *pullValidationService) Wrap(s PullService) PullService {
	return &pullValidationService{inner: s, validator: v.validator, logger: v.logger}
}

func (v *pullValidationService) Pull(ctx context.Context, req models.PullRequest) (models.PullResponse, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		logger.FromContext(ctx).Warn().
			Err(err).
			Str("func", "pullValidationService.Pull").
			Str("client_group_id", req.ClientGroupID).
			Msg("pull request rejected")
		return models.PullResponse{}, err
	}

	return v.inner.Pull(ctx, req)
}
