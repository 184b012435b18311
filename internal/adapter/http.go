package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-replisync/internal/config"
	"github.com/MKhiriev/go-replisync/internal/logger"
	"github.com/MKhiriev/go-replisync/internal/utils"
	"github.com/MKhiriev/go-replisync/models"
)

const pullPath = "/api/replicache/pull"

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter builds an HTTP [ServerAdapter]. The address may omit
// the scheme, in which case http is assumed.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout).WithBearerToken(strings.TrimSpace(cfg.Token))

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", ErrAddressWithoutHost
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Pull POSTs req to /api/replicache/pull and decodes the patch.
func (h *httpServerAdapter) Pull(ctx context.Context, req models.PullRequest) (models.PullResponse, error) {
	var pulled models.PullResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&pulled).
		Post(pullPath)
	if err != nil {
		return models.PullResponse{}, fmt.Errorf("pull request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().
			Err(err).
			Str("func", "httpServerAdapter.Pull").
			Int("status", resp.StatusCode()).
			Msg("pull rejected by server")
		return models.PullResponse{}, err
	}

	return pulled, nil
}
