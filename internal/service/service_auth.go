package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-replisync/internal/config"
	"github.com/MKhiriev/go-replisync/internal/logger"
	"github.com/MKhiriev/go-replisync/internal/utils"
	"github.com/MKhiriev/go-replisync/models"
	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenDuration is how long tokens issued by CreateToken stay valid.
const DefaultTokenDuration = 24 * time.Hour

// authService verifies and issues HMAC-signed bearer tokens. The token
// subject is the user id that owns lists.
type authService struct {
	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService returns nil when no sign key is configured, which turns
// authentication off for the pull endpoints.
func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	if cfg.TokenSignKey == "" {
		return nil
	}

	return &authService{
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: DefaultTokenDuration,
		logger:        logger,
	}
}

func (a *authService) CreateToken(ctx context.Context, userID string) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, userID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken reports expired tokens as ErrTokenIsExpired and every other
// validation failure as ErrInvalidToken.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "authService.ParseToken").Msg("token rejected")
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, ErrInvalidToken
	}

	return token, nil
}
