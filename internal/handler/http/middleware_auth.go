package http

import (
	"net/http"

	"github.com/MKhiriev/go-replisync/internal/logger"
	"github.com/MKhiriev/go-replisync/internal/utils"
)

// auth verifies the bearer token and puts its subject into the request
// context, where the pull handler picks it up as the owner whose lists are
// visible. Every failure is answered with 401.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Warn().Err(ErrEmptyAuthorizationHeader).Str("func", "Handler.auth").Send()
			utils.WriteError(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Warn().Err(err).Str("func", "Handler.auth").Send()
			utils.WriteError(w, err.Error(), statusFromError(err))
			return
		}

		token, err := h.services.AuthService.ParseToken(r.Context(), tokenString)
		if err != nil {
			log.Warn().Err(err).Str("func", "Handler.auth").Msg("token rejected")
			utils.WriteError(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := utils.WithUserID(r.Context(), token.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
