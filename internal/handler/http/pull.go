package http

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/MKhiriev/go-replisync/internal/logger"
	"github.com/MKhiriev/go-replisync/internal/utils"
	"github.com/MKhiriev/go-replisync/models"
)

// maxPullBodySize bounds the request body; a pull request is a handful of
// short fields.
const maxPullBodySize = 64 << 10

// pull serves POST /api/replicache/pull. The optional spaceID query
// parameter sent by the Replicache samples is ignored.
func (h *Handler) pull(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.PullRequest
	dec := json.NewDecoder(io.LimitReader(r.Body, maxPullBodySize))
	if err := dec.Decode(&req); err != nil {
		log.Err(err).Str("func", "Handler.pull").Msg("invalid pull request body")
		utils.WriteError(w, ErrInvalidRequestBody.Error(), http.StatusBadRequest)
		return
	}
	if dec.More() {
		utils.WriteError(w, ErrInvalidRequestBody.Error(), http.StatusBadRequest)
		return
	}

	if userID, ok := utils.GetUserIDFromContext(r.Context()); ok {
		req.UserID = userID
	}

	resp, err := h.services.PullService.Pull(r.Context(), req)
	if err != nil {
		status := statusFromError(err)
		message := err.Error()
		// storage details stay in the log
		if status >= http.StatusInternalServerError {
			message = http.StatusText(status)
		}
		utils.WriteError(w, message, status)
		return
	}

	if _, err = utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		log.Err(err).Str("func", "Handler.pull").Msg("failed to write pull response")
	}
}
