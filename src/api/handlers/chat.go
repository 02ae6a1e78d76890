package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"portfolio-server/src/schemas"
	"portfolio-server/src/utils"
)

// AnswerQuery always responds 200; provider failures surface through
// the Success flag of the response body.
func (h *Handler) AnswerQuery(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	var req schemas.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.HandleErrors(w, utils.BadRequest("invalid request body"))
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		h.HandleErrors(w, utils.BadRequest("query is required"))
		return
	}

	response := h.Controller.AnswerQuery(ctx, req.Query)
	h.respond(w, r, response, http.StatusOK)
}
