package handlers

import (
	"net/http"
)

func (h *Handler) GetPortfolioSummary(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	summary, err := h.Controller.GetPortfolioSummary(ctx)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, summary, http.StatusOK)
}

func (h *Handler) GetDiversification(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	suggestion, err := h.Controller.GetDiversification(ctx)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, suggestion, http.StatusOK)
}

func (h *Handler) GetBestPerformer(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	best, err := h.Controller.GetBestPerformer(ctx)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	if best == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	h.respond(w, r, best, http.StatusOK)
}

func (h *Handler) GetWorstPerformer(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	worst, err := h.Controller.GetWorstPerformer(ctx)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	if worst == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	h.respond(w, r, worst, http.StatusOK)
}
