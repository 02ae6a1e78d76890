package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"portfolio-server/src/utils"
)

func (h *Handler) GetHistoricalPrices(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	symbol := chi.URLParam(r, "symbol")
	if symbol == "" {
		h.HandleErrors(w, utils.BadRequest("missing symbol URL parameter"))
		return
	}

	prices, err := h.Controller.GetHistoricalPrices(ctx, symbol)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, prices, http.StatusOK)
}

func (h *Handler) FetchHistoricalData(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	symbol := r.URL.Query().Get("symbol")
	if symbol == "" {
		h.HandleErrors(w, utils.BadRequest("missing symbol query parameter"))
		return
	}
	assetType := r.URL.Query().Get("assetType")

	count, err := h.Controller.FetchHistoricalData(ctx, symbol, assetType)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, map[string]interface{}{"symbol": symbol, "stored": count}, http.StatusOK)
}
