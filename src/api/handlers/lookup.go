package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"portfolio-server/src/utils"
)

func (h *Handler) SearchStocks(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	keywords := r.URL.Query().Get("q")
	if keywords == "" {
		h.HandleErrors(w, utils.BadRequest("missing q query parameter"))
		return
	}

	result, err := h.Controller.SearchStocks(ctx, keywords)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, result, http.StatusOK)
}

func (h *Handler) GetStockDetails(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	symbol := chi.URLParam(r, "symbol")
	if symbol == "" {
		h.HandleErrors(w, utils.BadRequest("missing symbol URL parameter"))
		return
	}

	details, err := h.Controller.GetStockDetails(ctx, symbol)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, details, http.StatusOK)
}

func (h *Handler) SearchMutualFunds(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	keywords := r.URL.Query().Get("q")
	if keywords == "" {
		h.HandleErrors(w, utils.BadRequest("missing q query parameter"))
		return
	}

	result, err := h.Controller.SearchMutualFunds(ctx, keywords)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, result, http.StatusOK)
}

func (h *Handler) GetMutualFundDetails(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	schemeCode := chi.URLParam(r, "schemeCode")
	if schemeCode == "" {
		h.HandleErrors(w, utils.BadRequest("missing schemeCode URL parameter"))
		return
	}

	details, err := h.Controller.GetMutualFundDetails(ctx, schemeCode)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, details, http.StatusOK)
}
