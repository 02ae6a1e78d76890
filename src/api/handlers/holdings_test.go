package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-server/src/repositories"
	"portfolio-server/src/schemas"
)

// stubController implements controllers.IController with canned data.
type stubController struct {
	holdings []schemas.HoldingResponse
	summary  schemas.PortfolioSummary
}

func (s *stubController) GetAllHoldings(_ context.Context) ([]schemas.HoldingResponse, error) {
	return s.holdings, nil
}

func (s *stubController) GetHoldingByID(_ context.Context, id uuid.UUID) (*schemas.HoldingResponse, error) {
	for i := range s.holdings {
		if s.holdings[i].ID == id {
			return &s.holdings[i], nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (s *stubController) GetHoldingsByAssetType(_ context.Context, assetType string) ([]schemas.HoldingResponse, error) {
	var out []schemas.HoldingResponse
	for _, h := range s.holdings {
		if h.AssetType == assetType {
			out = append(out, h)
		}
	}
	return out, nil
}

func (s *stubController) CreateHolding(_ context.Context, req schemas.CreateHoldingRequest) (*schemas.HoldingResponse, error) {
	created := schemas.HoldingResponse{
		ID:        uuid.New(),
		AssetType: req.AssetType,
		Symbol:    req.Symbol,
		Quantity:  req.Quantity,
	}
	s.holdings = append(s.holdings, created)
	return &created, nil
}

func (s *stubController) UpdateHolding(_ context.Context, id uuid.UUID, _ schemas.UpdateHoldingRequest) (*schemas.HoldingResponse, error) {
	return s.GetHoldingByID(context.Background(), id)
}

func (s *stubController) DeleteHolding(_ context.Context, id uuid.UUID) error {
	for _, h := range s.holdings {
		if h.ID == id {
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (s *stubController) GetPortfolioSummary(_ context.Context) (*schemas.PortfolioSummary, error) {
	return &s.summary, nil
}

func (s *stubController) GetDiversification(_ context.Context) (*schemas.DiversificationSuggestion, error) {
	return &schemas.DiversificationSuggestion{RiskLevel: schemas.RiskLevelModerate, Recommendations: []string{}}, nil
}

func (s *stubController) GetBestPerformer(_ context.Context) (*schemas.HoldingResponse, error) {
	if len(s.holdings) == 0 {
		return nil, nil
	}
	return &s.holdings[0], nil
}

func (s *stubController) GetWorstPerformer(_ context.Context) (*schemas.HoldingResponse, error) {
	return s.GetBestPerformer(context.Background())
}

func (s *stubController) GetHistoricalPrices(_ context.Context, _ string) ([]schemas.HistoricalPriceResponse, error) {
	return nil, nil
}

func (s *stubController) FetchHistoricalData(_ context.Context, _, _ string) (int, error) {
	return 0, nil
}

func (s *stubController) SearchStocks(_ context.Context, _ string) (*schemas.StockSearchResponse, error) {
	return &schemas.StockSearchResponse{Matches: []schemas.StockMatch{}}, nil
}

func (s *stubController) GetStockDetails(_ context.Context, _ string) (*schemas.StockDetails, error) {
	return &schemas.StockDetails{}, nil
}

func (s *stubController) SearchMutualFunds(_ context.Context, _ string) (*schemas.MutualFundSearchResponse, error) {
	return &schemas.MutualFundSearchResponse{Results: []schemas.MutualFundMatch{}}, nil
}

func (s *stubController) GetMutualFundDetails(_ context.Context, _ string) (*schemas.MutualFundDetails, error) {
	return &schemas.MutualFundDetails{}, nil
}

func (s *stubController) AnswerQuery(_ context.Context, query string) schemas.ChatResponse {
	return schemas.ChatResponse{Success: true, Query: query, Response: "ok"}
}

func newTestHandler(stub *stubController) *Handler {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewHandler(stub, logger)
}

func newTestRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()
	r.Get("/api/holdings", h.GetAllHoldings)
	r.Post("/api/holdings", h.CreateHolding)
	r.Get("/api/holdings/{id}", h.GetHoldingByID)
	r.Delete("/api/holdings/{id}", h.DeleteHolding)
	r.Get("/api/portfolio/best-performer", h.GetBestPerformer)
	return r
}

func TestGetAllHoldingsEndpoint(t *testing.T) {
	stub := &stubController{holdings: []schemas.HoldingResponse{
		{ID: uuid.New(), AssetType: "STOCK", Symbol: "AAPL", Quantity: decimal.NewFromInt(10)},
	}}
	router := newTestRouter(newTestHandler(stub))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/holdings", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got []schemas.HoldingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "AAPL", got[0].Symbol)
}

func TestGetHoldingByIDErrors(t *testing.T) {
	stub := &stubController{}
	router := newTestRouter(newTestHandler(stub))

	t.Run("invalid id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/holdings/not-a-uuid", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/holdings/"+uuid.NewString(), nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCreateHoldingEndpoint(t *testing.T) {
	stub := &stubController{}
	router := newTestRouter(newTestHandler(stub))

	body := `{"assetType":"STOCK","symbol":"AAPL","quantity":10,"purchasePrice":150,"purchaseDate":"2024-01-15"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/holdings", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)

	t.Run("malformed body", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/holdings", strings.NewReader("{")))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestBestPerformerNoContent(t *testing.T) {
	router := newTestRouter(newTestHandler(&stubController{}))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/portfolio/best-performer", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDeleteHoldingEndpoint(t *testing.T) {
	id := uuid.New()
	stub := &stubController{holdings: []schemas.HoldingResponse{{ID: id, Symbol: "AAPL"}}}
	router := newTestRouter(newTestHandler(stub))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/holdings/"+id.String(), nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
