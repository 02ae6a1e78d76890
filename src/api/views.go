package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"portfolio-server/src/api/controllers"
	"portfolio-server/src/api/handlers"
	"portfolio-server/src/clients/exchangerate"
	"portfolio-server/src/clients/mfapi"
	"portfolio-server/src/clients/yahoofinance"
	"portfolio-server/src/config"
	"portfolio-server/src/database"
	"portfolio-server/src/repositories"
	"portfolio-server/src/services"
)

type Server struct {
	Router  *chi.Mux
	Handler handlers.Handler

	HistoricalPriceService services.HistoricalPriceServiceI
	Logger                 *logrus.Logger
}

func NewServer(cfg *config.Config, logger *logrus.Logger) (*Server, error) {
	db, err := database.SetupDB(cfg)
	if err != nil {
		return nil, err
	}

	yahooClient := yahoofinance.NewClient(cfg)
	mfapiClient := mfapi.NewClient(cfg)
	exchangeRateClient := exchangerate.NewClient(cfg)

	holdingRepo := repositories.NewHoldingRepository(db)
	historicalPriceRepo := repositories.NewHistoricalPriceRepository(db)

	currencyService := services.NewCurrencyService(exchangeRateClient, cfg)
	priceService := services.NewPriceService(yahooClient, mfapiClient)
	valuationService := services.NewValuationService(priceService, currencyService)
	holdingService := services.NewHoldingService(holdingRepo, valuationService, currencyService)
	portfolioService := services.NewPortfolioService(currencyService)
	diversificationService := services.NewDiversificationService()
	historicalPriceService := services.NewHistoricalPriceService(historicalPriceRepo, holdingRepo, yahooClient, mfapiClient)
	lookupService := services.NewLookupService(yahooClient, mfapiClient)
	chatbotService := services.NewChatbotService(holdingService, portfolioService, cfg.Chatbot.Model)

	controller := controllers.NewController(
		holdingService,
		portfolioService,
		diversificationService,
		historicalPriceService,
		lookupService,
		chatbotService,
	)

	server := &Server{
		Router:                 chi.NewRouter(),
		Handler:                *handlers.NewHandler(controller, logger),
		HistoricalPriceService: historicalPriceService,
		Logger:                 logger,
	}
	server.InitRoutes()
	return server, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}

func (s *Server) InitRoutes() {
	s.Router.Get("/api/health", handlers.Healthcheck)

	s.Router.Route("/api/holdings", func(r chi.Router) {
		r.Get("/", s.Handler.GetAllHoldings)
		r.Post("/", s.Handler.CreateHolding)
		r.Get("/assetType/{assetType}", s.Handler.GetHoldingsByAssetType)
		r.Get("/{id}", s.Handler.GetHoldingByID)
		r.Put("/{id}", s.Handler.UpdateHolding)
		r.Delete("/{id}", s.Handler.DeleteHolding)
	})

	s.Router.Route("/api/portfolio", func(r chi.Router) {
		r.Get("/summary", s.Handler.GetPortfolioSummary)
		r.Get("/diversification", s.Handler.GetDiversification)
		r.Get("/best-performer", s.Handler.GetBestPerformer)
		r.Get("/worst-performer", s.Handler.GetWorstPerformer)
	})

	s.Router.Route("/api/historical", func(r chi.Router) {
		r.Post("/fetch", s.Handler.FetchHistoricalData)
		r.Get("/{symbol}", s.Handler.GetHistoricalPrices)
	})

	s.Router.Route("/api/lookup", func(r chi.Router) {
		r.Get("/stocks", s.Handler.SearchStocks)
		r.Get("/stocks/{symbol}", s.Handler.GetStockDetails)
		r.Get("/mutual-funds", s.Handler.SearchMutualFunds)
		r.Get("/mutual-funds/{schemeCode}", s.Handler.GetMutualFundDetails)
	})

	s.Router.Post("/api/chatbot/query", s.Handler.AnswerQuery)
}

func NewHTTPServer(cfg *config.Config, server *Server) *http.Server {
	httpServer := &http.Server{
		Addr:         ":" + cfg.Service.Port,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		Handler:      server,
	}
	return httpServer
}
