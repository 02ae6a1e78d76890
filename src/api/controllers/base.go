package controllers

import (
	"portfolio-server/src/services"
)

type IController interface {
	HoldingsControllerI
	PortfolioControllerI
	HistoricalControllerI
	LookupControllerI
	ChatControllerI
}

// Controller orchestrates the service layer for the API handlers.
type Controller struct {
	HoldingService         services.HoldingServiceI
	PortfolioService       services.PortfolioServiceI
	DiversificationService services.DiversificationServiceI
	HistoricalPriceService services.HistoricalPriceServiceI
	LookupService          services.LookupServiceI
	ChatbotService         services.ChatbotServiceI
}

func NewController(
	holdingService services.HoldingServiceI,
	portfolioService services.PortfolioServiceI,
	diversificationService services.DiversificationServiceI,
	historicalPriceService services.HistoricalPriceServiceI,
	lookupService services.LookupServiceI,
	chatbotService services.ChatbotServiceI,
) *Controller {
	return &Controller{
		HoldingService:         holdingService,
		PortfolioService:       portfolioService,
		DiversificationService: diversificationService,
		HistoricalPriceService: historicalPriceService,
		LookupService:          lookupService,
		ChatbotService:         chatbotService,
	}
}
