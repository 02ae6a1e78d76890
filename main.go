package main

import (
	"errors"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"portfolio-server/src/api"
	"portfolio-server/src/config"
	"portfolio-server/src/scheduler"
	"portfolio-server/src/utils"
)

func main() {
	// Optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig("./settings", os.Getenv("ENV"))
	if err != nil {
		log.Println(err, "Error while loading config")
		return
	}

	errC, err := run(cfg)
	if err != nil {
		log.Println(err, "Couldn't run")
		return
	}

	if err := <-errC; err != nil {
		log.Println(err, "Error while running")
	}
}

func run(cfg *config.Config) (<-chan error, error) {
	errC := make(chan error, 1)

	// Monetary fields serialize as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true

	logger := utils.NewLogger(logrus.InfoLevel)

	server, err := api.NewServer(cfg, logger)
	if err != nil {
		return nil, err
	}
	httpServer := api.NewHTTPServer(cfg, server)

	if _, err := scheduler.NewHistoricalRefreshTask(server.HistoricalPriceService, logger); err != nil {
		return nil, err
	}

	go func() {
		logger.Infof("Starting server on port %s", cfg.Service.Port)

		// "ListenAndServe always returns a non-nil error. After Shutdown or Close, the returned error is
		// ErrServerClosed."
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errC <- err
		}
	}()
	return errC, nil
}
