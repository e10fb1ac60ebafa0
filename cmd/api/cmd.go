package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/stockpredictor/backend/internal/bootstrap"
	"github.com/stockpredictor/backend/internal/canvas"
	"github.com/stockpredictor/backend/internal/client/alpacamd"
	"github.com/stockpredictor/backend/internal/client/finnhub"
	"github.com/stockpredictor/backend/internal/config"
	"github.com/stockpredictor/backend/internal/handlers"
	"github.com/stockpredictor/backend/internal/response"
	"github.com/stockpredictor/backend/internal/router"
	"github.com/stockpredictor/backend/internal/services"
	"github.com/stockpredictor/backend/internal/store"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	// bootstrap
	cfg := config.New()
	bs, err := bootstrap.Run(cfg)
	exitOnError("bootstrap failed", err, bs.Log)
	defer bs.Close()

	// market data clients
	fh := finnhub.New(cfg.FinnhubKey)
	ap := alpacamd.NewAdapter(cfg.AlpacaKey, cfg.AlpacaSecret)

	// stores
	ustore := store.NewUserStore(bs.Firestore)
	mstore := store.NewModelStore(bs.Firestore)
	anstore := store.NewAnalysisStore(bs.Firestore)

	// services
	palette := canvas.NewPalette()
	userv := services.NewUserService(ustore)
	mserv := services.NewMarketService(fh, ap, cfg.DevMode)
	nserv := services.NewNewsService(fh, ap, cfg.DevMode)
	mdserv := services.NewModelService(mstore, palette)
	aiserv := services.NewAIService(nil, mserv, anstore, cfg.AITTL)
	if bs.VertexAdapter != nil {
		aiserv = services.NewAIService(bs.VertexAdapter, mserv, anstore, cfg.AITTL)
	}

	// response handler
	rh := response.New(bs.Log)

	// dependancies
	deps := new(handlers.Deps)
	deps.Log = bs.Log
	deps.ResponseHandler = rh
	deps.Firebase = bs.Firebase
	deps.UserSvc = userv
	deps.MarketSvc = mserv
	deps.NewsSvc = nserv
	deps.AISvc = aiserv
	deps.ModelSvc = mdserv

	// router
	r := router.NewRouter(deps, cfg.DevMode)
	bs.Log.Info("listening", "port", cfg.Port, "dev_mode", cfg.DevMode)
	err = http.ListenAndServe(":"+cfg.Port, r)
	exitOnError("server start failed", err, bs.Log)
}
