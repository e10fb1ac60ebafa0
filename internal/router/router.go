package router

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/stockpredictor/backend/internal/handlers"
	"github.com/stockpredictor/backend/internal/middleware"
)

func NewRouter(deps *handlers.Deps, devMode bool) chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)

	lm := middleware.NewLoggerMiddleware(deps.Log)
	r.Use(lm.LoggerMiddleware)

	am := middleware.NewMiddleware(deps.Firebase, devMode)
	r.Use(am.FirebaseAuth)

	ush := handlers.NewUserHandlers(deps)
	msh := handlers.NewMarketHandlers(deps)
	nsh := handlers.NewNewsHandlers(deps)
	ash := handlers.NewAIHandlers(deps)
	mdh := handlers.NewModelHandlers(deps)

	r.Mount("/users", ush.UserRoutes())
	r.Mount("/market", msh.MarketRoutes())
	r.Mount("/news", nsh.NewsRoutes())
	r.Mount("/ai", ash.AIRoutes())
	r.Mount("/models", mdh.ModelRoutes())
	return r
}
