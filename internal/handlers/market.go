package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/stockpredictor/backend/internal/dto"
	"github.com/stockpredictor/backend/internal/errs"
	"github.com/stockpredictor/backend/internal/response"
)

type marketService interface {
	GetQuote(ctx context.Context, symbol string) (dto.Quote, error)
	GetCandles(ctx context.Context, symbol, resolution string, from, to time.Time) (dto.CandleSeries, error)
	GetCompanyProfile(ctx context.Context, symbol string) (dto.CompanyProfile, error)
	Search(ctx context.Context, query string) (dto.SearchResult, error)
}

type marketHandlers struct {
	ResponseHandler response.ResponseHandler
	MarketSvc       marketService
}

func NewMarketHandlers(deps *Deps) *marketHandlers {
	return &marketHandlers{
		ResponseHandler: deps.ResponseHandler,
		MarketSvc:       deps.MarketSvc,
	}
}

func (h *marketHandlers) MarketRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/search", h.Search) // must be before /{symbol} routes
	r.Get("/quote/{symbol}", h.GetQuote)
	r.Get("/candles/{symbol}", h.GetCandles)
	r.Get("/profile/{symbol}", h.GetCompanyProfile)
	return r
}

func (h *marketHandlers) GetQuote(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")
	if symbol == "" {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("symbol is required"))
		return
	}
	quote, err := h.MarketSvc.GetQuote(r.Context(), symbol)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, quote)
}

func (h *marketHandlers) GetCandles(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")
	if symbol == "" {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("symbol is required"))
		return
	}

	resolution := r.URL.Query().Get("resolution")
	switch resolution {
	case "":
		resolution = dto.ResolutionDay
	case dto.ResolutionMinute, dto.ResolutionHour, dto.ResolutionDay:
	default:
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid resolution: "+resolution))
		return
	}

	to := time.Now()
	from := to.AddDate(0, 0, -30)
	var err error
	if from, err = parseUnixParam(r, "from", from); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	if to, err = parseUnixParam(r, "to", to); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	if !to.After(from) {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("from must be before to"))
		return
	}

	series, err := h.MarketSvc.GetCandles(r.Context(), symbol, resolution, from, to)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, series)
}

func (h *marketHandlers) GetCompanyProfile(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")
	if symbol == "" {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("symbol is required"))
		return
	}
	profile, err := h.MarketSvc.GetCompanyProfile(r.Context(), symbol)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, profile)
}

func (h *marketHandlers) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("q is required"))
		return
	}
	result, err := h.MarketSvc.Search(r.Context(), query)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, result)
}

// parseUnixParam reads an optional unix-seconds query parameter.
func parseUnixParam(r *http.Request, name string, fallback time.Time) (time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	secs, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}, errs.NewValidationError(name + " must be a unix timestamp")
	}
	return time.Unix(secs, 0), nil
}
