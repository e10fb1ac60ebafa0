package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stockpredictor/backend/internal/dto"
	"github.com/stockpredictor/backend/internal/errs"
	"github.com/stockpredictor/backend/internal/response"
)

type newsService interface {
	GetMarketNews(ctx context.Context, category string) (dto.NewsResult, error)
	GetCompanyNews(ctx context.Context, symbol string) (dto.NewsResult, error)
}

type newsHandlers struct {
	ResponseHandler response.ResponseHandler
	NewsSvc         newsService
}

func NewNewsHandlers(deps *Deps) *newsHandlers {
	return &newsHandlers{
		ResponseHandler: deps.ResponseHandler,
		NewsSvc:         deps.NewsSvc,
	}
}

func (h *newsHandlers) NewsRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.GetMarketNews)
	r.Get("/{symbol}", h.GetCompanyNews)
	return r
}

func (h *newsHandlers) GetMarketNews(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	switch category {
	case "", dto.NewsCategoryGeneral, dto.NewsCategoryForex, dto.NewsCategoryCrypto, dto.NewsCategoryMerger:
	default:
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid category: "+category))
		return
	}

	result, err := h.NewsSvc.GetMarketNews(r.Context(), category)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, result)
}

func (h *newsHandlers) GetCompanyNews(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")
	if symbol == "" {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("symbol is required"))
		return
	}
	result, err := h.NewsSvc.GetCompanyNews(r.Context(), symbol)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, result)
}
