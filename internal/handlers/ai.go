package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stockpredictor/backend/internal/dto"
	"github.com/stockpredictor/backend/internal/errs"
	"github.com/stockpredictor/backend/internal/middleware"
	"github.com/stockpredictor/backend/internal/response"
)

type aiService interface {
	GetAnalysis(ctx context.Context, uid, symbol string) (dto.AnalysisResponse, error)
}

type aiHandlers struct {
	ResponseHandler response.ResponseHandler
	AISvc           aiService
}

func NewAIHandlers(deps *Deps) *aiHandlers {
	return &aiHandlers{
		ResponseHandler: deps.ResponseHandler,
		AISvc:           deps.AISvc,
	}
}

func (h *aiHandlers) AIRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/analysis/{symbol}", h.GetAnalysis)
	return r
}

func (h *aiHandlers) GetAnalysis(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")
	if symbol == "" {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("symbol is required"))
		return
	}

	uid := middleware.UID(r.Context())
	analysis, err := h.AISvc.GetAnalysis(r.Context(), uid, symbol)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, analysis)
}
