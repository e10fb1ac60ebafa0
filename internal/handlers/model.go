package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stockpredictor/backend/internal/dto"
	"github.com/stockpredictor/backend/internal/errs"
	"github.com/stockpredictor/backend/internal/middleware"
	"github.com/stockpredictor/backend/internal/models"
	"github.com/stockpredictor/backend/internal/response"
)

type modelService interface {
	SaveModel(ctx context.Context, uid string, req dto.SaveModelRequest) (*models.Model, error)
	UpdateModel(ctx context.Context, uid, modelID string, req dto.SaveModelRequest) (*models.Model, error)
	ListModels(ctx context.Context, uid string) ([]*models.Model, error)
	GetModel(ctx context.Context, uid, modelID string) (*models.Model, error)
	DeleteModel(ctx context.Context, uid, modelID string) error
	DeployModel(ctx context.Context, uid, modelID string) error
	WidgetTypes() []dto.WidgetCategoryGroup
}

type modelHandlers struct {
	ResponseHandler response.ResponseHandler
	ModelSvc        modelService
}

func NewModelHandlers(deps *Deps) *modelHandlers {
	return &modelHandlers{
		ResponseHandler: deps.ResponseHandler,
		ModelSvc:        deps.ModelSvc,
	}
}

func (h *modelHandlers) ModelRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/widget-types", h.GetWidgetTypes) // must be before /{modelId}
	r.Get("/", h.ListModels)
	r.Post("/", h.SaveModel)
	r.Get("/{modelId}", h.GetModel)
	r.Put("/{modelId}", h.UpdateModel)
	r.Delete("/{modelId}", h.DeleteModel)
	r.Post("/{modelId}/deploy", h.DeployModel)
	return r
}

// GetWidgetTypes returns the static palette catalog grouped by category.
func (h *modelHandlers) GetWidgetTypes(w http.ResponseWriter, r *http.Request) {
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, h.ModelSvc.WidgetTypes())
}

func (h *modelHandlers) ListModels(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	list, err := h.ModelSvc.ListModels(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, list)
}

func (h *modelHandlers) SaveModel(w http.ResponseWriter, r *http.Request) {
	var req dto.SaveModelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}

	uid := middleware.UID(r.Context())
	m, err := h.ModelSvc.SaveModel(r.Context(), uid, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, m)
}

func (h *modelHandlers) GetModel(w http.ResponseWriter, r *http.Request) {
	modelID := chi.URLParam(r, "modelId")
	uid := middleware.UID(r.Context())
	m, err := h.ModelSvc.GetModel(r.Context(), uid, modelID)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, m)
}

func (h *modelHandlers) UpdateModel(w http.ResponseWriter, r *http.Request) {
	modelID := chi.URLParam(r, "modelId")
	var req dto.SaveModelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}

	uid := middleware.UID(r.Context())
	m, err := h.ModelSvc.UpdateModel(r.Context(), uid, modelID, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, m)
}

func (h *modelHandlers) DeleteModel(w http.ResponseWriter, r *http.Request) {
	modelID := chi.URLParam(r, "modelId")
	uid := middleware.UID(r.Context())
	if err := h.ModelSvc.DeleteModel(r.Context(), uid, modelID); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}

// DeployModel marks one model as the live dashboard layout.
func (h *modelHandlers) DeployModel(w http.ResponseWriter, r *http.Request) {
	modelID := chi.URLParam(r, "modelId")
	uid := middleware.UID(r.Context())
	if err := h.ModelSvc.DeployModel(r.Context(), uid, modelID); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}
