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

type userService interface {
	Register(ctx context.Context, uid, email, first, last string) error
	GetProfile(ctx context.Context, uid string) (*models.User, error)
	TouchLogin(ctx context.Context, uid string)
	UpdateWatchlist(ctx context.Context, uid string, symbols []string) (*models.User, error)
}

type userHandlers struct {
	ResponseHandler response.ResponseHandler
	UserSvc         userService
}

func NewUserHandlers(deps *Deps) *userHandlers {
	return &userHandlers{
		ResponseHandler: deps.ResponseHandler,
		UserSvc:         deps.UserSvc,
	}
}

func (h *userHandlers) UserRoutes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.CreateUser)
	r.Get("/me", h.GetProfile)
	r.Post("/me/login", h.TouchLogin)
	r.Put("/me/watchlist", h.UpdateWatchlist)
	return r
}

func (h *userHandlers) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}

	uid := middleware.UID(r.Context())
	email := middleware.Email(r.Context())

	if err := h.UserSvc.Register(r.Context(), uid, email, req.FirstName, req.LastName); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, nil)
}

func (h *userHandlers) GetProfile(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	user, err := h.UserSvc.GetProfile(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, user)
}

// TouchLogin records a sign-in; it never fails the request.
func (h *userHandlers) TouchLogin(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	h.UserSvc.TouchLogin(r.Context(), uid)
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}

func (h *userHandlers) UpdateWatchlist(w http.ResponseWriter, r *http.Request) {
	var req dto.WatchlistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}

	uid := middleware.UID(r.Context())
	user, err := h.UserSvc.UpdateWatchlist(r.Context(), uid, req.Symbols)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, user)
}
