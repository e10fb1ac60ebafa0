package handlers

import (
	"log/slog"

	"firebase.google.com/go/v4/auth"

	"github.com/stockpredictor/backend/internal/response"
)

type Deps struct {
	Log             *slog.Logger
	ResponseHandler response.ResponseHandler
	Firebase        *auth.Client
	UserSvc         userService
	MarketSvc       marketService
	NewsSvc         newsService
	AISvc           aiService
	ModelSvc        modelService
}
