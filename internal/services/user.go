package services

import (
	"context"
	"strings"
	"time"

	"github.com/stockpredictor/backend/internal/models"
	"github.com/stockpredictor/backend/pkg/logger"
)

type userStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	UpdateUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, uid string) (*models.User, error)
}

type userService struct {
	store userStore
}

func NewUserService(store userStore) *userService {
	return &userService{store: store}
}

func (s *userService) Register(ctx context.Context, uid, email, first, last string) error {
	log := logger.FromContext(ctx)
	now := time.Now()

	user := &models.User{
		UID:         uid,
		Email:       email,
		FirstName:   first,
		LastName:    last,
		CreatedAt:   now,
		UpdatedAt:   now,
		LastLoginAt: now,
	}

	if err := s.store.CreateUser(ctx, user); err != nil {
		log.Error("failed to create user in store", "error", err)
		return err
	}

	log.Info("user registered", "first_name", first, "last_name", last)
	return nil
}

func (s *userService) GetProfile(ctx context.Context, uid string) (*models.User, error) {
	return s.store.GetUser(ctx, uid)
}

// UpdateWatchlist replaces the user's watchlist with the given symbols,
// uppercased and de-duplicated in order.
func (s *userService) UpdateWatchlist(ctx context.Context, uid string, symbols []string) (*models.User, error) {
	user, err := s.store.GetUser(ctx, uid)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(symbols))
	cleaned := make([]string, 0, len(symbols))
	for _, sym := range symbols {
		sym = strings.ToUpper(strings.TrimSpace(sym))
		if sym == "" || seen[sym] {
			continue
		}
		seen[sym] = true
		cleaned = append(cleaned, sym)
	}

	user.Watchlist = cleaned
	user.UpdatedAt = time.Now()
	if err := s.store.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// TouchLogin records a successful sign-in without failing the request when
// the write does not land.
func (s *userService) TouchLogin(ctx context.Context, uid string) {
	log := logger.FromContext(ctx)
	user, err := s.store.GetUser(ctx, uid)
	if err != nil {
		log.Warn("touch login: user lookup failed", "error", err)
		return
	}
	user.LastLoginAt = time.Now()
	if err := s.store.UpdateUser(ctx, user); err != nil {
		log.Warn("touch login: update failed", "error", err)
	}
}
