package store

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/stockpredictor/backend/internal/errs"
	"github.com/stockpredictor/backend/internal/models"
)

// analysisStore caches generated AI commentary per user and symbol so the
// expensive generation call is not repeated on every page view.
type analysisStore struct {
	client *firestore.Client
}

func NewAnalysisStore(client *firestore.Client) *analysisStore {
	return &analysisStore{client: client}
}

func (s *analysisStore) collection(uid string) *firestore.CollectionRef {
	return s.client.Collection("users").Doc(uid).Collection("analyses")
}

func (s *analysisStore) Get(ctx context.Context, uid, symbol string) (*models.Analysis, error) {
	doc, err := s.collection(uid).Doc(symbol).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errs.NewNotFoundError("no cached analysis for " + symbol)
		}
		return nil, errs.NewDatabaseError("read", "failed to get analysis", err)
	}
	var a models.Analysis
	if err := doc.DataTo(&a); err != nil {
		return nil, errs.NewDatabaseError("read", "failed to parse analysis data", err)
	}
	return &a, nil
}

func (s *analysisStore) Put(ctx context.Context, uid string, a *models.Analysis) error {
	_, err := s.collection(uid).Doc(a.Symbol).Set(ctx, a)
	if err != nil {
		return errs.NewDatabaseError("create", "failed to cache analysis", err)
	}
	return nil
}
