package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/stockpredictor/backend/internal/errs"
	"github.com/stockpredictor/backend/internal/models"
)

type modelStore struct {
	client *firestore.Client
}

func NewModelStore(client *firestore.Client) *modelStore {
	return &modelStore{client: client}
}

func (s *modelStore) collection(uid string) *firestore.CollectionRef {
	return s.client.Collection("users").Doc(uid).Collection("models")
}

func (s *modelStore) Create(ctx context.Context, uid string, m *models.Model) error {
	now := time.Now()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	m.UpdatedAt = now
	_, err := s.collection(uid).Doc(m.ModelID).Set(ctx, m)
	if err != nil {
		return errs.NewDatabaseError("create", "failed to create model", err)
	}
	return nil
}

func (s *modelStore) Get(ctx context.Context, uid, modelID string) (*models.Model, error) {
	doc, err := s.collection(uid).Doc(modelID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errs.NewNotFoundError("model not found")
		}
		return nil, errs.NewDatabaseError("read", "failed to get model", err)
	}
	var m models.Model
	if err := doc.DataTo(&m); err != nil {
		return nil, errs.NewDatabaseError("read", "failed to parse model data", err)
	}
	return &m, nil
}

func (s *modelStore) List(ctx context.Context, uid string) ([]*models.Model, error) {
	docs, err := s.collection(uid).OrderBy("createdAt", firestore.Desc).Documents(ctx).GetAll()
	if err != nil {
		return nil, errs.NewDatabaseError("read", "failed to list models", err)
	}
	out := make([]*models.Model, 0, len(docs))
	for _, d := range docs {
		var m models.Model
		if err := d.DataTo(&m); err != nil {
			return nil, errs.NewDatabaseError("read", "failed to parse model data", err)
		}
		out = append(out, &m)
	}
	return out, nil
}

func (s *modelStore) Update(ctx context.Context, uid string, m *models.Model) error {
	m.UpdatedAt = time.Now()
	_, err := s.collection(uid).Doc(m.ModelID).Set(ctx, m)
	if err != nil {
		return errs.NewDatabaseError("update", "failed to update model", err)
	}
	return nil
}

func (s *modelStore) Delete(ctx context.Context, uid, modelID string) error {
	_, err := s.collection(uid).Doc(modelID).Delete(ctx)
	if err != nil {
		return errs.NewDatabaseError("delete", "failed to delete model", err)
	}
	return nil
}

// SetDeployed flips the deployed flag on one model and clears it on every
// other, so at most one model is live per user.
func (s *modelStore) SetDeployed(ctx context.Context, uid, modelID string) error {
	docs, err := s.collection(uid).Documents(ctx).GetAll()
	if err != nil {
		return errs.NewDatabaseError("read", "failed to list models", err)
	}

	found := false
	bw := s.client.BulkWriter(ctx)
	now := time.Now()
	for _, d := range docs {
		deployed := d.Ref.ID == modelID
		if deployed {
			found = true
		}
		if _, err := bw.Update(d.Ref, []firestore.Update{
			{Path: "deployed", Value: deployed},
			{Path: "updatedAt", Value: now},
		}); err != nil {
			return errs.NewDatabaseError("update", "failed to schedule deploy update", err)
		}
	}
	bw.End()

	if !found {
		return errs.NewNotFoundError("model not found")
	}
	return nil
}
