package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/stockpredictor/backend/internal/canvas"
	"github.com/stockpredictor/backend/internal/dto"
	"github.com/stockpredictor/backend/internal/errs"
	"github.com/stockpredictor/backend/internal/models"
)

// modelStore is the Firestore storage interface for saved canvas models.
type modelStore interface {
	Create(ctx context.Context, uid string, m *models.Model) error
	Get(ctx context.Context, uid, modelID string) (*models.Model, error)
	List(ctx context.Context, uid string) ([]*models.Model, error)
	Update(ctx context.Context, uid string, m *models.Model) error
	Delete(ctx context.Context, uid, modelID string) error
	SetDeployed(ctx context.Context, uid, modelID string) error
}

type modelService struct {
	store   modelStore
	palette *canvas.Palette
}

func NewModelService(store modelStore, palette *canvas.Palette) *modelService {
	return &modelService{store: store, palette: palette}
}

// rebuildLayout replays an incoming widget list through a canvas model so
// every stored layout satisfies the canvas invariants: known widget types,
// clamped geometry, unique instance ids, stacking order matching list order.
func (s *modelService) rebuildLayout(widgets []canvas.PlacedWidget) (*canvas.Model, error) {
	m := canvas.NewModel()
	for _, w := range widgets {
		if _, ok := s.palette.Lookup(w.TypeID); !ok {
			return nil, errs.NewValidationError("unknown widget type: " + w.TypeID)
		}
		placed := m.Insert(w.TypeID, w.X, w.Y)
		m.Resize(placed.InstanceID, w.Width, w.Height)
	}
	return m, nil
}

func (s *modelService) SaveModel(ctx context.Context, uid string, req dto.SaveModelRequest) (*models.Model, error) {
	layout, err := s.rebuildLayout(req.Widgets)
	if err != nil {
		return nil, err
	}
	snap, err := layout.Save(req.Name)
	if err != nil {
		return nil, err
	}

	m := &models.Model{
		ModelID:   uuid.New().String(),
		Name:      snap.Name,
		Widgets:   snap.Widgets,
		CreatedAt: snap.CreatedAt,
	}
	if err := s.store.Create(ctx, uid, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *modelService) UpdateModel(ctx context.Context, uid, modelID string, req dto.SaveModelRequest) (*models.Model, error) {
	existing, err := s.store.Get(ctx, uid, modelID)
	if err != nil {
		return nil, err
	}

	layout, err := s.rebuildLayout(req.Widgets)
	if err != nil {
		return nil, err
	}
	snap, err := layout.Save(req.Name)
	if err != nil {
		return nil, err
	}

	existing.Name = snap.Name
	existing.Widgets = snap.Widgets
	if err := s.store.Update(ctx, uid, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *modelService) ListModels(ctx context.Context, uid string) ([]*models.Model, error) {
	return s.store.List(ctx, uid)
}

func (s *modelService) GetModel(ctx context.Context, uid, modelID string) (*models.Model, error) {
	return s.store.Get(ctx, uid, modelID)
}

func (s *modelService) DeleteModel(ctx context.Context, uid, modelID string) error {
	return s.store.Delete(ctx, uid, modelID)
}

// DeployModel marks one model as the live dashboard layout.
func (s *modelService) DeployModel(ctx context.Context, uid, modelID string) error {
	return s.store.SetDeployed(ctx, uid, modelID)
}

// WidgetTypes returns the static palette catalog grouped by category.
func (s *modelService) WidgetTypes() []dto.WidgetCategoryGroup {
	cats := s.palette.Categories()
	groups := make([]dto.WidgetCategoryGroup, 0, len(cats))
	for _, c := range cats {
		groups = append(groups, dto.WidgetCategoryGroup{
			Category: c,
			Widgets:  s.palette.ListByCategory(c),
		})
	}
	return groups
}
