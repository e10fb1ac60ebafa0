package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/stockpredictor/backend/internal/canvas"
	"github.com/stockpredictor/backend/internal/dto"
	"github.com/stockpredictor/backend/internal/errs"
	"github.com/stockpredictor/backend/internal/models"
)

type stubModelService struct {
	saved       *models.Model
	saveErr     error
	lastSaveReq dto.SaveModelRequest

	updated      *models.Model
	updateErr    error
	lastUpdateID string

	list    []*models.Model
	listErr error

	got    *models.Model
	getErr error

	deleteErr    error
	lastDeleteID string

	deployErr    error
	lastDeployID string

	groups []dto.WidgetCategoryGroup
}

func (s *stubModelService) SaveModel(_ context.Context, _ string, req dto.SaveModelRequest) (*models.Model, error) {
	s.lastSaveReq = req
	return s.saved, s.saveErr
}

func (s *stubModelService) UpdateModel(_ context.Context, _, modelID string, req dto.SaveModelRequest) (*models.Model, error) {
	s.lastUpdateID = modelID
	return s.updated, s.updateErr
}

func (s *stubModelService) ListModels(_ context.Context, _ string) ([]*models.Model, error) {
	return s.list, s.listErr
}

func (s *stubModelService) GetModel(_ context.Context, _, _ string) (*models.Model, error) {
	return s.got, s.getErr
}

func (s *stubModelService) DeleteModel(_ context.Context, _, modelID string) error {
	s.lastDeleteID = modelID
	return s.deleteErr
}

func (s *stubModelService) DeployModel(_ context.Context, _, modelID string) error {
	s.lastDeployID = modelID
	return s.deployErr
}

func (s *stubModelService) WidgetTypes() []dto.WidgetCategoryGroup {
	return s.groups
}

// withChiParam injects a chi URL parameter into the request context.
func withChiParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	ctx := context.WithValue(r.Context(), chi.RouteCtxKey, rctx)
	return r.WithContext(ctx)
}

func TestSaveModelCreated(t *testing.T) {
	svc := &stubModelService{saved: &models.Model{ModelID: "m1", Name: "Day Trading"}}
	resp := &stubResponseHandler{}
	h := NewModelHandlers(&Deps{ResponseHandler: resp, ModelSvc: svc})

	body := `{"name":"Day Trading","widgets":[{"typeId":"chart","x":10,"y":20,"width":300,"height":200}]}`
	req := withUID(httptest.NewRequest(http.MethodPost, "/models", strings.NewReader(body)), "uid1")
	rr := httptest.NewRecorder()
	h.SaveModel(rr, req)

	if !resp.writeSuccessCalled || resp.writeSuccessStatus != http.StatusCreated {
		t.Fatalf("expected 201, got called=%v status=%d", resp.writeSuccessCalled, resp.writeSuccessStatus)
	}
	if svc.lastSaveReq.Name != "Day Trading" {
		t.Fatalf("request name not passed through: %q", svc.lastSaveReq.Name)
	}
	if len(svc.lastSaveReq.Widgets) != 1 || svc.lastSaveReq.Widgets[0].TypeID != "chart" {
		t.Fatalf("widgets not decoded: %+v", svc.lastSaveReq.Widgets)
	}
}

func TestSaveModelBadBody(t *testing.T) {
	resp := &stubResponseHandler{}
	h := NewModelHandlers(&Deps{ResponseHandler: resp, ModelSvc: &stubModelService{}})

	req := withUID(httptest.NewRequest(http.MethodPost, "/models", strings.NewReader("oops")), "uid1")
	rr := httptest.NewRecorder()
	h.SaveModel(rr, req)

	if !resp.handleErrorCalled {
		t.Fatalf("expected HandleError for malformed body")
	}
	if _, ok := resp.handleError.(*errs.ValidationError); !ok {
		t.Fatalf("expected *errs.ValidationError, got %T", resp.handleError)
	}
}

func TestSaveModelValidationErrorPropagates(t *testing.T) {
	svc := &stubModelService{saveErr: errs.NewValidationError("unknown widget type: bogus")}
	resp := &stubResponseHandler{}
	h := NewModelHandlers(&Deps{ResponseHandler: resp, ModelSvc: svc})

	body := `{"name":"X","widgets":[{"typeId":"bogus"}]}`
	req := withUID(httptest.NewRequest(http.MethodPost, "/models", strings.NewReader(body)), "uid1")
	rr := httptest.NewRecorder()
	h.SaveModel(rr, req)

	if !resp.handleErrorCalled {
		t.Fatalf("expected HandleError")
	}
	if _, ok := resp.handleError.(*errs.ValidationError); !ok {
		t.Fatalf("expected *errs.ValidationError, got %T", resp.handleError)
	}
}

func TestUpdateModelUsesURLParam(t *testing.T) {
	svc := &stubModelService{updated: &models.Model{ModelID: "m9"}}
	resp := &stubResponseHandler{}
	h := NewModelHandlers(&Deps{ResponseHandler: resp, ModelSvc: svc})

	body := `{"name":"Renamed","widgets":[]}`
	req := withUID(httptest.NewRequest(http.MethodPut, "/models/m9", strings.NewReader(body)), "uid1")
	req = withChiParam(req, "modelId", "m9")
	rr := httptest.NewRecorder()
	h.UpdateModel(rr, req)

	if svc.lastUpdateID != "m9" {
		t.Fatalf("expected update of m9, got %q", svc.lastUpdateID)
	}
	if !resp.writeSuccessCalled || resp.writeSuccessStatus != http.StatusOK {
		t.Fatalf("expected 200 success")
	}
}

func TestDeleteModelUsesURLParam(t *testing.T) {
	svc := &stubModelService{}
	resp := &stubResponseHandler{}
	h := NewModelHandlers(&Deps{ResponseHandler: resp, ModelSvc: svc})

	req := withUID(httptest.NewRequest(http.MethodDelete, "/models/m3", nil), "uid1")
	req = withChiParam(req, "modelId", "m3")
	rr := httptest.NewRecorder()
	h.DeleteModel(rr, req)

	if svc.lastDeleteID != "m3" {
		t.Fatalf("expected delete of m3, got %q", svc.lastDeleteID)
	}
}

func TestDeployModelNotFound(t *testing.T) {
	svc := &stubModelService{deployErr: errs.NewNotFoundError("model not found")}
	resp := &stubResponseHandler{}
	h := NewModelHandlers(&Deps{ResponseHandler: resp, ModelSvc: svc})

	req := withUID(httptest.NewRequest(http.MethodPost, "/models/ghost/deploy", nil), "uid1")
	req = withChiParam(req, "modelId", "ghost")
	rr := httptest.NewRecorder()
	h.DeployModel(rr, req)

	if !resp.handleErrorCalled {
		t.Fatalf("expected HandleError")
	}
	if _, ok := resp.handleError.(*errs.NotFoundError); !ok {
		t.Fatalf("expected *errs.NotFoundError, got %T", resp.handleError)
	}
}

func TestGetWidgetTypes(t *testing.T) {
	svc := &stubModelService{groups: []dto.WidgetCategoryGroup{
		{Category: canvas.CategoryQuote, Widgets: []canvas.WidgetType{{TypeID: "chart"}}},
	}}
	resp := &stubResponseHandler{}
	h := NewModelHandlers(&Deps{ResponseHandler: resp, ModelSvc: svc})

	req := httptest.NewRequest(http.MethodGet, "/models/widget-types", nil)
	rr := httptest.NewRecorder()
	h.GetWidgetTypes(rr, req)

	if !resp.writeSuccessCalled || resp.writeSuccessStatus != http.StatusOK {
		t.Fatalf("expected 200 success")
	}
	groups, ok := resp.writeSuccessData.([]dto.WidgetCategoryGroup)
	if !ok || len(groups) != 1 {
		t.Fatalf("expected catalog payload, got %T", resp.writeSuccessData)
	}
}
