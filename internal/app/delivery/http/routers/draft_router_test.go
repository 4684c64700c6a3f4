package routers

import (
	"bytes"
	"context"
	"encoding/json"
	"labdash-service/internal/app/delivery/http/controllers"
	"labdash-service/internal/pkg/constvars"
	"labdash-service/internal/pkg/dto/requests"
	"labdash-service/internal/pkg/dto/responses"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockDraftUsecase struct {
	mock.Mock
}

func (m *MockDraftUsecase) OpenDraft(ctx context.Context, request *requests.OpenDraft) (*responses.Draft, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Draft), args.Error(1)
}

func (m *MockDraftUsecase) GetDraft(ctx context.Context, draftID string) (*responses.Draft, error) {
	args := m.Called(ctx, draftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Draft), args.Error(1)
}

func (m *MockDraftUsecase) SelectLab(ctx context.Context, draftID string, request *requests.SelectLab) (*responses.Draft, error) {
	args := m.Called(ctx, draftID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Draft), args.Error(1)
}

func (m *MockDraftUsecase) SelectMethod(ctx context.Context, draftID string, request *requests.SelectMethod) (*responses.Draft, error) {
	args := m.Called(ctx, draftID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Draft), args.Error(1)
}

func (m *MockDraftUsecase) ToggleMarker(ctx context.Context, draftID, markerID string) (*responses.Draft, error) {
	args := m.Called(ctx, draftID, markerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Draft), args.Error(1)
}

func (m *MockDraftUsecase) SetDetails(ctx context.Context, draftID string, request *requests.DraftDetails) (*responses.Draft, error) {
	args := m.Called(ctx, draftID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Draft), args.Error(1)
}

func (m *MockDraftUsecase) SetPatient(ctx context.Context, draftID string, request *requests.DraftPatient) (*responses.Draft, error) {
	args := m.Called(ctx, draftID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Draft), args.Error(1)
}

func (m *MockDraftUsecase) DiscardDraft(ctx context.Context, draftID string) error {
	args := m.Called(ctx, draftID)
	return args.Error(0)
}

func TestDraftRouter(t *testing.T) {
	logger := zap.NewNop()
	mockDraftUsecase := new(MockDraftUsecase)
	draftController := controllers.NewDraftController(logger, mockDraftUsecase, 10*time.Second)

	router := chi.NewRouter()
	router.Route("/drafts", func(r chi.Router) {
		attachDraftRoutes(r, draftController)
	})

	t.Run("POST /drafts opens a draft", func(t *testing.T) {
		mockDraftUsecase.On("OpenDraft", mock.Anything, mock.MatchedBy(func(request *requests.OpenDraft) bool {
			return request.Kind == constvars.DraftKindTemplate
		})).Return(&responses.Draft{ID: "draft-1", Kind: constvars.DraftKindTemplate, State: "empty"}, nil).Once()

		body, _ := json.Marshal(requests.OpenDraft{Kind: constvars.DraftKindTemplate})
		req := httptest.NewRequest(http.MethodPost, "/drafts", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)

		var response responses.ResponseDTO
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.True(t, response.Success)
	})

	t.Run("PUT lab routes to the lab selection", func(t *testing.T) {
		mockDraftUsecase.On("SelectLab", mock.Anything, "draft-1", mock.MatchedBy(func(request *requests.SelectLab) bool {
			return request.LabID == "lab-a"
		})).Return(&responses.Draft{ID: "draft-1", LabID: "lab-a", State: "lab_chosen"}, nil).Once()

		body, _ := json.Marshal(requests.SelectLab{LabID: "lab-a"})
		req := httptest.NewRequest(http.MethodPut, "/drafts/draft-1/lab", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Toggle carries both path ids", func(t *testing.T) {
		mockDraftUsecase.On("ToggleMarker", mock.Anything, "draft-1", "m1").
			Return(&responses.Draft{ID: "draft-1", SelectedMarkerIDs: []string{"m1"}}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/drafts/draft-1/markers/m1/toggle", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		mockDraftUsecase.AssertCalled(t, "ToggleMarker", mock.Anything, "draft-1", "m1")
	})

	t.Run("Malformed body answers bad request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/drafts", bytes.NewReader([]byte("{not json")))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("DELETE discards the draft", func(t *testing.T) {
		mockDraftUsecase.On("DiscardDraft", mock.Anything, "draft-1").Return(nil).Once()

		req := httptest.NewRequest(http.MethodDelete, "/drafts/draft-1", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
