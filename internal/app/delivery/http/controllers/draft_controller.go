package controllers

import (
	"context"
	"labdash-service/internal/app/contracts"
	"labdash-service/internal/pkg/constvars"
	"labdash-service/internal/pkg/dto/requests"
	"labdash-service/internal/pkg/exceptions"
	"labdash-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// DraftController exposes the dialog event surface. Each endpoint maps to one
// user interaction and answers with the full draft snapshot so the client can
// re-render from it.
type DraftController struct {
	Log            *zap.Logger
	DraftUsecase   contracts.DraftUsecase
	RequestTimeout time.Duration
}

func NewDraftController(logger *zap.Logger, draftUsecase contracts.DraftUsecase, requestTimeout time.Duration) *DraftController {
	return &DraftController{
		Log:            logger,
		DraftUsecase:   draftUsecase,
		RequestTimeout: requestTimeout,
	}
}

func (ctrl *DraftController) Open(w http.ResponseWriter, r *http.Request) {
	request := &requests.OpenDraft{}
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	result, err := ctrl.DraftUsecase.OpenDraft(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.OpenDraftSuccessMessage, result)
}

func (ctrl *DraftController) FindByID(w http.ResponseWriter, r *http.Request) {
	draftID := chi.URLParam(r, constvars.URLParamDraftID)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	result, err := ctrl.DraftUsecase.GetDraft(ctx, draftID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDraftSuccessMessage, result)
}

func (ctrl *DraftController) SelectLab(w http.ResponseWriter, r *http.Request) {
	draftID := chi.URLParam(r, constvars.URLParamDraftID)

	request := &requests.SelectLab{}
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	result, err := ctrl.DraftUsecase.SelectLab(ctx, draftID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateDraftSuccessMessage, result)
}

func (ctrl *DraftController) SelectMethod(w http.ResponseWriter, r *http.Request) {
	draftID := chi.URLParam(r, constvars.URLParamDraftID)

	request := &requests.SelectMethod{}
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	result, err := ctrl.DraftUsecase.SelectMethod(ctx, draftID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateDraftSuccessMessage, result)
}

func (ctrl *DraftController) ToggleMarker(w http.ResponseWriter, r *http.Request) {
	draftID := chi.URLParam(r, constvars.URLParamDraftID)
	markerID := chi.URLParam(r, constvars.URLParamMarkerID)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	result, err := ctrl.DraftUsecase.ToggleMarker(ctx, draftID, markerID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateDraftSuccessMessage, result)
}

func (ctrl *DraftController) SetDetails(w http.ResponseWriter, r *http.Request) {
	draftID := chi.URLParam(r, constvars.URLParamDraftID)

	request := &requests.DraftDetails{}
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	result, err := ctrl.DraftUsecase.SetDetails(ctx, draftID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateDraftSuccessMessage, result)
}

func (ctrl *DraftController) SetPatient(w http.ResponseWriter, r *http.Request) {
	draftID := chi.URLParam(r, constvars.URLParamDraftID)

	request := &requests.DraftPatient{}
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	result, err := ctrl.DraftUsecase.SetPatient(ctx, draftID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateDraftSuccessMessage, result)
}

func (ctrl *DraftController) Discard(w http.ResponseWriter, r *http.Request) {
	draftID := chi.URLParam(r, constvars.URLParamDraftID)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	if err := ctrl.DraftUsecase.DiscardDraft(ctx, draftID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DiscardDraftSuccessMessage, nil)
}
