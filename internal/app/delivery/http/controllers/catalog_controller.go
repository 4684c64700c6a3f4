package controllers

import (
	"context"
	"labdash-service/internal/app/contracts"
	"labdash-service/internal/pkg/constvars"
	"labdash-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CatalogController struct {
	Log            *zap.Logger
	CatalogUsecase contracts.CatalogUsecase
	RequestTimeout time.Duration
}

func NewCatalogController(logger *zap.Logger, catalogUsecase contracts.CatalogUsecase, requestTimeout time.Duration) *CatalogController {
	return &CatalogController{
		Log:            logger,
		CatalogUsecase: catalogUsecase,
		RequestTimeout: requestTimeout,
	}
}

func (ctrl *CatalogController) FindAllLabs(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	result, err := ctrl.CatalogUsecase.GetLabs(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetLabsSuccessMessage, result)
}

func (ctrl *CatalogController) FindMarkersByLab(w http.ResponseWriter, r *http.Request) {
	labID := chi.URLParam(r, constvars.URLParamLabID)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	result, err := ctrl.CatalogUsecase.GetMarkersByLab(ctx, labID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetMarkersSuccessMessage, result)
}

func (ctrl *CatalogController) FindAllUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	result, err := ctrl.CatalogUsecase.GetUsers(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetUsersSuccessMessage, result)
}
