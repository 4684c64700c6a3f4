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

type OrderController struct {
	Log            *zap.Logger
	OrderUsecase   contracts.OrderUsecase
	RequestTimeout time.Duration
}

func NewOrderController(logger *zap.Logger, orderUsecase contracts.OrderUsecase, requestTimeout time.Duration) *OrderController {
	return &OrderController{
		Log:            logger,
		OrderUsecase:   orderUsecase,
		RequestTimeout: requestTimeout,
	}
}

func (ctrl *OrderController) FindAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	result, err := ctrl.OrderUsecase.GetOrders(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetOrdersSuccessMessage, result)
}

func (ctrl *OrderController) Submit(w http.ResponseWriter, r *http.Request) {
	request := &requests.SubmitDraft{}
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	result, err := ctrl.OrderUsecase.SubmitOrder(ctx, request.DraftID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateOrderSuccessMessage, result)
}

func (ctrl *OrderController) Cancel(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, constvars.URLParamOrderID)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	if err := ctrl.OrderUsecase.CancelOrder(ctx, orderID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusAccepted, constvars.CancelOrderSuccessMessage, nil)
}

func (ctrl *OrderController) FetchReport(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, constvars.URLParamOrderID)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	result, err := ctrl.OrderUsecase.FetchReport(ctx, orderID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FetchReportSuccessMessage, result)
}
