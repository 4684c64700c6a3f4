package orders

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"labdash-service/internal/app/config"
	"labdash-service/internal/app/contracts"
	"labdash-service/internal/app/services/drafts"
	"labdash-service/internal/pkg/constvars"
	"labdash-service/internal/pkg/dto/responses"
	"labdash-service/internal/pkg/exceptions"
	"labdash-service/internal/pkg/utils"
	"labdash-service/internal/pkg/vendordto"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

type orderUsecase struct {
	OrderVendorClient    contracts.OrderVendorClient
	TemplateVendorClient contracts.TemplateVendorClient
	RedisRepository      contracts.RedisRepository
	Cache                contracts.CollectionCache
	ReportStorage        contracts.ReportStorage
	EventPublisher       contracts.OrderEventPublisher
	InternalConfig       *config.InternalConfig
	Log                  *zap.Logger

	// One report download is tracked at a time. A request for a different
	// order replaces the tracked id; a duplicate for the same order is
	// rejected while the first is still in flight.
	downloadMu         sync.Mutex
	downloadingOrderID string
}

func NewOrderUsecase(
	orderVendorClient contracts.OrderVendorClient,
	templateVendorClient contracts.TemplateVendorClient,
	redisRepository contracts.RedisRepository,
	cache contracts.CollectionCache,
	reportStorage contracts.ReportStorage,
	eventPublisher contracts.OrderEventPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.OrderUsecase {
	return &orderUsecase{
		OrderVendorClient:    orderVendorClient,
		TemplateVendorClient: templateVendorClient,
		RedisRepository:      redisRepository,
		Cache:                cache,
		ReportStorage:        reportStorage,
		EventPublisher:       eventPublisher,
		InternalConfig:       internalConfig,
		Log:                  logger,
	}
}

func (uc *orderUsecase) GetOrders(ctx context.Context) ([]responses.Order, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	var cached []responses.Order
	hit, err := uc.Cache.GetJSON(ctx, constvars.CacheKeyOrders, &cached)
	if err != nil {
		return nil, err
	}
	if hit {
		uc.Log.Info("orderUsecase.GetOrders cache hit",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCacheKey, constvars.CacheKeyOrders),
		)
		return cached, nil
	}

	orders, err := uc.OrderVendorClient.FindAllOrders(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]responses.Order, len(orders))
	for i, order := range orders {
		response[i] = toOrderResponse(&order)
	}

	ttl := time.Duration(uc.InternalConfig.Cache.CollectionTTLInSeconds) * time.Second
	if err := uc.Cache.SetJSON(ctx, constvars.CacheKeyOrders, response, ttl); err != nil {
		return nil, err
	}
	return response, nil
}

// SubmitOrder places an order from a finished order draft. On success the
// draft returns to its just-opened state and the orders collection is
// re-fetched on next read rather than patched.
func (uc *orderUsecase) SubmitOrder(ctx context.Context, draftID string) (*responses.Order, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	draft, err := drafts.Load(ctx, uc.RedisRepository, draftID)
	if err != nil {
		return nil, err
	}
	if draft.Kind != constvars.DraftKindOrder || !draft.Valid() {
		return nil, exceptions.ErrDraftIncomplete(fmt.Errorf("order draft %s is not submittable", draftID))
	}

	templates, err := uc.TemplateVendorClient.FindAllTemplates(ctx)
	if err != nil {
		return nil, err
	}
	templateFound := false
	for i := range templates {
		if templates[i].ID == draft.SelectedTemplateID {
			templateFound = true
			break
		}
	}
	if !templateFound {
		return nil, exceptions.ErrTemplateNotFound(fmt.Errorf("template %s referenced by draft %s not found", draft.SelectedTemplateID, draftID))
	}

	payload := &vendordto.OrderPayload{
		UserID:     draft.PatientUserID,
		TemplateID: draft.SelectedTemplateID,
		Method:     draft.Method,
		Payor:      draft.Payor,
		PatientDetails: vendordto.PatientDetails{
			FirstName:   draft.Patient.FirstName,
			LastName:    draft.Patient.LastName,
			DateOfBirth: draft.Patient.DateOfBirth,
			Gender:      draft.Patient.Gender,
			PhoneNumber: draft.Patient.PhoneNumber,
			Email:       draft.Patient.Email,
			Address: vendordto.PatientAddress{
				FirstLine: draft.Patient.StreetLine,
				City:      draft.Patient.City,
				State:     draft.Patient.State,
				Zip:       draft.Patient.Zip,
				Country:   draft.Patient.Country,
			},
		},
		PhysicianAuthed: draft.HIPAAAuthorized,
	}

	created, err := uc.OrderVendorClient.CreateOrder(ctx, payload)
	if err != nil {
		return nil, err
	}

	draft.Reset()
	ttl := time.Duration(uc.InternalConfig.Cache.DraftTTLInMinutes) * time.Minute
	if err := drafts.Store(ctx, uc.RedisRepository, draft, ttl); err != nil {
		return nil, err
	}
	if err := uc.Cache.Invalidate(ctx, constvars.CacheKeyOrders); err != nil {
		return nil, err
	}

	if err := uc.EventPublisher.Publish(ctx, constvars.OrderEventCreated, created.ID, created); err != nil {
		uc.Log.Warn("orderUsecase.SubmitOrder event publish failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOrderIDKey, created.ID),
			zap.Error(err),
		)
	}

	uc.Log.Info("orderUsecase.SubmitOrder succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDraftIDKey, draftID),
		zap.String(constvars.LoggingOrderIDKey, created.ID),
	)
	response := toOrderResponse(created)
	return &response, nil
}

// CancelOrder forwards a cancel to the vendor at most once per order at a
// time. A second cancel for the same id while one is in flight is rejected
// without a vendor call; cancels for different ids proceed independently.
func (uc *orderUsecase) CancelOrder(ctx context.Context, orderID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	flagKey := constvars.CancellingKeyPrefix + orderID
	flagTTL := time.Duration(uc.InternalConfig.Cache.CancelFlagTTLInSeconds) * time.Second
	acquired, err := uc.RedisRepository.TrySetNX(ctx, flagKey, time.Now().UTC(), flagTTL)
	if err != nil {
		return err
	}
	if !acquired {
		return exceptions.ErrCancelInProgress(fmt.Errorf("cancel already in flight for order %s", orderID))
	}
	defer func() {
		_ = uc.RedisRepository.Delete(ctx, flagKey)
	}()

	if err := uc.OrderVendorClient.CancelOrder(ctx, orderID); err != nil {
		return err
	}
	if err := uc.Cache.Invalidate(ctx, constvars.CacheKeyOrders); err != nil {
		return err
	}

	if err := uc.EventPublisher.Publish(ctx, constvars.OrderEventCancelled, orderID, nil); err != nil {
		uc.Log.Warn("orderUsecase.CancelOrder event publish failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOrderIDKey, orderID),
			zap.Error(err),
		)
	}

	uc.Log.Info("orderUsecase.CancelOrder succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, orderID),
	)
	return nil
}

// FetchReport pulls the rendered PDF for a completed order, parks it in
// object storage and hands back a short-lived download URL. The object is
// removed once the URL expires.
func (uc *orderUsecase) FetchReport(ctx context.Context, orderID string) (*responses.Report, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	orders, err := uc.OrderVendorClient.FindAllOrders(ctx)
	if err != nil {
		return nil, err
	}
	var order *vendordto.Order
	for i := range orders {
		if orders[i].ID == orderID {
			order = &orders[i]
			break
		}
	}
	if order == nil || !strings.EqualFold(order.Status, constvars.OrderStatusCompleted) {
		return nil, exceptions.ErrReportNotReady(fmt.Errorf("order %s has no downloadable report", orderID))
	}

	if err := uc.trackDownload(orderID); err != nil {
		return nil, err
	}
	defer uc.untrackDownload(orderID)

	report, err := uc.fetchAndStage(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := uc.EventPublisher.Publish(ctx, constvars.OrderEventReportDownloaded, orderID, nil); err != nil {
		uc.Log.Warn("orderUsecase.FetchReport event publish failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOrderIDKey, orderID),
			zap.Error(err),
		)
	}

	uc.Log.Info("orderUsecase.FetchReport succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, orderID),
	)
	return report, nil
}

func (uc *orderUsecase) trackDownload(orderID string) error {
	uc.downloadMu.Lock()
	defer uc.downloadMu.Unlock()
	if uc.downloadingOrderID == orderID {
		return exceptions.ErrReportInProgress(fmt.Errorf("report for order %s is already being fetched", orderID))
	}
	uc.downloadingOrderID = orderID
	return nil
}

func (uc *orderUsecase) untrackDownload(orderID string) {
	uc.downloadMu.Lock()
	defer uc.downloadMu.Unlock()
	if uc.downloadingOrderID == orderID {
		uc.downloadingOrderID = ""
	}
}

func (uc *orderUsecase) fetchAndStage(ctx context.Context, orderID string) (*responses.Report, error) {
	body, _, err := uc.OrderVendorClient.FetchResultsPDF(ctx, orderID)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	content, err := io.ReadAll(body)
	if err != nil {
		return nil, exceptions.ErrVendorGetResource(err, constvars.ResourceReport)
	}

	bucket := uc.InternalConfig.App.ReportBucketName
	objectName := utils.GenerateReportObjectName(orderID)
	if err := uc.ReportStorage.PutReport(ctx, bucket, objectName, bytes.NewReader(content), int64(len(content))); err != nil {
		return nil, err
	}

	expiry := time.Duration(uc.InternalConfig.App.ReportURLExpiryInMinutes) * time.Minute
	downloadURL, err := uc.ReportStorage.PresignReport(ctx, bucket, objectName, expiry)
	if err != nil {
		// The object is useless without a URL; drop it right away.
		if removeErr := uc.ReportStorage.RemoveReport(ctx, bucket, objectName); removeErr != nil {
			uc.Log.Error("orderUsecase.fetchAndStage orphaned report object",
				zap.String(constvars.LoggingObjectKey, objectName),
				zap.Error(removeErr),
			)
		}
		return nil, err
	}

	// The object only needs to outlive its presigned URL.
	time.AfterFunc(expiry, func() {
		if err := uc.ReportStorage.RemoveReport(context.Background(), bucket, objectName); err != nil {
			uc.Log.Error("orderUsecase.fetchAndStage expired report cleanup failed",
				zap.String(constvars.LoggingObjectKey, objectName),
				zap.Error(err),
			)
		}
	})

	return &responses.Report{
		OrderID:     orderID,
		FileName:    fmt.Sprintf(constvars.ReportFileNameFormat, orderID),
		ContentType: constvars.MIMEApplicationPDF,
		DownloadURL: downloadURL,
		ExpiresAt:   time.Now().UTC().Add(expiry),
	}, nil
}

func toOrderResponse(order *vendordto.Order) responses.Order {
	patientName := strings.TrimSpace(order.PatientDetails.FirstName + " " + order.PatientDetails.LastName)
	return responses.Order{
		ID:              order.ID,
		TemplateName:    order.LabTest.Name,
		PatientName:     patientName,
		Method:          order.Method,
		Status:          order.Status,
		CreatedAt:       order.CreatedAt,
		ReportAvailable: strings.EqualFold(order.Status, constvars.OrderStatusCompleted),
	}
}
