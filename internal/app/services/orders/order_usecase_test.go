package orders

import (
	"bytes"
	"context"
	"errors"
	"io"
	"labdash-service/internal/app/config"
	"labdash-service/internal/app/contracts"
	"labdash-service/internal/app/models"
	"labdash-service/internal/pkg/constvars"
	"labdash-service/internal/pkg/exceptions"
	"labdash-service/internal/pkg/vendordto"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockOrderVendorClient struct {
	mock.Mock
}

func (m *MockOrderVendorClient) FindAllOrders(ctx context.Context) ([]vendordto.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]vendordto.Order), args.Error(1)
}

func (m *MockOrderVendorClient) CreateOrder(ctx context.Context, payload *vendordto.OrderPayload) (*vendordto.Order, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vendordto.Order), args.Error(1)
}

func (m *MockOrderVendorClient) CancelOrder(ctx context.Context, orderID string) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

func (m *MockOrderVendorClient) FetchResultsPDF(ctx context.Context, orderID string) (io.ReadCloser, int64, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(int64), args.Error(2)
}

type MockTemplateVendorClient struct {
	mock.Mock
}

func (m *MockTemplateVendorClient) FindAllTemplates(ctx context.Context) ([]vendordto.Template, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]vendordto.Template), args.Error(1)
}

func (m *MockTemplateVendorClient) FindMarkersByTemplate(ctx context.Context, templateID string) ([]vendordto.Marker, error) {
	args := m.Called(ctx, templateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]vendordto.Marker), args.Error(1)
}

func (m *MockTemplateVendorClient) CreateTemplate(ctx context.Context, payload *vendordto.TemplatePayload) (*vendordto.Template, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vendordto.Template), args.Error(1)
}

func (m *MockTemplateVendorClient) UpdateTemplate(ctx context.Context, templateID string, payload *vendordto.TemplatePayload) (*vendordto.Template, error) {
	args := m.Called(ctx, templateID, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vendordto.Template), args.Error(1)
}

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	args := m.Called(ctx, key, value, exp)
	return args.Error(0)
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, exp)
	return args.Bool(0), args.Error(1)
}

type MockCollectionCache struct {
	mock.Mock
}

func (m *MockCollectionCache) GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	args := m.Called(ctx, key, dest)
	return args.Bool(0), args.Error(1)
}

func (m *MockCollectionCache) SetJSON(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	args := m.Called(ctx, key, value, exp)
	return args.Error(0)
}

func (m *MockCollectionCache) Invalidate(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

type MockReportStorage struct {
	mock.Mock
}

func (m *MockReportStorage) PutReport(ctx context.Context, bucketName, objectName string, report io.Reader, size int64) error {
	args := m.Called(ctx, bucketName, objectName, report, size)
	return args.Error(0)
}

func (m *MockReportStorage) PresignReport(ctx context.Context, bucketName, objectName string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, bucketName, objectName, expiry)
	return args.String(0), args.Error(1)
}

func (m *MockReportStorage) RemoveReport(ctx context.Context, bucketName, objectName string) error {
	args := m.Called(ctx, bucketName, objectName)
	return args.Error(0)
}

type MockOrderEventPublisher struct {
	mock.Mock
}

func (m *MockOrderEventPublisher) Publish(ctx context.Context, eventType, orderID string, payload interface{}) error {
	args := m.Called(ctx, eventType, orderID, payload)
	return args.Error(0)
}

type orderUsecaseMocks struct {
	orderVendor    *MockOrderVendorClient
	templateVendor *MockTemplateVendorClient
	redis          *MockRedisRepository
	cache          *MockCollectionCache
	storage        *MockReportStorage
	publisher      *MockOrderEventPublisher
}

func newOrderUsecaseForTest() (contracts.OrderUsecase, *orderUsecaseMocks) {
	mocks := &orderUsecaseMocks{
		orderVendor:    new(MockOrderVendorClient),
		templateVendor: new(MockTemplateVendorClient),
		redis:          new(MockRedisRepository),
		cache:          new(MockCollectionCache),
		storage:        new(MockReportStorage),
		publisher:      new(MockOrderEventPublisher),
	}
	internalConfig := &config.InternalConfig{
		App: config.App{
			ReportBucketName:         "lab-reports",
			ReportURLExpiryInMinutes: 5,
		},
		Cache: config.Cache{
			CollectionTTLInSeconds: 60,
			DraftTTLInMinutes:      30,
			CancelFlagTTLInSeconds: 15,
		},
	}
	uc := NewOrderUsecase(
		mocks.orderVendor,
		mocks.templateVendor,
		mocks.redis,
		mocks.cache,
		mocks.storage,
		mocks.publisher,
		internalConfig,
		zap.NewNop(),
	)
	return uc, mocks
}

func submittableOrderDraft(t *testing.T) *models.Draft {
	t.Helper()
	draft := models.NewDraft("draft-1", constvars.DraftKindOrder)
	draft.SelectLab("lab-a", []string{models.MethodTestkit})
	require.True(t, draft.ApplyMarkerList("lab-a", []models.MarkerOption{{ID: "m1", Name: "TSH"}}))
	require.True(t, draft.SelectMethod(models.MethodTestkit))
	require.True(t, draft.ToggleMarker("m1"))
	draft.SetTemplateSelection("tmpl-1")
	draft.SetPatient("user-1", models.PatientDetails{
		FirstName:   "Ada",
		LastName:    "Lovelace",
		DateOfBirth: "1990-12-10",
		Gender:      "female",
		PhoneNumber: "+15551234567",
		Email:       "ada@example.com",
		StreetLine:  "1 Analytical Way",
		City:        "London",
		State:       "LDN",
		Zip:         "12345",
		Country:     "GB",
	}, true)
	require.True(t, draft.Valid())
	return draft
}

func storedDraftJSON(t *testing.T, draft *models.Draft) string {
	t.Helper()
	raw, err := json.Marshal(draft)
	require.NoError(t, err)
	return string(raw)
}

func TestOrderUsecase_SubmitOrder(t *testing.T) {
	t.Run("Valid draft places the order and resets it", func(t *testing.T) {
		uc, mocks := newOrderUsecaseForTest()
		draft := submittableOrderDraft(t)

		mocks.redis.On("Get", mock.Anything, constvars.DraftKeyPrefix+"draft-1").Return(storedDraftJSON(t, draft), nil)
		mocks.templateVendor.On("FindAllTemplates", mock.Anything).Return([]vendordto.Template{{ID: "tmpl-1", Name: "Metabolic Panel"}}, nil)
		mocks.orderVendor.On("CreateOrder", mock.Anything, mock.MatchedBy(func(payload *vendordto.OrderPayload) bool {
			return payload.UserID == "user-1" &&
				payload.TemplateID == "tmpl-1" &&
				payload.Method == models.MethodTestkit &&
				payload.PhysicianAuthed
		})).Return(&vendordto.Order{
			ID:      "order-1",
			Status:  constvars.OrderStatusPending,
			Method:  models.MethodTestkit,
			LabTest: vendordto.Template{Name: "Metabolic Panel"},
		}, nil)
		mocks.redis.On("Set", mock.Anything, constvars.DraftKeyPrefix+"draft-1", mock.MatchedBy(func(value interface{}) bool {
			reset, ok := value.(*models.Draft)
			return ok && reset.LabID == "" && len(reset.SelectedMarkerIDs) == 0
		}), mock.Anything).Return(nil)
		mocks.cache.On("Invalidate", mock.Anything, constvars.CacheKeyOrders).Return(nil)
		mocks.publisher.On("Publish", mock.Anything, constvars.OrderEventCreated, "order-1", mock.Anything).Return(nil)

		result, err := uc.SubmitOrder(context.Background(), "draft-1")

		require.NoError(t, err)
		assert.Equal(t, "order-1", result.ID)
		assert.Equal(t, "Metabolic Panel", result.TemplateName)
		mocks.redis.AssertExpectations(t)
		mocks.cache.AssertExpectations(t)
		mocks.publisher.AssertExpectations(t)
	})

	t.Run("Incomplete draft never reaches the vendor", func(t *testing.T) {
		uc, mocks := newOrderUsecaseForTest()
		draft := submittableOrderDraft(t)
		draft.SetPatient("user-1", draft.Patient, false)

		mocks.redis.On("Get", mock.Anything, constvars.DraftKeyPrefix+"draft-1").Return(storedDraftJSON(t, draft), nil)

		result, err := uc.SubmitOrder(context.Background(), "draft-1")

		assert.Error(t, err)
		assert.Nil(t, result)
		mocks.orderVendor.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
	})

	t.Run("Unknown template is reported before ordering", func(t *testing.T) {
		uc, mocks := newOrderUsecaseForTest()
		draft := submittableOrderDraft(t)

		mocks.redis.On("Get", mock.Anything, constvars.DraftKeyPrefix+"draft-1").Return(storedDraftJSON(t, draft), nil)
		mocks.templateVendor.On("FindAllTemplates", mock.Anything).Return([]vendordto.Template{{ID: "other"}}, nil)

		result, err := uc.SubmitOrder(context.Background(), "draft-1")

		assert.Error(t, err)
		assert.Nil(t, result)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
		mocks.orderVendor.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
	})
}

func TestOrderUsecase_CancelOrder(t *testing.T) {
	t.Run("Cancel forwards once and clears the busy flag", func(t *testing.T) {
		uc, mocks := newOrderUsecaseForTest()

		flagKey := constvars.CancellingKeyPrefix + "order-1"
		mocks.redis.On("TrySetNX", mock.Anything, flagKey, mock.Anything, mock.Anything).Return(true, nil)
		mocks.orderVendor.On("CancelOrder", mock.Anything, "order-1").Return(nil)
		mocks.cache.On("Invalidate", mock.Anything, constvars.CacheKeyOrders).Return(nil)
		mocks.publisher.On("Publish", mock.Anything, constvars.OrderEventCancelled, "order-1", mock.Anything).Return(nil)
		mocks.redis.On("Delete", mock.Anything, flagKey).Return(nil)

		err := uc.CancelOrder(context.Background(), "order-1")

		require.NoError(t, err)
		mocks.orderVendor.AssertNumberOfCalls(t, "CancelOrder", 1)
		mocks.redis.AssertCalled(t, "Delete", mock.Anything, flagKey)
	})

	t.Run("Duplicate cancel for the same order is suppressed", func(t *testing.T) {
		uc, mocks := newOrderUsecaseForTest()

		flagKey := constvars.CancellingKeyPrefix + "order-1"
		mocks.redis.On("TrySetNX", mock.Anything, flagKey, mock.Anything, mock.Anything).Return(false, nil)

		err := uc.CancelOrder(context.Background(), "order-1")

		assert.Error(t, err)
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		mocks.orderVendor.AssertNotCalled(t, "CancelOrder", mock.Anything, mock.Anything)
	})
}

func TestOrderUsecase_FetchReport(t *testing.T) {
	completedOrders := []vendordto.Order{
		{ID: "order-1", Status: "COMPLETED"},
		{ID: "order-2", Status: constvars.OrderStatusPending},
	}

	t.Run("Completed order yields a short-lived download URL", func(t *testing.T) {
		uc, mocks := newOrderUsecaseForTest()

		mocks.orderVendor.On("FindAllOrders", mock.Anything).Return(completedOrders, nil)
		mocks.orderVendor.On("FetchResultsPDF", mock.Anything, "order-1").
			Return(io.NopCloser(bytes.NewReader([]byte("%PDF-1.4"))), int64(8), nil)
		mocks.storage.On("PutReport", mock.Anything, "lab-reports", mock.Anything, mock.Anything, int64(8)).Return(nil)
		mocks.storage.On("PresignReport", mock.Anything, "lab-reports", mock.Anything, 5*time.Minute).
			Return("https://minio.local/lab-reports/signed", nil)
		mocks.publisher.On("Publish", mock.Anything, constvars.OrderEventReportDownloaded, "order-1", mock.Anything).Return(nil)

		result, err := uc.FetchReport(context.Background(), "order-1")

		require.NoError(t, err)
		assert.Equal(t, "order-1", result.OrderID)
		assert.Equal(t, "lab-results-order-1.pdf", result.FileName)
		assert.Equal(t, constvars.MIMEApplicationPDF, result.ContentType)
		assert.Equal(t, "https://minio.local/lab-reports/signed", result.DownloadURL)
	})

	t.Run("Pending order has no report", func(t *testing.T) {
		uc, mocks := newOrderUsecaseForTest()

		mocks.orderVendor.On("FindAllOrders", mock.Anything).Return(completedOrders, nil)

		result, err := uc.FetchReport(context.Background(), "order-2")

		assert.Error(t, err)
		assert.Nil(t, result)
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		mocks.orderVendor.AssertNotCalled(t, "FetchResultsPDF", mock.Anything, mock.Anything)
	})

	t.Run("Failed presign removes the orphaned object", func(t *testing.T) {
		uc, mocks := newOrderUsecaseForTest()

		mocks.orderVendor.On("FindAllOrders", mock.Anything).Return(completedOrders, nil)
		mocks.orderVendor.On("FetchResultsPDF", mock.Anything, "order-1").
			Return(io.NopCloser(bytes.NewReader([]byte("%PDF-1.4"))), int64(8), nil)
		mocks.storage.On("PutReport", mock.Anything, "lab-reports", mock.Anything, mock.Anything, int64(8)).Return(nil)
		mocks.storage.On("PresignReport", mock.Anything, "lab-reports", mock.Anything, mock.Anything).
			Return("", errors.New("presign unavailable"))
		mocks.storage.On("RemoveReport", mock.Anything, "lab-reports", mock.Anything).Return(nil)

		result, err := uc.FetchReport(context.Background(), "order-1")

		assert.Error(t, err)
		assert.Nil(t, result)
		mocks.storage.AssertCalled(t, "RemoveReport", mock.Anything, "lab-reports", mock.Anything)
	})
}

func TestOrderUsecase_DownloadTracking(t *testing.T) {
	ucIface, _ := newOrderUsecaseForTest()
	uc := ucIface.(*orderUsecase)

	require.NoError(t, uc.trackDownload("order-1"))

	t.Run("Duplicate download for the tracked order is rejected", func(t *testing.T) {
		err := uc.trackDownload("order-1")
		assert.Error(t, err)
	})

	t.Run("A different order replaces the tracked id", func(t *testing.T) {
		require.NoError(t, uc.trackDownload("order-2"))
		assert.Equal(t, "order-2", uc.downloadingOrderID)
	})

	t.Run("Untrack clears only the current id", func(t *testing.T) {
		uc.untrackDownload("order-1")
		assert.Equal(t, "order-2", uc.downloadingOrderID)

		uc.untrackDownload("order-2")
		assert.Empty(t, uc.downloadingOrderID)
	})
}
