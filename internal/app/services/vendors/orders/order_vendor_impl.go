package orders

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"labdash-service/internal/app/contracts"
	"labdash-service/internal/pkg/constvars"
	"labdash-service/internal/pkg/exceptions"
	"labdash-service/internal/pkg/vendordto"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	orderVendorClientInstance contracts.OrderVendorClient
	onceOrderVendorClient     sync.Once
)

type orderVendorClient struct {
	BaseUrl    string
	APIKey     string
	HTTPClient *http.Client
	Log        *zap.Logger
}

func NewOrderVendorClient(baseUrl, apiKey string, timeout time.Duration, logger *zap.Logger) contracts.OrderVendorClient {
	onceOrderVendorClient.Do(func() {
		orderVendorClientInstance = &orderVendorClient{
			BaseUrl:    baseUrl + constvars.VendorResourceOrders,
			APIKey:     apiKey,
			HTTPClient: &http.Client{Timeout: timeout},
			Log:        logger,
		}
	})
	return orderVendorClientInstance
}

func (c *orderVendorClient) setHeaders(req *http.Request, withBody bool) {
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	if withBody {
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	}
	if c.APIKey != "" {
		req.Header.Set(constvars.HeaderXVitalAPIKey, c.APIKey)
	}
}

func (c *orderVendorClient) vendorError(resp *http.Response, requestID, operation string) error {
	bodyBytes, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return exceptions.ErrVendorGetResource(readErr, constvars.ResourceOrder)
	}
	statusErr := fmt.Errorf("status %d: %s", resp.StatusCode, string(bodyBytes))
	c.Log.Error(operation+" vendor error",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Error(statusErr),
	)
	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		var envelope vendordto.ErrorEnvelope
		json.Unmarshal(bodyBytes, &envelope)
		return exceptions.ErrVendorRejected(statusErr, constvars.ResourceOrder, envelope.FirstMessage())
	}
	return exceptions.ErrVendorFailure(statusErr, constvars.ResourceOrder)
}

func (c *orderVendorClient) FindAllOrders(ctx context.Context) ([]vendordto.Order, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("orderVendorClient.FindAllOrders called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, c.BaseUrl, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	c.setHeaders(req, false)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("orderVendorClient.FindAllOrders error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, c.vendorError(resp, requestID, "orderVendorClient.FindAllOrders")
	}

	var list vendordto.OrderList
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceOrder)
	}

	c.Log.Info("orderVendorClient.FindAllOrders succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("order_count", len(list.Orders)),
	)
	return list.Orders, nil
}

func (c *orderVendorClient) CreateOrder(ctx context.Context, payload *vendordto.OrderPayload) (*vendordto.Order, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("orderVendorClient.CreateOrder called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, payload.UserID),
		zap.String(constvars.LoggingTemplateIDKey, payload.TemplateID),
	)

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.BaseUrl, bytes.NewReader(body))
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	c.setHeaders(req, true)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("orderVendorClient.CreateOrder error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK && resp.StatusCode != constvars.StatusCreated {
		return nil, c.vendorError(resp, requestID, "orderVendorClient.CreateOrder")
	}

	var created vendordto.Order
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceOrder)
	}

	c.Log.Info("orderVendorClient.CreateOrder succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, created.ID),
	)
	return &created, nil
}

func (c *orderVendorClient) CancelOrder(ctx context.Context, orderID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("orderVendorClient.CancelOrder called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, orderID),
	)

	endpoint := c.BaseUrl + url.PathEscape(orderID) + "/cancel/"
	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, endpoint, nil)
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}
	c.setHeaders(req, false)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("orderVendorClient.CancelOrder error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK && resp.StatusCode != constvars.StatusAccepted {
		return c.vendorError(resp, requestID, "orderVendorClient.CancelOrder")
	}

	c.Log.Info("orderVendorClient.CancelOrder succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, orderID),
	)
	return nil
}

// FetchResultsPDF streams the rendered report for a completed order. The
// caller owns the returned body and must close it.
func (c *orderVendorClient) FetchResultsPDF(ctx context.Context, orderID string) (io.ReadCloser, int64, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("orderVendorClient.FetchResultsPDF called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, orderID),
	)

	endpoint := c.BaseUrl + url.PathEscape(orderID) + "/results/pdf/"
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, endpoint, nil)
	if err != nil {
		return nil, 0, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationPDF)
	if c.APIKey != "" {
		req.Header.Set(constvars.HeaderXVitalAPIKey, c.APIKey)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("orderVendorClient.FetchResultsPDF error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, exceptions.ErrSendHTTPRequest(err)
	}

	if resp.StatusCode != constvars.StatusOK {
		defer resp.Body.Close()
		return nil, 0, c.vendorError(resp, requestID, "orderVendorClient.FetchResultsPDF")
	}

	c.Log.Info("orderVendorClient.FetchResultsPDF succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, orderID),
		zap.Int64("content_length", resp.ContentLength),
	)
	return resp.Body, resp.ContentLength, nil
}
