package templates

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
	templateVendorClientInstance contracts.TemplateVendorClient
	onceTemplateVendorClient     sync.Once
)

type templateVendorClient struct {
	BaseUrl    string
	APIKey     string
	HTTPClient *http.Client
	Log        *zap.Logger
}

func NewTemplateVendorClient(baseUrl, apiKey string, timeout time.Duration, logger *zap.Logger) contracts.TemplateVendorClient {
	onceTemplateVendorClient.Do(func() {
		templateVendorClientInstance = &templateVendorClient{
			BaseUrl:    baseUrl + constvars.VendorResourceTemplates,
			APIKey:     apiKey,
			HTTPClient: &http.Client{Timeout: timeout},
			Log:        logger,
		}
	})
	return templateVendorClientInstance
}

func (c *templateVendorClient) setHeaders(req *http.Request, withBody bool) {
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	if withBody {
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	}
	if c.APIKey != "" {
		req.Header.Set(constvars.HeaderXVitalAPIKey, c.APIKey)
	}
}

func (c *templateVendorClient) vendorError(resp *http.Response, requestID, operation string) error {
	bodyBytes, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return exceptions.ErrVendorGetResource(readErr, constvars.ResourceTemplate)
	}
	statusErr := fmt.Errorf("status %d: %s", resp.StatusCode, string(bodyBytes))
	c.Log.Error(operation+" vendor error",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Error(statusErr),
	)
	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		var envelope vendordto.ErrorEnvelope
		json.Unmarshal(bodyBytes, &envelope)
		return exceptions.ErrVendorRejected(statusErr, constvars.ResourceTemplate, envelope.FirstMessage())
	}
	return exceptions.ErrVendorFailure(statusErr, constvars.ResourceTemplate)
}

func (c *templateVendorClient) FindAllTemplates(ctx context.Context) ([]vendordto.Template, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("templateVendorClient.FindAllTemplates called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, c.BaseUrl, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	c.setHeaders(req, false)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("templateVendorClient.FindAllTemplates error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, c.vendorError(resp, requestID, "templateVendorClient.FindAllTemplates")
	}

	var list vendordto.TemplateList
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceTemplate)
	}

	c.Log.Info("templateVendorClient.FindAllTemplates succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("template_count", len(list.Templates)),
	)
	return list.Templates, nil
}

func (c *templateVendorClient) FindMarkersByTemplate(ctx context.Context, templateID string) ([]vendordto.Marker, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("templateVendorClient.FindMarkersByTemplate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTemplateIDKey, templateID),
	)

	endpoint := c.BaseUrl + "markers/" + url.PathEscape(templateID) + "/"
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, endpoint, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	c.setHeaders(req, false)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("templateVendorClient.FindMarkersByTemplate error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, c.vendorError(resp, requestID, "templateVendorClient.FindMarkersByTemplate")
	}

	var list vendordto.MarkerList
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceTemplate)
	}

	c.Log.Info("templateVendorClient.FindMarkersByTemplate succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("marker_count", len(list.Markers)),
	)
	return list.Markers, nil
}

func (c *templateVendorClient) CreateTemplate(ctx context.Context, payload *vendordto.TemplatePayload) (*vendordto.Template, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("templateVendorClient.CreateTemplate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingLabIDKey, payload.LabID),
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
		c.Log.Error("templateVendorClient.CreateTemplate error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK && resp.StatusCode != constvars.StatusCreated {
		return nil, c.vendorError(resp, requestID, "templateVendorClient.CreateTemplate")
	}

	var created vendordto.Template
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceTemplate)
	}

	c.Log.Info("templateVendorClient.CreateTemplate succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTemplateIDKey, created.ID),
	)
	return &created, nil
}

func (c *templateVendorClient) UpdateTemplate(ctx context.Context, templateID string, payload *vendordto.TemplatePayload) (*vendordto.Template, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("templateVendorClient.UpdateTemplate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTemplateIDKey, templateID),
	)

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	endpoint := c.BaseUrl + url.PathEscape(templateID) + "/"
	req, err := http.NewRequestWithContext(ctx, constvars.MethodPut, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	c.setHeaders(req, true)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("templateVendorClient.UpdateTemplate error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, c.vendorError(resp, requestID, "templateVendorClient.UpdateTemplate")
	}

	var updated vendordto.Template
	if err := json.NewDecoder(resp.Body).Decode(&updated); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceTemplate)
	}

	c.Log.Info("templateVendorClient.UpdateTemplate succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTemplateIDKey, updated.ID),
	)
	return &updated, nil
}
