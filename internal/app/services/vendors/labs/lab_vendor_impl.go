package labs

import (
	"context"
	"fmt"
	"io"
	"labdash-service/internal/app/contracts"
	"labdash-service/internal/pkg/constvars"
	"labdash-service/internal/pkg/exceptions"
	"labdash-service/internal/pkg/vendordto"
	"net/http"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	labVendorClientInstance contracts.LabVendorClient
	onceLabVendorClient     sync.Once
)

type labVendorClient struct {
	BaseUrl    string
	APIKey     string
	HTTPClient *http.Client
	Log        *zap.Logger
}

func NewLabVendorClient(baseUrl, apiKey string, timeout time.Duration, logger *zap.Logger) contracts.LabVendorClient {
	onceLabVendorClient.Do(func() {
		labVendorClientInstance = &labVendorClient{
			BaseUrl:    baseUrl + constvars.VendorResourceLabs,
			APIKey:     apiKey,
			HTTPClient: &http.Client{Timeout: timeout},
			Log:        logger,
		}
	})
	return labVendorClientInstance
}

func (c *labVendorClient) FindAllLabs(ctx context.Context) ([]vendordto.Lab, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("labVendorClient.FindAllLabs called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, c.BaseUrl, nil)
	if err != nil {
		c.Log.Error("labVendorClient.FindAllLabs error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	if c.APIKey != "" {
		req.Header.Set(constvars.HeaderXVitalAPIKey, c.APIKey)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("labVendorClient.FindAllLabs error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		bodyBytes, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return nil, exceptions.ErrVendorGetResource(readErr, constvars.ResourceLab)
		}
		statusErr := fmt.Errorf("status %d: %s", resp.StatusCode, string(bodyBytes))
		c.Log.Error("labVendorClient.FindAllLabs vendor error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(statusErr),
		)
		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			var envelope vendordto.ErrorEnvelope
			json.Unmarshal(bodyBytes, &envelope)
			return nil, exceptions.ErrVendorRejected(statusErr, constvars.ResourceLab, envelope.FirstMessage())
		}
		return nil, exceptions.ErrVendorFailure(statusErr, constvars.ResourceLab)
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceLab)
	}

	// The vendor has shipped this list both bare and enveloped.
	var list []vendordto.Lab
	if err := json.Unmarshal(bodyBytes, &list); err != nil {
		var envelope vendordto.LabList
		if err := json.Unmarshal(bodyBytes, &envelope); err != nil {
			c.Log.Error("labVendorClient.FindAllLabs error decoding response",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceLab)
		}
		list = envelope.Labs
	}

	c.Log.Info("labVendorClient.FindAllLabs succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("lab_count", len(list)),
	)
	return list, nil
}
