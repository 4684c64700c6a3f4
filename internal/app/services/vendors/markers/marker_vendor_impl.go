package markers

import (
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
	markerVendorClientInstance contracts.MarkerVendorClient
	onceMarkerVendorClient     sync.Once
)

type markerVendorClient struct {
	BaseUrl    string
	APIKey     string
	HTTPClient *http.Client
	Log        *zap.Logger
}

func NewMarkerVendorClient(baseUrl, apiKey string, timeout time.Duration, logger *zap.Logger) contracts.MarkerVendorClient {
	onceMarkerVendorClient.Do(func() {
		markerVendorClientInstance = &markerVendorClient{
			BaseUrl:    baseUrl + constvars.VendorResourceMarkers,
			APIKey:     apiKey,
			HTTPClient: &http.Client{Timeout: timeout},
			Log:        logger,
		}
	})
	return markerVendorClientInstance
}

// FindMarkersByLab fetches the biomarkers offered by a single lab. The scope
// is always one lab; callers never merge lists across labs.
func (c *markerVendorClient) FindMarkersByLab(ctx context.Context, labID string) ([]vendordto.Marker, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("markerVendorClient.FindMarkersByLab called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingLabIDKey, labID),
	)

	targetURL := fmt.Sprintf("%s?lab_id=%s", c.BaseUrl, url.QueryEscape(labID))
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, targetURL, nil)
	if err != nil {
		c.Log.Error("markerVendorClient.FindMarkersByLab error creating HTTP request",
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
		c.Log.Error("markerVendorClient.FindMarkersByLab error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		bodyBytes, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return nil, exceptions.ErrVendorGetResource(readErr, constvars.ResourceMarker)
		}
		statusErr := fmt.Errorf("status %d: %s", resp.StatusCode, string(bodyBytes))
		c.Log.Error("markerVendorClient.FindMarkersByLab vendor error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(statusErr),
		)
		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			var envelope vendordto.ErrorEnvelope
			json.Unmarshal(bodyBytes, &envelope)
			return nil, exceptions.ErrVendorRejected(statusErr, constvars.ResourceMarker, envelope.FirstMessage())
		}
		return nil, exceptions.ErrVendorFailure(statusErr, constvars.ResourceMarker)
	}

	var list vendordto.MarkerList
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		c.Log.Error("markerVendorClient.FindMarkersByLab error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceMarker)
	}

	c.Log.Info("markerVendorClient.FindMarkersByLab succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingLabIDKey, labID),
		zap.Int(constvars.LoggingMarkerCountKey, len(list.Markers)),
	)
	return list.Markers, nil
}
