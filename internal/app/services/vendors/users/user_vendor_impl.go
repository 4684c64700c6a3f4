package users

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
	userVendorClientInstance contracts.UserVendorClient
	onceUserVendorClient     sync.Once
)

type userVendorClient struct {
	BaseUrl    string
	APIKey     string
	HTTPClient *http.Client
	Log        *zap.Logger
}

func NewUserVendorClient(baseUrl, apiKey string, timeout time.Duration, logger *zap.Logger) contracts.UserVendorClient {
	onceUserVendorClient.Do(func() {
		userVendorClientInstance = &userVendorClient{
			BaseUrl:    baseUrl + constvars.VendorResourceUsers,
			APIKey:     apiKey,
			HTTPClient: &http.Client{Timeout: timeout},
			Log:        logger,
		}
	})
	return userVendorClientInstance
}

func (c *userVendorClient) FindAllUsers(ctx context.Context) ([]vendordto.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("userVendorClient.FindAllUsers called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, c.BaseUrl, nil)
	if err != nil {
		c.Log.Error("userVendorClient.FindAllUsers error creating HTTP request",
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
		c.Log.Error("userVendorClient.FindAllUsers error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		bodyBytes, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return nil, exceptions.ErrVendorGetResource(readErr, constvars.ResourceUser)
		}
		statusErr := fmt.Errorf("status %d: %s", resp.StatusCode, string(bodyBytes))
		c.Log.Error("userVendorClient.FindAllUsers vendor error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(statusErr),
		)
		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			var envelope vendordto.ErrorEnvelope
			json.Unmarshal(bodyBytes, &envelope)
			return nil, exceptions.ErrVendorRejected(statusErr, constvars.ResourceUser, envelope.FirstMessage())
		}
		return nil, exceptions.ErrVendorFailure(statusErr, constvars.ResourceUser)
	}

	var list vendordto.UserList
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		c.Log.Error("userVendorClient.FindAllUsers error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceUser)
	}

	c.Log.Info("userVendorClient.FindAllUsers succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("user_count", len(list.Users)),
	)
	return list.Users, nil
}
