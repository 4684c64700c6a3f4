package catalog

import (
	"context"
	"labdash-service/internal/app/config"
	"labdash-service/internal/app/contracts"
	"labdash-service/internal/pkg/constvars"
	"labdash-service/internal/pkg/dto/responses"
	"time"

	"go.uber.org/zap"
)

type catalogUsecase struct {
	LabVendorClient    contracts.LabVendorClient
	MarkerVendorClient contracts.MarkerVendorClient
	UserVendorClient   contracts.UserVendorClient
	Cache              contracts.CollectionCache
	InternalConfig     *config.InternalConfig
	Log                *zap.Logger
}

func NewCatalogUsecase(
	labVendorClient contracts.LabVendorClient,
	markerVendorClient contracts.MarkerVendorClient,
	userVendorClient contracts.UserVendorClient,
	cache contracts.CollectionCache,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.CatalogUsecase {
	return &catalogUsecase{
		LabVendorClient:    labVendorClient,
		MarkerVendorClient: markerVendorClient,
		UserVendorClient:   userVendorClient,
		Cache:              cache,
		InternalConfig:     internalConfig,
		Log:                logger,
	}
}

func (uc *catalogUsecase) collectionTTL() time.Duration {
	return time.Duration(uc.InternalConfig.Cache.CollectionTTLInSeconds) * time.Second
}

func (uc *catalogUsecase) GetLabs(ctx context.Context) ([]responses.Lab, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	var cached []responses.Lab
	hit, err := uc.Cache.GetJSON(ctx, constvars.CacheKeyLabs, &cached)
	if err != nil {
		return nil, err
	}
	if hit {
		uc.Log.Info("catalogUsecase.GetLabs cache hit",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCacheKey, constvars.CacheKeyLabs),
		)
		return cached, nil
	}

	labs, err := uc.LabVendorClient.FindAllLabs(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]responses.Lab, len(labs))
	for i, lab := range labs {
		response[i] = responses.Lab{
			ID:                lab.ID,
			Name:              lab.Name,
			CollectionMethods: lab.CollectionMethods,
		}
	}

	if err := uc.Cache.SetJSON(ctx, constvars.CacheKeyLabs, response, uc.collectionTTL()); err != nil {
		return nil, err
	}
	return response, nil
}

func (uc *catalogUsecase) GetMarkersByLab(ctx context.Context, labID string) ([]responses.Marker, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	cacheKey := constvars.CacheKeyMarkersPrefix + labID

	var cached []responses.Marker
	hit, err := uc.Cache.GetJSON(ctx, cacheKey, &cached)
	if err != nil {
		return nil, err
	}
	if hit {
		uc.Log.Info("catalogUsecase.GetMarkersByLab cache hit",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCacheKey, cacheKey),
		)
		return cached, nil
	}

	markers, err := uc.MarkerVendorClient.FindMarkersByLab(ctx, labID)
	if err != nil {
		return nil, err
	}

	response := make([]responses.Marker, len(markers))
	for i, marker := range markers {
		response[i] = responses.Marker{
			ID:          marker.ID,
			Name:        marker.Name,
			Description: marker.Description,
		}
	}

	if err := uc.Cache.SetJSON(ctx, cacheKey, response, uc.collectionTTL()); err != nil {
		return nil, err
	}
	return response, nil
}

func (uc *catalogUsecase) GetUsers(ctx context.Context) ([]responses.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	var cached []responses.User
	hit, err := uc.Cache.GetJSON(ctx, constvars.CacheKeyUsers, &cached)
	if err != nil {
		return nil, err
	}
	if hit {
		uc.Log.Info("catalogUsecase.GetUsers cache hit",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCacheKey, constvars.CacheKeyUsers),
		)
		return cached, nil
	}

	users, err := uc.UserVendorClient.FindAllUsers(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]responses.User, len(users))
	for i, user := range users {
		response[i] = responses.User{
			UserID:       user.UserID,
			ClientUserID: user.ClientUserID,
		}
	}

	if err := uc.Cache.SetJSON(ctx, constvars.CacheKeyUsers, response, uc.collectionTTL()); err != nil {
		return nil, err
	}
	return response, nil
}
