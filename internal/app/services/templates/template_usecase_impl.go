package templates

import (
	"context"
	"fmt"
	"labdash-service/internal/app/config"
	"labdash-service/internal/app/contracts"
	"labdash-service/internal/app/models"
	"labdash-service/internal/app/services/drafts"
	"labdash-service/internal/pkg/constvars"
	"labdash-service/internal/pkg/dto/responses"
	"labdash-service/internal/pkg/exceptions"
	"labdash-service/internal/pkg/utils"
	"labdash-service/internal/pkg/vendordto"
	"time"

	"go.uber.org/zap"
)

type templateUsecase struct {
	TemplateVendorClient contracts.TemplateVendorClient
	CatalogUsecase       contracts.CatalogUsecase
	RedisRepository      contracts.RedisRepository
	Cache                contracts.CollectionCache
	InternalConfig       *config.InternalConfig
	Log                  *zap.Logger
}

func NewTemplateUsecase(
	templateVendorClient contracts.TemplateVendorClient,
	catalogUsecase contracts.CatalogUsecase,
	redisRepository contracts.RedisRepository,
	cache contracts.CollectionCache,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.TemplateUsecase {
	return &templateUsecase{
		TemplateVendorClient: templateVendorClient,
		CatalogUsecase:       catalogUsecase,
		RedisRepository:      redisRepository,
		Cache:                cache,
		InternalConfig:       internalConfig,
		Log:                  logger,
	}
}

func (uc *templateUsecase) GetTemplates(ctx context.Context) ([]responses.Template, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	var cached []responses.Template
	hit, err := uc.Cache.GetJSON(ctx, constvars.CacheKeyTemplates, &cached)
	if err != nil {
		return nil, err
	}
	if hit {
		uc.Log.Info("templateUsecase.GetTemplates cache hit",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCacheKey, constvars.CacheKeyTemplates),
		)
		return cached, nil
	}

	templates, err := uc.TemplateVendorClient.FindAllTemplates(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]responses.Template, len(templates))
	for i, template := range templates {
		response[i] = toTemplateResponse(&template)
	}

	ttl := time.Duration(uc.InternalConfig.Cache.CollectionTTLInSeconds) * time.Second
	if err := uc.Cache.SetJSON(ctx, constvars.CacheKeyTemplates, response, ttl); err != nil {
		return nil, err
	}
	return response, nil
}

func (uc *templateUsecase) GetTemplateMarkers(ctx context.Context, templateID string) ([]responses.Marker, error) {
	markers, err := uc.TemplateVendorClient.FindMarkersByTemplate(ctx, templateID)
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
	return response, nil
}

func (uc *templateUsecase) CreateTemplate(ctx context.Context, draftID string) (*responses.Template, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	draft, err := drafts.Load(ctx, uc.RedisRepository, draftID)
	if err != nil {
		return nil, err
	}
	payload, err := BuildCreatePayload(draft)
	if err != nil {
		return nil, err
	}

	created, err := uc.TemplateVendorClient.CreateTemplate(ctx, payload)
	if err != nil {
		return nil, err
	}

	if err := uc.Cache.Invalidate(ctx, constvars.CacheKeyTemplates); err != nil {
		return nil, err
	}
	// The dialog closes on success; its draft is finished with.
	if err := drafts.Discard(ctx, uc.RedisRepository, draftID); err != nil {
		return nil, err
	}

	uc.Log.Info("templateUsecase.CreateTemplate succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDraftIDKey, draftID),
		zap.String(constvars.LoggingTemplateIDKey, created.ID),
	)
	response := toTemplateResponse(created)
	return &response, nil
}

func (uc *templateUsecase) UpdateTemplate(ctx context.Context, templateID, draftID string) (*responses.Template, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	draft, err := drafts.Load(ctx, uc.RedisRepository, draftID)
	if err != nil {
		return nil, err
	}
	payload, err := BuildUpdatePayload(templateID, draft)
	if err != nil {
		return nil, err
	}

	updated, err := uc.TemplateVendorClient.UpdateTemplate(ctx, templateID, payload)
	if err != nil {
		return nil, err
	}

	if err := uc.Cache.Invalidate(ctx, constvars.CacheKeyTemplates); err != nil {
		return nil, err
	}
	if err := drafts.Discard(ctx, uc.RedisRepository, draftID); err != nil {
		return nil, err
	}

	uc.Log.Info("templateUsecase.UpdateTemplate succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDraftIDKey, draftID),
		zap.String(constvars.LoggingTemplateIDKey, updated.ID),
	)
	response := toTemplateResponse(updated)
	return &response, nil
}

// HydrateDraft opens an edit draft pre-filled from a persisted template. The
// stored selection is replayed against the lab's current catalog, so retired
// markers drop out and an unsupported method is repaired to the lab's first
// one.
func (uc *templateUsecase) HydrateDraft(ctx context.Context, templateID string) (*responses.Draft, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	templates, err := uc.TemplateVendorClient.FindAllTemplates(ctx)
	if err != nil {
		return nil, err
	}
	var template *vendordto.Template
	for i := range templates {
		if templates[i].ID == templateID {
			template = &templates[i]
			break
		}
	}
	if template == nil {
		return nil, exceptions.ErrTemplateNotFound(fmt.Errorf("template %s not found", templateID))
	}

	labs, err := uc.CatalogUsecase.GetLabs(ctx)
	if err != nil {
		return nil, err
	}
	var lab *responses.Lab
	for i := range labs {
		if labs[i].ID == template.LabID {
			lab = &labs[i]
			break
		}
	}
	if lab == nil {
		return nil, exceptions.ErrLabNotFound(fmt.Errorf("lab %s for template %s not found", template.LabID, templateID))
	}

	markers, err := uc.CatalogUsecase.GetMarkersByLab(ctx, lab.ID)
	if err != nil {
		return nil, err
	}
	options := make([]models.MarkerOption, len(markers))
	for i, marker := range markers {
		options[i] = models.MarkerOption{
			ID:          marker.ID,
			Name:        marker.Name,
			Description: marker.Description,
		}
	}

	draft := HydrateDraftFromTemplate(utils.GenerateDraftID(), template, lab, options)
	draft.SetTemplateSelection(template.ID)

	ttl := time.Duration(uc.InternalConfig.Cache.DraftTTLInMinutes) * time.Minute
	if err := drafts.Store(ctx, uc.RedisRepository, draft, ttl); err != nil {
		return nil, err
	}

	uc.Log.Info("templateUsecase.HydrateDraft succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTemplateIDKey, templateID),
		zap.String(constvars.LoggingDraftIDKey, draft.ID),
	)
	return responses.NewDraftResponse(draft), nil
}

func toTemplateResponse(template *vendordto.Template) responses.Template {
	markers := make([]responses.Marker, len(template.Markers))
	for i, marker := range template.Markers {
		markers[i] = responses.Marker{
			ID:          marker.ID,
			Name:        marker.Name,
			Description: marker.Description,
		}
	}
	return responses.Template{
		ID:          template.ID,
		Name:        template.Name,
		Description: template.Description,
		Method:      template.Method,
		LabID:       template.LabID,
		Markers:     markers,
	}
}
