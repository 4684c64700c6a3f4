package contracts

import (
	"context"
	"labdash-service/internal/pkg/dto/responses"
)

type TemplateUsecase interface {
	GetTemplates(ctx context.Context) ([]responses.Template, error)
	GetTemplateMarkers(ctx context.Context, templateID string) ([]responses.Marker, error)
	CreateTemplate(ctx context.Context, draftID string) (*responses.Template, error)
	UpdateTemplate(ctx context.Context, templateID, draftID string) (*responses.Template, error)
	// HydrateDraft opens a fresh edit draft seeded from a persisted template.
	HydrateDraft(ctx context.Context, templateID string) (*responses.Draft, error)
}
