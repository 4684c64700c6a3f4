package contracts

import (
	"context"
	"labdash-service/internal/pkg/dto/responses"
)

type CatalogUsecase interface {
	GetLabs(ctx context.Context) ([]responses.Lab, error)
	GetMarkersByLab(ctx context.Context, labID string) ([]responses.Marker, error)
	GetUsers(ctx context.Context) ([]responses.User, error)
}
