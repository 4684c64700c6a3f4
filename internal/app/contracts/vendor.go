package contracts

import (
	"context"
	"io"
	"labdash-service/internal/pkg/vendordto"
)

type LabVendorClient interface {
	FindAllLabs(ctx context.Context) ([]vendordto.Lab, error)
}

type MarkerVendorClient interface {
	FindMarkersByLab(ctx context.Context, labID string) ([]vendordto.Marker, error)
}

type TemplateVendorClient interface {
	FindAllTemplates(ctx context.Context) ([]vendordto.Template, error)
	FindMarkersByTemplate(ctx context.Context, templateID string) ([]vendordto.Marker, error)
	CreateTemplate(ctx context.Context, payload *vendordto.TemplatePayload) (*vendordto.Template, error)
	UpdateTemplate(ctx context.Context, templateID string, payload *vendordto.TemplatePayload) (*vendordto.Template, error)
}

type OrderVendorClient interface {
	FindAllOrders(ctx context.Context) ([]vendordto.Order, error)
	CreateOrder(ctx context.Context, payload *vendordto.OrderPayload) (*vendordto.Order, error)
	CancelOrder(ctx context.Context, orderID string) error
	// FetchResultsPDF streams the generated report. The caller owns the
	// returned reader and must close it.
	FetchResultsPDF(ctx context.Context, orderID string) (io.ReadCloser, int64, error)
}

type UserVendorClient interface {
	FindAllUsers(ctx context.Context) ([]vendordto.User, error)
}
