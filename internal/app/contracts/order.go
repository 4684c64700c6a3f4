package contracts

import (
	"context"
	"labdash-service/internal/pkg/dto/responses"
)

type OrderUsecase interface {
	GetOrders(ctx context.Context) ([]responses.Order, error)
	SubmitOrder(ctx context.Context, draftID string) (*responses.Order, error)
	CancelOrder(ctx context.Context, orderID string) error
	FetchReport(ctx context.Context, orderID string) (*responses.Report, error)
}
