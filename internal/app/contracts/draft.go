package contracts

import (
	"context"
	"labdash-service/internal/pkg/dto/requests"
	"labdash-service/internal/pkg/dto/responses"
)

// DraftUsecase drives the selection state machine behind the dialogs. Every
// mutation loads the draft, applies one transition and stores the result, so
// each user event is processed fully before the next one.
type DraftUsecase interface {
	OpenDraft(ctx context.Context, request *requests.OpenDraft) (*responses.Draft, error)
	GetDraft(ctx context.Context, draftID string) (*responses.Draft, error)
	SelectLab(ctx context.Context, draftID string, request *requests.SelectLab) (*responses.Draft, error)
	SelectMethod(ctx context.Context, draftID string, request *requests.SelectMethod) (*responses.Draft, error)
	ToggleMarker(ctx context.Context, draftID, markerID string) (*responses.Draft, error)
	SetDetails(ctx context.Context, draftID string, request *requests.DraftDetails) (*responses.Draft, error)
	SetPatient(ctx context.Context, draftID string, request *requests.DraftPatient) (*responses.Draft, error)
	DiscardDraft(ctx context.Context, draftID string) error
}
