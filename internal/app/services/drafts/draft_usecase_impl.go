package drafts

import (
	"context"
	"fmt"
	"labdash-service/internal/app/config"
	"labdash-service/internal/app/contracts"
	"labdash-service/internal/app/models"
	"labdash-service/internal/pkg/constvars"
	"labdash-service/internal/pkg/dto/requests"
	"labdash-service/internal/pkg/dto/responses"
	"labdash-service/internal/pkg/exceptions"
	"labdash-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

// Mutations hold a short per-draft lock so concurrent events against the same
// draft are applied one at a time, never interleaved.
const draftLockTTL = 5 * time.Second

type draftUsecase struct {
	RedisRepository contracts.RedisRepository
	CatalogUsecase  contracts.CatalogUsecase
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

func NewDraftUsecase(
	redisRepository contracts.RedisRepository,
	catalogUsecase contracts.CatalogUsecase,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.DraftUsecase {
	return &draftUsecase{
		RedisRepository: redisRepository,
		CatalogUsecase:  catalogUsecase,
		InternalConfig:  internalConfig,
		Log:             logger,
	}
}

func (uc *draftUsecase) draftTTL() time.Duration {
	return time.Duration(uc.InternalConfig.Cache.DraftTTLInMinutes) * time.Minute
}

func (uc *draftUsecase) loadDraft(ctx context.Context, draftID string) (*models.Draft, error) {
	return Load(ctx, uc.RedisRepository, draftID)
}

func (uc *draftUsecase) storeDraft(ctx context.Context, draft *models.Draft) error {
	return Store(ctx, uc.RedisRepository, draft, uc.draftTTL())
}

// withDraft runs one transition against a stored draft under its lock and
// persists the result.
func (uc *draftUsecase) withDraft(ctx context.Context, draftID string, apply func(*models.Draft) error) (*models.Draft, error) {
	lockKey := constvars.DraftLockKeyPrefix + draftID
	acquired, err := uc.RedisRepository.TrySetNX(ctx, lockKey, time.Now().UTC(), draftLockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrDraftBusy(fmt.Errorf("draft %s is locked", draftID))
	}
	defer func() {
		_ = uc.RedisRepository.Delete(ctx, lockKey)
	}()

	draft, err := uc.loadDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if err := apply(draft); err != nil {
		return nil, err
	}
	if err := uc.storeDraft(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

func (uc *draftUsecase) OpenDraft(ctx context.Context, request *requests.OpenDraft) (*responses.Draft, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	draft := models.NewDraft(utils.GenerateDraftID(), request.Kind)
	if err := uc.storeDraft(ctx, draft); err != nil {
		return nil, err
	}

	uc.Log.Info("draftUsecase.OpenDraft succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDraftIDKey, draft.ID),
		zap.String("kind", draft.Kind),
	)
	return responses.NewDraftResponse(draft), nil
}

func (uc *draftUsecase) GetDraft(ctx context.Context, draftID string) (*responses.Draft, error) {
	draft, err := uc.loadDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}
	return responses.NewDraftResponse(draft), nil
}

// SelectLab switches the draft's owning lab. Picking a new lab clears the
// downstream method and marker state, then loads that lab's marker checklist;
// a response that arrives for a lab no longer selected is discarded.
func (uc *draftUsecase) SelectLab(ctx context.Context, draftID string, request *requests.SelectLab) (*responses.Draft, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	draft, err := uc.withDraft(ctx, draftID, func(draft *models.Draft) error {
		var supportedMethods []string
		if request.LabID != "" {
			labs, err := uc.CatalogUsecase.GetLabs(ctx)
			if err != nil {
				return err
			}
			found := false
			for _, lab := range labs {
				if lab.ID == request.LabID {
					supportedMethods = lab.CollectionMethods
					found = true
					break
				}
			}
			if !found {
				return exceptions.ErrLabNotFound(fmt.Errorf("lab %s not found", request.LabID))
			}
		}

		needsFetch := draft.SelectLab(request.LabID, supportedMethods)
		if !needsFetch {
			return nil
		}

		markers, err := uc.CatalogUsecase.GetMarkersByLab(ctx, request.LabID)
		if err != nil {
			return err
		}
		options := make([]models.MarkerOption, len(markers))
		for i, marker := range markers {
			options[i] = models.MarkerOption{
				ID:          marker.ID,
				Name:        marker.Name,
				Description: marker.Description,
			}
		}
		draft.ApplyMarkerList(request.LabID, options)
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.Log.Info("draftUsecase.SelectLab succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDraftIDKey, draftID),
		zap.String(constvars.LoggingLabIDKey, request.LabID),
	)
	return responses.NewDraftResponse(draft), nil
}

func (uc *draftUsecase) SelectMethod(ctx context.Context, draftID string, request *requests.SelectMethod) (*responses.Draft, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	draft, err := uc.withDraft(ctx, draftID, func(draft *models.Draft) error {
		if !draft.SelectMethod(request.Method) {
			return exceptions.ErrMethodNotSupported(fmt.Errorf("method %s not offered by lab %s", request.Method, draft.LabID))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return responses.NewDraftResponse(draft), nil
}

func (uc *draftUsecase) ToggleMarker(ctx context.Context, draftID, markerID string) (*responses.Draft, error) {
	draft, err := uc.withDraft(ctx, draftID, func(draft *models.Draft) error {
		if !draft.ToggleMarker(markerID) {
			return exceptions.ErrMarkerUnavailable(fmt.Errorf("marker %s is not selectable on draft %s", markerID, draftID))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return responses.NewDraftResponse(draft), nil
}

func (uc *draftUsecase) SetDetails(ctx context.Context, draftID string, request *requests.DraftDetails) (*responses.Draft, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	draft, err := uc.withDraft(ctx, draftID, func(draft *models.Draft) error {
		draft.SetDetails(request.Name, request.Description, request.Payor)
		if request.TemplateID != "" {
			draft.SetTemplateSelection(request.TemplateID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return responses.NewDraftResponse(draft), nil
}

func (uc *draftUsecase) SetPatient(ctx context.Context, draftID string, request *requests.DraftPatient) (*responses.Draft, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	draft, err := uc.withDraft(ctx, draftID, func(draft *models.Draft) error {
		draft.SetPatient(request.UserID, models.PatientDetails{
			FirstName:   request.Details.FirstName,
			LastName:    request.Details.LastName,
			DateOfBirth: request.Details.DateOfBirth,
			Gender:      request.Details.Gender,
			PhoneNumber: request.Details.PhoneNumber,
			Email:       request.Details.Email,
			StreetLine:  request.Details.StreetLine,
			City:        request.Details.City,
			State:       request.Details.State,
			Zip:         request.Details.Zip,
			Country:     request.Details.Country,
		}, request.HIPAAAuthorized)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return responses.NewDraftResponse(draft), nil
}

func (uc *draftUsecase) DiscardDraft(ctx context.Context, draftID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if _, err := uc.loadDraft(ctx, draftID); err != nil {
		return err
	}
	if err := Discard(ctx, uc.RedisRepository, draftID); err != nil {
		return err
	}

	uc.Log.Info("draftUsecase.DiscardDraft succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDraftIDKey, draftID),
	)
	return nil
}
