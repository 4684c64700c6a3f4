package templates

import (
	"fmt"
	"labdash-service/internal/app/models"
	"labdash-service/internal/pkg/constvars"
	"labdash-service/internal/pkg/dto/responses"
	"labdash-service/internal/pkg/exceptions"
	"labdash-service/internal/pkg/vendordto"
)

// BuildCreatePayload turns a finished template draft into the vendor create
// payload. It never mutates the draft and fails on anything short of a valid
// template draft, so a payload can only ever be built from a submittable
// state.
func BuildCreatePayload(draft *models.Draft) (*vendordto.TemplatePayload, error) {
	if draft == nil || draft.Kind != constvars.DraftKindTemplate || !draft.Valid() {
		return nil, exceptions.ErrDraftIncomplete(fmt.Errorf("template draft is not submittable"))
	}
	markerIDs := make([]string, len(draft.SelectedMarkerIDs))
	copy(markerIDs, draft.SelectedMarkerIDs)
	return &vendordto.TemplatePayload{
		Name:        draft.Name,
		Description: draft.Description,
		Method:      draft.Method,
		MarkerIDs:   markerIDs,
		LabID:       draft.LabID,
	}, nil
}

// BuildUpdatePayload is the create construction keyed by an existing template
// id.
func BuildUpdatePayload(templateID string, draft *models.Draft) (*vendordto.TemplatePayload, error) {
	if templateID == "" {
		return nil, exceptions.ErrTemplateNotFound(fmt.Errorf("update requires a template id"))
	}
	return BuildCreatePayload(draft)
}

// HydrateDraftFromTemplate seeds a fresh edit draft from a persisted template
// and its owning lab. Markers the lab no longer offers are dropped, and a
// stored method the lab no longer supports falls back to the lab's first
// listed method.
func HydrateDraftFromTemplate(draftID string, template *vendordto.Template, lab *responses.Lab, options []models.MarkerOption) *models.Draft {
	draft := models.NewDraft(draftID, constvars.DraftKindTemplate)
	draft.SelectLab(lab.ID, lab.CollectionMethods)
	draft.ApplyMarkerList(lab.ID, options)
	draft.SetDetails(template.Name, template.Description, "")

	method := template.Method
	if !models.MethodSupported(lab.CollectionMethods, method) && len(lab.CollectionMethods) > 0 {
		method = lab.CollectionMethods[0]
	}
	draft.SelectMethod(method)

	for _, markerID := range templateMarkerIDs(template) {
		draft.ToggleMarker(markerID)
	}
	return draft
}

func templateMarkerIDs(template *vendordto.Template) []string {
	if len(template.MarkerIDs) > 0 {
		return template.MarkerIDs
	}
	ids := make([]string, len(template.Markers))
	for i, marker := range template.Markers {
		ids[i] = marker.ID
	}
	return ids
}
