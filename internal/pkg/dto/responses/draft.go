package responses

import "labdash-service/internal/app/models"

// Draft is the rendered snapshot of a dialog draft. SubmitEnabled mirrors the
// validity predicate so the UI can gate its submit button without re-deriving
// the rules.
type Draft struct {
	ID                 string                `json:"id"`
	Kind               string                `json:"kind"`
	State              string                `json:"state"`
	Name               string                `json:"name"`
	Description        string                `json:"description"`
	LabID              string                `json:"lab_id"`
	LabMethods         []string              `json:"lab_methods"`
	Method             string                `json:"method"`
	MarkerOptions      []models.MarkerOption `json:"marker_options"`
	SelectedMarkerIDs  []string              `json:"selected_marker_ids"`
	SelectedTemplateID string                `json:"selected_template_id,omitempty"`
	PatientUserID      string                `json:"patient_user_id,omitempty"`
	Payor              string                `json:"payor,omitempty"`
	HIPAAAuthorized    bool                  `json:"hipaa_authorized"`
	SubmitEnabled      bool                  `json:"submit_enabled"`
}

func NewDraftResponse(draft *models.Draft) *Draft {
	return &Draft{
		ID:                 draft.ID,
		Kind:               draft.Kind,
		State:              string(draft.State()),
		Name:               draft.Name,
		Description:        draft.Description,
		LabID:              draft.LabID,
		LabMethods:         draft.LabMethods,
		Method:             draft.Method,
		MarkerOptions:      draft.MarkerOptions,
		SelectedMarkerIDs:  draft.SelectedMarkerIDs,
		SelectedTemplateID: draft.SelectedTemplateID,
		PatientUserID:      draft.PatientUserID,
		Payor:              draft.Payor,
		HIPAAAuthorized:    draft.HIPAAAuthorized,
		SubmitEnabled:      draft.Valid(),
	}
}
