package requests

// Template create/update and order placement submit a finished draft.
type SubmitDraft struct {
	DraftID string `json:"draft_id" validate:"required"`
}
