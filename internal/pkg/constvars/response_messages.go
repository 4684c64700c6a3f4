package constvars

const (
	ResponseUnknown = "unknown"

	GetLabsSuccessMessage         = "Successfully retrieved labs"
	GetMarkersSuccessMessage      = "Successfully retrieved biomarkers"
	GetUsersSuccessMessage        = "Successfully retrieved users"
	GetTemplatesSuccessMessage    = "Successfully retrieved test templates"
	CreateTemplateSuccessMessage  = "Successfully created test template"
	UpdateTemplateSuccessMessage  = "Successfully updated test template"
	HydrateTemplateSuccessMessage = "Successfully prepared template for editing"
	GetOrdersSuccessMessage       = "Successfully retrieved orders"
	CreateOrderSuccessMessage     = "Successfully placed order"
	CancelOrderSuccessMessage     = "Cancellation requested"
	FetchReportSuccessMessage     = "Successfully retrieved results report"
	OpenDraftSuccessMessage       = "Draft opened"
	GetDraftSuccessMessage        = "Successfully retrieved draft"
	UpdateDraftSuccessMessage     = "Draft updated"
	DiscardDraftSuccessMessage    = "Draft discarded"
)
