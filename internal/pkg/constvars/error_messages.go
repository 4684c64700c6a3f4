package constvars

// Client-facing messages. These are the only strings that leave the service.
const (
	ErrClientCannotProcessRequest          = "We cannot process your request, please check your input"
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientServerLongRespond             = "Server takes too long to respond, please try again"
	ErrClientVendorRejectedRequest         = "The lab service rejected this request"
	ErrClientVendorUnavailable             = "The lab service is unavailable, please try again"
	ErrClientDraftNotFound                 = "This form session has expired, please reopen the dialog"
	ErrClientDraftIncomplete               = "Please complete all required fields before submitting"
	ErrClientDraftBusy                     = "Another change to this form is still being processed"
	ErrClientMethodNotSupported            = "The selected lab does not support this collection method"
	ErrClientMarkerUnavailable             = "This biomarker is not available for the selected lab"
	ErrClientLabNotFound                   = "The selected lab is not available"
	ErrClientTemplateNotFound              = "The selected test template no longer exists"
	ErrClientReportNotReady                = "Results are only available for completed orders"
	ErrClientReportInProgress              = "This report is already being downloaded"
	ErrClientCancelInProgress              = "This order is already being cancelled"
)

// Developer messages, logged but never returned outside non-production.
const (
	ErrDevValidationFailed        = "Request validation failed"
	ErrDevCannotParseJSON         = "Failed to parse JSON request body"
	ErrDevCannotMarshalJSON       = "Failed to marshal value to JSON"
	ErrDevCreateHTTPRequest       = "Failed to create HTTP request"
	ErrDevSendHTTPRequest         = "Failed to send HTTP request"
	ErrDevServerProcess           = "Failed to process the request"
	ErrDevServerDeadlineExceeded  = "Request deadline exceeded"
	ErrDevDraftNotFound           = "Draft not found in store"
	ErrDevDraftIncomplete         = "Draft does not satisfy the validity predicate"
	ErrDevDraftLockNotAcquired    = "Draft mutation lock not acquired"
	ErrDevMethodNotSupported      = "Collection method not in the lab's supported set"
	ErrDevMarkerNotLoaded         = "Marker not present in the loaded option list"
	ErrDevLabNotFound             = "Lab id does not resolve"
	ErrDevTemplateNotFound        = "Template id does not resolve"
	ErrDevReportNotReady          = "Order status does not allow report retrieval"
	ErrDevReportSlotBusy          = "Report download already in flight for this order"
	ErrDevCancelAlreadyInFlight   = "Cancel request already in flight for this order"
	ErrDevRedisGetNoData          = "Failed to get data from redis with key: %s"
	ErrDevRedisGetData            = "Failed to get data from redis"
	ErrDevRedisSetData            = "Failed to set data to redis"
	ErrDevRedisDeleteData         = "Failed to delete data from redis"
	ErrDevMinioFailedPutObject    = "Failed to put object to bucket: %s"
	ErrDevMinioFailedPresign      = "Failed to presign object in bucket: %s"
	ErrDevMinioFailedRemoveObject = "Failed to remove object from bucket: %s"
	ErrDevRabbitMQPublish         = "Failed to publish message to queue: %s"

	ErrDevVendorCreateResource   = "Vendor API failed to create resource: %s"
	ErrDevVendorGetResource      = "Vendor API failed to get resource: %s"
	ErrDevVendorUpdateResource   = "Vendor API failed to update resource: %s"
	ErrDevVendorDecodeResponse   = "Failed to decode vendor API response for resource: %s"
	ErrDevVendorRejected         = "Vendor API rejected the request for resource: %s"
	ErrDevVendorServerFailure    = "Vendor API server failure for resource: %s"
	ErrDevVendorFetchReport      = "Vendor API failed to return the report document"
	ErrDevVendorUnexpectedStatus = "Vendor API returned unexpected status %d for resource: %s"
)

const ErrDevInvalidInput = "Invalid input"

var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email address",
	"e164":     "must be a valid phone number",
	"oneof":    "must be one of: %s",
	"min":      "must be at least %s",
	"max":      "must be at most %s",
	"datetime": "must match the format %s",

	"phone_number": "must be a valid phone number",
	"birth_date":   "must be a date in YYYY-MM-DD format",
}

var TagsWithParams = map[string]bool{
	"oneof":    true,
	"min":      true,
	"max":      true,
	"datetime": true,
}
