package constvars

type contextKey string

const (
	CONTEXT_REQUEST_ID_KEY           contextKey = "requestID"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY contextKey = "isClientRequestID"
)

// Vendor API resource paths, relative to the configured base URL.
const (
	VendorResourceLabs      = "/labs/"
	VendorResourceMarkers   = "/markers/"
	VendorResourceTemplates = "/tests/"
	VendorResourceUsers     = "/users/"
	VendorResourceOrders    = "/orders/"
)

const (
	ResourceLab      = "Lab"
	ResourceMarker   = "Marker"
	ResourceTemplate = "Template"
	ResourceOrder    = "Order"
	ResourceUser     = "User"
	ResourceReport   = "Report"
	ResourceDraft    = "Draft"
)

// Redis key prefixes. Collection caches are invalidated by key, never patched.
const (
	CacheKeyLabs          = "cache:labs"
	CacheKeyTemplates     = "cache:templates"
	CacheKeyOrders        = "cache:orders"
	CacheKeyUsers         = "cache:users"
	CacheKeyMarkersPrefix = "cache:markers:lab:"

	DraftKeyPrefix      = "draft:"
	DraftLockKeyPrefix  = "draft:lock:"
	CancellingKeyPrefix = "order:cancelling:"
)

const (
	DraftKindTemplate = "template"
	DraftKindOrder    = "order"
)

const (
	OrderStatusCompleted = "completed"
	OrderStatusPending   = "pending"
	OrderStatusCancelled = "cancelled"
)

const (
	OrderEventCreated          = "order.created"
	OrderEventCancelled        = "order.cancelled"
	OrderEventReportDownloaded = "report.downloaded"
)

const (
	URLParamDraftID    = "draftID"
	URLParamLabID      = "labID"
	URLParamMarkerID   = "markerID"
	URLParamTemplateID = "templateID"
	URLParamOrderID    = "orderID"
)

const ReportFileNameFormat = "lab-results-%s.pdf"
