package constvars

const (
	LoggingRequestIDKey  = "request_id"
	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"

	LoggingDraftIDKey     = "draft_id"
	LoggingLabIDKey       = "lab_id"
	LoggingMarkerIDKey    = "marker_id"
	LoggingTemplateIDKey  = "template_id"
	LoggingOrderIDKey     = "order_id"
	LoggingUserIDKey      = "user_id"
	LoggingMarkerCountKey = "marker_count"
	LoggingCacheKey       = "cache_key"
	LoggingRedisKey       = "redis_key"
	LoggingBucketKey      = "bucket"
	LoggingObjectKey      = "object_name"
	LoggingQueueKey       = "queue"
	LoggingEventKey       = "event"
)
