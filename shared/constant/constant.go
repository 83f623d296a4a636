package constant

import (
	"time"
)

const (
	RequestHeaderContentType = "Content-Type"
	ContentTypeJSON          = "application/json"
)

const (
	DefaultTimezoneHeader = "X-Timezone"
	RequestParamTimezone  = "tz"
)

const (
	TargetCurrent = "current"
	TargetStorage = "storage"
)

const (
	ResponseErrorPrepareShutdown = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy       = "SERVER UNHEALTHY"
	ResponseMessageZonesUpdated  = "Timezones updated successfully"
)

const (
	DateFormat = time.RFC3339
)

const (
	OtelServiceScopeName = "service"

	OtelCurrentAttributeKey = "timezone.current"
	OtelStorageAttributeKey = "timezone.storage"
	OtelTargetAttributeKey  = "timezone.target"
)
