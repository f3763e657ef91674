package constvars

const (
	LoggingRequestIDKey     = "request_id"
	LoggingEndpointKey      = "endpoint"
	LoggingMethodKey        = "method"
	LoggingRemoteAddrKey    = "remote_addr"
	LoggingUserAgentKey     = "user_agent"
	LoggingQueryKey         = "query"
	LoggingStatusCodeKey    = "status_code"
	LoggingDurationKey      = "duration"
	LoggingSuccessKey       = "success"
	LoggingErrorTypeKey     = "error_type"
	LoggingErrorCodeKey     = "error_code"
	LoggingErrorMessageKey  = "error_message"
	LoggingOperationKey     = "operation"
	LoggingEventKey         = "event"
	LoggingBatteryIDKey     = "battery_id"
	LoggingPatientIDKey     = "patient_id"
	LoggingQuestionnaireKey = "questionnaire_id"
	LoggingSessionDataKey   = "session_data"
)
