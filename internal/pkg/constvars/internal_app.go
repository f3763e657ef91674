package constvars

type contextKey string

const (
	CONTEXT_REQUEST_ID_KEY           contextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY contextKey = "is_client_request_id"
	CONTEXT_SESSION_DATA_KEY         contextKey = "session_data"
	CONTEXT_SESSION_ID_KEY           contextKey = "session_id"
)

const (
	HeaderXRequestID = "X-Request-ID"
	HeaderContentType = "Content-Type"
	HeaderAuthorization = "Authorization"
)

const (
	MongoCollectionUsers          = "users"
	MongoCollectionPatients       = "patients"
	MongoCollectionPractitioners  = "practitioners"
	MongoCollectionQuestionnaires = "questionnaires"
	MongoCollectionBatteries      = "batteries"
)

const (
	RedisKeyPrefixSession = "session:"
	RedisKeyPrefixBattery = "battery:"
)

const (
	RabbitMQBatteryCompletedQueue = "battery.completed"
)

const (
	MinioReportObjectPrefix = "reports/"
	MinioReportContentType  = "application/json"
)

const (
	URLParamBatteryID       = "batteryID"
	URLParamQuestionnaireID = "questionnaireID"
	URLParamPatientID       = "patientID"
	URLParamPractitionerID  = "practitionerID"
)

const (
	RateLimiterGroupReports       = "report-generation"
	RateLimiterReportWindowInSecs = 60
)
