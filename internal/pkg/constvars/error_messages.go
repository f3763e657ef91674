package constvars

// Client-facing messages. Keep them generic, details stay in the dev message.
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process the request, please check your input"
	ErrClientServerLongRespond             = "Server takes too long to respond, please try again later"
	ErrClientNotAuthorized                 = "You are not authorized to perform this action"
	ErrClientNotLoggedIn                   = "You are not logged in, please log in first"
	ErrClientInvalidUsernameOrPassword     = "Invalid username or password"
	ErrClientEmailAlreadyExists            = "Email is already registered"
	ErrClientUsernameAlreadyExists         = "Username is already taken"
	ErrClientQuestionnaireNotFound         = "Questionnaire not found"
	ErrClientPatientNotFound               = "Patient not found"
	ErrClientPractitionerNotFound          = "Practitioner not found"
	ErrClientBatteryNotFound               = "Test battery not found"
	ErrClientBatteryAlreadyCompleted       = "This test battery has already been completed"
	ErrClientBatteryNotComplete            = "There are still unanswered questions in visible sessions"
	ErrClientReportNotReady                = "The report for this battery is not available yet"
	ErrClientTooManyReportRequests         = "Too many report requests, please try again later"
)

// Dev messages, logged but never returned to clients.
const (
	ErrDevValidationFailed           = "Request validation failed"
	ErrDevURLParamIDValidationFailed = "URL param %s validation failed"
	ErrDevCannotParseJSON            = "Failed to parse JSON body"
	ErrDevCannotMarshalJSON          = "Failed to marshal value to JSON"
	ErrDevServerDeadlineExceeded     = "Server deadline exceeded"
	ErrDevServerProcess              = "Server failed to process the request"
	ErrDevMissingRequestID           = "Request ID missing from request context"
	ErrDevMissingSessionData         = "Session data missing from request context"

	ErrDevAuthTokenMissing          = "Authorization token is missing"
	ErrDevAuthTokenInvalid          = "Authorization token is invalid"
	ErrDevAuthTokenInvalidOrExpired = "Authorization token is invalid or expired"
	ErrDevAuthSigningMethod         = "Unexpected JWT signing method"
	ErrDevAuthGenerateToken         = "Failed to generate JWT"
	ErrDevAuthInvalidSession        = "Session not found or expired in Redis"
	ErrDevInvalidCredentials        = "Credentials do not match any user"
	ErrDevFailedToHashPassword      = "Failed to hash password"
	ErrDevEmailAlreadyExists        = "Email already exists in users collection"
	ErrDevUsernameAlreadyExists     = "Username already exists in users collection"
	ErrDevRoleNotAllowed            = "User role is not allowed for this endpoint"

	ErrDevDBFailedToFindDocument    = "MongoDB failed to find document"
	ErrDevDBFailedToInsertDocument  = "MongoDB failed to insert document"
	ErrDevDBFailedToUpdateDocument  = "MongoDB failed to update document"
	ErrDevDBFailedToDeleteDocument  = "MongoDB failed to delete document"
	ErrDevDBFailedToIterateDocument = "MongoDB failed to iterate documents"

	ErrDevRedisSetData       = "Redis failed to set data"
	ErrDevRedisGetData       = "Redis failed to get data"
	ErrDevRedisGetNoData     = "Redis has no data for key: %s"
	ErrDevRedisDeleteData    = "Redis failed to delete data"
	ErrDevRedisIncrement     = "Redis failed to increment value"
	ErrDevRabbitMQPublish    = "RabbitMQ failed to publish message to queue: %s"
	ErrDevMinioCreateObject  = "Minio failed to create object in bucket: %s"
	ErrDevMinioPresignedURL  = "Minio failed to build presigned URL for bucket: %s"

	ErrDevQuestionnaireNotFound   = "Questionnaire document does not exist"
	ErrDevPatientNotFound         = "Patient document does not exist"
	ErrDevPractitionerNotFound    = "Practitioner document does not exist"
	ErrDevBatteryNotFound         = "Battery document does not exist"
	ErrDevBatteryAlreadyCompleted = "Battery status is already completed"
	ErrDevBatteryNotComplete      = "Completion condition not satisfied for visible sessions"
	ErrDevReportNotReady          = "Report object has not been generated for the battery"
	ErrDevReportRateLimited       = "Report generation quota exceeded for the current window"
)
