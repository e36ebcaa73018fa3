package constvars

// Error messages for developers
const (
	ErrDevValidationFailed           = "request validation failed"
	ErrDevInvalidInput               = "invalid input"
	ErrDevCannotParseJSON            = "cannot parse request body as JSON"
	ErrDevCannotMarshalJSON          = "cannot marshal value as JSON"
	ErrDevCannotParseMultipartForm   = "cannot parse multipart form"
	ErrDevURLParamIDValidationFailed = "url param %s is not a valid object id"
	ErrDevServerDeadlineExceeded     = "server deadline exceeded while processing request"
	ErrDevImageValidationFailed      = "image validation failed"

	ErrDevEmailAlreadyExists    = "email already exists"
	ErrDevInvalidCredentials    = "email and password combination do not match"
	ErrDevFailedToHashPassword  = "failed to hash password"
	ErrDevAuthTokenMissing      = "authorization token is missing"
	ErrDevAuthTokenInvalid      = "authorization token is invalid or expired"
	ErrDevAuthGenerateToken     = "failed to generate session token"
	ErrDevAdminTokenMissing     = "admin token header is missing"
	ErrDevAdminTokenMismatch    = "admin token header does not match the configured token"
	ErrDevUserNotExists         = "user does not exist"
	ErrDevDoctorNotExists       = "doctor does not exist"
	ErrDevAppointmentNotExists  = "appointment does not exist"
	ErrDevMedicineNotExists     = "medicine does not exist"
	ErrDevInsufficientStock     = "stock is lower than the requested quantity"
	ErrDevSessionDataMalformed  = "session data cannot be parsed"
	ErrDevSessionNotFound       = "session not found in store"

	ErrDevDBFailedToFindDocument     = "database failed to find document"
	ErrDevDBFailedToInsertDocument   = "database failed to insert document"
	ErrDevDBFailedToUpdateDocument   = "database failed to update document"
	ErrDevDBFailedToDeleteDocument   = "database failed to delete document"
	ErrDevDBFailedToIterateDocuments = "database failed to iterate documents"
	ErrDevDBStringNotObjectID        = "given string cannot be converted to object id"

	ErrDevRedisGetData       = "redis failed to get data"
	ErrDevRedisSetData       = "redis failed to set data"
	ErrDevRedisDeleteData    = "redis failed to delete data"
	ErrDevRedisGetNoData     = "redis has no data for key %s"

	ErrDevMinioFailedToCreateObject  = "minio failed to create object on bucket %s"
	ErrDevMinioFailedToPresignObject = "minio failed to presign object on bucket %s"

	ErrDevQueueFailedToPublish = "queue failed to publish message"
	ErrDevQueueFailedToConsume = "queue failed to consume message"

	ErrDevSMTPFailedToSendEmail = "smtp host %s failed to send email"
)
