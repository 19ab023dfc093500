package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":      "is required",
	"email":         "must be a valid email",
	"min":           "must be at least %s characters long",
	"max":           "maximum at %s characters long",
	"oneof":         "must be one of [%s]",
	"gt":            "must be greater than %s",
	"gte":           "must be greater than or equal to %s",
	"numeric":       "must be a number",
	"password":      "must be at least 8 characters long, contain at least one special character, and one uppercase letter",
	"not_past_date": "must not be a past date",
	"date_yyyymmdd": "must be a date in YYYY-MM-DD format",
	"time_hhmm":     "must be a time in HH:MM format",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gt":    true,
	"gte":   true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientDoctorNotFound                = "doctor not found"
	ErrClientAppointmentNotFound           = "appointment not found"
	ErrClientTransactionNotFound           = "no payment found for this session"
	ErrClientPrescriptionNotFound          = "prescription not found"
	ErrClientPrescriptionAlreadyExists     = "a prescription already exists for this appointment"
	ErrClientAttachmentTooLarge            = "attachment exceeds the maximum allowed size"
	ErrClientPaymentRejected               = "payment failed, please try again"
	ErrClientPaymentStillPending           = "payment is still being processed, please retry in a moment"
	ErrClientPaymentGatewayUnavailable     = "payment provider is not responding, please retry in a moment"
	ErrClientPaymentAmountMismatch         = "payment amount does not match the booking fee"
	ErrClientPaymentEmailMismatch          = "email does not match the booking for this payment session"
	ErrClientInvalidStatusTransition       = "appointment cannot change to the requested status"
	ErrClientAppointmentNotCompleted       = "prescription can only be created for a completed appointment"
	ErrClientBookingLimitReached           = "too many booking attempts, please wait before trying again"
	ErrClientMissingRecipient              = "notification recipient is missing"
)

// Error messages for developers
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevValidationFailed         = "request body validation failed"
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseMultipartForm = "cannot parse multipart form body"
	ErrDevCreateHTTPRequest        = "failed to create HTTP request"
	ErrDevSendHTTPRequest          = "failed to send HTTP request"
	ErrDevServerProcess            = "unexpected server error"
	ErrDevServerDeadlineExceeded   = "server deadline exceeded"
	ErrDevMissingRequestID         = "request ID missing from context"

	// Auth
	ErrDevAuthTokenMissing          = "authorization token missing"
	ErrDevAuthTokenInvalid          = "authorization token invalid"
	ErrDevAuthTokenInvalidOrExpired = "authorization token invalid or expired"
	ErrDevAuthSigningMethod         = "unexpected JWT signing method"
	ErrDevAuthGenerateToken         = "failed to generate JWT token"
	ErrDevAuthInvalidSession        = "session not found or expired"
	ErrDevInvalidCredentials        = "invalid credentials"
	ErrDevFailedToHashPassword      = "failed to hash password"
	ErrDevEmailAlreadyExists        = "email already exists"
	ErrDevUserNotExists             = "user not exists in our system"
	ErrDevRoleNotAllowed            = "user role not allowed for this operation"

	// Mongo DB
	ErrDevDBFailedToFindDocument     = "failed to find document in mongo database"
	ErrDevDBFailedToInsertDocument   = "failed to insert document into mongo database"
	ErrDevDBFailedToUpdateDocument   = "failed to update document in mongo database"
	ErrDevDBFailedToDeleteDocument   = "failed to delete document in mongo database"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents from mongo database"
	ErrDevDBStringNotObjectID        = "given string cannot be converted to mongo ObjectID"
	ErrDevDBDuplicateKey             = "unique index rejected duplicate document"
	ErrDevDBTransactionFailed        = "mongo multi-document transaction failed"

	// Redis
	ErrDevRedisGetNoData      = "no data in redis with key %s"
	ErrDevRedisGetData        = "failed to get data from redis"
	ErrDevRedisSetData        = "failed to set data to redis"
	ErrDevRedisDeleteData     = "failed to delete data from redis"
	ErrDevRedisIncrementValue = "failed to increment value in redis"
	ErrDevRedisUnlock         = "failed to release redis lock"

	// RabbitMQ
	ErrDevRabbitMQPublish = "failed to publish message to queue %s"
	ErrDevRabbitMQConsume = "failed to consume messages from queue %s"

	// SMTP
	ErrDevSMTPSendEmail = "failed to send email via SMTP client hostname %s"

	// Minio
	ErrDevMinioFailedToCreateObject = "failed to create object in bucket %s"
	ErrDevMinioFailedToPresignURL   = "failed to create presigned URL for bucket %s"

	// Booking flow
	ErrDevDoctorNotExists           = "doctor not exists in our system"
	ErrDevAppointmentNotExists      = "appointment not exists in our system"
	ErrDevTransactionNotExists      = "transaction not exists in our system"
	ErrDevPrescriptionNotExists     = "prescription not exists in our system"
	ErrDevPrescriptionAlreadyExists = "appointment already has a prescription"
	ErrDevAttachmentTooLarge        = "uploaded attachment exceeds configured size limit"
	ErrDevGatewayRejectedPayment    = "gateway reported a definitive payment failure"
	ErrDevGatewayStillPending       = "gateway reported the session as not yet settled"
	ErrDevGatewayTimeout            = "gateway status query exceeded its deadline"
	ErrDevGatewayUnavailable        = "gateway returned a non-200 response"
	ErrDevMeetingProviderFailed     = "conferencing provider failed to mint a meeting"
	ErrDevAmountMismatch            = "settled amount differs from booked fee"
	ErrDevEmailMismatch             = "redirect email differs from the booking email"
	ErrDevInvalidStatusTransition   = "appointment status transition is not allowed"
	ErrDevAppointmentNotCompleted   = "appointment has not reached completed status"
	ErrDevNotificationMissingFields = "notification payload is missing required fields"
)
