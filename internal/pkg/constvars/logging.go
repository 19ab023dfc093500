package constvars

const (
	LoggingRequestIDKey          = "request_id"
	LoggingRequestKey            = "request"
	LoggingResponseKey           = "response"
	LoggingDataKey               = "data"
	LoggingSessionDataKey        = "session_data"
	LoggingQueryParamsKey        = "query_params"
	LoggingEndpointKey           = "endpoint"
	LoggingMethodKey             = "method"
	LoggingRemoteAddrKey         = "remote_addr"
	LoggingUserAgentKey          = "user_agent"
	LoggingQueryKey              = "query"
	LoggingStatusCodeKey         = "status_code"
	LoggingDurationKey           = "duration"
	LoggingSuccessKey            = "success"
	LoggingOperationKey          = "operation"
	LoggingErrorTypeKey          = "error_type"
	LoggingAppointmentIDKey      = "appointment_id"
	LoggingTransactionIDKey      = "transaction_id"
	LoggingGatewaySessionKey     = "gateway_session_id"
	LoggingPaymentStatusKey      = "payment_status"
	LoggingDoctorIDKey           = "doctor_id"
	LoggingPatientIDKey          = "patient_id"
	LoggingPrescriptionIDKey     = "prescription_id"
	LoggingEmailKey              = "email"
	LoggingQueueKey              = "queue"
	LoggingRedisKey              = "redis_key"
	LoggingLockValueKey          = "lock_value"
	LoggingLockExpirationTimeKey = "lock_expiration_time"
	LoggingLockStoredValueKey    = "lock_stored_value"
	LoggingLockExpectedValueKey  = "lock_expected_value"
	LoggingObjectNameKey         = "object_name"
)
