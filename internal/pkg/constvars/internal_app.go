package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "MDBK_SVC_"
)

const (
	URLParamDoctorID       = "doctor_id"
	URLParamAppointmentID  = "appointment_id"
	URLParamPrescriptionID = "prescription_id"
)

const (
	URLQueryParamSessionID = "session_id"
	URLQueryParamEmail     = "email"
	URLQueryParamPage      = "page"
	URLQueryParamPageSize  = "page_size"
	URLQueryParamStatus    = "status"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
	AppCurrencyDefault     = "USD"
)

const (
	FormFieldAttachment = "attachment"
)
