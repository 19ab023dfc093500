package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Auth messages
	RegisterSuccess = "user registered successfully"
	LoginSuccess    = "successfully login"
	LogoutSuccess   = "successfully logout"

	// Doctor messages
	DoctorCreatedSuccess = "doctor created successfully"
	DoctorGetSuccess     = "get doctor successfully"

	// Booking flow messages
	AppointmentCreatedSuccess       = "appointment created, complete the payment to confirm"
	AppointmentGetSuccess           = "get appointment successfully"
	AppointmentStatusUpdatedSuccess = "appointment status updated successfully"
	PaymentVerifiedSuccess          = "payment verified, appointment confirmed"
	PaymentVerifiedMeetingPending   = "payment verified, video meeting details will follow separately"
	PaymentCallbackProcessedSuccess = "payment callback processed successfully"

	// Prescription messages
	PrescriptionCreatedSuccess          = "prescription created successfully"
	PrescriptionGetSuccess              = "get prescription successfully"
	PrescriptionAttachmentUploadSuccess = "prescription attachment uploaded successfully"
)
