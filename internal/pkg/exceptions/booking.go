package exceptions

import "medibook-service/internal/pkg/constvars"

// Booking and payment flow errors. Upstream timeouts and pending settlements
// stay retryable; only a definitive gateway rejection becomes a payment failure.
var (
	ErrDoctorNotExist = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientDoctorNotFound, constvars.ErrDevDoctorNotExists)
	}
	ErrAppointmentNotExist = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientAppointmentNotFound, constvars.ErrDevAppointmentNotExists)
	}
	ErrTransactionNotExist = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientTransactionNotFound, constvars.ErrDevTransactionNotExists)
	}
	ErrPrescriptionNotExist = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientPrescriptionNotFound, constvars.ErrDevPrescriptionNotExists)
	}

	ErrPaymentRejected = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusPaymentRequired, constvars.ErrClientPaymentRejected, constvars.ErrDevGatewayRejectedPayment)
	}
	ErrPaymentStillPending = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientPaymentStillPending, constvars.ErrDevGatewayStillPending)
	}
	ErrPaymentGatewayTimeout = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientPaymentGatewayUnavailable, constvars.ErrDevGatewayTimeout)
	}
	ErrPaymentGatewayUnavailable = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientPaymentGatewayUnavailable, constvars.ErrDevGatewayUnavailable)
	}
	ErrPaymentAmountMismatch = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientPaymentAmountMismatch, constvars.ErrDevAmountMismatch)
	}
	ErrPaymentEmailMismatch = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusForbidden, constvars.ErrClientPaymentEmailMismatch, constvars.ErrDevEmailMismatch)
	}

	ErrInvalidStatusTransition = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientInvalidStatusTransition, constvars.ErrDevInvalidStatusTransition)
	}
	ErrAppointmentNotCompleted = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientAppointmentNotCompleted, constvars.ErrDevAppointmentNotCompleted)
	}
	ErrPrescriptionAlreadyExist = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientPrescriptionAlreadyExists, constvars.ErrDevPrescriptionAlreadyExists)
	}
	ErrAttachmentTooLarge = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusEntityTooLarge, constvars.ErrClientAttachmentTooLarge, constvars.ErrDevAttachmentTooLarge)
	}
	ErrBookingLimitReached = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusTooManyRequests, constvars.ErrClientBookingLimitReached, constvars.ErrDevInvalidInput)
	}
	ErrNotificationMissingFields = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientMissingRecipient, constvars.ErrDevNotificationMissingFields)
	}
)
