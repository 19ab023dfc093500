package contracts

import (
	"context"
	"medibook-service/internal/pkg/dto/requests"
)

type MailerService interface {
	SendEmail(ctx context.Context, request *requests.EmailPayload) error
}

// NotificationUsecase composes and dispatches the appointment confirmation
// emails for patient and doctor.
type NotificationUsecase interface {
	DispatchAppointmentConfirmation(ctx context.Context, payload *requests.NotificationPayload) error
}
