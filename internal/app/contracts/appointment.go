package contracts

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, session *models.Session, request *requests.CreateAppointment) (*responses.CreatedAppointment, error)
	FindAll(ctx context.Context, session *models.Session, query *requests.AppointmentQuery) ([]responses.Appointment, error)
	FindByID(ctx context.Context, session *models.Session, appointmentID string) (*responses.Appointment, error)
	UpdateStatus(ctx context.Context, session *models.Session, appointmentID string, request *requests.UpdateAppointmentStatus) (*responses.Appointment, error)
}

type AppointmentRepository interface {
	CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error)
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	FindAll(ctx context.Context, query *requests.AppointmentQuery) ([]models.Appointment, error)
	UpdateAppointment(ctx context.Context, appointment *models.Appointment) error
	UpdateMeeting(ctx context.Context, appointmentID, meetingLink, meetingPassword string) error
}
