package appointments

import (
	"context"
	"fmt"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/app/services/shared/ratelimiter"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"
	"sync"

	"go.uber.org/zap"
)

var (
	appointmentUsecaseInstance contracts.AppointmentUsecase
	onceAppointmentUsecase     sync.Once
)

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	TransactionRepository contracts.TransactionRepository
	DoctorRepository      contracts.DoctorRepository
	PaymentGateway        contracts.PaymentGatewayService
	BookingLimiter        *ratelimiter.ResourceLimiter
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
}

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	transactionRepository contracts.TransactionRepository,
	doctorRepository contracts.DoctorRepository,
	paymentGateway contracts.PaymentGatewayService,
	bookingLimiter *ratelimiter.ResourceLimiter,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	onceAppointmentUsecase.Do(func() {
		appointmentUsecaseInstance = &appointmentUsecase{
			AppointmentRepository: appointmentRepository,
			TransactionRepository: transactionRepository,
			DoctorRepository:      doctorRepository,
			PaymentGateway:        paymentGateway,
			BookingLimiter:        bookingLimiter,
			InternalConfig:        internalConfig,
			Log:                   logger,
		}
	})
	return appointmentUsecaseInstance
}

// CreateAppointment books a pending visit and opens a checkout session. The
// appointment stays pending until the gateway confirms settlement, nothing in
// this path confirms it.
func (uc *appointmentUsecase) CreateAppointment(ctx context.Context, session *models.Session, request *requests.CreateAppointment) (*responses.CreatedAppointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
		zap.String(constvars.LoggingEmailKey, session.Email),
	)

	limiterResult, err := uc.BookingLimiter.ApplyResourceLimiter(ctx, &ratelimiter.ApplyResourceLimiterInput{
		ResourceName:      session.Email,
		LimiterGroupName:  constvars.BookingLimiterGroupName,
		WindowDurationSec: uc.InternalConfig.App.BookingWindowInSeconds,
		MaxQuota:          uc.InternalConfig.App.BookingMaxAttemptsPerWindow,
	})
	if err != nil {
		return nil, err
	}
	if !limiterResult.Allowed {
		return nil, exceptions.ErrBookingLimitReached(fmt.Errorf("retry after %d seconds", limiterResult.RetryAfterSecs))
	}

	doctor, err := uc.DoctorRepository.FindByID(ctx, request.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotExist(fmt.Errorf("doctor %s not found", request.DoctorID))
	}

	fee := doctor.Fee
	if fee <= 0 {
		fee = uc.InternalConfig.App.DefaultConsultationFee
	}

	checkout, err := uc.PaymentGateway.CreateCheckoutSession(ctx, &requests.CheckoutSession{
		Amount:        fee,
		Currency:      uc.InternalConfig.App.DefaultCurrency,
		CustomerEmail: session.Email,
		Description:   fmt.Sprintf("%s consultation with %s on %s %s", doctor.Speciality, doctor.Name, request.Date, request.Time),
		SuccessURL:    uc.InternalConfig.PaymentGateway.SuccessUrl,
		CancelURL:     uc.InternalConfig.PaymentGateway.CancelUrl,
	})
	if err != nil {
		return nil, err
	}

	appointment := &models.Appointment{
		PatientID:    session.UserID,
		PatientName:  session.Name,
		PatientEmail: session.Email,
		DoctorID:     doctor.ID,
		DoctorName:   doctor.Name,
		DoctorEmail:  doctor.Email,
		Speciality:   doctor.Speciality,
		Date:         request.Date,
		Time:         request.Time,
		Fee:          fee,
		Status:       models.AppointmentPending,
		SessionID:    checkout.SessionID,
	}
	appointmentID, err := uc.AppointmentRepository.CreateAppointment(ctx, appointment)
	if err != nil {
		return nil, err
	}

	_, err = uc.TransactionRepository.CreateTransaction(ctx, &models.Transaction{
		SessionID:     checkout.SessionID,
		AppointmentID: appointmentID,
		PatientEmail:  session.Email,
		Amount:        fee,
		Currency:      uc.InternalConfig.App.DefaultCurrency,
		PaymentLink:   checkout.PaymentURL,
		Status:        models.TransactionPending,
	})
	if err != nil {
		return nil, err
	}

	uc.Log.Info("appointmentUsecase.CreateAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String(constvars.LoggingGatewaySessionKey, checkout.SessionID),
	)
	return &responses.CreatedAppointment{
		Appointment: *buildAppointmentResponse(appointment),
		SessionID:   checkout.SessionID,
		PaymentLink: checkout.PaymentURL,
	}, nil
}

func (uc *appointmentUsecase) FindAll(ctx context.Context, session *models.Session, query *requests.AppointmentQuery) ([]responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingQueryParamsKey, query),
	)

	// non-admin callers only ever see their own appointments
	switch {
	case session.IsPatient():
		query.PatientID = session.UserID
	case session.IsDoctor():
		query.DoctorID = session.DoctorID
	}

	appointments, err := uc.AppointmentRepository.FindAll(ctx, query)
	if err != nil {
		return nil, err
	}

	response := make([]responses.Appointment, 0, len(appointments))
	for i := range appointments {
		response = append(response, *buildAppointmentResponse(&appointments[i]))
	}
	return response, nil
}

func (uc *appointmentUsecase) FindByID(ctx context.Context, session *models.Session, appointmentID string) (*responses.Appointment, error) {
	appointment, err := uc.loadOwnedAppointment(ctx, session, appointmentID)
	if err != nil {
		return nil, err
	}
	return buildAppointmentResponse(appointment), nil
}

func (uc *appointmentUsecase) UpdateStatus(ctx context.Context, session *models.Session, appointmentID string, request *requests.UpdateAppointmentStatus) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.UpdateStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String("target_status", request.Status),
	)

	appointment, err := uc.loadOwnedAppointment(ctx, session, appointmentID)
	if err != nil {
		return nil, err
	}

	next := models.AppointmentStatus(request.Status)
	if next == models.AppointmentCompleted && session.IsPatient() {
		return nil, exceptions.WrapWithoutError(constvars.StatusForbidden, constvars.ErrClientNotAuthorized, constvars.ErrDevRoleNotAllowed)
	}
	if !appointment.Status.CanTransitionTo(next) {
		return nil, exceptions.ErrInvalidStatusTransition(fmt.Errorf("cannot move %s to %s", appointment.Status, next))
	}

	appointment.Status = next
	if next == models.AppointmentCancelled {
		appointment.CancelReason = request.Reason
	}
	err = uc.AppointmentRepository.UpdateAppointment(ctx, appointment)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("appointmentUsecase.UpdateStatus succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String("target_status", request.Status),
	)
	return buildAppointmentResponse(appointment), nil
}

func (uc *appointmentUsecase) loadOwnedAppointment(ctx context.Context, session *models.Session, appointmentID string) (*models.Appointment, error) {
	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotExist(fmt.Errorf("appointment %s not found", appointmentID))
	}

	switch {
	case session.IsAdmin():
	case session.IsPatient() && appointment.PatientID == session.UserID:
	case session.IsDoctor() && appointment.DoctorID == session.DoctorID:
	default:
		return nil, exceptions.WrapWithoutError(constvars.StatusForbidden, constvars.ErrClientNotAuthorized, constvars.ErrDevRoleNotAllowed)
	}
	return appointment, nil
}

func buildAppointmentResponse(appointment *models.Appointment) *responses.Appointment {
	return &responses.Appointment{
		ID:              appointment.ID,
		PatientName:     appointment.PatientName,
		PatientEmail:    appointment.PatientEmail,
		DoctorID:        appointment.DoctorID,
		DoctorName:      appointment.DoctorName,
		Speciality:      appointment.Speciality,
		Date:            appointment.Date,
		Time:            appointment.Time,
		Fee:             appointment.Fee,
		Status:          string(appointment.Status),
		MeetingLink:     appointment.MeetingLink,
		MeetingPassword: appointment.MeetingPassword,
	}
}
