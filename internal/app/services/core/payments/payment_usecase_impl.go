package payments

import (
	"context"
	"errors"
	"fmt"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	paymentUsecaseInstance contracts.PaymentUsecase
	oncePaymentUsecase     sync.Once
)

type paymentUsecase struct {
	TransactionRepository contracts.TransactionRepository
	AppointmentRepository contracts.AppointmentRepository
	PaymentGateway        contracts.PaymentGatewayService
	MeetingService        contracts.MeetingService
	NotificationUsecase   contracts.NotificationUsecase
	LockerService         contracts.LockerService
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
}

func NewPaymentUsecase(
	transactionRepository contracts.TransactionRepository,
	appointmentRepository contracts.AppointmentRepository,
	paymentGateway contracts.PaymentGatewayService,
	meetingService contracts.MeetingService,
	notificationUsecase contracts.NotificationUsecase,
	lockerService contracts.LockerService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.PaymentUsecase {
	oncePaymentUsecase.Do(func() {
		paymentUsecaseInstance = &paymentUsecase{
			TransactionRepository: transactionRepository,
			AppointmentRepository: appointmentRepository,
			PaymentGateway:        paymentGateway,
			MeetingService:        meetingService,
			NotificationUsecase:   notificationUsecase,
			LockerService:         lockerService,
			InternalConfig:        internalConfig,
			Log:                   logger,
		}
	})
	return paymentUsecaseInstance
}

// VerifyPayment is the settlement path behind the gateway redirect. It is
// safe to call any number of times for the same session: a settled
// transaction short-circuits to the stored outcome, concurrent calls are
// serialized by a redis lock, and the unique sessionId index backs both up.
func (uc *paymentUsecase) VerifyPayment(ctx context.Context, request *requests.VerifyPayment) (*responses.VerifiedPayment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("paymentUsecase.VerifyPayment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingGatewaySessionKey, request.SessionID),
	)

	lockKey := fmt.Sprintf(constvars.PaymentLockKeyFormat, request.SessionID)
	lockTTL := time.Duration(uc.InternalConfig.App.PaymentLockTTLInSeconds) * time.Second
	acquired, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, lockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrPaymentStillPending(fmt.Errorf("verification already in progress for session %s", request.SessionID))
	}
	defer uc.LockerService.Unlock(ctx, lockKey, lockValue)

	transaction, err := uc.TransactionRepository.FindBySessionID(ctx, request.SessionID)
	if err != nil {
		return nil, err
	}
	if transaction == nil {
		return nil, exceptions.ErrTransactionNotExist(fmt.Errorf("no transaction for session %s", request.SessionID))
	}

	// the redirect passes the booking email back so the session can be
	// correlated with the booking it was opened for; webhooks may omit it
	if request.Email != "" && !strings.EqualFold(request.Email, transaction.PatientEmail) {
		return nil, exceptions.ErrPaymentEmailMismatch(fmt.Errorf("session %s was not opened for %s", request.SessionID, request.Email))
	}

	// replayed redirect: settlement already recorded, return it verbatim
	// without re-provisioning the meeting or re-sending emails
	if transaction.Status == models.TransactionSettled {
		appointment, err := uc.AppointmentRepository.FindByID(ctx, transaction.AppointmentID)
		if err != nil {
			return nil, err
		}
		if appointment == nil {
			return nil, exceptions.ErrAppointmentNotExist(fmt.Errorf("appointment %s not found", transaction.AppointmentID))
		}
		return buildVerifiedPayment(transaction, appointment, appointment.MeetingLink == "", false), nil
	}
	if transaction.Status == models.TransactionFailed {
		return nil, exceptions.ErrPaymentRejected(fmt.Errorf("transaction for session %s already failed", request.SessionID))
	}

	status, err := uc.PaymentGateway.GetSessionStatus(ctx, request.SessionID)
	if err != nil {
		// 504 and 502 come back here untouched, the transaction stays
		// pending and the client may retry
		return nil, err
	}

	switch status.Status {
	case constvars.GatewayStatusPaid:
		return uc.settle(ctx, requestID, transaction, status)
	case constvars.GatewayStatusUnpaid:
		return nil, exceptions.ErrPaymentStillPending(fmt.Errorf("session %s not settled yet", request.SessionID))
	case constvars.GatewayStatusFailed, constvars.GatewayStatusExpired:
		_, _, err := uc.TransactionRepository.FailWithAppointment(ctx, request.SessionID, fmt.Sprintf("payment %s", status.Status))
		if err != nil {
			return nil, err
		}
		return nil, exceptions.ErrPaymentRejected(fmt.Errorf("gateway reported session %s as %s", request.SessionID, status.Status))
	default:
		return nil, exceptions.ErrPaymentGatewayUnavailable(fmt.Errorf("unknown gateway status %q", status.Status))
	}
}

// PaymentCallback is the server-to-server settlement path. The gateway's
// status query remains the source of truth, the callback only tells us the
// session is worth checking now.
func (uc *paymentUsecase) PaymentCallback(ctx context.Context, request *requests.PaymentCallback) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("paymentUsecase.PaymentCallback called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingGatewaySessionKey, request.SessionID),
		zap.String(constvars.LoggingPaymentStatusKey, request.PaymentStatus),
	)

	_, err := uc.VerifyPayment(ctx, &requests.VerifyPayment{
		SessionID: request.SessionID,
		Email:     request.CustomerEmail,
	})
	if err != nil {
		// a still-pending settlement is not a callback failure, the gateway
		// will retry or the patient will land on the verify endpoint
		var customErr *exceptions.CustomError
		if errors.As(err, &customErr) && customErr.ClientMessage == constvars.ErrClientPaymentStillPending {
			uc.Log.Info("paymentUsecase.PaymentCallback settlement not final yet",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingGatewaySessionKey, request.SessionID),
			)
			return nil
		}
		return err
	}
	return nil
}

func (uc *paymentUsecase) settle(ctx context.Context, requestID string, transaction *models.Transaction, status *responses.SessionStatus) (*responses.VerifiedPayment, error) {
	if status.AmountTotal != transaction.Amount {
		return nil, exceptions.ErrPaymentAmountMismatch(fmt.Errorf("gateway settled %.2f, booking fee is %.2f", status.AmountTotal, transaction.Amount))
	}

	settledTransaction, appointment, err := uc.TransactionRepository.SettleWithAppointment(ctx, transaction.SessionID, status.PaymentMethod, time.Now())
	if err != nil {
		return nil, err
	}

	// meeting provisioning is best effort: the payment is settled, a flaky
	// conferencing provider must never undo that
	meetingPending := false
	meeting, err := uc.MeetingService.CreateMeeting(ctx, appointment.PatientEmail)
	if err != nil {
		meetingPending = true
		uc.Log.Warn("paymentUsecase.settle meeting provisioning failed, continuing without meeting",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
			zap.Error(err),
		)
	} else {
		appointment.MeetingLink = meeting.JoinURL
		appointment.MeetingPassword = meeting.Password
		err = uc.AppointmentRepository.UpdateMeeting(ctx, appointment.ID, meeting.JoinURL, meeting.Password)
		if err != nil {
			meetingPending = true
			appointment.MeetingLink = ""
			appointment.MeetingPassword = ""
			uc.Log.Warn("paymentUsecase.settle failed to store meeting details",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
				zap.Error(err),
			)
		}
	}

	notifyFailed := false
	err = uc.NotificationUsecase.DispatchAppointmentConfirmation(ctx, &requests.NotificationPayload{
		PatientName:     appointment.PatientName,
		PatientEmail:    appointment.PatientEmail,
		DoctorName:      appointment.DoctorName,
		DoctorEmail:     appointment.DoctorEmail,
		Speciality:      appointment.Speciality,
		Date:            appointment.Date,
		Time:            appointment.Time,
		MeetingLink:     appointment.MeetingLink,
		MeetingPassword: appointment.MeetingPassword,
	})
	if err != nil {
		notifyFailed = true
		uc.Log.Warn("paymentUsecase.settle notification dispatch failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
			zap.Error(err),
		)
	}

	uc.Log.Info("paymentUsecase.settle succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingGatewaySessionKey, transaction.SessionID),
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
		zap.Bool("meeting_pending", meetingPending),
	)
	return buildVerifiedPayment(settledTransaction, appointment, meetingPending, notifyFailed), nil
}

func buildVerifiedPayment(transaction *models.Transaction, appointment *models.Appointment, meetingPending, notifyFailed bool) *responses.VerifiedPayment {
	return &responses.VerifiedPayment{
		Transaction: responses.Transaction{
			ID:            transaction.ID,
			SessionID:     transaction.SessionID,
			AppointmentID: transaction.AppointmentID,
			Amount:        transaction.Amount,
			Currency:      transaction.Currency,
			PaymentMethod: transaction.PaymentMethod,
			Status:        string(transaction.Status),
			SettledAt:     transaction.SettledAt,
		},
		Appointment: responses.Appointment{
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
		},
		MeetingPending: meetingPending,
		NotifyFailed:   notifyFailed,
	}
}
