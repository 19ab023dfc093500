package notifications

import (
	"context"
	"fmt"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/exceptions"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"
)

var (
	notificationUsecaseInstance contracts.NotificationUsecase
	onceNotificationUsecase     sync.Once
)

type notificationUsecase struct {
	MailerService  contracts.MailerService
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

func NewNotificationUsecase(
	mailerService contracts.MailerService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.NotificationUsecase {
	onceNotificationUsecase.Do(func() {
		notificationUsecaseInstance = &notificationUsecase{
			MailerService:  mailerService,
			InternalConfig: internalConfig,
			Log:            logger,
		}
	})
	return notificationUsecaseInstance
}

// DispatchAppointmentConfirmation queues the patient and doctor emails.
// The payload is validated up front so a half-built payload never produces a
// single orphaned or malformed email.
func (uc *notificationUsecase) DispatchAppointmentConfirmation(ctx context.Context, payload *requests.NotificationPayload) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("notificationUsecase.DispatchAppointmentConfirmation called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := validateNotificationPayload(payload); err != nil {
		return err
	}

	sender := uc.InternalConfig.Mailer.EmailSender

	patientEmail := &requests.EmailPayload{
		Subject:  constvars.EmailAppointmentPatientSubject,
		From:     sender,
		To:       []string{payload.PatientEmail},
		HTMLCode: buildPatientEmailBody(payload),
	}
	err := uc.MailerService.SendEmail(ctx, patientEmail)
	if err != nil {
		return err
	}

	doctorEmail := &requests.EmailPayload{
		Subject:  constvars.EmailAppointmentDoctorSubject,
		From:     sender,
		To:       []string{payload.DoctorEmail},
		HTMLCode: buildDoctorEmailBody(payload),
	}
	err = uc.MailerService.SendEmail(ctx, doctorEmail)
	if err != nil {
		return err
	}

	uc.Log.Info("notificationUsecase.DispatchAppointmentConfirmation succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, payload.PatientEmail),
	)
	return nil
}

func validateNotificationPayload(payload *requests.NotificationPayload) error {
	missing := make([]string, 0, 6)
	for field, value := range map[string]string{
		"patient email": payload.PatientEmail,
		"doctor email":  payload.DoctorEmail,
		"patient name":  payload.PatientName,
		"doctor name":   payload.DoctorName,
		"date":          payload.Date,
		"time":          payload.Time,
	} {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return exceptions.ErrNotificationMissingFields(fmt.Errorf("missing %s", strings.Join(missing, ", ")))
	}
	return nil
}

func buildPatientEmailBody(payload *requests.NotificationPayload) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("<p>Dear %s,</p>", payload.PatientName))
	sb.WriteString(fmt.Sprintf("<p>Your %s appointment with %s on %s at %s is confirmed.</p>",
		payload.Speciality, payload.DoctorName, payload.Date, payload.Time))
	writeMeetingSection(&sb, payload)
	sb.WriteString("<p>Thank you for booking with MediBook.</p>")
	return sb.String()
}

func buildDoctorEmailBody(payload *requests.NotificationPayload) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("<p>Dear %s,</p>", payload.DoctorName))
	sb.WriteString(fmt.Sprintf("<p>A %s consultation with %s is confirmed for %s at %s.</p>",
		payload.Speciality, payload.PatientName, payload.Date, payload.Time))
	writeMeetingSection(&sb, payload)
	return sb.String()
}

func writeMeetingSection(sb *strings.Builder, payload *requests.NotificationPayload) {
	if payload.MeetingLink == "" {
		sb.WriteString("<p>Video meeting details will be sent in a separate email.</p>")
		return
	}
	sb.WriteString(fmt.Sprintf("<p>Join link: <a href=%q>%s</a></p>", payload.MeetingLink, payload.MeetingLink))
	if payload.MeetingPassword != "" {
		sb.WriteString(fmt.Sprintf("<p>Meeting password: %s</p>", payload.MeetingPassword))
	}
}
