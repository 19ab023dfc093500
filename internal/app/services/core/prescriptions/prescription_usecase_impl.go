package prescriptions

import (
	"context"
	"fmt"
	"io"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"
	"path"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	prescriptionUsecaseInstance contracts.PrescriptionUsecase
	oncePrescriptionUsecase     sync.Once
)

type prescriptionUsecase struct {
	PrescriptionRepository contracts.PrescriptionRepository
	AppointmentRepository  contracts.AppointmentRepository
	Storage                contracts.Storage
	InternalConfig         *config.InternalConfig
	Log                    *zap.Logger
}

func NewPrescriptionUsecase(
	prescriptionRepository contracts.PrescriptionRepository,
	appointmentRepository contracts.AppointmentRepository,
	storage contracts.Storage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.PrescriptionUsecase {
	oncePrescriptionUsecase.Do(func() {
		prescriptionUsecaseInstance = &prescriptionUsecase{
			PrescriptionRepository: prescriptionRepository,
			AppointmentRepository:  appointmentRepository,
			Storage:                storage,
			InternalConfig:         internalConfig,
			Log:                    logger,
		}
	})
	return prescriptionUsecaseInstance
}

// CreatePrescription records medications for a finished visit. Only the
// doctor who held the appointment may write one, and only after the
// appointment reached completed status.
func (uc *prescriptionUsecase) CreatePrescription(ctx context.Context, session *models.Session, request *requests.CreatePrescription) (*responses.Prescription, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("prescriptionUsecase.CreatePrescription called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, request.AppointmentID),
	)

	if !session.IsDoctor() && !session.IsAdmin() {
		return nil, exceptions.WrapWithoutError(constvars.StatusForbidden, constvars.ErrClientNotAuthorized, constvars.ErrDevRoleNotAllowed)
	}

	appointment, err := uc.AppointmentRepository.FindByID(ctx, request.AppointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotExist(fmt.Errorf("appointment %s not found", request.AppointmentID))
	}
	if session.IsDoctor() && appointment.DoctorID != session.DoctorID {
		return nil, exceptions.WrapWithoutError(constvars.StatusForbidden, constvars.ErrClientNotAuthorized, constvars.ErrDevRoleNotAllowed)
	}
	if appointment.Status != models.AppointmentCompleted {
		return nil, exceptions.ErrAppointmentNotCompleted(fmt.Errorf("appointment %s is %s", appointment.ID, appointment.Status))
	}

	existing, err := uc.PrescriptionRepository.FindByAppointmentID(ctx, appointment.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrPrescriptionAlreadyExist(fmt.Errorf("appointment %s already has prescription %s", appointment.ID, existing.ID))
	}

	medications := make([]models.Medication, 0, len(request.Medications))
	for _, medication := range request.Medications {
		medications = append(medications, models.Medication{
			Name:     medication.Name,
			Dosage:   medication.Dosage,
			Duration: medication.Duration,
		})
	}

	prescription := &models.Prescription{
		AppointmentID: appointment.ID,
		DoctorID:      appointment.DoctorID,
		PatientID:     appointment.PatientID,
		Medications:   medications,
		Notes:         request.Notes,
	}
	prescriptionID, err := uc.PrescriptionRepository.CreatePrescription(ctx, prescription)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("prescriptionUsecase.CreatePrescription succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPrescriptionIDKey, prescriptionID),
	)
	return buildPrescriptionResponse(prescription), nil
}

func (uc *prescriptionUsecase) FindByID(ctx context.Context, session *models.Session, prescriptionID string) (*responses.Prescription, error) {
	prescription, err := uc.loadOwnedPrescription(ctx, session, prescriptionID)
	if err != nil {
		return nil, err
	}
	return buildPrescriptionResponse(prescription), nil
}

func (uc *prescriptionUsecase) UploadAttachment(ctx context.Context, session *models.Session, prescriptionID, fileName string, size int64, reader io.Reader) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("prescriptionUsecase.UploadAttachment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPrescriptionIDKey, prescriptionID),
	)

	if !session.IsDoctor() && !session.IsAdmin() {
		return exceptions.WrapWithoutError(constvars.StatusForbidden, constvars.ErrClientNotAuthorized, constvars.ErrDevRoleNotAllowed)
	}

	maxSize := uc.InternalConfig.Minio.AttachmentMaxUploadSizeInMB * 1024 * 1024
	if size > maxSize {
		return exceptions.ErrAttachmentTooLarge(fmt.Errorf("attachment is %d bytes, limit is %d", size, maxSize))
	}

	prescription, err := uc.loadOwnedPrescription(ctx, session, prescriptionID)
	if err != nil {
		return err
	}

	objectKey := fmt.Sprintf("prescriptions/%s/%s", prescription.ID, path.Base(fileName))
	_, err = uc.Storage.UploadFile(ctx, reader, size, uc.InternalConfig.Minio.BucketName, objectKey, constvars.MIMEOctetStream)
	if err != nil {
		return err
	}

	err = uc.PrescriptionRepository.UpdateAttachmentKey(ctx, prescription.ID, objectKey)
	if err != nil {
		return err
	}

	uc.Log.Info("prescriptionUsecase.UploadAttachment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPrescriptionIDKey, prescriptionID),
		zap.String(constvars.LoggingObjectNameKey, objectKey),
	)
	return nil
}

func (uc *prescriptionUsecase) AttachmentURL(ctx context.Context, session *models.Session, prescriptionID string) (*responses.PrescriptionAttachment, error) {
	prescription, err := uc.loadOwnedPrescription(ctx, session, prescriptionID)
	if err != nil {
		return nil, err
	}
	if prescription.AttachmentKey == "" {
		return nil, exceptions.ErrPrescriptionNotExist(fmt.Errorf("prescription %s has no attachment", prescriptionID))
	}

	expiry := time.Duration(uc.InternalConfig.Minio.PreSignedUrlObjectExpiryTimeInHours) * time.Hour
	url, err := uc.Storage.GetObjectUrlWithExpiryTime(ctx, uc.InternalConfig.Minio.BucketName, prescription.AttachmentKey, expiry)
	if err != nil {
		return nil, err
	}

	return &responses.PrescriptionAttachment{
		DownloadURL: url,
		ExpiresIn:   int(expiry.Seconds()),
	}, nil
}

func (uc *prescriptionUsecase) loadOwnedPrescription(ctx context.Context, session *models.Session, prescriptionID string) (*models.Prescription, error) {
	prescription, err := uc.PrescriptionRepository.FindByID(ctx, prescriptionID)
	if err != nil {
		return nil, err
	}
	if prescription == nil {
		return nil, exceptions.ErrPrescriptionNotExist(fmt.Errorf("prescription %s not found", prescriptionID))
	}

	switch {
	case session.IsAdmin():
	case session.IsPatient() && prescription.PatientID == session.UserID:
	case session.IsDoctor() && prescription.DoctorID == session.DoctorID:
	default:
		return nil, exceptions.WrapWithoutError(constvars.StatusForbidden, constvars.ErrClientNotAuthorized, constvars.ErrDevRoleNotAllowed)
	}
	return prescription, nil
}

func buildPrescriptionResponse(prescription *models.Prescription) *responses.Prescription {
	medications := make([]responses.PrescriptionMedication, 0, len(prescription.Medications))
	for _, medication := range prescription.Medications {
		medications = append(medications, responses.PrescriptionMedication{
			Name:     medication.Name,
			Dosage:   medication.Dosage,
			Duration: medication.Duration,
		})
	}
	return &responses.Prescription{
		ID:            prescription.ID,
		AppointmentID: prescription.AppointmentID,
		DoctorID:      prescription.DoctorID,
		PatientID:     prescription.PatientID,
		Medications:   medications,
		Notes:         prescription.Notes,
		HasAttachment: prescription.AttachmentKey != "",
	}
}
