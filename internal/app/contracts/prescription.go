package contracts

import (
	"context"
	"io"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
)

type PrescriptionUsecase interface {
	CreatePrescription(ctx context.Context, session *models.Session, request *requests.CreatePrescription) (*responses.Prescription, error)
	FindByID(ctx context.Context, session *models.Session, prescriptionID string) (*responses.Prescription, error)
	UploadAttachment(ctx context.Context, session *models.Session, prescriptionID, fileName string, size int64, reader io.Reader) error
	AttachmentURL(ctx context.Context, session *models.Session, prescriptionID string) (*responses.PrescriptionAttachment, error)
}

type PrescriptionRepository interface {
	CreatePrescription(ctx context.Context, prescription *models.Prescription) (string, error)
	FindByID(ctx context.Context, prescriptionID string) (*models.Prescription, error)
	FindByAppointmentID(ctx context.Context, appointmentID string) (*models.Prescription, error)
	UpdateAttachmentKey(ctx context.Context, prescriptionID, objectKey string) error
}
