package contracts

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
)

type DoctorUsecase interface {
	CreateDoctor(ctx context.Context, request *requests.CreateDoctor) (*responses.Doctor, error)
	FindAll(ctx context.Context, query *requests.DoctorQuery) ([]responses.Doctor, error)
	FindByID(ctx context.Context, doctorID string) (*responses.Doctor, error)
}

type DoctorRepository interface {
	CreateDoctor(ctx context.Context, doctor *models.Doctor) (string, error)
	FindByID(ctx context.Context, doctorID string) (*models.Doctor, error)
	FindAll(ctx context.Context, query *requests.DoctorQuery) ([]models.Doctor, error)
}
