package doctors

import (
	"context"
	"fmt"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"
	"sync"

	"go.uber.org/zap"
)

var (
	doctorUsecaseInstance contracts.DoctorUsecase
	onceDoctorUsecase     sync.Once
)

type doctorUsecase struct {
	DoctorRepository contracts.DoctorRepository
	Log              *zap.Logger
}

func NewDoctorUsecase(doctorRepository contracts.DoctorRepository, logger *zap.Logger) contracts.DoctorUsecase {
	onceDoctorUsecase.Do(func() {
		doctorUsecaseInstance = &doctorUsecase{
			DoctorRepository: doctorRepository,
			Log:              logger,
		}
	})
	return doctorUsecaseInstance
}

func (uc *doctorUsecase) CreateDoctor(ctx context.Context, request *requests.CreateDoctor) (*responses.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.CreateDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, request.Email),
	)

	doctor := &models.Doctor{
		Name:        request.Name,
		Email:       request.Email,
		Speciality:  request.Speciality,
		Credentials: request.Credentials,
		Fee:         request.Fee,
	}
	doctorID, err := uc.DoctorRepository.CreateDoctor(ctx, doctor)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("doctorUsecase.CreateDoctor succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)
	return buildDoctorResponse(doctor), nil
}

func (uc *doctorUsecase) FindAll(ctx context.Context, query *requests.DoctorQuery) ([]responses.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingQueryParamsKey, query),
	)

	doctors, err := uc.DoctorRepository.FindAll(ctx, query)
	if err != nil {
		return nil, err
	}

	response := make([]responses.Doctor, 0, len(doctors))
	for i := range doctors {
		response = append(response, *buildDoctorResponse(&doctors[i]))
	}
	return response, nil
}

func (uc *doctorUsecase) FindByID(ctx context.Context, doctorID string) (*responses.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotExist(fmt.Errorf("doctor %s not found", doctorID))
	}
	return buildDoctorResponse(doctor), nil
}

func buildDoctorResponse(doctor *models.Doctor) *responses.Doctor {
	return &responses.Doctor{
		ID:          doctor.ID,
		Name:        doctor.Name,
		Speciality:  doctor.Speciality,
		Credentials: doctor.Credentials,
		Fee:         doctor.Fee,
	}
}
