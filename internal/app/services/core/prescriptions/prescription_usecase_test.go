package prescriptions

import (
	"context"
	"errors"
	"io"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/exceptions"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockPrescriptionRepository struct {
	mock.Mock
}

func (m *MockPrescriptionRepository) CreatePrescription(ctx context.Context, prescription *models.Prescription) (string, error) {
	args := m.Called(ctx, prescription)
	return args.String(0), args.Error(1)
}

func (m *MockPrescriptionRepository) FindByID(ctx context.Context, prescriptionID string) (*models.Prescription, error) {
	args := m.Called(ctx, prescriptionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Prescription), args.Error(1)
}

func (m *MockPrescriptionRepository) FindByAppointmentID(ctx context.Context, appointmentID string) (*models.Prescription, error) {
	args := m.Called(ctx, appointmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Prescription), args.Error(1)
}

func (m *MockPrescriptionRepository) UpdateAttachmentKey(ctx context.Context, prescriptionID, objectKey string) error {
	args := m.Called(ctx, prescriptionID, objectKey)
	return args.Error(0)
}

type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error) {
	args := m.Called(ctx, appointment)
	return args.String(0), args.Error(1)
}

func (m *MockAppointmentRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	args := m.Called(ctx, appointmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindAll(ctx context.Context, query *requests.AppointmentQuery) ([]models.Appointment, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) UpdateAppointment(ctx context.Context, appointment *models.Appointment) error {
	args := m.Called(ctx, appointment)
	return args.Error(0)
}

func (m *MockAppointmentRepository) UpdateMeeting(ctx context.Context, appointmentID, meetingLink, meetingPassword string) error {
	args := m.Called(ctx, appointmentID, meetingLink, meetingPassword)
	return args.Error(0)
}

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) UploadFile(ctx context.Context, file io.Reader, size int64, bucketName, objectName, contentType string) (string, error) {
	args := m.Called(ctx, file, size, bucketName, objectName, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockStorage) GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, bucketName, objectName, expiry)
	return args.String(0), args.Error(1)
}

func newPrescriptionUsecaseUnderTest() (*prescriptionUsecase, *MockPrescriptionRepository, *MockAppointmentRepository, *MockStorage) {
	prescriptionRepo := new(MockPrescriptionRepository)
	appointmentRepo := new(MockAppointmentRepository)
	storage := new(MockStorage)
	uc := &prescriptionUsecase{
		PrescriptionRepository: prescriptionRepo,
		AppointmentRepository:  appointmentRepo,
		Storage:                storage,
		InternalConfig: &config.InternalConfig{
			Minio: config.AppMinio{
				BucketName:                          "medibook-prescriptions",
				AttachmentMaxUploadSizeInMB:         2,
				PreSignedUrlObjectExpiryTimeInHours: 24,
			},
		},
		Log: zap.NewNop(),
	}
	return uc, prescriptionRepo, appointmentRepo, storage
}

func doctorSession() *models.Session {
	return &models.Session{
		SessionID: "sess-1",
		UserID:    "user-doc-1",
		Name:      "Dr. Smith",
		Email:     "doctor@example.com",
		Role:      models.RoleDoctor,
		DoctorID:  "doc-1",
	}
}

func completedAppointment() *models.Appointment {
	return &models.Appointment{
		ID:        "appt-1",
		PatientID: "user-1",
		DoctorID:  "doc-1",
		Status:    models.AppointmentCompleted,
	}
}

func createPrescriptionRequest() *requests.CreatePrescription {
	return &requests.CreatePrescription{
		AppointmentID: "appt-1",
		Medications: []requests.PrescriptionMedication{
			{Name: "Amoxicillin", Dosage: "500mg twice daily", Duration: "7 days"},
		},
		Notes: "take with food",
	}
}

func TestCreatePrescription_Succeeds(t *testing.T) {
	uc, prescriptionRepo, appointmentRepo, _ := newPrescriptionUsecaseUnderTest()

	appointmentRepo.On("FindByID", mock.Anything, "appt-1").Return(completedAppointment(), nil)
	prescriptionRepo.On("FindByAppointmentID", mock.Anything, "appt-1").Return(nil, nil)
	prescriptionRepo.On("CreatePrescription", mock.Anything, mock.MatchedBy(func(p *models.Prescription) bool {
		return p.AppointmentID == "appt-1" && p.DoctorID == "doc-1" && p.PatientID == "user-1" && len(p.Medications) == 1
	})).Return("rx-1", nil)

	response, err := uc.CreatePrescription(context.Background(), doctorSession(), createPrescriptionRequest())

	assert.NoError(t, err)
	assert.Equal(t, "appt-1", response.AppointmentID)
	assert.Len(t, response.Medications, 1)
	assert.False(t, response.HasAttachment)
	prescriptionRepo.AssertExpectations(t)
}

func TestCreatePrescription_RejectsUncompletedAppointment(t *testing.T) {
	uc, prescriptionRepo, appointmentRepo, _ := newPrescriptionUsecaseUnderTest()

	appt := completedAppointment()
	appt.Status = models.AppointmentConfirmed
	appointmentRepo.On("FindByID", mock.Anything, "appt-1").Return(appt, nil)

	_, err := uc.CreatePrescription(context.Background(), doctorSession(), createPrescriptionRequest())

	var customErr *exceptions.CustomError
	assert.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
	prescriptionRepo.AssertNotCalled(t, "CreatePrescription", mock.Anything, mock.Anything)
}

func TestCreatePrescription_RejectsForeignDoctor(t *testing.T) {
	uc, prescriptionRepo, appointmentRepo, _ := newPrescriptionUsecaseUnderTest()

	appointmentRepo.On("FindByID", mock.Anything, "appt-1").Return(completedAppointment(), nil)

	session := doctorSession()
	session.DoctorID = "doc-other"

	_, err := uc.CreatePrescription(context.Background(), session, createPrescriptionRequest())

	var customErr *exceptions.CustomError
	assert.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	prescriptionRepo.AssertNotCalled(t, "CreatePrescription", mock.Anything, mock.Anything)
}

func TestCreatePrescription_RejectsPatient(t *testing.T) {
	uc, _, _, _ := newPrescriptionUsecaseUnderTest()

	session := doctorSession()
	session.Role = models.RolePatient

	_, err := uc.CreatePrescription(context.Background(), session, createPrescriptionRequest())

	var customErr *exceptions.CustomError
	assert.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
}

func TestCreatePrescription_RejectsDuplicatePerAppointment(t *testing.T) {
	uc, prescriptionRepo, appointmentRepo, _ := newPrescriptionUsecaseUnderTest()

	appointmentRepo.On("FindByID", mock.Anything, "appt-1").Return(completedAppointment(), nil)
	prescriptionRepo.On("FindByAppointmentID", mock.Anything, "appt-1").Return(&models.Prescription{ID: "rx-existing", AppointmentID: "appt-1"}, nil)

	_, err := uc.CreatePrescription(context.Background(), doctorSession(), createPrescriptionRequest())

	var customErr *exceptions.CustomError
	assert.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
	prescriptionRepo.AssertNotCalled(t, "CreatePrescription", mock.Anything, mock.Anything)
}

func TestCreatePrescription_LostInsertRaceSurfacesConflict(t *testing.T) {
	uc, prescriptionRepo, appointmentRepo, _ := newPrescriptionUsecaseUnderTest()

	// pre-check sees nothing, the unique index rejects the insert
	appointmentRepo.On("FindByID", mock.Anything, "appt-1").Return(completedAppointment(), nil)
	prescriptionRepo.On("FindByAppointmentID", mock.Anything, "appt-1").Return(nil, nil)
	prescriptionRepo.On("CreatePrescription", mock.Anything, mock.Anything).
		Return("", exceptions.ErrPrescriptionAlreadyExist(errors.New("E11000 duplicate key error")))

	_, err := uc.CreatePrescription(context.Background(), doctorSession(), createPrescriptionRequest())

	var customErr *exceptions.CustomError
	assert.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
	assert.Equal(t, constvars.ErrClientPrescriptionAlreadyExists, customErr.ClientMessage)
}

func TestFindByID_PatientSeesOwnPrescription(t *testing.T) {
	uc, prescriptionRepo, _, _ := newPrescriptionUsecaseUnderTest()

	prescriptionRepo.On("FindByID", mock.Anything, "rx-1").Return(&models.Prescription{
		ID:            "rx-1",
		AppointmentID: "appt-1",
		DoctorID:      "doc-1",
		PatientID:     "user-1",
		Medications:   []models.Medication{{Name: "Amoxicillin", Dosage: "500mg"}},
	}, nil)

	session := &models.Session{UserID: "user-1", Role: models.RolePatient}
	response, err := uc.FindByID(context.Background(), session, "rx-1")

	assert.NoError(t, err)
	assert.Equal(t, "rx-1", response.ID)
}

func TestFindByID_StrangerIsRejected(t *testing.T) {
	uc, prescriptionRepo, _, _ := newPrescriptionUsecaseUnderTest()

	prescriptionRepo.On("FindByID", mock.Anything, "rx-1").Return(&models.Prescription{
		ID:        "rx-1",
		DoctorID:  "doc-1",
		PatientID: "user-1",
	}, nil)

	session := &models.Session{UserID: "user-2", Role: models.RolePatient}
	_, err := uc.FindByID(context.Background(), session, "rx-1")

	var customErr *exceptions.CustomError
	assert.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
}

func TestUploadAttachment_RejectsOversizedFile(t *testing.T) {
	uc, _, _, storage := newPrescriptionUsecaseUnderTest()

	tooBig := int64(3 * 1024 * 1024)
	err := uc.UploadAttachment(context.Background(), doctorSession(), "rx-1", "scan.pdf", tooBig, strings.NewReader("x"))

	var customErr *exceptions.CustomError
	assert.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusEntityTooLarge, customErr.StatusCode)
	storage.AssertNotCalled(t, "UploadFile", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUploadAttachment_StoresObjectAndKey(t *testing.T) {
	uc, prescriptionRepo, _, storage := newPrescriptionUsecaseUnderTest()

	prescriptionRepo.On("FindByID", mock.Anything, "rx-1").Return(&models.Prescription{
		ID:        "rx-1",
		DoctorID:  "doc-1",
		PatientID: "user-1",
	}, nil)
	storage.On("UploadFile", mock.Anything, mock.Anything, int64(1024), "medibook-prescriptions", "prescriptions/rx-1/scan.pdf", constvars.MIMEOctetStream).Return("prescriptions/rx-1/scan.pdf", nil)
	prescriptionRepo.On("UpdateAttachmentKey", mock.Anything, "rx-1", "prescriptions/rx-1/scan.pdf").Return(nil)

	err := uc.UploadAttachment(context.Background(), doctorSession(), "rx-1", "scan.pdf", 1024, strings.NewReader("pdf-bytes"))

	assert.NoError(t, err)
	storage.AssertExpectations(t)
	prescriptionRepo.AssertExpectations(t)
}

func TestAttachmentURL_RequiresStoredAttachment(t *testing.T) {
	uc, prescriptionRepo, _, _ := newPrescriptionUsecaseUnderTest()

	prescriptionRepo.On("FindByID", mock.Anything, "rx-1").Return(&models.Prescription{
		ID:        "rx-1",
		DoctorID:  "doc-1",
		PatientID: "user-1",
	}, nil)

	_, err := uc.AttachmentURL(context.Background(), doctorSession(), "rx-1")

	var customErr *exceptions.CustomError
	assert.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
}

func TestAttachmentURL_PresignsWithConfiguredExpiry(t *testing.T) {
	uc, prescriptionRepo, _, storage := newPrescriptionUsecaseUnderTest()

	prescriptionRepo.On("FindByID", mock.Anything, "rx-1").Return(&models.Prescription{
		ID:            "rx-1",
		DoctorID:      "doc-1",
		PatientID:     "user-1",
		AttachmentKey: "prescriptions/rx-1/scan.pdf",
	}, nil)
	storage.On("GetObjectUrlWithExpiryTime", mock.Anything, "medibook-prescriptions", "prescriptions/rx-1/scan.pdf", 24*time.Hour).Return("https://minio.example/presigned", nil)

	response, err := uc.AttachmentURL(context.Background(), doctorSession(), "rx-1")

	assert.NoError(t, err)
	assert.Equal(t, "https://minio.example/presigned", response.DownloadURL)
	assert.Equal(t, int((24 * time.Hour).Seconds()), response.ExpiresIn)
	storage.AssertExpectations(t)
}
