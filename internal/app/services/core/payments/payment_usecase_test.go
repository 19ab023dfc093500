package payments

import (
	"context"
	"errors"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) CreateTransaction(ctx context.Context, transaction *models.Transaction) (*models.Transaction, error) {
	args := m.Called(ctx, transaction)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindBySessionID(ctx context.Context, sessionID string) (*models.Transaction, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindByAppointmentID(ctx context.Context, appointmentID string) (*models.Transaction, error) {
	args := m.Called(ctx, appointmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) SettleWithAppointment(ctx context.Context, sessionID, paymentMethod string, settledAt time.Time) (*models.Transaction, *models.Appointment, error) {
	args := m.Called(ctx, sessionID, paymentMethod, settledAt)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*models.Transaction), args.Get(1).(*models.Appointment), args.Error(2)
}

func (m *MockTransactionRepository) FailWithAppointment(ctx context.Context, sessionID, reason string) (*models.Transaction, *models.Appointment, error) {
	args := m.Called(ctx, sessionID, reason)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*models.Transaction), args.Get(1).(*models.Appointment), args.Error(2)
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

type MockPaymentGateway struct {
	mock.Mock
}

func (m *MockPaymentGateway) CreateCheckoutSession(ctx context.Context, request *requests.CheckoutSession) (*responses.CheckoutSession, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.CheckoutSession), args.Error(1)
}

func (m *MockPaymentGateway) GetSessionStatus(ctx context.Context, sessionID string) (*responses.SessionStatus, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.SessionStatus), args.Error(1)
}

type MockMeetingService struct {
	mock.Mock
}

func (m *MockMeetingService) CreateMeeting(ctx context.Context, email string) (*responses.Meeting, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Meeting), args.Error(1)
}

type MockNotificationUsecase struct {
	mock.Mock
}

func (m *MockNotificationUsecase) DispatchAppointmentConfirmation(ctx context.Context, payload *requests.NotificationPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

type MockLockerService struct {
	mock.Mock
}

func (m *MockLockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *MockLockerService) Unlock(ctx context.Context, key, lockValue string) error {
	args := m.Called(ctx, key, lockValue)
	return args.Error(0)
}

type paymentMocks struct {
	transactions  *MockTransactionRepository
	appointments  *MockAppointmentRepository
	gateway       *MockPaymentGateway
	meetings      *MockMeetingService
	notifications *MockNotificationUsecase
	locker        *MockLockerService
}

func newPaymentUsecaseUnderTest() (*paymentUsecase, *paymentMocks) {
	mocks := &paymentMocks{
		transactions:  new(MockTransactionRepository),
		appointments:  new(MockAppointmentRepository),
		gateway:       new(MockPaymentGateway),
		meetings:      new(MockMeetingService),
		notifications: new(MockNotificationUsecase),
		locker:        new(MockLockerService),
	}
	uc := &paymentUsecase{
		TransactionRepository: mocks.transactions,
		AppointmentRepository: mocks.appointments,
		PaymentGateway:        mocks.gateway,
		MeetingService:        mocks.meetings,
		NotificationUsecase:   mocks.notifications,
		LockerService:         mocks.locker,
		InternalConfig: &config.InternalConfig{
			App: config.App{PaymentLockTTLInSeconds: 30},
		},
		Log: zap.NewNop(),
	}
	return uc, mocks
}

func pendingTransaction() *models.Transaction {
	return &models.Transaction{
		ID:            "txn-1",
		SessionID:     "cs_test_123",
		AppointmentID: "appt-1",
		PatientEmail:  "patient@example.com",
		Amount:        150,
		Currency:      "USD",
		Status:        models.TransactionPending,
	}
}

func confirmedAppointment() *models.Appointment {
	return &models.Appointment{
		ID:           "appt-1",
		PatientID:    "user-1",
		PatientName:  "Jane Roe",
		PatientEmail: "patient@example.com",
		DoctorID:     "doc-1",
		DoctorName:   "Dr. Smith",
		DoctorEmail:  "doctor@example.com",
		Speciality:   "cardiology",
		Date:         "2026-10-01",
		Time:         "10:00",
		Fee:          150,
		Status:       models.AppointmentConfirmed,
		SessionID:    "cs_test_123",
	}
}

func TestVerifyPayment_PaidSettlesAndProvisions(t *testing.T) {
	uc, mocks := newPaymentUsecaseUnderTest()

	txn := pendingTransaction()
	settled := pendingTransaction()
	settled.Status = models.TransactionSettled
	settled.PaymentMethod = "card"
	appt := confirmedAppointment()

	mocks.locker.On("TryLock", mock.Anything, "payment:verify:cs_test_123", 30*time.Second).Return(true, "lock-val", nil)
	mocks.locker.On("Unlock", mock.Anything, "payment:verify:cs_test_123", "lock-val").Return(nil)
	mocks.transactions.On("FindBySessionID", mock.Anything, "cs_test_123").Return(txn, nil)
	mocks.gateway.On("GetSessionStatus", mock.Anything, "cs_test_123").Return(&responses.SessionStatus{
		SessionID:     "cs_test_123",
		Status:        constvars.GatewayStatusPaid,
		AmountTotal:   150,
		PaymentMethod: "card",
	}, nil)
	mocks.transactions.On("SettleWithAppointment", mock.Anything, "cs_test_123", "card", mock.AnythingOfType("time.Time")).Return(settled, appt, nil)
	mocks.meetings.On("CreateMeeting", mock.Anything, "patient@example.com").Return(&responses.Meeting{JoinURL: "https://meet.example/m/1", Password: "secret"}, nil)
	mocks.appointments.On("UpdateMeeting", mock.Anything, "appt-1", "https://meet.example/m/1", "secret").Return(nil)
	mocks.notifications.On("DispatchAppointmentConfirmation", mock.Anything, mock.AnythingOfType("*requests.NotificationPayload")).Return(nil)

	result, err := uc.VerifyPayment(context.Background(), &requests.VerifyPayment{SessionID: "cs_test_123", Email: "patient@example.com"})

	assert.NoError(t, err)
	assert.Equal(t, string(models.TransactionSettled), result.Transaction.Status)
	assert.Equal(t, "https://meet.example/m/1", result.Appointment.MeetingLink)
	assert.False(t, result.MeetingPending)
	assert.False(t, result.NotifyFailed)
	mocks.transactions.AssertExpectations(t)
	mocks.notifications.AssertExpectations(t)
}

func TestVerifyPayment_SettledShortCircuitsWithoutSideEffects(t *testing.T) {
	uc, mocks := newPaymentUsecaseUnderTest()

	txn := pendingTransaction()
	txn.Status = models.TransactionSettled
	appt := confirmedAppointment()
	appt.MeetingLink = "https://meet.example/m/1"

	mocks.locker.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(true, "lock-val", nil)
	mocks.locker.On("Unlock", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	mocks.transactions.On("FindBySessionID", mock.Anything, "cs_test_123").Return(txn, nil)
	mocks.appointments.On("FindByID", mock.Anything, "appt-1").Return(appt, nil)

	result, err := uc.VerifyPayment(context.Background(), &requests.VerifyPayment{SessionID: "cs_test_123", Email: "patient@example.com"})

	assert.NoError(t, err)
	assert.False(t, result.MeetingPending)
	mocks.gateway.AssertNotCalled(t, "GetSessionStatus", mock.Anything, mock.Anything)
	mocks.meetings.AssertNotCalled(t, "CreateMeeting", mock.Anything, mock.Anything)
	mocks.notifications.AssertNotCalled(t, "DispatchAppointmentConfirmation", mock.Anything, mock.Anything)
}

func TestVerifyPayment_UnpaidStaysPending(t *testing.T) {
	uc, mocks := newPaymentUsecaseUnderTest()

	mocks.locker.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(true, "lock-val", nil)
	mocks.locker.On("Unlock", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	mocks.transactions.On("FindBySessionID", mock.Anything, "cs_test_123").Return(pendingTransaction(), nil)
	mocks.gateway.On("GetSessionStatus", mock.Anything, "cs_test_123").Return(&responses.SessionStatus{
		SessionID: "cs_test_123",
		Status:    constvars.GatewayStatusUnpaid,
	}, nil)

	_, err := uc.VerifyPayment(context.Background(), &requests.VerifyPayment{SessionID: "cs_test_123", Email: "patient@example.com"})

	var customErr *exceptions.CustomError
	assert.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
	mocks.transactions.AssertNotCalled(t, "SettleWithAppointment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mocks.transactions.AssertNotCalled(t, "FailWithAppointment", mock.Anything, mock.Anything, mock.Anything)
}

func TestVerifyPayment_FailedClosesTransaction(t *testing.T) {
	uc, mocks := newPaymentUsecaseUnderTest()

	failedTxn := pendingTransaction()
	failedTxn.Status = models.TransactionFailed
	cancelledAppt := confirmedAppointment()
	cancelledAppt.Status = models.AppointmentCancelled

	mocks.locker.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(true, "lock-val", nil)
	mocks.locker.On("Unlock", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	mocks.transactions.On("FindBySessionID", mock.Anything, "cs_test_123").Return(pendingTransaction(), nil)
	mocks.gateway.On("GetSessionStatus", mock.Anything, "cs_test_123").Return(&responses.SessionStatus{
		SessionID: "cs_test_123",
		Status:    constvars.GatewayStatusFailed,
	}, nil)
	mocks.transactions.On("FailWithAppointment", mock.Anything, "cs_test_123", "payment failed").Return(failedTxn, cancelledAppt, nil)

	_, err := uc.VerifyPayment(context.Background(), &requests.VerifyPayment{SessionID: "cs_test_123", Email: "patient@example.com"})

	var customErr *exceptions.CustomError
	assert.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusPaymentRequired, customErr.StatusCode)
	mocks.transactions.AssertExpectations(t)
}

func TestVerifyPayment_AmountMismatchDoesNotSettle(t *testing.T) {
	uc, mocks := newPaymentUsecaseUnderTest()

	mocks.locker.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(true, "lock-val", nil)
	mocks.locker.On("Unlock", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	mocks.transactions.On("FindBySessionID", mock.Anything, "cs_test_123").Return(pendingTransaction(), nil)
	mocks.gateway.On("GetSessionStatus", mock.Anything, "cs_test_123").Return(&responses.SessionStatus{
		SessionID:   "cs_test_123",
		Status:      constvars.GatewayStatusPaid,
		AmountTotal: 99,
	}, nil)

	_, err := uc.VerifyPayment(context.Background(), &requests.VerifyPayment{SessionID: "cs_test_123", Email: "patient@example.com"})

	var customErr *exceptions.CustomError
	assert.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
	mocks.transactions.AssertNotCalled(t, "SettleWithAppointment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestVerifyPayment_EmailMismatchIsRejected(t *testing.T) {
	uc, mocks := newPaymentUsecaseUnderTest()

	mocks.locker.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(true, "lock-val", nil)
	mocks.locker.On("Unlock", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	mocks.transactions.On("FindBySessionID", mock.Anything, "cs_test_123").Return(pendingTransaction(), nil)

	_, err := uc.VerifyPayment(context.Background(), &requests.VerifyPayment{SessionID: "cs_test_123", Email: "someone-else@example.com"})

	var customErr *exceptions.CustomError
	assert.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	mocks.gateway.AssertNotCalled(t, "GetSessionStatus", mock.Anything, mock.Anything)
	mocks.transactions.AssertNotCalled(t, "SettleWithAppointment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestVerifyPayment_MeetingFailureDegradesGracefully(t *testing.T) {
	uc, mocks := newPaymentUsecaseUnderTest()

	settled := pendingTransaction()
	settled.Status = models.TransactionSettled
	appt := confirmedAppointment()

	mocks.locker.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(true, "lock-val", nil)
	mocks.locker.On("Unlock", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	mocks.transactions.On("FindBySessionID", mock.Anything, "cs_test_123").Return(pendingTransaction(), nil)
	mocks.gateway.On("GetSessionStatus", mock.Anything, "cs_test_123").Return(&responses.SessionStatus{
		SessionID:   "cs_test_123",
		Status:      constvars.GatewayStatusPaid,
		AmountTotal: 150,
	}, nil)
	mocks.transactions.On("SettleWithAppointment", mock.Anything, "cs_test_123", "", mock.AnythingOfType("time.Time")).Return(settled, appt, nil)
	mocks.meetings.On("CreateMeeting", mock.Anything, "patient@example.com").Return(nil, errors.New("provider down"))
	mocks.notifications.On("DispatchAppointmentConfirmation", mock.Anything, mock.MatchedBy(func(p *requests.NotificationPayload) bool {
		return p.MeetingLink == ""
	})).Return(nil)

	result, err := uc.VerifyPayment(context.Background(), &requests.VerifyPayment{SessionID: "cs_test_123", Email: "patient@example.com"})

	assert.NoError(t, err)
	assert.True(t, result.MeetingPending)
	assert.Equal(t, string(models.TransactionSettled), result.Transaction.Status)
	mocks.appointments.AssertNotCalled(t, "UpdateMeeting", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mocks.notifications.AssertExpectations(t)
}

func TestVerifyPayment_LockContentionReportsPending(t *testing.T) {
	uc, mocks := newPaymentUsecaseUnderTest()

	mocks.locker.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(false, "", nil)

	_, err := uc.VerifyPayment(context.Background(), &requests.VerifyPayment{SessionID: "cs_test_123", Email: "patient@example.com"})

	var customErr *exceptions.CustomError
	assert.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.ErrClientPaymentStillPending, customErr.ClientMessage)
	mocks.transactions.AssertNotCalled(t, "FindBySessionID", mock.Anything, mock.Anything)
}

func TestPaymentCallback_SwallowsStillPending(t *testing.T) {
	uc, mocks := newPaymentUsecaseUnderTest()

	mocks.locker.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(true, "lock-val", nil)
	mocks.locker.On("Unlock", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	mocks.transactions.On("FindBySessionID", mock.Anything, "cs_test_123").Return(pendingTransaction(), nil)
	mocks.gateway.On("GetSessionStatus", mock.Anything, "cs_test_123").Return(&responses.SessionStatus{
		SessionID: "cs_test_123",
		Status:    constvars.GatewayStatusUnpaid,
	}, nil)

	err := uc.PaymentCallback(context.Background(), &requests.PaymentCallback{
		SessionID:     "cs_test_123",
		PaymentStatus: "paid",
		CustomerEmail: "patient@example.com",
	})

	assert.NoError(t, err)
}

func TestPaymentCallback_PropagatesRejection(t *testing.T) {
	uc, mocks := newPaymentUsecaseUnderTest()

	failedTxn := pendingTransaction()
	failedTxn.Status = models.TransactionFailed

	mocks.locker.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(true, "lock-val", nil)
	mocks.locker.On("Unlock", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	mocks.transactions.On("FindBySessionID", mock.Anything, "cs_test_123").Return(failedTxn, nil)

	err := uc.PaymentCallback(context.Background(), &requests.PaymentCallback{
		SessionID:     "cs_test_123",
		PaymentStatus: "failed",
		CustomerEmail: "patient@example.com",
	})

	var customErr *exceptions.CustomError
	assert.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusPaymentRequired, customErr.StatusCode)
}
