package routers

import (
	"bytes"
	"context"
	"encoding/json"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/app/models"
	"medibook-service/internal/app/services/core/auth"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/utils"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) Register(ctx context.Context, request *requests.Register) (*responses.Auth, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Auth), args.Error(1)
}

func (m *MockAuthUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Auth, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Auth), args.Error(1)
}

func (m *MockAuthUsecase) Logout(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) CreateSession(ctx context.Context, session *models.Session, ttl time.Duration) error {
	args := m.Called(ctx, session, ttl)
	return args.Error(0)
}

func (m *MockSessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	args := m.Called(ctx, sessionData)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	args := m.Called(ctx, sessionID)
	return args.String(0), args.Error(1)
}

func (m *MockSessionService) DeleteSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func TestAuthRouter(t *testing.T) {
	logger := zap.NewNop()
	jwtSecret := "test-secret"
	internalConfig := &config.InternalConfig{
		JWT: config.AppJWT{Secret: jwtSecret, ExpTimeInHour: 1},
	}

	mockAuthUsecase := new(MockAuthUsecase)
	mockSessionService := new(MockSessionService)

	authController := auth.NewAuthController(logger, mockAuthUsecase)
	middlewareInstance := middlewares.NewMiddlewares(logger, mockSessionService, internalConfig)

	router := chi.NewRouter()
	attachAuthRoutes(router, middlewareInstance, authController)

	t.Run("Register with valid payload", func(t *testing.T) {
		mockAuthUsecase.On("Register", mock.Anything, mock.AnythingOfType("*requests.Register")).Return(&responses.Auth{
			Token: "jwt-token",
			Name:  "Jane Roe",
			Email: "jane@example.com",
			Role:  "patient",
		}, nil).Once()

		body, _ := json.Marshal(requests.Register{
			Name:     "Jane Roe",
			Email:    "jane@example.com",
			Password: "Sup3rSecret!",
		})
		req := httptest.NewRequest("POST", "/register", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), "jwt-token")
		mockAuthUsecase.AssertExpectations(t)
	})

	t.Run("Register rejects weak password", func(t *testing.T) {
		body, _ := json.Marshal(requests.Register{
			Name:     "Jane Roe",
			Email:    "jane@example.com",
			Password: "weak",
		})
		req := httptest.NewRequest("POST", "/register", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockAuthUsecase.AssertNotCalled(t, "Register", mock.Anything, mock.MatchedBy(func(r *requests.Register) bool {
			return r.Password == "weak"
		}))
	})

	t.Run("Login with valid payload", func(t *testing.T) {
		mockAuthUsecase.On("Login", mock.Anything, mock.AnythingOfType("*requests.Login")).Return(&responses.Auth{
			Token: "jwt-token",
			Email: "jane@example.com",
			Role:  "patient",
		}, nil).Once()

		body, _ := json.Marshal(requests.Login{
			Email:    "jane@example.com",
			Password: "Sup3rSecret!",
		})
		req := httptest.NewRequest("POST", "/login", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		mockAuthUsecase.AssertExpectations(t)
	})

	t.Run("Logout without token is unauthorized", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/logout", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		mockAuthUsecase.AssertNotCalled(t, "Logout", mock.Anything, mock.Anything)
	})

	t.Run("Logout with valid token", func(t *testing.T) {
		session := &models.Session{
			SessionID: "sess-1",
			UserID:    "user-1",
			Email:     "jane@example.com",
			Role:      models.RolePatient,
		}
		sessionJSON, _ := json.Marshal(session)

		mockSessionService.On("GetSessionData", mock.Anything, "sess-1").Return(string(sessionJSON), nil).Once()
		mockSessionService.On("ParseSessionData", mock.Anything, string(sessionJSON)).Return(session, nil).Once()
		mockAuthUsecase.On("Logout", mock.Anything, "sess-1").Return(nil).Once()

		token, err := utils.GenerateSessionJWT("sess-1", jwtSecret, 1)
		assert.NoError(t, err)

		req := httptest.NewRequest("POST", "/logout", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		mockAuthUsecase.AssertExpectations(t)
		mockSessionService.AssertExpectations(t)
	})
}
