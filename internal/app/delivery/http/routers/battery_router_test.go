package routers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"avalia-service/internal/app/config"
	"avalia-service/internal/app/delivery/http/controllers"
	"avalia-service/internal/app/delivery/http/middlewares"
	"avalia-service/internal/app/models"
	"avalia-service/internal/pkg/constvars"
	"avalia-service/internal/pkg/dto/requests"
	"avalia-service/internal/pkg/dto/responses"
	"avalia-service/internal/pkg/questionnaire_dto"
	"avalia-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockBatteryUsecase struct {
	mock.Mock
}

func (m *MockBatteryUsecase) OpenBattery(ctx context.Context, profile *questionnaire_dto.UserProfile, request *requests.OpenBattery) (*responses.BatteryState, error) {
	args := m.Called(ctx, profile, request)
	if state, ok := args.Get(0).(*responses.BatteryState); ok {
		return state, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBatteryUsecase) GetBatteryState(ctx context.Context, batteryID string, profile *questionnaire_dto.UserProfile) (*responses.BatteryState, error) {
	args := m.Called(ctx, batteryID, profile)
	if state, ok := args.Get(0).(*responses.BatteryState); ok {
		return state, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBatteryUsecase) SubmitAnswers(ctx context.Context, batteryID string, profile *questionnaire_dto.UserProfile, request *requests.SubmitAnswers) (*responses.BatteryState, error) {
	args := m.Called(ctx, batteryID, profile, request)
	if state, ok := args.Get(0).(*responses.BatteryState); ok {
		return state, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBatteryUsecase) StepBattery(ctx context.Context, batteryID string, profile *questionnaire_dto.UserProfile, request *requests.StepBattery) (*responses.StepBattery, error) {
	args := m.Called(ctx, batteryID, profile, request)
	if step, ok := args.Get(0).(*responses.StepBattery); ok {
		return step, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBatteryUsecase) CompleteBattery(ctx context.Context, batteryID string, profile *questionnaire_dto.UserProfile) (*responses.CompleteBattery, error) {
	args := m.Called(ctx, batteryID, profile)
	if completion, ok := args.Get(0).(*responses.CompleteBattery); ok {
		return completion, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	args := m.Called(ctx, key, value, exp)
	return args.Error(0)
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockRedisRepository) IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int, error) {
	args := m.Called(ctx, key, ttl)
	return args.Int(0), args.Error(1)
}

func TestBatteryRouter_SubmitAnswers(t *testing.T) {
	logger := zap.NewNop()

	jwtSecret := "test-secret"
	internalConfig := &config.InternalConfig{
		JWT: config.JWT{Secret: jwtSecret, ExpTimeInHour: 1},
	}

	mockBatteryUsecase := new(MockBatteryUsecase)
	mockRedis := new(MockRedisRepository)

	batteryController := controllers.NewBatteryController(logger, mockBatteryUsecase)

	middlewareInstance := &middlewares.Middlewares{
		Log:             logger,
		RedisRepository: mockRedis,
		InternalConfig:  internalConfig,
	}

	router := chi.NewRouter()
	attachBatteryRoutes(router, middlewareInstance, batteryController)

	session := models.Session{
		SessionID: "sess-1",
		UserID:    "user-1",
		Role:      questionnaire_dto.RolePatient,
		ExpiresAt: time.Now().UTC().Add(time.Hour),
	}
	sessionJSON, _ := json.Marshal(session)

	token, err := utils.GenerateSessionJWT(session.SessionID, jwtSecret, 1)
	assert.NoError(t, err)

	t.Run("SubmitAnswers with valid session", func(t *testing.T) {
		mockRedis.On("Get", mock.Anything, constvars.RedisKeyPrefixSession+"sess-1").Return(string(sessionJSON), nil)
		mockBatteryUsecase.On("SubmitAnswers", mock.Anything, "bat-1", mock.AnythingOfType("*questionnaire_dto.UserProfile"), mock.AnythingOfType("*requests.SubmitAnswers")).
			Return(&responses.BatteryState{BatteryID: "bat-1", Status: models.BatteryStatusInProgress}, nil)

		requestBody := map[string]interface{}{
			"respostas": map[string]interface{}{"q1": "a"},
		}
		jsonBody, _ := json.Marshal(requestBody)

		req := httptest.NewRequest("PUT", "/bat-1/answers", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockBatteryUsecase.AssertExpectations(t)
	})

	t.Run("SubmitAnswers without token", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"respostas": map[string]interface{}{"q1": "a"},
		}
		jsonBody, _ := json.Marshal(requestBody)

		req := httptest.NewRequest("PUT", "/bat-1/answers", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("SubmitAnswers with unknown session", func(t *testing.T) {
		staleToken, err := utils.GenerateSessionJWT("sess-gone", jwtSecret, 1)
		assert.NoError(t, err)

		mockRedis.On("Get", mock.Anything, constvars.RedisKeyPrefixSession+"sess-gone").Return("", nil)

		req := httptest.NewRequest("PUT", "/bat-1/answers", bytes.NewBufferString(`{"respostas":{}}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+staleToken)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestBatteryRouter_CompleteBattery(t *testing.T) {
	logger := zap.NewNop()

	jwtSecret := "test-secret"
	internalConfig := &config.InternalConfig{
		JWT: config.JWT{Secret: jwtSecret, ExpTimeInHour: 1},
	}

	mockBatteryUsecase := new(MockBatteryUsecase)
	mockRedis := new(MockRedisRepository)

	batteryController := controllers.NewBatteryController(logger, mockBatteryUsecase)

	middlewareInstance := &middlewares.Middlewares{
		Log:             logger,
		RedisRepository: mockRedis,
		InternalConfig:  internalConfig,
	}

	router := chi.NewRouter()
	attachBatteryRoutes(router, middlewareInstance, batteryController)

	session := models.Session{
		SessionID: "sess-1",
		UserID:    "user-1",
		Role:      questionnaire_dto.RolePatient,
		ExpiresAt: time.Now().UTC().Add(time.Hour),
	}
	sessionJSON, _ := json.Marshal(session)

	token, err := utils.GenerateSessionJWT(session.SessionID, jwtSecret, 1)
	assert.NoError(t, err)

	mockRedis.On("Get", mock.Anything, constvars.RedisKeyPrefixSession+"sess-1").Return(string(sessionJSON), nil)
	mockBatteryUsecase.On("CompleteBattery", mock.Anything, "bat-1", mock.AnythingOfType("*questionnaire_dto.UserProfile")).
		Return(&responses.CompleteBattery{BatteryID: "bat-1", Status: models.BatteryStatusCompleted, CompletedAt: time.Now().UTC().Format(time.RFC3339)}, nil)

	req := httptest.NewRequest("PUT", "/bat-1/complete", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	mockBatteryUsecase.AssertExpectations(t)
}
