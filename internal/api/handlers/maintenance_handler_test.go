package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"reuse_market_service/internal/maintenance/domain"
	"reuse_market_service/pkg/config"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockMaintenanceUseCase Mock MaintenanceUseCase
type MockMaintenanceUseCase struct {
	mock.Mock
}

// GetConfig moke get config
func (m *MockMaintenanceUseCase) GetConfig(ctx context.Context) (*domain.Config, error) {
	args := m.Called(ctx)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Config), args.Error(1)
	}
	return nil, args.Error(1)
}

// SetConfig moke set config
func (m *MockMaintenanceUseCase) SetConfig(ctx context.Context, mode bool, message *string) (*domain.Config, error) {
	args := m.Called(ctx, mode, message)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Config), args.Error(1)
	}
	return nil, args.Error(1)
}

func newMaintenanceApp(uc *MockMaintenanceUseCase) *fiber.App {
	h := NewMaintenanceHandler(uc)
	app := fiber.New()
	app.Get("/api/maintenance", h.GetConfig)
	app.Put("/api/maintenance", h.UpdateConfig)
	app.Get("/api/maintenance/control", h.ControlStatus)
	app.Post("/api/maintenance/control", h.ControlUpdate)
	app.Get("/maintenance", h.NoticePage)
	return app
}

// TestUpdateConfig_NonBooleanMode maintenanceMode 不是 boolean 要回 400, 且不能碰到儲存層
func TestUpdateConfig_NonBooleanMode(t *testing.T) {
	uc := new(MockMaintenanceUseCase)
	app := newMaintenanceApp(uc)

	for _, body := range []string{
		`{"maintenanceMode":"yes"}`,
		`{"maintenanceMode":1}`,
		`{"maintenanceMode":null}`,
		`{}`,
	} {
		req := httptest.NewRequest("PUT", "/api/maintenance", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, body)
	}
	uc.AssertNotCalled(t, "SetConfig", mock.Anything, mock.Anything, mock.Anything)
}

// TestUpdateConfig_ValidMode
func TestUpdateConfig_ValidMode(t *testing.T) {
	uc := new(MockMaintenanceUseCase)
	app := newMaintenanceApp(uc)

	msg := "Voltamos às 18h"
	uc.On("SetConfig", mock.Anything, true, mock.MatchedBy(func(m *string) bool {
		return m != nil && *m == msg
	})).Return(&domain.Config{ID: 1, MaintenanceMode: true, MaintenanceMessage: msg}, nil)

	req := httptest.NewRequest("PUT", "/api/maintenance", strings.NewReader(`{"maintenanceMode":true,"maintenanceMessage":"Voltamos às 18h"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var got domain.Config
	b, _ := io.ReadAll(resp.Body)
	assert.NoError(t, json.Unmarshal(b, &got))
	assert.True(t, got.MaintenanceMode)
	assert.Equal(t, msg, got.MaintenanceMessage)
	uc.AssertExpectations(t)
}

// TestControlUpdate_BadAPIKey api key 不對要回 401
func TestControlUpdate_BadAPIKey(t *testing.T) {
	uc := new(MockMaintenanceUseCase)
	app := newMaintenanceApp(uc)

	config.EnvConfig.MaintenanceAPIKey = "secret"
	defer func() { config.EnvConfig.MaintenanceAPIKey = "" }()

	req := httptest.NewRequest("POST", "/api/maintenance/control", strings.NewReader(`{"apiKey":"wrong","maintenanceMode":true}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	uc.AssertNotCalled(t, "SetConfig", mock.Anything, mock.Anything, mock.Anything)
}

// TestControlUpdate_NoKeyConfigured 沒設定 key 時不把關
func TestControlUpdate_NoKeyConfigured(t *testing.T) {
	uc := new(MockMaintenanceUseCase)
	app := newMaintenanceApp(uc)

	config.EnvConfig.MaintenanceAPIKey = ""
	uc.On("SetConfig", mock.Anything, false, mock.Anything).
		Return(&domain.Config{ID: 1, MaintenanceMode: false, MaintenanceMessage: domain.DefaultMaintenanceMessage}, nil)

	req := httptest.NewRequest("POST", "/api/maintenance/control", strings.NewReader(`{"maintenanceMode":false}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

// TestNoticePage_AlwaysRenders 配置讀不到時退回預設訊息
func TestNoticePage_AlwaysRenders(t *testing.T) {
	uc := new(MockMaintenanceUseCase)
	app := newMaintenanceApp(uc)

	uc.On("GetConfig", mock.Anything).Return(nil, assert.AnError)

	resp, err := app.Test(httptest.NewRequest("GET", "/maintenance", nil))

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	b, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(b), domain.DefaultMaintenanceMessage)
}
