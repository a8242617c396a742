package app

import (
	"context"
	"testing"
	"time"

	"reuse_market_service/internal/maintenance/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// MockConfigRepository Mock ConfigRepository
type MockConfigRepository struct {
	mock.Mock
}

// AutoMigrate moke migrate
func (m *MockConfigRepository) AutoMigrate() error {
	args := m.Called()
	return args.Error(0)
}

// FindLatest moke find latest config
func (m *MockConfigRepository) FindLatest(ctx context.Context) (*domain.Config, error) {
	args := m.Called(ctx)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Config), args.Error(1)
	}
	return nil, args.Error(1)
}

// Create moke create config
func (m *MockConfigRepository) Create(ctx context.Context, cfg *domain.Config) error {
	args := m.Called(ctx, cfg)
	return args.Error(0)
}

// Save moke save config
func (m *MockConfigRepository) Save(ctx context.Context, cfg *domain.Config) error {
	args := m.Called(ctx, cfg)
	return args.Error(0)
}

func newTestCache() *StatusCache {
	return NewStatusCache(5*time.Second, time.Second, func(ctx context.Context) (bool, error) {
		return false, nil
	})
}

// 測試第一次讀取時懒建立預設配置
func TestMaintenanceUseCase_GetConfigCreatesDefault(t *testing.T) {
	ctx := context.Background()

	repo := new(MockConfigRepository)
	cache := newTestCache()
	uc := NewMaintenanceUseCase(repo, cache)

	repo.On("FindLatest", ctx).Return(nil, gorm.ErrRecordNotFound)
	repo.On("Create", ctx, mock.Anything).Return(nil)

	cfg, err := uc.GetConfig(ctx)

	assert.NoError(t, err)
	assert.False(t, cfg.MaintenanceMode)
	assert.Equal(t, domain.DefaultMaintenanceMessage, cfg.MaintenanceMessage)
	repo.AssertExpectations(t)
}

// 測試讀取配置會同步推進 cache
func TestMaintenanceUseCase_GetConfigUpdatesCache(t *testing.T) {
	ctx := context.Background()

	repo := new(MockConfigRepository)
	cache := newTestCache()
	uc := NewMaintenanceUseCase(repo, cache)

	repo.On("FindLatest", ctx).Return(&domain.Config{
		ID:                 3,
		MaintenanceMode:    true,
		MaintenanceMessage: "manutenção programada",
	}, nil)

	_, err := uc.GetConfig(ctx)

	assert.NoError(t, err)
	assert.True(t, cache.Read(), "cache should observe the stored status immediately")
}

// 測試 SetConfig 沒帶 message 時保留舊訊息
func TestMaintenanceUseCase_SetConfigPreservesMessage(t *testing.T) {
	ctx := context.Background()

	repo := new(MockConfigRepository)
	cache := newTestCache()
	uc := NewMaintenanceUseCase(repo, cache)

	existing := &domain.Config{
		ID:                 1,
		MaintenanceMode:    false,
		MaintenanceMessage: "mensagem antiga",
	}
	repo.On("FindLatest", ctx).Return(existing, nil)
	repo.On("Save", ctx, mock.Anything).Return(nil)

	cfg, err := uc.SetConfig(ctx, true, nil)

	assert.NoError(t, err)
	assert.True(t, cfg.MaintenanceMode)
	assert.Equal(t, "mensagem antiga", cfg.MaintenanceMessage)
	assert.True(t, cache.Read())
	repo.AssertExpectations(t)
}

// 測試 SetConfig 帶 message 時覆寫訊息
func TestMaintenanceUseCase_SetConfigOverridesMessage(t *testing.T) {
	ctx := context.Background()

	repo := new(MockConfigRepository)
	cache := newTestCache()
	uc := NewMaintenanceUseCase(repo, cache)

	existing := &domain.Config{
		ID:                 2,
		MaintenanceMode:    true,
		MaintenanceMessage: "mensagem antiga",
	}
	repo.On("FindLatest", ctx).Return(existing, nil)
	repo.On("Save", ctx, mock.Anything).Return(nil)

	msg := "voltamos às 18h"
	cfg, err := uc.SetConfig(ctx, false, &msg)

	assert.NoError(t, err)
	assert.False(t, cfg.MaintenanceMode)
	assert.Equal(t, "voltamos às 18h", cfg.MaintenanceMessage)
	assert.False(t, cache.Read())
}
