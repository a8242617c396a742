package app

import (
	"context"
	"errors"
	"fmt"

	"reuse_market_service/internal/maintenance/domain"
	"reuse_market_service/internal/maintenance/repository"
	"reuse_market_service/pkg/logger"

	"gorm.io/gorm"
)

// MaintenanceUseCase 這裡封裝了對外提供的應用服務
type MaintenanceUseCase interface {
	// GetConfig 取權威配置，沒有時建立預設列
	GetConfig(ctx context.Context) (*domain.Config, error)
	// SetConfig 更新權威配置，message 為 nil 時保留舊訊息
	SetConfig(ctx context.Context, mode bool, message *string) (*domain.Config, error)
}

type maintenanceUseCase struct {
	configRepo repository.ConfigRepository
	cache      *StatusCache
}

// NewMaintenanceUseCase 建立一個新的 MaintenanceUseCase
// 每次讀寫配置都會把結果推進 cache，本進程不用等 TTL
func NewMaintenanceUseCase(configRepo repository.ConfigRepository, cache *StatusCache) MaintenanceUseCase {
	return &maintenanceUseCase{
		configRepo: configRepo,
		cache:      cache,
	}
}

// GetConfig
func (m *maintenanceUseCase) GetConfig(ctx context.Context) (*domain.Config, error) {
	cfg, err := m.configRepo.FindLatest(ctx)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		// 第一次讀取時懒建立預設配置
		cfg = &domain.Config{
			MaintenanceMode:    false,
			MaintenanceMessage: domain.DefaultMaintenanceMessage,
		}
		if err := m.configRepo.Create(ctx, cfg); err != nil {
			return nil, err
		}
		logger.Log.Info("maintenance config created with defaults")
	}

	m.cache.Write(cfg.MaintenanceMode)
	return cfg, nil
}

// SetConfig
func (m *maintenanceUseCase) SetConfig(ctx context.Context, mode bool, message *string) (*domain.Config, error) {
	cfg, err := m.configRepo.FindLatest(ctx)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		cfg = &domain.Config{
			MaintenanceMode:    mode,
			MaintenanceMessage: domain.DefaultMaintenanceMessage,
		}
		if message != nil && *message != "" {
			cfg.MaintenanceMessage = *message
		}
		if err := m.configRepo.Create(ctx, cfg); err != nil {
			return nil, err
		}
	} else {
		cfg.MaintenanceMode = mode
		if message != nil && *message != "" {
			cfg.MaintenanceMessage = *message
		}
		if err := m.configRepo.Save(ctx, cfg); err != nil {
			return nil, err
		}
	}

	m.cache.Write(cfg.MaintenanceMode)
	logger.Log.Info(fmt.Sprintf("maintenance mode set to %t", cfg.MaintenanceMode))
	return cfg, nil
}
